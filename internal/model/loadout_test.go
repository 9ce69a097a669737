package model

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func weaponEntry(calcType string, localName string, itemTypes ...string) map[string]interface{} {
	types := make([]interface{}, 0, len(itemTypes))
	for _, t := range itemTypes {
		types = append(types, map[string]interface{}{"type": t})
	}

	return map[string]interface{}{
		"itemTypes": types,
		"item": map[string]interface{}{
			"calculatorType": calcType,
			"localName":      localName,
		},
	}
}

func fixtureLoadoutDescriptor() Descriptor {
	mount := weaponEntry("mount", "wing_mount", "WeaponMount")
	mount["loadout"] = []interface{}{
		weaponEntry("weapon", "Badger Repeater", "WeaponGun"),
		weaponEntry("weapon", "Grappler", "TractorBeam"),
	}

	turretMount := weaponEntry("mount", "top_turret_mount", "WeaponMount")
	turretMount["loadout"] = []interface{}{
		weaponEntry("weapon", "Lumin Cannon", "WeaponGun"),
	}

	return Descriptor{
		"name":      "Sparrow Duelist",
		"shortened": "sparrow-duelist",
		"loadout": map[string]interface{}{
			"ship": map[string]interface{}{
				"localName": "Sparrow",
			},
			"segmentConfiguration": map[string]interface{}{
				"weapon": []interface{}{
					map[string]interface{}{"number": 2.0, "disabled": false, "selected": true},
					map[string]interface{}{"number": 2.0, "disabled": false, "selected": false},
					map[string]interface{}{"number": 1.0, "disabled": true, "selected": true},
				},
				"shield": []interface{}{
					map[string]interface{}{"number": 3.0, "disabled": false, "selected": true},
				},
			},
			"loadout": []interface{}{
				map[string]interface{}{
					"card":      "weapons",
					"itemTypes": mount["itemTypes"],
					"item":      mount["item"],
					"loadout":   mount["loadout"],
				},
				map[string]interface{}{
					"card":      "weapons",
					"itemTypes": []interface{}{map[string]interface{}{"type": "WeaponGun"}},
					"item": map[string]interface{}{
						"calculatorType": "weapon",
						"localName":      "Nose Gun",
					},
				},
				map[string]interface{}{
					"card": "turrets",
					"loadout": []interface{}{
						turretMount,
						weaponEntry("weapon", "Tail Grappler", "TractorBeam"),
					},
				},
				map[string]interface{}{
					"card":    "turrets",
					"loadout": []interface{}{},
				},
				map[string]interface{}{
					"card": "shields",
					"item": map[string]interface{}{
						"calculatorType": "shield",
						"localName":      "SG-1",
					},
				},
			},
		},
	}
}

func TestNewLoadoutFromDescriptor(t *testing.T) {
	l, err := NewLoadoutFromDescriptor(fixtureLoadoutDescriptor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if l.Identifier != "sparrow-duelist" {
		t.Errorf("identifier %q, want \"sparrow-duelist\"", l.Identifier)
	}
	if l.Name != "Sparrow Duelist" {
		t.Errorf("name %q, want \"Sparrow Duelist\"", l.Name)
	}
	if l.ShipName != "Sparrow" {
		t.Errorf("ship %q, want \"Sparrow\"", l.ShipName)
	}

	// 2 of the 4 enabled weapon segments are selected; the
	// only shield segment is selected.
	if math.Abs(l.WeaponsPowerPercentage-0.5) > 1e-9 {
		t.Errorf("weapon power %v, want 0.5", l.WeaponsPowerPercentage)
	}
	if math.Abs(l.ShieldsPowerPercentage-1) > 1e-9 {
		t.Errorf("shield power %v, want 1", l.ShieldsPowerPercentage)
	}

	wantOperators := []string{PilotOperator, "Turret 1"}
	if !reflect.DeepEqual(l.Operators, wantOperators) {
		t.Errorf("operators %v, want %v", l.Operators, wantOperators)
	}

	// The tractor beam on the wing mount is skipped and the
	// direct nose gun attaches its own name.
	wantPilot := []string{"Badger Repeater", "Nose Gun"}
	if !reflect.DeepEqual(l.Weapons[PilotOperator], wantPilot) {
		t.Errorf("pilot weapons %v, want %v", l.Weapons[PilotOperator], wantPilot)
	}

	// The tail tractor beam does not open a weapon slot but
	// the turret itself still counts as an operator.
	wantTurret := []string{"Lumin Cannon"}
	if !reflect.DeepEqual(l.Weapons["Turret 1"], wantTurret) {
		t.Errorf("turret weapons %v, want %v", l.Weapons["Turret 1"], wantTurret)
	}

	if !reflect.DeepEqual(l.Shields, []string{"SG-1"}) {
		t.Errorf("shields %v, want [SG-1]", l.Shields)
	}
}

func TestNewLoadoutGeneratesIdentifier(t *testing.T) {
	source := fixtureLoadoutDescriptor()
	delete(source, "shortened")

	l, err := NewLoadoutFromDescriptor(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(l.Identifier) == 0 {
		t.Errorf("no identifier generated")
	}
}

func TestNewLoadoutFallsBackToIdentifierField(t *testing.T) {
	source := fixtureLoadoutDescriptor()
	delete(source, "shortened")
	source["identifier"] = "legacy-id"

	l, err := NewLoadoutFromDescriptor(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if l.Identifier != "legacy-id" {
		t.Errorf("identifier %q, want \"legacy-id\"", l.Identifier)
	}
}

func TestNewLoadoutWithoutSegmentsDefaultsToFullPower(t *testing.T) {
	source := fixtureLoadoutDescriptor()
	loadout := source["loadout"].(map[string]interface{})
	delete(loadout, "segmentConfiguration")

	l, err := NewLoadoutFromDescriptor(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if l.WeaponsPowerPercentage != 1 || l.ShieldsPowerPercentage != 1 {
		t.Errorf("power %v/%v without segments, want 1/1",
			l.WeaponsPowerPercentage, l.ShieldsPowerPercentage)
	}
}

func TestNewLoadoutMissingShip(t *testing.T) {
	source := fixtureLoadoutDescriptor()
	loadout := source["loadout"].(map[string]interface{})
	delete(loadout, "ship")

	_, err := NewLoadoutFromDescriptor(source)
	if !errors.Is(err, ErrDescriptorMissingField) {
		t.Errorf("got %v, want ErrDescriptorMissingField", err)
	}
}
