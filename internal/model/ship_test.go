package model

import (
	"errors"
	"math"
	"testing"
)

func fixtureShipDescriptor() Descriptor {
	return Descriptor{
		"localName": "Sparrow",
		"data": map[string]interface{}{
			"size": 1.0,
			"rnPowerPools": map[string]interface{}{
				"weaponGun": map[string]interface{}{
					"poolSize": 4.0,
				},
			},
			"shield": map[string]interface{}{
				"faceType": "Quadrant",
			},
			"hull": map[string]interface{}{
				"totalHp": 4000.0,
				"hp": []interface{}{
					map[string]interface{}{"name": "body", "hp": 2500.0},
					map[string]interface{}{"name": "wing_left", "hp": 800.0},
					map[string]interface{}{"name": "wing_right", "hp": 800.0},
				},
			},
			"armor": map[string]interface{}{
				"data": map[string]interface{}{
					"armor": map[string]interface{}{
						"damageMultiplier": map[string]interface{}{
							"damagePhysical":   0.1,
							"damageEnergy":     0.2,
							"damageDistortion": 0.3,
						},
					},
				},
			},
			"ifcs": map[string]interface{}{
				"angularVelocity": map[string]interface{}{"x": 60.0},
				"scmSpeed":        200.0,
			},
			"vehicle": map[string]interface{}{
				"size": map[string]interface{}{"x": 20.0, "y": 15.0, "z": 4.0},
			},
		},
	}
}

func TestNewShipFromDescriptor(t *testing.T) {
	s, err := NewShipFromDescriptor(fixtureShipDescriptor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Name != "Sparrow" {
		t.Errorf("name %q, want \"Sparrow\"", s.Name)
	}
	if s.Size != 1 {
		t.Errorf("size %d, want 1", s.Size)
	}
	if s.ShieldFaces != FacesQuadrant {
		t.Errorf("faces %v, want Quadrant", s.ShieldFaces)
	}
	if s.ShieldFaces.FaceCount() != 4 {
		t.Errorf("face count %d, want 4", s.ShieldFaces.FaceCount())
	}
	if s.VitalHullHP != 2500 || s.VitalHullName != "body" {
		t.Errorf("vital part %v/%q, want 2500/\"body\"", s.VitalHullHP, s.VitalHullName)
	}
	if s.TotalHP != 4000 {
		t.Errorf("total hp %v, want 4000", s.TotalHP)
	}
	if s.BallisticResistance != 0.1 || s.EnergyResistance != 0.2 || s.DistortionResistance != 0.3 {
		t.Errorf("resistances %v/%v/%v, want 0.1/0.2/0.3",
			s.BallisticResistance, s.EnergyResistance, s.DistortionResistance)
	}
	if s.PitchRate != 60 || s.ScmSpeed != 200 {
		t.Errorf("flight stats %v/%v, want 60/200", s.PitchRate, s.ScmSpeed)
	}
	// The two largest dimensions are 20 and 15.
	if math.Abs(s.VisibleHullArea-300) > 1e-9 {
		t.Errorf("visible area %v, want 300", s.VisibleHullArea)
	}
	if s.MaxWeaponPower == nil || *s.MaxWeaponPower != 4 {
		t.Errorf("weapon power pool %v, want 4", s.MaxWeaponPower)
	}
}

func TestNewShipFromDescriptorDefaults(t *testing.T) {
	source := Descriptor{
		"localName": "Crate",
		"data": map[string]interface{}{
			"size": 1.0,
			"hull": map[string]interface{}{
				"hp": []interface{}{
					map[string]interface{}{"name": "box", "hp": 1000.0},
				},
			},
		},
	}

	s, err := NewShipFromDescriptor(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.ShieldFaces != FacesNone {
		t.Errorf("faces %v without a shield block, want None", s.ShieldFaces)
	}
	if s.TotalHP != 1000 {
		t.Errorf("total hp %v, want the vital value 1000", s.TotalHP)
	}
	if s.BallisticResistance != 0 || s.EnergyResistance != 0 || s.DistortionResistance != 0 {
		t.Errorf("resistances %v/%v/%v without armor, want zeros",
			s.BallisticResistance, s.EnergyResistance, s.DistortionResistance)
	}
	if s.PitchRate != 0 || s.ScmSpeed != 0 {
		t.Errorf("flight stats %v/%v without ifcs, want zeros", s.PitchRate, s.ScmSpeed)
	}
	if s.VisibleHullArea != 100 {
		t.Errorf("visible area %v without dimensions, want the default 100", s.VisibleHullArea)
	}
	if s.MaxWeaponPower != nil {
		t.Errorf("weapon power pool %v without pools, want nil", *s.MaxWeaponPower)
	}
}

func TestNewShipFromDescriptorMissingHull(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(Descriptor)
	}{
		{
			"no hull block",
			func(d Descriptor) { delete(d["data"].(map[string]interface{}), "hull") },
		},
		{
			"no hull parts",
			func(d Descriptor) {
				d["data"].(map[string]interface{})["hull"] = map[string]interface{}{
					"hp": []interface{}{},
				}
			},
		},
		{
			"no local name",
			func(d Descriptor) { delete(d, "localName") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := fixtureShipDescriptor()
			tt.mutate(source)

			_, err := NewShipFromDescriptor(source)
			if !errors.Is(err, ErrDescriptorMissingField) {
				t.Errorf("got %v, want ErrDescriptorMissingField", err)
			}
		})
	}
}
