package model

import (
	"fmt"

	"github.com/google/uuid"
)

// PilotOperator : Reserved operator key grouping the weapons
// fired by the pilot of the ship. Turret operators are named
// "Turret N" with a counter starting at 1.
const PilotOperator = "pilot"

// Loadout :
// Defines the normalized description of a complete ship
// fitting: the ship itself, the power distribution and the
// equipment grouped by operator. This record is immutable
// after construction and is the entry point to building a
// contestant.
//
// The `Identifier` defines a unique identifier of the
// loadout. When the descriptor does not provide one a fresh
// identifier is generated.
//
// The `Name` defines the display name of the loadout.
//
// The `ShipName` defines the name of the ship the equipment
// is fitted to, resolved against the ships catalog.
//
// The `WeaponsPowerPercentage` defines the fraction of the
// weapon power segments actually assigned, in [0; 1].
//
// The `ShieldsPowerPercentage` fills a similar role for the
// shield power segments.
//
// The `Operators` defines the operator keys in declaration
// order: the reserved `pilot` key first, then one `Turret N`
// entry per fitted turret. The order is preserved so that
// simulations stay reproducible.
//
// The `Weapons` maps each operator to the ordered list of
// the names of the weapons it fires.
//
// The `Shields` defines the ordered list of the names of
// the fitted shield generators.
type Loadout struct {
	Identifier             string
	Name                   string
	ShipName               string
	WeaponsPowerPercentage float64
	ShieldsPowerPercentage float64
	Operators              []string
	Weapons                map[string][]string
	Shields                []string
}

// tractorBeamItemType : Item type marking tractor beams, which
// occupy weapon hardpoints but deal no damage and are skipped
// while collecting weapons.
const tractorBeamItemType = "TractorBeam"

// hasTractorBeam :
// Used to determine whether a loadout entry carries an item
// typed as a tractor beam.
//
// The `entry` defines the loadout entry to inspect.
//
// Returns `true` when one of the item types of the entry is
// a tractor beam.
func hasTractorBeam(entry Descriptor) bool {
	types, ok := entry.listAt("itemTypes")
	if !ok {
		return false
	}

	for _, raw := range types {
		it, ok := asDescriptor(raw)
		if !ok {
			continue
		}

		if t, ok := it.stringAt("type"); ok && t == tractorBeamItemType {
			return true
		}
	}

	return false
}

// powerPercentage :
// Used to compute the fraction of the power segments of one
// resource that are assigned. Slots marked as disabled are
// ignored entirely; the remaining slots contribute to the
// available total and, when selected, to the assigned total.
//
// The `slots` defines the segment configuration entries of
// the resource.
//
// Returns the assigned fraction, defaulting to 1 when the
// resource has no available slot at all.
func powerPercentage(slots []interface{}) float64 {
	available := 0.0
	assigned := 0.0

	for _, raw := range slots {
		slot, ok := asDescriptor(raw)
		if !ok {
			continue
		}

		disabled := false
		if v, ok := slot["disabled"]; ok {
			disabled, _ = v.(bool)
		}
		if disabled {
			continue
		}

		number := slot.floatOr("number", 0)
		available += number

		selected := false
		if v, ok := slot["selected"]; ok {
			selected, _ = v.(bool)
		}
		if selected {
			assigned += number
		}
	}

	if available == 0 {
		return 1
	}

	return assigned / available
}

// entryWeaponName :
// Used to extract the calculator type and the local name of
// the item carried by a loadout entry.
//
// The `entry` defines the loadout entry to inspect.
//
// Returns the calculator type, the local name and any error
// in case the entry does not carry an item.
func entryWeaponName(entry Descriptor) (string, string, error) {
	item, err := entry.requireChild("item")
	if err != nil {
		return "", "", err
	}

	calcType, err := item.requireString("calculatorType")
	if err != nil {
		return "", "", err
	}

	name, _ := item.stringAt("localName")

	return calcType, name, nil
}

// collectMountedWeapons :
// Used to walk the sub-loadout of a mount or turret entry and
// collect the names of the weapons it carries. Entries typed
// as tractor beams are skipped.
//
// The `entry` defines the mount entry whose sub-loadout is to
// be walked.
//
// Returns the collected weapon names along with any error.
func collectMountedWeapons(entry Descriptor) ([]string, error) {
	names := make([]string, 0)

	sub, ok := entry.listAt("loadout")
	if !ok {
		return names, nil
	}

	for _, raw := range sub {
		mounted, ok := asDescriptor(raw)
		if !ok {
			continue
		}

		if hasTractorBeam(mounted) {
			continue
		}

		calcType, name, err := entryWeaponName(mounted)
		if err != nil {
			return names, err
		}

		if calcType == "weapon" {
			names = append(names, name)
		}
	}

	return names, nil
}

// NewLoadoutFromDescriptor :
// Used to distill the raw descriptor of a loadout into its
// normalized record. The walk classifies the entries of the
// loadout by their card: weapon entries attach to the pilot,
// each non-empty turret entry opens a new operator and shield
// entries accumulate in the shields list. Tractor beams are
// skipped wherever weapons are collected.
//
// Note that an entry of the weapons card carrying a weapon
// directly (rather than through a mount) attaches the name
// of that entry's own item.
//
// The `data` defines the raw descriptor of the loadout.
//
// Returns the normalized loadout along with any error.
func NewLoadoutFromDescriptor(data Descriptor) (Loadout, error) {
	var l Loadout

	name, err := data.requireString("name")
	if err != nil {
		return l, err
	}
	l.Name = name

	// The identifier falls back to a generated value when the
	// descriptor provides none.
	if id, ok := data.stringAt("shortened"); ok {
		l.Identifier = id
	} else if id, ok := data.stringAt("identifier"); ok {
		l.Identifier = id
	} else {
		l.Identifier = uuid.New().String()
	}

	loadout, err := data.requireChild("loadout")
	if err != nil {
		return l, err
	}

	ship, err := loadout.requireChild("ship")
	if err != nil {
		return l, err
	}
	shipName, err := ship.requireString("localName")
	if err != nil {
		return l, err
	}
	l.ShipName = shipName

	// Power distribution: fraction of the non-disabled power
	// segments of each resource that are selected.
	weaponSlots := []interface{}{}
	shieldSlots := []interface{}{}
	if segments, ok := loadout.child("segmentConfiguration"); ok {
		if slots, ok := segments.listAt("weapon"); ok {
			weaponSlots = slots
		}
		if slots, ok := segments.listAt("shield"); ok {
			shieldSlots = slots
		}
	}
	l.WeaponsPowerPercentage = powerPercentage(weaponSlots)
	l.ShieldsPowerPercentage = powerPercentage(shieldSlots)

	items, err := loadout.requireList("loadout")
	if err != nil {
		return l, err
	}

	operatorCounter := 1
	l.Operators = []string{PilotOperator}
	l.Weapons = map[string][]string{
		PilotOperator: {},
	}
	l.Shields = make([]string, 0)

	for _, raw := range items {
		item, ok := asDescriptor(raw)
		if !ok {
			continue
		}

		card, _ := item.stringAt("card")

		switch card {
		case "turrets":
			entries, ok := item.listAt("loadout")
			if !ok || len(entries) == 0 {
				continue
			}

			operator := fmt.Sprintf("Turret %d", operatorCounter)
			operatorCounter++
			l.Operators = append(l.Operators, operator)
			l.Weapons[operator] = []string{}

			for _, rawEntry := range entries {
				entry, ok := asDescriptor(rawEntry)
				if !ok {
					continue
				}

				if hasTractorBeam(entry) {
					continue
				}

				calcType, weaponName, err := entryWeaponName(entry)
				if err != nil {
					return l, err
				}

				switch calcType {
				case "mount":
					mounted, err := collectMountedWeapons(entry)
					if err != nil {
						return l, err
					}
					l.Weapons[operator] = append(l.Weapons[operator], mounted...)
				case "weapon":
					l.Weapons[operator] = append(l.Weapons[operator], weaponName)
				}
			}

		case "weapons":
			calcType, weaponName, err := entryWeaponName(item)
			if err != nil {
				return l, err
			}

			switch {
			case calcType == "mount" || calcType == "turret":
				mounted, err := collectMountedWeapons(item)
				if err != nil {
					return l, err
				}
				l.Weapons[PilotOperator] = append(l.Weapons[PilotOperator], mounted...)
			case calcType == "weapon" && len(weaponName) > 0 && !hasTractorBeam(item):
				l.Weapons[PilotOperator] = append(l.Weapons[PilotOperator], weaponName)
			}

		case "shields":
			item, err := item.requireChild("item")
			if err != nil {
				return l, err
			}
			shieldName, err := item.requireString("localName")
			if err != nil {
				return l, err
			}
			l.Shields = append(l.Shields, shieldName)
		}
	}

	return l, nil
}
