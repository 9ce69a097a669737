package game

import "dogfight_simulator/internal/model"

// Fixture records used across the tests of this package. The
// values are chosen so that the expected combat math stays
// easy to derive by hand.

func fixtureShipSparrow() model.Ship {
	return model.Ship{
		Name:                 "Sparrow",
		Size:                 1,
		ShieldFaces:          model.FacesBubble,
		PitchRate:            60,
		ScmSpeed:             200,
		TotalHP:              4000,
		VitalHullHP:          2500,
		VitalHullName:        "body",
		VisibleHullArea:      300,
		BallisticResistance:  0,
		EnergyResistance:     0,
		DistortionResistance: 0,
	}
}

func fixtureShipVulture() model.Ship {
	return model.Ship{
		Name:                 "Vulture",
		Size:                 2,
		ShieldFaces:          model.FacesBubble,
		PitchRate:            35,
		ScmSpeed:             170,
		TotalHP:              6000,
		VitalHullHP:          3500,
		VitalHullName:        "fuselage",
		VisibleHullArea:      500,
		BallisticResistance:  0,
		EnergyResistance:     0,
		DistortionResistance: 0,
	}
}

func fixtureShieldGenerator() model.Shield {
	return model.Shield{
		Name:          "SG-1",
		TotalHP:       1200,
		Size:          1,
		MaxPowerSlots: 1,
		MinPowerSlots: 1,

		MinBallisticResistance:  0.6,
		MaxBallisticResistance:  1,
		MinEnergyResistance:     0.6,
		MaxEnergyResistance:     1,
		MinDistortionResistance: 0.6,
		MaxDistortionResistance: 1,

		MinBallisticAbsorption:  0.5,
		MaxBallisticAbsorption:  0.8,
		MinEnergyAbsorption:     0.5,
		MaxEnergyAbsorption:     0.8,
		MinDistortionAbsorption: 0.5,
		MaxDistortionAbsorption: 0.8,
	}
}

func fixtureWeaponBadger() model.Weapon {
	return model.Weapon{
		Name:            "Badger Repeater",
		Size:            2,
		FireRate:        2,
		AmmoCount:       400,
		Spread:          0.5,
		AlphaDamage:     30,
		DamageType:      model.Ballistic,
		ProjectileSpeed: 700,
		BurstDuration:   10,
		BurstCooldown:   5,
		BurstDPS:        60,
		TotalRuntime:    200,
	}
}

func fixtureWeaponLumin() model.Weapon {
	return model.Weapon{
		Name:            "Lumin Cannon",
		Size:            2,
		FireRate:        5,
		AmmoCount:       0,
		Spread:          0.4,
		AlphaDamage:     9,
		DamageType:      model.Energy,
		ProjectileSpeed: 1200,
		BurstDuration:   12,
		BurstCooldown:   6,
		BurstDPS:        45,
		TotalRuntime:    1000,
	}
}

func fixtureCatalog() *model.Catalog {
	catalog := model.NewCatalog(nil)

	catalog.AddShip(fixtureShipSparrow())
	catalog.AddShip(fixtureShipVulture())
	catalog.AddShield(fixtureShieldGenerator())
	catalog.AddWeapon(fixtureWeaponBadger())
	catalog.AddWeapon(fixtureWeaponLumin())

	catalog.AddLoadout(fixtureLoadoutSparrow())
	catalog.AddLoadout(fixtureLoadoutVulture())

	return catalog
}

func fixtureLoadoutSparrow() model.Loadout {
	return model.Loadout{
		Identifier:             "sparrow-duelist",
		Name:                   "Sparrow Duelist",
		ShipName:               "Sparrow",
		WeaponsPowerPercentage: 1,
		ShieldsPowerPercentage: 1,
		Operators:              []string{model.PilotOperator},
		Weapons: map[string][]string{
			model.PilotOperator: {"Badger Repeater", "Lumin Cannon"},
		},
		Shields: []string{"SG-1"},
	}
}

func fixtureLoadoutVulture() model.Loadout {
	return model.Loadout{
		Identifier:             "vulture-brawler",
		Name:                   "Vulture Brawler",
		ShipName:               "Vulture",
		WeaponsPowerPercentage: 1,
		ShieldsPowerPercentage: 1,
		Operators:              []string{model.PilotOperator, "Turret 1"},
		Weapons: map[string][]string{
			model.PilotOperator: {"Badger Repeater"},
			"Turret 1":          {"Lumin Cannon"},
		},
		Shields: []string{"SG-1"},
	}
}
