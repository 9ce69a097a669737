package game

import (
	"errors"
	"math"
	"testing"

	"dogfight_simulator/internal/model"
)

func TestNewContestantFromLoadout(t *testing.T) {
	catalog := fixtureCatalog()

	c, err := NewContestant(fixtureLoadoutVulture(), catalog, DefaultPilotTimeOnTarget, DefaultTurretTimeOnTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Name() != "Vulture Brawler" {
		t.Errorf("name %q, want \"Vulture Brawler\"", c.Name())
	}
	if len(c.weapons) != 2 {
		t.Fatalf("%d weapons, want 2", len(c.weapons))
	}

	// The pilot flies the ship while firing so a pilot gun
	// lands less than a turret gun.
	pilotGuns := c.operatorWeapons[model.PilotOperator]
	turretGuns := c.operatorWeapons["Turret 1"]
	if len(pilotGuns) != 1 || len(turretGuns) != 1 {
		t.Fatalf("operator split %d/%d, want 1/1", len(pilotGuns), len(turretGuns))
	}
	if got := pilotGuns[0].timeOnTarget; got != DefaultPilotTimeOnTarget {
		t.Errorf("pilot time on target %v, want %v", got, DefaultPilotTimeOnTarget)
	}
	if got := turretGuns[0].timeOnTarget; got != DefaultTurretTimeOnTarget {
		t.Errorf("turret time on target %v, want %v", got, DefaultTurretTimeOnTarget)
	}
}

func TestNewContestantUnknownReferences(t *testing.T) {
	catalog := fixtureCatalog()

	tests := []struct {
		name   string
		mutate func(*model.Loadout)
	}{
		{"unknown ship", func(l *model.Loadout) { l.ShipName = "Ghost" }},
		{"unknown shield", func(l *model.Loadout) { l.Shields = []string{"Ghost"} }},
		{"unknown weapon", func(l *model.Loadout) { l.Weapons[model.PilotOperator] = []string{"Ghost"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loadout := fixtureLoadoutSparrow()
			tt.mutate(&loadout)

			_, err := NewContestant(loadout, catalog, DefaultPilotTimeOnTarget, DefaultTurretTimeOnTarget)
			if !errors.Is(err, model.ErrUnknownReference) {
				t.Errorf("got %v, want ErrUnknownReference", err)
			}
		})
	}
}

func TestContestantIsReadyProbesEveryWeapon(t *testing.T) {
	catalog := fixtureCatalog()

	c, err := NewContestant(fixtureLoadoutSparrow(), catalog, DefaultPilotTimeOnTarget, DefaultTurretTimeOnTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Strip the channel of the first gun: readiness fails but
	// the second gun must still have been probed (saturation
	// computed, time on target updated).
	c.weapons[0].dmgType = ""

	if c.IsReady(400, 300, 1) {
		t.Errorf("contestant with a dead gun reported ready")
	}
	if c.weapons[1].spreadRadius == 0 {
		t.Errorf("second weapon was not probed after the first failed")
	}
}

func TestContestantWithoutWeaponsNotReady(t *testing.T) {
	catalog := fixtureCatalog()

	loadout := fixtureLoadoutSparrow()
	loadout.Weapons = map[string][]string{model.PilotOperator: {}}

	c, err := NewContestant(loadout, catalog, DefaultPilotTimeOnTarget, DefaultTurretTimeOnTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.IsReady(400, 300, 1) {
		t.Errorf("contestant without weapons reported ready")
	}
}

func TestContestantFireWeaponsAggregates(t *testing.T) {
	catalog := fixtureCatalog()

	c, err := NewContestant(fixtureLoadoutSparrow(), catalog, DefaultPilotTimeOnTarget, DefaultTurretTimeOnTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsReady(400, 300, 1) {
		t.Fatalf("fixture contestant not ready")
	}

	output := c.FireWeapons()

	// Both guns land their per-tick output scaled by the
	// pilot time on target.
	if math.Abs(output.Ballistic-60*DefaultPilotTimeOnTarget) > 1e-9 {
		t.Errorf("ballistic output %v, want %v", output.Ballistic, 60*DefaultPilotTimeOnTarget)
	}
	if math.Abs(output.Energy-45*DefaultPilotTimeOnTarget) > 1e-9 {
		t.Errorf("energy output %v, want %v", output.Energy, 45*DefaultPilotTimeOnTarget)
	}
}

func TestContestantDamageLayering(t *testing.T) {
	catalog := fixtureCatalog()

	c, err := NewContestant(fixtureLoadoutSparrow(), catalog, DefaultPilotTimeOnTarget, DefaultTurretTimeOnTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.IsReady(400, 300, 1)

	incoming := Damage{Ballistic: 100}
	shieldResult, hullResult := c.ApplyDamage(incoming)

	// Whatever the shield does not catch lands on the hull.
	if !hullResult.Incoming.Equals(shieldResult.Passthrough) {
		t.Errorf("hull received %+v, want the shield passthrough %+v", hullResult.Incoming, shieldResult.Passthrough)
	}

	sum := shieldResult.Incoming.Total() + hullResult.Incoming.Total()
	if sum > incoming.Total()+1e-9 {
		t.Errorf("layers applied %v in total out of %v incoming", sum, incoming.Total())
	}
}

func TestContestantReset(t *testing.T) {
	catalog := fixtureCatalog()

	c, err := NewContestant(fixtureLoadoutSparrow(), catalog, DefaultPilotTimeOnTarget, DefaultTurretTimeOnTarget)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.IsReady(400, 300, 1)

	for i := 0; i < 30; i++ {
		c.FireWeapons()
		c.ApplyDamage(Damage{Ballistic: 80, Energy: 40})
	}

	c.Reset()

	if c.shield.CurrentHP() != c.shield.MaxHP() {
		t.Errorf("shield at %v after reset, want %v", c.shield.CurrentHP(), c.shield.MaxHP())
	}
	if c.hull.VitalHP() != c.hull.maxVitalHP {
		t.Errorf("vital hull at %v after reset, want %v", c.hull.VitalHP(), c.hull.maxVitalHP)
	}
	if c.hull.DistortionLevel() != 0 {
		t.Errorf("distortion at %v after reset, want 0", c.hull.DistortionLevel())
	}
	for id, weapon := range c.weapons {
		if !weapon.readyToFire {
			t.Errorf("weapon %d cold after reset", id)
		}
		if weapon.firingTimer != 0 || weapon.burstTimer != 0 || weapon.cooldownTimer != 0 {
			t.Errorf("weapon %d kept counters after reset", id)
		}
	}
}
