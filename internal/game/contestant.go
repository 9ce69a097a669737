package game

import (
	"strings"

	"dogfight_simulator/internal/model"
)

// Default landing fractions granted by the operators of the
// weapons. A dedicated gunner holds the target better than
// a pilot also flying the ship.
const (
	DefaultPilotTimeOnTarget  = 0.75
	DefaultTurretTimeOnTarget = 0.95
)

// Contestant :
// Aggregates one side of an engagement: the hull and shield
// of the ship plus the weapons of the loadout grouped by the
// operator firing them.
//
// The `name` defines the display name of the loadout the
// contestant was built from.
//
// The `weaponPower` and `shieldPower` carry the power
// distribution of the loadout.
//
// The `pilotTOT` and `turretTOT` define the landing fraction
// granted to pilot and turret operated weapons.
//
// The `mobilityMultiplier` stores the mobility advantage
// computed by the simulation for the current engagement.
//
// The `operators` list the operator keys in declaration
// order and `operatorWeapons` groups the weapons per key;
// `weapons` flattens them in the same order for the firing
// loop.
type Contestant struct {
	name               string
	weaponPower        float64
	shieldPower        float64
	pilotTOT           float64
	turretTOT          float64
	mobilityMultiplier float64

	hull            *Hull
	shield          *Shield
	weapons         []*Weapon
	operators       []string
	operatorWeapons map[string][]*Weapon
}

// NewContestant :
// Used to build a contestant from the input loadout. The
// ship, shield generators and weapons are resolved by name
// against the catalog; a name the catalog does not know
// produces an error. Pilot operated weapons receive the
// pilot landing fraction, turret operated ones the turret
// fraction, and every gun receives the weapon power of the
// loadout.
//
// The `loadout` defines the normalized loadout to build
// from.
//
// The `catalog` defines the registry resolving equipment
// names.
//
// The `pilotTOT` and `turretTOT` define the landing
// fractions granted by the operators.
//
// Returns the created contestant along with any error.
func NewContestant(loadout model.Loadout, catalog *model.Catalog, pilotTOT float64, turretTOT float64) (*Contestant, error) {
	c := Contestant{
		name:               loadout.Name,
		weaponPower:        loadout.WeaponsPowerPercentage,
		shieldPower:        loadout.ShieldsPowerPercentage,
		pilotTOT:           pilotTOT,
		turretTOT:          turretTOT,
		mobilityMultiplier: 1,
		weapons:            make([]*Weapon, 0),
		operators:          make([]string, 0, len(loadout.Operators)),
		operatorWeapons:    make(map[string][]*Weapon),
	}

	ship, err := catalog.Ship(loadout.ShipName)
	if err != nil {
		return nil, err
	}
	c.hull, err = NewHull(ship)
	if err != nil {
		return nil, err
	}

	generators := make([]model.Shield, 0, len(loadout.Shields))
	for _, name := range loadout.Shields {
		generator, err := catalog.Shield(name)
		if err != nil {
			return nil, err
		}
		generators = append(generators, generator)
	}

	c.shield, err = NewShield(generators, ship.ShieldFaces.FaceCount(), loadout.ShieldsPowerPercentage)
	if err != nil {
		return nil, err
	}

	for _, operator := range loadout.Operators {
		timeOnTarget := c.turretTOT
		if strings.ToLower(operator) == model.PilotOperator {
			timeOnTarget = c.pilotTOT
		}

		weapons := make([]*Weapon, 0, len(loadout.Weapons[operator]))
		for _, name := range loadout.Weapons[operator] {
			record, err := catalog.Weapon(name)
			if err != nil {
				return nil, err
			}

			weapon := NewWeapon(record, timeOnTarget)
			weapon.SetPowerPercent(loadout.WeaponsPowerPercentage)

			weapons = append(weapons, weapon)
		}

		c.operators = append(c.operators, operator)
		c.operatorWeapons[operator] = weapons
		c.weapons = append(c.weapons, weapons...)
	}

	return &c, nil
}

// IsReady :
// Used to determine whether the contestant can take part in
// an engagement: it needs at least one weapon, all weapons
// ready, an operational shield and a hull. Every weapon is
// probed even after a failure as readying a weapon updates
// its saturation figures and its time on target.
//
// The `dist` defines the engagement distance.
//
// The `size` defines the cross section of the opponent.
//
// The `adv` defines the mobility advantage computed by the
// simulation.
//
// Returns `true` when the contestant is operational.
func (c *Contestant) IsReady(dist float64, size float64, adv float64) bool {
	ready := true

	if len(c.weapons) == 0 {
		ready = false
	}
	for _, weapon := range c.weapons {
		weapon.CalculateSaturation(dist, size)
		if !weapon.IsReady(adv) {
			ready = false
		}
	}
	if c.shield == nil || !c.shield.IsReady() {
		ready = false
	}
	if c.hull == nil {
		ready = false
	}

	return ready
}

// FireWeapons :
// Used to advance the duty cycle of every weapon by one tick
// and aggregate the damage they deal.
//
// Returns the channelwise sum of the outputs.
func (c *Contestant) FireWeapons() Damage {
	var total Damage

	for _, weapon := range c.weapons {
		total = total.Plus(weapon.Fire())
	}

	return total
}

// ApplyDamage :
// Used to land the input damage on the contestant: the
// shield catches what it can and the hull receives the
// passthrough.
//
// The `incoming` defines the damage to land.
//
// Returns the damage results of the shield and of the hull.
func (c *Contestant) ApplyDamage(incoming Damage) (DamageResult, DamageResult) {
	shieldResult := c.shield.ApplyDamage(incoming)
	hullResult := c.hull.ApplyDamage(shieldResult.Passthrough)

	return shieldResult, hullResult
}

// Reset :
// Restores the contestant to its post-construction state:
// shield and hull back to their maxima and every weapon
// re-armed.
func (c *Contestant) Reset() {
	c.shield.Reset()
	c.hull.Reset()
	for _, weapon := range c.weapons {
		weapon.Cooldown()
	}
}

// Name :
// Provides the display name of the contestant.
//
// Returns the name.
func (c *Contestant) Name() string {
	return c.name
}

// Hull :
// Provides the hull of the contestant.
//
// Returns the hull.
func (c *Contestant) Hull() *Hull {
	return c.hull
}

// Shield :
// Provides the shield array of the contestant.
//
// Returns the shield.
func (c *Contestant) Shield() *Shield {
	return c.shield
}
