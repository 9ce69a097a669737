package model

// Weapon :
// Defines the normalized statistics of a weapon as distilled
// from its raw descriptor. The record is immutable and feeds
// the duty-cycle state machine of the combat engine.
//
// The `Name` defines the local name of the weapon, used as a
// key by loadouts.
//
// The `Size` defines the size class of the weapon.
//
// The `FireRate` defines the firing rate of the weapon in
// shots per tick (the raw per-minute rate divided by 60).
//
// The `AmmoCount` defines the capacity of the ammunition
// container. A value of 0 indicates a capacitor-fed energy
// weapon.
//
// The `Spread` defines the maximum dispersion cone of the
// weapon in radians.
//
// The `AlphaDamage` defines the damage of a single shot on
// the weapon's channel.
//
// The `DamageType` defines the single channel along which
// the weapon deals its damage.
//
// The `ProjectileSpeed` defines the speed of the projectile
// in meters per second.
//
// The `BurstDuration` defines how many ticks the weapon can
// fire before its heat or capacitor forces a dwell.
//
// The `BurstCooldown` defines the dwell in ticks after a
// burst before the weapon can re-arm.
//
// The `BurstDPS` defines the damage per tick while firing,
// computed as the alpha damage times the fire rate.
//
// The `TotalRuntime` defines the total firing budget of the
// weapon for one engagement in ticks. Once elapsed the gun
// is exhausted (out of ammunition).
type Weapon struct {
	Name            string
	Size            int
	FireRate        float64
	AmmoCount       int
	Spread          float64
	AlphaDamage     float64
	DamageType      DamageType
	ProjectileSpeed float64
	BurstDuration   float64
	BurstCooldown   float64
	BurstDPS        float64
	TotalRuntime    float64
}

// Defaults applied while normalizing weapon descriptors.
const (
	// defaultFireRate : Raw per-minute firing rate assumed
	// when a descriptor does not provide one.
	defaultFireRate = 10.0

	// defaultSpread : Dispersion assumed when a descriptor
	// does not provide a spread block.
	defaultSpread = 0.5

	// energyWeaponRuntime : Firing budget of capacitor-fed
	// weapons, which regenerate and never run dry. The value
	// exceeds the default simulation length of 999 ticks.
	energyWeaponRuntime = 1000.0

	// unboundedBurstDuration : Burst length assumed for a
	// ballistic gun which generates no heat.
	unboundedBurstDuration = 99999.0
)

// NewWeaponFromDescriptor :
// Used to distill the raw descriptor of a weapon into its
// normalized record. The normalization is discriminated on
// the ammunition count: guns with a container are ballistic
// and bounded by their heat dynamics while guns without one
// are capacitor-fed energy or distortion weapons bounded by
// their regeneration.
//
// The `source` defines the raw descriptor of the weapon.
//
// Returns the normalized weapon along with any error.
func NewWeaponFromDescriptor(source Descriptor) (Weapon, error) {
	var w Weapon

	name, err := source.requireString("localName")
	if err != nil {
		return w, err
	}
	w.Name = name

	data, err := source.requireChild("data")
	if err != nil {
		return w, err
	}

	size, err := data.requireFloat("size")
	if err != nil {
		return w, err
	}
	w.Size = int(size)

	weapon, err := data.requireChild("weapon")
	if err != nil {
		return w, err
	}
	fireActions, err := weapon.requireChild("fireActions")
	if err != nil {
		return w, err
	}
	w.FireRate = fireActions.floatOr("fireRate", defaultFireRate) / 60.0

	w.Spread = defaultSpread
	if spread, ok := weapon.child("spread"); ok {
		max, err := spread.requireFloat("max")
		if err != nil {
			return w, err
		}
		w.Spread = max
	}

	ammo, err := data.requireChild("ammo")
	if err != nil {
		return w, err
	}
	ammoData, err := ammo.requireChild("data")
	if err != nil {
		return w, err
	}
	speed, err := ammoData.requireFloat("speed")
	if err != nil {
		return w, err
	}
	w.ProjectileSpeed = speed

	ammoCount := 0.0
	if container, ok := data.child("ammoContainer"); ok {
		ammoCount = container.floatOr("maxAmmoCount", 0)
	}
	w.AmmoCount = int(ammoCount)

	damage, err := ammoData.requireChild("damage")
	if err != nil {
		return w, err
	}

	if w.AmmoCount == 0 {
		// Capacitor-fed weapon: the channel is read from the
		// non-zero damage component of the ammunition.
		if eng := damage.floatOr("damageEnergy", 0); eng > 0 {
			w.DamageType = Energy
			w.AlphaDamage = eng
		} else if dis := damage.floatOr("damageDistortion", 0); dis > 0 {
			w.DamageType = Distortion
			w.AlphaDamage = dis
		} else {
			return w, missingField("ammo.data.damage")
		}

		regen, err := weapon.requireChild("regen")
		if err != nil {
			return w, err
		}
		maxAmmoLoad, err := regen.requireFloat("maxAmmoLoad")
		if err != nil {
			return w, err
		}
		maxRegenPerSec, err := regen.requireFloat("maxRegenPerSec")
		if err != nil {
			return w, err
		}

		w.BurstDuration = maxAmmoLoad / w.FireRate
		w.BurstCooldown = maxAmmoLoad / maxRegenPerSec
		w.TotalRuntime = energyWeaponRuntime
		w.BurstDPS = w.AlphaDamage * w.FireRate

		return w, nil
	}

	// Ballistic gun: the burst length derives from the heat
	// dynamics of the weapon and the runtime from emptying
	// the ammunition container burst after burst.
	w.DamageType = Ballistic
	alpha, err := damage.requireFloat("damagePhysical")
	if err != nil {
		return w, err
	}
	w.AlphaDamage = alpha

	connection, err := weapon.requireChild("connection")
	if err != nil {
		return w, err
	}
	heat, ok := connection.child("simplifiedHeat")
	if !ok {
		heat = Descriptor{
			"overheatTemperature":   1.0,
			"minTemperature":        0.0,
			"timeTillCoolingStarts": 0.0,
			"overheatFixTime":       0.0,
		}
	}

	overheatTemp := heat.floatOr("overheatTemperature", 1) - heat.floatOr("minTemperature", 0)
	cooldownTime := heat.floatOr("timeTillCoolingStarts", 0) + heat.floatOr("overheatFixTime", 0)

	heatPerShot, err := fireActions.requireFloat("heatPerShot")
	if err != nil {
		return w, err
	}
	heatGenPerSecond := heatPerShot * w.FireRate

	if heatGenPerSecond == 0 {
		w.BurstDuration = unboundedBurstDuration
	} else {
		w.BurstDuration = overheatTemp / heatGenPerSecond
	}

	w.BurstCooldown = cooldownTime

	emptyTime := float64(w.AmmoCount) / w.FireRate
	w.TotalRuntime = (emptyTime/w.BurstDuration)*w.BurstCooldown + emptyTime
	w.BurstDPS = w.AlphaDamage * w.FireRate

	return w, nil
}
