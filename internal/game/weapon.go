package game

import (
	"math"

	"dogfight_simulator/internal/model"
)

// maxWeaponRuntime : Firing budget assumed for a weapon whose
// record does not bound its runtime.
const maxWeaponRuntime = 99999.0

// Weapon :
// Defines the runtime duty cycle of a weapon during one
// engagement: a tick driven state machine alternating firing
// windows and cooldown dwells until the total firing budget
// of the gun is exhausted.
//
// The `dmgType` defines the single channel the weapon deals
// damage along. A weapon without a channel never readies.
//
// The `timeOnTarget` defines the fraction of the theoretical
// output actually landed, in [0; 1]. It combines the skill
// of the operator with the mobility advantage of the ship.
//
// The `burstDPS` defines the damage dealt per firing tick
// before time on target scaling.
//
// The `maxBurstLength` defines the full firing window of the
// gun in ticks while `burstLength` is the window actually
// used, scaled by the power assigned to the weapons.
//
// The `burstCooldown` defines the dwell in ticks between two
// windows and `runtime` the total firing budget for the
// engagement.
//
// The `readyToFire` boolean together with the three counters
// (`burstTimer`, `cooldownTimer`, `firingTimer`, in ticks)
// encodes the state of the duty cycle.
//
// The `spreadRadius`, `targetSaturationPercent` and
// `targetVitalPercent` are the saturation figures computed
// against the current target. They are informational: the
// time on target already scales the output.
type Weapon struct {
	dmgType         model.DamageType
	timeOnTarget    float64
	burstDPS        float64
	maxBurstLength  float64
	burstLength     float64
	burstCooldown   float64
	runtime         float64
	spread          float64
	projectileSpeed float64
	powerPercent    float64

	readyToFire   bool
	burstTimer    int
	cooldownTimer int
	firingTimer   int

	spreadRadius            float64
	targetSaturationPercent float64
	targetVitalPercent      float64
}

// NewWeapon :
// Used to create the runtime state of the input weapon for
// one engagement. The weapon starts cold: not ready to fire
// and with all counters at zero.
//
// The `weapon` defines the normalized record of the gun.
//
// The `timeOnTarget` defines the landing fraction granted
// by the operator of the gun.
//
// Returns the created weapon.
func NewWeapon(weapon model.Weapon, timeOnTarget float64) *Weapon {
	w := Weapon{
		dmgType:         weapon.DamageType,
		timeOnTarget:    math.Max(0, math.Min(timeOnTarget, 1)),
		burstDPS:        weapon.BurstDPS,
		maxBurstLength:  weapon.BurstDuration,
		burstCooldown:   weapon.BurstCooldown,
		runtime:         weapon.TotalRuntime,
		spread:          weapon.Spread,
		projectileSpeed: weapon.ProjectileSpeed,
	}

	if w.runtime == 0 {
		w.runtime = maxWeaponRuntime
	}

	w.burstLength = w.maxBurstLength * w.powerPercent

	return &w
}

// SetPowerPercent :
// Used to assign the fraction of the weapon power segments
// granted to this gun. The firing window scales accordingly:
// a power starved gun fires shorter bursts.
//
// The `powerPercent` defines the fraction to assign, clamped
// to [0; 1].
func (w *Weapon) SetPowerPercent(powerPercent float64) {
	w.powerPercent = math.Max(0, math.Min(powerPercent, 1))
	w.burstLength = w.maxBurstLength * w.powerPercent
}

// IsReady :
// Used to determine whether the gun can take part in an
// engagement: it needs a damage channel. The call also
// updates the time on target with the mobility advantage
// of the owning contestant: an agile attacker keeps its
// guns on target longer. A zero time on target is treated
// as unset and seeded from the advantage alone.
//
// The `adv` defines the mobility advantage scalar.
//
// Returns `true` when the gun is operational, which is
// also stored as the firing state.
func (w *Weapon) IsReady(adv float64) bool {
	ready := true

	if w.dmgType != model.Ballistic && w.dmgType != model.Energy && w.dmgType != model.Distortion {
		ready = false
	}
	if w.powerPercent == 0 {
		w.powerPercent = 1
	}

	if w.timeOnTarget == 0 {
		w.timeOnTarget = math.Max(0, math.Min(adv, 1))
	} else {
		w.timeOnTarget = math.Max(0, math.Min(w.timeOnTarget*adv, 1))
	}

	w.readyToFire = ready

	return ready
}

// CalculateSaturation :
// Used to compute the saturation figures of the gun against
// a target of the input size at the input distance: how much
// of the dispersion cone the target fills and how much of it
// the vital section fills. These figures are informational,
// the damage output does not re-apply them.
//
// The `distance` defines the engagement distance.
//
// The `targetSize` defines the cross section of the target.
func (w *Weapon) CalculateSaturation(distance float64, targetSize float64) {
	w.spreadRadius = math.Tan(w.spread/2) * distance
	w.targetSaturationPercent = clamp01(100 * (targetSize * targetSize) / (w.spreadRadius * w.spreadRadius))
	w.targetVitalPercent = clamp01(((targetSize * 0.6) * (targetSize * 0.6)) / (targetSize * targetSize))
}

// Fire :
// Used to advance the duty cycle of the gun by one tick and
// collect the damage it deals during that tick.
//
// While ready the gun emits its per-tick damage scaled by
// the time on target; reaching the end of the firing window
// sends it cooling and reaching the total firing budget
// exhausts it for the rest of the engagement. While cooling
// the dwell counter runs until the gun re-arms.
//
// Returns the damage dealt during this tick, zero when the
// gun is not firing.
func (w *Weapon) Fire() Damage {
	var output Damage

	if w.readyToFire {
		w.firingTimer++
		w.burstTimer++

		output = NewDamageOfType(w.dmgType, w.burstDPS*w.timeOnTarget)

		if float64(w.burstTimer) >= w.burstLength {
			w.burstTimer = 0
			w.cooldownTimer = 0
			w.readyToFire = false
		}

		if float64(w.firingTimer) >= w.runtime {
			w.readyToFire = false
		}

		return output
	}

	if float64(w.firingTimer) < w.runtime {
		w.cooldownTimer++
		if float64(w.cooldownTimer) >= w.burstCooldown {
			w.burstTimer = 0
			w.cooldownTimer = 0
			w.readyToFire = true
		} else {
			w.burstTimer = 0
			w.readyToFire = false
		}
	} else {
		// Out of ammunition: the gun stays cold.
		w.readyToFire = false
	}

	return output
}

// Cooldown :
// Used to re-arm the gun between two engagements: ready to
// fire with all counters at zero.
func (w *Weapon) Cooldown() {
	w.readyToFire = true
	w.burstTimer = 0
	w.cooldownTimer = 0
	w.firingTimer = 0
}

// clamp01 :
// Clamps the input value to [0; 1].
//
// The `v` defines the value to clamp.
//
// Returns the clamped value.
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
