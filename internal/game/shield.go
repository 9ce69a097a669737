package game

import (
	"fmt"

	"dogfight_simulator/internal/model"
)

// Shield :
// Defines the runtime state of the composite shield array of
// a contestant. Several shield generators aggregate into one
// array whose capacity is divided evenly among the faces of
// the geometry fitted to the ship: the simulation only ever
// engages one face.
//
// The `maxHP` defines the capacity of one face, 0 when the
// ship has no shield geometry at all.
//
// The `currentHP` defines the remaining capacity. It is not
// floored at 0: the overkill of the last hit stays visible.
//
// The `maxPowerSlots` defines the total power segments the
// generators can consume and `powerPercentage` the fraction
// actually assigned.
//
// The six modifiers define per channel how much incoming
// damage the array catches (absorption) and how much of the
// caught damage depletes the capacity (resistance). They all
// decay towards their minimum as the capacity drops.
type Shield struct {
	maxHP           float64
	currentHP       float64
	maxPowerSlots   float64
	powerPercentage float64

	balResistance Modifier
	engResistance Modifier
	disResistance Modifier
	balAbsorption Modifier
	engAbsorption Modifier
	disAbsorption Modifier
}

// mean :
// Arithmetic mean of the input values.
//
// The `values` define the values to average.
//
// Returns the mean.
func mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}

	return total / float64(len(values))
}

// NewShield :
// Used to create the runtime shield array aggregating the
// input generators. Each modifier is initialized from the
// arithmetic mean of the corresponding range bound across
// the generators.
//
// The `shields` define the normalized records of the fitted
// generators.
//
// The `faces` defines among how many faces the aggregated
// capacity is divided; 0 produces a dead array that lets
// everything through.
//
// The `powerAssigned` defines the fraction of the power
// segments assigned to the shields.
//
// Returns the created shield along with any error in case
// no generator is provided or none of them consumes power.
func NewShield(shields []model.Shield, faces int, powerAssigned float64) (*Shield, error) {
	if len(shields) == 0 {
		return nil, fmt.Errorf("%w: no shield generator to aggregate", ErrInvalidArithmetic)
	}

	s := Shield{}

	if faces > 0 {
		total := 0.0
		for _, shield := range shields {
			total += shield.TotalHP
		}
		s.maxHP = total / float64(faces)
	}
	s.currentHP = s.maxHP

	for _, shield := range shields {
		s.maxPowerSlots += shield.MaxPowerSlots
	}
	if s.maxPowerSlots == 0 {
		return nil, fmt.Errorf("%w: shield array consumes no power", ErrInvalidArithmetic)
	}
	s.powerPercentage = powerAssigned / s.maxPowerSlots

	collect := func(pick func(model.Shield) float64) []float64 {
		out := make([]float64, 0, len(shields))
		for _, shield := range shields {
			out = append(out, pick(shield))
		}
		return out
	}

	var err error

	s.balResistance, err = NewModifier(model.Ballistic,
		mean(collect(func(m model.Shield) float64 { return m.MaxBallisticResistance })),
		mean(collect(func(m model.Shield) float64 { return m.MinBallisticResistance })))
	if err != nil {
		return nil, err
	}

	s.engResistance, err = NewModifier(model.Energy,
		mean(collect(func(m model.Shield) float64 { return m.MaxEnergyResistance })),
		mean(collect(func(m model.Shield) float64 { return m.MinEnergyResistance })))
	if err != nil {
		return nil, err
	}

	s.disResistance, err = NewModifier(model.Distortion,
		mean(collect(func(m model.Shield) float64 { return m.MaxDistortionResistance })),
		mean(collect(func(m model.Shield) float64 { return m.MinDistortionResistance })))
	if err != nil {
		return nil, err
	}

	s.balAbsorption, err = NewModifier(model.Ballistic,
		mean(collect(func(m model.Shield) float64 { return m.MaxBallisticAbsorption })),
		mean(collect(func(m model.Shield) float64 { return m.MinBallisticAbsorption })))
	if err != nil {
		return nil, err
	}

	s.engAbsorption, err = NewModifier(model.Energy,
		mean(collect(func(m model.Shield) float64 { return m.MaxEnergyAbsorption })),
		mean(collect(func(m model.Shield) float64 { return m.MinEnergyAbsorption })))
	if err != nil {
		return nil, err
	}

	s.disAbsorption, err = NewModifier(model.Distortion,
		mean(collect(func(m model.Shield) float64 { return m.MaxDistortionAbsorption })),
		mean(collect(func(m model.Shield) float64 { return m.MinDistortionAbsorption })))
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// IsReady :
// Used to determine whether the shield array can take part
// in an engagement: it needs power assigned, a capacity to
// divide and some of it remaining. When power is available
// the call also scales all six modifiers down according to
// the assigned power, which is the initial decrement every
// engagement starts from.
//
// Returns `true` when the array is operational.
func (s *Shield) IsReady() bool {
	ready := true

	if s.powerPercentage == 0 {
		ready = false
	} else {
		s.decrementAll(s.powerPercentage)
	}

	if s.currentHP <= 0 || s.maxHP == 0 {
		ready = false
	}

	return ready
}

// ApplyDamage :
// Used to land the input damage on the shield array. The
// absorption modifiers determine what the array catches at
// all, the resistance modifiers what part of the caught
// damage actually depletes the capacity, and the remainder
// of the incoming damage leaks to the hull. Both families
// of modifiers then decay according to the new capacity so
// a weakening shield catches and resists less and less.
//
// A depleted array lets everything through.
//
// The `incoming` defines the damage to land.
//
// Returns the damage result for this layer.
func (s *Shield) ApplyDamage(incoming Damage) DamageResult {
	if s.currentHP <= 0 {
		return DamageResult{
			Incoming:    Damage{},
			Passthrough: incoming,
		}
	}

	absorbed := Damage{
		Ballistic:  s.balAbsorption.Apply(incoming.Ballistic),
		Energy:     s.engAbsorption.Apply(incoming.Energy),
		Distortion: s.disAbsorption.Apply(incoming.Distortion),
	}

	applied := Damage{
		Ballistic:  s.balResistance.Apply(absorbed.Ballistic),
		Energy:     s.engResistance.Apply(absorbed.Energy),
		Distortion: s.disResistance.Apply(absorbed.Distortion),
	}

	passthrough := incoming.Minus(absorbed)

	s.currentHP -= applied.Total()

	s.decrementAll(s.currentHP / s.maxHP)

	return DamageResult{
		Incoming:    applied,
		Passthrough: passthrough,
	}
}

// decrementAll :
// Used to interpolate all six modifiers according to the
// input controlling percentage.
//
// The `percentage` defines the controlling percentage.
func (s *Shield) decrementAll(percentage float64) {
	s.balResistance.Decrement(percentage)
	s.engResistance.Decrement(percentage)
	s.disResistance.Decrement(percentage)
	s.balAbsorption.Decrement(percentage)
	s.engAbsorption.Decrement(percentage)
	s.disAbsorption.Decrement(percentage)
}

// Reset :
// Restores the shield array to its post-construction state:
// full capacity and modifiers at their maximum, then the
// power-based decrement is re-applied the way every
// engagement starts.
func (s *Shield) Reset() {
	s.currentHP = s.maxHP
	s.balResistance.reset()
	s.engResistance.reset()
	s.disResistance.reset()
	s.balAbsorption.reset()
	s.engAbsorption.reset()
	s.disAbsorption.reset()
	s.IsReady()
}

// CurrentHP :
// Provides the remaining capacity of the engaged face.
//
// Returns the current capacity.
func (s *Shield) CurrentHP() float64 {
	return s.currentHP
}

// MaxHP :
// Provides the starting capacity of the engaged face.
//
// Returns the maximum capacity.
func (s *Shield) MaxHP() float64 {
	return s.maxHP
}
