package game

import "dogfight_simulator/internal/model"

// Damage :
// Defines an amount of damage split along the three damage
// channels of the game. Damage values are plain value types:
// the arithmetic is pointwise and never clamps, callers clamp
// where their semantics require it.
//
// The `Ballistic`, `Energy` and `Distortion` fields define
// the amount carried along each channel.
type Damage struct {
	Ballistic  float64
	Energy     float64
	Distortion float64
}

// NewDamageOfType :
// Used to create a damage value carrying the input amount
// along a single channel.
//
// The `dt` defines the channel to carry the amount.
//
// The `amount` defines the amount of damage.
//
// Returns the created damage value.
func NewDamageOfType(dt model.DamageType, amount float64) Damage {
	var d Damage

	switch dt {
	case model.Ballistic:
		d.Ballistic = amount
	case model.Energy:
		d.Energy = amount
	case model.Distortion:
		d.Distortion = amount
	}

	return d
}

// Plus :
// Channelwise addition of two damage values.
//
// The `other` defines the damage to add.
//
// Returns the sum.
func (d Damage) Plus(other Damage) Damage {
	return Damage{
		Ballistic:  d.Ballistic + other.Ballistic,
		Energy:     d.Energy + other.Energy,
		Distortion: d.Distortion + other.Distortion,
	}
}

// Minus :
// Channelwise subtraction of two damage values.
//
// The `other` defines the damage to subtract.
//
// Returns the difference.
func (d Damage) Minus(other Damage) Damage {
	return Damage{
		Ballistic:  d.Ballistic - other.Ballistic,
		Energy:     d.Energy - other.Energy,
		Distortion: d.Distortion - other.Distortion,
	}
}

// Total :
// Provides the total amount of damage carried across all the
// channels.
//
// Returns the sum of the channels.
func (d Damage) Total() float64 {
	return d.Ballistic + d.Energy + d.Distortion
}

// Equals :
// Channelwise comparison of two damage values.
//
// The `other` defines the damage to compare against.
//
// Returns `true` when all the channels are equal.
func (d Damage) Equals(other Damage) bool {
	return d.Ballistic == other.Ballistic &&
		d.Energy == other.Energy &&
		d.Distortion == other.Distortion
}

// DamageResult :
// Describes the bifurcation of some incoming damage at an
// armor layer: the part the layer actually absorbed and the
// part that leaks to the next layer.
//
// The `Incoming` defines the damage the layer applied to
// itself.
//
// The `Passthrough` defines the damage that slips through
// to the next layer.
type DamageResult struct {
	Incoming    Damage
	Passthrough Damage
}
