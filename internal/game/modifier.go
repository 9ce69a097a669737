package game

import (
	"fmt"
	"math"

	"dogfight_simulator/internal/model"
)

// ErrInvalidArithmetic :
// Used to indicate that a runtime entity was built from
// values that make its combat math meaningless, typically
// a non-finite modifier bound or a zero divisor.
var ErrInvalidArithmetic = fmt.Errorf("Invalid arithmetic in combat parameters")

// Modifier :
// Defines a bounded interpolating scalar driven by a control
// percentage. Shields and hulls use modifiers to scale the
// damage they catch or resist: as the controlling percentage
// falls (power starved shields, depleting capacity) the
// scalar interpolates linearly from its maximum down to its
// minimum.
//
// The invariant `minimum <= current <= maximum` holds at all
// times. The two bounds may be equal, collapsing the modifier
// to a constant.
//
// The `kind` defines the damage channel the modifier applies
// to.
type Modifier struct {
	kind    model.DamageType
	maximum float64
	minimum float64
	current float64
}

// NewModifier :
// Used to create a modifier interpolating between the two
// input bounds.
//
// The `kind` defines the damage channel of the modifier.
//
// The `maximum` defines the value of the modifier when the
// controlling percentage is 1.
//
// The `minimum` defines the value of the modifier when the
// controlling percentage is 0.
//
// Returns the created modifier along with any error in case
// the bounds are not finite or not ordered.
func NewModifier(kind model.DamageType, maximum float64, minimum float64) (Modifier, error) {
	m := Modifier{
		kind:    kind,
		maximum: maximum,
		minimum: minimum,
		current: maximum,
	}

	if math.IsNaN(maximum) || math.IsInf(maximum, 0) ||
		math.IsNaN(minimum) || math.IsInf(minimum, 0) {
		return m, fmt.Errorf("%w: non finite bounds for %s modifier", ErrInvalidArithmetic, kind)
	}
	if minimum > maximum {
		return m, fmt.Errorf("%w: inverted bounds for %s modifier", ErrInvalidArithmetic, kind)
	}

	return m, nil
}

// NewConstantModifier :
// Used to create a modifier collapsed to a constant: both
// bounds take the input value so decrementing it has no
// effect.
//
// The `kind` defines the damage channel of the modifier.
//
// The `value` defines the constant value.
//
// Returns the created modifier along with any error.
func NewConstantModifier(kind model.DamageType, value float64) (Modifier, error) {
	return NewModifier(kind, value, value)
}

// Decrement :
// The only mutator of the modifier. Interpolates the current
// value linearly between the bounds based on the controlling
// percentage: 1 keeps the maximum, 0 falls to the minimum.
// Values outside of [0; 1] are assumed not to occur, callers
// are responsible for the clamping.
//
// The `percentage` defines the controlling percentage.
//
// Returns the new current value.
func (m *Modifier) Decrement(percentage float64) float64 {
	m.current = math.Max(m.minimum, m.maximum-(m.maximum-m.minimum)*(1-percentage))

	return m.current
}

// Apply :
// Pure scaling of the input value by the current value of
// the modifier. Negative results are clamped to 0.
//
// The `value` defines the value to scale.
//
// Returns the scaled value.
func (m Modifier) Apply(value float64) float64 {
	return math.Max(0, value*m.current)
}

// Current :
// Provides the current value of the modifier.
//
// Returns the current value.
func (m Modifier) Current() float64 {
	return m.current
}

// reset :
// Restores the modifier to its post-construction state, at
// its maximum.
func (m *Modifier) reset() {
	m.current = m.maximum
}
