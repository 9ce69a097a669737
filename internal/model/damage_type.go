package model

// DamageType :
// Describes the possible damage channels of the game. This is
// a closed enumeration: weapons deal damage along exactly one
// of these channels and armor layers resist each of them with
// a dedicated modifier.
type DamageType string

// Define the possible damage channels. The empty string is
// kept as a marker for a weapon which could not be assigned
// any channel.
const (
	Ballistic  DamageType = "ballistic"
	Energy     DamageType = "energy"
	Distortion DamageType = "distortion"
)

// String :
// Implementation of the stringer interface in order to provide
// human-readable messages.
//
// Returns the string corresponding to the `dt` damage channel.
func (dt DamageType) String() string {
	switch dt {
	case Ballistic, Energy, Distortion:
		return string(dt)
	}

	return "\"unknown\""
}
