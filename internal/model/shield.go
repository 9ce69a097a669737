package model

// Shield :
// Defines the normalized statistics of a shield generator as
// distilled from its raw descriptor. A ship can fit several
// generators which the combat engine aggregates into a single
// composite shield.
//
// The `Name` defines the local name of the generator, used
// as a key by loadouts.
//
// The `TotalHP` defines the total capacity of the generator.
//
// The `Size` defines the size class of the generator.
//
// The `MaxPowerSlots` defines how many power segments the
// generator consumes when fully powered.
//
// The `MinPowerSlots` defines the minimum power segments the
// generator needs to stay online.
//
// The remaining fields define, per damage channel, the range
// of the resistance (fraction of the caught damage actually
// depleting the capacity) and of the absorption (fraction of
// the incoming damage the shield catches at all). The combat
// engine interpolates within these ranges based on the power
// assigned to the shields and on the remaining capacity.
type Shield struct {
	Name          string
	TotalHP       float64
	Size          int
	MaxPowerSlots float64
	MinPowerSlots float64

	MinBallisticResistance  float64
	MaxBallisticResistance  float64
	MinEnergyResistance     float64
	MaxEnergyResistance     float64
	MinDistortionResistance float64
	MaxDistortionResistance float64

	MinBallisticAbsorption  float64
	MaxBallisticAbsorption  float64
	MinEnergyAbsorption     float64
	MaxEnergyAbsorption     float64
	MinDistortionAbsorption float64
	MaxDistortionAbsorption float64
}

// NewShieldFromDescriptor :
// Used to distill the raw descriptor of a shield generator
// into its normalized record. The normalization is a direct
// flattening of the resistance and absorption ranges defined
// by the descriptor.
//
// The `source` defines the raw descriptor of the generator.
//
// Returns the normalized shield along with any error.
func NewShieldFromDescriptor(source Descriptor) (Shield, error) {
	var s Shield

	name, err := source.requireString("localName")
	if err != nil {
		return s, err
	}
	s.Name = name

	data, err := source.requireChild("data")
	if err != nil {
		return s, err
	}

	shield, err := data.requireChild("shield")
	if err != nil {
		return s, err
	}

	hp, err := shield.requireFloat("maxShieldHealth")
	if err != nil {
		return s, err
	}
	s.TotalHP = hp

	size, err := data.requireFloat("size")
	if err != nil {
		return s, err
	}
	s.Size = int(size)

	resource, err := data.requireChild("resource")
	if err != nil {
		return s, err
	}
	online, err := resource.requireChild("online")
	if err != nil {
		return s, err
	}
	consumption, err := online.requireChild("consumption")
	if err != nil {
		return s, err
	}
	slots, err := consumption.requireFloat("powerSegment")
	if err != nil {
		return s, err
	}
	s.MaxPowerSlots = slots
	s.MinPowerSlots = slots * resource.floatOr("conversionMinimumFraction", 1)

	resistance, err := shield.requireChild("resistance")
	if err != nil {
		return s, err
	}
	absorption, err := shield.requireChild("absorption")
	if err != nil {
		return s, err
	}

	ranges := []struct {
		src Descriptor
		key string
		min *float64
		max *float64
	}{
		{resistance, "physical", &s.MinBallisticResistance, &s.MaxBallisticResistance},
		{resistance, "energy", &s.MinEnergyResistance, &s.MaxEnergyResistance},
		{resistance, "distortion", &s.MinDistortionResistance, &s.MaxDistortionResistance},
		{absorption, "physical", &s.MinBallisticAbsorption, &s.MaxBallisticAbsorption},
		{absorption, "energy", &s.MinEnergyAbsorption, &s.MaxEnergyAbsorption},
		{absorption, "distortion", &s.MinDistortionAbsorption, &s.MaxDistortionAbsorption},
	}

	for _, r := range ranges {
		min, err := r.src.requireFloat(r.key + "Min")
		if err != nil {
			return s, err
		}
		max, err := r.src.requireFloat(r.key + "Max")
		if err != nil {
			return s, err
		}

		*r.min = min
		*r.max = max
	}

	return s, nil
}
