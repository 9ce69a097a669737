package model

import "sort"

// ShieldFaceType :
// Describes the geometry of the shield array fitted to a
// ship. The geometry defines among how many faces the total
// shield capacity is divided.
type ShieldFaceType int

// Define the possible shield geometries.
const (
	FacesNone ShieldFaceType = iota
	FacesBubble
	FacesFrontBack
	FacesQuadrant
)

// String :
// Implementation of the stringer interface in order to provide
// human-readable messages.
//
// Returns the string corresponding to the `sft` geometry.
func (sft ShieldFaceType) String() string {
	switch sft {
	case FacesNone:
		return "None"
	case FacesBubble:
		return "Bubble"
	case FacesFrontBack:
		return "FrontBack"
	case FacesQuadrant:
		return "Quadrant"
	}

	return "\"unknown\""
}

// FaceCount :
// Provides the number of faces among which the total shield
// capacity is divided for this geometry.
//
// Returns the face count.
func (sft ShieldFaceType) FaceCount() int {
	switch sft {
	case FacesBubble:
		return 1
	case FacesFrontBack:
		return 2
	case FacesQuadrant:
		return 4
	}

	return 0
}

// shieldFaceTypeFromString :
// Used to convert the `faceType` string of a ship descriptor
// into the matching geometry. Unknown strings map to the
// `FacesNone` value.
//
// The `s` defines the string to convert.
//
// Returns the corresponding geometry.
func shieldFaceTypeFromString(s string) ShieldFaceType {
	switch s {
	case "Bubble":
		return FacesBubble
	case "FrontBack":
		return FacesFrontBack
	case "Quadrant":
		return FacesQuadrant
	}

	return FacesNone
}

// Ship :
// Defines the normalized statistics of a ship as distilled
// from its raw descriptor. This record is immutable after
// construction and consumed by the combat engine to build
// the hull of a contestant.
//
// The `Name` defines the local name of the ship, used as a
// key by loadouts.
//
// The `Size` defines the size class of the ship.
//
// The `ShieldFaces` defines the geometry of the shield array
// fitted to the ship.
//
// The `PitchRate` defines the angular velocity of the ship
// around its pitch axis in degrees per second. Together with
// the `ScmSpeed` it drives the mobility scoring.
//
// The `ScmSpeed` defines the combat speed of the ship in
// meters per second.
//
// The `TotalHP` defines the total structural hit points of
// the ship across all its hull parts.
//
// The `VitalHullHP` defines the hit points of the vital hull
// part: the part with the maximum hit points, whose loss is
// considered to incapacitate the ship.
//
// The `VitalHullName` defines the name of the vital part.
//
// The `VisibleHullArea` defines the product of the two
// largest dimensions of the ship, used as the cross section
// presented to incoming fire.
//
// The `BallisticResistance`, `EnergyResistance` and
// `DistortionResistance` define the fraction of the incoming
// damage along each channel that the armor deflects, in the
// range [0; 1].
//
// The `MaxWeaponPower` defines the size of the weapon power
// pool of the ship. It is optional in the descriptors and
// `nil` when not provided.
type Ship struct {
	Name                 string
	Size                 int
	ShieldFaces          ShieldFaceType
	PitchRate            float64
	ScmSpeed             float64
	TotalHP              float64
	VitalHullHP          float64
	VitalHullName        string
	VisibleHullArea      float64
	BallisticResistance  float64
	EnergyResistance     float64
	DistortionResistance float64
	MaxWeaponPower       *float64
}

// defaultVisibleHullArea : Cross section used when a ship
// descriptor does not provide at least two dimensions.
const defaultVisibleHullArea = 100.0

// NewShipFromDescriptor :
// Used to distill the raw descriptor of a ship into its
// normalized record. Optional fields are replaced by their
// documented defaults while missing required fields produce
// an `ErrDescriptorMissingField`.
//
// The `source` defines the raw descriptor of the ship.
//
// Returns the normalized ship along with any error.
func NewShipFromDescriptor(source Descriptor) (Ship, error) {
	var s Ship

	name, err := source.requireString("localName")
	if err != nil {
		return s, err
	}
	s.Name = name

	data, err := source.requireChild("data")
	if err != nil {
		return s, err
	}

	size, err := data.requireFloat("size")
	if err != nil {
		return s, err
	}
	s.Size = int(size)

	// The weapon power pool is optional: ships without one
	// keep a nil value.
	if pools, ok := data.child("rnPowerPools"); ok {
		if gun, ok := pools.child("weaponGun"); ok {
			if pool, ok := gun.floatAt("poolSize"); ok {
				s.MaxWeaponPower = &pool
			}
		}
	}

	// Shield geometry defaults to no faces when the ship
	// does not carry a shield block.
	faceType := "None"
	if shield, ok := data.child("shield"); ok {
		if ft, ok := shield.stringAt("faceType"); ok {
			faceType = ft
		}
	}
	s.ShieldFaces = shieldFaceTypeFromString(faceType)

	// The vital hull part is the part with the maximum hit
	// points among all the parts of the hull.
	hull, err := data.requireChild("hull")
	if err != nil {
		return s, err
	}
	parts, err := hull.requireList("hp")
	if err != nil {
		return s, err
	}

	vhp := 0
	vname := ""
	for _, raw := range parts {
		part, ok := asDescriptor(raw)
		if !ok {
			continue
		}

		hp, ok := part.floatAt("hp")
		if !ok {
			continue
		}

		if int(hp) > vhp {
			vhp = int(hp)
			vname, _ = part.stringAt("name")
		}
	}

	if vhp <= 0 {
		return s, missingField("hull.hp")
	}

	s.VitalHullHP = float64(vhp)
	s.VitalHullName = vname
	s.TotalHP = hull.floatOr("totalHp", s.VitalHullHP)

	// Armor resistances default to 0 (no deflection) when
	// the ship has no armor block.
	armor := Descriptor{}
	if a, ok := data.child("armor"); ok {
		if ad, ok := a.child("data"); ok {
			if aa, ok := ad.child("armor"); ok {
				if mul, ok := aa.child("damageMultiplier"); ok {
					armor = mul
				}
			}
		}
	}
	s.BallisticResistance = armor.floatOr("damagePhysical", 0)
	s.EnergyResistance = armor.floatOr("damageEnergy", 0)
	s.DistortionResistance = armor.floatOr("damageDistortion", 0)

	// Flight characteristics default to an immobile ship.
	if ifcs, ok := data.child("ifcs"); ok {
		if av, ok := ifcs.child("angularVelocity"); ok {
			s.PitchRate = av.floatOr("x", 0)
		}
		s.ScmSpeed = ifcs.floatOr("scmSpeed", 0)
	}

	// The cross section is the product of the two largest
	// dimensions of the ship.
	s.VisibleHullArea = defaultVisibleHullArea
	if vehicle, ok := data.child("vehicle"); ok {
		if size, ok := vehicle.child("size"); ok {
			dims := make([]float64, 0, len(size))
			for _, raw := range size {
				if dim, ok := asFloat(raw); ok {
					dims = append(dims, dim)
				}
			}

			sort.Float64s(dims)
			if len(dims) >= 2 {
				s.VisibleHullArea = dims[len(dims)-1] * dims[len(dims)-2]
			}
		}
	}

	return s, nil
}
