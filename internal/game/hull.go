package game

import "dogfight_simulator/internal/model"

// Constants driving the hull damage model.
const (
	// distortionLimit : Accumulated distortion above which a
	// ship is considered incapacitated.
	distortionLimit = 6000.0

	// vitalAreaFraction : Fraction of the visible hull area
	// behind which the vital part sits.
	vitalAreaFraction = 0.3
)

// Hull :
// Defines the runtime state of the armor and structure of a
// ship during an engagement. The hull is the last layer of
// the damage model: whatever the shield does not catch lands
// here, split between the vital part and the rest of the
// structure proportionally to their visible areas.
//
// The `maxVitalHP` and `maxNonVitalHP` define the starting
// hit points of the vital part and of the remainder of the
// structure, with their mutable current counterparts.
//
// The `vitalArea` defines the name of the vital part.
//
// The `balResistance`, `engResistance` and `disResistance`
// define the fraction of incoming damage per channel that
// the armor lets through, as constant modifiers built from
// `1 - resistance` of the ship.
//
// The `pitchRate`, `scmSpeed` and `shieldFaces` are carried
// from the ship record as they drive the mobility scoring
// and the shield construction of the owning contestant.
//
// The `visibleArea` and `visibleVitalArea` define the cross
// sections driving the vital damage split.
//
// The `distortionLevel` accumulates the distortion damage
// absorbed so far.
type Hull struct {
	maxVitalHP        float64
	maxNonVitalHP     float64
	currentVitalHP    float64
	currentNonVitalHP float64
	vitalArea         string
	balResistance     Modifier
	engResistance     Modifier
	disResistance     Modifier
	pitchRate         float64
	scmSpeed          float64
	shieldFaces       model.ShieldFaceType
	visibleArea       float64
	visibleVitalArea  float64
	distortionLimit   float64
	distortionLevel   float64
}

// NewHull :
// Used to create the runtime hull of the input ship. The
// armor resistances are collapsed to constant modifiers
// letting through `1 - resistance` of the damage on each
// channel.
//
// The `ship` defines the normalized record of the ship.
//
// Returns the created hull along with any error.
func NewHull(ship model.Ship) (*Hull, error) {
	bal, err := NewConstantModifier(model.Ballistic, 1-ship.BallisticResistance)
	if err != nil {
		return nil, err
	}
	eng, err := NewConstantModifier(model.Energy, 1-ship.EnergyResistance)
	if err != nil {
		return nil, err
	}
	dis, err := NewConstantModifier(model.Distortion, 1-ship.DistortionResistance)
	if err != nil {
		return nil, err
	}

	h := Hull{
		maxVitalHP:        ship.VitalHullHP,
		maxNonVitalHP:     ship.TotalHP - ship.VitalHullHP,
		vitalArea:         ship.VitalHullName,
		balResistance:     bal,
		engResistance:     eng,
		disResistance:     dis,
		pitchRate:         ship.PitchRate,
		scmSpeed:          ship.ScmSpeed,
		shieldFaces:       ship.ShieldFaces,
		visibleArea:       ship.VisibleHullArea,
		visibleVitalArea:  ship.VisibleHullArea * vitalAreaFraction,
		distortionLimit:   distortionLimit,
	}

	h.currentVitalHP = h.maxVitalHP
	h.currentNonVitalHP = h.maxNonVitalHP

	return &h, nil
}

// ApplyDamage :
// Used to land the input damage on the hull. The armor first
// deflects part of each channel, then the remainder splits
// between the vital part and the rest of the structure based
// on the ratio of their visible areas. Once the non vital
// structure is depleted everything lands on the vital part.
// Distortion also accumulates towards the incapacitation
// threshold.
//
// The hull is the last layer of the damage model so nothing
// passes through.
//
// The `damage` defines the damage to land.
//
// Returns the damage result for this layer.
func (h *Hull) ApplyDamage(damage Damage) DamageResult {
	absorbed := Damage{
		Ballistic:  h.balResistance.Apply(damage.Ballistic),
		Energy:     h.engResistance.Apply(damage.Energy),
		Distortion: h.disResistance.Apply(damage.Distortion),
	}

	passthrough := Damage{}

	if h.currentNonVitalHP <= 0 {
		h.currentVitalHP -= absorbed.Total()
	} else {
		vitalFraction := h.visibleVitalArea / h.visibleArea
		h.currentVitalHP -= absorbed.Total() * vitalFraction
		h.currentNonVitalHP -= absorbed.Total() * (1 - vitalFraction)
	}

	h.distortionLevel += absorbed.Distortion

	return DamageResult{
		Incoming:    absorbed,
		Passthrough: passthrough,
	}
}

// Reset :
// Restores the hull to its post-construction state: full
// hit points, armor modifiers at their maximum and no
// accumulated distortion.
func (h *Hull) Reset() {
	h.currentVitalHP = h.maxVitalHP
	h.currentNonVitalHP = h.maxNonVitalHP
	h.balResistance.reset()
	h.engResistance.reset()
	h.disResistance.reset()
	h.distortionLevel = 0
}

// VitalHP :
// Provides the remaining hit points of the vital part.
//
// Returns the current vital hit points.
func (h *Hull) VitalHP() float64 {
	return h.currentVitalHP
}

// TotalHP :
// Provides the remaining hit points of the whole structure.
//
// Returns the sum of the current vital and non vital hit
// points.
func (h *Hull) TotalHP() float64 {
	return h.currentVitalHP + h.currentNonVitalHP
}

// DistortionLevel :
// Provides the distortion accumulated so far.
//
// Returns the distortion level.
func (h *Hull) DistortionLevel() float64 {
	return h.distortionLevel
}
