package game

import (
	"fmt"
	"math"

	"dogfight_simulator/pkg/logger"
)

// ErrNotReady :
// Used to indicate that one of the contestants of an
// engagement failed its readiness checks (no weapons, a
// dead shield, a missing hull).
var ErrNotReady = fmt.Errorf("Contestant not ready for engagement")

// SimulationConfig :
// Regroups the parameters of the simulation driver.
//
// The `Distance` defines the engagement distance in meters.
//
// The `MobilityBonus` defines the multiplier applied to the
// circling time difference of the two ships when computing
// the mobility advantage of the attacker.
//
// The `MaxSimulationTime` defines the number of ticks after
// which an engagement is interrupted.
//
// The `Estimation` defines whether the mobility scoring is
// estimated from the ships or flattened.
type SimulationConfig struct {
	Distance          float64
	MobilityBonus     float64
	MaxSimulationTime int
	Estimation        bool
}

// DefaultSimulationConfig :
// Used to build the configuration applied when the caller
// does not override anything.
//
// Returns the default configuration.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Distance:          400,
		MobilityBonus:     4,
		MaxSimulationTime: 999,
		Estimation:        true,
	}
}

// Simulation :
// The driver of the combat engine: owns the contestants of
// a batch, computes the mobility scoring of each pairing and
// runs the per-tick engagement loop between them. The driver
// is strictly single threaded and deterministic: given the
// same contestants and configuration the results are
// identical across runs.
//
// The `contestants` are kept in insertion order, which fixes
// the order of the pairings of a batch.
//
// The `results` hold the outcomes of the last batch run by
// `SimulateAll`.
//
// The `log` allows to notify information while simulating.
type Simulation struct {
	contestants []*Contestant
	config      SimulationConfig
	results     []SimulationResult
	log         logger.Logger
}

// NewSimulation :
// Used to create a simulation driver with the input
// configuration.
//
// The `config` defines the parameters of the driver.
//
// The `log` allows to notify information during the
// simulations.
//
// Returns the created driver.
func NewSimulation(config SimulationConfig, log logger.Logger) *Simulation {
	return &Simulation{
		contestants: make([]*Contestant, 0),
		config:      config,
		results:     make([]SimulationResult, 0),
		log:         log,
	}
}

// trace :
// Used as a wrapper around the internal logger to group the
// messages produced by the driver.
//
// The `level` defines the severity of the message.
//
// The `msg` defines the content of the log to display.
func (s *Simulation) trace(level logger.Severity, msg string) {
	if s.log != nil {
		s.log.Trace(level, "simulation", msg)
	}
}

// AddContestant :
// Used to register the input contestant for the batch. The
// registration order fixes the order of the pairings.
//
// The `c` defines the contestant to register.
func (s *Simulation) AddContestant(c *Contestant) {
	s.contestants = append(s.contestants, c)
}

// CalculateCircleTime :
// Used to compute the time a ship needs to fly a full circle
// at combat speed while pitching as hard as it can. The time
// derives from the turn radius imposed by the speed and the
// pitch rate. A ship unable to either pitch or move never
// completes the circle.
//
// When the driver is not estimating the mobility a flat
// value is returned instead.
//
// The `pitchRate` defines the pitch rate in degrees per
// second.
//
// The `speed` defines the combat speed in meters per
// second.
//
// Returns the circling time in seconds.
func (s *Simulation) CalculateCircleTime(pitchRate float64, speed float64) float64 {
	if !s.config.Estimation {
		return 10.0
	}

	pitchRateRads := pitchRate * math.Pi / 180

	if pitchRateRads == 0 || speed == 0 {
		return math.Inf(1)
	}

	radius := speed / pitchRateRads
	circumference := 2 * math.Pi * radius

	return circumference / speed
}

// Reset :
// Restores every contestant of the batch to its initial
// state.
func (s *Simulation) Reset() {
	for _, contestant := range s.contestants {
		contestant.Reset()
	}
}

// Simulate :
// Runs one engagement: the attacker fires on the target
// every tick until the vital part of the target is gone,
// its distortion threshold is crossed or the time limit
// elapses.
//
// The mobility advantage of the attacker is computed from
// the circling times of the two ships, then both sides run
// their readiness checks; a failed check aborts with an
// `ErrNotReady`. Note that the target keeps its weapons
// ready too: an engagement is one half of a duel and the
// mirrored half reuses the same contestants.
//
// The `target` defines the defending contestant.
//
// The `attacker` defines the firing contestant.
//
// Returns the outcome of the engagement along with any
// error.
func (s *Simulation) Simulate(target *Contestant, attacker *Contestant) (SimulationResult, error) {
	result := SimulationResult{
		Attacker:   attacker.Name(),
		Defender:   target.Name(),
		Estimation: s.config.Estimation,
		Distance:   s.config.Distance,
		TimeLimit:  s.config.MaxSimulationTime,
	}

	// Compute the mobility advantage of the attacker.
	adv := 1.0
	if s.config.Estimation {
		targetCircle := s.CalculateCircleTime(target.hull.pitchRate, target.hull.scmSpeed)
		attackerCircle := s.CalculateCircleTime(attacker.hull.pitchRate, attacker.hull.scmSpeed)

		adv = s.config.MobilityBonus*(targetCircle-attackerCircle)/100 + 1

		if math.IsInf(adv, 1) {
			adv = 1
		}
	}
	attacker.mobilityMultiplier = adv
	result.MobilityAdvantage = adv

	if !attacker.IsReady(s.config.Distance, target.hull.visibleArea, adv) {
		return result, fmt.Errorf("%w: attacker \"%s\"", ErrNotReady, attacker.Name())
	}
	if !target.IsReady(s.config.Distance, attacker.hull.visibleArea, adv) {
		return result, fmt.Errorf("%w: defender \"%s\"", ErrNotReady, target.Name())
	}

	timer := 0
	for timer <= s.config.MaxSimulationTime &&
		target.hull.currentVitalHP >= 0 &&
		target.hull.distortionLevel <= target.hull.distortionLimit {

		timer++

		output := attacker.FireWeapons()
		shieldResult, hullResult := target.ApplyDamage(output)

		result.TotalDamageFired = result.TotalDamageFired.Plus(output)
		result.TotalDamageAppliedToShield = result.TotalDamageAppliedToShield.Plus(shieldResult.Incoming)
		result.TotalDamageAppliedToHull = result.TotalDamageAppliedToHull.Plus(hullResult.Incoming)
	}

	result.TimeToKill = timer
	result.RemainingShieldHP = target.shield.currentHP
	result.RemainingVitalHullHP = target.hull.currentVitalHP
	result.RemainingTotalHullHP = target.hull.currentVitalHP + target.hull.currentNonVitalHP
	result.StartingVitalHullHP = target.hull.maxVitalHP
	result.StartingTotalHullHP = target.hull.maxVitalHP + target.hull.maxNonVitalHP
	result.StartingShieldHP = target.shield.maxHP

	return result, nil
}

// SimulateAll :
// Runs one engagement for every ordered pair of distinct
// contestants of the batch, resetting every side between
// two engagements so that each one starts from a pristine
// state. Attackers iterate in insertion order and, for a
// given attacker, defenders too.
//
// Returns the outcomes along with any error.
func (s *Simulation) SimulateAll() ([]SimulationResult, error) {
	results := make([]SimulationResult, 0)

	s.Reset()

	for _, attacker := range s.contestants {
		for _, defender := range s.contestants {
			if attacker == defender {
				continue
			}

			result, err := s.Simulate(defender, attacker)
			if err != nil {
				return results, err
			}

			s.trace(logger.Verbose, result.Summary())

			results = append(results, result)
			s.Reset()
		}
	}

	s.results = results

	return results, nil
}

// Results :
// Provides the outcomes accumulated by the last batch.
//
// Returns the results.
func (s *Simulation) Results() []SimulationResult {
	out := make([]SimulationResult, len(s.results))
	copy(out, s.results)

	return out
}
