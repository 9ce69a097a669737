package game

import (
	"fmt"
	"strings"
)

// noKillTime : Time to kill from which on the engagement is
// reported as a failure to kill (the attacker ran out of
// ammunition or time).
const noKillTime = 1000

// SimulationResult :
// Aggregated outcome of one engagement between an attacker
// and a defender. All damage totals are kept per channel so
// the record can be analyzed after the fact; the remaining
// and starting hit points of both layers of the defender
// allow conservation checks on the whole engagement.
//
// The `Attacker` and `Defender` carry the names of the two
// contestants.
//
// The `TimeToKill` defines the tick at which the defender
// went down, or one tick past the time limit when it
// survived.
//
// The `TimeLimit` defines the maximum engagement length the
// simulation was configured with.
//
// The `MobilityAdvantage` defines the advantage scalar that
// was granted to the attacker.
//
// The `Distance` and `Estimation` carry the configuration
// of the simulation that produced the record.
type SimulationResult struct {
	Attacker          string
	Defender          string
	TimeToKill        int
	TimeLimit         int
	MobilityAdvantage float64
	Distance          float64
	Estimation        bool

	TotalDamageFired           Damage
	TotalDamageAppliedToHull   Damage
	TotalDamageAppliedToShield Damage

	RemainingShieldHP    float64
	RemainingVitalHullHP float64
	RemainingTotalHullHP float64
	StartingTotalHullHP  float64
	StartingVitalHullHP  float64
	StartingShieldHP     float64
}

// Summary :
// Produces a human-readable summary of the engagement: who
// attacked whom, at which distance, with which advantage and
// how long the kill took (or that no kill happened before
// the attacker ran dry).
//
// Returns the summary string.
func (r SimulationResult) Summary() string {
	kill := fmt.Sprintf("%d", r.TimeToKill)
	if r.TimeToKill >= noKillTime {
		kill = "No Kill (Out of Ammo)"
	}

	return fmt.Sprintf("%s ATTACKING %s\n  Engagement Distance: %g | Mobility Advantage: %d%% | Time to Kill - %s",
		strings.ToUpper(r.Attacker),
		strings.ToUpper(r.Defender),
		r.Distance,
		int((r.MobilityAdvantage-1)*100),
		kill)
}
