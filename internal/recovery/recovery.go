// Package recovery models how quickly muscle groups recover and how much weekly training they tolerate.
//
// All functions are pure. A [Table] is built once and shared read-only by any number of goroutines.
package recovery

import (
	"fmt"
	"math"
)

// Model constants.
const (
	// FullyRecovered is the score of a muscle that has not been trained recently or is not in the table.
	FullyRecovered = 100
	// volumeStressPenalty caps how much a single heavy session lowers the score.
	volumeStressPenalty = 0.2
)

// VolumeBand is the tolerated number of sets per week.
type VolumeBand struct {
	Min     int `yaml:"min"     json:"min"`
	Max     int `yaml:"max"     json:"max"`
	Optimal int `yaml:"optimal" json:"optimal"`
}

// FrequencyBand is the tolerated number of sessions per week.
type FrequencyBand struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// MuscleProfile is the reference data for one muscle group.
type MuscleProfile struct {
	Muscle            string        `yaml:"muscle"             json:"muscle"`
	RecoveryHours     float64       `yaml:"recovery_hours"     json:"recoveryHours"`
	VolumeWeekly      VolumeBand    `yaml:"volume_weekly"      json:"volumeWeekly"`
	FrequencyWeekly   FrequencyBand `yaml:"frequency_weekly"   json:"frequencyWeekly"`
	FatigueMultiplier float64       `yaml:"fatigue_multiplier" json:"fatigueMultiplier"`
}

// Table is an immutable set of muscle profiles that remembers the order they were given in.
type Table struct {
	profiles map[string]MuscleProfile
	order    []string
}

// NewTable builds a Table. Later profiles for the same muscle replace earlier ones.
func NewTable(profiles []MuscleProfile) Table {
	t := Table{
		profiles: make(map[string]MuscleProfile, len(profiles)),
		order:    make([]string, 0, len(profiles)),
	}
	for _, p := range profiles {
		if _, seen := t.profiles[p.Muscle]; !seen {
			t.order = append(t.order, p.Muscle)
		}
		t.profiles[p.Muscle] = p
	}
	return t
}

// Lookup returns the profile of muscle.
func (t Table) Lookup(muscle string) (MuscleProfile, bool) {
	p, ok := t.profiles[muscle]
	return p, ok
}

// Muscles lists the muscles in table order.
func (t Table) Muscles() []string {
	return append([]string(nil), t.order...)
}

// Score estimates how rested muscle is on a 0-100 scale.
//
// Time since training dominates: the score rises linearly until the muscle's recovery window has passed. The
// sets of the last session lower the ceiling by at most a fifth. Negative or NaN inputs are treated as zero.
// Unknown muscles are fully recovered.
func (t Table) Score(muscle string, hoursSinceLastTrained float64, setsLastSession int) int {
	p, ok := t.profiles[muscle]
	if !ok {
		return FullyRecovered
	}

	recoveryRatio := 1.0
	if p.RecoveryHours > 0 {
		recoveryRatio = clampUnit(hoursSinceLastTrained / p.RecoveryHours)
	}
	volumeStress := 0.0
	if p.VolumeWeekly.Max > 0 {
		volumeStress = clampUnit(float64(setsLastSession) / float64(p.VolumeWeekly.Max))
	}

	return int(math.Round(recoveryRatio * FullyRecovered * (1 - volumeStress*volumeStressPenalty)))
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, 1)
}

// Verdict is the outcome of an overtraining check.
type Verdict struct {
	Overtrained bool   `json:"overtrained"`
	Reason      string `json:"reason"`
}

// Overtrained compares a muscle's trailing weekly volume and frequency with its maximums. Volume is checked
// first. Unknown muscles are never overtrained.
func (t Table) Overtrained(muscle string, weeklyVolumeSets, weeklyFrequency int) Verdict {
	p, ok := t.profiles[muscle]
	if !ok {
		return Verdict{Overtrained: false, Reason: ""}
	}
	if weeklyVolumeSets > p.VolumeWeekly.Max {
		return Verdict{
			Overtrained: true,
			Reason: fmt.Sprintf("Volume too high: %d sets/week exceeds max of %d",
				weeklyVolumeSets, p.VolumeWeekly.Max),
		}
	}
	if weeklyFrequency > p.FrequencyWeekly.Max {
		return Verdict{
			Overtrained: true,
			Reason: fmt.Sprintf("Frequency too high: %dx/week exceeds max of %d",
				weeklyFrequency, p.FrequencyWeekly.Max),
		}
	}
	return Verdict{Overtrained: false, Reason: ""}
}
