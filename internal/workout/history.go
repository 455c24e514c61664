package workout

import (
	"math"
	"strings"
	"time"

	"github.com/myrjola/repcoach/internal/recovery"
)

const (
	oneDay            = 24 * time.Hour
	oneWeek           = 7 * oneDay
	statusLookback    = 3 * oneDay
	consistencyWindow = 30 * oneDay
)

// inWindow reports whether l happened in [from, now]. Logs dated after now are ignored everywhere.
func inWindow(l Log, from, now time.Time) bool {
	return !l.Date.Before(from) && !l.Date.After(now)
}

// setsFor counts the logged sets of muscle in l.
func setsFor(l Log, muscle string) (int, bool) {
	var sets int
	var trained bool
	for _, le := range l.Exercises {
		if le.MuscleGroup == muscle {
			trained = true
			sets += len(le.Sets)
		}
	}
	return sets, trained
}

// muscleRecovery scores muscle from the most recent workout in the trailing week that trained it. A muscle
// without such a workout is fully recovered.
func (e *Engine) muscleRecovery(muscle string, history []Log, now time.Time) int {
	from := now.Add(-oneWeek)
	var latest *Log
	for i := range history {
		l := &history[i]
		if !inWindow(*l, from, now) {
			continue
		}
		if _, trained := setsFor(*l, muscle); !trained {
			continue
		}
		if latest == nil || l.Date.After(latest.Date) {
			latest = l
		}
	}
	if latest == nil {
		return recovery.FullyRecovered
	}
	sets, _ := setsFor(*latest, muscle)
	return e.muscles().Score(muscle, now.Sub(latest.Date).Hours(), sets)
}

// MuscleRecoveryScores scores every muscle in the recovery table.
func (e *Engine) MuscleRecoveryScores(history []Log, now time.Time) map[string]int {
	muscles := e.muscles().Muscles()
	scores := make(map[string]int, len(muscles))
	for _, m := range muscles {
		scores[m] = e.muscleRecovery(m, history, now)
	}
	return scores
}

// WeeklyLoad is a muscle's trailing seven day training load.
type WeeklyLoad struct {
	Sets     int `json:"sets"`
	Sessions int `json:"sessions"`
}

// WeeklyLoads sums sets and counts distinct workouts per muscle over the trailing week.
func WeeklyLoads(history []Log, now time.Time) map[string]WeeklyLoad {
	from := now.Add(-oneWeek)
	loads := make(map[string]WeeklyLoad)
	for _, l := range history {
		if !inWindow(l, from, now) {
			continue
		}
		hit := make(map[string]bool)
		for _, le := range l.Exercises {
			load := loads[le.MuscleGroup]
			load.Sets += len(le.Sets)
			if !hit[le.MuscleGroup] {
				hit[le.MuscleGroup] = true
				load.Sessions++
			}
			loads[le.MuscleGroup] = load
		}
	}
	return loads
}

// OvertrainingWarnings lists every muscle whose trailing weekly volume or frequency exceeds its limits, in
// recovery table order.
func (e *Engine) OvertrainingWarnings(history []Log, now time.Time) []string {
	loads := WeeklyLoads(history, now)
	warnings := []string{}
	for _, m := range e.muscles().Muscles() {
		load, ok := loads[m]
		if !ok {
			continue
		}
		if v := e.muscles().Overtrained(m, load.Sets, load.Sessions); v.Overtrained {
			warnings = append(warnings, "⚠️ "+capitalize(m)+": "+v.Reason)
		}
	}
	return warnings
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RecoveryGrade summarises whole-body readiness.
type RecoveryGrade string

const (
	GradeFresh       RecoveryGrade = "fresh"
	GradeRecovered   RecoveryGrade = "recovered"
	GradeModerate    RecoveryGrade = "moderate"
	GradeFatigued    RecoveryGrade = "fatigued"
	GradeOvertrained RecoveryGrade = "overtrained"
)

// Status is the whole-body recovery estimate.
type Status struct {
	Grade          RecoveryGrade `json:"grade"`
	Score          int           `json:"score"`
	Recommendation string        `json:"recommendation"`
}

// RecoveryStatus grades overall readiness from the workouts of the last three days: time since the latest
// workout, total recent sets and the latest energy level.
func (e *Engine) RecoveryStatus(history []Log, now time.Time) Status {
	from := now.Add(-statusLookback)
	var latest *Log
	var totalSets int
	for i := range history {
		l := &history[i]
		if !inWindow(*l, from, now) {
			continue
		}
		for _, le := range l.Exercises {
			totalSets += len(le.Sets)
		}
		if latest == nil || l.Date.After(latest.Date) {
			latest = l
		}
	}
	if latest == nil {
		return Status{
			Grade:          GradeFresh,
			Score:          recovery.FullyRecovered,
			Recommendation: "Fully rested — perfect time for an intense session!",
		}
	}

	score := recovery.FullyRecovered
	switch hours := now.Sub(latest.Date).Hours(); {
	case hours < 12: //nolint:mnd // hours
		score -= 40
	case hours < 24: //nolint:mnd // hours
		score -= 20
	case hours < 48: //nolint:mnd // hours
		score -= 5
	}
	switch {
	case totalSets > 60: //nolint:mnd // sets
		score -= 20
	case totalSets > 40: //nolint:mnd // sets
		score -= 10
	}
	switch {
	case latest.EnergyLevel >= 4: //nolint:mnd // energy scale 1-5
		score += 10
	case latest.EnergyLevel <= 2: //nolint:mnd // energy scale 1-5
		score -= 10
	}
	score = max(0, min(recovery.FullyRecovered, score))

	switch {
	case score >= 85: //nolint:mnd // grade boundary
		return Status{Grade: GradeFresh, Score: score, Recommendation: "You're fully recovered. Push hard today!"}
	case score >= 70: //nolint:mnd // grade boundary
		return Status{Grade: GradeRecovered, Score: score,
			Recommendation: "Good recovery. Standard intensity is perfect."}
	case score >= 50: //nolint:mnd // grade boundary
		return Status{Grade: GradeModerate, Score: score,
			Recommendation: "Moderate fatigue — consider lighter weights or fewer sets."}
	case score >= 30: //nolint:mnd // grade boundary
		return Status{Grade: GradeFatigued, Score: score,
			Recommendation: "High fatigue detected. Light session or active recovery recommended."}
	default:
		return Status{Grade: GradeOvertrained, Score: score,
			Recommendation: "Rest day strongly recommended. Your body needs recovery."}
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
