package progress

import (
	"time"

	"github.com/myrjola/repcoach/internal/coaching"
	"github.com/myrjola/repcoach/internal/workout"
)

// skipLookbackDays is how far back missed sessions count towards identity detection.
const skipLookbackDays = 14

// Summary is everything the progress view shows.
type Summary struct {
	BestLifts      []BestLift  `json:"bestLifts"`
	Milestones     []Milestone `json:"milestones"`
	Favorites      []Favorite  `json:"favorites"`
	Toughest       *ToughDay   `json:"toughest,omitempty"`
	Streak         int         `json:"streak"`
	MissedSessions int         `json:"missedSessions"`
	TotalVolumeKg  float64     `json:"totalVolumeKg"`
}

// Summarize computes the Summary of a user at now.
func Summarize(profile workout.Profile, history []workout.Log, now time.Time) Summary {
	streak := CurrentStreak(history, now)
	s := Summary{
		BestLifts:      BestLifts(history),
		Milestones:     Milestones(history, streak, now),
		Favorites:      Favorites(history),
		Toughest:       nil,
		Streak:         streak,
		MissedSessions: MissedSessions(profile.Schedule, history, skipLookbackDays, now),
		TotalVolumeKg:  TotalVolume(history),
	}
	if tough, ok := ToughestPeriod(history); ok {
		s.Toughest = &tough
	}
	if s.Milestones == nil {
		s.Milestones = []Milestone{}
	}
	return s
}

// IdentitySignals gathers the behaviour identity detection looks at. explanationRequests is tracked by the
// caller.
func IdentitySignals(profile workout.Profile, history []workout.Log, explanationRequests int, now time.Time,
) coaching.Signals {
	return coaching.Signals{
		ConsistencyScore:    workout.ConsistencyScore(history, profile.DaysPerWeek, now),
		Streak:              CurrentStreak(history, now),
		RecentSkips:         MissedSessions(profile.Schedule, history, skipLookbackDays, now),
		ExplanationRequests: explanationRequests,
		Current:             profile.Identity,
	}
}
