// Package progress derives long-term memory from workout history: personal records, milestones, favourite
// exercises, the toughest day and attendance streaks.
package progress

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/myrjola/repcoach/internal/workout"
)

// BestLift is the heaviest completed set of one exercise.
type BestLift struct {
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	WeightKg     float64   `json:"weightKg"`
	Reps         int       `json:"reps"`
	Date         time.Time `json:"date"`
}

// BestLifts returns one record per exercise ID, ordered by exercise name. Heavier weight wins, more reps break
// ties, and the earlier workout keeps a record that is only matched.
func BestLifts(history []workout.Log) []BestLift {
	best := make(map[string]BestLift)
	for _, l := range chronological(history) {
		for _, le := range l.Exercises {
			for _, s := range le.Sets {
				if !s.Completed {
					continue
				}
				current, ok := best[le.ExerciseID]
				if ok && (s.WeightKg < current.WeightKg || (s.WeightKg == current.WeightKg && s.Reps <= current.Reps)) {
					continue
				}
				best[le.ExerciseID] = BestLift{
					ExerciseID:   le.ExerciseID,
					ExerciseName: le.ExerciseName,
					WeightKg:     s.WeightKg,
					Reps:         s.Reps,
					Date:         l.Date,
				}
			}
		}
	}
	lifts := make([]BestLift, 0, len(best))
	for _, b := range best {
		lifts = append(lifts, b)
	}
	slices.SortFunc(lifts, func(a, b BestLift) int {
		return cmp.Or(strings.Compare(a.ExerciseName, b.ExerciseName), strings.Compare(a.ExerciseID, b.ExerciseID))
	})
	return lifts
}

// MilestoneType groups milestones.
type MilestoneType string

const (
	MilestoneWorkoutCount MilestoneType = "workout_count"
	MilestoneStreak       MilestoneType = "streak"
	MilestoneVolume       MilestoneType = "volume"
)

// Milestone is an achievement worth celebrating.
type Milestone struct {
	ID    string        `json:"id"`
	Type  MilestoneType `json:"type"`
	Label string        `json:"label"`
	Date  time.Time     `json:"date"`
	Value int           `json:"value"`
}

// volumeMilestoneKg is the total weight × reps that earns the volume milestone.
const volumeMilestoneKg = 10000

// Milestones lists the workout count, streak and volume milestones reached. A workout count milestone is dated
// to the workout that reached it; the others are dated now.
func Milestones(history []workout.Log, streak int, now time.Time) []Milestone {
	var milestones []Milestone
	ordered := chronological(history)

	for _, count := range []int{1, 10, 25, 50, 100} {
		if len(ordered) < count {
			break
		}
		label := fmt.Sprintf("%dth Workout logged", count)
		if count == 1 {
			label = "First Workout"
		}
		milestones = append(milestones, Milestone{
			ID:    fmt.Sprintf("workout_count_%d", count),
			Type:  MilestoneWorkoutCount,
			Label: label,
			Date:  ordered[count-1].Date,
			Value: count,
		})
	}

	for _, days := range []int{3, 7, 14, 30} {
		if streak < days {
			break
		}
		milestones = append(milestones, Milestone{
			ID:    fmt.Sprintf("streak_%d", days),
			Type:  MilestoneStreak,
			Label: fmt.Sprintf("%d-day Unstoppable Streak", days),
			Date:  now,
			Value: days,
		})
	}

	if TotalVolume(history) > volumeMilestoneKg {
		milestones = append(milestones, Milestone{
			ID:    "volume_10k",
			Type:  MilestoneVolume,
			Label: "10,000kg Total Volume Moved",
			Date:  now,
			Value: volumeMilestoneKg,
		})
	}
	return milestones
}

// TotalVolume sums weight × reps over every completed set.
func TotalVolume(history []workout.Log) float64 {
	var total float64
	for _, l := range history {
		for _, le := range l.Exercises {
			for _, s := range le.Sets {
				if s.Completed {
					total += s.WeightKg * float64(s.Reps)
				}
			}
		}
	}
	return total
}

// Favorite is an exercise and how many workouts included it.
type Favorite struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

const maxFavorites = 3

// Favorites returns the three most often logged exercise names. Equal counts are ordered by name.
func Favorites(history []workout.Log) []Favorite {
	counts := make(map[string]int)
	for _, l := range history {
		for _, le := range l.Exercises {
			counts[le.ExerciseName]++
		}
	}
	favorites := make([]Favorite, 0, len(counts))
	for name, count := range counts {
		favorites = append(favorites, Favorite{Name: name, Count: count})
	}
	slices.SortFunc(favorites, func(a, b Favorite) int {
		return cmp.Or(b.Count-a.Count, strings.Compare(a.Name, b.Name))
	})
	return favorites[:min(maxFavorites, len(favorites))]
}

// ToughDay is the workout the user felt worst after.
type ToughDay struct {
	Date   time.Time `json:"date"`
	Reason string    `json:"reason"`
}

// Toughest-day detection.
const (
	minWorkoutsForToughDay = 5
	toughDayMaxWellbeing   = 4
)

// ToughestPeriod finds the workout with the lowest combined mood and energy, earliest first on ties. It needs
// at least five workouts and reports nothing unless the combined score is 4 or less.
func ToughestPeriod(history []workout.Log) (ToughDay, bool) {
	if len(history) < minWorkoutsForToughDay {
		return ToughDay{}, false
	}
	ordered := chronological(history)
	low := ordered[0]
	for _, l := range ordered[1:] {
		if l.MoodAfter+l.EnergyLevel < low.MoodAfter+low.EnergyLevel {
			low = l
		}
	}
	if low.MoodAfter+low.EnergyLevel > toughDayMaxWellbeing {
		return ToughDay{}, false
	}
	return ToughDay{Date: low.Date, Reason: "low mental and physical energy"}, true
}

// chronological returns a copy of history sorted oldest first.
func chronological(history []workout.Log) []workout.Log {
	ordered := slices.Clone(history)
	slices.SortStableFunc(ordered, func(a, b workout.Log) int {
		return a.Date.Compare(b.Date)
	})
	return ordered
}
