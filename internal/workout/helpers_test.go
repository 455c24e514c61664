package workout_test

import (
	"testing"
	"time"

	"github.com/myrjola/repcoach/internal/catalog"
	"github.com/myrjola/repcoach/internal/workout"
)

// monday is 10:00 UTC on a Monday.
var monday = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func newEngine(t *testing.T) *workout.Engine {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return workout.NewEngine(c)
}

// sets returns n completed sets of weight kg.
func sets(n int, kg float64) []workout.LoggedSet {
	out := make([]workout.LoggedSet, n)
	for i := range out {
		out[i] = workout.LoggedSet{WeightKg: kg, Reps: 8, Completed: true}
	}
	return out
}

// trained is a workout log at date that trained muscle for n sets.
func trained(date time.Time, muscle string, n int) workout.Log {
	return workout.Log{
		Date: date,
		Exercises: []workout.LoggedExercise{
			{ExerciseID: "x", ExerciseName: "Something", MuscleGroup: muscle, Sets: sets(n, 20)},
		},
		MoodAfter:   3,
		EnergyLevel: 3,
	}
}

func profileWith(level workout.FitnessLevel, goal workout.Goal, sessions ...workout.Session) workout.Profile {
	schedule := workout.EmptySchedule()
	if len(sessions) > 0 {
		schedule[workout.Monday] = workout.DaySchedule{IsRestDay: false, Sessions: sessions}
	}
	return workout.Profile{
		Name:         "Ada",
		WeightKg:     80,
		FitnessLevel: level,
		Goal:         goal,
		DaysPerWeek:  3,
		Schedule:     schedule,
	}
}
