package progress_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/repcoach/internal/progress"
	"github.com/myrjola/repcoach/internal/workout"
)

// wednesday is 2025-03-12 18:00 UTC.
var wednesday = time.Date(2025, time.March, 12, 18, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return wednesday.AddDate(0, 0, -n)
}

func lift(id, name string, sets ...workout.LoggedSet) workout.LoggedExercise {
	return workout.LoggedExercise{ExerciseID: id, ExerciseName: name, MuscleGroup: "chest", Sets: sets}
}

func set(kg float64, reps int) workout.LoggedSet {
	return workout.LoggedSet{WeightKg: kg, Reps: reps, Completed: true}
}

func logAt(date time.Time, exercises ...workout.LoggedExercise) workout.Log {
	return workout.Log{
		Date:        date,
		Exercises:   exercises,
		MoodBefore:  3,
		MoodAfter:   4,
		EnergyLevel: 4,
		Completed:   true,
	}
}

func TestBestLifts(t *testing.T) {
	failed := workout.LoggedSet{WeightKg: 120, Reps: 1, Completed: false}
	history := []workout.Log{
		logAt(daysAgo(1), lift("ex_bench", "Bench Press", set(80, 5), set(85, 3), failed)),
		logAt(daysAgo(5), lift("ex_bench", "Bench Press", set(85, 3)), lift("ex_curl", "Barbell Curl", set(30, 10))),
		logAt(daysAgo(3), lift("ex_curl", "Barbell Curl", set(30, 12), set(30, 8))),
	}
	want := []progress.BestLift{
		{ExerciseID: "ex_curl", ExerciseName: "Barbell Curl", WeightKg: 30, Reps: 12, Date: daysAgo(3)},
		{ExerciseID: "ex_bench", ExerciseName: "Bench Press", WeightKg: 85, Reps: 3, Date: daysAgo(5)},
	}
	if diff := cmp.Diff(want, progress.BestLifts(history)); diff != "" {
		t.Errorf("BestLifts() mismatch (-want +got):\n%s", diff)
	}
}

func TestMilestones(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		if got := progress.Milestones(nil, 0, wednesday); len(got) != 0 {
			t.Errorf("Milestones() = %v, want none", got)
		}
	})

	t.Run("counts streaks and volume", func(t *testing.T) {
		var history []workout.Log
		for i := range 12 {
			history = append(history, logAt(daysAgo(i), lift("ex_squat", "Squat", set(100, 10))))
		}
		got := progress.Milestones(history, 7, wednesday)
		want := []progress.Milestone{
			{ID: "workout_count_1", Type: progress.MilestoneWorkoutCount, Label: "First Workout", Date: daysAgo(11), Value: 1},
			{ID: "workout_count_10", Type: progress.MilestoneWorkoutCount, Label: "10th Workout logged", Date: daysAgo(2),
				Value: 10},
			{ID: "streak_3", Type: progress.MilestoneStreak, Label: "3-day Unstoppable Streak", Date: wednesday, Value: 3},
			{ID: "streak_7", Type: progress.MilestoneStreak, Label: "7-day Unstoppable Streak", Date: wednesday, Value: 7},
			{ID: "volume_10k", Type: progress.MilestoneVolume, Label: "10,000kg Total Volume Moved", Date: wednesday,
				Value: 10000},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Milestones() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("volume must exceed threshold", func(t *testing.T) {
		history := []workout.Log{logAt(daysAgo(0), lift("ex_squat", "Squat", set(100, 100)))}
		for _, m := range progress.Milestones(history, 0, wednesday) {
			if m.Type == progress.MilestoneVolume {
				t.Errorf("exactly 10000kg should not earn %q", m.Label)
			}
		}
	})
}

func TestFavorites(t *testing.T) {
	history := []workout.Log{
		logAt(daysAgo(0), lift("a", "Squat"), lift("b", "Bench Press"), lift("c", "Row")),
		logAt(daysAgo(1), lift("a", "Squat"), lift("d", "Curl")),
		logAt(daysAgo(2), lift("a", "Squat"), lift("d", "Curl"), lift("c", "Row")),
	}
	want := []progress.Favorite{
		{Name: "Squat", Count: 3},
		{Name: "Curl", Count: 2},
		{Name: "Row", Count: 2},
	}
	if diff := cmp.Diff(want, progress.Favorites(history)); diff != "" {
		t.Errorf("Favorites() mismatch (-want +got):\n%s", diff)
	}
	if got := progress.Favorites(nil); len(got) != 0 {
		t.Errorf("Favorites(nil) = %v, want empty", got)
	}
}

func TestToughestPeriod(t *testing.T) {
	tired := func(date time.Time, mood, energy int) workout.Log {
		l := logAt(date)
		l.MoodAfter = mood
		l.EnergyLevel = energy
		return l
	}
	tests := []struct {
		name    string
		history []workout.Log
		want    progress.ToughDay
		wantOK  bool
	}{
		{
			name:    "too few workouts",
			history: []workout.Log{tired(daysAgo(1), 1, 1), tired(daysAgo(2), 1, 1)},
		},
		{
			name: "nothing tough enough",
			history: []workout.Log{
				tired(daysAgo(1), 3, 2), tired(daysAgo(2), 4, 4), tired(daysAgo(3), 4, 4),
				tired(daysAgo(4), 5, 5), tired(daysAgo(5), 4, 3),
			},
		},
		{
			name: "earliest lowest wins",
			history: []workout.Log{
				tired(daysAgo(1), 2, 1), tired(daysAgo(2), 4, 4), tired(daysAgo(6), 1, 2),
				tired(daysAgo(4), 5, 5), tired(daysAgo(5), 2, 2),
			},
			want:   progress.ToughDay{Date: daysAgo(6), Reason: "low mental and physical energy"},
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := progress.ToughestPeriod(tt.history)
			if ok != tt.wantOK {
				t.Fatalf("ToughestPeriod() ok = %v, want %v", ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToughestPeriod() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
