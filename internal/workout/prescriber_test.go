package workout_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/repcoach/internal/catalog"
	"github.com/myrjola/repcoach/internal/workout"
)

func mustExercise(t *testing.T, id string) catalog.Exercise {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	e, ok := c.ByID(id)
	if !ok {
		t.Fatalf("exercise %s missing", id)
	}
	return e
}

func TestPrescribeSets(t *testing.T) {
	bench := mustExercise(t, "ex001")
	flyes := mustExercise(t, "ex003")

	benchHistory := []workout.Log{
		{
			Exercises: []workout.LoggedExercise{
				{
					ExerciseName: "barbell bench press",
					Sets: []workout.LoggedSet{
						{WeightKg: 60, Reps: 8, Completed: true},
						{WeightKg: 70, Reps: 6, Completed: true},
						{WeightKg: 200, Reps: 0, Completed: false},
						{WeightKg: 0, Reps: 10, Completed: true},
					},
				},
				{ExerciseName: "Barbell Bench", Sets: sets(3, 500)},
			},
		},
	}

	tests := []struct {
		name    string
		profile workout.Profile
		we      workout.WorkoutExercise
		history []workout.Log
		want    []workout.SetPrescription
	}{
		{
			name:    "bodyweight estimate for an intermediate compound",
			profile: workout.Profile{WeightKg: 80, FitnessLevel: workout.LevelIntermediate},
			we:      workout.WorkoutExercise{Exercise: bench, Sets: 4, Reps: "6-10"},
			want: []workout.SetPrescription{
				{SetNumber: 1, TargetReps: 6, TargetWeightKg: 25, Note: "Warm-up / groove technique"},
				{SetNumber: 2, TargetReps: 6, TargetWeightKg: 30, Note: "Warm-up / groove technique"},
				{SetNumber: 3, TargetReps: 6, TargetWeightKg: 37.5, Note: "Working set"},
				{SetNumber: 4, TargetReps: 6, TargetWeightKg: 40, Note: "Top set — controlled effort"},
			},
		},
		{
			name:    "mean of completed weighted sets with a case-insensitive exact name",
			profile: workout.Profile{WeightKg: 80, FitnessLevel: workout.LevelBeginner},
			we:      workout.WorkoutExercise{Exercise: bench, Sets: 3, Reps: "5"},
			history: benchHistory,
			want: []workout.SetPrescription{
				{SetNumber: 1, TargetReps: 5, TargetWeightKg: 45, Note: "Warm-up / groove technique"},
				{SetNumber: 2, TargetReps: 5, TargetWeightKg: 55, Note: "Warm-up / groove technique"},
				{SetNumber: 3, TargetReps: 5, TargetWeightKg: 67.5, Note: "Top set — controlled effort"},
			},
		},
		{
			name:    "light beginner isolation hits the floor",
			profile: workout.Profile{WeightKg: 10, FitnessLevel: workout.LevelBeginner},
			we:      workout.WorkoutExercise{Exercise: flyes, Sets: 2, Reps: "not a number"},
			want: []workout.SetPrescription{
				{SetNumber: 1, TargetReps: 10, TargetWeightKg: 5, Note: "Warm-up / groove technique"},
				{SetNumber: 2, TargetReps: 10, TargetWeightKg: 5, Note: "Warm-up / groove technique"},
			},
		},
		{
			name:    "no sets",
			profile: workout.Profile{WeightKg: 80, FitnessLevel: workout.LevelAdvanced},
			we:      workout.WorkoutExercise{Exercise: bench, Sets: 0, Reps: "5"},
			want:    []workout.SetPrescription{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workout.PrescribeSets(tt.profile, tt.we, tt.history)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PrescribeSets() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestPrescribeSets_plateIncrements checks that every weight is a loadable multiple of 2.5 kg of at least 5 kg.
func TestPrescribeSets_plateIncrements(t *testing.T) {
	exercises := []catalog.Exercise{mustExercise(t, "ex001"), mustExercise(t, "ex021"), mustExercise(t, "ex090")}
	levels := []workout.FitnessLevel{workout.LevelBeginner, workout.LevelIntermediate, workout.LevelAdvanced, ""}
	for _, ex := range exercises {
		for _, level := range levels {
			for weight := -10.0; weight <= 150; weight += 7.3 {
				profile := workout.Profile{WeightKg: weight, FitnessLevel: level}
				for _, p := range workout.PrescribeSets(profile, workout.WorkoutExercise{Exercise: ex, Sets: 6}, nil) {
					if p.TargetWeightKg < 5 || math.Mod(p.TargetWeightKg, 2.5) != 0 {
						t.Fatalf("%s %s %.1fkg set %d: %v kg", ex.Name, level, weight, p.SetNumber, p.TargetWeightKg)
					}
				}
			}
		}
	}
}

func TestBaseWeight(t *testing.T) {
	bench := mustExercise(t, "ex001")
	tests := []struct {
		name  string
		level workout.FitnessLevel
		want  float64
	}{
		{name: "advanced", level: workout.LevelAdvanced, want: 45},
		{name: "intermediate", level: workout.LevelIntermediate, want: 36},
		{name: "beginner", level: workout.LevelBeginner, want: 27},
		{name: "unset level counts as beginner", level: "", want: 27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := workout.Profile{WeightKg: 80, FitnessLevel: tt.level}
			if got := workout.BaseWeight(profile, bench, nil); got != tt.want {
				t.Errorf("BaseWeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRepTarget(t *testing.T) {
	tests := []struct {
		reps string
		want int
	}{
		{reps: "8-12", want: 8},
		{reps: "30-60s", want: 30},
		{reps: "12", want: 12},
		{reps: " 15 - 20", want: 15},
		{reps: "5s", want: 5},
		{reps: "AMRAP", want: 10},
		{reps: "", want: 10},
		{reps: "0-5", want: 10},
		{reps: "-5", want: 10},
	}
	for _, tt := range tests {
		if got := workout.RepTarget(tt.reps); got != tt.want {
			t.Errorf("RepTarget(%q) = %d, want %d", tt.reps, got, tt.want)
		}
	}
}
