package workout_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/myrjola/repcoach/internal/workout"
)

func shoulderSession() workout.Session {
	return workout.Session{TimeSlot: workout.SlotMorning, MuscleGroups: []string{"shoulders"}, Label: "Shoulders"}
}

func TestEngine_Generate_restDay(t *testing.T) {
	e := newEngine(t)
	history := []workout.Log{trained(monday.Add(-time.Hour), "chest", 30)}

	rest := workout.EmptySchedule()
	flaggedRest := workout.EmptySchedule()
	flaggedRest[workout.Monday] = workout.DaySchedule{IsRestDay: true, Sessions: []workout.Session{shoulderSession()}}
	missing := workout.WeeklySchedule{}

	want := workout.GeneratedWorkout{
		State:             workout.StateRestDay,
		SplitDay:          "Monday — Rest Day",
		MuscleGroups:      []string{},
		Focus:             "Recovery & Regeneration",
		Exercises:         []workout.WorkoutExercise{},
		EstimatedDuration: 0,
		Intensity:         workout.IntensityLight,
		CoachNote: "Today is a recovery day. Rest is where the magic happens — your muscles grow OUTSIDE the gym. " +
			"Focus on sleep, nutrition, and light stretching.",
		SessionIndex: 0,
	}
	for name, schedule := range map[string]workout.WeeklySchedule{
		"rest day":                      rest,
		"rest flag wins over sessions":  flaggedRest,
		"day missing from the schedule": missing,
	} {
		t.Run(name, func(t *testing.T) {
			profile := profileWith(workout.LevelAdvanced, workout.GoalStrength)
			profile.Schedule = schedule
			got := e.Generate(profile, history, monday, 2)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_Generate_noMusclesAssigned(t *testing.T) {
	e := newEngine(t)
	tests := []struct {
		name         string
		label        string
		wantSplitDay string
	}{
		{name: "unlabelled", label: "", wantSplitDay: "Monday Session"},
		{name: "labelled", label: "Mystery", wantSplitDay: "Mystery"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := profileWith(workout.LevelBeginner, workout.GoalFatLoss,
				workout.Session{TimeSlot: workout.SlotEvening, MuscleGroups: nil, Label: tt.label})
			got := e.Generate(profile, nil, monday, 0)
			if got.State != workout.StateNoMusclesAssigned || got.SplitDay != tt.wantSplitDay ||
				got.Focus != "No muscles assigned" || len(got.Exercises) != 0 || got.EstimatedDuration != 0 {
				t.Errorf("Generate() = %+v", got)
			}
			if got.CoachNote != "No muscle groups configured for this session. Edit your schedule to add muscles." {
				t.Errorf("coach note = %q", got.CoachNote)
			}
		})
	}
}

func TestEngine_Generate_noExercisesAvailable(t *testing.T) {
	e := newEngine(t)
	tests := []struct {
		name     string
		muscles  []string
		wantDay  string
		wantNote string
	}{
		{
			name:     "misspelled muscle",
			muscles:  []string{"glutez"},
			wantDay:  "Monday — Glutez",
			wantNote: "No exercises available for glutez. Edit your schedule to pick other muscles.",
		},
		{
			name:     "muscles without primary exercises",
			muscles:  []string{"hamstrings", "calves"},
			wantDay:  "Monday — Hamstrings & Calves",
			wantNote: "No exercises available for hamstrings, calves. Edit your schedule to pick other muscles.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := profileWith(workout.LevelAdvanced, workout.GoalStrength,
				workout.Session{TimeSlot: workout.SlotMorning, MuscleGroups: tt.muscles, Label: ""})
			got := e.Generate(profile, nil, monday, 0)
			want := workout.GeneratedWorkout{
				State:             workout.StateNoExercisesAvailable,
				SplitDay:          tt.wantDay,
				MuscleGroups:      tt.muscles,
				Focus:             tt.wantDay[len("Monday — "):],
				Exercises:         []workout.WorkoutExercise{},
				EstimatedDuration: 0,
				Intensity:         workout.IntensityLight,
				CoachNote:         tt.wantNote,
				SessionIndex:      0,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngine_Generate(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		name    string
		profile workout.Profile
		history []workout.Log
		index   int
		want    workout.GeneratedWorkout
	}{
		{
			name:    "recovered shoulders",
			profile: profileWith(workout.LevelIntermediate, workout.GoalMaintenance, shoulderSession()),
			history: []workout.Log{trained(monday.Add(-36*time.Hour), "shoulders", 9)},
			want: workout.GeneratedWorkout{
				State:             workout.StateGenerated,
				SplitDay:          "Monday — Shoulders",
				MuscleGroups:      []string{"shoulders"},
				Focus:             "Shoulders",
				EstimatedDuration: 50,
				Intensity:         workout.IntensityIntense,
				CoachNote:         "Today is Shoulders day. Let's make every rep count!",
			},
		},
		{
			name:    "just trained shoulders score zero",
			profile: profileWith(workout.LevelIntermediate, workout.GoalStrength, shoulderSession()),
			history: []workout.Log{trained(monday, "shoulders", 9)},
			want: workout.GeneratedWorkout{
				State:             workout.StateGenerated,
				SplitDay:          "Monday — Shoulders",
				MuscleGroups:      []string{"shoulders"},
				Focus:             "Shoulders",
				EstimatedDuration: 79,
				Intensity:         workout.IntensityLight,
				CoachNote: "Some muscles are still recovering — I've adjusted the intensity. " +
					"Focus on heavy compounds with full rest between sets.",
			},
		},
		{
			name:    "history older than a week is ignored",
			profile: profileWith(workout.LevelIntermediate, workout.GoalMuscleGain, shoulderSession()),
			history: []workout.Log{trained(monday.Add(-8*24*time.Hour), "shoulders", 9)},
			want: workout.GeneratedWorkout{
				State:             workout.StateGenerated,
				SplitDay:          "Monday — Shoulders",
				MuscleGroups:      []string{"shoulders"},
				Focus:             "Shoulders",
				EstimatedDuration: 50,
				Intensity:         workout.IntensityIntense,
				CoachNote:         "Chase the pump — controlled tempo and mind-muscle connection.",
			},
		},
		{
			name:    "future workouts are ignored",
			profile: profileWith(workout.LevelIntermediate, workout.GoalFatLoss, shoulderSession()),
			history: []workout.Log{trained(monday.Add(time.Hour), "shoulders", 9)},
			want: workout.GeneratedWorkout{
				State:             workout.StateGenerated,
				SplitDay:          "Monday — Shoulders",
				MuscleGroups:      []string{"shoulders"},
				Focus:             "Shoulders",
				EstimatedDuration: 32,
				Intensity:         workout.IntensityIntense,
				CoachNote:         "Keep rest periods short and supersets where possible.",
			},
		},
		{
			name: "second session of a two-a-day with a clamped index",
			profile: profileWith(workout.LevelIntermediate, workout.GoalEndurance,
				shoulderSession(),
				workout.Session{TimeSlot: workout.SlotAfternoon, MuscleGroups: []string{"forearms", "neck"}, Label: ""},
			),
			history: []workout.Log{trained(monday.Add(-12*time.Hour), "forearms", 3)},
			index:   7,
			want: workout.GeneratedWorkout{
				State:             workout.StateGenerated,
				SplitDay:          "Monday — Forearms & Neck (afternoon)",
				MuscleGroups:      []string{"forearms", "neck"},
				Focus:             "Forearms & Neck",
				EstimatedDuration: 30,
				Intensity:         workout.IntensityModerate,
				CoachNote:         "Today is Forearms & Neck day. Let's make every rep count!",
				SessionIndex:      1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Generate(tt.profile, tt.history, monday, tt.index)
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(workout.GeneratedWorkout{}, "Exercises")); diff != "" {
				t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
			}
			if len(got.Exercises) == 0 {
				t.Error("no exercises generated")
			}
		})
	}
}

func TestEngine_Generate_negativeIndex(t *testing.T) {
	e := newEngine(t)
	profile := profileWith(workout.LevelIntermediate, workout.GoalMaintenance, shoulderSession())
	got := e.Generate(profile, nil, monday, -3)
	if got.SessionIndex != 0 || got.State != workout.StateGenerated {
		t.Errorf("Generate() = %+v", got)
	}
}

func TestEngine_Generate_doesNotModifyInputs(t *testing.T) {
	e := newEngine(t)
	profile := profileWith(workout.LevelIntermediate, workout.GoalStrength, shoulderSession())
	history := []workout.Log{trained(monday.Add(-time.Hour), "shoulders", 9)}

	first := e.Generate(profile, history, monday, 0)
	first.MuscleGroups[0] = "changed"
	second := e.Generate(profile, history, monday, 0)

	if profile.Schedule[workout.Monday].Sessions[0].MuscleGroups[0] != "shoulders" {
		t.Error("Generate() shares muscle groups with the profile")
	}
	if second.MuscleGroups[0] != "shoulders" {
		t.Errorf("second generation = %v", second.MuscleGroups)
	}
}

func TestEngine_TodaySessions(t *testing.T) {
	e := newEngine(t)

	rest := e.TodaySessions(profileWith(workout.LevelBeginner, workout.GoalMaintenance), nil, monday)
	if len(rest) != 1 || rest[0].State != workout.StateRestDay {
		t.Errorf("rest day sessions = %+v", rest)
	}

	twoADay := profileWith(workout.LevelBeginner, workout.GoalMaintenance,
		shoulderSession(),
		workout.Session{TimeSlot: workout.SlotEvening, MuscleGroups: []string{"core"}, Label: "Core"},
	)
	got := e.TodaySessions(twoADay, nil, monday)
	splitDays := make([]string, 0, len(got))
	for i, w := range got {
		if w.SessionIndex != i {
			t.Errorf("session %d has index %d", i, w.SessionIndex)
		}
		splitDays = append(splitDays, w.SplitDay)
	}
	want := []string{"Monday — Shoulders (morning)", "Monday — Core (evening)"}
	if diff := cmp.Diff(want, splitDays); diff != "" {
		t.Errorf("split days mismatch (-want +got):\n%s", diff)
	}
}
