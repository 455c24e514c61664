package workout

import (
	"fmt"
	"strings"
	"time"
)

// Generation rules.
const (
	secondsPerSet        = 45
	minSessionMinutes    = 30
	intenseRecoveryScore = 80
	moderateRecovery     = 50
	restDayNote          = "Today is a recovery day. Rest is where the magic happens — your muscles grow OUTSIDE " +
		"the gym. Focus on sleep, nutrition, and light stretching."
	noMusclesNote = "No muscle groups configured for this session. Edit your schedule to add muscles."
)

// Generate builds the workout for the session at sessionIndex of the day now falls on. Out of range indexes
// are clamped to the nearest session. Rest days and sessions without muscles produce a workout without
// exercises that explains why, as do sessions whose muscles match no catalog exercise.
func (e *Engine) Generate(profile Profile, history []Log, now time.Time, sessionIndex int) GeneratedWorkout {
	d := DayOf(now)
	schedule := profile.Schedule[d]
	if schedule.IsRestDay || len(schedule.Sessions) == 0 {
		return restDay(d)
	}

	sessionIndex = max(0, min(sessionIndex, len(schedule.Sessions)-1))
	session := schedule.Sessions[sessionIndex]
	label := session.Label
	if label == "" {
		label = SessionLabel(session.MuscleGroups)
	}

	if len(session.MuscleGroups) == 0 {
		splitDay := session.Label
		if splitDay == "" {
			splitDay = d.Title() + " Session"
		}
		return GeneratedWorkout{
			State:             StateNoMusclesAssigned,
			SplitDay:          splitDay,
			MuscleGroups:      []string{},
			Focus:             "No muscles assigned",
			Exercises:         []WorkoutExercise{},
			EstimatedDuration: 0,
			Intensity:         IntensityLight,
			CoachNote:         noMusclesNote,
			SessionIndex:      sessionIndex,
		}
	}

	exercises := []WorkoutExercise{}
	var recoveryTotal int
	for _, m := range session.MuscleGroups {
		score := e.muscleRecovery(m, history, now)
		recoveryTotal += score
		exercises = append(exercises, e.SelectExercises(m, profile.FitnessLevel, profile.Goal, score)...)
	}

	splitDay := fmt.Sprintf("%s — %s", d.Title(), label)
	if len(schedule.Sessions) > 1 {
		splitDay = fmt.Sprintf("%s — %s (%s)", d.Title(), label, session.TimeSlot)
	}

	if len(exercises) == 0 {
		return GeneratedWorkout{
			State:             StateNoExercisesAvailable,
			SplitDay:          splitDay,
			MuscleGroups:      append([]string(nil), session.MuscleGroups...),
			Focus:             label,
			Exercises:         exercises,
			EstimatedDuration: 0,
			Intensity:         IntensityLight,
			CoachNote: fmt.Sprintf("No exercises available for %s. Edit your schedule to pick other muscles.",
				strings.Join(session.MuscleGroups, ", ")),
			SessionIndex: sessionIndex,
		}
	}

	avgRecovery := float64(recoveryTotal) / float64(len(session.MuscleGroups))

	intensity := IntensityLight
	switch {
	case avgRecovery >= intenseRecoveryScore:
		intensity = IntensityIntense
	case avgRecovery >= moderateRecovery:
		intensity = IntensityModerate
	}

	return GeneratedWorkout{
		State:             StateGenerated,
		SplitDay:          splitDay,
		MuscleGroups:      append([]string(nil), session.MuscleGroups...),
		Focus:             label,
		Exercises:         exercises,
		EstimatedDuration: estimateDuration(exercises),
		Intensity:         intensity,
		CoachNote:         coachNote(profile.Goal, intensity, label),
		SessionIndex:      sessionIndex,
	}
}

func restDay(d Day) GeneratedWorkout {
	return GeneratedWorkout{
		State:             StateRestDay,
		SplitDay:          d.Title() + " — Rest Day",
		MuscleGroups:      []string{},
		Focus:             "Recovery & Regeneration",
		Exercises:         []WorkoutExercise{},
		EstimatedDuration: 0,
		Intensity:         IntensityLight,
		CoachNote:         restDayNote,
		SessionIndex:      0,
	}
}

// estimateDuration allows 45 seconds of work per set plus the average rest. Any work at all takes at least half
// an hour.
func estimateDuration(exercises []WorkoutExercise) int {
	var totalSets, totalRest int
	for _, we := range exercises {
		totalSets += we.Sets
		totalRest += we.RestSeconds
	}
	if totalSets == 0 {
		return 0
	}
	var avgRest float64
	if len(exercises) > 0 {
		avgRest = float64(totalRest) / float64(len(exercises))
	}
	return max(minSessionMinutes, roundInt(float64(totalSets)*(secondsPerSet+avgRest)/60)) //nolint:mnd // seconds
}

func coachNote(goal Goal, intensity Intensity, label string) string {
	var notes []string
	if intensity == IntensityLight {
		notes = append(notes, "Some muscles are still recovering — I've adjusted the intensity.")
	}
	switch goal {
	case GoalStrength:
		notes = append(notes, "Focus on heavy compounds with full rest between sets.")
	case GoalMuscleGain:
		notes = append(notes, "Chase the pump — controlled tempo and mind-muscle connection.")
	case GoalFatLoss:
		notes = append(notes, "Keep rest periods short and supersets where possible.")
	case GoalMaintenance, GoalEndurance:
	}
	if len(notes) == 0 {
		return fmt.Sprintf("Today is %s day. Let's make every rep count!", label)
	}
	return strings.Join(notes, " ")
}

// TodaySessions generates every session of the day now falls on. A rest day yields a single rest workout.
func (e *Engine) TodaySessions(profile Profile, history []Log, now time.Time) []GeneratedWorkout {
	schedule := profile.Schedule[DayOf(now)]
	if schedule.IsRestDay || len(schedule.Sessions) == 0 {
		return []GeneratedWorkout{restDay(DayOf(now))}
	}
	workouts := make([]GeneratedWorkout, 0, len(schedule.Sessions))
	for i := range schedule.Sessions {
		workouts = append(workouts, e.Generate(profile, history, now, i))
	}
	return workouts
}
