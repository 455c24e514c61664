package workout

import (
	"strings"
	"time"

	"github.com/myrjola/repcoach/internal/catalog"
	"github.com/myrjola/repcoach/internal/coaching"
)

// FitnessLevel is the user's training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// Goal is what the user trains for.
type Goal string

const (
	GoalMuscleGain  Goal = "muscle_gain"
	GoalFatLoss     Goal = "fat_loss"
	GoalStrength    Goal = "strength"
	GoalMaintenance Goal = "maintenance"
	GoalEndurance   Goal = "endurance"
)

// Day is a day of the week as stored in schedules.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Week lists the days Monday first.
func Week() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// DayOf returns the weekday of t in t's location.
func DayOf(t time.Time) Day {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ParseDay accepts a lowercase day name.
func ParseDay(s string) (Day, bool) {
	for _, d := range Week() {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// Title returns the capitalised day name, e.g. "Monday".
func (d Day) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Short returns the three-letter day name, e.g. "Mon".
func (d Day) Short() string {
	t := d.Title()
	if len(t) < 3 { //nolint:mnd // three letters
		return t
	}
	return t[:3]
}

// TimeSlot is when in the day a session takes place.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// Session is one scheduled block of training.
type Session struct {
	TimeSlot     TimeSlot `json:"timeSlot"`
	MuscleGroups []string `json:"muscleGroups"`
	Label        string   `json:"label"`
}

// DaySchedule is the plan for one day. IsRestDay is true exactly when Sessions is empty; use the schedule
// edit functions to keep the two in sync.
type DaySchedule struct {
	IsRestDay bool      `json:"isRestDay"`
	Sessions  []Session `json:"sessions"`
}

// WeeklySchedule maps each day to its plan. Missing days are rest days.
type WeeklySchedule map[Day]DaySchedule

// Profile is everything the engine needs to know about a user.
type Profile struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	WeightKg     float64           `json:"weightKg"`
	FitnessLevel FitnessLevel      `json:"fitnessLevel"`
	Goal         Goal              `json:"goal"`
	DaysPerWeek  int               `json:"daysPerWeek"`
	Schedule     WeeklySchedule    `json:"schedule"`
	Identity     coaching.Identity `json:"identity"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// LoggedSet is one performed set.
type LoggedSet struct {
	WeightKg  float64 `json:"weightKg"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

// LoggedExercise is one exercise of a logged workout. Sets may be empty when the exercise was skipped.
type LoggedExercise struct {
	ExerciseID   string      `json:"exerciseId"`
	ExerciseName string      `json:"exerciseName"`
	MuscleGroup  string      `json:"muscleGroup"`
	Sets         []LoggedSet `json:"sets"`
}

// Log is a completed workout. Logs are append-only.
type Log struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	SplitDay        string           `json:"splitDay"`
	SessionIndex    int              `json:"sessionIndex"`
	Exercises       []LoggedExercise `json:"exercises"`
	MoodBefore      int              `json:"moodBefore"`
	MoodAfter       int              `json:"moodAfter"`
	EnergyLevel     int              `json:"energyLevel"`
	DurationMinutes int              `json:"durationMinutes"`
	Notes           string           `json:"notes"`
	Completed       bool             `json:"completed"`
}

// Intensity classifies a generated workout.
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// State tells which branch of generation produced a workout.
type State string

const (
	StateRestDay              State = "rest_day"
	StateNoMusclesAssigned    State = "no_muscles_assigned"
	StateNoExercisesAvailable State = "no_exercises_available"
	StateGenerated            State = "generated"
)

// WorkoutExercise is a catalog exercise adapted to the user's goal and recovery.
type WorkoutExercise struct {
	Exercise    catalog.Exercise `json:"exercise"`
	Sets        int              `json:"sets"`
	Reps        string           `json:"reps"`
	RestSeconds int              `json:"restSeconds"`
	Notes       string           `json:"notes"`
	IsWarmup    bool             `json:"isWarmup"`
}

// GeneratedWorkout is derived on every request and never stored.
type GeneratedWorkout struct {
	State        State             `json:"state"`
	SplitDay     string            `json:"splitDay"`
	MuscleGroups []string          `json:"muscleGroups"`
	Focus        string            `json:"focus"`
	Exercises    []WorkoutExercise `json:"exercises"`
	// EstimatedDuration is in minutes.
	EstimatedDuration int       `json:"estimatedDuration"`
	Intensity         Intensity `json:"intensity"`
	CoachNote         string    `json:"coachNote"`
	SessionIndex      int       `json:"sessionIndex"`
}

// SetPrescription is the target for one set of an exercise.
type SetPrescription struct {
	SetNumber      int     `json:"setNumber"`
	TargetReps     int     `json:"targetReps"`
	TargetWeightKg float64 `json:"targetWeightKg"`
	Note           string  `json:"note"`
}
