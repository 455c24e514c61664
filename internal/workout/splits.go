package workout

import "slices"

// SplitDay is one day of a split template. A day without muscles is a rest day.
type SplitDay struct {
	Label        string   `json:"label"`
	MuscleGroups []string `json:"muscleGroups"`
	Focus        string   `json:"focus"`
}

// SplitTemplate is a ready-made weekly program. Days run Monday to Sunday.
type SplitTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	DaysPerWeek int          `json:"daysPerWeek"`
	Level       FitnessLevel `json:"level"`
	Days        [7]SplitDay  `json:"days"`
	Description string       `json:"description"`
}

func rest(focus string) SplitDay {
	return SplitDay{Label: "Rest", MuscleGroups: nil, Focus: focus}
}

func upperBody() []string { return []string{"chest", "back", "shoulders", "biceps", "triceps"} }
func lowerBody() []string { return []string{"quadriceps", "hamstrings", "glutes", "calves", "core"} }
func push() []string      { return []string{"chest", "shoulders", "triceps"} }

// SplitTemplates lists the built-in programs.
func SplitTemplates() []SplitTemplate {
	return []SplitTemplate{
		{
			ID:          "fullbody_3",
			Name:        "Full Body 3-Day",
			DaysPerWeek: 3, //nolint:mnd // days
			Level:       LevelBeginner,
			Days: [7]SplitDay{
				{Label: "Full Body A", MuscleGroups: []string{"chest", "back", "quadriceps", "shoulders", "core"},
					Focus: "Compound movements"},
				rest("Recovery"),
				{Label: "Full Body B", MuscleGroups: []string{"chest", "back", "hamstrings", "glutes", "biceps", "triceps"},
					Focus: "Compound + isolation"},
				rest("Recovery"),
				{Label: "Full Body C", MuscleGroups: []string{"back", "shoulders", "quadriceps", "core", "calves"},
					Focus: "Volume focus"},
				rest("Recovery"),
				rest("Recovery"),
			},
			Description: "Perfect for beginners. 3 full body workouts per week with adequate recovery.",
		},
		{
			ID:          "upper_lower_4",
			Name:        "Upper/Lower 4-Day",
			DaysPerWeek: 4, //nolint:mnd // days
			Level:       LevelIntermediate,
			Days: [7]SplitDay{
				{Label: "Upper A", MuscleGroups: upperBody(), Focus: "Strength focus, heavy compounds"},
				{Label: "Lower A", MuscleGroups: lowerBody(), Focus: "Strength focus, squat dominant"},
				rest("Active recovery"),
				{Label: "Upper B", MuscleGroups: upperBody(), Focus: "Hypertrophy, higher volume"},
				{Label: "Lower B", MuscleGroups: lowerBody(), Focus: "Hypertrophy, hinge dominant"},
				rest("Recovery"),
				rest("Recovery"),
			},
			Description: "Great balance of frequency and recovery. Each muscle hit 2x/week.",
		},
		{
			ID:          "ppl_6",
			Name:        "Push/Pull/Legs 6-Day",
			DaysPerWeek: 6, //nolint:mnd // days
			Level:       LevelAdvanced,
			Days: [7]SplitDay{
				{Label: "Push A", MuscleGroups: push(), Focus: "Heavy strength"},
				{Label: "Pull A", MuscleGroups: []string{"back", "biceps", "forearms", "traps"}, Focus: "Heavy strength"},
				{Label: "Legs A", MuscleGroups: lowerBody(), Focus: "Squat dominant"},
				{Label: "Push B", MuscleGroups: push(), Focus: "Hypertrophy volume"},
				{Label: "Pull B", MuscleGroups: []string{"back", "lats", "biceps", "traps"}, Focus: "Hypertrophy volume"},
				{Label: "Legs B", MuscleGroups: lowerBody(), Focus: "Hinge dominant"},
				rest("Full recovery"),
			},
			Description: "Maximum volume and frequency. For experienced lifters only.",
		},
		{
			ID:          "ppl_3",
			Name:        "Push/Pull/Legs 3-Day",
			DaysPerWeek: 3, //nolint:mnd // days
			Level:       LevelBeginner,
			Days: [7]SplitDay{
				{Label: "Push", MuscleGroups: push(), Focus: "All pressing movements"},
				rest("Recovery"),
				{Label: "Pull", MuscleGroups: []string{"back", "biceps", "forearms", "traps"},
					Focus: "All pulling movements"},
				rest("Recovery"),
				{Label: "Legs", MuscleGroups: lowerBody(), Focus: "Lower body"},
				rest("Recovery"),
				rest("Recovery"),
			},
			Description: "Simple 3-day split. Good for beginners who prefer body part focus.",
		},
		{
			ID:          "bro_5",
			Name:        "5-Day Bro Split",
			DaysPerWeek: 5, //nolint:mnd // days
			Level:       LevelIntermediate,
			Days: [7]SplitDay{
				{Label: "Chest", MuscleGroups: []string{"chest", "core"}, Focus: "High volume chest"},
				{Label: "Back", MuscleGroups: []string{"back", "lats", "traps"}, Focus: "Width and thickness"},
				{Label: "Shoulders + Arms", MuscleGroups: []string{"shoulders", "biceps", "triceps"},
					Focus: "Delts and arms"},
				{Label: "Legs", MuscleGroups: []string{"quadriceps", "hamstrings", "glutes", "calves"},
					Focus: "Full leg day"},
				{Label: "Weak Points", MuscleGroups: []string{"core", "forearms", "calves"},
					Focus: "Bring up lagging parts"},
				rest("Recovery"),
				rest("Recovery"),
			},
			Description: "Classic bodybuilding split. Maximum volume per muscle per session.",
		},
	}
}

// SplitsForLevel returns the templates meant for level.
func SplitsForLevel(level FitnessLevel) []SplitTemplate {
	return slices.DeleteFunc(SplitTemplates(), func(t SplitTemplate) bool {
		return t.Level != level
	})
}

// SplitByID finds a template.
func SplitByID(id string) (SplitTemplate, bool) {
	i := slices.IndexFunc(SplitTemplates(), func(t SplitTemplate) bool { return t.ID == id })
	if i < 0 {
		return SplitTemplate{}, false
	}
	return SplitTemplates()[i], true
}

// ScheduleFromTemplate lays the template out as a weekly schedule with one morning session per training day.
func ScheduleFromTemplate(t SplitTemplate) WeeklySchedule {
	s := EmptySchedule()
	for i, d := range Week() {
		sd := t.Days[i]
		if len(sd.MuscleGroups) == 0 {
			continue
		}
		s[d] = withSessions([]Session{{
			TimeSlot:     SlotMorning,
			MuscleGroups: slices.Clone(sd.MuscleGroups),
			Label:        sd.Label,
		}})
	}
	return s
}
