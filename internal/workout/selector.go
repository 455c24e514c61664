package workout

import (
	"slices"
	"strings"

	"github.com/myrjola/repcoach/internal/catalog"
)

// Selection rules.
const (
	defaultRestSeconds      = 90
	strengthMinSets         = 4
	strengthRestSeconds     = 180
	fatLossSets             = 3
	fatLossRestSeconds      = 45
	muscleGainRestSeconds   = 90
	lowRecoveryScore        = 40
	minSetsWhenRecovering   = 2
	noteReducedVolume       = "Reduced volume due to recovery needs"
	noteStrengthFocus       = "Focus on heavy weight, full recovery between sets"
	noteFatLossRest         = "Keep rest short for metabolic effect"
	noteMuscleGainEccentric = "Control the eccentric phase — 3 seconds down"
)

// SelectExercises returns every catalog exercise that trains muscle as its primary muscle, compounds first,
// adapted to goal and to the muscle's recovery score. Beginners never get advanced exercises. The first
// compound exercise is flagged as the warm-up.
func (e *Engine) SelectExercises(muscle string, level FitnessLevel, goal Goal, recoveryScore int) []WorkoutExercise {
	candidates := slices.DeleteFunc(e.catalog.ByPrimaryMuscle(muscle), func(ex catalog.Exercise) bool {
		return level == LevelBeginner && ex.Level == catalog.LevelAdvanced
	})
	slices.SortStableFunc(candidates, func(a, b catalog.Exercise) int {
		return compoundRank(a) - compoundRank(b)
	})

	selected := make([]WorkoutExercise, 0, len(candidates))
	for i, ex := range candidates {
		we := adapt(ex, goal, recoveryScore)
		we.IsWarmup = i == 0 && ex.IsCompound()
		selected = append(selected, we)
	}
	return selected
}

func compoundRank(ex catalog.Exercise) int {
	if ex.IsCompound() {
		return 0
	}
	return 1
}

func adapt(ex catalog.Exercise, goal Goal, recoveryScore int) WorkoutExercise {
	we := WorkoutExercise{
		Exercise:    ex,
		Sets:        ex.DefaultSets,
		Reps:        ex.DefaultReps,
		RestSeconds: defaultRestSeconds,
		Notes:       "",
		IsWarmup:    false,
	}
	var notes []string

	switch goal {
	case GoalStrength:
		we.Sets = max(ex.DefaultSets, strengthMinSets)
		we.Reps = pick(ex.IsCompound(), "3-6", "6-8")
		we.RestSeconds = strengthRestSeconds
		notes = append(notes, noteStrengthFocus)
	case GoalFatLoss:
		we.Sets = fatLossSets
		we.RestSeconds = fatLossRestSeconds
		notes = append(notes, noteFatLossRest)
	case GoalMuscleGain:
		we.Reps = pick(ex.IsCompound(), "6-10", "10-15")
		we.RestSeconds = muscleGainRestSeconds
		notes = append(notes, noteMuscleGainEccentric)
	case GoalMaintenance, GoalEndurance:
	}

	if recoveryScore < lowRecoveryScore {
		we.Sets = max(minSetsWhenRecovering, we.Sets-1)
		notes = append(notes, noteReducedVolume)
	}
	we.Notes = strings.Join(notes, ". ")
	return we
}

func pick(compound bool, ifCompound, otherwise string) string {
	if compound {
		return ifCompound
	}
	return otherwise
}
