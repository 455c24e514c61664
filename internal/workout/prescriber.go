package workout

import (
	"math"
	"strings"

	"github.com/myrjola/repcoach/internal/catalog"
)

// Load prescription rules.
const (
	minWeightKg          = 5.0
	plateIncrementKg     = 2.5
	defaultRepTarget     = 10
	compoundBodyweight   = 0.45
	isolationBodyweight  = 0.25
	advancedMultiplier   = 1.25
	beginnerMultiplier   = 0.75
	firstSetMultiplier   = 0.70
	secondSetMultiplier  = 0.85
	workingSetMultiplier = 0.95
	rampPerSet           = 0.05
	maxSetMultiplier     = 1.15
	noteWarmupSet        = "Warm-up / groove technique"
	noteTopSet           = "Top set — controlled effort"
	noteWorkingSet       = "Working set"
)

// PrescribeSets ramps the weight of each of we.Sets sets from a warm-up up to a top set. The base weight is
// the mean of the user's completed sets of the same exercise, or a bodyweight estimate when there are none.
func PrescribeSets(profile Profile, we WorkoutExercise, history []Log) []SetPrescription {
	if we.Sets <= 0 {
		return []SetPrescription{}
	}
	base := BaseWeight(profile, we.Exercise, history)
	reps := RepTarget(we.Reps)

	sets := make([]SetPrescription, 0, we.Sets)
	for i := range we.Sets {
		setNumber := i + 1
		note := noteWorkingSet
		switch {
		case setNumber <= 2: //nolint:mnd // two warm-up sets
			note = noteWarmupSet
		case setNumber == we.Sets:
			note = noteTopSet
		}
		sets = append(sets, SetPrescription{
			SetNumber:      setNumber,
			TargetReps:     reps,
			TargetWeightKg: roundToPlate(base * setMultiplier(i)),
			Note:           note,
		})
	}
	return sets
}

// BaseWeight infers the working weight for ex. Only completed sets with a positive weight count as history.
// Exercise names are matched case-insensitively.
func BaseWeight(profile Profile, ex catalog.Exercise, history []Log) float64 {
	var total float64
	var n int
	for _, l := range history {
		for _, le := range l.Exercises {
			if !strings.EqualFold(le.ExerciseName, ex.Name) {
				continue
			}
			for _, s := range le.Sets {
				if s.Completed && s.WeightKg > 0 {
					total += s.WeightKg
					n++
				}
			}
		}
	}
	if n > 0 {
		return math.Max(minWeightKg, math.Round(total/float64(n)))
	}

	factor := isolationBodyweight
	if ex.IsCompound() {
		factor = compoundBodyweight
	}
	var levelMultiplier float64
	switch profile.FitnessLevel {
	case LevelAdvanced:
		levelMultiplier = advancedMultiplier
	case LevelIntermediate:
		levelMultiplier = 1
	case LevelBeginner:
		levelMultiplier = beginnerMultiplier
	default:
		levelMultiplier = beginnerMultiplier
	}
	estimate := math.Round(profile.WeightKg * factor * levelMultiplier)
	if math.IsNaN(estimate) {
		return minWeightKg
	}
	return math.Max(minWeightKg, estimate)
}

func setMultiplier(index int) float64 {
	switch index {
	case 0:
		return firstSetMultiplier
	case 1:
		return secondSetMultiplier
	default:
		return math.Min(maxSetMultiplier, workingSetMultiplier+rampPerSet*float64(index))
	}
}

func roundToPlate(kg float64) float64 {
	return math.Max(minWeightKg, math.Round(kg/plateIncrementKg)*plateIncrementKg)
}

// RepTarget reads the leading number of a rep range such as "8-12" or "30s". Ranges without a leading
// positive number fall back to 10.
func RepTarget(reps string) int {
	first, _, _ := strings.Cut(reps, "-")
	first = strings.TrimSpace(first)
	n := 0
	for _, r := range first {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0') //nolint:mnd // decimal
		if n > math.MaxInt32 {
			return defaultRepTarget
		}
	}
	if n <= 0 {
		return defaultRepTarget
	}
	return n
}
