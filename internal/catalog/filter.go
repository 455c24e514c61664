package catalog

import "slices"

// Criteria narrows down the catalog. Zero fields match everything.
type Criteria struct {
	// Muscle matches the primary muscle, or any secondary muscle when IncludeSecondary is set.
	Muscle           string
	IncludeSecondary bool
	// Equipment lists what is available. Bodyweight and equipment-free exercises always match.
	Equipment []Equipment
	// MaxLevel excludes exercises above this level.
	MaxLevel Level
	Category Category
}

func levelRank(l Level) int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2 //nolint:mnd // rank
	case LevelAdvanced:
		return 3 //nolint:mnd // rank
	default:
		return 0
	}
}

func (cr Criteria) matches(e Exercise) bool {
	if cr.Muscle != "" && e.PrimaryMuscle != cr.Muscle &&
		!(cr.IncludeSecondary && slices.Contains(e.SecondaryMuscles, cr.Muscle)) {
		return false
	}
	if len(cr.Equipment) > 0 && !usable(e.Equipment, cr.Equipment) {
		return false
	}
	if cr.MaxLevel != "" && levelRank(e.Level) > levelRank(cr.MaxLevel) {
		return false
	}
	if cr.Category != "" && e.Category != cr.Category {
		return false
	}
	return true
}

func usable(needed Equipment, available []Equipment) bool {
	return needed == EquipmentBodyweight || needed == EquipmentNone || slices.Contains(available, needed)
}

// Filter returns the exercises matching cr in catalog order.
func (c *Catalog) Filter(cr Criteria) []Exercise {
	var matches []Exercise
	for _, e := range c.exercises {
		if cr.matches(e) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Substitutes returns the variations of the exercise with the given id that can be performed with the available
// equipment, easiest first. An empty available list accepts any equipment. The boolean is false when the
// exercise does not exist.
func (c *Catalog) Substitutes(id string, available []Equipment) ([]Variation, bool) {
	e, ok := c.ByID(id)
	if !ok {
		return nil, false
	}
	var subs []Variation
	for _, v := range e.Variations {
		if len(available) == 0 || usable(v.Equipment, available) {
			subs = append(subs, v)
		}
	}
	slices.SortStableFunc(subs, func(a, b Variation) int {
		return difficultyRank(a.Difficulty) - difficultyRank(b.Difficulty)
	})
	return subs, true
}

func difficultyRank(d Difficulty) int {
	switch d {
	case DifficultyEasier:
		return 0
	case DifficultySame:
		return 1
	case DifficultyHarder:
		return 2 //nolint:mnd // rank
	default:
		return 1
	}
}
