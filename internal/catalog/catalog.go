// Package catalog holds the static exercise library and muscle recovery table.
//
// A Catalog is built once at start-up, either from the bundled exercises.yaml or from a file with the same
// layout, and is read-only afterwards.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/myrjola/repcoach/internal/errors"
	"github.com/myrjola/repcoach/internal/recovery"
	"gopkg.in/yaml.v3"
)

//go:embed exercises.yaml
var bundled []byte

var ErrInvalidCatalog = errors.NewSentinel("invalid catalog")

// Level is the experience an exercise demands.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Category classifies how an exercise loads the body.
type Category string

const (
	CategoryCompound    Category = "compound"
	CategoryIsolation   Category = "isolation"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
)

// Equipment needed to perform an exercise.
type Equipment string

const (
	EquipmentBarbell        Equipment = "barbell"
	EquipmentDumbbell       Equipment = "dumbbell"
	EquipmentCable          Equipment = "cable"
	EquipmentMachine        Equipment = "machine"
	EquipmentBodyweight     Equipment = "bodyweight"
	EquipmentKettlebell     Equipment = "kettlebell"
	EquipmentResistanceBand Equipment = "resistance_band"
	EquipmentEZBar          Equipment = "ez_bar"
	EquipmentSmithMachine   Equipment = "smith_machine"
	EquipmentNone           Equipment = "none"
)

// Difficulty of a variation relative to the exercise it replaces.
type Difficulty string

const (
	DifficultyEasier Difficulty = "easier"
	DifficultySame   Difficulty = "same"
	DifficultyHarder Difficulty = "harder"
)

// Variation is an alternative movement that can substitute an exercise.
type Variation struct {
	Name       string     `yaml:"name"       json:"name"`
	Equipment  Equipment  `yaml:"equipment"  json:"equipment"`
	Difficulty Difficulty `yaml:"difficulty" json:"difficulty"`
	Why        string     `yaml:"why"        json:"why"`
}

// Exercise is one catalog entry. Slices inside an Exercise are shared with the catalog and must not be
// modified.
type Exercise struct {
	ID               string      `yaml:"id"                   json:"id"`
	Name             string      `yaml:"name"                 json:"name"`
	PrimaryMuscle    string      `yaml:"primary_muscle"       json:"primaryMuscle"`
	SecondaryMuscles []string    `yaml:"secondary_muscles"    json:"secondaryMuscles"`
	Equipment        Equipment   `yaml:"equipment"            json:"equipment"`
	Level            Level       `yaml:"level"                json:"level"`
	Category         Category    `yaml:"category"             json:"category"`
	DefaultSets      int         `yaml:"default_sets"         json:"defaultSets"`
	DefaultReps      string      `yaml:"default_reps"         json:"defaultReps"`
	Instructions     string      `yaml:"instructions"         json:"instructions"`
	Tips             string      `yaml:"tips"                 json:"tips"`
	Variations       []Variation `yaml:"variations,omitempty" json:"variations,omitempty"`
}

// IsCompound reports whether the exercise is a multi-joint movement.
func (e Exercise) IsCompound() bool {
	return e.Category == CategoryCompound
}

// Catalog is the immutable exercise library plus the muscle recovery table.
type Catalog struct {
	exercises []Exercise
	byID      map[string]int
	muscles   recovery.Table
}

type catalogFile struct {
	Muscles   []recovery.MuscleProfile `yaml:"muscles"`
	Exercises []Exercise               `yaml:"exercises"`
}

//nolint:gochecknoglobals // the bundled catalog is parsed once per process.
var bundledCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(bundled)
})

// Default returns the bundled catalog.
func Default() (*Catalog, error) {
	c, err := bundledCatalog()
	if err != nil {
		return nil, fmt.Errorf("parse bundled catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file from path. An empty path selects the bundled catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %w", ErrInvalidCatalog, err)
	}
	return New(f.Exercises, f.Muscles)
}

// New validates exercises and muscles and builds a Catalog from them.
func New(exercises []Exercise, muscles []recovery.MuscleProfile) (*Catalog, error) {
	var problems []error
	for i, m := range muscles {
		problems = append(problems, validateMuscle(i, m)...)
	}

	byID := make(map[string]int, len(exercises))
	owned := make([]Exercise, 0, len(exercises))
	for i, e := range exercises {
		problems = append(problems, validateExercise(i, e)...)
		if _, dup := byID[e.ID]; dup {
			problems = append(problems, fmt.Errorf("exercise %d: duplicate id %q", i, e.ID))
		}
		byID[e.ID] = len(owned)
		e.SecondaryMuscles = slices.Clone(e.SecondaryMuscles)
		e.Variations = slices.Clone(e.Variations)
		owned = append(owned, e)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(problems...))
	}

	return &Catalog{
		exercises: owned,
		byID:      byID,
		muscles:   recovery.NewTable(muscles),
	}, nil
}

func validateMuscle(i int, m recovery.MuscleProfile) []error {
	var problems []error
	if m.Muscle == "" {
		problems = append(problems, fmt.Errorf("muscle %d: missing name", i))
	}
	if m.RecoveryHours <= 0 {
		problems = append(problems, fmt.Errorf("muscle %s: recovery_hours must be positive", m.Muscle))
	}
	if m.VolumeWeekly.Max <= 0 || m.VolumeWeekly.Min > m.VolumeWeekly.Max {
		problems = append(problems, fmt.Errorf("muscle %s: invalid volume_weekly band", m.Muscle))
	}
	if m.FrequencyWeekly.Max <= 0 || m.FrequencyWeekly.Min > m.FrequencyWeekly.Max {
		problems = append(problems, fmt.Errorf("muscle %s: invalid frequency_weekly band", m.Muscle))
	}
	return problems
}

func validateExercise(i int, e Exercise) []error {
	var problems []error
	if e.ID == "" || e.Name == "" {
		problems = append(problems, fmt.Errorf("exercise %d: id and name are required", i))
	}
	if e.PrimaryMuscle == "" {
		problems = append(problems, fmt.Errorf("exercise %s: primary_muscle is required", e.ID))
	}
	if e.DefaultSets <= 0 {
		problems = append(problems, fmt.Errorf("exercise %s: default_sets must be positive", e.ID))
	}
	switch e.Level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		problems = append(problems, fmt.Errorf("exercise %s: unknown level %q", e.ID, e.Level))
	}
	switch e.Category {
	case CategoryCompound, CategoryIsolation, CategoryCardio, CategoryFlexibility:
	default:
		problems = append(problems, fmt.Errorf("exercise %s: unknown category %q", e.ID, e.Category))
	}
	if !knownEquipment(e.Equipment) {
		problems = append(problems, fmt.Errorf("exercise %s: unknown equipment %q", e.ID, e.Equipment))
	}
	for _, v := range e.Variations {
		if !knownEquipment(v.Equipment) {
			problems = append(problems, fmt.Errorf("exercise %s: variation %q has unknown equipment %q",
				e.ID, v.Name, v.Equipment))
		}
	}
	return problems
}

func knownEquipment(e Equipment) bool {
	switch e {
	case EquipmentBarbell, EquipmentDumbbell, EquipmentCable, EquipmentMachine, EquipmentBodyweight,
		EquipmentKettlebell, EquipmentResistanceBand, EquipmentEZBar, EquipmentSmithMachine, EquipmentNone:
		return true
	default:
		return false
	}
}

// Muscles returns the muscle recovery table.
func (c *Catalog) Muscles() recovery.Table {
	return c.muscles
}

// Exercises returns every exercise in catalog order.
func (c *Catalog) Exercises() []Exercise {
	return slices.Clone(c.exercises)
}

// ByID looks up an exercise by its identifier.
func (c *Catalog) ByID(id string) (Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Exercise{}, false
	}
	return c.exercises[i], true
}

// ByName looks up an exercise by name, ignoring case.
func (c *Catalog) ByName(name string) (Exercise, bool) {
	for _, e := range c.exercises {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Exercise{}, false
}

// ByPrimaryMuscle returns the exercises whose primary muscle is muscle, in catalog order. Secondary muscles are
// never matched.
func (c *Catalog) ByPrimaryMuscle(muscle string) []Exercise {
	var matches []Exercise
	for _, e := range c.exercises {
		if e.PrimaryMuscle == muscle {
			matches = append(matches, e)
		}
	}
	return matches
}
