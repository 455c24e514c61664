package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/repcoach/internal/catalog"
)

func mustDefault(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	return c
}

func TestDefault(t *testing.T) {
	c := mustDefault(t)

	if got := len(c.Exercises()); got != 56 {
		t.Errorf("bundled catalog has %d exercises, want 56", got)
	}
	wantMuscles := []string{
		"chest", "back", "shoulders", "biceps", "triceps", "quadriceps", "hamstrings", "glutes", "calves",
		"core", "traps", "forearms", "lats",
	}
	if diff := cmp.Diff(wantMuscles, c.Muscles().Muscles()); diff != "" {
		t.Errorf("muscle table mismatch (-want +got):\n%s", diff)
	}

	shoulders, ok := c.Muscles().Lookup("shoulders")
	if !ok || shoulders.RecoveryHours != 36 || shoulders.VolumeWeekly.Max != 18 {
		t.Errorf("shoulders profile = %+v", shoulders)
	}

	bench, ok := c.ByID("ex001")
	if !ok {
		t.Fatal("ex001 missing")
	}
	want := catalog.Exercise{
		ID:               "ex001",
		Name:             "Barbell Bench Press",
		PrimaryMuscle:    "chest",
		SecondaryMuscles: []string{"triceps", "shoulders"},
		Equipment:        catalog.EquipmentBarbell,
		Level:            catalog.LevelIntermediate,
		Category:         catalog.CategoryCompound,
		DefaultSets:      4,
		DefaultReps:      "6-10",
	}
	opts := cmp.FilterPath(func(p cmp.Path) bool {
		switch p.Last().String() {
		case ".Instructions", ".Tips", ".Variations":
			return true
		}
		return false
	}, cmp.Ignore())
	if diff := cmp.Diff(want, bench, opts); diff != "" {
		t.Errorf("ex001 mismatch (-want +got):\n%s", diff)
	}

	again := mustDefault(t)
	if again != c {
		t.Error("Default() parsed the bundled catalog twice")
	}
}

func TestCatalog_ByPrimaryMuscle(t *testing.T) {
	c := mustDefault(t)

	biceps := c.ByPrimaryMuscle("biceps")
	if len(biceps) == 0 {
		t.Fatal("no biceps exercises")
	}
	for _, e := range biceps {
		if e.PrimaryMuscle != "biceps" {
			t.Errorf("%s has primary muscle %s", e.Name, e.PrimaryMuscle)
		}
	}
	pullUps, _ := c.ByID("ex011")
	if slices.ContainsFunc(biceps, func(e catalog.Exercise) bool { return e.ID == pullUps.ID }) {
		t.Error("Pull-Ups trains biceps only secondarily and must not be listed")
	}
	if got := c.ByPrimaryMuscle("neck"); len(got) != 0 {
		t.Errorf("unknown muscle returned %d exercises", len(got))
	}
}

func TestCatalog_ByName(t *testing.T) {
	c := mustDefault(t)
	e, ok := c.ByName("barbell BENCH press")
	if !ok || e.ID != "ex001" {
		t.Errorf("ByName() = %v, %v", e.ID, ok)
	}
	if _, ok = c.ByName("Bench"); ok {
		t.Error("ByName() matched a partial name")
	}
}

func TestCatalog_Filter(t *testing.T) {
	c := mustDefault(t)

	ids := func(es []catalog.Exercise) []string {
		out := make([]string, 0, len(es))
		for _, e := range es {
			out = append(out, e.ID)
		}
		return out
	}

	tests := []struct {
		name     string
		criteria catalog.Criteria
		want     []string
	}{
		{
			name:     "forearms primary only",
			criteria: catalog.Criteria{Muscle: "forearms"},
			want:     []string{"ex110", "ex111"},
		},
		{
			name: "chest with dumbbells for beginners",
			criteria: catalog.Criteria{
				Muscle:    "chest",
				Equipment: []catalog.Equipment{catalog.EquipmentDumbbell},
				MaxLevel:  catalog.LevelBeginner,
			},
			want: []string{"ex003", "ex005"},
		},
		{
			name: "triceps including secondary compounds",
			criteria: catalog.Criteria{
				Muscle:           "triceps",
				IncludeSecondary: true,
				Category:         catalog.CategoryCompound,
				MaxLevel:         catalog.LevelIntermediate,
			},
			want: []string{
				"ex001", "ex002", "ex005", "ex006", "ex007", "ex020", "ex022", "ex024", "ex040", "ex044", "ex045",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ids(c.Filter(tt.criteria))); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalog_Substitutes(t *testing.T) {
	c := mustDefault(t)

	names := func(vs []catalog.Variation) []string {
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			out = append(out, v.Name)
		}
		return out
	}

	all, ok := c.Substitutes("ex001", nil)
	if !ok {
		t.Fatal("ex001 not found")
	}
	if diff := cmp.Diff(
		[]string{"Machine Chest Press", "Smith Machine Bench Press", "Dumbbell Bench Press"}, names(all),
	); diff != "" {
		t.Errorf("Substitutes() mismatch (-want +got):\n%s", diff)
	}

	dumbbellsOnly, _ := c.Substitutes("ex001", []catalog.Equipment{catalog.EquipmentDumbbell})
	if diff := cmp.Diff([]string{"Dumbbell Bench Press"}, names(dumbbellsOnly)); diff != "" {
		t.Errorf("Substitutes(dumbbell) mismatch (-want +got):\n%s", diff)
	}

	if _, ok = c.Substitutes("ex999", nil); ok {
		t.Error("Substitutes() found an unknown exercise")
	}
}

func TestParse_invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown field", yaml: "exercises:\n  - id: x\n    colour: red\n"},
		{name: "not yaml", yaml: "exercises: [\n"},
		{
			name: "unknown level",
			yaml: "exercises:\n  - {id: x, name: X, primary_muscle: chest, equipment: none, level: elite, " +
				"category: compound, default_sets: 3, default_reps: \"8\"}\n",
		},
		{
			name: "duplicate id",
			yaml: "exercises:\n" +
				"  - {id: x, name: X, primary_muscle: chest, equipment: none, level: beginner, category: compound, " +
				"default_sets: 3, default_reps: \"8\"}\n" +
				"  - {id: x, name: Y, primary_muscle: chest, equipment: none, level: beginner, category: compound, " +
				"default_sets: 3, default_reps: \"8\"}\n",
		},
		{
			name: "muscle without recovery window",
			yaml: "muscles:\n  - {muscle: chest, recovery_hours: 0, volume_weekly: {min: 1, max: 2, optimal: 1}, " +
				"frequency_weekly: {min: 1, max: 2}, fatigue_multiplier: 1}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.yaml))
			if !errors.Is(err, catalog.ErrInvalidCatalog) {
				t.Errorf("Parse() error = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := "muscles:\n" +
		"  - {muscle: calves, recovery_hours: 24, volume_weekly: {min: 8, max: 16, optimal: 12}, " +
		"frequency_weekly: {min: 2, max: 4}, fatigue_multiplier: 0.3}\n" +
		"exercises:\n" +
		"  - {id: c1, name: Calf Raise, primary_muscle: calves, secondary_muscles: [], equipment: machine, " +
		"level: beginner, category: isolation, default_sets: 4, default_reps: \"12-15\"}\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := c.ByPrimaryMuscle("calves"); len(got) != 1 || got[0].Name != "Calf Raise" {
		t.Errorf("ByPrimaryMuscle(calves) = %+v", got)
	}

	if _, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
	bundled, err := catalog.Load("")
	if err != nil || len(bundled.Exercises()) != 56 {
		t.Errorf("Load(\"\") = %d exercises, %v", len(bundled.Exercises()), err)
	}
}
