// Package workout turns a user's profile, weekly schedule and workout history into concrete training
// prescriptions, and persists profiles and workout logs.
//
// The [Engine] and the free functions in this package are pure: they read their inputs, never mutate them,
// and can be called concurrently. [Service] wraps them with SQLite persistence.
package workout

import (
	"github.com/myrjola/repcoach/internal/catalog"
	"github.com/myrjola/repcoach/internal/recovery"
)

// Engine generates workouts from an immutable exercise catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an Engine backed by c.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the exercise catalog the engine selects from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

func (e *Engine) muscles() recovery.Table {
	return e.catalog.Muscles()
}
