package sqlite

import (
	"testing"

	"github.com/myrjola/repcoach/internal/testhelpers"
)

func TestDatabase_migrate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		runs        [][]string
		testQueries []string
		wantVersion int
		wantErr     bool
	}{
		{
			name:        "no migrations",
			runs:        [][]string{{}},
			testQueries: []string{"SELECT * FROM sqlite_schema"},
			wantVersion: 0,
		},
		{
			name:        "create table",
			runs:        [][]string{{"CREATE TABLE test (id INTEGER PRIMARY KEY, name TEXT)"}},
			testQueries: []string{"INSERT INTO test (name) VALUES ('test')"},
			wantVersion: 1,
		},
		{
			name: "rerun is a no-op",
			runs: [][]string{
				{"CREATE TABLE test (id INTEGER PRIMARY KEY, name TEXT)"},
				{"CREATE TABLE test (id INTEGER PRIMARY KEY, name TEXT)"},
			},
			testQueries: []string{"INSERT INTO test (name) VALUES ('test')"},
			wantVersion: 1,
		},
		{
			name: "applies only new migrations",
			runs: [][]string{
				{"CREATE TABLE test (id INTEGER PRIMARY KEY)"},
				{
					"CREATE TABLE test (id INTEGER PRIMARY KEY)",
					"ALTER TABLE test ADD COLUMN name TEXT",
				},
			},
			testQueries: []string{"INSERT INTO test (name) VALUES ('test')"},
			wantVersion: 2,
		},
		{
			name: "failed migration rolls back",
			runs: [][]string{
				{"CREATE TABLE test (id INTEGER PRIMARY KEY); CREATE TABLE test (id INTEGER PRIMARY KEY)"},
			},
			testQueries: []string{"SELECT * FROM test"},
			wantVersion: 0,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := t.Context()
			db, err := connect(":memory:", testhelpers.NewTestLogger(t))
			if err != nil {
				t.Fatalf("Failed to connect to database: %v", err)
			}
			t.Cleanup(func() {
				if err = db.Close(); err != nil {
					t.Errorf("Failed to close database: %v", err)
				}
			})

			var migrateErr error
			for _, run := range tt.runs {
				if migrateErr = db.migrate(ctx, run); migrateErr != nil {
					break
				}
			}
			if (migrateErr != nil) != tt.wantErr {
				t.Fatalf("migrate() error = %v, wantErr %v", migrateErr, tt.wantErr)
			}

			var version int
			if err = db.ReadOnly.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
				t.Fatalf("Failed to read user_version: %v", err)
			}
			if version != tt.wantVersion {
				t.Errorf("user_version = %d, want %d", version, tt.wantVersion)
			}

			for _, query := range tt.testQueries {
				_, err = db.ReadWrite.ExecContext(ctx, query)
				if tt.wantErr && err == nil {
					t.Errorf("expected query %q to fail after rolled back migration", query)
				}
				if !tt.wantErr && err != nil {
					t.Errorf("query %q failed: %v", query, err)
				}
			}
		})
	}
}

func TestNewDatabase_appliesSchema(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	db, err := NewDatabase(ctx, ":memory:", testhelpers.NewTestLogger(t))
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"users", "schedule_sessions", "workout_logs", "logged_exercises", "logged_sets"} {
		var name string
		err = db.ReadOnly.QueryRowContext(ctx,
			"SELECT name FROM sqlite_schema WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	if _, err = db.ReadOnly.ExecContext(ctx, "INSERT INTO users (id, name, weight_kg, fitness_level, goal, "+
		"days_per_week) VALUES ('u', 'U', 80, 'beginner', 'strength', 3)"); err == nil {
		t.Error("expected the read-only pool to reject writes")
	}
}
