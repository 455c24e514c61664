package workout

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/myrjola/repcoach/internal/errors"
	"github.com/myrjola/repcoach/internal/sqlite"
)

// sqliteProfileRepository stores profiles and their weekly schedules.
type sqliteProfileRepository struct {
	baseRepository
}

func newSQLiteProfileRepository(db *sqlite.Database, logger *slog.Logger) *sqliteProfileRepository {
	return &sqliteProfileRepository{
		baseRepository: newBaseRepository(db, logger),
	}
}

// Create inserts a new profile with its schedule.
func (r *sqliteProfileRepository) Create(ctx context.Context, p Profile) error {
	if err := r.save(ctx, p, false); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// Get loads the profile of the user in ctx.
func (r *sqliteProfileRepository) Get(ctx context.Context) (Profile, error) {
	return r.get(ctx, r.db.ReadOnly)
}

func (r *sqliteProfileRepository) get(ctx context.Context, q querier) (Profile, error) {
	userID, err := r.userID(ctx)
	if err != nil {
		return Profile{}, err
	}

	var (
		p         Profile
		createdAt string
	)
	err = q.QueryRowContext(ctx, `
		SELECT id, name, weight_kg, fitness_level, goal, days_per_week,
		       archetype, coach_style, motivation_trigger, response_preference, created_at
		FROM users
		WHERE id = ?`, userID).Scan(
		&p.ID, &p.Name, &p.WeightKg, &p.FitnessLevel, &p.Goal, &p.DaysPerWeek,
		&p.Identity.Archetype, &p.Identity.CoachStyle, &p.Identity.MotivationTrigger,
		&p.Identity.ResponsePreference, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}
	if p.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return Profile{}, fmt.Errorf("parse created_at: %w", err)
	}
	p.Identity = p.Identity.Normalize()

	if p.Schedule, err = r.loadSchedule(ctx, q, userID); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Update loads the profile in ctx, applies updateFn and stores the result when updateFn reports a change.
func (r *sqliteProfileRepository) Update(ctx context.Context, updateFn func(p *Profile) (bool, error)) error {
	p, err := r.Get(ctx)
	if err != nil {
		return fmt.Errorf("get profile for update: %w", err)
	}
	updated, err := updateFn(&p)
	if err != nil {
		return fmt.Errorf("update function: %w", err)
	}
	if !updated {
		return nil
	}
	if err = r.save(ctx, p, true); err != nil {
		return fmt.Errorf("save updated profile: %w", err)
	}
	return nil
}

func (r *sqliteProfileRepository) save(ctx context.Context, p Profile, upsert bool) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	query := `
		INSERT INTO users (
			id, name, weight_kg, fitness_level, goal, days_per_week,
			archetype, coach_style, motivation_trigger, response_preference, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if upsert {
		query += `
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			weight_kg = excluded.weight_kg,
			fitness_level = excluded.fitness_level,
			goal = excluded.goal,
			days_per_week = excluded.days_per_week,
			archetype = excluded.archetype,
			coach_style = excluded.coach_style,
			motivation_trigger = excluded.motivation_trigger,
			response_preference = excluded.response_preference,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ')`
	}
	_, err = tx.ExecContext(ctx, query,
		p.ID, p.Name, p.WeightKg, p.FitnessLevel, p.Goal, p.DaysPerWeek,
		p.Identity.Archetype, p.Identity.CoachStyle, p.Identity.MotivationTrigger, p.Identity.ResponsePreference,
		formatTimestamp(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	if err = saveSchedule(ctx, tx, p.ID, p.Schedule); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// saveSchedule replaces every stored session of userID. Rest days have no rows.
func saveSchedule(ctx context.Context, tx *sql.Tx, userID string, s WeeklySchedule) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	for _, d := range Week() {
		ds := s[d]
		if ds.IsRestDay {
			continue
		}
		for position, session := range ds.Sessions {
			muscles := session.MuscleGroups
			if muscles == nil {
				muscles = []string{}
			}
			musclesJSON, err := json.Marshal(muscles)
			if err != nil {
				return fmt.Errorf("marshal muscle groups: %w", err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO schedule_sessions (user_id, day, position, time_slot, label, muscle_groups)
				VALUES (?, ?, ?, ?, ?, ?)`,
				userID, d, position, session.TimeSlot, session.Label, string(musclesJSON))
			if err != nil {
				return fmt.Errorf("insert %s session %d: %w", d, position, err)
			}
		}
	}
	return nil
}

func (r *sqliteProfileRepository) loadSchedule(
	ctx context.Context,
	q querier,
	userID string,
) (_ WeeklySchedule, err error) {
	rows, err := q.QueryContext(ctx, `
		SELECT day, time_slot, label, muscle_groups
		FROM schedule_sessions
		WHERE user_id = ?
		ORDER BY day, position`, userID)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	s := EmptySchedule()
	for rows.Next() {
		var (
			d           Day
			session     Session
			musclesJSON string
		)
		if err = rows.Scan(&d, &session.TimeSlot, &session.Label, &musclesJSON); err != nil {
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		if err = json.Unmarshal([]byte(musclesJSON), &session.MuscleGroups); err != nil {
			return nil, fmt.Errorf("unmarshal muscle groups: %w", err)
		}
		ds := s[d]
		s[d] = withSessions(append(ds.Sessions, session))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return s, nil
}
