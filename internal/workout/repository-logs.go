package workout

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/myrjola/repcoach/internal/errors"
	"github.com/myrjola/repcoach/internal/sqlite"
)

// sqliteLogRepository stores the append-only workout history.
type sqliteLogRepository struct {
	baseRepository
}

func newSQLiteLogRepository(db *sqlite.Database, logger *slog.Logger) *sqliteLogRepository {
	return &sqliteLogRepository{
		baseRepository: newBaseRepository(db, logger),
	}
}

// Append stores l for the user in ctx.
func (r *sqliteLogRepository) Append(ctx context.Context, l Log) (err error) {
	userID, err := r.userID(ctx)
	if err != nil {
		return err
	}

	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rollbackErr))
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO workout_logs (
			id, user_id, performed_at, split_day, session_index, mood_before, mood_after, energy_level,
			duration_minutes, notes, completed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, userID, formatTimestamp(l.Date), l.SplitDay, l.SessionIndex, l.MoodBefore, l.MoodAfter,
		l.EnergyLevel, l.DurationMinutes, l.Notes, l.Completed)
	if err != nil {
		return fmt.Errorf("insert workout log: %w", err)
	}

	for position, le := range l.Exercises {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO logged_exercises (workout_log_id, position, exercise_id, exercise_name, muscle_group)
			VALUES (?, ?, ?, ?, ?)`,
			l.ID, position, le.ExerciseID, le.ExerciseName, le.MuscleGroup)
		if err != nil {
			return fmt.Errorf("insert logged exercise %d: %w", position, err)
		}
		for i, set := range le.Sets {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO logged_sets (workout_log_id, exercise_position, set_number, weight_kg, reps, completed)
				VALUES (?, ?, ?, ?, ?, ?)`,
				l.ID, position, i+1, set.WeightKg, set.Reps, set.Completed)
			if err != nil {
				return fmt.Errorf("insert logged set: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	r.logger.LogAttrs(ctx, slog.LevelDebug, "appended workout log",
		slog.String("log_id", l.ID), slog.Int("exercises", len(l.Exercises)))
	return nil
}

// List returns the workouts of the user in ctx performed at or after since, newest first.
func (r *sqliteLogRepository) List(ctx context.Context, since time.Time) ([]Log, error) {
	return r.list(ctx, r.db.ReadOnly, since)
}

func (r *sqliteLogRepository) list(ctx context.Context, q querier, since time.Time) (_ []Log, err error) {
	userID, err := r.userID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, `
		SELECT id, performed_at, split_day, session_index, mood_before, mood_after, energy_level,
		       duration_minutes, notes, completed
		FROM workout_logs
		WHERE user_id = ? AND performed_at >= ?
		ORDER BY performed_at DESC, id`, userID, formatTimestamp(since))
	if err != nil {
		return nil, fmt.Errorf("query workout logs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	logs := []Log{}
	index := make(map[string]int)
	for rows.Next() {
		var (
			l           Log
			performedAt string
		)
		if err = rows.Scan(&l.ID, &performedAt, &l.SplitDay, &l.SessionIndex, &l.MoodBefore, &l.MoodAfter,
			&l.EnergyLevel, &l.DurationMinutes, &l.Notes, &l.Completed); err != nil {
			return nil, fmt.Errorf("scan workout log: %w", err)
		}
		if l.Date, err = parseTimestamp(performedAt); err != nil {
			return nil, err
		}
		l.Exercises = []LoggedExercise{}
		index[l.ID] = len(logs)
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if len(logs) == 0 {
		return logs, nil
	}
	if err = r.loadExercises(ctx, q, userID, since, logs, index); err != nil {
		return nil, err
	}
	return logs, nil
}

// loadExercises fills in the exercises and sets of logs with a single query.
func (r *sqliteLogRepository) loadExercises(
	ctx context.Context,
	q querier,
	userID string,
	since time.Time,
	logs []Log,
	index map[string]int,
) (err error) {
	rows, err := q.QueryContext(ctx, `
		SELECT le.workout_log_id, le.position, le.exercise_id, le.exercise_name, le.muscle_group,
		       ls.set_number, ls.weight_kg, ls.reps, ls.completed
		FROM logged_exercises le
		JOIN workout_logs wl ON wl.id = le.workout_log_id
		LEFT JOIN logged_sets ls ON ls.workout_log_id = le.workout_log_id AND ls.exercise_position = le.position
		WHERE wl.user_id = ? AND wl.performed_at >= ?
		ORDER BY le.workout_log_id, le.position, ls.set_number`, userID, formatTimestamp(since))
	if err != nil {
		return fmt.Errorf("query logged exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	lastLogID, lastPosition := "", -1
	for rows.Next() {
		var (
			logID     string
			position  int
			le        LoggedExercise
			setNumber sql.NullInt64
			weightKg  sql.NullFloat64
			reps      sql.NullInt64
			completed sql.NullBool
		)
		if err = rows.Scan(&logID, &position, &le.ExerciseID, &le.ExerciseName, &le.MuscleGroup,
			&setNumber, &weightKg, &reps, &completed); err != nil {
			return fmt.Errorf("scan logged exercise: %w", err)
		}
		i, ok := index[logID]
		if !ok {
			continue
		}
		l := &logs[i]
		if logID != lastLogID || position != lastPosition {
			le.Sets = []LoggedSet{}
			l.Exercises = append(l.Exercises, le)
			lastLogID, lastPosition = logID, position
		}
		if setNumber.Valid {
			current := &l.Exercises[len(l.Exercises)-1]
			current.Sets = append(current.Sets, LoggedSet{
				WeightKg:  weightKg.Float64,
				Reps:      int(reps.Int64),
				Completed: completed.Bool,
			})
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("rows error: %w", err)
	}
	return nil
}
