package workout

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/myrjola/repcoach/internal/contexthelpers"
	"github.com/myrjola/repcoach/internal/errors"
	"github.com/myrjola/repcoach/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

var (
	ErrNotFound   = errors.NewSentinel("not found")
	ErrInvalidLog = errors.NewSentinel("invalid workout log")
	ErrNoUser     = errors.NewSentinel("no user in context")
)

// baseRepository contains common functionality for all repositories.
type baseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newBaseRepository(db *sqlite.Database, logger *slog.Logger) baseRepository {
	return baseRepository{
		db:     db,
		logger: logger,
	}
}

// userID returns the user the context acts on.
func (r baseRepository) userID(ctx context.Context) (string, error) {
	id := contexthelpers.UserID(ctx)
	if id == "" {
		return "", ErrNoUser
	}
	return id, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// repository aggregates the repositories the service works with.
type repository struct {
	db       *sqlite.Database
	profiles *sqliteProfileRepository
	logs     *sqliteLogRepository
}

// snapshot reads the profile and the complete history of the user in ctx in one read transaction, so both come
// from the same database state.
func (r *repository) snapshot(ctx context.Context) (_ Profile, _ []Log, err error) {
	tx, err := r.db.ReadOnly.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelDefault, ReadOnly: true})
	if err != nil {
		return Profile{}, nil, fmt.Errorf("begin read transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback read transaction: %w", rollbackErr))
		}
	}()

	p, err := r.profiles.get(ctx, tx)
	if err != nil {
		return Profile{}, nil, fmt.Errorf("get profile: %w", err)
	}
	logs, err := r.logs.list(ctx, tx, time.Time{})
	if err != nil {
		return Profile{}, nil, fmt.Errorf("list workout logs: %w", err)
	}
	return p, logs, nil
}

// repositoryFactory creates repositories sharing one database.
type repositoryFactory struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newRepositoryFactory(db *sqlite.Database, logger *slog.Logger) *repositoryFactory {
	return &repositoryFactory{
		db:     db,
		logger: logger,
	}
}

func (f *repositoryFactory) newRepository() *repository {
	return &repository{
		db:       f.db,
		profiles: newSQLiteProfileRepository(f.db, f.logger),
		logs:     newSQLiteLogRepository(f.db, f.logger),
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
