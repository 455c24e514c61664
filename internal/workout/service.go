package workout

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/repcoach/internal/coaching"
	"github.com/myrjola/repcoach/internal/contexthelpers"
	"github.com/myrjola/repcoach/internal/errors"
	"github.com/myrjola/repcoach/internal/sqlite"
)

var ErrInvalidProfile = errors.NewSentinel("invalid profile")

// Service persists profiles and workout history and runs the engine over a consistent snapshot of them. The
// user is taken from the context, see [contexthelpers.WithUserID].
type Service struct {
	repo   *repository
	engine *Engine
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now. Useful in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new workout service.
func NewService(db *sqlite.Database, logger *slog.Logger, engine *Engine, opts ...Option) *Service {
	factory := newRepositoryFactory(db, logger)
	s := &Service{
		repo:   factory.newRepository(),
		engine: engine,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the engine the service generates workouts with.
func (s *Service) Engine() *Engine {
	return s.engine
}

// Now returns the service's current time.
func (s *Service) Now() time.Time {
	return s.now()
}

func validateProfile(p Profile) error {
	var problems []error
	switch p.FitnessLevel {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		problems = append(problems, fmt.Errorf("unknown fitness level %q", p.FitnessLevel))
	}
	switch p.Goal {
	case GoalMuscleGain, GoalFatLoss, GoalStrength, GoalMaintenance, GoalEndurance:
	default:
		problems = append(problems, fmt.Errorf("unknown goal %q", p.Goal))
	}
	if p.DaysPerWeek < 0 || p.DaysPerWeek > 7 {
		problems = append(problems, fmt.Errorf("days per week %d outside 0-7", p.DaysPerWeek))
	}
	if p.WeightKg < 0 || math.IsNaN(p.WeightKg) || math.IsInf(p.WeightKg, 0) {
		problems = append(problems, fmt.Errorf("weight %v is not a valid weight", p.WeightKg))
	}
	for d, ds := range p.Schedule {
		if _, ok := ParseDay(string(d)); !ok {
			problems = append(problems, fmt.Errorf("unknown day %q", d))
		}
		if len(ds.Sessions) > maxSessionsPerDay {
			problems = append(problems, fmt.Errorf("%s has %d sessions, at most %d allowed",
				d, len(ds.Sessions), maxSessionsPerDay))
		}
		for _, session := range ds.Sessions {
			switch session.TimeSlot {
			case SlotMorning, SlotAfternoon, SlotEvening:
			default:
				problems = append(problems, fmt.Errorf("%s has unknown time slot %q", d, session.TimeSlot))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, errors.Join(problems...))
	}
	return nil
}

// CreateProfile stores a new user. The ID and creation time are assigned here. Without a schedule the user
// starts with a week of rest days.
func (s *Service) CreateProfile(ctx context.Context, p Profile) (Profile, error) {
	if err := validateProfile(p); err != nil {
		return Profile{}, err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return Profile{}, fmt.Errorf("generate user id: %w", err)
	}
	p.ID = id.String()
	p.CreatedAt = s.now().UTC().Truncate(time.Millisecond)
	p.Schedule = p.Schedule.Normalize()
	p.Identity = p.Identity.Normalize()

	if err = s.repo.profiles.Create(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("create profile: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "created profile", slog.String("user_id", p.ID))
	return p, nil
}

// GetProfile loads the profile of the user in ctx.
func (s *Service) GetProfile(ctx context.Context) (Profile, error) {
	p, err := s.repo.profiles.Get(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// SaveProfile replaces the editable fields of the user in ctx. ID and creation time are kept.
func (s *Service) SaveProfile(ctx context.Context, p Profile) (Profile, error) {
	if err := validateProfile(p); err != nil {
		return Profile{}, err
	}
	var saved Profile
	err := s.repo.profiles.Update(ctx, func(current *Profile) (bool, error) {
		p.ID = current.ID
		p.CreatedAt = current.CreatedAt
		p.Schedule = p.Schedule.Normalize()
		p.Identity = p.Identity.Normalize()
		*current = p
		saved = p
		return true, nil
	})
	if err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return saved, nil
}

// UpdateSchedule applies edit to one day of the schedule of the user in ctx and returns the new day.
func (s *Service) UpdateSchedule(
	ctx context.Context,
	d Day,
	edit func(DaySchedule) DaySchedule,
) (DaySchedule, error) {
	if _, ok := ParseDay(string(d)); !ok {
		return DaySchedule{}, fmt.Errorf("%w: unknown day %q", ErrInvalidProfile, d)
	}
	var updated DaySchedule
	err := s.repo.profiles.Update(ctx, func(p *Profile) (bool, error) {
		schedule := p.Schedule.Normalize()
		updated = edit(schedule[d]).Normalize()
		if len(updated.Sessions) > maxSessionsPerDay {
			return false, fmt.Errorf("%w: %s has more than %d sessions", ErrInvalidProfile, d, maxSessionsPerDay)
		}
		schedule[d] = updated
		p.Schedule = schedule
		return true, nil
	})
	if err != nil {
		return DaySchedule{}, fmt.Errorf("update schedule: %w", err)
	}
	return updated, nil
}

// SetIdentity stores the coaching identity of the user in ctx.
func (s *Service) SetIdentity(ctx context.Context, identity coaching.Identity) (Profile, error) {
	var saved Profile
	err := s.repo.profiles.Update(ctx, func(p *Profile) (bool, error) {
		identity = identity.Normalize()
		if p.Identity == identity {
			saved = *p
			return false, nil
		}
		p.Identity = identity
		saved = *p
		return true, nil
	})
	if err != nil {
		return Profile{}, fmt.Errorf("set identity: %w", err)
	}
	return saved, nil
}

func validateLog(l Log) error {
	var problems []error
	inScale := func(name string, v int) {
		if v < 1 || v > 5 {
			problems = append(problems, fmt.Errorf("%s %d outside 1-5", name, v))
		}
	}
	inScale("mood before", l.MoodBefore)
	inScale("mood after", l.MoodAfter)
	inScale("energy level", l.EnergyLevel)
	if l.DurationMinutes < 0 {
		problems = append(problems, fmt.Errorf("negative duration %d", l.DurationMinutes))
	}
	if l.SessionIndex < 0 {
		problems = append(problems, fmt.Errorf("negative session index %d", l.SessionIndex))
	}
	for _, le := range l.Exercises {
		for i, set := range le.Sets {
			if set.WeightKg < 0 || math.IsNaN(set.WeightKg) || math.IsInf(set.WeightKg, 0) {
				problems = append(problems, fmt.Errorf("%s set %d: invalid weight %v", le.ExerciseName, i+1,
					set.WeightKg))
			}
			if set.Reps < 0 {
				problems = append(problems, fmt.Errorf("%s set %d: negative reps", le.ExerciseName, i+1))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidLog, errors.Join(problems...))
	}
	return nil
}

// CompleteWorkout appends l to the history of the user in ctx. The ID and date are assigned here. A missing
// mood before the workout defaults to neutral.
func (s *Service) CompleteWorkout(ctx context.Context, l Log) (Log, error) {
	if l.MoodBefore == 0 {
		l.MoodBefore = int(neutralMood)
	}
	if err := validateLog(l); err != nil {
		return Log{}, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Log{}, fmt.Errorf("generate log id: %w", err)
	}
	l.ID = id.String()
	l.Date = s.now().UTC().Truncate(time.Millisecond)
	if l.Exercises == nil {
		l.Exercises = []LoggedExercise{}
	}

	if err = s.repo.logs.Append(ctx, l); err != nil {
		return Log{}, fmt.Errorf("append workout log: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "completed workout",
		slog.String("user_id", contexthelpers.UserID(ctx)),
		slog.String("split_day", l.SplitDay),
		slog.Int("mood_after", l.MoodAfter))
	return l, nil
}

// History returns the workouts of the user in ctx since the given time, newest first.
func (s *Service) History(ctx context.Context, since time.Time) ([]Log, error) {
	logs, err := s.repo.logs.List(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	return logs, nil
}

// Snapshot is a consistent view of one user taken at Now.
type Snapshot struct {
	Profile Profile
	History []Log
	Now     time.Time
}

// Snapshot loads the profile and the complete history of the user in ctx as of a single point in time.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	now := s.now()
	p, logs, err := s.repo.snapshot(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return Snapshot{Profile: p, History: logs, Now: now}, nil
}

// GenerateWorkout generates today's session at sessionIndex.
func (s *Service) GenerateWorkout(ctx context.Context, sessionIndex int) (GeneratedWorkout, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return GeneratedWorkout{}, err
	}
	return s.engine.Generate(snap.Profile, snap.History, snap.Now, sessionIndex), nil
}

// TodaySessions generates every session of today.
func (s *Service) TodaySessions(ctx context.Context) ([]GeneratedWorkout, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.TodaySessions(snap.Profile, snap.History, snap.Now), nil
}

// RecoveryScores scores every muscle of the user in ctx.
func (s *Service) RecoveryScores(ctx context.Context) (map[string]int, error) {
	now := s.now()
	logs, err := s.History(ctx, now.Add(-oneWeek))
	if err != nil {
		return nil, err
	}
	return s.engine.MuscleRecoveryScores(logs, now), nil
}

// OvertrainingWarnings lists the muscles trained beyond their weekly limits.
func (s *Service) OvertrainingWarnings(ctx context.Context) ([]string, error) {
	now := s.now()
	logs, err := s.History(ctx, now.Add(-oneWeek))
	if err != nil {
		return nil, err
	}
	return s.engine.OvertrainingWarnings(logs, now), nil
}

// RecoveryStatus grades the whole-body recovery of the user in ctx.
func (s *Service) RecoveryStatus(ctx context.Context) (Status, error) {
	now := s.now()
	logs, err := s.History(ctx, now.Add(-statusLookback))
	if err != nil {
		return Status{}, err
	}
	return s.engine.RecoveryStatus(logs, now), nil
}

// ConsistencyReport combines the consistency score with its inputs.
type ConsistencyReport struct {
	Score       int             `json:"score"`
	AverageMood float64         `json:"averageMood"`
	Weeks       []WeekAdherence `json:"weeks"`
}

// Consistency scores the last 30 days of the user in ctx and reports attendance for the last weeks weeks.
func (s *Service) Consistency(ctx context.Context, weeks int) (ConsistencyReport, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return ConsistencyReport{}, err
	}
	return ConsistencyReport{
		Score:       ConsistencyScore(snap.History, snap.Profile.DaysPerWeek, snap.Now),
		AverageMood: AverageMood(snap.History, snap.Now),
		Weeks:       WeeklyAdherence(snap.History, snap.Profile.DaysPerWeek, weeks, snap.Now),
	}, nil
}
