// Command smoketest checks a deployed server: it creates a throwaway user, logs a workout and reads it back.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/myrjola/repcoach/internal/e2etest"
	"github.com/myrjola/repcoach/internal/logging"
	"github.com/myrjola/repcoach/internal/testhelpers"
	"github.com/myrjola/repcoach/internal/workout"
)

func smokeTest(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	var p workout.Profile
	if err := client.JSON(ctx, http.MethodPost, "/api/v1/users", map[string]any{
		"name":         "Smoke Test",
		"weightKg":     75,
		"fitnessLevel": workout.LevelBeginner,
		"goal":         workout.GoalMaintenance,
		"splitId":      "fullbody_3",
	}, http.StatusCreated, &p); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	userPath := "/api/v1/users/" + p.ID

	var sessions []workout.GeneratedWorkout
	if err := client.JSON(ctx, http.MethodGet, userPath+"/today", nil, http.StatusOK, &sessions); err != nil {
		return fmt.Errorf("generate today: %w", err)
	}
	if len(sessions) == 0 {
		return errors.New("no sessions generated for today")
	}

	log := workout.Log{ //nolint:exhaustruct // the server assigns the rest.
		SplitDay:    sessions[0].SplitDay,
		Exercises:   []workout.LoggedExercise{},
		MoodBefore:  3,
		MoodAfter:   4,
		EnergyLevel: 3,
		Completed:   true,
	}
	if err := client.JSON(ctx, http.MethodPost, userPath+"/workouts", log, http.StatusCreated, nil); err != nil {
		return fmt.Errorf("complete workout: %w", err)
	}

	var history []workout.Log
	if err := client.JSON(ctx, http.MethodGet, userPath+"/workouts?days=1", nil, http.StatusOK, &history); err != nil {
		return fmt.Errorf("list workouts: %w", err)
	}
	if len(history) != 1 {
		return fmt.Errorf("got %d workouts back, want 1", len(history))
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	client := e2etest.NewClient(url)
	if err := client.WaitForReady(ctx, "/api/v1/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err := smokeTest(ctx, client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoke test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
}
