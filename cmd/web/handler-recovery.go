package main

import (
	"net/http"

	"github.com/myrjola/repcoach/internal/workout"
)

const (
	defaultAdherenceWeeks = 4
	maxAdherenceWeeks     = 52
)

type recoveryResponse struct {
	Status  workout.Status `json:"status"`
	Muscles map[string]int `json:"muscles"`
}

func (app *application) recoveryGET(w http.ResponseWriter, r *http.Request) {
	snap, err := app.workoutService.Snapshot(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	engine := app.workoutService.Engine()
	writeJSON(w, http.StatusOK, recoveryResponse{
		Status:  engine.RecoveryStatus(snap.History, snap.Now),
		Muscles: engine.MuscleRecoveryScores(snap.History, snap.Now),
	})
}

func (app *application) overtrainingGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, err := app.workoutService.GetProfile(ctx); err != nil {
		app.handleError(w, r, err)
		return
	}
	warnings, err := app.workoutService.OvertrainingWarnings(ctx)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"warnings": warnings})
}

func (app *application) consistencyGET(w http.ResponseWriter, r *http.Request) {
	weeks, err := queryInt(r, "weeks", defaultAdherenceWeeks)
	if err != nil || weeks < 1 || weeks > maxAdherenceWeeks {
		clientError(w, http.StatusBadRequest, errInvalidQuery("weeks"))
		return
	}
	report, err := app.workoutService.Consistency(r.Context(), weeks)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
