package main

import (
	"net/http"
	"time"

	"github.com/myrjola/repcoach/internal/workout"
)

const defaultHistoryDays = 30

func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	session, err := queryInt(r, "session", 0)
	if err != nil {
		clientError(w, http.StatusBadRequest, err)
		return
	}
	generated, err := app.workoutService.GenerateWorkout(r.Context(), session)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, generated)
}

func (app *application) todayGET(w http.ResponseWriter, r *http.Request) {
	sessions, err := app.workoutService.TodaySessions(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (app *application) workoutsGET(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", defaultHistoryDays)
	if err != nil || days < 0 {
		clientError(w, http.StatusBadRequest, errInvalidQuery("days"))
		return
	}
	ctx := r.Context()
	// Unknown users get 404 rather than an empty history.
	if _, err = app.workoutService.GetProfile(ctx); err != nil {
		app.handleError(w, r, err)
		return
	}
	since := app.workoutService.Now().Add(-time.Duration(days) * 24 * time.Hour) //nolint:mnd // hours per day
	logs, err := app.workoutService.History(ctx, since)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (app *application) workoutsPOST(w http.ResponseWriter, r *http.Request) {
	var l workout.Log
	if err := decodeJSON(w, r, &l); err != nil {
		clientError(w, http.StatusBadRequest, err)
		return
	}
	ctx := r.Context()
	if _, err := app.workoutService.GetProfile(ctx); err != nil {
		app.handleError(w, r, err)
		return
	}
	l, err := app.workoutService.CompleteWorkout(ctx, l)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}
