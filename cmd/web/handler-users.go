package main

import (
	"fmt"
	"net/http"

	"github.com/myrjola/repcoach/internal/workout"
)

type profileRequest struct {
	Name         string                 `json:"name"`
	WeightKg     float64                `json:"weightKg"`
	FitnessLevel workout.FitnessLevel   `json:"fitnessLevel"`
	Goal         workout.Goal           `json:"goal"`
	DaysPerWeek  int                    `json:"daysPerWeek"`
	Schedule     workout.WeeklySchedule `json:"schedule"`
	// SplitID fills the schedule from a split template when Schedule is empty.
	SplitID string `json:"splitId"`
}

func (req profileRequest) profile() (workout.Profile, error) {
	p := workout.Profile{ //nolint:exhaustruct // ID, identity and creation time are assigned by the service.
		Name:         req.Name,
		WeightKg:     req.WeightKg,
		FitnessLevel: req.FitnessLevel,
		Goal:         req.Goal,
		DaysPerWeek:  req.DaysPerWeek,
		Schedule:     req.Schedule,
	}
	if req.SplitID == "" || len(req.Schedule) > 0 {
		return p, nil
	}
	split, ok := workout.SplitByID(req.SplitID)
	if !ok {
		return workout.Profile{}, fmt.Errorf("%w: unknown split %q", workout.ErrInvalidProfile, req.SplitID)
	}
	p.Schedule = workout.ScheduleFromTemplate(split)
	if p.DaysPerWeek == 0 {
		p.DaysPerWeek = split.DaysPerWeek
	}
	return p, nil
}

func (app *application) usersPOST(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		clientError(w, http.StatusBadRequest, err)
		return
	}
	p, err := req.profile()
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if p, err = app.workoutService.CreateProfile(r.Context(), p); err != nil {
		app.handleError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/users/"+p.ID)
	writeJSON(w, http.StatusCreated, p)
}

func (app *application) userGET(w http.ResponseWriter, r *http.Request) {
	p, err := app.workoutService.GetProfile(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (app *application) userPUT(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		clientError(w, http.StatusBadRequest, err)
		return
	}
	ctx := r.Context()
	p, err := req.profile()
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	current, err := app.workoutService.GetProfile(ctx)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if p.Schedule == nil {
		p.Schedule = current.Schedule
	}
	p.Identity = current.Identity
	if p, err = app.workoutService.SaveProfile(ctx, p); err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
