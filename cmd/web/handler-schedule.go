package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/myrjola/repcoach/internal/workout"
)

// Schedule edit operations.
const (
	opToggleRest    = "toggle_rest"
	opAddSession    = "add_session"
	opRemoveSession = "remove_session"
	opToggleMuscle  = "toggle_muscle"
	opSetTimeSlot   = "set_time_slot"
	opSetLabel      = "set_label"
)

type scheduleEditRequest struct {
	Op       string           `json:"op"`
	Session  int              `json:"session"`
	Muscle   string           `json:"muscle"`
	TimeSlot workout.TimeSlot `json:"timeSlot"`
	Label    string           `json:"label"`
}

func (req scheduleEditRequest) edit(known func(string) bool) (func(workout.DaySchedule) workout.DaySchedule, error) {
	switch req.Op {
	case opToggleRest:
		return workout.ToggleRestDay, nil
	case opAddSession:
		return workout.AddSession, nil
	case opRemoveSession:
		return func(ds workout.DaySchedule) workout.DaySchedule {
			return workout.RemoveSession(ds, req.Session)
		}, nil
	case opToggleMuscle:
		if !known(req.Muscle) {
			return nil, fmt.Errorf("%w: unknown muscle %q", workout.ErrInvalidProfile, req.Muscle)
		}
		return func(ds workout.DaySchedule) workout.DaySchedule {
			return workout.ToggleMuscle(ds, req.Session, req.Muscle)
		}, nil
	case opSetTimeSlot:
		switch req.TimeSlot {
		case workout.SlotMorning, workout.SlotAfternoon, workout.SlotEvening:
		default:
			return nil, fmt.Errorf("%w: unknown time slot %q", workout.ErrInvalidProfile, req.TimeSlot)
		}
		return func(ds workout.DaySchedule) workout.DaySchedule {
			return workout.SetTimeSlot(ds, req.Session, req.TimeSlot)
		}, nil
	case opSetLabel:
		return func(ds workout.DaySchedule) workout.DaySchedule {
			return workout.SetLabel(ds, req.Session, req.Label)
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown schedule operation %q", workout.ErrInvalidProfile, req.Op)
	}
}

func (app *application) scheduleDayPUT(w http.ResponseWriter, r *http.Request) {
	day, ok := workout.ParseDay(chi.URLParam(r, "day"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown day"})
		return
	}
	var req scheduleEditRequest
	if err := decodeJSON(w, r, &req); err != nil {
		clientError(w, http.StatusBadRequest, err)
		return
	}
	edit, err := req.edit(func(m string) bool {
		_, known := app.catalog.Muscles().Lookup(m)
		return known
	})
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	ds, err := app.workoutService.UpdateSchedule(r.Context(), day, edit)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

type scheduleRequest struct {
	SplitID string `json:"splitId"`
}

// schedulePUT replaces the whole schedule with a split template.
func (app *application) schedulePUT(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		clientError(w, http.StatusBadRequest, err)
		return
	}
	split, ok := workout.SplitByID(req.SplitID)
	if !ok {
		clientError(w, http.StatusBadRequest, fmt.Errorf("unknown split %q", req.SplitID))
		return
	}
	ctx := r.Context()
	p, err := app.workoutService.GetProfile(ctx)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	p.Schedule = workout.ScheduleFromTemplate(split)
	p.DaysPerWeek = split.DaysPerWeek
	if p, err = app.workoutService.SaveProfile(ctx, p); err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	p, err := app.workoutService.GetProfile(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout.WeeklyPlan(p.Schedule, app.workoutService.Now()))
}

func (app *application) splitsGET(w http.ResponseWriter, r *http.Request) {
	level := workout.FitnessLevel(r.URL.Query().Get("level"))
	if level == "" {
		writeJSON(w, http.StatusOK, workout.SplitTemplates())
		return
	}
	writeJSON(w, http.StatusOK, workout.SplitsForLevel(level))
}
