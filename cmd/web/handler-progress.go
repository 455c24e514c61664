package main

import (
	"net/http"

	"github.com/myrjola/repcoach/internal/coaching"
	"github.com/myrjola/repcoach/internal/progress"
)

func (app *application) progressGET(w http.ResponseWriter, r *http.Request) {
	snap, err := app.workoutService.Snapshot(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress.Summarize(snap.Profile, snap.History, snap.Now))
}

type identityResponse struct {
	Identity coaching.Identity `json:"identity"`
	Detected coaching.Identity `json:"detected"`
}

// identityGET shows the stored identity next to the one current behaviour suggests.
func (app *application) identityGET(w http.ResponseWriter, r *http.Request) {
	snap, err := app.workoutService.Snapshot(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	signals := progress.IdentitySignals(snap.Profile, snap.History, 0, snap.Now)
	writeJSON(w, http.StatusOK, identityResponse{
		Identity: snap.Profile.Identity,
		Detected: coaching.DetectIdentity(signals),
	})
}

type identityRequest struct {
	ExplanationRequests int `json:"explanationRequests"`
}

// identityPOST re-detects the identity and stores it.
func (app *application) identityPOST(w http.ResponseWriter, r *http.Request) {
	var req identityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		clientError(w, http.StatusBadRequest, err)
		return
	}
	ctx := r.Context()
	snap, err := app.workoutService.Snapshot(ctx)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	signals := progress.IdentitySignals(snap.Profile, snap.History, max(0, req.ExplanationRequests), snap.Now)
	p, err := app.workoutService.SetIdentity(ctx, coaching.DetectIdentity(signals))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, identityResponse{Identity: p.Identity, Detected: p.Identity})
}

type greetingResponse struct {
	Greeting  string             `json:"greeting"`
	TimeOfDay coaching.TimeOfDay `json:"timeOfDay"`
}

func (app *application) greetingGET(w http.ResponseWriter, r *http.Request) {
	p, err := app.workoutService.GetProfile(r.Context())
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	greeting, tod := coaching.Greeting(p.Name, app.workoutService.Now(), app.random())
	writeJSON(w, http.StatusOK, greetingResponse{Greeting: greeting, TimeOfDay: tod})
}
