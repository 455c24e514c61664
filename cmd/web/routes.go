package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(app.recoverPanic, app.logAndTraceRequest, secureHeaders, noCache, app.timeout)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: http.StatusText(http.StatusNotFound)})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthy", app.healthy)
		r.Get("/exercises", app.exercisesGET)
		r.Get("/exercises/{exerciseID}/substitutes", app.substitutesGET)
		r.Get("/splits", app.splitsGET)

		r.Post("/users", app.usersPOST)
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Use(app.userScope)
			r.Get("/", app.userGET)
			r.Put("/", app.userPUT)
			r.Put("/schedule", app.schedulePUT)
			r.Put("/schedule/{day}", app.scheduleDayPUT)
			r.Get("/plan", app.planGET)

			r.Get("/workout", app.workoutGET)
			r.Get("/today", app.todayGET)
			r.Get("/workouts", app.workoutsGET)
			r.Post("/workouts", app.workoutsPOST)

			r.Get("/recovery", app.recoveryGET)
			r.Get("/overtraining", app.overtrainingGET)
			r.Get("/consistency", app.consistencyGET)

			r.Get("/progress", app.progressGET)
			r.Get("/identity", app.identityGET)
			r.Post("/identity", app.identityPOST)
			r.Get("/greeting", app.greetingGET)

			r.Get("/report", app.reportGET)
			r.Get("/report.html", app.reportHTMLGET)
		})
	})

	return r
}
