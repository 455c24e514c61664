package main

import (
	"context"
	"net/http"

	"github.com/myrjola/repcoach/internal/coaching"
	"github.com/myrjola/repcoach/internal/report"
)

func (app *application) buildReport(ctx context.Context) (report.Day, error) {
	snap, err := app.workoutService.Snapshot(ctx)
	if err != nil {
		return report.Day{}, err //nolint:wrapcheck // handled by handleError.
	}
	greeting, _ := coaching.Greeting(snap.Profile.Name, snap.Now, app.random())
	return report.Build(app.workoutService.Engine(), snap, greeting), nil
}

func (app *application) reportGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	day, err := app.buildReport(ctx)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	md, err := app.renderer.Markdown(ctx, day)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write(md)
}

func (app *application) reportHTMLGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	day, err := app.buildReport(ctx)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	html, err := app.renderer.HTML(ctx, day)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(html)
}
