// Package report renders the workouts of a day, with their set-by-set ramps, warnings and recovery status,
// to Markdown and HTML.
package report

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"strconv"
	"text/template"
	"time"

	"github.com/myrjola/repcoach/internal/workout"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

// Exercise is a planned exercise with its set ramp.
type Exercise struct {
	workout.WorkoutExercise

	Prescriptions []workout.SetPrescription
}

// Session is one generated workout ready for rendering.
type Session struct {
	Workout   workout.GeneratedWorkout
	Exercises []Exercise
}

// Day is everything a day report shows.
type Day struct {
	Title    string
	Greeting string
	Date     time.Time
	Status   workout.Status
	Warnings []string
	Sessions []Session
}

// Build generates every session of the snapshot's day and prescribes sets for each exercise.
func Build(e *workout.Engine, snap workout.Snapshot, greeting string) Day {
	workouts := e.TodaySessions(snap.Profile, snap.History, snap.Now)
	sessions := make([]Session, 0, len(workouts))
	for _, w := range workouts {
		s := Session{Workout: w, Exercises: make([]Exercise, 0, len(w.Exercises))}
		for _, we := range w.Exercises {
			s.Exercises = append(s.Exercises, Exercise{
				WorkoutExercise: we,
				Prescriptions:   workout.PrescribeSets(snap.Profile, we, snap.History),
			})
		}
		sessions = append(sessions, s)
	}
	return Day{
		Title:    fmt.Sprintf("%s, %s", workout.DayOf(snap.Now).Title(), snap.Now.Format("2 January 2006")),
		Greeting: greeting,
		Date:     snap.Now,
		Status:   e.RecoveryStatus(snap.History, snap.Now),
		Warnings: e.OvertrainingWarnings(snap.History, snap.Now),
		Sessions: sessions,
	}
}

// Renderer turns a Day into Markdown or HTML. It is safe for concurrent use.
type Renderer struct {
	templates *template.Template
	markdown  goldmark.Markdown
}

// NewRenderer parses the bundled templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("report").Funcs(template.FuncMap{
		"kg": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
	}).ParseFS(templateFS, "templates/*.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse report templates: %w", err)
	}
	return &Renderer{
		templates: t,
		markdown:  goldmark.New(goldmark.WithExtensions(extension.Table)),
	}, nil
}

type dayView struct {
	Day

	Sections []string
}

// Markdown renders the day. Sessions are rendered concurrently and appear in schedule order.
func (r *Renderer) Markdown(ctx context.Context, day Day) ([]byte, error) {
	sections := make([]string, len(day.Sessions))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range day.Sessions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint:wrapcheck // context errors are returned as is.
			}
			var buf bytes.Buffer
			if err := r.templates.ExecuteTemplate(&buf, "session.md.tmpl", s); err != nil {
				return fmt.Errorf("render session %d: %w", i, err)
			}
			sections[i] = buf.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // already wrapped.
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "day.md.tmpl", dayView{Day: day, Sections: sections}); err != nil {
		return nil, fmt.Errorf("render day: %w", err)
	}
	return buf.Bytes(), nil
}

// HTML renders the day as an HTML fragment. Raw HTML in names or notes is omitted.
func (r *Renderer) HTML(ctx context.Context, day Day) ([]byte, error) {
	md, err := r.Markdown(ctx, day)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = r.markdown.Convert(md, &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}
