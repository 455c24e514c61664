package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/myrjola/repcoach/internal/catalog"
)

func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	exercises := app.catalog.Filter(catalog.Criteria{
		Muscle:           q.Get("muscle"),
		IncludeSecondary: q.Get("secondary") == "true",
		Equipment:        equipmentList(q.Get("equipment")),
		MaxLevel:         catalog.Level(q.Get("level")),
		Category:         catalog.Category(q.Get("category")),
	})
	if exercises == nil {
		exercises = []catalog.Exercise{}
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (app *application) substitutesGET(w http.ResponseWriter, r *http.Request) {
	variations, ok := app.catalog.Substitutes(chi.URLParam(r, "exerciseID"), equipmentList(r.URL.Query().Get("equipment")))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "exercise not found"})
		return
	}
	if variations == nil {
		variations = []catalog.Variation{}
	}
	writeJSON(w, http.StatusOK, variations)
}

// equipmentList parses a comma separated equipment list.
func equipmentList(s string) []catalog.Equipment {
	var equipment []catalog.Equipment
	for e := range strings.SplitSeq(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			equipment = append(equipment, catalog.Equipment(e))
		}
	}
	return equipment
}
