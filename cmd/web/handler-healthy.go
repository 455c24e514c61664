package main

import (
	"net/http"
)

type healthResponse struct {
	Status    string `json:"status"`
	Exercises int    `json:"exercises"`
}

// healthy reports that the server is up and how many exercises the loaded catalog has.
func (app *application) healthy(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Exercises: len(app.catalog.Exercises())})
}
