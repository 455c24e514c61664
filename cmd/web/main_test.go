package main

import (
	"net/http"
	"testing"

	"github.com/myrjola/repcoach/internal/e2etest"
	"github.com/myrjola/repcoach/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "REPCOACH_SQLITE_URL":
		return ":memory:", true
	case "REPCOACH_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func Test_run(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	var health healthResponse
	if err = client.JSON(ctx, http.MethodGet, "/api/v1/healthy", nil, http.StatusOK, &health); err != nil {
		t.Fatalf("healthy: %v", err)
	}
	if health.Status != "ok" || health.Exercises == 0 {
		t.Errorf("health = %+v, want status ok and a loaded catalog", health)
	}

	user := createUser(t, client)
	var sessions []map[string]any
	if err = client.JSON(ctx, http.MethodGet, "/api/v1/users/"+user.ID+"/today", nil, http.StatusOK,
		&sessions); err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("got %d sessions today, want 1", len(sessions))
	}

	err = client.JSON(ctx, http.MethodGet, "/api/v1/nothing-here", nil, http.StatusOK, nil)
	wantStatus(t, err, http.StatusNotFound)
}

func Test_run_invalidConfig(t *testing.T) {
	lookupEnv := func(key string) (string, bool) {
		if key == "REPCOACH_READ_TIMEOUT" {
			return "soon", true
		}
		return testLookupEnv(key)
	}
	if err := run(t.Context(), testhelpers.NewTestLogger(t), lookupEnv); err == nil {
		t.Fatal("run() with invalid timeout succeeded")
	}
}
