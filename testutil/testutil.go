// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/carry-on/auth"
	"github.com/danielhkuo/carry-on/cliparse"
	"github.com/danielhkuo/carry-on/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
// A single pooled connection keeps the in-memory database alive for the
// whole test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4118,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		APIKeySalt:   "test-api-salt",
	}
}

// RegisterTestPlayer inserts a player and returns its ID and API key.
func RegisterTestPlayer(t *testing.T, conn *sql.DB, cfg cliparse.Config, name string) (playerID, apiKey string) {
	t.Helper()

	playerID = auth.NewEntityID()
	apiKey = auth.GenerateAPIKey(playerID, cfg.APIKeySalt)

	_, err := conn.Exec(`
		INSERT INTO player (id, name, handicap, created_at)
		VALUES ($1, $2, $3, $4)
	`, playerID, name, nil, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}

	return playerID, apiKey
}

// SetTestHandicap updates a player's stored handicap index.
func SetTestHandicap(t *testing.T, conn *sql.DB, playerID, handicap string) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE player SET handicap = $1 WHERE id = $2`, handicap, playerID); err != nil {
		t.Fatalf("Failed to set test handicap: %v", err)
	}
}

// CreateTestRound inserts a round row and returns its ID.
// status should be "ip", "f", or "a".
func CreateTestRound(t *testing.T, conn *sql.DB, playerID, status string) string {
	t.Helper()

	roundID := auth.NewEntityID()
	_, err := conn.Exec(`
		INSERT INTO round (id, player_id, course_name, date, status, created_at)
		VALUES ($1, $2, 'Test Links', '2025-06-01', $3, $4)
	`, roundID, playerID, status, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test round: %v", err)
	}

	return roundID
}

// AddTestHole inserts a hole result row for a round.
func AddTestHole(t *testing.T, conn *sql.DB, roundID string, position, holeNumber, strokes, par, strokeIndex int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO round_hole (round_id, hole_number, position, strokes, par, stroke_index)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, roundID, holeNumber, position, strokes, par, strokeIndex)
	if err != nil {
		t.Fatalf("Failed to create test hole: %v", err)
	}
}

// AuthHeaders builds the auth header pair for a player.
func AuthHeaders(playerID, apiKey string) map[string]string {
	return map[string]string{
		"X-Player-ID": playerID,
		"X-API-Key":   apiKey,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
