// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/weeksheet/auth"
	"github.com/danielhkuo/weeksheet/cliparse"
	"github.com/danielhkuo/weeksheet/db"
	"github.com/danielhkuo/weeksheet/middleware"
	"github.com/danielhkuo/weeksheet/models"
)

// SetupTestDB creates a fresh SQLite database in a per-test temp directory
// with the full schema applied.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "weeksheet_test.db")
	conn, err := sqlx.Open("sqlite", db.SQLiteDSN(path))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseType:  "sqlite",
		ClubName:      "Test Club",
		AdminUsername: "admin",
		AdminPassword: "test-password",
		SessionSecret: "test-session-secret",
	}
}

// InsertTestPlayer inserts a roster entry and returns its id
func InsertTestPlayer(t *testing.T, conn *sqlx.DB, name string, sortOrder int) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO player (id, name, sort_order)
		VALUES ($1, $2, $3)
	`, id, name, sortOrder)
	if err != nil {
		t.Fatalf("Failed to insert test player: %v", err)
	}

	return id
}

// InsertTestWeek inserts a week and materializes the full set of unplayed
// cells for every player currently in the roster, returning the week id.
func InsertTestWeek(t *testing.T, conn *sqlx.DB, weekDate string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO week (id, week_date, created_at)
		VALUES ($1, $2, $3)
	`, id, weekDate, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to insert test week: %v", err)
	}

	var playerIDs []string
	if err := conn.Select(&playerIDs, `SELECT id FROM player`); err != nil {
		t.Fatalf("Failed to list players: %v", err)
	}
	for _, playerID := range playerIDs {
		for _, gameNo := range models.GameNumbers() {
			_, err := conn.Exec(`
				INSERT INTO week_player_game (week_id, player_id, game_no, played)
				VALUES ($1, $2, $3, FALSE)
			`, id, playerID, gameNo)
			if err != nil {
				t.Fatalf("Failed to insert test cell: %v", err)
			}
		}
	}

	return id
}

// SetCellPlayed forces one cell to a known state
func SetCellPlayed(t *testing.T, conn *sqlx.DB, weekID, playerID string, gameNo int, played bool) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE week_player_game SET played = $1
		WHERE week_id = $2 AND player_id = $3 AND game_no = $4
	`, played, weekID, playerID, gameNo)
	if err != nil {
		t.Fatalf("Failed to set test cell: %v", err)
	}
}

// LoginCookie creates a live session and returns its signed cookie
func LoginCookie(t *testing.T, sessions *auth.SessionStore, secret string) *http.Cookie {
	t.Helper()

	token, err := sessions.Create()
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return &http.Cookie{
		Name:  middleware.SessionCookieName,
		Value: auth.SignCookie(token, secret),
	}
}

// MakeRequest creates an HTTP test request with an optional JSON body
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

// MakeFormRequest creates an HTTP test request with a form-encoded body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a redirect to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected status %d, got %d. Body: %s", http.StatusSeeOther, w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
