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

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/reach-board/auth"
	"github.com/danielhkuo/reach-board/cliparse"
	"github.com/danielhkuo/reach-board/db"
	"github.com/danielhkuo/reach-board/models"
)

// TestWriteKey is the write key configured by GetTestConfig
const TestWriteKey = "test-write-key"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// every pooled connection would get its own empty :memory: database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		WriteKey:     TestWriteKey,
		ItemsPerPage: 5,
		ColorScheme:  "blues",
	}
}

// CreateTestInfluencer inserts an influencer and returns its ID
func CreateTestInfluencer(t *testing.T, conn *sql.DB, name, followers string) string {
	t.Helper()

	id := auth.GenerateID()
	_, err := conn.Exec(`
		INSERT INTO influencer (id, name, platform, projects, followers)
		VALUES ($1, $2, $3, $4, $5)
	`, id, name, models.PlatformInstagram, 1, followers)
	if err != nil {
		t.Fatalf("Failed to create test influencer: %v", err)
	}

	return id
}

// CreateTestRegion inserts a region audience row
func CreateTestRegion(t *testing.T, conn *sql.DB, code, name string, userCount int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO region_audience (code, name, user_count)
		VALUES ($1, $2, $3)
	`, code, name, userCount)
	if err != nil {
		t.Fatalf("Failed to create test region: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
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

// WriteHeaders returns the headers a mutating request needs under GetTestConfig
func WriteHeaders() map[string]string {
	return map[string]string{auth.WriteKeyHeader: TestWriteKey}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
