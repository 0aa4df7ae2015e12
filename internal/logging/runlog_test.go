package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE run_log (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id      TEXT NOT NULL,
		episode_key TEXT,
		event       TEXT NOT NULL,
		reason      TEXT,
		created_at  TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// #endregion helpers

// #region log-event-tests
func TestLogEvent_Success(t *testing.T) {
	db := setupDB(t)

	entry := Entry{
		RunID:      "run-1",
		EpisodeKey: "5,castle.glb",
		Event:      EventEpisodeComplete,
		Reason:     "",
		CreatedAt:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogEvent(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var runID, event string
	db.QueryRow("SELECT run_id, event FROM run_log").Scan(&runID, &event)
	if runID != "run-1" {
		t.Errorf("expected run_id 'run-1', got %q", runID)
	}
	if event != EventEpisodeComplete {
		t.Errorf("expected event %q, got %q", EventEpisodeComplete, event)
	}
}

func TestLogEvent_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)

	before := time.Now().UTC()
	if err := LogEvent(db, Entry{RunID: "run-2", Event: EventRunStarted}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM run_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogEvent_EmptyOptionalFields(t *testing.T) {
	db := setupDB(t)

	if err := LogEvent(db, Entry{RunID: "run-3", Event: EventRunCompleted}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var episodeKey, reason sql.NullString
	db.QueryRow("SELECT episode_key, reason FROM run_log").Scan(&episodeKey, &reason)
	if episodeKey.Valid {
		t.Error("expected NULL episode_key for empty string")
	}
	if reason.Valid {
		t.Error("expected NULL reason for empty string")
	}
}

func TestLogEvent_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	if err := LogEvent(db, Entry{RunID: "run-4", Event: EventRunStarted}); err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-event-tests
