package logging

import "time"

// #region events
// Event names written to the run_log table.
const (
	EventRunStarted      = "run_started"
	EventRunResumed      = "run_resumed"
	EventRunCompleted    = "run_completed"
	EventEpisodeComplete = "episode_complete"
	EventEpisodeFailed   = "episode_failed"
)

// #endregion events

// #region entry
// Entry is a single row in the run_log table.
type Entry struct {
	RunID      string
	EpisodeKey string // "<episode-id>,<scene-id>", empty for run-level events
	Event      string
	Reason     string
	CreatedAt  time.Time
}

// #endregion entry
