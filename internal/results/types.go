package results

import "time"

// #region run-record
// RunRecord is a single row in the runs table.
type RunRecord struct {
	RunID         string
	ConfigPaths   []string
	InputType     string
	ModelPath     string
	EnablePhysics bool
	StartedAt     time.Time
	CompletedAt   time.Time // zero until FinishRun
}

// #endregion run-record

// #region episode-row
// EpisodeRow is a single row in the episode_results table.
type EpisodeRow struct {
	RunID     string
	EpisodeID string
	SceneID   string
	Metrics   map[string]float64
	CreatedAt time.Time
}

// #endregion episode-row
