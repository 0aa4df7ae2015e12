package results

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/navkit/nav-eval/go-harness/internal/metrics"
	_ "modernc.org/sqlite"
)

// #endregion imports

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id         TEXT PRIMARY KEY,
	config_paths   TEXT NOT NULL,
	input_type     TEXT NOT NULL,
	model_path     TEXT NOT NULL,
	enable_physics INTEGER NOT NULL,
	started_at     TEXT NOT NULL,
	completed_at   TEXT
);

CREATE TABLE IF NOT EXISTS episode_results (
	run_id       TEXT NOT NULL,
	episode_id   TEXT NOT NULL,
	scene_id     TEXT NOT NULL,
	metrics_json TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	PRIMARY KEY (run_id, episode_id, scene_id),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS run_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	episode_key TEXT,
	event       TEXT NOT NULL,
	reason      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// #endregion schema

// #region store-struct
// Store persists evaluation runs, per-episode metrics and the run log in
// SQLite. The episode rows double as the resume checkpoint across process
// invocations.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region create-run
// CreateRun inserts a new run row and returns its generated ID.
func (s *Store) CreateRun(configPaths []string, inputType, modelPath string, enablePhysics bool) (string, error) {
	id := uuid.New().String()
	physics := 0
	if enablePhysics {
		physics = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, config_paths, input_type, model_path, enable_physics, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, strings.Join(configPaths, ";"), inputType, modelPath, physics,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// #endregion create-run

// #region get-run
// GetRun retrieves one run row by ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var paths string
	var physics int
	var startedStr string
	var completedStr sql.NullString

	err := s.db.QueryRow(
		`SELECT run_id, config_paths, input_type, model_path, enable_physics, started_at, completed_at
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(&rec.RunID, &paths, &rec.InputType, &rec.ModelPath, &physics, &startedStr, &completedStr)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}

	if paths != "" {
		rec.ConfigPaths = strings.Split(paths, ";")
	}
	rec.EnablePhysics = physics != 0
	rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	if completedStr.Valid {
		rec.CompletedAt, _ = time.Parse(time.RFC3339Nano, completedStr.String)
	}
	return rec, nil
}

// #endregion get-run

// #region list-runs
// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id FROM runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	out := make([]RunRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.GetRun(id)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// #endregion list-runs

// #region finish-run
// FinishRun stamps the run's completion time.
func (s *Store) FinishRun(runID string) error {
	res, err := s.db.Exec(
		`UPDATE runs SET completed_at = ? WHERE run_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("finish run: run %s not found", runID)
	}
	return nil
}

// #endregion finish-run

// #region record-episode
// RecordEpisode persists one episode's metrics under a run.
func (s *Store) RecordEpisode(runID, episodeID, sceneID string, m map[string]float64) error {
	metricsJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO episode_results (run_id, episode_id, scene_id, metrics_json, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(run_id, episode_id, scene_id) DO UPDATE SET
		   metrics_json = excluded.metrics_json,
		   created_at = excluded.created_at`,
		runID, episodeID, sceneID, string(metricsJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record episode: %w", err)
	}
	return nil
}

// #endregion record-episode

// #region last-completed
// LastCompleted returns the most recently recorded episode of a run, for
// resuming an interrupted evaluation. ok is false when the run has no
// episodes yet.
func (s *Store) LastCompleted(runID string) (episodeID, sceneID string, ok bool, err error) {
	err = s.db.QueryRow(
		`SELECT episode_id, scene_id FROM episode_results
		 WHERE run_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`, runID,
	).Scan(&episodeID, &sceneID)
	if err == sql.ErrNoRows {
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, fmt.Errorf("last completed: %w", err)
	}
	return episodeID, sceneID, true, nil
}

// #endregion last-completed

// #region episode-metrics
// EpisodeMetrics returns a run's per-episode metrics as an ordered
// collection, oldest episode first.
func (s *Store) EpisodeMetrics(runID string) (*metrics.Collection, error) {
	rows, err := s.db.Query(
		`SELECT episode_id, scene_id, metrics_json FROM episode_results
		 WHERE run_id = ? ORDER BY created_at ASC, rowid ASC`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("episode metrics: %w", err)
	}
	defer rows.Close()

	c := metrics.NewCollection()
	for rows.Next() {
		var episodeID, sceneID, metricsJSON string
		if err := rows.Scan(&episodeID, &sceneID, &metricsJSON); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		var m metrics.EpisodeMetrics
		if err := json.Unmarshal([]byte(metricsJSON), &m); err != nil {
			return nil, fmt.Errorf("unmarshal metrics for %s,%s: %w", episodeID, sceneID, err)
		}
		c.Add(metrics.Key(episodeID, sceneID), m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("episode metrics: %w", err)
	}
	return c, nil
}

// #endregion episode-metrics
