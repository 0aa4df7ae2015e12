package evaluator

// #region imports
import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/navkit/nav-eval/go-harness/internal/config"
	"github.com/navkit/nav-eval/go-harness/internal/logging"
	"github.com/navkit/nav-eval/go-harness/internal/metrics"
	"github.com/navkit/nav-eval/go-harness/internal/results"
	"github.com/navkit/nav-eval/go-harness/internal/simclient"
	"github.com/navkit/nav-eval/go-harness/internal/topdown"
)

// #endregion imports

// #region runner
// EpisodeRunner is the slice of the simulator client the evaluator drives.
// *simclient.Client satisfies it; tests and offline replay inject recorded
// implementations.
type EpisodeRunner interface {
	ListEpisodes(ctx context.Context) ([]simclient.EpisodeRef, error)
	RunEpisode(ctx context.Context, spec simclient.EpisodeSpec) (simclient.EpisodeOutcome, error)
	CheckPhysics(ctx context.Context) error
}

var _ EpisodeRunner = (*simclient.Client)(nil)

// #endregion runner

// #region sim-evaluator
// SimEvaluator evaluates episodes by driving the external simulator service.
// A physics-enabled instance has the physics overrides already merged into
// its simulator section.
type SimEvaluator struct {
	*Base
	sim EpisodeRunner

	// optional persistence; nil store means in-memory only
	store *results.Store
	runID string
}

// NewSimEvaluator loads configuration and prepares an evaluator over the
// given runner. With enablePhysics set, the physics overrides are merged
// into a copy of the configuration and committed only after the service
// confirms its physics modules load, so a failed probe leaves the
// configuration untouched.
func NewSimEvaluator(ctx context.Context, configPaths []string, inputType, modelPath string, enablePhysics bool, sim EpisodeRunner) (*SimEvaluator, error) {
	base, err := NewBase(configPaths, inputType, modelPath, enablePhysics)
	if err != nil {
		return nil, err
	}
	if enablePhysics {
		trial := *base.Config
		config.OverwriteSimulatorConfig(&trial)
		if err := sim.CheckPhysics(ctx); err != nil {
			return nil, err
		}
		*base.Config = trial
	}
	return &SimEvaluator{Base: base, sim: sim}, nil
}

// AttachStore enables persistence of episode results and run-log events
// under runID.
func (e *SimEvaluator) AttachStore(store *results.Store, runID string) {
	e.store = store
	e.runID = runID
}

// #endregion sim-evaluator

// #region generate-video
// GenerateVideo runs one episode with recording enabled and returns the
// path of the video the service wrote under opts.VideoDir.
func (e *SimEvaluator) GenerateVideo(ctx context.Context, episodeID, sceneID string, opts VideoOptions) (string, error) {
	if opts.VideoDir == "" {
		opts.VideoDir = e.Config.Video.Dir
	}
	if err := os.MkdirAll(opts.VideoDir, 0o755); err != nil {
		return "", fmt.Errorf("create video dir: %w", err)
	}

	out, err := e.sim.RunEpisode(ctx, simclient.EpisodeSpec{
		EpisodeID:     episodeID,
		SceneID:       sceneID,
		AgentSeed:     opts.AgentSeed,
		EnablePhysics: e.EnablePhysics,
		InputType:     e.InputType,
		ModelPath:     e.ModelPath,
		RecordVideo:   true,
		VideoDir:      opts.VideoDir,
	})
	if err != nil {
		return "", fmt.Errorf("episode %s: %w", metrics.Key(episodeID, sceneID), err)
	}
	if out.VideoPath == "" {
		return "", fmt.Errorf("episode %s: service recorded no video", metrics.Key(episodeID, sceneID))
	}
	return out.VideoPath, nil
}

// #endregion generate-video

// #region generate-map
// GenerateMap runs one episode and returns its top-down map.
func (e *SimEvaluator) GenerateMap(ctx context.Context, episodeID, sceneID string, agentSeed int64, mapHeight int) (*topdown.Map, error) {
	if mapHeight <= 0 {
		mapHeight = DefaultMapHeight
	}
	out, err := e.sim.RunEpisode(ctx, simclient.EpisodeSpec{
		EpisodeID:     episodeID,
		SceneID:       sceneID,
		AgentSeed:     agentSeed,
		EnablePhysics: e.EnablePhysics,
		InputType:     e.InputType,
		ModelPath:     e.ModelPath,
		MapHeight:     mapHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("episode %s: %w", metrics.Key(episodeID, sceneID), err)
	}
	if out.Map == nil {
		return nil, fmt.Errorf("episode %s: service returned no map", metrics.Key(episodeID, sceneID))
	}
	return out.Map, nil
}

// #endregion generate-map

// #region evaluate
// EvaluateAndGetMaps runs every episode after the resume point through the
// service, collecting metrics and maps per episode. Completed episodes are
// recorded in the attached store as they finish, so an interrupted run can
// resume from its checkpoint.
func (e *SimEvaluator) EvaluateAndGetMaps(ctx context.Context, opts EvalOptions) (*Outcome, error) {
	if opts.EpisodeIDLast == "" {
		opts.EpisodeIDLast = EvaluateAllEpisodes
	}
	if opts.LogDir == "" {
		opts.LogDir = e.Config.Eval.LogDir
	}
	if opts.MapHeight <= 0 {
		opts.MapHeight = e.Config.Eval.MapHeight
	}
	if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	episodes, err := e.sim.ListEpisodes(ctx)
	if err != nil {
		return nil, err
	}
	remaining, err := episodesAfter(episodes, opts.EpisodeIDLast, opts.SceneIDLast)
	if err != nil {
		return nil, err
	}
	log.Printf("evaluating %d of %d episodes", len(remaining), len(episodes))

	outcome := &Outcome{
		Metrics: metrics.NewCollection(),
		Maps:    make(map[string]*topdown.Map),
	}
	for _, ref := range remaining {
		key := metrics.Key(ref.EpisodeID, ref.SceneID)
		out, err := e.sim.RunEpisode(ctx, simclient.EpisodeSpec{
			EpisodeID:     ref.EpisodeID,
			SceneID:       ref.SceneID,
			AgentSeed:     opts.AgentSeed,
			EnablePhysics: e.EnablePhysics,
			InputType:     e.InputType,
			ModelPath:     e.ModelPath,
			MapHeight:     opts.MapHeight,
		})
		if err != nil {
			e.logEvent(key, logging.EventEpisodeFailed, err.Error())
			return nil, fmt.Errorf("episode %s: %w", key, err)
		}

		outcome.Metrics.Add(key, out.Metrics)
		outcome.Maps[key] = out.Map

		if e.store != nil {
			if err := e.store.RecordEpisode(e.runID, ref.EpisodeID, ref.SceneID, out.Metrics); err != nil {
				return nil, err
			}
		}
		e.logEvent(key, logging.EventEpisodeComplete, "")
	}
	return outcome, nil
}

func (e *SimEvaluator) logEvent(episodeKey, event, reason string) {
	if e.store == nil {
		return
	}
	err := logging.LogEvent(e.store.DB(), logging.Entry{
		RunID:      e.runID,
		EpisodeKey: episodeKey,
		Event:      event,
		Reason:     reason,
	})
	if err != nil {
		log.Printf("run log error: %v", err)
	}
}

// episodesAfter returns the episodes following (lastID, lastScene) in
// dataset order, or the full set when lastID is the fresh-run sentinel. A
// checkpoint that no longer matches any episode is an error rather than a
// silent full restart.
func episodesAfter(episodes []simclient.EpisodeRef, lastID, lastScene string) ([]simclient.EpisodeRef, error) {
	if lastID == EvaluateAllEpisodes {
		return episodes, nil
	}
	for i, ref := range episodes {
		if ref.EpisodeID == lastID && ref.SceneID == lastScene {
			return episodes[i+1:], nil
		}
	}
	return nil, fmt.Errorf("checkpoint episode %s not in episode set", metrics.Key(lastID, lastScene))
}

// #endregion evaluate
