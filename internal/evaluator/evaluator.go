package evaluator

// #region imports
import (
	"context"
	"errors"

	"github.com/navkit/nav-eval/go-harness/internal/config"
	"github.com/navkit/nav-eval/go-harness/internal/metrics"
	"github.com/navkit/nav-eval/go-harness/internal/topdown"
)

// #endregion imports

// #region defaults
// Evaluation protocol defaults. Seed 7 keeps agent initialization
// reproducible across runs; the scene is the dataset's first test scene.
const (
	DefaultAgentSeed   int64 = 7
	DefaultMapHeight         = 200
	DefaultLogDir            = "logs/"
	DefaultSceneIDLast       = "data/scene_datasets/habitat-test-scenes/skokloster-castle.glb"

	// EvaluateAllEpisodes is the episode-id-last sentinel for a fresh run.
	EvaluateAllEpisodes = "-1"
)

// #endregion defaults

// #region options
// VideoOptions configures a single recorded episode.
type VideoOptions struct {
	AgentSeed int64
	VideoDir  string
}

// DefaultVideoOptions returns the standard recording settings.
func DefaultVideoOptions() VideoOptions {
	return VideoOptions{AgentSeed: DefaultAgentSeed, VideoDir: "videos/"}
}

// EvalOptions configures a full evaluation pass over the episode set.
type EvalOptions struct {
	// EpisodeIDLast and SceneIDLast name the last episode already evaluated;
	// evaluation resumes with the episode after it. EpisodeIDLast "-1" starts
	// from the beginning.
	EpisodeIDLast string
	SceneIDLast   string
	LogDir        string
	MapHeight     int

	// AgentSeed is used exactly as given; zero is a valid seed.
	// DefaultEvalOptions sets DefaultAgentSeed.
	AgentSeed int64
}

// DefaultEvalOptions returns a fresh-run configuration.
func DefaultEvalOptions() EvalOptions {
	return EvalOptions{
		EpisodeIDLast: EvaluateAllEpisodes,
		SceneIDLast:   DefaultSceneIDLast,
		LogDir:        DefaultLogDir,
		MapHeight:     DefaultMapHeight,
		AgentSeed:     DefaultAgentSeed,
	}
}

// Outcome pairs each evaluated episode's metrics with its rasterized
// top-down map, both keyed by "<episode-id>,<scene-id>".
type Outcome struct {
	Metrics *metrics.Collection
	Maps    map[string]*topdown.Map
}

// #endregion options

// #region interface
// Evaluator runs a learned navigation agent over simulator episodes. The
// vision-only and physics-enabled variants differ only in how they configure
// the simulator service; both satisfy this interface.
type Evaluator interface {
	// GenerateVideo runs one episode with a seeded agent and persists a
	// video of it, returning the artifact path.
	GenerateVideo(ctx context.Context, episodeID, sceneID string, opts VideoOptions) (string, error)

	// GenerateMap runs one episode and returns its top-down map, annotated
	// with start, goal, shortest path and actual path.
	GenerateMap(ctx context.Context, episodeID, sceneID string, agentSeed int64, mapHeight int) (*topdown.Map, error)

	// EvaluateAndGetMaps evaluates every episode after the resume point and
	// returns per-episode metrics together with their top-down maps.
	EvaluateAndGetMaps(ctx context.Context, opts EvalOptions) (*Outcome, error)
}

// ErrNotImplemented is returned by Base for every operation. Reaching it
// means a caller got hold of the bare base type instead of a concrete
// evaluator.
var ErrNotImplemented = errors.New("evaluator: operation not implemented")

// #endregion interface

// #region base
// Base carries the run settings every evaluator needs. Construction loads
// configuration only; no simulator or model is touched until an operation
// runs. The three operations return ErrNotImplemented; concrete evaluators
// embed Base and supply them.
type Base struct {
	Config        *config.RunConfig
	ConfigPaths   []string
	InputType     string // rgb | depth | rgbd
	ModelPath     string
	EnablePhysics bool
}

// NewBase loads the run configuration and retains the construction inputs.
func NewBase(configPaths []string, inputType, modelPath string, enablePhysics bool) (*Base, error) {
	cfg, err := config.Load(configPaths...)
	if err != nil {
		return nil, err
	}
	return &Base{
		Config:        cfg,
		ConfigPaths:   configPaths,
		InputType:     inputType,
		ModelPath:     modelPath,
		EnablePhysics: enablePhysics,
	}, nil
}

func (b *Base) GenerateVideo(context.Context, string, string, VideoOptions) (string, error) {
	return "", ErrNotImplemented
}

func (b *Base) GenerateMap(context.Context, string, string, int64, int) (*topdown.Map, error) {
	return nil, ErrNotImplemented
}

func (b *Base) EvaluateAndGetMaps(context.Context, EvalOptions) (*Outcome, error) {
	return nil, ErrNotImplemented
}

// #endregion base
