package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/navkit/nav-eval/go-harness/internal/evaluator"
	"github.com/navkit/nav-eval/go-harness/internal/logging"
	"github.com/navkit/nav-eval/go-harness/internal/metrics"
	"github.com/navkit/nav-eval/go-harness/internal/results"
	"github.com/navkit/nav-eval/go-harness/internal/simclient"
)

// #region main

func main() {
	configs := flag.String("config", "", "comma-separated run config YAML paths")
	inputType := flag.String("input-type", "rgb", "agent input type: rgb | depth | rgbd")
	modelPath := flag.String("model-path", "", "path to the trained model checkpoint")
	physics := flag.Bool("physics", false, "enable the physics simulator overlay")
	simAddr := flag.String("sim-addr", envOr("SIM_ADDR", "localhost:50052"), "simulator service address")
	dbPath := flag.String("db", envOr("EVAL_DB", "eval_results.db"), "path to results database")
	runID := flag.String("run", "", "resume an existing run by ID")
	episodeIDLast := flag.String("episode-id-last", evaluator.EvaluateAllEpisodes, "resume after this episode ID (-1 = fresh run)")
	sceneIDLast := flag.String("scene-id-last", evaluator.DefaultSceneIDLast, "scene of the resume episode")
	mapHeight := flag.Int("map-height", evaluator.DefaultMapHeight, "top-down map height in cells")
	logDir := flag.String("log-dir", evaluator.DefaultLogDir, "directory for evaluation logs")
	seed := flag.Int64("seed", evaluator.DefaultAgentSeed, "agent seed")
	timeout := flag.Duration("timeout", 0, "overall deadline for the run (0 = none)")
	flag.Parse()

	if *modelPath == "" || *configs == "" {
		fmt.Fprintln(os.Stderr, "usage: evaluate --config a.yaml,b.yaml --model-path path/to/model.pth [--physics]")
		fmt.Fprintln(os.Stderr, "                [--run id | --episode-id-last id --scene-id-last scene]")
		os.Exit(2)
	}
	if *runID != "" && *episodeIDLast != evaluator.EvaluateAllEpisodes {
		fmt.Fprintln(os.Stderr, "error: --run and --episode-id-last are mutually exclusive")
		os.Exit(2)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	if err := run(ctx, options{
		configPaths:   splitPaths(*configs),
		inputType:     *inputType,
		modelPath:     *modelPath,
		physics:       *physics,
		simAddr:       *simAddr,
		dbPath:        *dbPath,
		runID:         *runID,
		episodeIDLast: *episodeIDLast,
		sceneIDLast:   *sceneIDLast,
		mapHeight:     *mapHeight,
		logDir:        *logDir,
		seed:          *seed,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region run

type options struct {
	configPaths   []string
	inputType     string
	modelPath     string
	physics       bool
	simAddr       string
	dbPath        string
	runID         string
	episodeIDLast string
	sceneIDLast   string
	mapHeight     int
	logDir        string
	seed          int64
}

func run(ctx context.Context, opts options) error {
	store, err := results.NewStore(opts.dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	sim, err := simclient.New(opts.simAddr)
	if err != nil {
		return fmt.Errorf("connect to simulator at %s: %w", opts.simAddr, err)
	}
	defer sim.Close()

	ev, err := evaluator.NewSimEvaluator(ctx, opts.configPaths, opts.inputType, opts.modelPath, opts.physics, sim)
	if err != nil {
		return err
	}

	evalOpts := evaluator.EvalOptions{
		EpisodeIDLast: opts.episodeIDLast,
		SceneIDLast:   opts.sceneIDLast,
		LogDir:        opts.logDir,
		MapHeight:     opts.mapHeight,
		AgentSeed:     opts.seed,
	}

	runID := opts.runID
	event := logging.EventRunStarted
	if runID == "" {
		runID, err = store.CreateRun(opts.configPaths, opts.inputType, opts.modelPath, opts.physics)
		if err != nil {
			return err
		}
		log.Printf("run %s started", runID)
	} else {
		// Resuming: pick up after the last recorded episode of the run.
		if _, err := store.GetRun(runID); err != nil {
			return err
		}
		lastID, lastScene, ok, err := store.LastCompleted(runID)
		if err != nil {
			return err
		}
		if ok {
			evalOpts.EpisodeIDLast = lastID
			evalOpts.SceneIDLast = lastScene
			log.Printf("run %s resuming after episode %s", runID, metrics.Key(lastID, lastScene))
		} else {
			log.Printf("run %s has no recorded episodes, starting from the beginning", runID)
		}
		event = logging.EventRunResumed
	}

	ev.AttachStore(store, runID)
	if err := logging.LogEvent(store.DB(), logging.Entry{RunID: runID, Event: event}); err != nil {
		log.Printf("run log error: %v", err)
	}

	started := time.Now()
	outcome, err := ev.EvaluateAndGetMaps(ctx, evalOpts)
	if err != nil {
		return err
	}

	if err := store.FinishRun(runID); err != nil {
		return err
	}
	if err := logging.LogEvent(store.DB(), logging.Entry{RunID: runID, Event: logging.EventRunCompleted}); err != nil {
		log.Printf("run log error: %v", err)
	}

	// A resume can land after the final episode; that is a no-op, not an error.
	if outcome.Metrics.Len() == 0 {
		fmt.Printf("Run %s: no episodes remaining, already complete\n", runID)
		return nil
	}

	// Averages across the episodes of this invocation. A resumed run's full
	// aggregate comes from the report tool, which reads every stored episode.
	avg, err := metrics.ComputeAvg(outcome.Metrics)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s: %d episodes in %s\n", runID, outcome.Metrics.Len(), time.Since(started).Round(time.Millisecond))
	names := make([]string, 0, len(avg))
	for name := range avg {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-24s %.4f\n", name, avg[name])
	}
	return nil
}

// #endregion run

// #region helpers

func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
