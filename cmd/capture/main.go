package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/navkit/nav-eval/go-harness/internal/evaluator"
	"github.com/navkit/nav-eval/go-harness/internal/simclient"
)

// #region main

func main() {
	configs := flag.String("config", "", "comma-separated run config YAML paths")
	inputType := flag.String("input-type", "rgb", "agent input type: rgb | depth | rgbd")
	modelPath := flag.String("model-path", "", "path to the trained model checkpoint")
	physics := flag.Bool("physics", false, "enable the physics simulator overlay")
	simAddr := flag.String("sim-addr", envOr("SIM_ADDR", "localhost:50052"), "simulator service address")
	episodeID := flag.String("episode", "", "episode ID to capture")
	sceneID := flag.String("scene", "", "scene ID of the episode")
	video := flag.Bool("video", false, "record a video of the episode")
	videoDir := flag.String("video-dir", "videos/", "directory for recorded videos")
	mapOut := flag.String("map", "", "write the top-down map PNG to this path")
	mapHeight := flag.Int("map-height", evaluator.DefaultMapHeight, "top-down map height in cells")
	seed := flag.Int64("seed", evaluator.DefaultAgentSeed, "agent seed")
	flag.Parse()

	if *configs == "" || *modelPath == "" || *episodeID == "" || *sceneID == "" || (!*video && *mapOut == "") {
		fmt.Fprintln(os.Stderr, "usage: capture --config run.yaml --model-path model.pth --episode id --scene scene.glb (--video | --map out.png)")
		os.Exit(2)
	}

	ctx := context.Background()

	sim, err := simclient.New(*simAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to simulator at %s: %v\n", *simAddr, err)
		os.Exit(1)
	}
	defer sim.Close()

	ev, err := evaluator.NewSimEvaluator(ctx, splitPaths(*configs), *inputType, *modelPath, *physics, sim)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *video {
		path, err := ev.GenerateVideo(ctx, *episodeID, *sceneID, evaluator.VideoOptions{
			AgentSeed: *seed,
			VideoDir:  *videoDir,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote video to %s\n", path)
	}

	if *mapOut != "" {
		if err := captureMap(ctx, ev, *episodeID, *sceneID, *seed, *mapHeight, *mapOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote map to %s\n", *mapOut)
	}
}

// #endregion main

// #region map-capture

func captureMap(ctx context.Context, ev *evaluator.SimEvaluator, episodeID, sceneID string, seed int64, height int, outPath string) error {
	m, err := ev.GenerateMap(ctx, episodeID, sceneID, seed, height)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create map dir: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := m.EncodePNG(f); err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	return nil
}

// #endregion map-capture

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
