package evaluator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// #region helpers
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "eval.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

const baseConfig = `
simulator:
  scene_dataset: data/scene_datasets/habitat-test-scenes
  forward_step_size: 0.25
physics_simulator:
  forward_step_size: 0.1
`

// #endregion helpers

// #region base-tests
func TestBaseLoadsConfigOnly(t *testing.T) {
	p := writeConfig(t, baseConfig)

	b, err := NewBase([]string{p}, "rgbd", "models/agent.pth", false)
	if err != nil {
		t.Fatalf("NewBase: %v", err)
	}
	if b.Config.Simulator.SceneDataset != "data/scene_datasets/habitat-test-scenes" {
		t.Fatalf("config not loaded: %q", b.Config.Simulator.SceneDataset)
	}
	if b.InputType != "rgbd" || b.ModelPath != "models/agent.pth" || b.EnablePhysics {
		t.Fatalf("construction inputs not retained: %+v", b)
	}
	// Construction must not apply the physics overlay.
	if b.Config.Simulator.ForwardStepSize != 0.25 {
		t.Fatalf("physics overlay applied at construction: %v", b.Config.Simulator.ForwardStepSize)
	}
}

func TestBaseConfigLoadError(t *testing.T) {
	if _, err := NewBase([]string{filepath.Join(t.TempDir(), "nope.yaml")}, "rgb", "m.pth", false); err == nil {
		t.Fatal("expected configuration load error")
	}
}

func TestBaseOperationsNotImplemented(t *testing.T) {
	p := writeConfig(t, baseConfig)
	b, err := NewBase([]string{p}, "rgb", "m.pth", false)
	if err != nil {
		t.Fatalf("NewBase: %v", err)
	}
	ctx := context.Background()

	if _, err := b.GenerateVideo(ctx, "1", "castle.glb", DefaultVideoOptions()); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("GenerateVideo: expected ErrNotImplemented, got %v", err)
	}
	if _, err := b.GenerateMap(ctx, "1", "castle.glb", DefaultAgentSeed, DefaultMapHeight); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("GenerateMap: expected ErrNotImplemented, got %v", err)
	}
	if _, err := b.EvaluateAndGetMaps(ctx, DefaultEvalOptions()); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("EvaluateAndGetMaps: expected ErrNotImplemented, got %v", err)
	}
}

// #endregion base-tests

// #region defaults-tests
func TestDefaultEvalOptions(t *testing.T) {
	opts := DefaultEvalOptions()
	if opts.EpisodeIDLast != "-1" {
		t.Fatalf("fresh-run sentinel: %q", opts.EpisodeIDLast)
	}
	if opts.SceneIDLast != "data/scene_datasets/habitat-test-scenes/skokloster-castle.glb" {
		t.Fatalf("default scene: %q", opts.SceneIDLast)
	}
	if opts.MapHeight != 200 || opts.AgentSeed != 7 || opts.LogDir != "logs/" {
		t.Fatalf("defaults drifted: %+v", opts)
	}
}

// #endregion defaults-tests

// compile-time interface checks
var (
	_ Evaluator = (*Base)(nil)
	_ Evaluator = (*SimEvaluator)(nil)
)
