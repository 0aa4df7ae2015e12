package results

import (
	"path/filepath"
	"testing"

	"github.com/navkit/nav-eval/go-harness/internal/metrics"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetRun(t *testing.T) {
	s := tempStore(t)

	id, err := s.CreateRun([]string{"configs/pointnav.yaml", "configs/physics.yaml"}, "rgbd", "models/agent.pth", true)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty run ID")
	}

	rec, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if len(rec.ConfigPaths) != 2 || rec.ConfigPaths[1] != "configs/physics.yaml" {
		t.Fatalf("config paths round trip: %v", rec.ConfigPaths)
	}
	if rec.InputType != "rgbd" || rec.ModelPath != "models/agent.pth" {
		t.Fatalf("run fields round trip: %+v", rec)
	}
	if !rec.EnablePhysics {
		t.Fatal("physics flag lost")
	}
	if !rec.CompletedAt.IsZero() {
		t.Fatal("new run should not be completed")
	}
}

func TestFinishRun(t *testing.T) {
	s := tempStore(t)
	id, err := s.CreateRun([]string{"c.yaml"}, "rgb", "m.pth", false)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	if err := s.FinishRun(id); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	rec, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if rec.CompletedAt.IsZero() {
		t.Fatal("completion time not stamped")
	}

	if err := s.FinishRun("no-such-run"); err == nil {
		t.Fatal("expected error for unknown run")
	}
}

func TestRecordAndResume(t *testing.T) {
	s := tempStore(t)
	id, err := s.CreateRun([]string{"c.yaml"}, "depth", "m.pth", false)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	if _, _, ok, err := s.LastCompleted(id); err != nil || ok {
		t.Fatalf("expected no checkpoint on fresh run, got ok=%v err=%v", ok, err)
	}

	if err := s.RecordEpisode(id, "1", "castle.glb", map[string]float64{"spl": 0.8}); err != nil {
		t.Fatalf("RecordEpisode: %v", err)
	}
	if err := s.RecordEpisode(id, "2", "castle.glb", map[string]float64{"spl": 0.4}); err != nil {
		t.Fatalf("RecordEpisode: %v", err)
	}

	ep, scene, ok, err := s.LastCompleted(id)
	if err != nil {
		t.Fatalf("LastCompleted: %v", err)
	}
	if !ok || ep != "2" || scene != "castle.glb" {
		t.Fatalf("wrong checkpoint: %s,%s ok=%v", ep, scene, ok)
	}
}

func TestRecordEpisodeIdempotent(t *testing.T) {
	s := tempStore(t)
	id, _ := s.CreateRun([]string{"c.yaml"}, "rgb", "m.pth", false)

	if err := s.RecordEpisode(id, "1", "a.glb", map[string]float64{"spl": 0.1}); err != nil {
		t.Fatalf("RecordEpisode: %v", err)
	}
	// Re-running an episode after a crash replaces the old row.
	if err := s.RecordEpisode(id, "1", "a.glb", map[string]float64{"spl": 0.9}); err != nil {
		t.Fatalf("RecordEpisode replace: %v", err)
	}

	c, err := s.EpisodeMetrics(id)
	if err != nil {
		t.Fatalf("EpisodeMetrics: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 episode, got %d", c.Len())
	}
	m, _ := c.Get(metrics.Key("1", "a.glb"))
	if m["spl"] != 0.9 {
		t.Fatalf("replacement lost: %v", m["spl"])
	}
}

func TestEpisodeMetricsOrder(t *testing.T) {
	s := tempStore(t)
	id, _ := s.CreateRun([]string{"c.yaml"}, "rgb", "m.pth", false)

	for _, ep := range []string{"3", "1", "2"} {
		if err := s.RecordEpisode(id, ep, "a.glb", map[string]float64{"success": 1}); err != nil {
			t.Fatalf("RecordEpisode %s: %v", ep, err)
		}
	}

	c, err := s.EpisodeMetrics(id)
	if err != nil {
		t.Fatalf("EpisodeMetrics: %v", err)
	}
	keys := c.Keys()
	want := []string{"3,a.glb", "1,a.glb", "2,a.glb"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("insertion order lost: %v", keys)
		}
	}
}

func TestListRuns(t *testing.T) {
	s := tempStore(t)
	if _, err := s.CreateRun([]string{"a.yaml"}, "rgb", "m.pth", false); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if _, err := s.CreateRun([]string{"b.yaml"}, "depth", "m.pth", true); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}
