package metrics

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sampleCollection() *Collection {
	c := NewCollection()
	c.Add(Key("1", "castle.glb"), EpisodeMetrics{"spl": 0.8, "success": 1, "distance_to_goal": 0.2})
	c.Add(Key("2", "castle.glb"), EpisodeMetrics{"spl": 0.4, "success": 0, "distance_to_goal": 1.6})
	c.Add(Key("3", "apartment.glb"), EpisodeMetrics{"spl": 0.6, "success": 1, "distance_to_goal": 0.5})
	return c
}

func TestComputeAvg(t *testing.T) {
	avg, err := ComputeAvg(sampleCollection())
	if err != nil {
		t.Fatalf("ComputeAvg: %v", err)
	}
	if !almostEqual(avg["spl"], 0.6) {
		t.Fatalf("spl mean: got %v, want 0.6", avg["spl"])
	}
	if !almostEqual(avg["success"], 2.0/3.0) {
		t.Fatalf("success mean: got %v", avg["success"])
	}
	if len(avg) != 3 {
		t.Fatalf("expected 3 aggregate metrics, got %d", len(avg))
	}
}

func TestComputeAvgDividesByTotalEpisodeCount(t *testing.T) {
	// A metric absent from one episode still divides by the full count.
	c := NewCollection()
	c.Add(Key("1", "a.glb"), EpisodeMetrics{"spl": 1.0, "collisions": 4})
	c.Add(Key("2", "a.glb"), EpisodeMetrics{"spl": 0.5})

	avg, err := ComputeAvg(c)
	if err != nil {
		t.Fatalf("ComputeAvg: %v", err)
	}
	if !almostEqual(avg["spl"], 0.75) {
		t.Fatalf("spl mean: got %v", avg["spl"])
	}
	if !almostEqual(avg["collisions"], 2.0) {
		t.Fatalf("collisions mean: got %v, want 2", avg["collisions"])
	}
}

func TestComputeAvgEmpty(t *testing.T) {
	if _, err := ComputeAvg(NewCollection()); !errors.Is(err, ErrNoEpisodes) {
		t.Fatalf("expected ErrNoEpisodes, got %v", err)
	}
	if _, err := ComputeAvg(nil); !errors.Is(err, ErrNoEpisodes) {
		t.Fatalf("expected ErrNoEpisodes for nil collection, got %v", err)
	}
}

func TestExtract(t *testing.T) {
	c := sampleCollection()
	got, err := Extract(c, []string{"spl", "success"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.Len() != c.Len() {
		t.Fatalf("episode count changed: %d vs %d", got.Len(), c.Len())
	}
	wantKeys := c.Keys()
	for i, k := range got.Keys() {
		if k != wantKeys[i] {
			t.Fatalf("episode order changed at %d: %s vs %s", i, k, wantKeys[i])
		}
		m, _ := got.Get(k)
		if len(m) != 2 {
			t.Fatalf("episode %s: expected 2 metrics, got %d", k, len(m))
		}
		src, _ := c.Get(k)
		if m["spl"] != src["spl"] || m["success"] != src["success"] {
			t.Fatalf("episode %s: values differ from source", k)
		}
		if _, ok := m["distance_to_goal"]; ok {
			t.Fatalf("episode %s: unrequested metric kept", k)
		}
	}
}

func TestExtractMissingMetric(t *testing.T) {
	c := sampleCollection()
	c.Add(Key("4", "castle.glb"), EpisodeMetrics{"success": 0})

	_, err := Extract(c, []string{"spl"})
	var missing *MissingMetricError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingMetricError, got %v", err)
	}
	if missing.Episode != Key("4", "castle.glb") || missing.Metric != "spl" {
		t.Fatalf("wrong error detail: %+v", missing)
	}
}

func TestCollectionAddReplacesInPlace(t *testing.T) {
	c := NewCollection()
	c.Add("1,a.glb", EpisodeMetrics{"spl": 0.1})
	c.Add("2,a.glb", EpisodeMetrics{"spl": 0.2})
	c.Add("1,a.glb", EpisodeMetrics{"spl": 0.9})

	if c.Len() != 2 {
		t.Fatalf("expected 2 episodes, got %d", c.Len())
	}
	if keys := c.Keys(); keys[0] != "1,a.glb" || keys[1] != "2,a.glb" {
		t.Fatalf("re-add changed order: %v", keys)
	}
	m, _ := c.Get("1,a.glb")
	if m["spl"] != 0.9 {
		t.Fatalf("re-add did not replace value: %v", m["spl"])
	}
}
