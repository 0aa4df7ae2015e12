package fixture

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/navkit/nav-eval/go-harness/internal/metrics"
)

// #endregion imports

// #region fixture-types

// Fixture is a recorded evaluation run: enough data to replay aggregation
// and resume logic without a live simulator service.
type Fixture struct {
	Description      string             `json:"description"`
	PhysicsAvailable bool               `json:"physics_available"`
	Episodes         []Episode          `json:"episodes"`
	ExpectedAvg      map[string]float64 `json:"expected_avg,omitempty"`
}

// Episode is one recorded episode outcome.
type Episode struct {
	EpisodeID string             `json:"episode_id"`
	SceneID   string             `json:"scene_id"`
	Metrics   map[string]float64 `json:"metrics"`
	Map       *Grid              `json:"map,omitempty"`
	VideoPath string             `json:"video_path,omitempty"`
}

// Grid is a JSON-serializable top-down map raster.
type Grid struct {
	Height int    `json:"height"`
	Width  int    `json:"width"`
	Cells  []byte `json:"cells"` // base64 via encoding/json
}

// #endregion fixture-types

// #region load-save

// Load reads a fixture from a JSON file.
func Load(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load fixture %s: %w", path, err)
	}
	var fx Fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &fx, nil
}

// Save writes a fixture as indented JSON.
func Save(path string, fx *Fixture) error {
	raw, err := json.MarshalIndent(fx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("save fixture %s: %w", path, err)
	}
	return nil
}

// FromCollection builds a fixture out of an ordered metrics collection,
// computing the expected aggregate alongside. Episode keys must be in
// "<episode-id>,<scene-id>" form.
func FromCollection(description string, c *metrics.Collection) (*Fixture, error) {
	avg, err := metrics.ComputeAvg(c)
	if err != nil {
		return nil, err
	}
	fx := &Fixture{Description: description, ExpectedAvg: avg}
	for _, key := range c.Keys() {
		episodeID, sceneID, err := splitKey(key)
		if err != nil {
			return nil, err
		}
		m, _ := c.Get(key)
		fx.Episodes = append(fx.Episodes, Episode{
			EpisodeID: episodeID,
			SceneID:   sceneID,
			Metrics:   m,
		})
	}
	return fx, nil
}

// Collection returns the fixture's episodes as an ordered collection.
func (fx *Fixture) Collection() *metrics.Collection {
	c := metrics.NewCollection()
	for _, ep := range fx.Episodes {
		c.Add(metrics.Key(ep.EpisodeID, ep.SceneID), ep.Metrics)
	}
	return c
}

func splitKey(key string) (episodeID, sceneID string, err error) {
	for i := 0; i < len(key); i++ {
		if key[i] == ',' {
			return key[:i], key[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("episode key %q is not <episode-id>,<scene-id>", key)
}

// #endregion load-save
