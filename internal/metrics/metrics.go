package metrics

// #region imports
import (
	"errors"
	"fmt"
)

// #endregion imports

// #region types
// EpisodeMetrics maps metric name to its numeric value for one episode.
type EpisodeMetrics map[string]float64

// Key builds the canonical episode identifier "<episode-id>,<scene-id>".
func Key(episodeID, sceneID string) string {
	return episodeID + "," + sceneID
}

// Collection holds per-episode metrics keyed by episode identifier,
// preserving the order episodes were added in. Plain maps would lose that
// order, and extraction must keep it.
type Collection struct {
	order []string
	items map[string]EpisodeMetrics
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{items: make(map[string]EpisodeMetrics)}
}

// Add stores metrics under key. Re-adding an existing key replaces the
// metrics without changing its position.
func (c *Collection) Add(key string, m EpisodeMetrics) {
	if _, ok := c.items[key]; !ok {
		c.order = append(c.order, key)
	}
	c.items[key] = m
}

// Get returns the metrics stored under key.
func (c *Collection) Get(key string) (EpisodeMetrics, bool) {
	m, ok := c.items[key]
	return m, ok
}

// Len returns the number of episodes in the collection.
func (c *Collection) Len() int {
	return len(c.order)
}

// Keys returns the episode identifiers in insertion order.
func (c *Collection) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// #endregion types

// #region errors
// ErrNoEpisodes is returned when an aggregate is requested over an empty
// collection.
var ErrNoEpisodes = errors.New("no episodes to aggregate")

// MissingMetricError reports a requested metric name absent from one
// episode's metrics during extraction.
type MissingMetricError struct {
	Episode string
	Metric  string
}

func (e *MissingMetricError) Error() string {
	return fmt.Sprintf("episode %s has no metric %q", e.Episode, e.Metric)
}

// #endregion errors

// #region compute-avg
// ComputeAvg returns the arithmetic mean of every metric name that appears
// in at least one episode. A name missing from some episode simply does not
// contribute to that episode's term; the divisor is always the total episode
// count. An empty collection returns ErrNoEpisodes.
func ComputeAvg(c *Collection) (map[string]float64, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrNoEpisodes
	}
	sums := make(map[string]float64)
	for _, key := range c.order {
		for name, v := range c.items[key] {
			sums[name] += v
		}
	}
	n := float64(c.Len())
	avg := make(map[string]float64, len(sums))
	for name, sum := range sums {
		avg[name] = sum / n
	}
	return avg, nil
}

// #endregion compute-avg

// #region extract
// Extract returns a new collection with the same episode keys in the same
// order, each narrowed to exactly the named metrics. A name absent from any
// episode fails with a MissingMetricError.
func Extract(c *Collection, names []string) (*Collection, error) {
	out := NewCollection()
	for _, key := range c.order {
		src := c.items[key]
		dst := make(EpisodeMetrics, len(names))
		for _, name := range names {
			v, ok := src[name]
			if !ok {
				return nil, &MissingMetricError{Episode: key, Metric: name}
			}
			dst[name] = v
		}
		out.Add(key, dst)
	}
	return out, nil
}

// #endregion extract
