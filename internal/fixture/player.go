package fixture

// #region imports
import (
	"context"
	"fmt"

	"github.com/navkit/nav-eval/go-harness/internal/simclient"
	"github.com/navkit/nav-eval/go-harness/internal/topdown"
)

// #endregion imports

// #region player
// Player serves a recorded fixture through the same surface as the live
// simulator client, so the evaluation loop can replay a run offline.
type Player struct {
	fx *Fixture
}

// NewPlayer wraps a loaded fixture.
func NewPlayer(fx *Fixture) *Player {
	return &Player{fx: fx}
}

// ListEpisodes returns the recorded episodes in fixture order.
func (p *Player) ListEpisodes(context.Context) ([]simclient.EpisodeRef, error) {
	refs := make([]simclient.EpisodeRef, len(p.fx.Episodes))
	for i, ep := range p.fx.Episodes {
		refs[i] = simclient.EpisodeRef{EpisodeID: ep.EpisodeID, SceneID: ep.SceneID}
	}
	return refs, nil
}

// RunEpisode replays one recorded episode.
func (p *Player) RunEpisode(_ context.Context, spec simclient.EpisodeSpec) (simclient.EpisodeOutcome, error) {
	for _, ep := range p.fx.Episodes {
		if ep.EpisodeID != spec.EpisodeID || ep.SceneID != spec.SceneID {
			continue
		}
		out := simclient.EpisodeOutcome{Metrics: ep.Metrics}
		if spec.MapHeight > 0 && ep.Map != nil {
			m, err := topdown.FromBytes(ep.Map.Cells, ep.Map.Height, ep.Map.Width)
			if err != nil {
				return simclient.EpisodeOutcome{}, err
			}
			out.Map = m
		}
		if spec.RecordVideo {
			out.VideoPath = ep.VideoPath
		}
		return out, nil
	}
	return simclient.EpisodeOutcome{}, fmt.Errorf("episode %s,%s not in fixture", spec.EpisodeID, spec.SceneID)
}

// CheckPhysics reports the capability recorded in the fixture.
func (p *Player) CheckPhysics(context.Context) error {
	if !p.fx.PhysicsAvailable {
		return fmt.Errorf("%w: fixture recorded without physics", simclient.ErrPhysicsUnavailable)
	}
	return nil
}

// #endregion player
