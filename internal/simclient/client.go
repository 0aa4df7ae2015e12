package simclient

// #region imports
import (
	"context"
	"errors"
	"fmt"

	pb "github.com/navkit/nav-eval/go-harness/gen/simpb"
	"github.com/navkit/nav-eval/go-harness/internal/topdown"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #endregion imports

// #region types
// EpisodeRef identifies one episode in the configured dataset.
type EpisodeRef struct {
	EpisodeID string
	SceneID   string
}

// EpisodeSpec describes one episode run request to the simulator service.
type EpisodeSpec struct {
	EpisodeID     string
	SceneID       string
	AgentSeed     int64
	EnablePhysics bool
	InputType     string
	ModelPath     string
	MapHeight     int // 0 disables top-down map capture
	RecordVideo   bool
	VideoDir      string
}

// EpisodeOutcome is what the service reports back for one finished episode.
type EpisodeOutcome struct {
	Metrics   map[string]float64
	Map       *topdown.Map // nil when no map was requested
	VideoPath string       // empty when no video was recorded
}

// ErrPhysicsUnavailable reports that the service cannot load its physics
// simulator modules. CheckPhysics wraps it with the service-side reason.
var ErrPhysicsUnavailable = errors.New("physics simulator unavailable")

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the Python simulator/policy service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.SimulatorServiceClient
}

// #endregion client-struct

// #region constructor
// New connects to the simulator gRPC server.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewSimulatorServiceClient(conn),
	}, nil
}

// NewWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewWithService(svc pb.SimulatorServiceClient) *Client {
	return &Client{client: svc}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region list-episodes
// ListEpisodes returns the service's episode set in dataset order.
func (c *Client) ListEpisodes(ctx context.Context) ([]EpisodeRef, error) {
	resp, err := c.client.ListEpisodes(ctx, &pb.ListEpisodesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list episodes rpc: %w", err)
	}
	refs := make([]EpisodeRef, len(resp.Episodes))
	for i, e := range resp.Episodes {
		refs[i] = EpisodeRef{EpisodeID: e.EpisodeId, SceneID: e.SceneId}
	}
	return refs, nil
}

// #endregion list-episodes

// #region run-episode
// RunEpisode runs one full episode on the service and decodes the result.
func (c *Client) RunEpisode(ctx context.Context, spec EpisodeSpec) (EpisodeOutcome, error) {
	resp, err := c.client.RunEpisode(ctx, &pb.RunEpisodeRequest{
		EpisodeId:     spec.EpisodeID,
		SceneId:       spec.SceneID,
		AgentSeed:     spec.AgentSeed,
		EnablePhysics: spec.EnablePhysics,
		InputType:     spec.InputType,
		ModelPath:     spec.ModelPath,
		MapHeight:     int32(spec.MapHeight),
		RecordVideo:   spec.RecordVideo,
		VideoDir:      spec.VideoDir,
	})
	if err != nil {
		return EpisodeOutcome{}, fmt.Errorf("run episode rpc: %w", err)
	}

	out := EpisodeOutcome{
		Metrics:   resp.Metrics,
		VideoPath: resp.VideoPath,
	}
	if resp.Map != nil {
		m, err := topdown.FromBytes(resp.Map.Cells, int(resp.Map.Height), int(resp.Map.Width))
		if err != nil {
			return EpisodeOutcome{}, fmt.Errorf("episode %s,%s: %w", spec.EpisodeID, spec.SceneID, err)
		}
		out.Map = m
	}
	return out, nil
}

// #endregion run-episode

// #region check-physics
// CheckPhysics probes whether the service can import its physics modules.
func (c *Client) CheckPhysics(ctx context.Context) error {
	resp, err := c.client.CheckPhysics(ctx, &pb.CheckPhysicsRequest{})
	if err != nil {
		return fmt.Errorf("check physics rpc: %w", err)
	}
	if !resp.Available {
		return fmt.Errorf("%w: %s", ErrPhysicsUnavailable, resp.Reason)
	}
	return nil
}

// #endregion check-physics
