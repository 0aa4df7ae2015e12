package simclient

// #region imports
import (
	"context"
	"errors"
	"testing"

	pb "github.com/navkit/nav-eval/go-harness/gen/simpb"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// #endregion imports

// #region wire-tests
// Marshal and unmarshal through the generated bindings, which forces the
// file descriptor to build and the reflection tables to be consistent with
// the struct fields.
func TestGeneratedBindingsRoundTrip(t *testing.T) {
	in := &pb.RunEpisodeResponse{
		Metrics:   map[string]float64{"spl": 0.7, "distance_to_goal": 0.12},
		Map:       &pb.TopDownMap{Height: 2, Width: 3, Cells: []byte{0, 1, 2, 3, 4, 5}},
		VideoPath: "videos/ep5.mp4",
	}
	raw, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := &pb.RunEpisodeResponse{}
	if err := proto.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Metrics["spl"] != 0.7 || out.Metrics["distance_to_goal"] != 0.12 {
		t.Fatalf("metrics lost in transit: %v", out.Metrics)
	}
	if out.Map.GetHeight() != 2 || out.Map.GetWidth() != 3 || len(out.Map.GetCells()) != 6 {
		t.Fatalf("map lost in transit: %+v", out.Map)
	}
	if out.GetVideoPath() != "videos/ep5.mp4" {
		t.Fatalf("video path lost in transit: %q", out.GetVideoPath())
	}
}

func TestServiceDescriptor(t *testing.T) {
	svcs := pb.File_proto_simulator_proto.Services()
	if svcs.Len() != 1 {
		t.Fatalf("expected 1 service, got %d", svcs.Len())
	}
	methods := svcs.Get(0).Methods()
	for _, name := range []string{"ListEpisodes", "RunEpisode", "CheckPhysics"} {
		if methods.ByName(protoreflect.Name(name)) == nil {
			t.Fatalf("method %s missing from descriptor", name)
		}
	}
}

// #endregion wire-tests

// #region mock
type mockSimulatorService struct {
	pb.SimulatorServiceClient

	listResp *pb.ListEpisodesResponse
	listErr  error

	runResp *pb.RunEpisodeResponse
	runErr  error
	lastRun *pb.RunEpisodeRequest

	physicsResp *pb.CheckPhysicsResponse
	physicsErr  error
}

func (m *mockSimulatorService) ListEpisodes(_ context.Context, _ *pb.ListEpisodesRequest, _ ...grpc.CallOption) (*pb.ListEpisodesResponse, error) {
	return m.listResp, m.listErr
}

func (m *mockSimulatorService) RunEpisode(_ context.Context, in *pb.RunEpisodeRequest, _ ...grpc.CallOption) (*pb.RunEpisodeResponse, error) {
	m.lastRun = in
	return m.runResp, m.runErr
}

func (m *mockSimulatorService) CheckPhysics(_ context.Context, _ *pb.CheckPhysicsRequest, _ ...grpc.CallOption) (*pb.CheckPhysicsResponse, error) {
	return m.physicsResp, m.physicsErr
}

// #endregion mock

// #region constructor-tests
func TestNewWithService(t *testing.T) {
	c := NewWithService(&mockSimulatorService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close without connection: %v", err)
	}
}

// #endregion constructor-tests

// #region list-tests
func TestListEpisodes(t *testing.T) {
	mock := &mockSimulatorService{
		listResp: &pb.ListEpisodesResponse{
			Episodes: []*pb.EpisodeRef{
				{EpisodeId: "1", SceneId: "castle.glb"},
				{EpisodeId: "2", SceneId: "castle.glb"},
			},
		},
	}
	c := NewWithService(mock)

	refs, err := c.ListEpisodes(context.Background())
	if err != nil {
		t.Fatalf("ListEpisodes: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(refs))
	}
	if refs[0] != (EpisodeRef{EpisodeID: "1", SceneID: "castle.glb"}) {
		t.Fatalf("wrong first episode: %+v", refs[0])
	}
}

func TestListEpisodesError(t *testing.T) {
	c := NewWithService(&mockSimulatorService{listErr: errors.New("service down")})
	if _, err := c.ListEpisodes(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion list-tests

// #region run-tests
func TestRunEpisode(t *testing.T) {
	mock := &mockSimulatorService{
		runResp: &pb.RunEpisodeResponse{
			Metrics: map[string]float64{"spl": 0.7, "success": 1},
			Map:     &pb.TopDownMap{Height: 2, Width: 2, Cells: []byte{0, 1, 2, 3}},
		},
	}
	c := NewWithService(mock)

	out, err := c.RunEpisode(context.Background(), EpisodeSpec{
		EpisodeID: "5",
		SceneID:   "castle.glb",
		AgentSeed: 7,
		InputType: "rgbd",
		ModelPath: "models/agent.pth",
		MapHeight: 200,
	})
	if err != nil {
		t.Fatalf("RunEpisode: %v", err)
	}
	if out.Metrics["spl"] != 0.7 {
		t.Fatalf("metrics not passed through: %v", out.Metrics)
	}
	if out.Map == nil || out.Map.Height != 2 || out.Map.Width != 2 {
		t.Fatalf("map not decoded: %+v", out.Map)
	}
	if mock.lastRun.AgentSeed != 7 || mock.lastRun.MapHeight != 200 {
		t.Fatalf("request fields not forwarded: %+v", mock.lastRun)
	}
}

func TestRunEpisodeNoMap(t *testing.T) {
	mock := &mockSimulatorService{
		runResp: &pb.RunEpisodeResponse{Metrics: map[string]float64{"spl": 0.5}},
	}
	c := NewWithService(mock)

	out, err := c.RunEpisode(context.Background(), EpisodeSpec{EpisodeID: "1", SceneID: "a.glb"})
	if err != nil {
		t.Fatalf("RunEpisode: %v", err)
	}
	if out.Map != nil {
		t.Fatal("expected nil map when none requested")
	}
}

func TestRunEpisodeBadMap(t *testing.T) {
	mock := &mockSimulatorService{
		runResp: &pb.RunEpisodeResponse{
			Map: &pb.TopDownMap{Height: 3, Width: 3, Cells: []byte{0}},
		},
	}
	c := NewWithService(mock)

	if _, err := c.RunEpisode(context.Background(), EpisodeSpec{EpisodeID: "1", SceneID: "a.glb"}); err == nil {
		t.Fatal("expected error for malformed map")
	}
}

func TestRunEpisodeError(t *testing.T) {
	c := NewWithService(&mockSimulatorService{runErr: errors.New("scene missing")})
	if _, err := c.RunEpisode(context.Background(), EpisodeSpec{EpisodeID: "1", SceneID: "a.glb"}); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion run-tests

// #region physics-tests
func TestCheckPhysicsAvailable(t *testing.T) {
	c := NewWithService(&mockSimulatorService{physicsResp: &pb.CheckPhysicsResponse{Available: true}})
	if err := c.CheckPhysics(context.Background()); err != nil {
		t.Fatalf("CheckPhysics: %v", err)
	}
}

func TestCheckPhysicsUnavailable(t *testing.T) {
	c := NewWithService(&mockSimulatorService{
		physicsResp: &pb.CheckPhysicsResponse{Available: false, Reason: "import bullet failed"},
	})
	err := c.CheckPhysics(context.Background())
	if !errors.Is(err, ErrPhysicsUnavailable) {
		t.Fatalf("expected ErrPhysicsUnavailable, got %v", err)
	}
}

func TestCheckPhysicsRPCError(t *testing.T) {
	c := NewWithService(&mockSimulatorService{physicsErr: errors.New("unreachable")})
	err := c.CheckPhysics(context.Background())
	if err == nil || errors.Is(err, ErrPhysicsUnavailable) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

// #endregion physics-tests
