package endpoint

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"quorumdb/internal/clock"
	"quorumdb/internal/cluster"
	"quorumdb/internal/cluster/ports"
	"quorumdb/internal/store"
	clusterpb "quorumdb/internal/transport/gen/clusterpb"
)

type emptyTransport struct{}

func (emptyTransport) Peer(uint64) (ports.PeerClient, error) { return nil, errors.New("no peers") }
func (emptyTransport) PeerIDs() []uint64                     { return nil }
func (emptyTransport) Close() error                          { return nil }

type memVoteLog struct{ gen uint64 }

func (l *memVoteLog) HighestGeneration() (uint64, error) { return l.gen, nil }
func (l *memVoteLog) SaveGeneration(g uint64) error      { l.gen = g; return nil }
func (l *memVoteLog) Close() error                       { return nil }

func newCoordinator() *cluster.Coordinator {
	return cluster.New(emptyTransport{}, &memVoteLog{}, store.NewStore(),
		clock.Real{}, cluster.Config{
			NodeID:             1,
			MemberCount:        3,
			HeartbeatInterval:  50 * time.Millisecond,
			LeaseTimeout:       250 * time.Millisecond,
			RPCTimeout:         25 * time.Millisecond,
			ReplicationTimeout: 50 * time.Millisecond,
			BackoffMin:         10 * time.Millisecond,
			BackoffMax:         40 * time.Millisecond,
		})
}

func TestClusterEndpoint_VoteThenReplicate(t *testing.T) {
	coord := newCoordinator()
	srv := NewClusterTransportServer(coord)
	ctx := context.Background()

	vote, err := srv.RequestVote(ctx, &clusterpb.VoteRequest{CandidateId: 2, ProposedGeneration: 5})
	if err != nil {
		t.Fatalf("RequestVote: %v", err)
	}
	if !vote.GetGranted() || vote.GetGeneration() != 5 {
		t.Fatalf("expected grant at 5, got %+v", vote)
	}

	// Second candidate for the same generation is refused, as a flag.
	vote, err = srv.RequestVote(ctx, &clusterpb.VoteRequest{CandidateId: 3, ProposedGeneration: 5})
	if err != nil {
		t.Fatalf("RequestVote: %v", err)
	}
	if vote.GetGranted() {
		t.Fatal("second vote granted")
	}

	rep, err := srv.Replicate(ctx, &clusterpb.ReplicateRequest{
		LeaderId:   2,
		Generation: 5,
		RecordId:   "r1",
		Payload:    []byte("v"),
	})
	if err != nil {
		t.Fatalf("Replicate: %v", err)
	}
	if !rep.GetAccepted() {
		t.Fatal("replicate refused for current generation")
	}

	// A stale leader's record comes back refused with the local
	// generation attached.
	rep, err = srv.Replicate(ctx, &clusterpb.ReplicateRequest{
		LeaderId:   9,
		Generation: 3,
		RecordId:   "r2",
		Payload:    []byte("v"),
	})
	if err != nil {
		t.Fatalf("Replicate: %v", err)
	}
	if rep.GetAccepted() || rep.GetGeneration() != 5 {
		t.Fatalf("expected fenced response at generation 5, got %+v", rep)
	}

	fetch, err := srv.FetchRecords(ctx, &clusterpb.FetchRecordsRequest{NodeId: 3})
	if err != nil {
		t.Fatalf("FetchRecords: %v", err)
	}
	if len(fetch.GetRecords()) != 1 || fetch.GetRecords()[0].GetId() != "r1" {
		t.Fatalf("unexpected fetch result: %+v", fetch.GetRecords())
	}
}

func TestClusterEndpoint_PingReportsStaleSender(t *testing.T) {
	coord := newCoordinator()
	srv := NewClusterTransportServer(coord)
	ctx := context.Background()

	if _, err := srv.RequestVote(ctx, &clusterpb.VoteRequest{CandidateId: 2, ProposedGeneration: 4}); err != nil {
		t.Fatal(err)
	}

	pong, err := srv.Ping(ctx, &clusterpb.PingRequest{NodeId: 3, Generation: 2})
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong.GetHealthy() {
		t.Fatal("stale sender must be told it is behind")
	}
	if pong.GetGeneration() != 4 {
		t.Fatalf("expected generation 4, got %d", pong.GetGeneration())
	}
}

func TestClientEndpoint_WriteOnFollowerFailsPrecondition(t *testing.T) {
	coord := newCoordinator()
	srv := NewClientEventServer(coord)

	_, err := srv.Write(context.Background(), &clusterpb.WriteRequest{
		Payload:   []byte("x"),
		RequestId: "req-1",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestClientEndpoint_GetStatus(t *testing.T) {
	coord := newCoordinator()
	srv := NewClientEventServer(coord)

	resp, err := srv.GetStatus(context.Background(), &clusterpb.StatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if resp.GetRole() != "follower" {
		t.Fatalf("expected follower, got %q", resp.GetRole())
	}
	if resp.GetQuorumSize() != 2 {
		t.Fatalf("expected quorum size 2, got %d", resp.GetQuorumSize())
	}
	if resp.GetHasQuorum() {
		t.Fatal("fresh single node must not claim quorum")
	}
}

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{cluster.ErrNotLeader, codes.FailedPrecondition},
		{cluster.ErrStaleGeneration, codes.FailedPrecondition},
		{cluster.ErrQuorumLost, codes.Unavailable},
		{cluster.ErrLeaseExpired, codes.Unavailable},
		{cluster.ErrReplicationTimeout, codes.Unavailable},
		{cluster.ErrShuttingDown, codes.Unavailable},
		{errors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		if got := status.Code(writeError(tc.err)); got != tc.code {
			t.Errorf("writeError(%v) = %v, want %v", tc.err, got, tc.code)
		}
	}
}
