package endpoint

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"quorumdb/internal/cluster"
	clusterpb "quorumdb/internal/transport/gen/clusterpb"
)

// ClientEventServer exposes the client-facing surface. Unlike the peer
// protocol, failed writes here are real gRPC errors: a client asked for
// something and did not get it.
type ClientEventServer struct {
	clusterpb.UnimplementedClientEventServiceServer
	coordinator *cluster.Coordinator
}

func NewClientEventServer(c *cluster.Coordinator) *ClientEventServer {
	return &ClientEventServer{coordinator: c}
}

func (s *ClientEventServer) Write(ctx context.Context, req *clusterpb.WriteRequest) (*clusterpb.WriteResponse, error) {
	slog.Debug("write request received", "request_id", req.GetRequestId())

	rec, err := s.coordinator.Write(ctx, req.GetPayload())
	if err != nil {
		return nil, writeError(err)
	}

	return &clusterpb.WriteResponse{Success: true, Generation: rec.Generation}, nil
}

func writeError(err error) error {
	switch {
	case errors.Is(err, cluster.ErrNotLeader):
		return status.Error(codes.FailedPrecondition, "not leader")
	case errors.Is(err, cluster.ErrStaleGeneration):
		return status.Error(codes.FailedPrecondition, "stale generation")
	case errors.Is(err, cluster.ErrQuorumLost):
		return status.Error(codes.Unavailable, "quorum lost")
	case errors.Is(err, cluster.ErrLeaseExpired):
		return status.Error(codes.Unavailable, "lease expired")
	case errors.Is(err, cluster.ErrReplicationTimeout):
		return status.Error(codes.Unavailable, "replication timeout")
	case errors.Is(err, cluster.ErrShuttingDown):
		return status.Error(codes.Unavailable, "shutting down")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Errorf(codes.Internal, "write failed: %v", err)
	}
}

func (s *ClientEventServer) GetStatus(ctx context.Context, req *clusterpb.StatusRequest) (*clusterpb.StatusResponse, error) {
	st := s.coordinator.Status()

	return &clusterpb.StatusResponse{
		Role:             st.Role.String(),
		Generation:       st.Generation,
		HealthyNodeCount: uint32(st.HealthyNodeCount),
		QuorumSize:       uint32(st.QuorumSize),
		HasQuorum:        st.HasQuorum,
		LeaseValid:       st.LeaseValid,
		LeaderId:         st.LeaderID,
	}, nil
}
