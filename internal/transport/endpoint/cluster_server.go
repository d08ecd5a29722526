package endpoint

import (
	"context"

	"quorumdb/internal/cluster"
	"quorumdb/internal/store"
	clusterpb "quorumdb/internal/transport/gen/clusterpb"
)

// ClusterTransportServer exposes the peer-to-peer protocol. Protocol
// refusals (stale generation, vote denied) travel as response flags with
// the local generation attached, never as gRPC errors: the caller needs to
// see the generation to know it has been superseded.
type ClusterTransportServer struct {
	clusterpb.UnimplementedClusterTransportServiceServer
	coordinator *cluster.Coordinator
}

func NewClusterTransportServer(c *cluster.Coordinator) *ClusterTransportServer {
	return &ClusterTransportServer{coordinator: c}
}

func (s *ClusterTransportServer) Ping(ctx context.Context, req *clusterpb.PingRequest) (*clusterpb.PingResponse, error) {
	healthy, gen := s.coordinator.HandlePing(req.GetNodeId(), req.GetGeneration())
	return &clusterpb.PingResponse{Healthy: healthy, Generation: gen}, nil
}

func (s *ClusterTransportServer) RequestVote(ctx context.Context, req *clusterpb.VoteRequest) (*clusterpb.VoteResponse, error) {
	granted, gen := s.coordinator.HandleRequestVote(req.GetCandidateId(), req.GetProposedGeneration())
	return &clusterpb.VoteResponse{Granted: granted, Generation: gen}, nil
}

func (s *ClusterTransportServer) RenewLease(ctx context.Context, req *clusterpb.RenewLeaseRequest) (*clusterpb.RenewLeaseResponse, error) {
	ack, gen := s.coordinator.HandleRenewLease(req.GetLeaderId(), req.GetGeneration())
	return &clusterpb.RenewLeaseResponse{Ack: ack, Generation: gen}, nil
}

func (s *ClusterTransportServer) Replicate(ctx context.Context, req *clusterpb.ReplicateRequest) (*clusterpb.ReplicateResponse, error) {
	rec := store.Record{
		ID:         req.GetRecordId(),
		Payload:    req.GetPayload(),
		Generation: req.GetGeneration(),
	}
	accepted, gen := s.coordinator.HandleReplicate(req.GetLeaderId(), req.GetGeneration(), rec)
	return &clusterpb.ReplicateResponse{Accepted: accepted, Generation: gen}, nil
}

func (s *ClusterTransportServer) FetchRecords(ctx context.Context, req *clusterpb.FetchRecordsRequest) (*clusterpb.FetchRecordsResponse, error) {
	records, gen := s.coordinator.HandleFetchRecords(req.GetNodeId())

	out := make([]*clusterpb.CommittedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, &clusterpb.CommittedRecord{
			Id:         r.ID,
			Payload:    r.Payload,
			Generation: r.Generation,
		})
	}
	return &clusterpb.FetchRecordsResponse{Records: out, Generation: gen}, nil
}
