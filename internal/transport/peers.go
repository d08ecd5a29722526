package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"quorumdb/internal/cluster/ports"
	"quorumdb/internal/store"
	clusterpb "quorumdb/internal/transport/gen/clusterpb"
)

// PeerManager dials every remote member once and hands out typed clients.
// It implements the coordinator's outbound port.
type PeerManager struct {
	localID uint64
	conns   map[uint64]*grpc.ClientConn
	clients map[uint64]*peerClient
}

func NewPeerManager(localID uint64, peers map[uint64]string) (*PeerManager, error) {
	m := &PeerManager{
		localID: localID,
		conns:   make(map[uint64]*grpc.ClientConn),
		clients: make(map[uint64]*peerClient),
	}

	for id, addr := range peers {
		if id == localID {
			continue
		}
		conn, err := dialPeer(addr)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("dial peer %d at %s: %w", id, addr, err)
		}
		m.conns[id] = conn
		m.clients[id] = &peerClient{
			id:     id,
			client: clusterpb.NewClusterTransportServiceClient(conn),
		}
		slog.Debug("peer client created", "node_id", localID, "peer", id, "addr", addr)
	}

	return m, nil
}

func dialPeer(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             5 * time.Second,
			PermitWithoutStream: true,
		}))
}

func (m *PeerManager) Peer(id uint64) (ports.PeerClient, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, fmt.Errorf("unknown peer %d", id)
	}
	return c, nil
}

func (m *PeerManager) PeerIDs() []uint64 {
	ids := make([]uint64, 0, len(m.clients))
	for id := range m.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *PeerManager) Close() error {
	var firstErr error
	for id, conn := range m.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close peer %d: %w", id, err)
		}
	}
	return firstErr
}

type peerClient struct {
	id     uint64
	client clusterpb.ClusterTransportServiceClient
}

func (p *peerClient) Ping(ctx context.Context, nodeID uint64, generation uint64) (bool, uint64, error) {
	resp, err := p.client.Ping(ctx, &clusterpb.PingRequest{
		NodeId:     nodeID,
		Generation: generation,
	})
	if err != nil {
		return false, 0, err
	}
	return resp.GetHealthy(), resp.GetGeneration(), nil
}

func (p *peerClient) RequestVote(ctx context.Context, candidateID uint64, proposedGeneration uint64) (bool, uint64, error) {
	resp, err := p.client.RequestVote(ctx, &clusterpb.VoteRequest{
		CandidateId:        candidateID,
		ProposedGeneration: proposedGeneration,
	})
	if err != nil {
		return false, 0, err
	}
	return resp.GetGranted(), resp.GetGeneration(), nil
}

func (p *peerClient) RenewLease(ctx context.Context, leaderID uint64, generation uint64) (bool, uint64, error) {
	resp, err := p.client.RenewLease(ctx, &clusterpb.RenewLeaseRequest{
		LeaderId:   leaderID,
		Generation: generation,
	})
	if err != nil {
		return false, 0, err
	}
	return resp.GetAck(), resp.GetGeneration(), nil
}

func (p *peerClient) Replicate(ctx context.Context, leaderID uint64, generation uint64, rec store.Record) (bool, uint64, error) {
	resp, err := p.client.Replicate(ctx, &clusterpb.ReplicateRequest{
		LeaderId:   leaderID,
		Generation: generation,
		RecordId:   rec.ID,
		Payload:    rec.Payload,
	})
	if err != nil {
		return false, 0, err
	}
	return resp.GetAccepted(), resp.GetGeneration(), nil
}

func (p *peerClient) FetchRecords(ctx context.Context, nodeID uint64) ([]store.Record, uint64, error) {
	resp, err := p.client.FetchRecords(ctx, &clusterpb.FetchRecordsRequest{NodeId: nodeID})
	if err != nil {
		return nil, 0, err
	}

	records := make([]store.Record, 0, len(resp.GetRecords()))
	for _, r := range resp.GetRecords() {
		records = append(records, store.Record{
			ID:         r.GetId(),
			Payload:    r.GetPayload(),
			Generation: r.GetGeneration(),
		})
	}
	return records, resp.GetGeneration(), nil
}
