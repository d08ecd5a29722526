package ports

import (
	"context"

	"quorumdb/internal/store"
)

// PeerClient is the outbound RPC surface toward a single cluster member.
// Every call returns the peer's current generation alongside the result so
// the caller can detect that it has been superseded.
type PeerClient interface {
	Ping(ctx context.Context, nodeID uint64, generation uint64) (healthy bool, peerGeneration uint64, err error)
	RequestVote(ctx context.Context, candidateID uint64, proposedGeneration uint64) (granted bool, peerGeneration uint64, err error)
	RenewLease(ctx context.Context, leaderID uint64, generation uint64) (ack bool, peerGeneration uint64, err error)
	Replicate(ctx context.Context, leaderID uint64, generation uint64, rec store.Record) (accepted bool, peerGeneration uint64, err error)
	FetchRecords(ctx context.Context, nodeID uint64) (records []store.Record, peerGeneration uint64, err error)
}

// Transport resolves peer IDs to clients. Implementations own connection
// lifecycle; a returned client may be cached.
type Transport interface {
	Peer(id uint64) (PeerClient, error)
	PeerIDs() []uint64
	Close() error
}

// VoteLog persists the highest generation this node has ever voted for or
// adopted. SaveGeneration must be durable before the vote reply leaves the
// node, otherwise a restart could double-vote within one generation.
type VoteLog interface {
	HighestGeneration() (uint64, error)
	SaveGeneration(generation uint64) error
	Close() error
}
