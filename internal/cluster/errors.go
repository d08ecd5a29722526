package cluster

import "errors"

var (
	// ErrNotLeader is returned for writes on a node that is not the leader.
	ErrNotLeader = errors.New("not leader")

	// ErrQuorumLost is returned when fewer than a majority of members are
	// reachable, so no write or election can safely proceed.
	ErrQuorumLost = errors.New("quorum lost")

	// ErrStaleGeneration is returned when an operation was started under a
	// generation that has since been superseded.
	ErrStaleGeneration = errors.New("stale generation")

	// ErrLeaseExpired is returned when the leadership lease lapsed before
	// the operation could complete.
	ErrLeaseExpired = errors.New("lease expired")

	// ErrReplicationTimeout is returned when a write did not gather quorum
	// acknowledgments within the replication deadline.
	ErrReplicationTimeout = errors.New("replication timeout")

	ErrShuttingDown = errors.New("shutting down")
)
