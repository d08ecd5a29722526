package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"quorumdb/internal/metrics"
	"quorumdb/internal/store"
)

// Write replicates a payload to a majority of the cluster. It returns the
// committed record only after a quorum holds it AND this node has
// re-confirmed, after the fan-out, that it is still the leader of the same
// generation with a live lease. Anything less and the record is discarded:
// the caller sees an error, never a maybe.
func (c *Coordinator) Write(ctx context.Context, payload []byte) (store.Record, error) {
	if c.shuttingDown.Load() {
		return store.Record{}, ErrShuttingDown
	}
	c.inFlight.Add(1)
	defer c.inFlight.Done()

	c.mu.Lock()

	if c.role != RoleLeader {
		c.mu.Unlock()
		metrics.WritesTotal.WithLabelValues("not_leader").Inc()
		return store.Record{}, ErrNotLeader
	}
	if !c.clock.Now().Before(c.leaseExpiry) {
		c.demoteLocked("lease_expired")
		c.mu.Unlock()
		metrics.WritesTotal.WithLabelValues("lease_expired").Inc()
		return store.Record{}, ErrLeaseExpired
	}
	if !c.hasQuorumLocked() {
		c.mu.Unlock()
		metrics.WritesTotal.WithLabelValues("quorum_lost").Inc()
		return store.Record{}, ErrQuorumLost
	}

	gen := c.generation
	rec := store.Record{
		ID:         fmt.Sprintf("%016x", c.idGen.Next()),
		Payload:    payload,
		Generation: gen,
	}
	c.store.StagePending(rec)

	peerIDs := c.transport.PeerIDs()
	c.mu.Unlock()

	start := c.clock.Now()
	acks, maxGen, maxGenSource := c.gatherReplicationAcks(ctx, peerIDs, gen, rec)
	metrics.ReplicationDuration.Observe(c.clock.Now().Sub(start).Seconds())
	metrics.ReplicationAcks.Observe(float64(acks + 1))

	c.mu.Lock()
	defer c.mu.Unlock()

	if maxGen > gen {
		// Discard before adopting: adoption sweeps the pending set only
		// when it actually moves the generation forward.
		c.store.Discard(rec.ID)
		metrics.RecordsDiscarded.Inc()
		c.adoptGenerationLocked(maxGen, maxGenSource)
		metrics.WritesTotal.WithLabelValues("stale_generation").Inc()
		return store.Record{}, ErrStaleGeneration
	}

	// Re-validate: the fan-out blocked without the lock, and anything may
	// have happened meanwhile.
	if c.role != RoleLeader || c.generation != gen {
		c.store.Discard(rec.ID)
		metrics.RecordsDiscarded.Inc()
		metrics.WritesTotal.WithLabelValues("not_leader").Inc()
		return store.Record{}, ErrNotLeader
	}
	if !c.clock.Now().Before(c.leaseExpiry) {
		c.store.Discard(rec.ID)
		metrics.RecordsDiscarded.Inc()
		c.demoteLocked("lease_expired")
		metrics.WritesTotal.WithLabelValues("lease_expired").Inc()
		return store.Record{}, ErrLeaseExpired
	}

	if acks+1 < c.quorumSize {
		slog.Warn("replication failed to reach quorum",
			"node_id", c.nodeID,
			"record_id", rec.ID,
			"acks", acks+1,
			"quorum_size", c.quorumSize,
		)
		c.store.Discard(rec.ID)
		metrics.RecordsDiscarded.Inc()
		c.demoteLocked("replication_timeout")
		metrics.WritesTotal.WithLabelValues("replication_timeout").Inc()
		return store.Record{}, ErrReplicationTimeout
	}

	c.store.Promote(rec.ID)
	metrics.WritesTotal.WithLabelValues("ok").Inc()

	slog.Debug("record committed",
		"node_id", c.nodeID,
		"record_id", rec.ID,
		"generation", gen,
		"acks", acks+1,
	)
	return rec, nil
}

func (c *Coordinator) gatherReplicationAcks(ctx context.Context, peerIDs []uint64, gen uint64, rec store.Record) (acks int, maxGen uint64, maxGenSource uint64) {
	type result struct {
		accepted bool
		peerGen  uint64
	}

	results := make([]result, len(peerIDs))
	var wg sync.WaitGroup

	for i, id := range peerIDs {
		wg.Add(1)
		go func(i int, id uint64) {
			defer wg.Done()

			peer, err := c.transport.Peer(id)
			if err != nil {
				return
			}

			rctx, cancel := context.WithTimeout(ctx, c.cfg.ReplicationTimeout)
			defer cancel()

			ok, peerGen, err := peer.Replicate(rctx, c.nodeID, gen, rec)
			if err != nil {
				return
			}
			results[i] = result{accepted: ok, peerGen: peerGen}
		}(i, id)
	}
	wg.Wait()

	for i, r := range results {
		if r.accepted {
			acks++
		}
		if r.peerGen > maxGen {
			maxGen = r.peerGen
			maxGenSource = peerIDs[i]
		}
	}
	return acks, maxGen, maxGenSource
}

// HandleReplicate applies a leader's record. The record is fenced on
// generation: a stale leader's record is refused without touching local
// state, which is exactly what starves a partitioned ex-leader of acks.
func (c *Coordinator) HandleReplicate(leaderID uint64, gen uint64, rec store.Record) (bool, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen < c.generation {
		metrics.StaleRPCsTotal.WithLabelValues("replicate").Inc()
		return false, c.generation
	}

	if gen > c.generation {
		c.adoptGenerationLocked(gen, leaderID)
	}

	c.leaderID = leaderID
	c.lastLeaderContact = c.clock.Now()
	c.store.Apply(rec)
	return true, c.generation
}

// HandleFetchRecords hands the committed record set to a reconciling peer.
func (c *Coordinator) HandleFetchRecords(fromID uint64) ([]store.Record, uint64) {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	slog.Debug("serving record fetch", "node_id", c.nodeID, "peer", fromID)
	return c.store.Committed(), gen
}
