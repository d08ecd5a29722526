package cluster

import (
	"context"
	"log/slog"
	"sync"

	"quorumdb/internal/metrics"
)

// leaderTick renews the leadership lease. The lease extends only when a
// majority acknowledges the renewal; a leader that cannot gather those
// acks steps down at once rather than serving out the remainder of its
// lease in what may be a minority partition.
func (c *Coordinator) leaderTick() {
	c.mu.Lock()

	if c.role != RoleLeader {
		c.mu.Unlock()
		return
	}
	if !c.clock.Now().Before(c.leaseExpiry) {
		metrics.LeaseRenewalsTotal.WithLabelValues("expired").Inc()
		c.demoteLocked("lease_expired")
		c.mu.Unlock()
		return
	}

	gen := c.generation
	peerIDs := c.transport.PeerIDs()
	c.mu.Unlock()

	start := c.clock.Now()
	acks, maxGen, maxGenSource := c.gatherRenewals(peerIDs, gen)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.role != RoleLeader || c.generation != gen {
		return
	}

	if maxGen > gen {
		metrics.LeaseRenewalsTotal.WithLabelValues("superseded").Inc()
		c.adoptGenerationLocked(maxGen, maxGenSource)
		return
	}

	if acks+1 >= c.quorumSize {
		// Measured from before the fan-out: the grant cannot outlive what
		// the acking peers promised.
		c.leaseExpiry = start.Add(c.cfg.LeaseTimeout)
		c.lastLeaderContact = c.clock.Now()
		metrics.LeaseRenewalsTotal.WithLabelValues("ok").Inc()
		return
	}

	slog.Warn("lease renewal failed to reach quorum",
		"node_id", c.nodeID,
		"generation", gen,
		"acks", acks+1,
		"quorum_size", c.quorumSize,
	)
	metrics.LeaseRenewalsTotal.WithLabelValues("failed").Inc()
	c.demoteLocked("quorum_lost")
}

func (c *Coordinator) gatherRenewals(peerIDs []uint64, gen uint64) (acks int, maxGen uint64, maxGenSource uint64) {
	type renewal struct {
		ack     bool
		peerGen uint64
	}

	results := make([]renewal, len(peerIDs))
	var wg sync.WaitGroup

	for i, id := range peerIDs {
		wg.Add(1)
		go func(i int, id uint64) {
			defer wg.Done()

			peer, err := c.transport.Peer(id)
			if err != nil {
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), c.cfg.RPCTimeout)
			defer cancel()

			ok, peerGen, err := peer.RenewLease(ctx, c.nodeID, gen)
			if err != nil {
				return
			}
			results[i] = renewal{ack: ok, peerGen: peerGen}
		}(i, id)
	}
	wg.Wait()

	for i, r := range results {
		if r.ack {
			acks++
		}
		if r.peerGen > maxGen {
			maxGen = r.peerGen
			maxGenSource = peerIDs[i]
		}
	}
	return acks, maxGen, maxGenSource
}

// HandleRenewLease acknowledges the leader's lease for a generation at
// least as new as the local one. The acknowledgment doubles as leader
// liveness: it is what keeps followers from campaigning.
func (c *Coordinator) HandleRenewLease(leaderID uint64, gen uint64) (bool, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen < c.generation {
		metrics.StaleRPCsTotal.WithLabelValues("renew_lease").Inc()
		return false, c.generation
	}

	if gen > c.generation {
		c.adoptGenerationLocked(gen, leaderID)
	}
	if c.role != RoleFollower {
		// Someone else proved leadership for our generation; stand down.
		c.demoteLocked("leader_observed")
	}

	c.leaderID = leaderID
	c.lastLeaderContact = c.clock.Now()
	return true, c.generation
}
