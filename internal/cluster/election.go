package cluster

import (
	"context"
	"log/slog"
	"sync"

	"quorumdb/internal/metrics"
)

// maybeStartElection kicks off a campaign when no leader lease has been
// observed for a full lease timeout. A node that cannot currently reach a
// majority does not bother campaigning: it could never gather the votes,
// and bumping the generation from a minority partition only causes churn.
func (c *Coordinator) maybeStartElection() {
	if c.shuttingDown.Load() {
		return
	}

	c.mu.Lock()

	now := c.clock.Now()
	if c.role == RoleLeader ||
		now.Before(c.backoffUntil) ||
		now.Sub(c.lastLeaderContact) < c.cfg.LeaseTimeout {
		c.mu.Unlock()
		return
	}
	if !c.hasQuorumLocked() {
		c.mu.Unlock()
		return
	}

	// Vote for self. The durable mark must land before any vote request
	// leaves the node.
	proposed := c.generation + 1
	if err := c.votes.SaveGeneration(proposed); err != nil {
		slog.Error("failed to persist candidate generation",
			"node_id", c.nodeID, "generation", proposed, "error", err)
		c.mu.Unlock()
		return
	}
	metrics.VoteLogWritesTotal.Inc()

	c.generation = proposed
	c.role = RoleCandidate
	c.leaderID = 0

	peerIDs := c.transport.PeerIDs()
	c.mu.Unlock()

	slog.Info("starting election", "node_id", c.nodeID, "generation", proposed)

	start := c.clock.Now()
	granted, maxGen, maxGenSource := c.gatherVotes(peerIDs, proposed)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shuttingDown.Load() || c.role != RoleCandidate || c.generation != proposed {
		// Superseded while the votes were in flight.
		metrics.ElectionsTotal.WithLabelValues("superseded").Inc()
		return
	}

	if maxGen > proposed {
		metrics.ElectionsTotal.WithLabelValues("lost").Inc()
		c.adoptGenerationLocked(maxGen, maxGenSource)
		return
	}

	if granted+1 >= c.quorumSize {
		c.role = RoleLeader
		c.leaderID = c.nodeID
		// The lease is measured from before the fan-out started, so it is
		// already partially consumed by the time it is granted.
		c.leaseExpiry = start.Add(c.cfg.LeaseTimeout)
		c.lastLeaderContact = c.clock.Now()

		metrics.ElectionsTotal.WithLabelValues("won").Inc()
		metrics.ElectionDuration.Observe(c.clock.Now().Sub(start).Seconds())

		slog.Info("election won",
			"node_id", c.nodeID,
			"generation", proposed,
			"votes", granted+1,
			"quorum_size", c.quorumSize,
		)
		return
	}

	slog.Info("election lost",
		"node_id", c.nodeID,
		"generation", proposed,
		"votes", granted+1,
		"quorum_size", c.quorumSize,
	)

	c.role = RoleFollower
	c.backoffUntil = c.clock.Now().Add(c.electionBackoff())
	metrics.ElectionsTotal.WithLabelValues("lost").Inc()
}

func (c *Coordinator) gatherVotes(peerIDs []uint64, proposed uint64) (granted int, maxGen uint64, maxGenSource uint64) {
	type ballot struct {
		granted bool
		peerGen uint64
	}

	results := make([]ballot, len(peerIDs))
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

			ok, peerGen, err := peer.RequestVote(ctx, c.nodeID, proposed)
			if err != nil {
				return
			}
			results[i] = ballot{granted: ok, peerGen: peerGen}
		}(i, id)
	}
	wg.Wait()

	for i, r := range results {
		if r.granted {
			granted++
		}
		if r.peerGen > maxGen {
			maxGen = r.peerGen
			maxGenSource = peerIDs[i]
		}
	}
	return granted, maxGen, maxGenSource
}

// HandleRequestVote grants at most one vote per generation. The grant is
// durable before the reply leaves, so a crash and restart cannot produce a
// second vote in the same generation. Granting does not adopt the
// candidate's claim of leadership, only its generation.
func (c *Coordinator) HandleRequestVote(candidateID uint64, proposedGen uint64) (bool, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if proposedGen <= c.generation {
		slog.Debug("vote rejected",
			"node_id", c.nodeID,
			"candidate", candidateID,
			"proposed_generation", proposedGen,
			"generation", c.generation,
		)
		metrics.VotesRejected.Inc()
		return false, c.generation
	}

	// Adopting persists the durable mark before the grant leaves, resets
	// the election timer so the candidate gets a full lease window to win,
	// and pulls any history committed under generations this node missed.
	c.adoptGenerationLocked(proposedGen, candidateID)
	if c.generation != proposedGen {
		// The mark did not land; refusing keeps the single-vote
		// guarantee intact across a crash.
		return false, c.generation
	}

	slog.Info("vote granted",
		"node_id", c.nodeID,
		"candidate", candidateID,
		"generation", proposedGen,
	)
	metrics.VotesGranted.Inc()
	return true, c.generation
}
