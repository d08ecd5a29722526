package cluster

import (
	"context"
	"log/slog"
	"sync"
)

// healthCheckRound pings every peer in parallel and swaps in the fresh
// reachability view. A ping round is also how a healed partition is first
// noticed: any peer already on a higher generation reports it here and the
// node adopts it before acting on its role.
func (c *Coordinator) healthCheckRound() {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	peerIDs := c.transport.PeerIDs()

	type probe struct {
		id      uint64
		reached bool
		peerGen uint64
	}

	results := make([]probe, len(peerIDs))
	var wg sync.WaitGroup

	for i, id := range peerIDs {
		wg.Add(1)
		go func(i int, id uint64) {
			defer wg.Done()

			peer, err := c.transport.Peer(id)
			if err != nil {
				results[i] = probe{id: id}
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), c.cfg.RPCTimeout)
			defer cancel()

			_, peerGen, err := peer.Ping(ctx, c.nodeID, gen)
			if err != nil {
				slog.Debug("peer unreachable", "node_id", c.nodeID, "peer", id, "error", err)
				results[i] = probe{id: id}
				return
			}
			results[i] = probe{id: id, reached: true, peerGen: peerGen}
		}(i, id)
	}
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := make(map[uint64]bool, len(results))
	var maxGen, maxGenSource uint64
	for _, r := range results {
		fresh[r.id] = r.reached
		if r.peerGen > maxGen {
			maxGen = r.peerGen
			maxGenSource = r.id
		}
	}
	c.healthyPeers = fresh

	if maxGen > c.generation {
		c.adoptGenerationLocked(maxGen, maxGenSource)
	}
}

// HandlePing answers a peer's liveness probe. A ping carrying a stale
// generation is answered unhealthy so the sender learns it has fallen
// behind; a higher generation is adopted on the spot.
func (c *Coordinator) HandlePing(fromID uint64, gen uint64) (healthy bool, localGen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen > c.generation {
		c.adoptGenerationLocked(gen, fromID)
	}

	return gen >= c.generation, c.generation
}
