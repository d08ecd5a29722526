package cluster

import (
	"log/slog"
	"time"

	"quorumdb/internal/metrics"
)

func (c *Coordinator) startLoop() {
	c.stoppedWg.Add(1)
	go func() {
		defer c.stoppedWg.Done()
		c.runLoop()
	}()

	c.stoppedWg.Add(1)
	go func() {
		defer c.stoppedWg.Done()
		c.collectMetrics()
	}()

	slog.Info("cluster loop started", "node_id", c.nodeID)
}

// runLoop drives every periodic duty off a single heartbeat ticker: probe
// the membership, then act on the role the probe round left us in.
func (c *Coordinator) runLoop() {
	ticker := time.NewTicker(c.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			slog.Debug("cluster loop stopping", "node_id", c.nodeID)
			return

		case <-ticker.C:
			c.healthCheckRound()
			c.roleTick()
		}
	}
}

func (c *Coordinator) roleTick() {
	c.mu.Lock()
	role := c.role
	c.mu.Unlock()

	switch role {
	case RoleLeader:
		c.leaderTick()
	case RoleFollower, RoleCandidate:
		c.maybeStartElection()
	}
}

func (c *Coordinator) collectMetrics() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.updateMetrics()
		}
	}
}

func (c *Coordinator) updateMetrics() {
	st := c.Status()

	metrics.ClusterRole.Set(float64(st.Role))
	metrics.ClusterGeneration.Set(float64(st.Generation))
	metrics.ClusterHealthyPeers.Set(float64(st.HealthyNodeCount - 1))
	metrics.ClusterQuorumSize.Set(float64(st.QuorumSize))
	if st.HasQuorum {
		metrics.ClusterHasQuorum.Set(1)
	} else {
		metrics.ClusterHasQuorum.Set(0)
	}
	metrics.RecordsCommitted.Set(float64(c.store.Len()))
}
