package cluster

import (
	"context"
	"log/slog"

	"quorumdb/internal/metrics"
)

// triggerReconcile starts a background catch-up after the node adopts a
// higher generation: whatever was committed on the other side of the
// partition needs to land here. Single-flight; a reconcile already in
// progress absorbs the new trigger. Caller may hold c.mu; the work runs
// entirely off the coordinator lock.
func (c *Coordinator) triggerReconcile(sourceID uint64) {
	if c.shuttingDown.Load() {
		return
	}
	if !c.reconciling.CompareAndSwap(false, true) {
		return
	}

	c.stoppedWg.Add(1)
	go func() {
		defer c.stoppedWg.Done()
		defer c.reconciling.Store(false)
		c.reconcile(sourceID)
	}()
}

func (c *Coordinator) reconcile(sourceID uint64) {
	// Prefer the peer whose higher generation we observed; it is known to
	// be ahead. Fall back to sweeping every peer.
	peerIDs := c.transport.PeerIDs()
	if sourceID != 0 {
		peerIDs = []uint64{sourceID}
	}

	merged := 0
	fetched := false
	for _, id := range peerIDs {
		peer, err := c.transport.Peer(id)
		if err != nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.RPCTimeout)
		records, _, err := peer.FetchRecords(ctx, c.nodeID)
		cancel()
		if err != nil {
			slog.Warn("reconcile fetch failed", "node_id", c.nodeID, "peer", id, "error", err)
			continue
		}

		fetched = true
		merged += c.store.Merge(records)
	}

	if !fetched {
		metrics.ReconciliationsTotal.WithLabelValues("failed").Inc()
		slog.Warn("reconciliation failed: no peer reachable", "node_id", c.nodeID)
		return
	}

	metrics.ReconciliationsTotal.WithLabelValues("ok").Inc()
	slog.Info("reconciliation complete",
		"node_id", c.nodeID,
		"peers_contacted", len(peerIDs),
		"records_merged", merged,
	)
}
