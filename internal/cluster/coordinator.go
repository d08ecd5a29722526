package cluster

import (
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.etcd.io/etcd/pkg/v3/idutil"

	"quorumdb/internal/clock"
	"quorumdb/internal/cluster/ports"
	"quorumdb/internal/configuration"
	"quorumdb/internal/metrics"
	"quorumdb/internal/store"
)

// Coordinator owns the node's cluster state: role, generation, lease, and
// the reachability view. All mutations happen under a single mutex; the
// control loop and the inbound RPC handlers are the only writers. RPC
// fan-outs never hold the mutex, and every fan-out re-validates role and
// generation under the mutex before acting on its result.
type Coordinator struct {
	nodeID    uint64
	transport ports.Transport
	votes     ports.VoteLog
	store     *store.Store
	clock     clock.Clock

	cfg Config

	mu                sync.Mutex
	role              Role
	generation        uint64
	leaderID          uint64
	leaseExpiry       time.Time
	lastLeaderContact time.Time
	backoffUntil      time.Time
	healthyPeers      map[uint64]bool

	quorumSize int

	rng *rand.Rand

	idGen *idutil.Generator

	reconciling  atomic.Bool
	shuttingDown atomic.Bool
	inFlight     sync.WaitGroup

	stopCh    chan struct{}
	stoppedWg sync.WaitGroup
}

type Config struct {
	NodeID             uint64
	MemberCount        int
	HeartbeatInterval  time.Duration
	LeaseTimeout       time.Duration
	RPCTimeout         time.Duration
	ReplicationTimeout time.Duration
	BackoffMin         time.Duration
	BackoffMax         time.Duration
}

func NewConfigFromProperties(cfg *configuration.ClusterConfigurationProperties) Config {
	return Config{
		NodeID:             cfg.NodeID,
		MemberCount:        cfg.MemberCount(),
		HeartbeatInterval:  cfg.HeartbeatDuration(),
		LeaseTimeout:       cfg.LeaseDuration(),
		RPCTimeout:         cfg.RPCDuration(),
		ReplicationTimeout: cfg.ReplicationDuration(),
		BackoffMin:         cfg.BackoffMinDuration(),
		BackoffMax:         cfg.BackoffMaxDuration(),
	}
}

func New(
	transport ports.Transport,
	votes ports.VoteLog,
	st *store.Store,
	clk clock.Clock,
	cfg Config,
) *Coordinator {
	c := &Coordinator{
		nodeID:    cfg.NodeID,
		transport: transport,
		votes:     votes,
		store:     st,
		clock:     clk,

		cfg: cfg,

		role:         RoleFollower,
		healthyPeers: make(map[uint64]bool),

		quorumSize: QuorumSize(cfg.MemberCount),

		rng:   rand.New(rand.NewSource(int64(cfg.NodeID)*7919 + clk.Now().UnixNano())),
		idGen: idutil.NewGenerator(uint16(cfg.NodeID), clk.Now()),

		stopCh: make(chan struct{}),
	}

	slog.Info("cluster coordinator created",
		"node_id", cfg.NodeID,
		"member_count", cfg.MemberCount,
		"quorum_size", c.quorumSize,
		"heartbeat_interval", cfg.HeartbeatInterval,
		"lease_timeout", cfg.LeaseTimeout,
	)

	return c
}

// Start recovers the persisted generation and launches the control loop.
func (c *Coordinator) Start() error {
	gen, err := c.votes.HighestGeneration()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.generation = gen
	c.lastLeaderContact = c.clock.Now()
	c.mu.Unlock()

	slog.Info("cluster coordinator starting",
		"node_id", c.nodeID,
		"recovered_generation", gen,
	)

	c.startLoop()
	return nil
}

// Stop shuts the control loop down and waits for in-flight client
// operations to drain. A leader steps down on the way out so the rest of
// the cluster does not have to wait out the lease.
func (c *Coordinator) Stop() {
	if !c.shuttingDown.CompareAndSwap(false, true) {
		return
	}

	close(c.stopCh)
	c.stoppedWg.Wait()
	c.inFlight.Wait()

	c.mu.Lock()
	if c.role == RoleLeader {
		c.demoteLocked("shutdown")
	}
	c.mu.Unlock()

	slog.Info("cluster coordinator stopped", "node_id", c.nodeID)
}

// Status returns a consistent snapshot of the node's cluster view.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Status{
		NodeID:           c.nodeID,
		Role:             c.role,
		Generation:       c.generation,
		LeaderID:         c.leaderID,
		HealthyNodeCount: c.healthyPeerCountLocked() + 1,
		QuorumSize:       c.quorumSize,
		HasQuorum:        c.hasQuorumLocked(),
		LeaseValid:       c.leaseValidLocked(),
	}
}

func (c *Coordinator) leaseValidLocked() bool {
	return c.role == RoleLeader && c.clock.Now().Before(c.leaseExpiry)
}

// adoptGenerationLocked moves the node to a higher generation observed on
// a peer: the persisted high-water mark is advanced first, then any
// leadership claim under the old generation is abandoned and its pending
// writes discarded. Caller holds c.mu.
func (c *Coordinator) adoptGenerationLocked(gen uint64, sourceID uint64) {
	if gen <= c.generation {
		return
	}

	if err := c.votes.SaveGeneration(gen); err != nil {
		// Without the durable mark we could double-vote after a crash,
		// so refuse to move forward.
		slog.Error("failed to persist adopted generation",
			"node_id", c.nodeID, "generation", gen, "error", err)
		return
	}
	metrics.VoteLogWritesTotal.Inc()

	slog.Info("adopting higher generation",
		"node_id", c.nodeID,
		"old_generation", c.generation,
		"new_generation", gen,
		"source_node", sourceID,
	)

	c.generation = gen
	c.leaderID = 0
	// A higher generation means a newer leader may be out there; give it a
	// full lease window before campaigning against it.
	c.lastLeaderContact = c.clock.Now()

	if c.role != RoleFollower {
		c.demoteLocked("higher_generation")
	} else if n := c.store.DiscardPending(); n > 0 {
		metrics.RecordsDiscarded.Add(float64(n))
	}

	c.triggerReconcile(sourceID)
}

// demoteLocked drops the node back to follower. Pending writes can never
// reach quorum once leadership is gone, so they are discarded rather than
// left to linger. Caller holds c.mu.
func (c *Coordinator) demoteLocked(reason string) {
	slog.Warn("stepping down to follower",
		"node_id", c.nodeID,
		"role", c.role.String(),
		"generation", c.generation,
		"reason", reason,
	)

	c.role = RoleFollower
	c.leaseExpiry = time.Time{}
	if c.leaderID == c.nodeID {
		c.leaderID = 0
	}

	if n := c.store.DiscardPending(); n > 0 {
		metrics.RecordsDiscarded.Add(float64(n))
	}

	c.backoffUntil = c.clock.Now().Add(c.electionBackoff())
	metrics.DemotionsTotal.WithLabelValues(reason).Inc()
}

func (c *Coordinator) electionBackoff() time.Duration {
	spread := c.cfg.BackoffMax - c.cfg.BackoffMin
	if spread <= 0 {
		return c.cfg.BackoffMin
	}
	return c.cfg.BackoffMin + time.Duration(c.rng.Int63n(int64(spread)))
}
