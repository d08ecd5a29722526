package cluster

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"quorumdb/internal/clock"
	"quorumdb/internal/cluster/ports"
	"quorumdb/internal/store"
)

type fakePeer struct {
	pingFn      func(nodeID, gen uint64) (bool, uint64, error)
	voteFn      func(candidateID, proposed uint64) (bool, uint64, error)
	renewFn     func(leaderID, gen uint64) (bool, uint64, error)
	replicateFn func(leaderID, gen uint64, rec store.Record) (bool, uint64, error)
	fetchFn     func(nodeID uint64) ([]store.Record, uint64, error)
}

var errPeerDown = errors.New("peer down")

func (p *fakePeer) Ping(_ context.Context, nodeID, gen uint64) (bool, uint64, error) {
	if p.pingFn == nil {
		return true, gen, nil
	}
	return p.pingFn(nodeID, gen)
}

func (p *fakePeer) RequestVote(_ context.Context, candidateID, proposed uint64) (bool, uint64, error) {
	if p.voteFn == nil {
		return false, 0, errPeerDown
	}
	return p.voteFn(candidateID, proposed)
}

func (p *fakePeer) RenewLease(_ context.Context, leaderID, gen uint64) (bool, uint64, error) {
	if p.renewFn == nil {
		return false, 0, errPeerDown
	}
	return p.renewFn(leaderID, gen)
}

func (p *fakePeer) Replicate(_ context.Context, leaderID, gen uint64, rec store.Record) (bool, uint64, error) {
	if p.replicateFn == nil {
		return false, 0, errPeerDown
	}
	return p.replicateFn(leaderID, gen, rec)
}

func (p *fakePeer) FetchRecords(_ context.Context, nodeID uint64) ([]store.Record, uint64, error) {
	if p.fetchFn == nil {
		return nil, 0, errPeerDown
	}
	return p.fetchFn(nodeID)
}

type fakeTransport struct {
	peers map[uint64]ports.PeerClient
}

func (t *fakeTransport) Peer(id uint64) (ports.PeerClient, error) {
	p, ok := t.peers[id]
	if !ok {
		return nil, errors.New("unknown peer")
	}
	return p, nil
}

func (t *fakeTransport) PeerIDs() []uint64 {
	ids := make([]uint64, 0, len(t.peers))
	for id := range t.peers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (t *fakeTransport) Close() error { return nil }

type fakeVoteLog struct {
	mu      sync.Mutex
	gen     uint64
	saves   []uint64
	saveErr error
}

func (l *fakeVoteLog) HighestGeneration() (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen, nil
}

func (l *fakeVoteLog) SaveGeneration(gen uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.saveErr != nil {
		return l.saveErr
	}
	l.gen = gen
	l.saves = append(l.saves, gen)
	return nil
}

func (l *fakeVoteLog) Close() error { return nil }

func (l *fakeVoteLog) savedGenerations() []uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]uint64, len(l.saves))
	copy(out, l.saves)
	return out
}

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newManualClock() *clock.Manual {
	return clock.NewManual(testStart)
}

func testConfig(nodeID uint64, memberCount int) Config {
	return Config{
		NodeID:             nodeID,
		MemberCount:        memberCount,
		HeartbeatInterval:  50 * time.Millisecond,
		LeaseTimeout:       250 * time.Millisecond,
		RPCTimeout:         25 * time.Millisecond,
		ReplicationTimeout: 50 * time.Millisecond,
		BackoffMin:         10 * time.Millisecond,
		BackoffMax:         40 * time.Millisecond,
	}
}

// newTestCoordinator builds a coordinator without starting its control
// loop; tests drive ticks and handlers directly.
func newTestCoordinator(nodeID uint64, memberCount int, tr ports.Transport, clk clock.Clock) (*Coordinator, *fakeVoteLog, *store.Store) {
	votes := &fakeVoteLog{}
	st := store.NewStore()
	c := New(tr, votes, st, clk, testConfig(nodeID, memberCount))
	return c, votes, st
}

// memberLink wires a peer client straight to another coordinator's inbound
// handlers, giving an in-process cluster without a network. A link can be
// severed to simulate a partition.
type memberLink struct {
	target *Coordinator
	down   atomic.Bool
}

func (l *memberLink) Ping(_ context.Context, nodeID, gen uint64) (bool, uint64, error) {
	if l.down.Load() {
		return false, 0, errPeerDown
	}
	healthy, peerGen := l.target.HandlePing(nodeID, gen)
	return healthy, peerGen, nil
}

func (l *memberLink) RequestVote(_ context.Context, candidateID, proposed uint64) (bool, uint64, error) {
	if l.down.Load() {
		return false, 0, errPeerDown
	}
	granted, peerGen := l.target.HandleRequestVote(candidateID, proposed)
	return granted, peerGen, nil
}

func (l *memberLink) RenewLease(_ context.Context, leaderID, gen uint64) (bool, uint64, error) {
	if l.down.Load() {
		return false, 0, errPeerDown
	}
	ack, peerGen := l.target.HandleRenewLease(leaderID, gen)
	return ack, peerGen, nil
}

func (l *memberLink) Replicate(_ context.Context, leaderID, gen uint64, rec store.Record) (bool, uint64, error) {
	if l.down.Load() {
		return false, 0, errPeerDown
	}
	accepted, peerGen := l.target.HandleReplicate(leaderID, gen, rec)
	return accepted, peerGen, nil
}

func (l *memberLink) FetchRecords(_ context.Context, nodeID uint64) ([]store.Record, uint64, error) {
	if l.down.Load() {
		return nil, 0, errPeerDown
	}
	records, peerGen := l.target.HandleFetchRecords(nodeID)
	return records, peerGen, nil
}

// testCluster is a fully wired in-process cluster on a shared manual
// clock.
type testCluster struct {
	clk    *clock.Manual
	nodes  map[uint64]*Coordinator
	stores map[uint64]*store.Store
	links  map[uint64]map[uint64]*memberLink // links[from][to]
}

func newTestCluster(size int) *testCluster {
	clk := clock.NewManual(testStart)

	tc := &testCluster{
		clk:    clk,
		nodes:  make(map[uint64]*Coordinator),
		stores: make(map[uint64]*store.Store),
		links:  make(map[uint64]map[uint64]*memberLink),
	}

	transports := make(map[uint64]*fakeTransport)
	for i := 1; i <= size; i++ {
		id := uint64(i)
		tr := &fakeTransport{peers: make(map[uint64]ports.PeerClient)}
		transports[id] = tr
		c, _, st := newTestCoordinator(id, size, tr, clk)
		c.lastLeaderContact = clk.Now()
		tc.nodes[id] = c
		tc.stores[id] = st
		tc.links[id] = make(map[uint64]*memberLink)
	}

	for from := range tc.nodes {
		for to, target := range tc.nodes {
			if from == to {
				continue
			}
			link := &memberLink{target: target}
			tc.links[from][to] = link
			transports[from].peers[to] = link
		}
	}

	return tc
}

// partition severs every link between the two groups, both directions.
func (tc *testCluster) partition(groupA, groupB []uint64) {
	for _, a := range groupA {
		for _, b := range groupB {
			tc.links[a][b].down.Store(true)
			tc.links[b][a].down.Store(true)
		}
	}
}

func (tc *testCluster) heal() {
	for _, out := range tc.links {
		for _, link := range out {
			link.down.Store(false)
		}
	}
}

// tick runs one control-loop round on every node, in ID order.
func (tc *testCluster) tick() {
	ids := make([]uint64, 0, len(tc.nodes))
	for id := range tc.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		c := tc.nodes[id]
		c.healthCheckRound()
		c.roleTick()
	}
}

func (tc *testCluster) leaders() []uint64 {
	var out []uint64
	for id, c := range tc.nodes {
		if c.Status().Role == RoleLeader {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// settleElection advances time past the lease window and ticks until some
// node wins, bounded to keep a broken election from hanging the test.
func (tc *testCluster) settleElection() uint64 {
	for i := 0; i < 50; i++ {
		tc.clk.Advance(300 * time.Millisecond)
		tc.tick()
		if ls := tc.leaders(); len(ls) == 1 {
			return ls[0]
		}
	}
	return 0
}

// waitReconciled blocks until no node has a reconcile in flight.
func (tc *testCluster) waitReconciled() {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		busy := false
		for _, c := range tc.nodes {
			if c.reconciling.Load() {
				busy = true
			}
		}
		if !busy {
			return
		}
		time.Sleep(time.Millisecond)
	}
}
