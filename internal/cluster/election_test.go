package cluster

import (
	"testing"
	"time"

	"quorumdb/internal/cluster/ports"
	"quorumdb/internal/store"
)

func electionReady(c *Coordinator) {
	c.mu.Lock()
	c.healthyPeers = map[uint64]bool{2: true, 3: true}
	c.lastLeaderContact = c.clock.Now().Add(-c.cfg.LeaseTimeout)
	c.mu.Unlock()
}

func TestElection_WinsWithQuorumVotes(t *testing.T) {
	grant := func(_, proposed uint64) (bool, uint64, error) { return true, proposed, nil }
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{voteFn: grant},
		3: &fakePeer{voteFn: grant},
	}}
	c, votes, _ := newTestCoordinator(1, 3, tr, newManualClock())
	electionReady(c)

	c.maybeStartElection()

	st := c.Status()
	if st.Role != RoleLeader {
		t.Fatalf("expected leader, got %s", st.Role)
	}
	if st.Generation != 1 || st.LeaderID != 1 {
		t.Fatalf("unexpected status: %+v", st)
	}
	if !st.LeaseValid {
		t.Fatal("expected a live lease after winning")
	}

	// Self-vote persisted before any request went out.
	saved := votes.savedGenerations()
	if len(saved) != 1 || saved[0] != 1 {
		t.Fatalf("expected persisted generation [1], got %v", saved)
	}
}

func TestElection_LosesWithoutQuorum(t *testing.T) {
	deny := func(_, _ uint64) (bool, uint64, error) { return false, 0, errPeerDown }
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{voteFn: deny},
		3: &fakePeer{voteFn: deny},
	}}
	c, _, _ := newTestCoordinator(1, 3, tr, newManualClock())
	electionReady(c)

	c.maybeStartElection()

	st := c.Status()
	if st.Role != RoleFollower {
		t.Fatalf("expected follower after losing, got %s", st.Role)
	}
	// The generation stays consumed: it was durably voted for.
	if st.Generation != 1 {
		t.Fatalf("expected generation 1, got %d", st.Generation)
	}

	c.mu.Lock()
	backoff := c.backoffUntil
	c.mu.Unlock()
	if !backoff.After(c.clock.Now()) {
		t.Fatal("expected election backoff after loss")
	}
}

func TestElection_SkippedWithoutReachableQuorum(t *testing.T) {
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{},
		3: &fakePeer{},
	}}
	c, votes, _ := newTestCoordinator(1, 3, tr, newManualClock())

	c.mu.Lock()
	c.healthyPeers = map[uint64]bool{2: false, 3: false}
	c.lastLeaderContact = c.clock.Now().Add(-c.cfg.LeaseTimeout)
	c.mu.Unlock()

	c.maybeStartElection()

	if st := c.Status(); st.Role != RoleFollower || st.Generation != 0 {
		t.Fatalf("expected idle follower, got %+v", st)
	}
	if len(votes.savedGenerations()) != 0 {
		t.Fatal("no generation should be consumed without reachable quorum")
	}
}

func TestElection_SkippedWhileLeaderAlive(t *testing.T) {
	grant := func(_, proposed uint64) (bool, uint64, error) { return true, proposed, nil }
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{voteFn: grant},
		3: &fakePeer{voteFn: grant},
	}}
	clk := newManualClock()
	c, _, _ := newTestCoordinator(1, 3, tr, clk)

	c.mu.Lock()
	c.healthyPeers = map[uint64]bool{2: true, 3: true}
	c.lastLeaderContact = clk.Now()
	c.mu.Unlock()

	clk.Advance(c.cfg.LeaseTimeout / 2)
	c.maybeStartElection()

	if st := c.Status(); st.Role != RoleFollower {
		t.Fatalf("must not campaign while the leader's lease is fresh, got %s", st.Role)
	}
}

func TestElection_AdoptsHigherGenerationFromBallot(t *testing.T) {
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{voteFn: func(_, _ uint64) (bool, uint64, error) { return false, 9, nil }},
		3: &fakePeer{voteFn: func(_, _ uint64) (bool, uint64, error) { return false, 9, nil }},
	}}
	c, votes, _ := newTestCoordinator(1, 3, tr, newManualClock())
	electionReady(c)

	c.maybeStartElection()
	c.waitReconcile(t)

	st := c.Status()
	if st.Role != RoleFollower || st.Generation != 9 {
		t.Fatalf("expected follower at generation 9, got %+v", st)
	}

	saved := votes.savedGenerations()
	if saved[len(saved)-1] != 9 {
		t.Fatalf("adopted generation must be persisted, got %v", saved)
	}
}

func TestHandleRequestVote_SingleVotePerGeneration(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	c, votes, _ := newTestCoordinator(1, 3, tr, newManualClock())

	granted, gen := c.HandleRequestVote(2, 5)
	if !granted || gen != 5 {
		t.Fatalf("expected grant at 5, got granted=%t gen=%d", granted, gen)
	}

	// Second candidate for the same generation must be refused.
	granted, gen = c.HandleRequestVote(3, 5)
	if granted {
		t.Fatal("second vote in one generation granted")
	}
	if gen != 5 {
		t.Fatalf("rejection must report local generation 5, got %d", gen)
	}

	// And an older generation stays rejected.
	if granted, _ := c.HandleRequestVote(3, 4); granted {
		t.Fatal("vote granted for stale generation")
	}

	saved := votes.savedGenerations()
	if len(saved) != 1 || saved[0] != 5 {
		t.Fatalf("expected single persisted vote [5], got %v", saved)
	}
}

func TestHandleRequestVote_AdoptionPullsCommittedHistory(t *testing.T) {
	missed := store.Record{ID: "missed", Payload: []byte("m"), Generation: 2}
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{fetchFn: func(_ uint64) ([]store.Record, uint64, error) {
			return []store.Record{missed}, 5, nil
		}},
	}}
	c, _, st := newTestCoordinator(1, 3, tr, newManualClock())

	granted, gen := c.HandleRequestVote(2, 5)
	if !granted || gen != 5 {
		t.Fatalf("expected grant at 5, got granted=%t gen=%d", granted, gen)
	}
	c.waitReconcile(t)

	// Records committed while this node was cut off arrive through the
	// candidate that revealed the higher generation.
	if got, ok := st.Get("missed"); !ok || got.Generation != 2 {
		t.Fatalf("committed history not pulled after voting: got=%+v ok=%t", got, ok)
	}
}

func TestHandleRequestVote_PersistFailureRefusesVote(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	c, votes, _ := newTestCoordinator(1, 3, tr, newManualClock())
	votes.saveErr = errPeerDown

	granted, _ := c.HandleRequestVote(2, 5)
	if granted {
		t.Fatal("vote granted without durable record")
	}
	if st := c.Status(); st.Generation != 0 {
		t.Fatalf("generation moved without durable record: %d", st.Generation)
	}
}

func TestHandleRequestVote_DemotesStaleLeader(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	clk := newManualClock()
	c, _, _ := newTestCoordinator(1, 3, tr, clk)

	c.mu.Lock()
	c.role = RoleLeader
	c.leaderID = 1
	c.generation = 5
	c.leaseExpiry = clk.Now().Add(time.Second)
	c.mu.Unlock()

	granted, gen := c.HandleRequestVote(2, 6)
	if !granted || gen != 6 {
		t.Fatalf("expected grant at 6, got granted=%t gen=%d", granted, gen)
	}

	st := c.Status()
	if st.Role != RoleFollower {
		t.Fatalf("leader must step down on voting, got %s", st.Role)
	}
	if st.LeaderID != 0 {
		t.Fatalf("stale leader identity must be cleared, got %d", st.LeaderID)
	}
}

func (c *Coordinator) waitReconcile(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !c.reconciling.Load() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("reconcile did not finish")
}
