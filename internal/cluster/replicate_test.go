package cluster

import (
	"context"
	"errors"
	"testing"
	"time"

	"quorumdb/internal/cluster/ports"
	"quorumdb/internal/store"
)

func TestWrite_CommitsWithQuorumAcks(t *testing.T) {
	accept := func(_, gen uint64, _ store.Record) (bool, uint64, error) { return true, gen, nil }
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{replicateFn: accept},
		3: &fakePeer{replicateFn: accept},
	}}
	c, _, st := newTestCoordinator(1, 3, tr, newManualClock())
	makeLeader(c, 2)

	rec, err := c.Write(context.Background(), []byte("payload"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Generation != 2 {
		t.Fatalf("record stamped with generation %d, want 2", rec.Generation)
	}

	got, ok := st.Get(rec.ID)
	if !ok {
		t.Fatal("record missing from committed set")
	}
	if string(got.Payload) != "payload" {
		t.Fatalf("unexpected payload %q", got.Payload)
	}
	if st.PendingLen() != 0 {
		t.Fatal("pending set must be empty after commit")
	}
}

func TestWrite_RejectedOnFollower(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	c, _, st := newTestCoordinator(1, 3, tr, newManualClock())

	if _, err := c.Write(context.Background(), []byte("x")); !errors.Is(err, ErrNotLeader) {
		t.Fatalf("expected ErrNotLeader, got %v", err)
	}
	if st.Len() != 0 || st.PendingLen() != 0 {
		t.Fatal("rejected write must not touch the store")
	}
}

func TestWrite_RejectedWithoutQuorum(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	c, _, _ := newTestCoordinator(1, 3, tr, newManualClock())
	makeLeader(c, 2)

	c.mu.Lock()
	c.healthyPeers = map[uint64]bool{2: false, 3: false}
	c.mu.Unlock()

	if _, err := c.Write(context.Background(), []byte("x")); !errors.Is(err, ErrQuorumLost) {
		t.Fatalf("expected ErrQuorumLost, got %v", err)
	}
}

func TestWrite_RejectedOnExpiredLease(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	clk := newManualClock()
	c, _, _ := newTestCoordinator(1, 3, tr, clk)
	makeLeader(c, 2)

	clk.Advance(c.cfg.LeaseTimeout + time.Millisecond)

	if _, err := c.Write(context.Background(), []byte("x")); !errors.Is(err, ErrLeaseExpired) {
		t.Fatalf("expected ErrLeaseExpired, got %v", err)
	}
	if st := c.Status(); st.Role != RoleFollower {
		t.Fatalf("expired lease must demote, got %s", st.Role)
	}
}

func TestWrite_RejectedWhileShuttingDown(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	c, _, _ := newTestCoordinator(1, 3, tr, newManualClock())
	c.shuttingDown.Store(true)

	if _, err := c.Write(context.Background(), []byte("x")); !errors.Is(err, ErrShuttingDown) {
		t.Fatalf("expected ErrShuttingDown, got %v", err)
	}
}

func TestWrite_TimeoutDemotesAndDiscards(t *testing.T) {
	down := func(_, _ uint64, _ store.Record) (bool, uint64, error) { return false, 0, errPeerDown }
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{replicateFn: down},
		3: &fakePeer{replicateFn: down},
	}}
	c, _, st := newTestCoordinator(1, 3, tr, newManualClock())
	makeLeader(c, 2)

	if _, err := c.Write(context.Background(), []byte("x")); !errors.Is(err, ErrReplicationTimeout) {
		t.Fatalf("expected ErrReplicationTimeout, got %v", err)
	}
	if st.Len() != 0 || st.PendingLen() != 0 {
		t.Fatal("unacknowledged record must be discarded, not committed")
	}
	if status := c.Status(); status.Role != RoleFollower {
		t.Fatalf("leader must step down after failed replication, got %s", status.Role)
	}
}

func TestWrite_RevalidatesAfterFanout(t *testing.T) {
	// The peers ack, but while the fan-out is in flight this node loses
	// leadership. The acks must not rescue the write.
	c, _, st := newTestCoordinator(1, 3, &fakeTransport{peers: nil}, newManualClock())

	accept := func(_, gen uint64, _ store.Record) (bool, uint64, error) {
		c.mu.Lock()
		c.role = RoleFollower
		c.mu.Unlock()
		return true, gen, nil
	}
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{replicateFn: accept},
		3: &fakePeer{replicateFn: accept},
	}}
	c.transport = tr
	makeLeader(c, 2)

	if _, err := c.Write(context.Background(), []byte("x")); !errors.Is(err, ErrNotLeader) {
		t.Fatalf("expected ErrNotLeader, got %v", err)
	}
	if st.Len() != 0 || st.PendingLen() != 0 {
		t.Fatal("write must be discarded when leadership is lost mid-flight")
	}
}

func TestWrite_StaleGenerationObservedInAcks(t *testing.T) {
	reject := func(_, _ uint64, _ store.Record) (bool, uint64, error) { return false, 7, nil }
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{replicateFn: reject},
		3: &fakePeer{replicateFn: reject},
	}}
	c, _, st := newTestCoordinator(1, 3, tr, newManualClock())
	makeLeader(c, 2)

	if _, err := c.Write(context.Background(), []byte("x")); !errors.Is(err, ErrStaleGeneration) {
		t.Fatalf("expected ErrStaleGeneration, got %v", err)
	}
	c.waitReconcile(t)

	status := c.Status()
	if status.Role != RoleFollower || status.Generation != 7 {
		t.Fatalf("expected follower at generation 7, got %+v", status)
	}
	if st.PendingLen() != 0 {
		t.Fatal("pending writes must be discarded on adoption")
	}
}

func TestWrite_StaleGenerationDiscardsEvenWhenAdoptionRefused(t *testing.T) {
	reject := func(_, _ uint64, _ store.Record) (bool, uint64, error) { return false, 7, nil }
	tr := &fakeTransport{peers: map[uint64]ports.PeerClient{
		2: &fakePeer{replicateFn: reject},
		3: &fakePeer{replicateFn: reject},
	}}
	c, votes, st := newTestCoordinator(1, 3, tr, newManualClock())
	makeLeader(c, 2)
	// The vote log is wedged, so generation 7 cannot be adopted.
	votes.saveErr = errPeerDown

	if _, err := c.Write(context.Background(), []byte("x")); !errors.Is(err, ErrStaleGeneration) {
		t.Fatalf("expected ErrStaleGeneration, got %v", err)
	}
	if st.Len() != 0 || st.PendingLen() != 0 {
		t.Fatal("staged record must be discarded even when adoption cannot persist")
	}
}

func TestHandleReplicate_AppliesForCurrentGeneration(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	clk := newManualClock()
	c, _, st := newTestCoordinator(2, 3, tr, clk)

	c.mu.Lock()
	c.generation = 3
	c.mu.Unlock()

	rec := store.Record{ID: "r1", Payload: []byte("v"), Generation: 3}
	accepted, gen := c.HandleReplicate(1, 3, rec)
	if !accepted || gen != 3 {
		t.Fatalf("expected accept at 3, got accepted=%t gen=%d", accepted, gen)
	}

	if _, ok := st.Get("r1"); !ok {
		t.Fatal("record not applied")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.leaderID != 1 || !c.lastLeaderContact.Equal(clk.Now()) {
		t.Fatal("replication must refresh leader identity and contact")
	}
}

func TestHandleReplicate_FencesStaleLeader(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	c, _, st := newTestCoordinator(2, 3, tr, newManualClock())

	c.mu.Lock()
	c.generation = 5
	c.leaderID = 3
	c.mu.Unlock()

	rec := store.Record{ID: "stale", Payload: []byte("v"), Generation: 4}
	accepted, gen := c.HandleReplicate(1, 4, rec)
	if accepted {
		t.Fatal("stale leader's record must be refused")
	}
	if gen != 5 {
		t.Fatalf("refusal must report local generation, got %d", gen)
	}

	// Fencing mutates nothing.
	if st.Len() != 0 {
		t.Fatal("fenced record must not be applied")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.leaderID != 3 {
		t.Fatal("fenced request must not change leader identity")
	}
}
