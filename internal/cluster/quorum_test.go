package cluster

import "testing"

func TestQuorumSize(t *testing.T) {
	cases := []struct {
		members int
		want    int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{5, 3},
		{7, 4},
	}

	for _, tc := range cases {
		if got := QuorumSize(tc.members); got != tc.want {
			t.Errorf("QuorumSize(%d) = %d, want %d", tc.members, got, tc.want)
		}
	}
}

func TestHasQuorum_CountsSelf(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	c, _, _ := newTestCoordinator(1, 3, tr, newManualClock())

	c.mu.Lock()
	c.healthyPeers = map[uint64]bool{2: false, 3: false}
	if c.hasQuorumLocked() {
		t.Fatal("expected no quorum with zero reachable peers")
	}

	c.healthyPeers = map[uint64]bool{2: true, 3: false}
	if !c.hasQuorumLocked() {
		t.Fatal("expected quorum with one reachable peer of three members")
	}
	c.mu.Unlock()
}

func TestHasQuorum_MinorityPartitionOfFive(t *testing.T) {
	tr := &fakeTransport{peers: nil}
	c, _, _ := newTestCoordinator(1, 5, tr, newManualClock())

	c.mu.Lock()
	defer c.mu.Unlock()

	c.healthyPeers = map[uint64]bool{2: true, 3: false, 4: false, 5: false}
	if c.hasQuorumLocked() {
		t.Fatal("two of five must not be quorum")
	}

	c.healthyPeers = map[uint64]bool{2: true, 3: true, 4: false, 5: false}
	if !c.hasQuorumLocked() {
		t.Fatal("three of five must be quorum")
	}
}
