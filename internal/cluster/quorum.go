package cluster

// QuorumSize returns the minimum number of members, including self, that
// must agree for an operation to be safe: a strict majority of the
// configured membership. Computed from configured size, never from the
// currently reachable set, so two partitions can never both hold quorum.
func QuorumSize(memberCount int) int {
	return memberCount/2 + 1
}

// hasQuorumLocked reports whether this node plus its currently healthy
// peers form a majority. Caller holds c.mu.
func (c *Coordinator) hasQuorumLocked() bool {
	return c.healthyPeerCountLocked()+1 >= c.quorumSize
}

func (c *Coordinator) healthyPeerCountLocked() int {
	n := 0
	for _, ok := range c.healthyPeers {
		if ok {
			n++
		}
	}
	return n
}
