package cluster

// Role is the closed set of positions a node can hold. There is no
// in-between state: a node that loses its lease or observes a higher
// generation drops straight back to RoleFollower.
type Role int32

const (
	RoleFollower Role = iota
	RoleCandidate
	RoleLeader
)

func (r Role) String() string {
	switch r {
	case RoleFollower:
		return "follower"
	case RoleCandidate:
		return "candidate"
	case RoleLeader:
		return "leader"
	default:
		return "unknown"
	}
}

// Status is a point-in-time snapshot of the coordinator's view of the
// cluster, safe to hand out without holding any locks.
type Status struct {
	NodeID           uint64
	Role             Role
	Generation       uint64
	LeaderID         uint64
	HealthyNodeCount int
	QuorumSize       int
	HasQuorum        bool
	LeaseValid       bool
}
