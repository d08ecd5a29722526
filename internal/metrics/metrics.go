package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClusterRole = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quorumdb",
		Subsystem: "cluster",
		Name:      "role",
		Help:      "Current role (0=follower, 1=candidate, 2=leader)",
	})

	ClusterGeneration = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quorumdb",
		Subsystem: "cluster",
		Name:      "generation",
		Help:      "Current leadership generation",
	})

	ClusterHealthyPeers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quorumdb",
		Subsystem: "cluster",
		Name:      "healthy_peers",
		Help:      "Number of peers that answered the last heartbeat round",
	})

	ClusterQuorumSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quorumdb",
		Subsystem: "cluster",
		Name:      "quorum_size",
		Help:      "Majority threshold for the configured membership",
	})

	ClusterHasQuorum = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quorumdb",
		Subsystem: "cluster",
		Name:      "has_quorum",
		Help:      "Whether the node can currently reach a majority (1=yes)",
	})

	ElectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "election",
		Name:      "total",
		Help:      "Election rounds by outcome",
	}, []string{"outcome"})

	ElectionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "quorumdb",
		Subsystem: "election",
		Name:      "duration_seconds",
		Help:      "Vote collection round duration",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	VotesGranted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "election",
		Name:      "votes_granted_total",
		Help:      "Votes this node granted to candidates",
	})

	VotesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "election",
		Name:      "votes_rejected_total",
		Help:      "Vote requests this node rejected",
	})

	LeaseRenewalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "lease",
		Name:      "renewals_total",
		Help:      "Lease renewal rounds by status",
	}, []string{"status"})

	DemotionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "cluster",
		Name:      "demotions_total",
		Help:      "Leader/candidate demotions by reason",
	}, []string{"reason"})

	StaleRPCsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "cluster",
		Name:      "stale_rpcs_total",
		Help:      "Inbound RPCs rejected for carrying an outdated generation",
	}, []string{"rpc"})

	WritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "writes_total",
		Help:      "Client writes by status",
	}, []string{"status"})

	ReplicationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "duration_seconds",
		Help:      "Write replication round duration",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
	})

	ReplicationAcks = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "acks",
		Help:      "Acknowledgments collected per replication round",
		Buckets:   prometheus.LinearBuckets(0, 1, 10),
	})

	RecordsCommitted = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "records_committed",
		Help:      "Committed records held locally",
	})

	RecordsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "replication",
		Name:      "records_discarded_total",
		Help:      "Uncommitted records discarded (timeout or reconciliation)",
	})

	ReconciliationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "cluster",
		Name:      "reconciliations_total",
		Help:      "Reconciliation pulls by status",
	}, []string{"status"})

	VoteLogWritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "votelog",
		Name:      "writes_total",
		Help:      "Durable generation records appended",
	})

	GRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quorumdb",
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "Total gRPC requests",
	}, []string{"service", "method", "code"})

	GRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quorumdb",
		Subsystem: "grpc",
		Name:      "request_duration_seconds",
		Help:      "gRPC request duration",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
	}, []string{"service", "method"})
)
