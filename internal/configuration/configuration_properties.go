package configuration

import (
	"time"
)

type Properties struct {
	App       AppConfigurationProperties       `yaml:"app"`
	Transport TransportConfigurationProperties `yaml:"transport"`
	Cluster   ClusterConfigurationProperties   `yaml:"cluster"`
}

type AppConfigurationProperties struct {
	Profile     string `yaml:"profile"`
	LogLevel    string `yaml:"log-level"`
	MetricsAddr string `yaml:"metrics-addr"`
}

type TransportConfigurationProperties struct {
	Address     string `yaml:"address"`
	ClientPort  string `yaml:"client-port"`
	ClusterPort string `yaml:"cluster-port"`
	Network     string `yaml:"network"`
	Timeout     uint64 `yaml:"timeout"`
}

// Interval fields hold millisecond counts; use the *Duration methods.
type ClusterConfigurationProperties struct {
	NodeID      uint64            `yaml:"node-id"`
	Peers       map[uint64]string `yaml:"peers"`
	ClientPeers map[uint64]string `yaml:"client-peers"`

	HeartbeatInterval  time.Duration `yaml:"heartbeat-interval"`
	LeaseTimeout       time.Duration `yaml:"lease-timeout"`
	RPCTimeout         time.Duration `yaml:"rpc-timeout"`
	ReplicationTimeout time.Duration `yaml:"replication-timeout"`
	ElectionBackoffMin time.Duration `yaml:"election-backoff-min"`
	ElectionBackoffMax time.Duration `yaml:"election-backoff-max"`

	VoteLogDir string `yaml:"vote-log-dir"`
}

func (c *TransportConfigurationProperties) ClusterAddr() string {
	return c.Address + ":" + c.ClusterPort
}

func (c *TransportConfigurationProperties) ClientAddr() string {
	return c.Address + ":" + c.ClientPort
}

func (c *ClusterConfigurationProperties) HeartbeatDuration() time.Duration {
	return c.HeartbeatInterval * time.Millisecond
}

func (c *ClusterConfigurationProperties) LeaseDuration() time.Duration {
	return c.LeaseTimeout * time.Millisecond
}

func (c *ClusterConfigurationProperties) RPCDuration() time.Duration {
	return c.RPCTimeout * time.Millisecond
}

func (c *ClusterConfigurationProperties) ReplicationDuration() time.Duration {
	return c.ReplicationTimeout * time.Millisecond
}

func (c *ClusterConfigurationProperties) BackoffMinDuration() time.Duration {
	return c.ElectionBackoffMin * time.Millisecond
}

func (c *ClusterConfigurationProperties) BackoffMaxDuration() time.Duration {
	return c.ElectionBackoffMax * time.Millisecond
}

// MemberCount is the fixed cluster size N: all configured peers plus self
// if self is not listed.
func (c *ClusterConfigurationProperties) MemberCount() int {
	n := len(c.Peers)
	if _, ok := c.Peers[c.NodeID]; !ok {
		n++
	}
	return n
}
