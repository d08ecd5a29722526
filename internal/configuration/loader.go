package configuration

import (
	"fmt"
	"log/slog"

	"quorumdb/internal/configuration/util"

	"gopkg.in/yaml.v3"
)

// Load reads the base application.yml from dir, applies the profile overlay
// if one is configured, and validates the result.
func Load(dir string) (*Properties, error) {
	cfg, err := loadBaseConfig(dir)
	if err != nil {
		return nil, err
	}

	if cfg.App.Profile != "" {
		if err := loadProfileConfig(dir, cfg); err != nil {
			return nil, err
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadBaseConfig(dir string) (*Properties, error) {
	raw, err := util.LoadAndExpandYaml(dir, "application")
	if err != nil {
		slog.Error("error loading base config", "error", err)
		return nil, err
	}

	cfg := Properties{}
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		slog.Error("error parsing base config", "error", err)
		return nil, err
	}

	return &cfg, nil
}

func loadProfileConfig(dir string, cfg *Properties) error {
	raw, err := util.LoadAndExpandYaml(dir, fmt.Sprintf("application-%s", cfg.App.Profile))
	if err != nil {
		slog.Error("error loading profile config", "profile", cfg.App.Profile, "error", err)
		return err
	}

	if err := yaml.Unmarshal([]byte(raw), cfg); err != nil {
		slog.Error("error parsing profile config", "profile", cfg.App.Profile, "error", err)
		return err
	}

	return nil
}

// Validate enforces the timing relationships the protocol depends on:
// the lease must outlive several heartbeat rounds, and no single RPC may
// stall a round past half a heartbeat interval.
func Validate(cfg *Properties) error {
	c := &cfg.Cluster

	if c.NodeID == 0 {
		return fmt.Errorf("cluster.node-id must be set")
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("cluster.heartbeat-interval must be positive")
	}
	if c.LeaseTimeout < 5*c.HeartbeatInterval {
		return fmt.Errorf("cluster.lease-timeout %v must be at least 5x heartbeat-interval %v",
			c.LeaseTimeout, c.HeartbeatInterval)
	}
	if c.RPCTimeout <= 0 {
		c.RPCTimeout = c.HeartbeatInterval / 2
	}
	if c.RPCTimeout > c.HeartbeatInterval/2 {
		return fmt.Errorf("cluster.rpc-timeout %v must not exceed half the heartbeat-interval %v",
			c.RPCTimeout, c.HeartbeatInterval)
	}
	if c.ReplicationTimeout <= 0 {
		c.ReplicationTimeout = c.HeartbeatInterval
	}
	if c.ElectionBackoffMin <= 0 {
		c.ElectionBackoffMin = c.HeartbeatInterval / 2
	}
	if c.ElectionBackoffMax < c.ElectionBackoffMin {
		c.ElectionBackoffMax = 2 * c.ElectionBackoffMin
	}
	if _, ok := c.Peers[c.NodeID]; len(c.Peers) > 0 && !ok {
		return fmt.Errorf("cluster.peers must include the local node-id %d", c.NodeID)
	}

	return nil
}
