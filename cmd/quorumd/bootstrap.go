package main

import (
	"quorumdb/internal/clock"
	"quorumdb/internal/cluster"
	"quorumdb/internal/cluster/votelog"
	"quorumdb/internal/configuration"
	"quorumdb/internal/store"
	"quorumdb/internal/transport"
)

type Services struct {
	Store       *store.Store
	VoteLog     *votelog.Log
	Peers       *transport.PeerManager
	Coordinator *cluster.Coordinator
}

func NewServices(cfg *configuration.Properties) (*Services, error) {
	st := store.NewStore()

	votes, err := votelog.Open(cfg.Cluster.VoteLogDir)
	if err != nil {
		return nil, err
	}

	peers, err := transport.NewPeerManager(cfg.Cluster.NodeID, cfg.Cluster.Peers)
	if err != nil {
		votes.Close()
		return nil, err
	}

	coord := cluster.New(peers, votes, st, clock.Real{},
		cluster.NewConfigFromProperties(&cfg.Cluster))

	return &Services{
		Store:       st,
		VoteLog:     votes,
		Peers:       peers,
		Coordinator: coord,
	}, nil
}

func (s *Services) Shutdown() {
	s.Coordinator.Stop()
	s.Peers.Close()
	s.VoteLog.Close()
}
