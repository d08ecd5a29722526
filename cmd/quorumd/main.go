package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"quorumdb/internal/configuration"
	"quorumdb/internal/logging"
	"quorumdb/internal/metrics"
	"quorumdb/internal/transport"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	configDir := os.Getenv("QUORUMDB_CONFIG_DIR")
	if configDir == "" {
		configDir = "config"
	}

	cfg, err := configuration.Load(configDir)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Init(cfg.App.LogLevel)
	slog.Info("starting quorumd", "node_id", cfg.Cluster.NodeID, "profile", cfg.App.Profile)

	services, err := NewServices(cfg)
	if err != nil {
		slog.Error("failed to initialize services", "error", err)
		os.Exit(1)
	}

	if err := services.Coordinator.Start(); err != nil {
		slog.Error("failed to start coordinator", "error", err)
		services.Shutdown()
		os.Exit(1)
	}

	_, clusterSrv, err := transport.StartClusterServer(&cfg.Transport, services.Coordinator)
	if err != nil {
		slog.Error("failed to start cluster transport", "error", err)
		services.Shutdown()
		os.Exit(1)
	}

	_, clientSrv, err := transport.StartClientServer(&cfg.Transport, services.Coordinator)
	if err != nil {
		slog.Error("failed to start client transport", "error", err)
		clusterSrv.GracefulStop()
		services.Shutdown()
		os.Exit(1)
	}

	metricsSrv := metrics.NewServer(cfg.App.MetricsAddr)
	if err := metricsSrv.Start(); err != nil {
		slog.Error("failed to start metrics server", "error", err)
	}

	slog.Info("quorumd ready", "node_id", cfg.Cluster.NodeID)
	<-ctx.Done()

	slog.Info("shutting down quorumd", "node_id", cfg.Cluster.NodeID)
	clientSrv.GracefulStop()
	clusterSrv.GracefulStop()
	metricsSrv.Stop()
	services.Shutdown()
}
