package transport

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"

	"quorumdb/internal/cluster"
	"quorumdb/internal/configuration"
	"quorumdb/internal/metrics"
	"quorumdb/internal/transport/endpoint"
	clusterpb "quorumdb/internal/transport/gen/clusterpb"
)

// StartClusterServer serves the peer-to-peer protocol on the cluster
// address.
func StartClusterServer(cfg *configuration.TransportConfigurationProperties, coord *cluster.Coordinator) (net.Listener, *grpc.Server, error) {
	lis, err := net.Listen(cfg.Network, cfg.ClusterAddr())
	if err != nil {
		return nil, nil, err
	}

	s := newServer(cfg)
	clusterpb.RegisterClusterTransportServiceServer(s, endpoint.NewClusterTransportServer(coord))

	slog.Info("cluster transport listening", "addr", lis.Addr().String())
	go serve(s, lis)

	return lis, s, nil
}

// StartClientServer serves the client-facing surface on the client
// address.
func StartClientServer(cfg *configuration.TransportConfigurationProperties, coord *cluster.Coordinator) (net.Listener, *grpc.Server, error) {
	lis, err := net.Listen(cfg.Network, cfg.ClientAddr())
	if err != nil {
		return nil, nil, err
	}

	s := newServer(cfg)
	clusterpb.RegisterClientEventServiceServer(s, endpoint.NewClientEventServer(coord))

	slog.Info("client transport listening", "addr", lis.Addr().String())
	go serve(s, lis)

	return lis, s, nil
}

func newServer(cfg *configuration.TransportConfigurationProperties) *grpc.Server {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout == 0 {
		slog.Warn("transport timeout not set, defaulting to 1 second")
		timeout = time.Second
	}

	return grpc.NewServer(grpc.ChainUnaryInterceptor(
		timeoutInterceptor(timeout),
		metrics.UnaryServerInterceptor(),
	))
}

func serve(s *grpc.Server, lis net.Listener) {
	if err := s.Serve(lis); err != nil {
		slog.Error("transport serve failed", "error", err)
	}
}

func timeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
