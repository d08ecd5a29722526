package metrics

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor observes every unary RPC on the cluster and
// client surfaces: a count labelled with service, method, and status
// code, plus a latency sample.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		service, method := splitMethodName(info.FullMethod)
		GRPCRequestsTotal.WithLabelValues(service, method, status.Code(err).String()).Inc()
		GRPCRequestDuration.WithLabelValues(service, method).Observe(time.Since(start).Seconds())

		return resp, err
	}
}

// splitMethodName parses gRPC's "/package.Service/Method" form into label
// values, falling back to "unknown" rather than dropping the sample.
func splitMethodName(fullMethod string) (string, string) {
	name := strings.TrimPrefix(fullMethod, "/")
	if name == "" {
		return "unknown", "unknown"
	}
	service, method, ok := strings.Cut(name, "/")
	if !ok {
		return "unknown", name
	}
	return service, method
}
