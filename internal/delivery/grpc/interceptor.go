package grpc

import (
	"context"
	"time"

	"github.com/vogiaan1904/barberqueue/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs one line per unary call with its status code and latency.
func LoggingInterceptor(l logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		ctx = l.WithFields(ctx, "grpc_method", info.FullMethod)

		res, err := handler(ctx, req)

		code := status.Code(err)
		args := []any{"gRPC request",
			"code", code.String(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			args = append(args, "error", err)
		}

		switch code {
		case codes.OK:
			l.Info(ctx, args...)
		case codes.Internal, codes.Unavailable, codes.Unknown:
			l.Error(ctx, args...)
		default:
			l.Warn(ctx, args...)
		}

		return res, err
	}
}
