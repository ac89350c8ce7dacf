package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vogiaan1904/barberqueue/config"
	"github.com/vogiaan1904/barberqueue/internal/delivery/kafka/producer"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/repository/memory"
	"github.com/vogiaan1904/barberqueue/internal/service"
	pkgGrpc "github.com/vogiaan1904/barberqueue/pkg/grpc"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
	"github.com/vogiaan1904/barberqueue/pkg/util"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const shopID = "shop-1"

type testEnv struct {
	client *pkgGrpc.StructClient
	dialer grpc.DialOption
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	l := logger.InitializeTestZapLogger()
	clock := util.NewManualClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	qConf := config.QueueConfig{
		LockTimeout:    time.Second,
		TokenTTL:       4 * time.Hour,
		TokenRetention: time.Hour,
	}
	tokens := service.NewTokenService(
		memory.NewTokenRepository(),
		config.JWTConfig{Secret: "test-secret", Issuer: "barberqueue-test"},
		qConf,
		clock,
		l,
	)
	qSvc := service.NewQueueService(
		memory.NewEntryRepository(),
		memory.NewBarberDirectory(),
		memory.NewShopConfigProvider(),
		tokens,
		service.NewCoordinator(qConf.LockTimeout),
		producer.NewNopProducer(),
		clock,
		l,
	)

	lis := bufconn.Listen(1 << 20)
	srv, _ := pkgGrpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(l)))
	RegisterQueueServiceServer(srv, NewGrpcService(qSvc, clock, l))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	dialer := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
	cli, cleanup, err := pkgGrpc.NewStructClient("passthrough:///bufnet", ServiceName, dialer)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	env := &testEnv{client: cli, dialer: dialer}
	env.call(t, MethodConfigureShop, map[string]any{
		"barbershop_id":           shopID,
		"average_service_minutes": 20,
		"max_queue_length":        5,
	})
	return env
}

func (e *testEnv) call(t *testing.T, method string, req map[string]any) map[string]any {
	t.Helper()
	out, err := e.client.Call(context.Background(), method, req)
	require.NoError(t, err)
	return out
}

func (e *testEnv) callErr(t *testing.T, method string, req map[string]any) codes.Code {
	t.Helper()
	_, err := e.client.Call(context.Background(), method, req)
	require.Error(t, err)
	return status.Code(err)
}

func TestGrpcQueueFlow(t *testing.T) {
	env := newTestEnv(t)

	first := env.call(t, MethodEnterQueue, map[string]any{
		"barbershop_id": shopID,
		"client_name":   "Ana",
		"client_phone":  "+5511912345678",
	})
	second := env.call(t, MethodEnterQueue, map[string]any{
		"barbershop_id": shopID,
		"client_name":   "Bruno",
		"client_phone":  "+5511912345679",
	})
	assert.Equal(t, float64(1), first["position"])
	assert.Equal(t, float64(2), second["position"])
	assert.Equal(t, float64(20), second["estimated_minutes"])

	env.call(t, MethodSetBarberActive, map[string]any{
		"barbershop_id": shopID,
		"barber_id":     "barber-1",
		"active":        true,
	})

	called := env.call(t, MethodCallNext, map[string]any{"barbershop_id": shopID, "barber_id": "barber-1"})
	assert.Equal(t, first["entry_id"], called["id"])
	assert.Equal(t, "called", called["status"])

	current := env.call(t, MethodGetBarberCurrent, map[string]any{"barbershop_id": shopID, "barber_id": "barber-1"})
	assert.Equal(t, first["entry_id"], current["id"])

	started := env.call(t, MethodStartService, map[string]any{"entry_id": first["entry_id"], "barber_id": "barber-1"})
	assert.Equal(t, "in_service", started["status"])

	finished := env.call(t, MethodFinishService, map[string]any{
		"entry_id":  first["entry_id"],
		"barber_id": "barber-1",
		"notes":     "beard trim",
	})
	assert.Equal(t, "done", finished["status"])

	st := env.call(t, MethodGetStatus, map[string]any{"token": second["token"]})
	assert.Equal(t, float64(1), st["position"])

	list := env.call(t, MethodListActiveQueue, map[string]any{"barbershop_id": shopID, "viewer": "barber-1"})
	entries, ok := list["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, true, entries[0].(map[string]any)["servable"])

	inService := env.call(t, MethodListActiveQueue, map[string]any{"barbershop_id": shopID, "status": "in_service"})
	assert.Empty(t, inService["entries"])

	stats := env.call(t, MethodGetStats, map[string]any{"barbershop_id": shopID})
	assert.Equal(t, float64(1), stats["served"])

	env.call(t, MethodLeaveQueue, map[string]any{"token": second["token"]})
	assert.Equal(t, codes.NotFound, env.callErr(t, MethodGetStatus, map[string]any{"token": second["token"]}))
}

func TestGrpcErrorCodes(t *testing.T) {
	env := newTestEnv(t)

	entry := env.call(t, MethodEnterQueue, map[string]any{
		"barbershop_id": shopID,
		"client_name":   "Ana",
		"client_phone":  "+5511912345678",
	})

	tests := []struct {
		name   string
		method string
		req    map[string]any
		want   codes.Code
	}{
		{
			name:   "invalid phone",
			method: MethodEnterQueue,
			req:    map[string]any{"barbershop_id": shopID, "client_name": "Ana", "client_phone": "x"},
			want:   codes.InvalidArgument,
		},
		{
			name:   "unknown barbershop",
			method: MethodListActiveQueue,
			req:    map[string]any{"barbershop_id": "nowhere"},
			want:   codes.NotFound,
		},
		{
			name:   "unknown status filter",
			method: MethodListActiveQueue,
			req:    map[string]any{"barbershop_id": shopID, "status": "sleeping"},
			want:   codes.InvalidArgument,
		},
		{
			name:   "inactive barber calls next",
			method: MethodCallNext,
			req:    map[string]any{"barbershop_id": shopID, "barber_id": "barber-9"},
			want:   codes.PermissionDenied,
		},
		{
			name:   "start a waiting entry",
			method: MethodStartService,
			req:    map[string]any{"entry_id": entry["entry_id"], "barber_id": "barber-1"},
			want:   codes.FailedPrecondition,
		},
		{
			name:   "client removes entry",
			method: MethodRemoveEntry,
			req:    map[string]any{"entry_id": entry["entry_id"], "actor_role": "client"},
			want:   codes.PermissionDenied,
		},
		{
			name:   "bad stats range",
			method: MethodGetStats,
			req:    map[string]any{"barbershop_id": shopID, "from": "soon"},
			want:   codes.InvalidArgument,
		},
		{
			name:   "wrong field type",
			method: MethodSetBarberActive,
			req:    map[string]any{"barbershop_id": shopID, "barber_id": "b", "active": "yes"},
			want:   codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, env.callErr(t, tt.method, tt.req))
		})
	}
}

func TestGrpcHealth(t *testing.T) {
	env := newTestEnv(t)

	conn, err := grpc.NewClient("passthrough:///bufnet", env.dialer,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	res, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, res.Status)
}

func TestMapGRPCError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "busy", err: qerrors.ErrBusy, want: codes.Unavailable},
		{name: "queue full", err: qerrors.ErrQueueFull, want: codes.ResourceExhausted},
		{name: "expired", err: fmt.Errorf("validate: %w", qerrors.ErrTokenExpired), want: codes.Unauthenticated},
		{name: "empty", err: qerrors.ErrEmptyQueue, want: codes.NotFound},
		{name: "infra", err: qerrors.Infra("redis.Get", fmt.Errorf("refused")), want: codes.Unavailable},
		{name: "cancelled", err: ctx.Err(), want: codes.Canceled},
		{name: "unknown", err: fmt.Errorf("boom"), want: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(mapGRPCError(tt.err)))
		})
	}
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	ic := LoggingInterceptor(logger.InitializeTestZapLogger())
	info := &grpc.UnaryServerInfo{FullMethod: FullMethod(MethodGetStatus)}

	res, err := ic(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", res)

	_, err = ic(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
