package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/vogiaan1904/barberqueue/config"
	grpcSvc "github.com/vogiaan1904/barberqueue/internal/delivery/grpc"
	httpDelivery "github.com/vogiaan1904/barberqueue/internal/delivery/http"
	"github.com/vogiaan1904/barberqueue/internal/delivery/kafka/consumer"
	"github.com/vogiaan1904/barberqueue/internal/delivery/kafka/producer"
	"github.com/vogiaan1904/barberqueue/internal/infra/redis"
	"github.com/vogiaan1904/barberqueue/internal/service"
	pkgGrpc "github.com/vogiaan1904/barberqueue/pkg/grpc"
	pkgKafka "github.com/vogiaan1904/barberqueue/pkg/kafka"
	pkgLog "github.com/vogiaan1904/barberqueue/pkg/logger"
	"github.com/vogiaan1904/barberqueue/pkg/util"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	l := pkgLog.InitializeZapLogger(pkgLog.ZapConfig{
		Level:    cfg.Log.Level,
		Mode:     cfg.Log.Mode,
		Encoding: cfg.Log.Encoding,
	})
	defer l.Sync()

	var redisCli *goredis.Client
	if cfg.Store.Driver == config.StoreDriverRedis {
		redisCli, err = redis.Connect(ctx, cfg.Redis, l)
		if err != nil {
			l.Fatalf(ctx, "Failed to connect to Redis: %v", err)
		}
		defer redis.Disconnect(context.Background(), redisCli, l)
	}
	st := newStores(cfg, redisCli, l)

	// Kafka producer
	prod := producer.NewNopProducer()
	if cfg.Kafka.Enabled {
		kSyncProd, err := pkgKafka.NewProducer(pkgKafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			RetryMax:     cfg.Kafka.ProducerRetryMax,
			RequiredAcks: cfg.Kafka.ProducerRequiredAcks,
		})
		if err != nil {
			l.Fatalf(ctx, "Failed to initialize Kafka producer: %v", err)
		}
		prod = producer.NewProducer(kSyncProd, l)
		l.Info(ctx, "Kafka producer connected", "brokers", cfg.Kafka.Brokers)
	}
	defer prod.Close()

	// Initialize services
	clock := util.SystemClock()
	tokenSvc := service.NewTokenService(st.tokens, cfg.JWT, cfg.Queue, clock, l)
	coord := service.NewCoordinator(cfg.Queue.LockTimeout)
	qSvc := service.NewQueueService(st.entries, st.barbers, st.shops, tokenSvc, coord, prod, clock, l)

	if err := seedBarbershops(ctx, cfg.Queue, st.shops, qSvc, l); err != nil {
		l.Fatalf(ctx, "Failed to seed barbershops: %v", err)
	}

	// Kafka consumer
	var cons *consumer.Consumer
	if cfg.Kafka.Enabled {
		kConsGr, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			GroupID: cfg.Kafka.ConsumerGroupID,
		})
		if err != nil {
			l.Fatalf(ctx, "Failed to initialize Kafka consumer: %v", err)
		}
		cons = consumer.NewConsumer(kConsGr, qSvc, l)
		if err := cons.Start(ctx); err != nil {
			l.Fatalf(ctx, "Failed to start Kafka consumer: %v", err)
		}
	}

	hk := service.NewHousekeeper(qSvc, tokenSvc, l, cfg.Queue)
	if err := hk.Start(ctx); err != nil {
		l.Fatalf(ctx, "Failed to start housekeeper: %v", err)
	}

	// gRPC server
	lnr, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRpcPort))
	if err != nil {
		l.Fatalf(ctx, "gRPC server failed to listen: %v", err)
	}
	gRpcSrv, healthSrv := pkgGrpc.NewServer(grpc.UnaryInterceptor(grpcSvc.LoggingInterceptor(l)))
	grpcSvc.RegisterQueueServiceServer(gRpcSrv, grpcSvc.NewGrpcService(qSvc, clock, l))
	healthSrv.SetServingStatus(grpcSvc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	// HTTP server
	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      httpDelivery.NewHTTPHandler(qSvc, l, clock).Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Infof(ctx, "gRPC server is listening on port: %d", cfg.Server.GRpcPort)
		return gRpcSrv.Serve(lnr)
	})
	g.Go(func() error {
		l.Infof(ctx, "HTTP server is listening on port: %d", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		l.Info(ctx, "Server shutting down...")
		healthSrv.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := hk.Stop(); err != nil {
			l.Errorf(shutdownCtx, "Failed to stop housekeeper: %v", err)
		}
		if cons != nil {
			if err := cons.Close(); err != nil {
				l.Errorf(shutdownCtx, "Failed to close Kafka consumer: %v", err)
			}
		}

		gRpcSrv.GracefulStop()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Errorf(context.Background(), "Server stopped with error: %v", err)
	}

	l.Info(context.Background(), "Server exited")
}
