package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vogiaan1904/barberqueue/config"
	"github.com/vogiaan1904/barberqueue/internal/monitoring"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

// Housekeeper runs periodic maintenance that correctness does not depend on: purging
// long-expired token records and refreshing per-barbershop snapshots and gauges.
type Housekeeper interface {
	Start(ctx context.Context) error
	Stop() error
	RunOnce(ctx context.Context)
	GetStatus() HousekeeperStatus
}

type HousekeeperStatus struct {
	IsRunning    bool      `json:"is_running"`
	StartedAt    time.Time `json:"started_at,omitempty"`
	LastRun      time.Time `json:"last_run,omitempty"`
	TokensPurged int64     `json:"tokens_purged"`
	ErrorCount   int64     `json:"error_count"`
}

type housekeeper struct {
	qSvc   QueueService
	tokens TokenService
	l      logger.Logger

	interval        time.Duration
	shutdownTimeout time.Duration
	maxRunDuration  time.Duration

	mu        sync.RWMutex
	isRunning bool
	startedAt time.Time
	stopCh    chan struct{}
	ticker    *time.Ticker
	wg        sync.WaitGroup

	lastRun      time.Time
	tokensPurged int64
	errorCount   int64
}

func NewHousekeeper(qSvc QueueService, tokens TokenService, l logger.Logger, cfg config.QueueConfig) Housekeeper {
	return &housekeeper{
		qSvc:            qSvc,
		tokens:          tokens,
		l:               l,
		interval:        cfg.PurgeInterval,
		shutdownTimeout: 10 * time.Second,
		maxRunDuration:  30 * time.Second,
		stopCh:          make(chan struct{}),
	}
}

func (h *housekeeper) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.isRunning {
		return errors.New("housekeeper is already running")
	}
	if h.interval <= 0 {
		return errors.New("housekeeper interval must be positive")
	}

	h.l.Info(ctx, "Starting housekeeper", "interval", h.interval)

	h.isRunning = true
	h.startedAt = time.Now()
	h.ticker = time.NewTicker(h.interval)

	h.wg.Add(1)
	go h.loop(ctx)

	return nil
}

func (h *housekeeper) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.isRunning {
		return errors.New("housekeeper is not running")
	}

	ctx := context.Background()
	h.l.Info(ctx, "Stopping housekeeper...")

	close(h.stopCh)
	if h.ticker != nil {
		h.ticker.Stop()
	}

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		h.l.Info(ctx, "Housekeeper stopped gracefully")
	case <-time.After(h.shutdownTimeout):
		h.l.Warn(ctx, "Housekeeper shutdown timeout exceeded")
	}

	h.isRunning = false
	return nil
}

func (h *housekeeper) loop(ctx context.Context) {
	defer h.wg.Done()

	for {
		select {
		case <-ctx.Done():
			h.l.Info(ctx, "Housekeeper stopped due to context cancellation")
			return
		case <-h.stopCh:
			return
		case <-h.ticker.C:
			h.RunOnce(ctx)
		}
	}
}

func (h *housekeeper) RunOnce(ctx context.Context) {
	start := time.Now()
	runCtx, cancel := context.WithTimeout(ctx, h.maxRunDuration)
	defer cancel()

	defer func() {
		h.mu.Lock()
		h.lastRun = time.Now()
		h.mu.Unlock()

		if d := time.Since(start); d > h.maxRunDuration {
			h.l.Warn(ctx, "Housekeeping took longer than expected", "duration", d)
		}
	}()

	n, err := h.tokens.PurgeExpired(runCtx)
	if err != nil {
		h.incrementErrorCount()
		h.l.Errorf(ctx, "service.housekeeper.RunOnce: purge tokens: %v", err)
	} else if n > 0 {
		monitoring.AddTokensPurged(n)
		h.mu.Lock()
		h.tokensPurged += int64(n)
		h.mu.Unlock()
		h.l.Info(ctx, "Purged expired tokens", "count", n)
	}

	shops, err := h.qSvc.ListBarbershops(runCtx)
	if err != nil {
		h.incrementErrorCount()
		h.l.Errorf(ctx, "service.housekeeper.RunOnce: list barbershops: %v", err)
		return
	}

	// Continue with the other shops even if one fails.
	for _, id := range shops {
		if _, err := h.qSvc.RefreshQueue(runCtx, id); err != nil {
			h.incrementErrorCount()
			h.l.Error(ctx, "Failed to refresh barbershop queue",
				"barbershop_id", id,
				"error", err,
			)
		}
	}
}

func (h *housekeeper) incrementErrorCount() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errorCount++
}

func (h *housekeeper) GetStatus() HousekeeperStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return HousekeeperStatus{
		IsRunning:    h.isRunning,
		StartedAt:    h.startedAt,
		LastRun:      h.lastRun,
		TokensPurged: h.tokensPurged,
		ErrorCount:   h.errorCount,
	}
}
