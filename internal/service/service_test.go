package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vogiaan1904/barberqueue/config"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/repository"
	"github.com/vogiaan1904/barberqueue/internal/repository/memory"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
	"github.com/vogiaan1904/barberqueue/pkg/util"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fakeProducer struct {
	mu     sync.Mutex
	events []models.QueueEvent
	err    error
}

func (p *fakeProducer) PublishQueueEvent(ctx context.Context, e models.QueueEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *fakeProducer) Close() error { return nil }

func (p *fakeProducer) types() []models.QueueEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.QueueEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type testEnv struct {
	svc     QueueService
	tokens  TokenService
	coord   *Coordinator
	clock   *util.ManualClock
	prod    *fakeProducer
	entries repository.EntryRepository
	barbers repository.BarberDirectory
	shops   repository.ShopConfigProvider
}

var testQueueConfig = config.QueueConfig{
	LockTimeout:    time.Second,
	TokenTTL:       4 * time.Hour,
	TokenRetention: time.Hour,
	PurgeInterval:  time.Minute,
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	l := logger.InitializeTestZapLogger()
	clock := util.NewManualClock(t0)
	env := &testEnv{
		clock:   clock,
		prod:    &fakeProducer{},
		coord:   NewCoordinator(testQueueConfig.LockTimeout),
		entries: memory.NewEntryRepository(),
		barbers: memory.NewBarberDirectory(),
		shops:   memory.NewShopConfigProvider(),
	}
	env.tokens = NewTokenService(
		memory.NewTokenRepository(),
		config.JWTConfig{Secret: "test-secret", Issuer: "barberqueue-test"},
		testQueueConfig,
		clock,
		l,
	)
	env.svc = NewQueueService(env.entries, env.barbers, env.shops, env.tokens, env.coord, env.prod, clock, l)

	return env
}

func (e *testEnv) shop(t *testing.T, id string, avg, max int) {
	t.Helper()
	require.NoError(t, e.svc.ConfigureShop(context.Background(), ConfigureShopInput{
		BarbershopID:          id,
		AverageServiceMinutes: avg,
		MaxQueueLength:        max,
	}))
}

func (e *testEnv) activate(t *testing.T, barberID, shopID string) {
	t.Helper()
	require.NoError(t, e.svc.SetBarberActive(context.Background(), SetBarberActiveInput{
		BarberID:     barberID,
		BarbershopID: shopID,
		Active:       true,
	}))
}

func (e *testEnv) enter(t *testing.T, shopID, name string, barber *string) *EnterQueueOutput {
	t.Helper()
	out, err := e.svc.EnterQueue(context.Background(), EnterQueueInput{
		BarbershopID:      shopID,
		ClientName:        name,
		ClientPhone:       "+55 11 91234-5678",
		RequestedBarberID: barber,
	})
	require.NoError(t, err)
	return out
}

func strPtr(s string) *string {
	return &s
}
