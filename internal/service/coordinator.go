package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/monitoring"
	"golang.org/x/sync/semaphore"
)

// Coordinator hands out one serialization domain per barbershop, plus one per barber for
// activation toggles. Waits are bounded: a lock not acquired within the timeout yields ErrBusy.
//
// Lock order is always barber first, then shops sorted by id. Shop-only operations never
// take a barber lock, so the order cannot cycle.
type Coordinator struct {
	mu      sync.Mutex
	shops   map[string]*semaphore.Weighted
	barbers map[string]*semaphore.Weighted
	timeout time.Duration
}

func NewCoordinator(timeout time.Duration) *Coordinator {
	return &Coordinator{
		shops:   make(map[string]*semaphore.Weighted),
		barbers: make(map[string]*semaphore.Weighted),
		timeout: timeout,
	}
}

// LockShop blocks until the barbershop's lock is held and returns its release func.
func (c *Coordinator) LockShop(ctx context.Context, shopID string) (func(), error) {
	return c.LockShops(ctx, []string{shopID})
}

// LockShops acquires several barbershop locks in id order. On failure nothing stays held.
func (c *Coordinator) LockShops(ctx context.Context, shopIDs []string) (func(), error) {
	ids := dedupSorted(shopIDs)
	held := make([]*semaphore.Weighted, 0, len(ids))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Release(1)
		}
	}

	for _, id := range ids {
		sem := c.sem(c.shops, id)
		start := time.Now()
		err := c.acquire(ctx, sem)
		monitoring.ObserveLockWait(id, time.Since(start))
		if err != nil {
			release()
			return nil, err
		}
		held = append(held, sem)
	}

	return release, nil
}

func (c *Coordinator) LockBarber(ctx context.Context, barberID string) (func(), error) {
	sem := c.sem(c.barbers, barberID)
	if err := c.acquire(ctx, sem); err != nil {
		return nil, err
	}
	return func() { sem.Release(1) }, nil
}

func (c *Coordinator) acquire(ctx context.Context, sem *semaphore.Weighted) error {
	waitCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := sem.Acquire(waitCtx, 1); err != nil {
		// The caller gave up; report that rather than contention.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return qerrors.ErrBusy
		}
		return err
	}
	return nil
}

func (c *Coordinator) sem(m map[string]*semaphore.Weighted, key string) *semaphore.Weighted {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := m[key]
	if !ok {
		s = semaphore.NewWeighted(1)
		m[key] = s
	}
	return s
}

func dedupSorted(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
