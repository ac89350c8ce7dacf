package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
)

func TestCoordinatorShopsAreIndependent(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(20 * time.Millisecond)

	unlockA, err := c.LockShop(ctx, "A")
	require.NoError(t, err)

	unlockB, err := c.LockShop(ctx, "B")
	require.NoError(t, err)
	unlockB()

	_, err = c.LockShop(ctx, "A")
	assert.ErrorIs(t, err, qerrors.ErrBusy)
	unlockA()
}

func TestCoordinatorLockShopsReleasesOnFailure(t *testing.T) {
	ctx := context.Background()
	c := NewCoordinator(20 * time.Millisecond)

	unlockB, err := c.LockShop(ctx, "B")
	require.NoError(t, err)

	// A is taken first, then B times out; A must be given back.
	_, err = c.LockShops(ctx, []string{"B", "A"})
	assert.ErrorIs(t, err, qerrors.ErrBusy)

	unlockA, err := c.LockShop(ctx, "A")
	require.NoError(t, err)
	unlockA()
	unlockB()

	unlock, err := c.LockShops(ctx, []string{"B", "A", "B"})
	require.NoError(t, err)
	unlock()
}

func TestCoordinatorHonoursCallerCancellation(t *testing.T) {
	c := NewCoordinator(time.Second)

	unlock, err := c.LockBarber(context.Background(), "x")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.LockBarber(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, qerrors.ErrBusy)
}

func TestDedupSorted(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupSorted([]string{"c", "a", "b", "a"}))
}
