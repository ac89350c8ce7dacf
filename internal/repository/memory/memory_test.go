package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
)

func TestEntryRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// Same arrival timestamp: insertion order decides.
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Append(ctx, &models.QueueEntry{
			ID: id, BarbershopID: "shop", Status: models.StatusWaiting, ArrivalTime: base,
		}))
	}
	require.NoError(t, repo.Append(ctx, &models.QueueEntry{
		ID: "other", BarbershopID: "shop-2", Status: models.StatusWaiting, ArrivalTime: base,
	}))
	assert.ErrorIs(t, repo.Append(ctx, &models.QueueEntry{ID: "a", BarbershopID: "shop"}), qerrors.ErrConflict)

	active, err := repo.ListActive(ctx, "shop")
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{active[0].ID, active[1].ID, active[2].ID})
	assert.Equal(t, int64(1), active[0].Seq)

	finished := base.Add(time.Hour)
	_, err = repo.Update(ctx, "b", func(e *models.QueueEntry) error {
		e.Status = models.StatusLeft
		e.FinishedAt = &finished
		return nil
	})
	require.NoError(t, err)

	_, err = repo.Update(ctx, "b", func(e *models.QueueEntry) error { return nil })
	assert.ErrorIs(t, err, qerrors.ErrInvalidState)
	_, err = repo.Update(ctx, "missing", func(e *models.QueueEntry) error { return nil })
	assert.ErrorIs(t, err, qerrors.ErrEntryNotFound)
	assert.ErrorIs(t, err, qerrors.ErrNotFound)

	active, err = repo.ListActive(ctx, "shop")
	require.NoError(t, err)
	assert.Len(t, active, 2)

	terminal, err := repo.ListTerminal(ctx, "shop", base, base.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, terminal, 1)
	assert.Equal(t, "b", terminal[0].ID)

	terminal, err = repo.ListTerminal(ctx, "shop", base.Add(3*time.Hour), base.Add(4*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, terminal)

	require.NoError(t, repo.UpdatePositions(ctx, "shop", map[string]int{"a": 1, "c": 2}))
	c, err := repo.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Position)
	assert.ErrorIs(t, repo.UpdatePositions(ctx, "shop", map[string]int{"other": 1}), qerrors.ErrEntryNotFound)
}

func TestEntryRepositoryUpdateRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository()
	require.NoError(t, repo.Append(ctx, &models.QueueEntry{ID: "a", BarbershopID: "shop", Status: models.StatusWaiting}))

	_, err := repo.Update(ctx, "a", func(e *models.QueueEntry) error {
		e.Status = models.StatusCalled
		return qerrors.ErrConflict
	})
	assert.ErrorIs(t, err, qerrors.ErrConflict)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaiting, got.Status)
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository()
	now := time.Now()

	require.NoError(t, repo.Save(ctx, &models.TokenRecord{TokenHash: "h1", EntryID: "e1", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Save(ctx, &models.TokenRecord{TokenHash: "h2", EntryID: "e2", ExpiresAt: now.Add(time.Hour)}))
	assert.ErrorIs(t, repo.Save(ctx, &models.TokenRecord{TokenHash: "h1"}), qerrors.ErrConflict)

	rec, err := repo.Get(ctx, "h2")
	require.NoError(t, err)
	assert.Equal(t, "e2", rec.EntryID)

	n, err := repo.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = repo.Get(ctx, "h1")
	assert.ErrorIs(t, err, qerrors.ErrTokenNotFound)

	require.NoError(t, repo.Delete(ctx, "h2"))
	_, err = repo.Get(ctx, "h2")
	assert.ErrorIs(t, err, qerrors.ErrTokenNotFound)
}

func TestBarberDirectory(t *testing.T) {
	ctx := context.Background()
	dir := NewBarberDirectory()

	require.NoError(t, dir.SaveAll(ctx, []*models.BarberAssignment{
		{BarberID: "z", BarbershopID: "A", Active: true},
		{BarberID: "y", BarbershopID: "A", Active: false},
	}))

	ok, err := dir.IsActive(ctx, "z", "A")
	require.NoError(t, err)
	assert.True(t, ok)

	ids, err := dir.ListActiveInShop(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, ids)

	require.NoError(t, dir.SaveAll(ctx, []*models.BarberAssignment{
		{BarberID: "z", BarbershopID: "A", Active: false},
		{BarberID: "z", BarbershopID: "B", Active: true},
	}))

	as, err := dir.ListByBarber(ctx, "z")
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, "A", as[0].BarbershopID)
	assert.False(t, as[0].Active)
	assert.True(t, as[1].Active)

	ok, err = dir.IsActive(ctx, "nobody", "A")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShopConfigProvider(t *testing.T) {
	ctx := context.Background()
	p := NewShopConfigProvider()

	_, err := p.Get(ctx, "shop")
	assert.ErrorIs(t, err, qerrors.ErrShopNotFound)

	require.NoError(t, p.Save(ctx, &models.ShopConfig{BarbershopID: "shop", AverageServiceMinutes: 15, MaxQueueLength: 10}))
	cfg, err := p.Get(ctx, "shop")
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.AverageServiceMinutes)

	all, err := p.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
