package repository

import (
	"context"
	"time"

	"github.com/vogiaan1904/barberqueue/internal/models"
)

// EntryRepository is the per-barbershop QueueEntry store. It performs no locking of its own:
// every mutating call must be made while holding the barbershop's coordinator lock.
type EntryRepository interface {
	// Append stores a new entry and assigns its insertion sequence.
	Append(ctx context.Context, e *models.QueueEntry) error
	Get(ctx context.Context, id string) (*models.QueueEntry, error)
	// ListActive returns the non-terminal entries of a barbershop ordered by arrival.
	ListActive(ctx context.Context, shopID string) ([]*models.QueueEntry, error)
	// Update applies fn to a copy of the stored entry and persists the result.
	// Unknown ids yield ErrEntryNotFound, terminal entries ErrInvalidState.
	Update(ctx context.Context, id string, fn func(e *models.QueueEntry) error) (*models.QueueEntry, error)
	UpdatePositions(ctx context.Context, shopID string, positions map[string]int) error
	// ListTerminal returns terminal entries whose FinishedAt falls in [from, to].
	ListTerminal(ctx context.Context, shopID string, from, to time.Time) ([]*models.QueueEntry, error)
}

// TokenRepository is the side TTL table backing client session tokens, keyed by token hash.
type TokenRepository interface {
	Save(ctx context.Context, rec *models.TokenRecord) error
	Get(ctx context.Context, tokenHash string) (*models.TokenRecord, error)
	Delete(ctx context.Context, tokenHash string) error
	// PurgeExpired drops records that expired before the cutoff and reports how many were removed.
	PurgeExpired(ctx context.Context, cutoff time.Time) (int, error)
}

// BarberDirectory persists barber activation state per barbershop.
type BarberDirectory interface {
	ListByBarber(ctx context.Context, barberID string) ([]*models.BarberAssignment, error)
	ListActiveInShop(ctx context.Context, shopID string) ([]string, error)
	IsActive(ctx context.Context, barberID, shopID string) (bool, error)
	// SaveAll persists the assignments as one unit.
	SaveAll(ctx context.Context, as []*models.BarberAssignment) error
}

type ShopConfigProvider interface {
	Get(ctx context.Context, shopID string) (*models.ShopConfig, error)
	Save(ctx context.Context, cfg *models.ShopConfig) error
	List(ctx context.Context) ([]*models.ShopConfig, error)
}
