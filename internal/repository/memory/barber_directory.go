package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/repository"
)

type barberDirectory struct {
	mu sync.RWMutex
	// barber id -> shop id -> assignment
	byBarber map[string]map[string]models.BarberAssignment
}

func NewBarberDirectory() repository.BarberDirectory {
	return &barberDirectory{byBarber: make(map[string]map[string]models.BarberAssignment)}
}

func (d *barberDirectory) ListByBarber(ctx context.Context, barberID string) ([]*models.BarberAssignment, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*models.BarberAssignment, 0, len(d.byBarber[barberID]))
	for _, a := range d.byBarber[barberID] {
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BarbershopID < out[j].BarbershopID
	})

	return out, nil
}

func (d *barberDirectory) ListActiveInShop(ctx context.Context, shopID string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []string
	for barberID, shops := range d.byBarber {
		if a, ok := shops[shopID]; ok && a.Active {
			out = append(out, barberID)
		}
	}
	sort.Strings(out)

	return out, nil
}

func (d *barberDirectory) IsActive(ctx context.Context, barberID, shopID string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.byBarber[barberID][shopID]
	return ok && a.Active, nil
}

func (d *barberDirectory) SaveAll(ctx context.Context, as []*models.BarberAssignment) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, a := range as {
		shops, ok := d.byBarber[a.BarberID]
		if !ok {
			shops = make(map[string]models.BarberAssignment)
			d.byBarber[a.BarberID] = shops
		}
		shops[a.BarbershopID] = *a
	}

	return nil
}
