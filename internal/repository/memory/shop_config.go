package memory

import (
	"context"
	"sort"
	"sync"

	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/repository"
)

type shopConfigProvider struct {
	mu   sync.RWMutex
	cfgs map[string]models.ShopConfig
}

func NewShopConfigProvider() repository.ShopConfigProvider {
	return &shopConfigProvider{cfgs: make(map[string]models.ShopConfig)}
}

func (p *shopConfigProvider) Get(ctx context.Context, shopID string) (*models.ShopConfig, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	cfg, ok := p.cfgs[shopID]
	if !ok {
		return nil, qerrors.ErrShopNotFound
	}

	return &cfg, nil
}

func (p *shopConfigProvider) Save(ctx context.Context, cfg *models.ShopConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfgs[cfg.BarbershopID] = *cfg

	return nil
}

func (p *shopConfigProvider) List(ctx context.Context) ([]*models.ShopConfig, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*models.ShopConfig, 0, len(p.cfgs))
	for _, cfg := range p.cfgs {
		cfg := cfg
		out = append(out, &cfg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BarbershopID < out[j].BarbershopID
	})

	return out, nil
}
