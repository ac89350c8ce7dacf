package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vogiaan1904/barberqueue/config"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/repository"
	"github.com/vogiaan1904/barberqueue/internal/repository/memory"
	repo "github.com/vogiaan1904/barberqueue/internal/repository/redis"
	"github.com/vogiaan1904/barberqueue/internal/service"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

type stores struct {
	entries repository.EntryRepository
	tokens  repository.TokenRepository
	barbers repository.BarberDirectory
	shops   repository.ShopConfigProvider
}

func newStores(cfg *config.Config, cli *redis.Client, l logger.Logger) stores {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return stores{
			entries: memory.NewEntryRepository(),
			tokens:  memory.NewTokenRepository(),
			barbers: memory.NewBarberDirectory(),
			shops:   memory.NewShopConfigProvider(),
		}
	}

	return stores{
		entries: repo.NewEntryRepository(cli, l),
		tokens:  repo.NewTokenRepository(cli, cfg.Queue.TokenRetention, l),
		barbers: repo.NewBarberDirectory(cli, l),
		shops:   repo.NewShopConfigProvider(cli, l),
	}
}

// seedBarbershops creates the configured barbershops with default settings.
// Barbershops that already have a stored config are left untouched.
func seedBarbershops(ctx context.Context, cfg config.QueueConfig, shops repository.ShopConfigProvider, qSvc service.QueueService, l logger.Logger) error {
	for _, id := range cfg.SeedBarbershops {
		_, err := shops.Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, qerrors.ErrShopNotFound) {
			return fmt.Errorf("seed %s: %w", id, err)
		}

		if err := qSvc.ConfigureShop(ctx, service.ConfigureShopInput{
			BarbershopID:          id,
			AverageServiceMinutes: cfg.DefaultAverageServiceMinutes,
			MaxQueueLength:        cfg.DefaultMaxQueueLength,
		}); err != nil {
			return fmt.Errorf("seed %s: %w", id, err)
		}
		l.Info(ctx, "Seeded barbershop", "barbershop_id", id)
	}
	return nil
}
