package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/redis/go-redis/v9"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

type ShopConfigProvider struct {
	cli *redis.Client
	l   logger.Logger
}

func NewShopConfigProvider(cli *redis.Client, l logger.Logger) *ShopConfigProvider {
	return &ShopConfigProvider{
		cli: cli,
		l:   l,
	}
}

func (p *ShopConfigProvider) Get(ctx context.Context, shopID string) (*models.ShopConfig, error) {
	data, err := p.cli.Get(ctx, shopConfigKey(shopID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, qerrors.ErrShopNotFound
		}
		p.l.Errorf(ctx, "redisShopConfigProvider.Get: %v", err)
		return nil, qerrors.Infra("shop.get", err)
	}

	var cfg models.ShopConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, qerrors.Infra("shop.get", err)
	}

	return &cfg, nil
}

func (p *ShopConfigProvider) Save(ctx context.Context, cfg *models.ShopConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return qerrors.Infra("shop.save", err)
	}

	if _, err := p.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, shopConfigKey(cfg.BarbershopID), data, 0)
		pipe.SAdd(ctx, shopsKey(), cfg.BarbershopID)
		return nil
	}); err != nil {
		p.l.Errorf(ctx, "redisShopConfigProvider.Save: %v", err)
		return qerrors.Infra("shop.save", err)
	}

	return nil
}

func (p *ShopConfigProvider) List(ctx context.Context) ([]*models.ShopConfig, error) {
	ids, err := p.cli.SMembers(ctx, shopsKey()).Result()
	if err != nil {
		p.l.Errorf(ctx, "redisShopConfigProvider.List: %v", err)
		return nil, qerrors.Infra("shop.list", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = shopConfigKey(id)
	}

	vals, err := p.cli.MGet(ctx, keys...).Result()
	if err != nil {
		p.l.Errorf(ctx, "redisShopConfigProvider.List.MGet: %v", err)
		return nil, qerrors.Infra("shop.list", err)
	}

	out := make([]*models.ShopConfig, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var cfg models.ShopConfig
		if err := json.Unmarshal([]byte(s), &cfg); err != nil {
			return nil, qerrors.Infra("shop.list", err)
		}
		out = append(out, &cfg)
	}

	return out, nil
}
