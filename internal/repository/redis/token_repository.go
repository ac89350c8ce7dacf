package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
)

// TokenRepository keeps token records past their expiry for a retention window, so an
// expired token can still be told apart from one that never existed. Redis evicts them after that.
type TokenRepository struct {
	cli       *redis.Client
	retention time.Duration
	l         logger.Logger
}

func NewTokenRepository(cli *redis.Client, retention time.Duration, l logger.Logger) *TokenRepository {
	return &TokenRepository{
		cli:       cli,
		retention: retention,
		l:         l,
	}
}

func (r *TokenRepository) Save(ctx context.Context, rec *models.TokenRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return qerrors.Infra("token.save", err)
	}

	ttl := rec.ExpiresAt.Sub(rec.IssuedAt) + r.retention
	if ttl < time.Second {
		ttl = time.Second
	}

	ok, err := r.cli.SetNX(ctx, tokenKey(rec.TokenHash), data, ttl).Result()
	if err != nil {
		r.l.Errorf(ctx, "redisTokenRepository.Save: %v", err)
		return qerrors.Infra("token.save", err)
	}
	if !ok {
		return qerrors.ErrConflict
	}

	r.l.Debug(ctx, "Token stored",
		"entry_id", rec.EntryID,
		"ttl", ttl,
	)

	return nil
}

func (r *TokenRepository) Get(ctx context.Context, tokenHash string) (*models.TokenRecord, error) {
	data, err := r.cli.Get(ctx, tokenKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, qerrors.ErrTokenNotFound
		}
		r.l.Errorf(ctx, "redisTokenRepository.Get: %v", err)
		return nil, qerrors.Infra("token.get", err)
	}

	var rec models.TokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		r.l.Errorf(ctx, "redisTokenRepository.Get.Unmarshal: %v", err)
		return nil, qerrors.Infra("token.get", err)
	}

	return &rec, nil
}

func (r *TokenRepository) Delete(ctx context.Context, tokenHash string) error {
	if err := r.cli.Del(ctx, tokenKey(tokenHash)).Err(); err != nil {
		r.l.Errorf(ctx, "redisTokenRepository.Delete: %v", err)
		return qerrors.Infra("token.delete", err)
	}

	return nil
}

// PurgeExpired is a no-op: key TTLs already drop records once the retention window passes.
func (r *TokenRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	return 0, nil
}
