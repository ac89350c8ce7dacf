package memory

import (
	"context"
	"sync"
	"time"

	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/repository"
)

type tokenRepository struct {
	mu   sync.RWMutex
	recs map[string]models.TokenRecord
}

func NewTokenRepository() repository.TokenRepository {
	return &tokenRepository{recs: make(map[string]models.TokenRecord)}
}

func (r *tokenRepository) Save(ctx context.Context, rec *models.TokenRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recs[rec.TokenHash]; ok {
		return qerrors.ErrConflict
	}
	r.recs[rec.TokenHash] = *rec

	return nil
}

func (r *tokenRepository) Get(ctx context.Context, tokenHash string) (*models.TokenRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.recs[tokenHash]
	if !ok {
		return nil, qerrors.ErrTokenNotFound
	}

	return &rec, nil
}

func (r *tokenRepository) Delete(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.recs, tokenHash)

	return nil
}

func (r *tokenRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for h, rec := range r.recs {
		if rec.ExpiresAt.Before(cutoff) {
			delete(r.recs, h)
			n++
		}
	}

	return n, nil
}
