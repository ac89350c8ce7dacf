package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vogiaan1904/barberqueue/config"
	qerrors "github.com/vogiaan1904/barberqueue/internal/errors"
	"github.com/vogiaan1904/barberqueue/internal/models"
	"github.com/vogiaan1904/barberqueue/internal/repository"
	"github.com/vogiaan1904/barberqueue/pkg/logger"
	"github.com/vogiaan1904/barberqueue/pkg/util"
)

// TokenService mints and checks the credential a walk-in client polls with. A token is
// a signed JWT bound to one entry, backed by a record in the token table so it can be
// revoked before its absolute expiry.
type TokenService interface {
	Issue(ctx context.Context, entryID string) (string, *models.TokenRecord, error)
	// Validate returns the entry id bound to token, ErrTokenExpired or ErrTokenNotFound.
	Validate(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, tokenHash string) error
	PurgeExpired(ctx context.Context) (int, error)
}

type tokenService struct {
	repo      repository.TokenRepository
	jwtConf   config.JWTConfig
	ttl       time.Duration
	retention time.Duration
	clock     util.Clock
	l         logger.Logger
}

func NewTokenService(
	repo repository.TokenRepository,
	jwtConf config.JWTConfig,
	qConf config.QueueConfig,
	clock util.Clock,
	l logger.Logger,
) TokenService {
	return &tokenService{
		repo:      repo,
		jwtConf:   jwtConf,
		ttl:       qConf.TokenTTL,
		retention: qConf.TokenRetention,
		clock:     clock,
		l:         l,
	}
}

// HashToken is the key tokens are stored and revoked under; raw tokens are never persisted.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func (s *tokenService) Issue(ctx context.Context, entryID string) (string, *models.TokenRecord, error) {
	now := s.clock.Now()
	expAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   entryID,
		ID:        uuid.NewString(),
		Issuer:    s.jwtConf.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expAt),
	}

	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtConf.Secret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	rec := &models.TokenRecord{
		TokenHash: HashToken(tokenStr),
		EntryID:   entryID,
		IssuedAt:  now,
		ExpiresAt: expAt,
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		s.l.Errorf(ctx, "service.tokenService.Issue: %v", err)
		return "", nil, err
	}

	return tokenStr, rec, nil
}

func (s *tokenService) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", qerrors.ErrTokenNotFound
	}

	rec, err := s.repo.Get(ctx, HashToken(token))
	if err != nil {
		return "", err
	}

	if rec.IsExpired(s.clock.Now()) {
		return "", qerrors.ErrTokenExpired
	}

	// exp is truncated to whole seconds; the record carries the precise expiry.
	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtConf.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(time.Second),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", qerrors.ErrTokenExpired
		}
		s.l.Warnf(ctx, "service.tokenService.Validate: %v", err)
		return "", qerrors.ErrTokenNotFound
	}

	if claims.Subject != rec.EntryID {
		s.l.Warn(ctx, "Token subject does not match its record", "entry_id", rec.EntryID)
		return "", qerrors.ErrTokenNotFound
	}

	return rec.EntryID, nil
}

func (s *tokenService) Revoke(ctx context.Context, tokenHash string) error {
	if tokenHash == "" {
		return nil
	}
	if err := s.repo.Delete(ctx, tokenHash); err != nil {
		s.l.Errorf(ctx, "service.tokenService.Revoke: %v", err)
		return err
	}
	return nil
}

func (s *tokenService) PurgeExpired(ctx context.Context) (int, error) {
	return s.repo.PurgeExpired(ctx, s.clock.Now().Add(-s.retention))
}
