package models

import "time"

type TokenRecord struct {
	TokenHash string    `json:"token_hash"`
	EntryID   string    `json:"entry_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t *TokenRecord) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
