package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundFamily(t *testing.T) {
	assert.ErrorIs(t, ErrEntryNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrTokenNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrShopNotFound, ErrNotFound)
	assert.NotErrorIs(t, ErrEmptyQueue, ErrNotFound)
}

func TestIsExpected(t *testing.T) {
	assert.True(t, IsExpected(fmt.Errorf("call next: %w", ErrConflict)))
	assert.True(t, IsExpected(ErrEntryNotFound))
	assert.False(t, IsExpected(errors.New("connection refused")))
}

func TestInfra(t *testing.T) {
	assert.Nil(t, Infra("op", nil))

	err := Infra("store.Get", errors.New("dial tcp: refused"))
	assert.True(t, IsInfrastructure(err))
	assert.Contains(t, err.Error(), "store.Get")

	// taxonomy errors pass through untouched
	assert.Same(t, ErrBusy, Infra("lock", ErrBusy))

	// already-wrapped errors are not double wrapped
	assert.Same(t, err, Infra("outer", err))
}
