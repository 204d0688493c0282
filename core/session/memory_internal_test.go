package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreBusy(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	require.NoError(t, s.Insert(context.Background(), "t-1", "u-1"))

	s.mu.Lock()
	err := s.Insert(context.Background(), "t-2", "u-2")
	assert.ErrorIs(t, err, ErrLockUnavailable)

	_, found, err := s.Lookup(context.Background(), "t-1")
	assert.ErrorIs(t, err, ErrLockUnavailable)
	assert.False(t, found)
	s.mu.Unlock()

	_, ok := s.entries["t-2"]
	assert.False(t, ok, "failed insert must leave the store unchanged")

	identity, found, err := s.Lookup(context.Background(), "t-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u-1", identity)
}

func TestAuthenticatorEstablishBusyStore(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	auth := NewAuthenticator(s)

	s.mu.Lock()
	token, err := auth.Establish(context.Background(), "u-42")
	s.mu.Unlock()

	assert.ErrorIs(t, err, ErrLockUnavailable)
	assert.Empty(t, token)
	assert.Empty(t, s.entries)
}
