package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/session"
	sessionredis "github.com/dmitrymomot/newslens/integration/sessionstore/redis"
)

func newStore(t *testing.T, cfg sessionredis.Config) (*sessionredis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return sessionredis.New(client, cfg), mr
}

func TestStoreInsertLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newStore(t, sessionredis.Config{})

	require.NoError(t, store.Insert(ctx, "t-1", "u-42"))
	assert.True(t, mr.Exists(sessionredis.DefaultKeyPrefix+"t-1"))

	identity, found, err := store.Lookup(ctx, "t-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u-42", identity)

	_, found, err = store.Lookup(ctx, "garbage")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreInsertOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newStore(t, sessionredis.Config{KeyPrefix: "test:"})

	require.NoError(t, store.Insert(ctx, "t-1", "u-1"))
	assert.ErrorIs(t, store.Insert(ctx, "t-1", "u-2"), session.ErrTokenExists)

	identity, _, err := store.Lookup(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity)
}

func TestStoreTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newStore(t, sessionredis.Config{TTL: time.Minute})

	require.NoError(t, store.Insert(ctx, "t-1", "u-1"))
	assert.Equal(t, time.Minute, mr.TTL(sessionredis.DefaultKeyPrefix+"t-1"))

	mr.FastForward(2 * time.Minute)
	_, found, err := store.Lookup(ctx, "t-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreUnavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newStore(t, sessionredis.Config{})
	mr.Close()

	assert.ErrorIs(t, store.Insert(ctx, "t-1", "u-1"), session.ErrStoreUnavailable)

	_, _, err := store.Lookup(ctx, "t-1")
	assert.ErrorIs(t, err, session.ErrStoreUnavailable)
}

func TestStoreWithGuardAndAuthenticator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, mr := newStore(t, sessionredis.Config{})

	token, err := session.NewAuthenticator(store).Establish(ctx, "u-42")
	require.NoError(t, err)

	guard := session.NewGuard(store)
	identity, err := guard.Authenticate(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "u-42", identity)

	mr.Close()
	_, err = guard.Authenticate(ctx, token.String())
	assert.Equal(t, outcome.InternalFailure, outcome.CategoryOf(err))
}
