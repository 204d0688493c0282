package session_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newslens/core/outcome"
	"github.com/dmitrymomot/newslens/core/session"
)

func TestNewToken(t *testing.T) {
	t.Parallel()

	seen := make(map[session.Token]struct{}, 1000)
	for range 1000 {
		token, err := session.NewToken()
		require.NoError(t, err)

		id, err := uuid.Parse(token.String())
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())

		_, dup := seen[token]
		require.False(t, dup, "token %s generated twice", token)
		seen[token] = struct{}{}
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("lookup returns inserted identity", func(t *testing.T) {
		t.Parallel()

		s := session.NewMemoryStore()
		require.NoError(t, s.Insert(ctx, "t-1", "u-1"))

		identity, found, err := s.Lookup(ctx, "t-1")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "u-1", identity)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		s := session.NewMemoryStore()
		identity, found, err := s.Lookup(ctx, "garbage")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, identity)
	})

	t.Run("tokens are insert only", func(t *testing.T) {
		t.Parallel()

		s := session.NewMemoryStore()
		require.NoError(t, s.Insert(ctx, "t-1", "u-1"))
		assert.ErrorIs(t, s.Insert(ctx, "t-1", "u-2"), session.ErrTokenExists)

		identity, _, err := s.Lookup(ctx, "t-1")
		require.NoError(t, err)
		assert.Equal(t, "u-1", identity)
	})

	t.Run("one identity may own many tokens", func(t *testing.T) {
		t.Parallel()

		s := session.NewMemoryStore()
		require.NoError(t, s.Insert(ctx, "t-1", "u-1"))
		require.NoError(t, s.Insert(ctx, "t-2", "u-1"))

		for _, token := range []session.Token{"t-1", "t-2"} {
			identity, found, err := s.Lookup(ctx, token)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "u-1", identity)
		}
	})
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := session.NewMemoryStore()

	const workers = 64
	var wg sync.WaitGroup
	inserted := make([]bool, workers)

	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := session.Token(fmt.Sprintf("t-%d", i))
			err := s.Insert(ctx, token, fmt.Sprintf("u-%d", i))
			if err == nil {
				inserted[i] = true
				return
			}
			assert.ErrorIs(t, err, session.ErrLockUnavailable)
		}(i)
	}
	wg.Wait()

	// Every operation either completed or failed fast; nothing half applied.
	for i := range workers {
		identity, found, err := s.Lookup(ctx, session.Token(fmt.Sprintf("t-%d", i)))
		require.NoError(t, err)
		assert.Equal(t, inserted[i], found)
		if found {
			assert.Equal(t, fmt.Sprintf("u-%d", i), identity)
		}
	}
}

func TestAuthenticatorEstablish(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("registers fresh token", func(t *testing.T) {
		t.Parallel()

		s := session.NewMemoryStore()
		auth := session.NewAuthenticator(s)

		token, err := auth.Establish(ctx, "u-42")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		identity, found, err := s.Lookup(ctx, token)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "u-42", identity)
	})

	t.Run("new token per call", func(t *testing.T) {
		t.Parallel()

		auth := session.NewAuthenticator(session.NewMemoryStore())
		first, err := auth.Establish(ctx, "u-42")
		require.NoError(t, err)
		second, err := auth.Establish(ctx, "u-42")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("empty identity", func(t *testing.T) {
		t.Parallel()

		auth := session.NewAuthenticator(session.NewMemoryStore())
		_, err := auth.Establish(ctx, "")
		assert.ErrorIs(t, err, session.ErrEmptyIdentity)
	})

	t.Run("token generation failure", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("entropy exhausted")
		auth := session.NewAuthenticator(session.NewMemoryStore(), session.WithTokenGenerator(func() (session.Token, error) {
			return "", boom
		}))
		_, err := auth.Establish(ctx, "u-42")
		assert.ErrorIs(t, err, session.ErrTokenGeneration)
		assert.ErrorIs(t, err, boom)
	})
}

type failingStore struct{ err error }

func (f failingStore) Insert(context.Context, session.Token, string) error { return f.err }

func (f failingStore) Lookup(context.Context, session.Token) (string, bool, error) {
	return "", false, f.err
}

func TestGuardAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := session.NewMemoryStore()
	require.NoError(t, s.Insert(ctx, "t-1", "u-1"))
	guard := session.NewGuard(s)

	tests := []struct {
		name     string
		guard    *session.Guard
		token    string
		want     string
		category outcome.Category
		cause    error
	}{
		{name: "registered token", guard: guard, token: "t-1", want: "u-1"},
		{name: "no token", guard: guard, token: "", category: outcome.Unauthenticated, cause: session.ErrNoToken},
		{name: "unknown token", guard: guard, token: "garbage", category: outcome.Unauthenticated, cause: session.ErrUnknownToken},
		{
			name:     "busy store",
			guard:    session.NewGuard(failingStore{err: session.ErrLockUnavailable}),
			token:    "t-1",
			category: outcome.InternalFailure,
			cause:    session.ErrLockUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			identity, err := tt.guard.Authenticate(ctx, tt.token)
			if tt.cause == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, identity)
				return
			}
			assert.Empty(t, identity)
			assert.Equal(t, tt.category, outcome.CategoryOf(err))
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}
