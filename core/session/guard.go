package session

import (
	"context"

	"github.com/dmitrymomot/newslens/core/outcome"
)

// Guard resolves the token presented by a request into a user identity.
type Guard struct {
	store Store
}

// NewGuard creates a Guard reading from store.
func NewGuard(store Store) *Guard {
	return &Guard{store: store}
}

// Authenticate returns the identity registered for token. An empty token
// means none was presented.
//
// Failures are *outcome.Error values: Unauthenticated when no token was
// presented or it is not registered, InternalFailure when the store could not
// be read. A single lookup is made; nothing is retried.
func (g *Guard) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", outcome.New(outcome.Unauthenticated, ErrNoToken)
	}

	identity, found, err := g.store.Lookup(ctx, Token(token))
	if err != nil {
		return "", outcome.New(outcome.InternalFailure, err)
	}
	if !found {
		return "", outcome.New(outcome.Unauthenticated, ErrUnknownToken)
	}
	return identity, nil
}
