package session

import (
	"context"

	"github.com/google/uuid"
)

// Token is an opaque session identifier carried by the client.
type Token string

func (t Token) String() string {
	return string(t)
}

// NewToken returns a fresh random token: 128 bits from crypto/rand rendered
// as a canonical UUIDv4 string.
func NewToken() (Token, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return Token(id.String()), nil
}

// Store maps session tokens to user identities.
// Entries are insert-only: a registered token keeps the identity it was
// inserted with for the lifetime of the store.
// Implementations must be safe for concurrent use.
type Store interface {
	// Insert registers token for identity. It fails with ErrLockUnavailable
	// instead of waiting when the store is busy, and with ErrTokenExists when
	// the token is already registered.
	Insert(ctx context.Context, token Token, identity string) error
	// Lookup returns the identity registered for token. An unknown token is
	// reported with found == false and a nil error.
	Lookup(ctx context.Context, token Token) (identity string, found bool, err error)
}
