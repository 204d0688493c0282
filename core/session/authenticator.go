package session

import (
	"context"
	"errors"
)

// Authenticator opens sessions for identities confirmed by the upstream.
type Authenticator struct {
	store    Store
	newToken func() (Token, error)
}

// AuthenticatorOption configures an Authenticator.
type AuthenticatorOption func(*Authenticator)

// WithTokenGenerator replaces the token source.
func WithTokenGenerator(fn func() (Token, error)) AuthenticatorOption {
	return func(a *Authenticator) {
		if fn != nil {
			a.newToken = fn
		}
	}
}

// NewAuthenticator creates an Authenticator writing to store.
func NewAuthenticator(store Store, opts ...AuthenticatorOption) *Authenticator {
	a := &Authenticator{
		store:    store,
		newToken: NewToken,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Establish mints a new token and registers it for identity.
// Store errors, ErrLockUnavailable included, are returned unchanged and the
// insert is not retried.
func (a *Authenticator) Establish(ctx context.Context, identity string) (Token, error) {
	if identity == "" {
		return "", ErrEmptyIdentity
	}

	token, err := a.newToken()
	if err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}

	if err := a.store.Insert(ctx, token, identity); err != nil {
		return "", err
	}
	return token, nil
}
