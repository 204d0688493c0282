package session

import "errors"

var (
	// ErrLockUnavailable is returned when exclusive access to the store could
	// not be acquired immediately. Callers are never queued behind the holder.
	ErrLockUnavailable = errors.New("session store is busy")
	// ErrStoreUnavailable is returned by remote stores that could not be reached.
	ErrStoreUnavailable = errors.New("session store unavailable")
	// ErrTokenExists is returned when inserting a token that is already registered.
	ErrTokenExists = errors.New("session token already registered")
	// ErrTokenGeneration is returned when token generation fails.
	ErrTokenGeneration = errors.New("failed to generate session token")
	// ErrEmptyIdentity is returned when establishing a session without an identity.
	ErrEmptyIdentity = errors.New("identity is required")
	// ErrNoToken is the cause of an Unauthenticated failure when no token was presented.
	ErrNoToken = errors.New("no session token presented")
	// ErrUnknownToken is the cause of an Unauthenticated failure for unregistered tokens.
	ErrUnknownToken = errors.New("session token not registered")
)
