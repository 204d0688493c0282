// Package session keeps track of which browser session belongs to which
// upstream user.
//
// The Store maps opaque tokens to user identities. Authenticator mints a
// token after the upstream confirmed a login or registration and registers
// it; Guard turns the token presented by a later request back into the
// identity, or into an Unauthenticated/InternalFailure outcome.
//
//	store := session.NewMemoryStore()
//	auth := session.NewAuthenticator(store)
//	guard := session.NewGuard(store)
//
//	token, err := auth.Establish(ctx, user.ID)
//	...
//	identity, err := guard.Authenticate(ctx, cookieValue)
//
// MemoryStore never blocks: an operation that finds the store busy fails
// with ErrLockUnavailable and the request is sent to the server error page.
// Handlers must not hold store access across upstream calls; the Store API
// makes every access a single call, so that holds by construction.
//
// Sessions are not expired server-side. The cookie max-age is the only
// lifetime bound.
package session
