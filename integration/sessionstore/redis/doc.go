// Package redis implements session.Store on Redis so several front end
// instances can share sessions.
//
//	client, err := redis.Connect(ctx, cfg.Redis) // integration/database/redis
//	store := sessionredis.New(client, sessionredis.Config{})
//
// Each token is one string key holding the identity. Redis serializes the
// commands, so no client-side lock is taken; connection failures surface as
// session.ErrStoreUnavailable and end on the server error page like a busy
// in-memory store.
package redis
