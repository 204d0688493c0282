package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/newslens/core/session"
)

// DefaultKeyPrefix namespaces session keys.
const DefaultKeyPrefix = "newslens:session:"

// Config configures the Redis session store.
type Config struct {
	KeyPrefix string `env:"SESSION_REDIS_PREFIX" envDefault:"newslens:session:"`
	// TTL of each entry; zero keeps entries until they are removed by hand.
	TTL time.Duration `env:"SESSION_REDIS_TTL" envDefault:"0s"`
}

// Store is a session.Store shared by every instance pointing at the same Redis.
// Inserts use SET NX, so a registered token is never overwritten.
type Store struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ session.Store = (*Store)(nil)

// New creates a Redis-backed session store.
func New(client goredis.UniversalClient, cfg Config) *Store {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}
	return &Store{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    max(cfg.TTL, 0),
	}
}

func (s *Store) key(token session.Token) string {
	return s.prefix + token.String()
}

func (s *Store) Insert(ctx context.Context, token session.Token, identity string) error {
	ok, err := s.client.SetNX(ctx, s.key(token), identity, s.ttl).Result()
	if err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	if !ok {
		return session.ErrTokenExists
	}
	return nil
}

func (s *Store) Lookup(ctx context.Context, token session.Token) (string, bool, error) {
	identity, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(session.ErrStoreUnavailable, err)
	}
	return identity, true, nil
}
