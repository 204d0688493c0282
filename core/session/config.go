package session

import "fmt"

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
)

// Config selects the session store.
type Config struct {
	Backend Backend `env:"SESSION_STORE" envDefault:"memory"`
}

// Validate reports an unsupported backend.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendRedis:
		return nil
	default:
		return fmt.Errorf("unsupported session store %q", c.Backend)
	}
}
