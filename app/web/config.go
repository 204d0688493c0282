package web

import (
	"github.com/dmitrymomot/newslens/core/config"
	"github.com/dmitrymomot/newslens/core/cookie"
	"github.com/dmitrymomot/newslens/core/logger"
	"github.com/dmitrymomot/newslens/core/server"
	"github.com/dmitrymomot/newslens/core/session"
	"github.com/dmitrymomot/newslens/core/sessiontransport"
	"github.com/dmitrymomot/newslens/integration/backend"
	"github.com/dmitrymomot/newslens/integration/database/redis"
	sessionredis "github.com/dmitrymomot/newslens/integration/sessionstore/redis"
	"github.com/dmitrymomot/newslens/middleware"
)

// Config is the complete application configuration.
type Config struct {
	Server        server.Config
	Cookie        cookie.Config
	SessionCookie sessiontransport.CookieConfig
	Session       session.Config
	Backend       backend.Config
	Redis         redis.Config
	SessionRedis  sessionredis.Config
	CORS          middleware.CORSConfig
	Log           logger.Config

	AppName string `env:"APP_NAME" envDefault:"newslens"`
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Server:        server.DefaultConfig(),
		Cookie:        cookie.DefaultConfig(),
		SessionCookie: sessiontransport.DefaultCookieConfig(),
		Session:       session.Config{Backend: session.BackendMemory},
		Backend:       backend.Config{BaseURL: backend.DefaultBaseURL},
		SessionRedis:  sessionredis.Config{KeyPrefix: sessionredis.DefaultKeyPrefix},
		AppName:       "newslens",
	}
}
