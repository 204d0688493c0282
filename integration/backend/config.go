package backend

import "time"

// DefaultBaseURL is the upstream API root used when none is configured.
const DefaultBaseURL = "http://localhost:8000/api/v0"

// Config holds upstream API settings.
type Config struct {
	BaseURL string        `env:"BACKEND_API_URL" envDefault:"http://localhost:8000/api/v0"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"20s"`
}
