// Package config loads environment configuration into structs with
// caarlos0/env, reading an optional .env file through godotenv first.
//
// Each type is parsed once and cached, so every package can ask for the
// configuration it needs without re-reading the environment:
//
//	var cfg web.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Nested structs are parsed recursively, which is how the application
// config composes the server, cookie, session, backend and Redis sections:
//
//	type Config struct {
//		Server  server.Config
//		Backend backend.Config
//		AppName string `env:"APP_NAME" envDefault:"newslens"`
//	}
//
// MustLoad panics instead of returning the error and is meant for process
// startup. Reset drops the cache so tests can reload after t.Setenv.
package config
