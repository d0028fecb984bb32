// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Every package that needs
// settings declares its own Config struct with `env` and `envDefault` tags;
// binaries load them with Load or MustLoad:
//
//	var emailCfg email.Config
//	config.MustLoad(&emailCfg)
//
// Parsed values are cached per type for the life of the process. Reset clears
// the cache, which tests use after changing the environment.
package config
