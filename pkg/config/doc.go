// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` for reading `.env` files and
// `github.com/caarlos0/env/v11` for parsing the environment:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags.
//   - Each config type is parsed once per process and then served from memory.
//   - MustLoadEnv and MustLoad panic on failure for startup code.
//   - Reset clears everything, which tests rely on.
//
// # Usage
//
//	type AppConfig struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var app AppConfig
//	config.MustLoad(&app)
//
//	var cc cache.Config // CACHE_CAPACITY, defaults to 100
//	config.MustLoad(&cc)
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   – env vars could not be parsed into the struct.
//   - `ErrLoadingEnvFile`  – an explicitly requested `.env` file is unreadable.
//   - `ErrConfigNotLoaded` – the config type is missing from the cache.
//   - `ErrNilPointer`      – nil pointer passed to Load/MustLoad.
//
// A failed parse is not cached, so fixing the environment and calling Load
// again succeeds.
package config
