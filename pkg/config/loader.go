package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// registry keeps one parsed copy per config type for the lifetime of the process.
type registry struct {
	mu     sync.Mutex
	values map[reflect.Type]any
	onces  map[reflect.Type]*sync.Once
	dotenv *sync.Once
}

var loaded = newRegistry()

func newRegistry() *registry {
	return &registry{
		values: make(map[reflect.Type]any),
		onces:  make(map[reflect.Type]*sync.Once),
		dotenv: new(sync.Once),
	}
}

// LoadEnv reads the given .env files into the process environment.
// Without arguments it reads ./.env. Variables already set in the
// environment are never overwritten, and earlier files win over later ones.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using `env` struct tags.
//
// The default .env file is read once per process if present. Each config
// type is parsed at most once; later calls for the same type are served
// from memory even if the environment changed. Use Reset to start over.
//
// Example:
//
//	var cfg cache.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	loaded.mu.Lock()
	loaded.dotenv.Do(func() {
		// The default .env file is optional
		_ = godotenv.Load()
	})
	key := reflect.TypeFor[T]()
	once, ok := loaded.onces[key]
	if !ok {
		once = new(sync.Once)
		loaded.onces[key] = once
	}
	loaded.mu.Unlock()

	var parseErr error
	once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			parseErr = errors.Join(ErrParsingConfig, err)
			return
		}
		loaded.mu.Lock()
		loaded.values[key] = parsed
		loaded.mu.Unlock()
	})

	loaded.mu.Lock()
	defer loaded.mu.Unlock()

	if parseErr != nil {
		// Allow a retry once the environment is fixed
		delete(loaded.onces, key)
		return parseErr
	}

	cached, ok := loaded.values[key]
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Reset forgets every parsed config and the default .env marker.
// Intended for tests.
func Reset() {
	fresh := newRegistry()

	loaded.mu.Lock()
	defer loaded.mu.Unlock()
	loaded.values = fresh.values
	loaded.onces = fresh.onces
	loaded.dotenv = fresh.dotenv
}
