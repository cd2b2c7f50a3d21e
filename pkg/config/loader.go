package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/confcheck/pkg/validate"
)

// configCache stores parsed configuration structs keyed by type name so each
// unique type is parsed at most once per process.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Load populates the configuration struct from environment variables based
// on `env` field tags. The default .env file is loaded once per process if
// present; each configuration type is parsed once and cached, so subsequent
// calls for the same type return the cached copy.
//
// Example:
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Password string `env:"DB_PASS,required"`
//	}
//
//	var cfg DatabaseConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; a missing file is not an error.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.Parse(v); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = *v // store a copy so callers cannot mutate the cache
		globalCache.mu.Unlock()
	})

	if err != nil {
		return err
	}

	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics on failure. Intended for configuration
// the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment before any
// struct is parsed. Later files win when the same variable appears twice,
// matching godotenv's overload semantics.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return godotenv.Load()
	}
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFiles, err)
	}
	return nil
}

// LoadFile populates the configuration struct from a YAML file. Unlike Load,
// file-bound configs are not cached: reload semantics belong to the caller.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingConfigFile, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadValidated binds the configuration from the environment and immediately
// runs the builder's rule chain against it. A non-empty validation result is
// returned as the validate.Errors aggregate, so startup code gets bind and
// validate in one call.
func LoadValidated[T any](v *T, b *validate.Builder[T]) error {
	if err := Load(v); err != nil {
		return err
	}
	if errs := b.Validate(*v); !errs.IsEmpty() {
		return errs
	}
	return nil
}

// ResetCache clears all cached configurations. Intended for tests that
// mutate the environment between loads.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

// getTypeName returns a string identifier for the generic type T.
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Interface types have no concrete reflect type for the zero value.
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
