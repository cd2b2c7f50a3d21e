// Package config binds typed configuration structs from external sources —
// environment variables, .env files, and YAML files — and hands the
// populated struct to the validation engine.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` for
// environment binding and `gopkg.in/yaml.v3` for file binding. Each
// env-bound configuration type is parsed once per process and cached behind
// a `sync.Once`, so repeated loads are cheap and concurrent loads are safe.
//
// # Usage
//
//	type AppConfig struct {
//		Name        string `env:"APP_NAME,required"`
//		MaxPoolSize int    `env:"APP_MAX_POOL_SIZE" envDefault:"10"`
//	}
//
//	rules := validate.New[AppConfig]("App").
//		Add(validate.NotEmpty(validate.Prop("Name", func(c AppConfig) string { return c.Name })))
//
//	var cfg AppConfig
//	if err := config.LoadValidated(&cfg, rules); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Sentinel errors (ErrParsingConfig, ErrNilPointer, ...) are joined with the
// underlying cause and can be matched with errors.Is. LoadValidated returns
// the validate.Errors aggregate when binding succeeded but validation did
// not, so callers can inspect individual failures with errors.As.
//
// # Testing Helpers
//
// ResetCache clears the per-type cache between tests that mutate the
// environment.
package config
