package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/confcheck/pkg/config"
	"github.com/dmitrymomot/confcheck/pkg/validate"
)

type appEnvConfig struct {
	Name        string `env:"CONFCHECK_TEST_NAME"`
	MaxPoolSize int    `env:"CONFCHECK_TEST_POOL" envDefault:"10"`
}

func TestLoad(t *testing.T) {
	t.Run("parses environment into struct", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFCHECK_TEST_NAME", "svc")
		t.Setenv("CONFCHECK_TEST_POOL", "25")

		var cfg appEnvConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "svc", cfg.Name)
		assert.Equal(t, 25, cfg.MaxPoolSize)
	})

	t.Run("applies defaults", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFCHECK_TEST_NAME", "svc")
		os.Unsetenv("CONFCHECK_TEST_POOL")

		var cfg appEnvConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 10, cfg.MaxPoolSize)
	})

	t.Run("second load returns cached copy", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFCHECK_TEST_NAME", "first")

		var cfg appEnvConfig
		require.NoError(t, config.Load(&cfg))

		t.Setenv("CONFCHECK_TEST_NAME", "second")
		var again appEnvConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Name, "cache survives env mutation")
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		err := config.Load[appEnvConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads variables from a custom file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".env.test")
		require.NoError(t, os.WriteFile(path, []byte("CONFCHECK_ENVFILE_VAR=from_file\n"), 0o600))
		os.Unsetenv("CONFCHECK_ENVFILE_VAR")

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "from_file", os.Getenv("CONFCHECK_ENVFILE_VAR"))
		os.Unsetenv("CONFCHECK_ENVFILE_VAR")
	})

	t.Run("missing file returns wrapped error", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFiles)
	})
}

type yamlConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func TestLoadFile(t *testing.T) {
	t.Run("parses yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: svc\nport: 8080\n"), 0o600))

		var cfg yamlConfig
		require.NoError(t, config.LoadFile(path, &cfg))
		assert.Equal(t, "svc", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("missing file returns wrapped error", func(t *testing.T) {
		var cfg yamlConfig
		err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
		assert.ErrorIs(t, err, config.ErrReadingConfigFile)
	})

	t.Run("malformed yaml returns parse error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: [unclosed\n"), 0o600))

		var cfg yamlConfig
		err := config.LoadFile(path, &cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		err := config.LoadFile[yamlConfig]("whatever.yaml", nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestLoadValidated(t *testing.T) {
	rules := validate.New[appEnvConfig]("App").
		Add(
			validate.NotEmpty(validate.Prop("Name", func(c appEnvConfig) string { return c.Name })),
			validate.InRange(validate.Prop("MaxPoolSize", func(c appEnvConfig) int { return c.MaxPoolSize }), 1, 1000),
		)

	t.Run("valid config passes", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFCHECK_TEST_NAME", "svc")
		t.Setenv("CONFCHECK_TEST_POOL", "100")

		var cfg appEnvConfig
		assert.NoError(t, config.LoadValidated(&cfg, rules))
	})

	t.Run("invalid config returns the errors aggregate", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("CONFCHECK_TEST_NAME", "")
		t.Setenv("CONFCHECK_TEST_POOL", "0")

		var cfg appEnvConfig
		err := config.LoadValidated(&cfg, rules)
		require.Error(t, err)

		var errs validate.Errors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 2)
		assert.True(t, errs.Has("App:Name"))
		assert.True(t, errs.Has("App:MaxPoolSize"))
	})
}
