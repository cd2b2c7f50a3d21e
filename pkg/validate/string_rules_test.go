package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/confcheck/pkg/validate"
)

type serverConfig struct {
	Name     string
	Host     string
	TenantID string
	Workers  *int
	Port     int
}

var (
	serverName = validate.Prop("Name", func(c serverConfig) string { return c.Name })
	serverHost = validate.Prop("Host", func(c serverConfig) string { return c.Host })
	tenantID   = validate.Prop("TenantID", func(c serverConfig) string { return c.TenantID })
)

func TestNotEmpty(t *testing.T) {
	rule := validate.NotEmpty(serverName)

	t.Run("empty string fails with section-qualified key", func(t *testing.T) {
		errs := validate.New[serverConfig]("App").Add(rule).Validate(serverConfig{Name: ""})
		require.Len(t, errs, 1)
		assert.Equal(t, "App:Name", errs[0].Key)
	})

	t.Run("whitespace-only fails", func(t *testing.T) {
		assert.NotNil(t, rule.Validate(serverConfig{Name: "   \t"}, "App"))
	})

	t.Run("non-empty passes", func(t *testing.T) {
		assert.Nil(t, rule.Validate(serverConfig{Name: "svc"}, "App"))
	})
}

func TestRequired(t *testing.T) {
	port := validate.Prop("Port", func(c serverConfig) int { return c.Port })
	rule := validate.Required(port)

	t.Run("zero value fails", func(t *testing.T) {
		e := rule.Validate(serverConfig{Port: 0}, "App")
		require.NotNil(t, e)
		assert.Equal(t, "App:Port", e.Key)
	})

	t.Run("non-zero passes", func(t *testing.T) {
		assert.Nil(t, rule.Validate(serverConfig{Port: 8080}, "App"))
	})
}

func TestNotNil(t *testing.T) {
	workers := validate.Prop("Workers", func(c serverConfig) *int { return c.Workers })
	rule := validate.NotNil(workers)

	t.Run("nil pointer fails", func(t *testing.T) {
		e := rule.Validate(serverConfig{}, "App")
		require.NotNil(t, e)
		assert.Equal(t, "App:Workers", e.Key)
	})

	t.Run("non-nil pointer passes even at zero", func(t *testing.T) {
		zero := 0
		assert.Nil(t, rule.Validate(serverConfig{Workers: &zero}, "App"))
	})
}

func TestMatch(t *testing.T) {
	rule := validate.Match(serverHost, `^[a-z0-9.-]+$`, "hostname")

	t.Run("empty value passes, absence is not a violation", func(t *testing.T) {
		assert.Nil(t, rule.Validate(serverConfig{Host: ""}, "App"))
	})

	t.Run("matching value passes", func(t *testing.T) {
		assert.Nil(t, rule.Validate(serverConfig{Host: "db.internal"}, "App"))
	})

	t.Run("non-matching value fails with description", func(t *testing.T) {
		e := rule.Validate(serverConfig{Host: "Not A Host!"}, "App")
		require.NotNil(t, e)
		assert.Contains(t, e.Message, "hostname")
		assert.Equal(t, "Not A Host!", e.CurrentValue)
	})

	t.Run("invalid pattern panics at construction", func(t *testing.T) {
		assert.Panics(t, func() { validate.Match(serverHost, `[`, "broken") })
	})
}

func TestUUID(t *testing.T) {
	rule := validate.UUID(tenantID)

	t.Run("empty passes", func(t *testing.T) {
		assert.Nil(t, rule.Validate(serverConfig{}, "App"))
	})

	t.Run("valid UUID passes", func(t *testing.T) {
		assert.Nil(t, rule.Validate(serverConfig{TenantID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}, "App"))
	})

	t.Run("invalid UUID fails", func(t *testing.T) {
		e := rule.Validate(serverConfig{TenantID: "not-a-uuid"}, "App")
		require.NotNil(t, e)
		assert.Equal(t, "App:TenantID", e.Key)
	})
}
