package validate

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/confcheck/pkg/secretscan"
)

// NoPlainTextSecret validates that a property whose name suggests secret
// material does not hold the secret itself in plain text. Detection is
// delegated to secretscan.IsLikelySecret: the rule only fires for properties
// whose name matches a secret keyword, and secure references (vault pointer,
// ARN, ${...} placeholder) always pass. Empty values pass.
func NoPlainTextSecret[T any](p Property[T, string]) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if value == "" {
			return nil
		}
		if !secretscan.IsLikelySecret(value, p.Name()) {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      "appears to contain a plain-text secret",
			CurrentValue: "[redacted]",
			Suggestions: []string{
				"store the secret in a secret manager and reference it instead",
				"use a ${VAR} placeholder resolved at deploy time",
			},
		}
	})
}

// SecretFormat validates that a non-empty property value matches exactly the
// one requested secure format. The check is exclusive: a value in a
// different secure format than the one requested still fails.
func SecretFormat[T any](p Property[T, string], format secretscan.Format) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if strings.TrimSpace(value) == "" {
			return nil
		}
		if format.Matches(value) {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      fmt.Sprintf("must be %s", format.Description()),
			CurrentValue: "[redacted]",
			Suggestions:  []string{fmt.Sprintf("rewrite the value as %s", format.Description())},
		}
	})
}

// DefaultValue validates that a property is not set to a well-known insecure
// default such as "password" or "admin". Comparison is case-insensitive
// exact equality. The severity label is embedded in the message for callers
// that present severities differently; the engine itself treats every
// severity as a uniform failure.
func DefaultValue[T any](p Property[T, string], insecureDefault string, severity Severity) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if !strings.EqualFold(value, insecureDefault) {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      fmt.Sprintf("[%s] is set to the well-known default %q", severity, insecureDefault),
			CurrentValue: value,
			Suggestions:  []string{"replace the default with a value specific to this deployment"},
		}
	})
}
