package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NotEmpty validates that a string property is not empty after trimming
// whitespace.
func NotEmpty[T any](p Property[T, string]) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		if strings.TrimSpace(p.Get(instance)) != "" {
			return nil
		}
		return &Error{
			Key:         p.Key(section),
			Message:     "must not be empty",
			Suggestions: []string{fmt.Sprintf("set a value for %s", p.Key(section))},
		}
	})
}

// Required validates that a comparable property is not its zero value. This
// is the value-type counterpart of NotNil.
func Required[T any, V comparable](p Property[T, V]) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		var zero V
		if p.Get(instance) != zero {
			return nil
		}
		return &Error{
			Key:         p.Key(section),
			Message:     "is required",
			Suggestions: []string{fmt.Sprintf("set a value for %s", p.Key(section))},
		}
	})
}

// NotNil validates that a pointer property is not nil. Works for any pointed
// type, not just strings.
func NotNil[T any, V any](p Property[T, *V]) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		if p.Get(instance) != nil {
			return nil
		}
		return &Error{
			Key:         p.Key(section),
			Message:     "is required",
			Suggestions: []string{fmt.Sprintf("set a value for %s", p.Key(section))},
		}
	})
}

// Match validates a string property against a regular expression. An empty
// value passes: absence is not a pattern violation, combine with NotEmpty to
// require presence. The pattern is compiled at construction, so an invalid
// pattern panics before any rule runs.
func Match[T any](p Property[T, string], pattern, description string) Rule[T] {
	regex := regexp.MustCompile(pattern)
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if value == "" {
			return nil
		}
		if regex.MatchString(value) {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      fmt.Sprintf("must match %s pattern", description),
			CurrentValue: value,
			Suggestions:  []string{"expected pattern: " + pattern},
		}
	})
}

// UUID validates that a non-empty string property parses as a UUID.
func UUID[T any](p Property[T, string]) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if value == "" {
			return nil
		}
		if _, err := uuid.Parse(value); err == nil {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      "must be a valid UUID",
			CurrentValue: value,
			Suggestions:  []string{"use the canonical form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"},
		}
	})
}
