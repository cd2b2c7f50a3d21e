package validate

import (
	"fmt"
	"strings"
)

// Error represents a single configuration validation failure.
// It is a value type, immutable once constructed by a rule.
type Error struct {
	Key          string   // "section:property"
	Message      string   // human-readable description of the failure
	CurrentValue any      // offending value, may be redacted or nil
	Suggestions  []string // ordered remediation hints
}

func (e Error) Error() string {
	return e.Key + ": " + e.Message
}

// Render returns a multi-line human-readable form of the error suitable for
// console or log output: symbol + key + message, an optional current-value
// line, and a bullet list of suggestions.
func (e Error) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s: %s", e.Key, e.Message)
	if e.CurrentValue != nil {
		fmt.Fprintf(&b, "\n    current value: %v", e.CurrentValue)
	}
	for _, s := range e.Suggestions {
		fmt.Fprintf(&b, "\n    - %s", s)
	}
	return b.String()
}

var codeReplacer = strings.NewReplacer(":", "_", ".", "_")

// Code derives a deterministic machine-readable error code from the key:
// upper-cased, path separators replaced with underscores, and prefixed with
// a fixed namespace tag. "Database.ConnectionString" becomes
// "VALIDATION_DATABASE_CONNECTIONSTRING".
func (e Error) Code() string {
	return "VALIDATION_" + codeReplacer.Replace(strings.ToUpper(e.Key))
}

// Errors is an ordered collection of validation failures. The order matches
// rule registration order, so "first error" consumers can take the head.
type Errors []Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "configuration validation failed"
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Error())
	}
	return "configuration validation failed: " + strings.Join(parts, "; ")
}

// IsEmpty reports whether the collection contains no failures.
func (es Errors) IsEmpty() bool { return len(es) == 0 }

// Has reports whether any failure was produced for the given key.
func (es Errors) Has(key string) bool {
	for _, e := range es {
		if e.Key == key {
			return true
		}
	}
	return false
}

// Get returns the messages of all failures produced for the given key.
func (es Errors) Get(key string) []string {
	var messages []string
	for _, e := range es {
		if e.Key == key {
			messages = append(messages, e.Message)
		}
	}
	return messages
}

// Keys returns the distinct keys in first-occurrence order.
func (es Errors) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, e := range es {
		if !seen[e.Key] {
			keys = append(keys, e.Key)
			seen[e.Key] = true
		}
	}
	return keys
}

// First returns the first failure, if any.
func (es Errors) First() (Error, bool) {
	if len(es) == 0 {
		return Error{}, false
	}
	return es[0], true
}

// Severity labels a failure message produced by the DefaultValue rule.
// The taxonomy is advisory: the engine treats every severity as a uniform
// pass/fail error, the label only steers how callers present it.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityWarning:
		return "WARNING"
	default:
		return "INFO"
	}
}
