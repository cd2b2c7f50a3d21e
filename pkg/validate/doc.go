// Package validate provides a fluent, fail-fast validation engine for typed
// configuration structs. A Builder bound to one configuration type and one
// section name accumulates an ordered chain of rules against property
// accessors; Validate runs every rule in registration order and collects all
// failures, so startup code can report the complete picture before refusing
// to serve traffic.
//
// # Architecture
//
// Core building blocks:
//   - Property[T, V]  – stable field name + typed accessor, built with Prop
//   - Rule[T]         – one-method interface, nil *Error means pass
//   - Builder[T]      – ordered rule list for one section, with conditional scopes
//   - Error / Errors  – the sole result shape, with rendering and code adapters
//
// Rule families live one per file, mirroring the concern they validate:
// comparable thresholds (comparable_rules.go), string presence and shape
// (string_rules.go), secret hygiene (secret_rules.go, backed by
// pkg/secretscan), and infrastructure probes (infra_rules.go). Everything is
// immutable after construction; a builder whose registration phase has ended
// is safe for concurrent Validate calls.
//
// # Usage
//
//	type DatabaseConfig struct {
//		ConnectionString string
//		MaxPoolSize      int
//		UseTLS           bool
//		CAFile           string
//	}
//
//	b := validate.New[DatabaseConfig]("Database").
//		Add(
//			validate.NotEmpty(validate.Prop("ConnectionString", func(c DatabaseConfig) string { return c.ConnectionString })),
//			validate.InRange(validate.Prop("MaxPoolSize", func(c DatabaseConfig) int { return c.MaxPoolSize }), 1, 1000),
//		).
//		When(func(c DatabaseConfig) bool { return c.UseTLS }, func(b *validate.Builder[DatabaseConfig]) {
//			b.Add(validate.FileExists(validate.Prop("CAFile", func(c DatabaseConfig) string { return c.CAFile })))
//		})
//
//	if errs := b.Validate(cfg); !errs.IsEmpty() {
//		for _, e := range errs {
//			fmt.Println(e.Render())
//		}
//	}
//
// # Error Handling
//
// Rule failures are values, never panics: every failure is an Error carrying
// a "section:property" key, a message, an optional (possibly redacted)
// current value, and remediation suggestions. Construction mistakes — a
// property name that is not a plain identifier, a nil accessor or predicate,
// inverted range bounds, an invalid regex — panic immediately during setup,
// the same contract as regexp.MustCompile. The infrastructure probes convert
// I/O failures into ordinary Errors at the narrowest point; Validate itself
// never returns a fault.
//
// # Performance Considerations
//
// Validation is expected to run once at startup or occasionally on reload,
// not on a hot path. Evaluation is a straight synchronous fold over the rule
// list with no concurrency inside the engine; if a probe rule blocks on the
// network, the whole Validate call blocks for that duration.
package validate
