package validate

import "strings"

// Builder accumulates an ordered list of rules for one configuration type
// under one section name. Rules are added during a setup phase; Validate may
// then be called repeatedly and is a pure read over the rule list. A builder
// is not safe for concurrent mutation, but concurrent Validate calls are safe
// once rule registration has stopped, since rules are immutable.
type Builder[T any] struct {
	section string
	rules   []Rule[T]
}

// New creates a builder for configuration type T bound to the given section
// name. The section becomes the error-key prefix ("section:property").
// It panics on an empty section name.
func New[T any](section string) *Builder[T] {
	if strings.TrimSpace(section) == "" {
		panic("validate: section name must not be empty")
	}
	return &Builder[T]{section: section}
}

// Section returns the section name the builder is bound to.
func (b *Builder[T]) Section() string { return b.section }

// Len returns the number of registered rules, conditional wrappers included.
func (b *Builder[T]) Len() int { return len(b.rules) }

// Add appends rules in the order given. Evaluation order is registration
// order; rules are never reordered.
func (b *Builder[T]) Add(rules ...Rule[T]) *Builder[T] {
	for _, rule := range rules {
		if rule == nil {
			panic("validate: Add requires non-nil rules")
		}
		b.rules = append(b.rules, rule)
	}
	return b
}

// When opens a conditional scope: every rule the callback adds to the builder
// is wrapped, in place and in order, in a conditional bound to pred. Scopes
// nest arbitrarily — an inner scope wraps its own tail before the outer scope
// wraps it again, so nested predicates compose by AND.
func (b *Builder[T]) When(pred func(T) bool, fn func(*Builder[T])) *Builder[T] {
	if pred == nil {
		panic("validate: When requires a non-nil predicate")
	}
	if fn == nil {
		panic("validate: When requires a non-nil callback")
	}
	mark := len(b.rules)
	fn(b)
	for i := mark; i < len(b.rules); i++ {
		b.rules[i] = When(pred, b.rules[i])
	}
	return b
}

// Validate runs every rule in registration order against the instance and
// collects all produced errors. It never short-circuits: all rules always
// run. Re-invoking on the same instance is deterministic given the same rule
// set and instance state.
func (b *Builder[T]) Validate(instance T) Errors {
	var errs Errors
	for _, rule := range b.rules {
		if e := rule.Validate(instance, b.section); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}

// Err runs Validate and folds the result into the error convention: nil when
// every rule passed, the Errors aggregate otherwise.
func (b *Builder[T]) Err(instance T) error {
	if errs := b.Validate(instance); !errs.IsEmpty() {
		return errs
	}
	return nil
}
