package validate

import (
	"fmt"
	"regexp"
)

// Property names must be plain identifiers so that error keys stay stable and
// human-legible. Dotted paths, calls, and computed expressions are rejected.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Property pairs a stable field name with a typed accessor into a
// configuration struct. The name becomes part of the error key
// ("section:name"), the accessor is used at evaluation time.
type Property[T, V any] struct {
	name string
	get  func(T) V
}

// Prop constructs a Property from a field name and an accessor function.
// It panics when the name is not a plain identifier or the accessor is nil;
// like regexp.MustCompile, builder setup is program text, not runtime input.
func Prop[T, V any](name string, get func(T) V) Property[T, V] {
	if !identifierRegex.MatchString(name) {
		panic(fmt.Sprintf("validate: property name %q must be a plain identifier", name))
	}
	if get == nil {
		panic(fmt.Sprintf("validate: nil accessor for property %q", name))
	}
	return Property[T, V]{name: name, get: get}
}

// Name returns the property name used in error keys.
func (p Property[T, V]) Name() string { return p.name }

// Get resolves the property value from a configuration instance.
func (p Property[T, V]) Get(instance T) V { return p.get(instance) }

// Key builds the error key for this property under the given section.
func (p Property[T, V]) Key(section string) string { return section + ":" + p.name }
