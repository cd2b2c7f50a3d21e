package validate

import (
	"cmp"
	"fmt"
)

// All threshold rules funnel through cmp.Compare, so any ordered type —
// integers, floats, strings, time.Duration — rides the same comparison
// contract without per-type special-casing.

// GreaterThan validates that the property value is strictly greater than the
// threshold (exclusive).
func GreaterThan[T any, V cmp.Ordered](p Property[T, V], threshold V) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if cmp.Compare(value, threshold) > 0 {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      fmt.Sprintf("must be greater than %v", threshold),
			CurrentValue: value,
			Suggestions:  []string{fmt.Sprintf("use a value above %v", threshold)},
		}
	})
}

// LessThan validates that the property value is strictly less than the
// threshold (exclusive).
func LessThan[T any, V cmp.Ordered](p Property[T, V], threshold V) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if cmp.Compare(value, threshold) < 0 {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      fmt.Sprintf("must be less than %v", threshold),
			CurrentValue: value,
			Suggestions:  []string{fmt.Sprintf("use a value below %v", threshold)},
		}
	})
}

// Min validates that the property value is at least min (inclusive).
func Min[T any, V cmp.Ordered](p Property[T, V], min V) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if cmp.Compare(value, min) >= 0 {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      fmt.Sprintf("must be at least %v", min),
			CurrentValue: value,
			Suggestions:  []string{fmt.Sprintf("use a value of %v or more", min)},
		}
	})
}

// Max validates that the property value is at most max (inclusive).
func Max[T any, V cmp.Ordered](p Property[T, V], max V) Rule[T] {
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if cmp.Compare(value, max) <= 0 {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      fmt.Sprintf("must be at most %v", max),
			CurrentValue: value,
			Suggestions:  []string{fmt.Sprintf("use a value of %v or less", max)},
		}
	})
}

// InRange validates that the property value lies within [min, max], both
// bounds inclusive. It panics at construction when min > max.
func InRange[T any, V cmp.Ordered](p Property[T, V], min, max V) Rule[T] {
	if cmp.Compare(min, max) > 0 {
		panic(fmt.Sprintf("validate: InRange bounds inverted for property %q: min %v > max %v", p.Name(), min, max))
	}
	return RuleFunc[T](func(instance T, section string) *Error {
		value := p.Get(instance)
		if cmp.Compare(value, min) >= 0 && cmp.Compare(value, max) <= 0 {
			return nil
		}
		return &Error{
			Key:          p.Key(section),
			Message:      fmt.Sprintf("must be between %v and %v", min, max),
			CurrentValue: value,
			Suggestions:  []string{fmt.Sprintf("use a value in the range [%v, %v]", min, max)},
		}
	})
}
