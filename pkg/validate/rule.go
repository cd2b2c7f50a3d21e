package validate

// Rule is a single validation check bound to one property of the
// configuration type T. Validate returns nil on pass. Rules are immutable
// after construction, never mutate the instance, and — with the exception of
// the infrastructure probes in infra_rules.go and pkg/conncheck — perform no
// I/O. The interface is exported so applications can supply their own rules
// alongside the built-in ones.
type Rule[T any] interface {
	Validate(instance T, section string) *Error
}

// RuleFunc adapts an ordinary function to the Rule interface. All built-in
// rule constructors return a RuleFunc closing over configuration captured at
// construction time.
type RuleFunc[T any] func(instance T, section string) *Error

func (f RuleFunc[T]) Validate(instance T, section string) *Error {
	return f(instance, section)
}

// WithMessage overrides the message of any failure produced by the wrapped
// rule. Key, current value, and suggestions pass through unchanged.
func WithMessage[T any](rule Rule[T], message string) Rule[T] {
	if rule == nil {
		panic("validate: WithMessage requires a non-nil rule")
	}
	return RuleFunc[T](func(instance T, section string) *Error {
		e := rule.Validate(instance, section)
		if e == nil {
			return nil
		}
		overridden := *e
		overridden.Message = message
		return &overridden
	})
}
