package validate

// When gates a rule behind a predicate over the whole configuration object.
// If the predicate is false the inner rule is never evaluated and no error is
// produced, regardless of the inner rule's own logic. If it is true, the
// inner rule's result is returned unchanged. Nesting composes by AND: an
// outer false predicate short-circuits before any inner predicate runs.
func When[T any](pred func(T) bool, rule Rule[T]) Rule[T] {
	if pred == nil {
		panic("validate: When requires a non-nil predicate")
	}
	if rule == nil {
		panic("validate: When requires a non-nil rule")
	}
	return RuleFunc[T](func(instance T, section string) *Error {
		if !pred(instance) {
			return nil
		}
		return rule.Validate(instance, section)
	})
}
