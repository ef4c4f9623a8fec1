package tolerance

// Pattern: Factory Function — each preset produces a ready-made option bundle
// for a common use case, avoiding boilerplate configuration.

// FailSilently returns options for the canonical tolerant call: every error
// is suppressed unless the caller passes fail_silently=false.
func FailSilently() []any {
	return []any{
		WithSwitchArgument(DefaultSwitchArgument),
	}
}

// Strict returns options that propagate by default: a failure is suppressed
// only when the caller explicitly passes fail_silently=true.
func Strict() []any {
	return []any{
		WithSwitchArgument(DefaultSwitchArgument, Default(false)),
	}
}

// Guarded returns options for wrapping code that may panic: panics are
// recovered and suppressed like errors, unless fail_silently=false.
func Guarded() []any {
	return []any{
		WithSwitchArgument(DefaultSwitchArgument),
		WithRecover(),
	}
}
