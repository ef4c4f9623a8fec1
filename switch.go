package tolerance

// Pattern: Strategy — the switch decides, per call, whether a failure of the
// wrapped function is suppressed and which arguments are forwarded to it.

// Switch inspects the arguments of one call and reports whether a failure
// should be suppressed. The returned args and kwargs are exactly what the
// target function receives: a switch may consume arguments meant only for
// itself. An error returned by a switch always propagates; it is never
// suppressed.
type Switch func(args Args, kwargs Kwargs) (suppress bool, outArgs Args, outKwargs Kwargs, err error)

// DefaultSwitchArgument is the named argument consumed by the default switch.
const DefaultSwitchArgument = "fail_silently"

// switchConfig holds the settings collected by SwitchOption values.
type switchConfig struct {
	def     bool
	reverse bool
	keep    bool
}

// SwitchOption configures a switch built by [ArgumentSwitch].
type SwitchOption func(*switchConfig)

// Default sets the suppression decision used when the named argument is
// absent from the call. Switches suppress by default.
func Default(v bool) SwitchOption {
	return func(c *switchConfig) {
		c.def = v
	}
}

// Reverse inverts the suppression sense of an explicitly passed argument:
// a truthy value propagates and a falsy one suppresses. An absent argument
// still follows [Default] unchanged. Independent of [Keep].
func Reverse() SwitchOption {
	return func(c *switchConfig) {
		c.reverse = true
	}
}

// Keep forwards the named argument (or its default when absent) to the
// target function instead of consuming it.
func Keep() SwitchOption {
	return func(c *switchConfig) {
		c.keep = true
	}
}

// ArgumentSwitch returns a [Switch] driven by a single named argument.
//
// The switch pops name from the call's kwargs. A popped value's truthiness
// is the suppression decision, inverted under [Reverse]; an absent argument
// follows [Default]. Unless [Keep] is set the argument never reaches the
// target function. Positional args always pass through untouched, and the
// caller's kwargs map is never mutated.
func ArgumentSwitch(name string, opts ...SwitchOption) Switch {
	cfg := switchConfig{def: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(args Args, kwargs Kwargs) (bool, Args, Kwargs, error) {
		value, present := kwargs[name]

		var suppress bool

		if present {
			suppress = truthy(value)
			if cfg.reverse {
				suppress = !suppress
			}
		} else {
			value = cfg.def
			suppress = cfg.def
		}

		out := kwargs

		switch {
		case present && !cfg.keep:
			out = kwargs.clone()
			delete(out, name)
		case !present && cfg.keep:
			out = kwargs.clone()
			out[name] = value
		}

		return suppress, args, out, nil
	}
}
