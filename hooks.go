package tolerance

// Hooks holds optional callback functions for tolerator lifecycle events.
// All fields are nil by default; callers set only the hooks they care about.
// Once constructed, a Hooks value must not be mutated — emit methods read
// the function fields without synchronisation, which is safe as long as the
// struct is read-only after initialisation.
//
// Pattern: Observer — decouples suppression event emission from consumers
// (logging, metrics, alerting) without the tolerator knowing about observers.
type Hooks struct {
	OnSuppressed     func(err error)
	OnPropagated     func(err error)
	OnPanicRecovered func(value any)
	OnDisabledBypass func(err error)
}

func (h *Hooks) emitSuppressed(err error) {
	if h.OnSuppressed != nil {
		h.OnSuppressed(err)
	}
}

func (h *Hooks) emitPropagated(err error) {
	if h.OnPropagated != nil {
		h.OnPropagated(err)
	}
}

func (h *Hooks) emitPanicRecovered(value any) {
	if h.OnPanicRecovered != nil {
		h.OnPanicRecovered(value)
	}
}

func (h *Hooks) emitDisabledBypass(err error) {
	if h.OnDisabledBypass != nil {
		h.OnDisabledBypass(err)
	}
}
