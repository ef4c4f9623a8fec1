package tolerance

import "context"

// ---------------------------------------------------------------------------
// Call model — positional and named arguments as an explicit pair
// ---------------------------------------------------------------------------

type (
	// Args holds the ordered positional values of one call.
	Args []any

	// Kwargs holds the named values of one call. A nil map is a valid empty
	// set of named values.
	Kwargs map[string]any
)

// Func is the shape of a wrapped callable: positional and named arguments in,
// a typed result or an error out. Switches and substitutes operate on the
// same args/kwargs pair, so whatever a switch consumes never reaches fn.
type Func[T any] func(ctx context.Context, args Args, kwargs Kwargs) (T, error)

// clone returns a shallow copy with room for one extra entry. Switches copy
// before deleting or inserting so the caller's map is never mutated.
func (k Kwargs) clone() Kwargs {
	out := make(Kwargs, len(k)+1)
	for key, v := range k {
		out[key] = v
	}

	return out
}

// truthy reports the boolean sense of a switch argument value. Callers
// normally pass bool, but string and numeric values follow their natural
// emptiness, and any other non-nil value counts as true.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	default:
		return true
	}
}
