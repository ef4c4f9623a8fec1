package tolerance

import "context"

// Do is a convenience function that wraps a single function call with
// suppression behavior without creating a named [Tolerator]. It creates an
// anonymous tolerator internally and calls [Tolerator.Call]. The tolerator
// is not registered with any [Registry].
func Do[T any](ctx context.Context, fn Func[T], args Args, kwargs Kwargs, opts ...any) (T, error) {
	t := New[T]("", opts...)
	return t.Call(ctx, fn, args, kwargs)
}
