package modec

// Shape describes how a raw document node becomes a value of type T.
//
// TryRaw attempts the conversion and reports whether the raw node was
// convertible. Fallback supplies the deterministic placeholder assigned to a
// required field whose resolution failed, so that model construction can keep
// assigning fields without early exit; fallbacks are consumed before the
// failure check and are never observable by the caller.
//
// Shapes are selected at the call site per target type; the engine never
// inspects the target type at runtime. Ready-made shapes live in the shape
// and codec packages.
type Shape[T any] interface {
	TryRaw(raw any) (T, bool)
	Fallback() T
}

// ShapeFunc adapts a conversion function into a Shape whose fallback is the
// zero value of T.
type ShapeFunc[T any] func(raw any) (T, bool)

func (f ShapeFunc[T]) TryRaw(raw any) (T, bool) { return f(raw) }

func (f ShapeFunc[T]) Fallback() T {
	var zero T
	return zero
}
