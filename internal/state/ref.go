package state

// Ref is a mutable slot that never triggers notification. Use it for values
// that are read during rendering but must not cause a render themselves.
type Ref[T any] struct {
	current T
}

// NewRef creates a ref holding initial.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{current: initial}
}

// Current returns the held value.
func (r *Ref[T]) Current() T {
	return r.current
}

// Set replaces the held value.
func (r *Ref[T]) Set(v T) {
	r.current = v
}
