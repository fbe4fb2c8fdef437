package state

// Target is an external widget that can be driven imperatively.
type Target interface {
	Focus()
	SetContent(text string)
}

// Handle is a lifecycle-bound reference to one Target. It is unbound before
// mount and after unmount; every operation on an unbound handle is a no-op.
type Handle[T Target] struct {
	target T
	bound  bool
}

// Bind attaches the handle to t. Call at mount.
func (h *Handle[T]) Bind(t T) {
	h.target = t
	h.bound = true
}

// Unbind detaches the handle. Call at unmount.
func (h *Handle[T]) Unbind() {
	var zero T
	h.target = zero
	h.bound = false
}

// Bound reports whether a target is attached.
func (h *Handle[T]) Bound() bool {
	return h != nil && h.bound
}

// With calls fn with the bound target, if any.
func (h *Handle[T]) With(fn func(T)) {
	if !h.Bound() {
		return
	}
	fn(h.target)
}

// Focus requests input focus on the target.
func (h *Handle[T]) Focus() {
	h.With(func(t T) { t.Focus() })
}

// Clear empties the target's content.
func (h *Handle[T]) Clear() {
	h.SetContent("")
}

// SetContent replaces the target's content.
func (h *Handle[T]) SetContent(text string) {
	h.With(func(t T) { t.SetContent(text) })
}
