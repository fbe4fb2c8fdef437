package state

// Scope is a node in the provider tree. Consumers resolve a context by walking
// from their scope towards the root and taking the first provider found.
type Scope struct {
	parent    *Scope
	children  []*Scope
	providers map[any]disposer
	consumers []resolver
	disposed  bool
}

type disposer interface {
	dispose()
}

// resolver is a consumer registration that can rebind itself to the nearest
// provider after the scope tree changes.
type resolver interface {
	resolve()
}

// NewScope creates a scope nested under parent. A nil parent creates a root.
func NewScope(parent *Scope) *Scope {
	s := &Scope{parent: parent, providers: make(map[any]disposer)}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Child creates a scope nested under s.
func (s *Scope) Child() *Scope {
	return NewScope(s)
}

// Parent returns the enclosing scope, or nil for a root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Dispose tears down every provider held by s and its descendants and detaches
// s from its parent. Consumers under s fall back to outer providers or defaults.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	for _, c := range s.children {
		c.parent = nil
		c.Dispose()
	}
	s.children = nil
	for key, p := range s.providers {
		p.dispose()
		delete(s.providers, key)
	}
	s.disposed = true
	if s.parent != nil {
		siblings := s.parent.children
		for i, c := range siblings {
			if c == s {
				s.parent.children = append(siblings[:i:i], siblings[i+1:]...)
				break
			}
		}
		s.parent = nil
	}
	consumers := s.consumers
	s.consumers = nil
	for _, c := range consumers {
		c.resolve()
	}
}

// resolveConsumers rebinds every consumer registered in s or its descendants.
func (s *Scope) resolveConsumers() {
	for _, c := range append([]resolver(nil), s.consumers...) {
		c.resolve()
	}
	for _, child := range append([]*Scope(nil), s.children...) {
		child.resolveConsumers()
	}
}

func (s *Scope) removeConsumer(r resolver) {
	for i, c := range s.consumers {
		if c == r {
			s.consumers = append(s.consumers[:i:i], s.consumers[i+1:]...)
			return
		}
	}
}

// Context names a value that can be provided to a subtree of scopes.
type Context[T any] struct {
	name         string
	defaultValue T
}

// NewContext creates a context whose consumers see defaultValue when no
// provider encloses them.
func NewContext[T any](name string, defaultValue T) *Context[T] {
	return &Context[T]{name: name, defaultValue: defaultValue}
}

// Name returns the context's name.
func (c *Context[T]) Name() string {
	return c.name
}

// Default returns the value used when no provider encloses a consumer.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

// Lookup returns the nearest provider of c enclosing scope.
func (c *Context[T]) Lookup(scope *Scope) (*Provider[T], bool) {
	for s := scope; s != nil; s = s.parent {
		if p, ok := s.providers[c]; ok {
			return p.(*Provider[T]), true
		}
	}
	return nil, false
}

// Use returns the value of the nearest provider, or the default.
func (c *Context[T]) Use(scope *Scope) T {
	if p, ok := c.Lookup(scope); ok {
		return p.Value()
	}
	return c.defaultValue
}

// Subscribe keeps sub subscribed to whichever provider of c is nearest to
// scope. When a provider is added, replaced or disposed the registration moves
// to the new nearest provider (or the default) and sub is invalidated.
func (c *Context[T]) Subscribe(scope *Scope, sub Subscriber) func() {
	r := &consumer[T]{ctx: c, scope: scope, sub: sub, unsub: func() {}}
	if p, ok := c.Lookup(scope); ok {
		r.provider = p
		r.unsub = p.Subscribe(sub)
	}
	if !scope.disposed {
		scope.consumers = append(scope.consumers, r)
	}
	return func() {
		if r.done {
			return
		}
		r.done = true
		r.unsub()
		scope.removeConsumer(r)
	}
}

type consumer[T any] struct {
	ctx      *Context[T]
	scope    *Scope
	sub      Subscriber
	provider *Provider[T]
	unsub    func()
	done     bool
}

func (r *consumer[T]) resolve() {
	if r.done {
		return
	}
	p, _ := r.ctx.Lookup(r.scope)
	if p == r.provider {
		return
	}
	r.unsub()
	r.provider, r.unsub = p, func() {}
	if p != nil {
		r.unsub = p.Subscribe(r.sub)
	}
	r.sub.Invalidate()
}

// Provider holds the authoritative value of a context for one scope.
type Provider[T any] struct {
	ctx  *Context[T]
	cell *Cell[T]
}

// Provide makes a new provider of ctx authoritative for scope and its
// descendants. A provider already registered for ctx in the same scope is
// disposed and replaced.
func Provide[T any](scope *Scope, ctx *Context[T], s *Scheduler, initial T) *Provider[T] {
	if old, ok := scope.providers[ctx]; ok {
		old.dispose()
	}
	p := &Provider[T]{ctx: ctx, cell: NewCell(s, initial)}
	scope.providers[ctx] = p
	scope.resolveConsumers()
	return p
}

// Value returns the provided value.
func (p *Provider[T]) Value() T {
	return p.cell.Get()
}

// Set replaces the provided value and notifies every consumer.
func (p *Provider[T]) Set(v T) {
	p.cell.Set(v)
}

// Subscribe registers sub for changes of the provided value.
func (p *Provider[T]) Subscribe(sub Subscriber) func() {
	return p.cell.Subscribe(sub)
}

func (p *Provider[T]) dispose() {
	p.cell.Dispose()
}
