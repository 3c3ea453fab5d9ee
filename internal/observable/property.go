package observable

import "sync"

// Property is a named value whose assignment notifies its owner.
type Property[T any] struct {
	owner *Object
	name  string
	equal func(a, b T) bool

	mu    sync.RWMutex
	value T
}

// NewProperty creates a property compared with ==.
func NewProperty[T comparable](owner *Object, name string, initial T) *Property[T] {
	return NewPropertyFunc(owner, name, initial, func(a, b T) bool { return a == b })
}

// NewPropertyFunc creates a property compared with equal. A nil equal
// treats every assignment as a change.
func NewPropertyFunc[T any](owner *Object, name string, initial T, equal func(a, b T) bool) *Property[T] {
	if equal == nil {
		equal = func(T, T) bool { return false }
	}
	return &Property[T]{owner: owner, name: name, equal: equal, value: initial}
}

// Name returns the property name used in notifications.
func (p *Property[T]) Name() string { return p.name }

// Get returns the current value.
func (p *Property[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set stores value and notifies when it differs from the current one.
// It reports whether a notification was sent.
//
// Notification happens after the store, outside the lock. Concurrent Sets
// on one property may therefore notify in a different order than they
// stored; owners with concurrent writers serialize them around Set.
func (p *Property[T]) Set(value T) bool {
	p.mu.Lock()
	if p.equal(p.value, value) {
		p.mu.Unlock()
		return false
	}
	p.value = value
	p.mu.Unlock()

	p.owner.Notify(p.name, value)
	return true
}

// Observe registers a typed observer for this property only.
func (p *Property[T]) Observe(fn func(T)) (cancel func()) {
	return observeNamed(p.owner, p.name, fn)
}

// Derived is a read-only value recomputed from upstream properties.
type Derived[T any] struct {
	owner   *Object
	name    string
	compute func() T
}

// NewDerived declares name on owner as computed by compute from upstream.
func NewDerived[T any](owner *Object, name string, compute func() T, upstream ...string) *Derived[T] {
	owner.Derive(name, func() any { return compute() }, upstream...)
	return &Derived[T]{owner: owner, name: name, compute: compute}
}

// Name returns the derived value name used in notifications.
func (d *Derived[T]) Name() string { return d.name }

// Get computes the current value.
func (d *Derived[T]) Get() T { return d.compute() }

// Observe registers a typed observer for this derived value only.
func (d *Derived[T]) Observe(fn func(T)) (cancel func()) {
	return observeNamed(d.owner, d.name, fn)
}

func observeNamed[T any](owner *Object, name string, fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	return owner.Subscribe(func(change Change) {
		if change.Name != name {
			return
		}
		value, _ := change.Value.(T)
		fn(value)
	})
}

// SameSlice reports whether a and b share the same backing array and length.
// Empty slices never compare equal, so assigning a freshly decoded empty
// list always notifies.
func SameSlice[E any](a, b []E) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	return &a[0] == &b[0]
}
