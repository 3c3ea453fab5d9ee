package observable

import (
	"fmt"
	"sync"
)

// Change describes a single property notification.
type Change struct {
	Name  string
	Value any
}

// Observer receives property notifications.
type Observer func(Change)

type subscription struct {
	id int
	fn Observer
}

type derivation struct {
	name  string
	value func() any
}

// Object is the notification hub shared by the properties of one entity.
// Observers are called synchronously on the goroutine that made the change,
// in subscription order and outside of any lock, so they may read the
// entity back.
type Object struct {
	mu          sync.Mutex
	nextID      int
	subscribers []subscription
	derived     map[string][]derivation
}

// Subscribe registers fn for every change on the object and returns a
// function that removes it again.
func (o *Object) Subscribe(fn Observer) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.subscribers = append(o.subscribers, subscription{id: id, fn: fn})
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { o.unsubscribe(id) })
	}
}

func (o *Object) unsubscribe(id int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, sub := range o.subscribers {
		if sub.id == id {
			o.subscribers = append(o.subscribers[:i:i], o.subscribers[i+1:]...)
			return
		}
	}
}

// Derive declares name as a value computed from the upstream properties.
// Whenever an upstream property notifies, value is evaluated and name is
// notified right after it. Declarations fire in the order they were made.
func (o *Object) Derive(name string, value func() any, upstream ...string) {
	if value == nil {
		panic(fmt.Sprintf("observable: derived %q has no value func", name))
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.derived == nil {
		o.derived = map[string][]derivation{}
	}
	for _, source := range upstream {
		if source == name {
			panic(fmt.Sprintf("observable: derived %q depends on itself", name))
		}
		o.derived[source] = append(o.derived[source], derivation{name: name, value: value})
	}
}

// Notify delivers a change for name and then cascades to every value
// derived from it.
func (o *Object) Notify(name string, value any) {
	o.mu.Lock()
	subscribers := append([]subscription(nil), o.subscribers...)
	dependents := append([]derivation(nil), o.derived[name]...)
	o.mu.Unlock()

	change := Change{Name: name, Value: value}
	for _, sub := range subscribers {
		sub.fn(change)
	}
	for _, dependent := range dependents {
		o.Notify(dependent.name, dependent.value())
	}
}
