// Package viewmodel exposes the observable state a screen binds to.
package viewmodel

import "notoday/internal/observable"

// Property names used in view model notifications.
const (
	PropertyIsBusy    = "isBusy"
	PropertyIsNotBusy = "isNotBusy"
	PropertyDate      = "date"
	PropertyLastError = "lastError"
)

// Base holds the busy flag and date label shared by every screen.
type Base struct {
	obj     observable.Object
	busy    *observable.Property[bool]
	notBusy *observable.Derived[bool]
	date    *observable.Property[string]
}

// NewBase creates an idle view model with an empty date label.
func NewBase() *Base {
	b := &Base{}
	b.busy = observable.NewProperty(&b.obj, PropertyIsBusy, false)
	b.notBusy = observable.NewDerived(&b.obj, PropertyIsNotBusy, func() bool { return !b.busy.Get() }, PropertyIsBusy)
	b.date = observable.NewProperty(&b.obj, PropertyDate, "")
	return b
}

// IsBusy reports whether work is in progress.
func (b *Base) IsBusy() bool { return b.busy.Get() }

// SetBusy updates the busy flag; isNotBusy is renotified after it.
func (b *Base) SetBusy(busy bool) bool { return b.busy.Set(busy) }

// IsNotBusy is the negation of IsBusy.
func (b *Base) IsNotBusy() bool { return b.notBusy.Get() }

// Date returns the date label.
func (b *Base) Date() string { return b.date.Get() }

// SetDate updates the date label.
func (b *Base) SetDate(label string) bool { return b.date.Set(label) }

// Subscribe registers fn for every notification of the view model.
func (b *Base) Subscribe(fn observable.Observer) (cancel func()) {
	return b.obj.Subscribe(fn)
}
