package viewmodel

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"notoday/internal/day"
	"notoday/internal/observable"
	"notoday/internal/question"
)

// DefaultDateFormat renders the date label when none is assigned.
const DefaultDateFormat = "2006-01-02"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DayViewModel drives a Day for one screen session. Notifications from the
// Day's questions and howManyCravings are re-published on the view model,
// and the date label is kept in step in both directions.
type DayViewModel struct {
	*Base

	sessionID string
	day       *day.Day
	lastError *observable.Property[error]

	mu      sync.Mutex
	cancels []func()
}

// Options configures a DayViewModel. Zero fields fall back to the system
// clock, DefaultDateFormat and a generated session id.
type Options struct {
	Clock      Clock
	DateFormat string
	SessionID  string
}

// NewDayViewModel binds a view model to d. When d has no date label, today's
// date from the clock is assigned to both.
func NewDayViewModel(d *day.Day, opts Options) *DayViewModel {
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.DateFormat == "" {
		opts.DateFormat = DefaultDateFormat
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if d.Date() == "" {
		d.SetDate(opts.Clock.Now().Format(opts.DateFormat))
	}

	vm := &DayViewModel{
		Base:      NewBase(),
		sessionID: opts.SessionID,
		day:       d,
	}
	vm.lastError = observable.NewPropertyFunc[error](&vm.obj, PropertyLastError, nil, func(a, b error) bool {
		return a == nil && b == nil
	})
	vm.Base.date.Set(d.Date())

	vm.cancels = append(vm.cancels,
		d.Subscribe(func(change observable.Change) {
			switch change.Name {
			case day.PropertyQuestions, day.PropertyHowManyCravings:
				vm.obj.Notify(change.Name, change.Value)
			case day.PropertyDate:
				vm.Base.SetDate(d.Date())
			}
		}),
		vm.Base.date.Observe(func(label string) {
			d.SetDate(label)
		}),
	)
	return vm
}

// SessionID identifies this screen session.
func (vm *DayViewModel) SessionID() string { return vm.sessionID }

// Day returns the bound Day.
func (vm *DayViewModel) Day() *day.Day { return vm.day }

// Questions returns the Day's current questions.
func (vm *DayViewModel) Questions() []question.Question { return vm.day.Questions() }

// HowManyCravings returns the Day's craving count.
func (vm *DayViewModel) HowManyCravings() int { return vm.day.HowManyCravings() }

// LastError returns the error of the most recent Load, or nil.
func (vm *DayViewModel) LastError() error { return vm.lastError.Get() }

// Load marks the view model busy, loads the Day's questions and clears the
// busy flag again on every path. The outcome is recorded in LastError.
func (vm *DayViewModel) Load(ctx context.Context) error {
	vm.SetBusy(true)
	defer vm.SetBusy(false)

	_, err := vm.day.GetQuestions(ctx)
	vm.lastError.Set(err)
	return err
}

// Close detaches the view model from its Day.
func (vm *DayViewModel) Close() {
	vm.mu.Lock()
	cancels := vm.cancels
	vm.cancels = nil
	vm.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}
