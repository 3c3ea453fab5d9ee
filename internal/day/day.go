// Package day holds the question set for one date and keeps the derived
// craving count in step with it.
package day

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"golang.org/x/sync/singleflight"

	"notoday/internal/observable"
	"notoday/internal/question"
)

// Property names used in Day notifications.
const (
	PropertyDate            = "date"
	PropertyQuestions       = "questions"
	PropertyHowManyCravings = "howManyCravings"
)

// Day owns the questions shown for a date label.
//
// The question list is replace-only: SetQuestions and GetQuestions are the
// only paths that notify. Editing elements of a returned slice in place
// changes the shared backing array without any notification.
type Day struct {
	obj      observable.Object
	provider fs.FS
	resource string
	loads    singleflight.Group
	writes   sync.Mutex

	date      *observable.Property[string]
	questions *observable.Property[[]question.Question]
	cravings  *observable.Derived[int]
}

// Options configures a Day. The zero value reads question.DefaultResource
// and starts with an empty date label.
type Options struct {
	// ResourceName overrides the resource read by GetQuestions.
	ResourceName string
	// Date is the initial date label. Assigning it here does not notify.
	Date string
}

// New creates an empty Day reading its questions from provider.
func New(provider fs.FS, opts Options) *Day {
	resource := opts.ResourceName
	if resource == "" {
		resource = question.DefaultResource
	}
	d := &Day{
		provider: provider,
		resource: resource,
	}
	d.date = observable.NewProperty(&d.obj, PropertyDate, opts.Date)
	d.questions = observable.NewPropertyFunc(&d.obj, PropertyQuestions, []question.Question{}, observable.SameSlice[question.Question])
	d.cravings = observable.NewDerived(&d.obj, PropertyHowManyCravings, d.countCravings, PropertyQuestions)
	return d
}

// Resource returns the name of the resource GetQuestions reads.
func (d *Day) Resource() string { return d.resource }

// Date returns the date label.
func (d *Day) Date() string { return d.date.Get() }

// SetDate assigns the date label and reports whether it changed.
func (d *Day) SetDate(label string) bool { return d.date.Set(label) }

// Questions returns the current question list in file order.
func (d *Day) Questions() []question.Question { return d.questions.Get() }

// HowManyCravings returns the number of loaded questions.
func (d *Day) HowManyCravings() int { return d.cravings.Get() }

// countCravings counts every question; no craving filter is applied.
func (d *Day) countCravings() int {
	return len(d.questions.Get())
}

// SetQuestions replaces the question list. A nil list is stored as empty.
// Assigning the slice already held is a no-op.
//
// Replacements, including the one made by GetQuestions, are serialized
// together with their notifications, so the last questions notification
// always carries the list the Day holds. Observers must not call
// SetQuestions synchronously.
func (d *Day) SetQuestions(questions []question.Question) bool {
	if questions == nil {
		questions = []question.Question{}
	}
	d.writes.Lock()
	defer d.writes.Unlock()
	return d.questions.Set(questions)
}

// GetQuestions reads the packaged questions, replaces the list and returns
// it. On failure the list is left untouched and nothing is notified.
//
// Overlapping calls share a single read: the first caller loads and
// assigns, the others wait for and return the same result. Observers run
// inside that load and must not call GetQuestions synchronously.
func (d *Day) GetQuestions(ctx context.Context) ([]question.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err, _ := d.loads.Do(d.resource, func() (any, error) {
		questions, err := d.load()
		if err != nil {
			return nil, err
		}
		d.SetQuestions(questions)
		return questions, nil
	})
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}
	return result.([]question.Question), nil
}

func (d *Day) load() ([]question.Question, error) {
	if d.provider == nil {
		return nil, &question.ResourceMissingError{Name: d.resource, Err: fs.ErrNotExist}
	}
	return question.Load(d.provider, d.resource)
}

// Subscribe registers fn for every Day notification.
func (d *Day) Subscribe(fn observable.Observer) (cancel func()) {
	return d.obj.Subscribe(fn)
}

// ObserveDate registers a typed observer for the date label.
func (d *Day) ObserveDate(fn func(string)) (cancel func()) {
	return d.date.Observe(fn)
}

// ObserveQuestions registers a typed observer for list replacements.
func (d *Day) ObserveQuestions(fn func([]question.Question)) (cancel func()) {
	return d.questions.Observe(fn)
}

// ObserveHowManyCravings registers a typed observer for the craving count.
func (d *Day) ObserveHowManyCravings(fn func(int)) (cancel func()) {
	return d.cravings.Observe(fn)
}
