package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"notoday/internal/observable"
	"notoday/internal/viewmodel"
)

// Controller runs the live UI and forwards view model notifications to it.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	cancel  func()
	closed  bool
	dropped int
	err     error
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, err := program.Run()
		controller.mu.Lock()
		controller.err = err
		controller.mu.Unlock()
		close(controller.done)
	}()
	return controller
}

// Bind announces the session and subscribes to vm's notifications.
func (c *Controller) Bind(vm *viewmodel.DayViewModel) {
	if c == nil || vm == nil {
		return
	}
	c.send(Event{Kind: EventSessionStart, SessionID: vm.SessionID(), Date: vm.Date()})
	cancel := vm.Subscribe(c.Observe)
	c.mu.Lock()
	previous := c.cancel
	c.cancel = cancel
	c.mu.Unlock()
	if previous != nil {
		previous()
	}
}

// Observe forwards a property notification to the UI.
func (c *Controller) Observe(change observable.Change) {
	c.send(Event{Kind: EventChange, Change: change})
}

// Close detaches from the view model and signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		c.mu.Lock()
		cancel := c.cancel
		c.cancel = nil
		c.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		c.send(Event{Kind: EventSessionEnd})
		c.mu.Lock()
		c.closed = true
		close(c.events)
		c.mu.Unlock()
	})
}

// Wait blocks until the UI has exited and returns its error.
func (c *Controller) Wait() error {
	if c == nil {
		return nil
	}
	<-c.done
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Done is closed once the UI has exited.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Dropped reports how many events were discarded because the UI fell
// behind. A dropped change is only repaired by the next reload.
func (c *Controller) Dropped() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.events <- event:
	default:
		c.dropped++
	}
}
