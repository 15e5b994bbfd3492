package input

import (
	"log/slog"
	"sync"
)

// DispatcherOption is a functional option for configuring a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithBindings replaces the default key bindings.
//
// Parameters:
//   - b: the key code to action map
//
// Returns:
//   - DispatcherOption: functional option to set the bindings
func WithBindings(b Bindings) DispatcherOption {
	return func(d *Dispatcher) {
		d.bindings = b
	}
}

// WithQueueSize sets how many undelivered events are kept before the oldest is dropped.
//
// Parameters:
//   - size: maximum queued events (values < 1 are ignored)
//
// Returns:
//   - DispatcherOption: functional option to set the queue size
func WithQueueSize(size int) DispatcherOption {
	return func(d *Dispatcher) {
		if size > 0 {
			d.queueSize = size
		}
	}
}

// WithLogger sets the logger used for dropped-event warnings.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Dispatcher receives key callbacks from the window thread, translates them to action events and
// queues them until the simulation tick drains them. Only unhandled input reaches the queue:
// while a text-entry control has focus every key event is consumed.
type Dispatcher struct {
	mu        sync.Mutex
	bindings  Bindings
	queue     []Event
	queueSize int
	textFocus bool
	dropped   uint64
	logger    *slog.Logger
}

// NewDispatcher creates a Dispatcher with the default bindings.
//
// Parameters:
//   - options: functional options to configure the dispatcher
//
// Returns:
//   - *Dispatcher: the new dispatcher
func NewDispatcher(options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		bindings:  DefaultBindings(),
		queueSize: 64,
		logger:    slog.Default(),
	}
	for _, opt := range options {
		opt(d)
	}
	d.queue = make([]Event, 0, d.queueSize)
	return d
}

// KeyDown handles a key press from the window.
func (d *Dispatcher) KeyDown(keyCode uint32) {
	d.key(keyCode, true)
}

// KeyUp handles a key release from the window.
func (d *Dispatcher) KeyUp(keyCode uint32) {
	d.key(keyCode, false)
}

func (d *Dispatcher) key(keyCode uint32, pressed bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.textFocus {
		return
	}
	action, ok := d.bindings[keyCode]
	if !ok {
		return
	}
	d.push(Event{Action: action, Pressed: pressed})
}

// push appends an event, dropping the oldest when full. Caller must hold the mutex.
func (d *Dispatcher) push(ev Event) {
	if len(d.queue) >= d.queueSize {
		d.dropped++
		d.logger.Warn("input queue full, dropping oldest event",
			"dropped_action", string(d.queue[0].Action),
			"dropped_total", d.dropped,
		)
		copy(d.queue, d.queue[1:])
		d.queue = d.queue[:len(d.queue)-1]
	}
	d.queue = append(d.queue, ev)
}

// SetTextFocus marks whether a text-entry control currently owns keyboard input.
// Gaining focus queues a release for every direction so no key stays latched while
// its real release is swallowed by the text field.
//
// Parameters:
//   - focused: true while a text field has focus
func (d *Dispatcher) SetTextFocus(focused bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if focused && !d.textFocus {
		for _, a := range []Action{ActionLeft, ActionRight, ActionUp, ActionDown} {
			d.push(Event{Action: a, Pressed: false})
		}
	}
	d.textFocus = focused
}

// TextFocus reports whether a text-entry control currently has focus.
func (d *Dispatcher) TextFocus() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.textFocus
}

// Drain delivers every queued event to fn in arrival order and empties the queue.
// fn runs without the dispatcher lock held, so it may call back into the dispatcher.
//
// Parameters:
//   - fn: receiver for each event
//
// Returns:
//   - int: number of events delivered
func (d *Dispatcher) Drain(fn func(Event)) int {
	d.mu.Lock()
	pending := make([]Event, len(d.queue))
	copy(pending, d.queue)
	d.queue = d.queue[:0]
	d.mu.Unlock()

	for _, ev := range pending {
		fn(ev)
	}
	return len(pending)
}

// Dropped returns how many events were discarded because the queue was full.
func (d *Dispatcher) Dropped() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}
