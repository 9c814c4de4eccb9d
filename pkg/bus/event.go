package bus

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// Event ...
type Event interface {
	EventName() string
}

//go:generate moq -out bus_mocks.go . EventPublisher

// EventPublisher ...
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// Listener ...
type Listener interface {
	Handle(ctx context.Context, event Event) error
}

// ListenerFunc ...
type ListenerFunc func(ctx context.Context, event Event) error

// Handle ...
func (f ListenerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// On adapts a typed function into a listener for events of type E.
// Events of other types are ignored.
func On[E Event](fn func(ctx context.Context, event E) error) Listener {
	return ListenerFunc(func(ctx context.Context, event Event) error {
		e, ok := event.(E)
		if !ok {
			return nil
		}
		return fn(ctx, e)
	})
}

// FailurePolicy decides what happens to the remaining listeners after one fails
type FailurePolicy int

const (
	// PolicyIsolate runs every listener and combines their errors
	PolicyIsolate FailurePolicy = 1

	// PolicyFailFast stops at the first failing listener
	PolicyFailFast FailurePolicy = 2
)

// Observer is notified after every publish, used for metrics and the event log
type Observer interface {
	Published(ctx context.Context, event Event, listenerErrs []error)
}

type dispatcherOptions struct {
	policy    FailurePolicy
	observers []Observer
}

// DispatcherOption ...
type DispatcherOption func(opts *dispatcherOptions)

// WithFailurePolicy ...
func WithFailurePolicy(policy FailurePolicy) DispatcherOption {
	return func(opts *dispatcherOptions) {
		opts.policy = policy
	}
}

// WithObserver ...
func WithObserver(o Observer) DispatcherOption {
	return func(opts *dispatcherOptions) {
		opts.observers = append(opts.observers, o)
	}
}

// Dispatcher invokes listeners synchronously in registration order
type Dispatcher struct {
	options   dispatcherOptions
	listeners map[string][]Listener
}

var _ EventPublisher = &Dispatcher{}

// NewDispatcher ...
func NewDispatcher(options ...DispatcherOption) *Dispatcher {
	opts := dispatcherOptions{
		policy: PolicyIsolate,
	}
	for _, o := range options {
		o(&opts)
	}
	return &Dispatcher{
		options:   opts,
		listeners: map[string][]Listener{},
	}
}

// Subscribe registers listener for the events named eventName.
// Not safe to call concurrently with Publish, wiring happens before use.
func (d *Dispatcher) Subscribe(eventName string, listener Listener) {
	d.listeners[eventName] = append(d.listeners[eventName], listener)
}

// Publish ...
func (d *Dispatcher) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, l := range d.listeners[event.EventName()] {
		if err := l.Handle(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("listener of %s: %w", event.EventName(), err))
			if d.options.policy == PolicyFailFast {
				break
			}
		}
	}

	for _, o := range d.options.observers {
		o.Published(ctx, event, errs)
	}
	return multierr.Combine(errs...)
}

// Subscribe registers fn for events of type E, keyed by the name of its zero value
func Subscribe[E Event](d *Dispatcher, fn func(ctx context.Context, event E) error) {
	var zero E
	d.Subscribe(zero.EventName(), On(fn))
}
