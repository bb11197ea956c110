// Package dispatch provides the confinement goroutine the tab lifecycle
// core and the engine run on.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

// ErrClosed is returned by Do after the loop stopped.
var ErrClosed = errors.New("dispatch loop closed")

const defaultQueueSize = 64

// Loop runs posted functions one at a time, in order, on a single goroutine.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

var _ port.Dispatcher = (*Loop)(nil)

// NewLoop creates a stopped loop. Call Run to start it.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), defaultQueueSize),
		done:  make(chan struct{}),
	}
}

// Run executes posted functions until ctx is done or Close is called.
// A panicking function is logged and the loop keeps running.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Debug().Msg("dispatch loop started")
	defer log.Debug().Msg("dispatch loop stopped")

	for {
		select {
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.tasks:
			l.run(ctx, fn)
		}
	}
}

func (l *Loop) run(ctx context.Context, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.FromContext(ctx).Error().Interface("panic", r).Msg("dispatched function panicked")
		}
	}()
	fn()
}

// Post queues fn. Functions posted after Close are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.tasks <- fn:
	case <-l.done:
	}
}

// Do runs fn on the loop and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	l.Post(func() {
		defer close(finished)
		fn()
	})
	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the loop. Queued functions that did not start are dropped.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.done) })
}
