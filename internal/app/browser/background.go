package browser

import (
	"context"
	"sync"

	"github.com/bnema/tabshell/internal/logging"
)

// Background runs fire-and-forget side effects (disk I/O) off the engine
// goroutine. Failures are logged and never reach the caller.
type Background struct {
	ctx context.Context
	wg  sync.WaitGroup
}

// NewBackground creates a runner whose tasks receive ctx.
func NewBackground(ctx context.Context) *Background {
	return &Background{ctx: ctx}
}

// Go starts fn in a new goroutine.
func (b *Background) Go(name string, fn func(ctx context.Context) error) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if err := fn(b.ctx); err != nil {
			logging.FromContext(b.ctx).Error().Err(err).Str("task", name).Msg("background task failed")
		}
	}()
}

// Wait blocks until all started tasks have returned.
func (b *Background) Wait() {
	b.wg.Wait()
}

type namedTask struct {
	name string
	fn   func(ctx context.Context) error
}

// SerialQueue runs tasks one at a time in submission order on a Background.
type SerialQueue struct {
	bg      *Background
	mu      sync.Mutex
	pending []namedTask
	running bool
}

// Serial creates a queue whose tasks run in order on b.
func (b *Background) Serial() *SerialQueue {
	return &SerialQueue{bg: b}
}

// Go queues fn after every previously queued task.
func (q *SerialQueue) Go(name string, fn func(ctx context.Context) error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append(q.pending, namedTask{name: name, fn: fn})
	if q.running {
		return
	}
	q.running = true
	q.bg.Go("serial queue", q.drain)
}

func (q *SerialQueue) drain(ctx context.Context) error {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.running = false
			q.mu.Unlock()
			return nil
		}
		task := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		if err := task.fn(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Str("task", task.name).Msg("background task failed")
		}
	}
}
