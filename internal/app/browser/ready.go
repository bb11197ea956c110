package browser

import (
	"context"
	"sync"
)

// ReadySignal is a one-shot broadcast: Signal releases every current and
// future Wait call. It is safe for concurrent use.
type ReadySignal struct {
	once sync.Once
	ch   chan struct{}
}

// NewReadySignal creates an unsignaled ReadySignal.
func NewReadySignal() *ReadySignal {
	return &ReadySignal{ch: make(chan struct{})}
}

// Signal marks the signal complete. It reports whether this call completed it.
func (s *ReadySignal) Signal() bool {
	fired := false
	s.once.Do(func() {
		close(s.ch)
		fired = true
	})
	return fired
}

// IsSet reports whether Signal has been called.
func (s *ReadySignal) IsSet() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Done returns a channel closed on Signal.
func (s *ReadySignal) Done() <-chan struct{} {
	return s.ch
}

// Wait blocks until Signal is called or ctx is done. There is no timeout:
// an engine that never finishes restoring blocks callers until they cancel.
func (s *ReadySignal) Wait(ctx context.Context) error {
	select {
	case <-s.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
