// Package browser implements the tab lifecycle core: the tab registry, the
// active tab projection, per-tab engine subscriptions and the coordinator
// that reconciles engine events with them.
//
// Everything except Value and ReadySignal is confined to the engine's
// goroutine and is not safe for concurrent use.
package browser

import "sync"

// listener wraps a subscriber to enable pointer comparison for removal.
type listener[T any] struct {
	fn func(T)
}

// Value is a reactive value: readers on any goroutine see the latest state
// and subscribers are notified when it changes. Setting a value equal to the
// current one is a no-op.
type Value[T any] struct {
	mu        sync.RWMutex
	current   T
	equal     func(a, b T) bool
	listeners []*listener[T]
}

// NewValue creates a Value compared with ==.
func NewValue[T comparable](initial T) *Value[T] {
	return NewValueFunc(initial, func(a, b T) bool { return a == b })
}

// NewValueFunc creates a Value compared with equal.
func NewValueFunc[T any](initial T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{current: initial, equal: equal}
}

// Get returns the current value. Slices and maps must not be modified.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set stores next and notifies subscribers if it differs from the current value.
// It reports whether the value changed.
func (v *Value[T]) Set(next T) bool {
	v.mu.Lock()
	if v.equal(v.current, next) {
		v.mu.Unlock()
		return false
	}
	v.current = next
	listeners := make([]*listener[T], len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	for _, l := range listeners {
		l.fn(next)
	}
	return true
}

// Subscribe registers fn for future changes and returns an unsubscribe function.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	wrapper := &listener[T]{fn: fn}
	v.listeners = append(v.listeners, wrapper)

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()

		for i, l := range v.listeners {
			if l == wrapper {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}
