package stream

import (
	"sync"
	"time"
)

// Debouncer forwards its source to Out after the source has been quiet for
// the configured window.
type Debouncer[T any] struct {
	out    *Value[T]
	window time.Duration
	clock  Clock

	mu      sync.Mutex
	pending Timer
	queued  T
	gen     uint64
	stopped bool
	unsub   func()
}

// Debounce subscribes to in and returns the debounced stage. A zero window
// forwards synchronously. If in already holds a value, it is scheduled like
// any other input.
func Debounce[T any](in *Value[T], window time.Duration, clock Clock) *Debouncer[T] {
	if clock == nil {
		clock = RealClock()
	}
	d := &Debouncer[T]{
		out:    NewValue[T](),
		window: window,
		clock:  clock,
	}
	d.unsub = in.Subscribe(d.push)
	return d
}

// Out is the debounced value stream.
func (d *Debouncer[T]) Out() *Value[T] {
	return d.out
}

// Pending reports whether an emission is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Flush emits the scheduled value now instead of waiting for the window.
// It does nothing when no emission is pending.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.stopped || d.pending == nil {
		d.mu.Unlock()
		return
	}
	d.pending.Stop()
	d.pending = nil
	d.gen++
	x := d.queued
	d.mu.Unlock()
	d.out.Set(x)
}

// Stop cancels any pending emission, unsubscribes from the source and
// closes Out. Safe to call more than once.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.gen++
	unsub := d.unsub
	d.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	d.out.Close()
}

func (d *Debouncer[T]) push(x T) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.window <= 0 {
		d.mu.Unlock()
		d.out.Set(x)
		return
	}

	// Latest wins: drop the pending emission and restart the window.
	if d.pending != nil {
		d.pending.Stop()
	}
	d.gen++
	gen := d.gen
	d.queued = x
	d.pending = d.clock.AfterFunc(d.window, func() {
		d.fire(gen, x)
	})
	d.mu.Unlock()
}

func (d *Debouncer[T]) fire(gen uint64, x T) {
	d.mu.Lock()
	// A timer that fired while a newer input was being scheduled is stale.
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()
	d.out.Set(x)
}
