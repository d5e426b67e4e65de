package stream

import "sync"

// Value is a latest-value publisher. The zero value is not usable; create
// one with NewValue or NewValueOf.
type Value[T any] struct {
	mu      sync.Mutex
	current T
	has     bool
	closed  bool
	nextID  int
	subs    map[int]func(T)
	order   []int
}

// NewValue creates an empty Value.
func NewValue[T any]() *Value[T] {
	return &Value[T]{subs: make(map[int]func(T))}
}

// NewValueOf creates a Value that already holds initial.
func NewValueOf[T any](initial T) *Value[T] {
	v := NewValue[T]()
	v.current = initial
	v.has = true
	return v
}

// Set stores x and notifies subscribers in subscription order.
// Set on a closed Value is ignored.
func (v *Value[T]) Set(x T) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.current = x
	v.has = true
	fns := v.snapshot()
	v.mu.Unlock()

	for _, fn := range fns {
		fn(x)
	}
}

// Get returns the current value and whether one has been set.
func (v *Value[T]) Get() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current, v.has
}

// Subscribe registers fn and replays the current value to it, if any.
// The returned function removes the subscription; calling it twice is safe.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return func() {}
	}
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.order = append(v.order, id)
	current, has := v.current, v.has
	v.mu.Unlock()

	if has {
		fn(current)
	}

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		v.remove(id)
	}
}

// Subscribers returns the number of active subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// Close drops every subscriber and ignores further Sets.
func (v *Value[T]) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.subs = make(map[int]func(T))
	v.order = nil
	v.mu.Unlock()
}

// Closed reports whether Close has been called.
func (v *Value[T]) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *Value[T]) snapshot() []func(T) {
	fns := make([]func(T), 0, len(v.order))
	for _, id := range v.order {
		fns = append(fns, v.subs[id])
	}
	return fns
}

func (v *Value[T]) remove(id int) {
	if _, ok := v.subs[id]; !ok {
		return
	}
	delete(v.subs, id)
	for i, o := range v.order {
		if o == id {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
}
