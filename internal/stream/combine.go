package stream

import "sync"

// CombineLatest derives a Value from a and b. The output is recomputed with
// fn each time either source changes, once both have produced a value.
// The returned stop function unsubscribes from both sources.
func CombineLatest[A, B, R any](a *Value[A], b *Value[B], fn func(A, B) R) (*Value[R], func()) {
	out := NewValue[R]()

	var (
		mu     sync.Mutex
		latest struct {
			a    A
			b    B
			hasA bool
			hasB bool
		}
	)

	emit := func() {
		mu.Lock()
		if !latest.hasA || !latest.hasB {
			mu.Unlock()
			return
		}
		av, bv := latest.a, latest.b
		mu.Unlock()
		out.Set(fn(av, bv))
	}

	stopA := a.Subscribe(func(x A) {
		mu.Lock()
		latest.a, latest.hasA = x, true
		mu.Unlock()
		emit()
	})
	stopB := b.Subscribe(func(x B) {
		mu.Lock()
		latest.b, latest.hasB = x, true
		mu.Unlock()
		emit()
	})

	var once sync.Once
	return out, func() {
		once.Do(func() {
			stopA()
			stopB()
			out.Close()
		})
	}
}
