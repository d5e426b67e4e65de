package tui

// DefaultHistorySize is how many settled readings the trend line keeps.
const DefaultHistorySize = 40

// history is a fixed-size circular buffer of settled BMI values.
// It lives on the Bubble Tea goroutine, so it carries no lock.
type history struct {
	data  []float64
	head  int
	count int
}

func newHistory(size int) *history {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &history{data: make([]float64, size)}
}

func (h *history) push(v float64) {
	h.data[h.head] = v
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

// values returns the buffered readings oldest first.
func (h *history) values() []float64 {
	out := make([]float64, h.count)
	start := (h.head - h.count + len(h.data)) % len(h.data)
	for i := 0; i < h.count; i++ {
		out[i] = h.data[(start+i)%len(h.data)]
	}
	return out
}

func (h *history) len() int {
	return h.count
}
