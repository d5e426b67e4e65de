package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		pushes []float64
		want   []float64
	}{
		{"empty", 3, nil, []float64{}},
		{"partial", 3, []float64{20, 21}, []float64{20, 21}},
		{"full", 3, []float64{20, 21, 22}, []float64{20, 21, 22}},
		{"wraps keeping newest", 3, []float64{20, 21, 22, 23, 24}, []float64{22, 23, 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHistory(tt.size)
			for _, v := range tt.pushes {
				h.push(v)
			}
			assert.Equal(t, tt.want, h.values())
			assert.Equal(t, len(tt.want), h.len())
		})
	}
}

func TestHistoryDefaultSize(t *testing.T) {
	h := newHistory(0)
	for i := 0; i < DefaultHistorySize+5; i++ {
		h.push(float64(i))
	}
	assert.Equal(t, DefaultHistorySize, h.len())
	assert.Equal(t, float64(5), h.values()[0])
}
