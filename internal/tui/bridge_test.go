package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/bmi/internal/config"
	streamtesting "github.com/rileyhilliard/bmi/internal/stream/testing"
	"github.com/rileyhilliard/bmi/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridge_DrainKeepsLatest(t *testing.T) {
	clock := streamtesting.NewFakeClock()
	w, err := widget.New(config.DefaultConfig(), widget.WithClock(clock), widget.WithDebounce(0))
	require.NoError(t, err)
	defer w.Close()

	b := newBridge(func(tea.Msg) {})
	detach := b.Attach(w, 3)
	defer detach()

	w.Weight().Set(80)
	w.Weight().Set(90)

	msgs := b.drain()
	require.Len(t, msgs, 1)
	rec, ok := msgs[0].(RecordMsg)
	require.True(t, ok)
	assert.Equal(t, 3, rec.Gen)
	assert.Equal(t, 31.14, rec.Record.Rounded)

	assert.Empty(t, b.drain(), "drained messages aren't resent")
}

func TestBridge_ReloadGoesFirst(t *testing.T) {
	w, err := widget.New(config.DefaultConfig(), widget.WithDebounce(0))
	require.NoError(t, err)
	defer w.Close()

	b := newBridge(func(tea.Msg) {})
	detach := b.Attach(w, 0)
	defer detach()

	cfg := config.DefaultConfig()
	b.Reload(cfg)

	msgs := b.drain()
	require.Len(t, msgs, 2)
	assert.Equal(t, ReloadMsg{Config: cfg}, msgs[0])
	assert.IsType(t, RecordMsg{}, msgs[1])
}

func TestBridge_PumpSends(t *testing.T) {
	out := &sent{}
	b := newBridge(out.send)
	b.Start()
	defer b.Stop()

	cfg := config.DefaultConfig()
	b.Reload(cfg)

	require.Eventually(t, func() bool { return len(out.all()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, ReloadMsg{Config: cfg}, out.all()[0])
}

func TestBridge_DetachStopsDelivery(t *testing.T) {
	w, err := widget.New(config.DefaultConfig(), widget.WithDebounce(0))
	require.NoError(t, err)
	defer w.Close()

	b := newBridge(func(tea.Msg) {})
	detach := b.Attach(w, 0)
	b.drain()
	detach()

	w.Weight().Set(100)
	assert.Empty(t, b.drain())
}

func TestBridge_StopIsIdempotent(t *testing.T) {
	b := newBridge(func(tea.Msg) {})
	b.Start()
	b.Stop()
	assert.NotPanics(t, b.Stop)
}

func TestKeyMap_Help(t *testing.T) {
	assert.Len(t, keys.ShortHelp(), 6)
	assert.Len(t, keys.FullHelp(), 3)
}
