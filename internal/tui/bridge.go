package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/widget"
)

// RecordMsg carries a settled record into the Bubble Tea loop. Gen identifies
// the widget that produced it so records from a replaced widget are dropped.
type RecordMsg struct {
	Gen    int
	Record bmi.Record
}

// ReloadMsg carries a freshly loaded config from the file watcher.
type ReloadMsg struct {
	Config *config.Config
}

// Bridge forwards pipeline events to the Bubble Tea program. Publishing never
// blocks: only the latest record and the latest config are kept, and a pump
// goroutine hands them to program.Send. This keeps a zero debounce window
// (which settles on the Update goroutine itself) from deadlocking Send.
type Bridge struct {
	send func(tea.Msg)

	mu     sync.Mutex
	record *RecordMsg
	reload *ReloadMsg
	wake   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewBridge creates a bridge that forwards to program.
func NewBridge(program *tea.Program) *Bridge {
	return newBridge(program.Send)
}

func newBridge(send func(tea.Msg)) *Bridge {
	return &Bridge{
		send: send,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Attach subscribes to w's settled records, tagging each with gen.
// The returned function detaches.
func (b *Bridge) Attach(w *widget.Widget, gen int) (detach func()) {
	return w.Records().Subscribe(func(rec bmi.Record) {
		b.mu.Lock()
		b.record = &RecordMsg{Gen: gen, Record: rec}
		b.mu.Unlock()
		b.notify()
	})
}

// Reload queues a config reload. A newer config replaces one not yet sent.
func (b *Bridge) Reload(cfg *config.Config) {
	b.mu.Lock()
	b.reload = &ReloadMsg{Config: cfg}
	b.mu.Unlock()
	b.notify()
}

// Start runs the pump until Stop is called.
func (b *Bridge) Start() {
	go func() {
		for {
			select {
			case <-b.done:
				return
			case <-b.wake:
				for _, msg := range b.drain() {
					b.send(msg)
				}
			}
		}
	}()
}

// Stop ends the pump. Safe to call more than once.
func (b *Bridge) Stop() {
	b.once.Do(func() { close(b.done) })
}

func (b *Bridge) notify() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// drain takes whatever is queued. A reload goes first so the record that
// follows is judged against the new generation.
func (b *Bridge) drain() []tea.Msg {
	b.mu.Lock()
	defer b.mu.Unlock()

	var msgs []tea.Msg
	if b.reload != nil {
		msgs = append(msgs, *b.reload)
		b.reload = nil
	}
	if b.record != nil {
		msgs = append(msgs, *b.record)
		b.record = nil
	}
	return msgs
}
