package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/logger"
	"github.com/rileyhilliard/bmi/internal/presenter"
	"github.com/rileyhilliard/bmi/internal/slider"
	"github.com/rileyhilliard/bmi/internal/ui"
	"github.com/rileyhilliard/bmi/internal/widget"
)

// Focus identifies which slider receives keyboard input.
type Focus int

const (
	FocusWeight Focus = iota
	FocusHeight
)

// Model is the Bubble Tea model for the interactive widget.
type Model struct {
	widget *widget.Widget
	opts   []widget.Option
	bridge *Bridge
	detach func()
	gen    int

	record  bmi.Record
	settled bool

	focus    Focus
	width    int
	height   int
	maxWidth int
	showHelp bool
	quitting bool

	help  help.Model
	bar   progress.Model
	trend *history

	reloadErr error
	log       logger.Logger
}

// NewModel wraps w, which the model owns from now on: reloads close it and
// Close releases it. Records reach the model through bridge.
func NewModel(w *widget.Widget, bridge *Bridge, log logger.Logger, opts ...widget.Option) Model {
	if log == nil {
		log = logger.Noop()
	}

	m := Model{
		widget: w,
		opts:   opts,
		bridge: bridge,
		width:  DefaultWidth,
		help:   help.New(),
		trend:  newHistory(DefaultHistorySize),
		bar: progress.New(
			progress.WithSolidFill(string(ui.ColorMuted)),
			progress.WithoutPercentage(),
		),
		log: log,
	}
	m.detach = bridge.Attach(w, m.gen)
	m.applyFocus()
	m.resize()
	return m
}

// WithMaxWidth caps the rendered column (output.width). 0 means no cap
// beyond MaxWidth.
func (m Model) WithMaxWidth(width int) Model {
	m.maxWidth = width
	m.resize()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case RecordMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.record = msg.Record
		m.settled = true
		if msg.Record.Valid() {
			m.trend.push(msg.Record.BMI)
			m.bar.FullColor = presenter.ColorForBmi(msg.Record.BMI).Hex()
		}
		return m, nil

	case ReloadMsg:
		m.reload(msg.Config)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Esc also closes the overlay.
	if m.showHelp && msg.String() == "esc" {
		m.showHelp = false
		return m, nil
	}

	s := m.focused()
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, keys.Next):
		m.focus = (m.focus + 1) % 2
		m.applyFocus()
	case key.Matches(msg, keys.Prev):
		m.focus = (m.focus + 1) % 2
		m.applyFocus()
	case key.Matches(msg, keys.Dec):
		s.Decrement(SmallStep)
	case key.Matches(msg, keys.Inc):
		s.Increment(SmallStep)
	case key.Matches(msg, keys.DecLarge):
		s.Decrement(LargeStep)
	case key.Matches(msg, keys.IncLarge):
		s.Increment(LargeStep)
	case key.Matches(msg, keys.Min):
		s.Set(s.Config().Min)
	case key.Matches(msg, keys.Max):
		s.Set(s.Config().Max)
	case key.Matches(msg, keys.Reset):
		m.widget.Weight().Reset()
		m.widget.Height().Reset()
	}
	return m, nil
}

// reload swaps in a widget built from cfg, carrying the current positions
// over (clamped to the new ranges). A config that fails to build leaves the
// old widget running.
func (m *Model) reload(cfg *config.Config) {
	next, err := widget.New(cfg, m.opts...)
	if err != nil {
		m.reloadErr = err
		m.log.Warn("config reload rejected: %v", err)
		return
	}

	next.Weight().Set(m.widget.Weight().Value())
	next.Height().Set(m.widget.Height().Value())

	m.detach()
	m.widget.Close()

	m.gen++
	m.widget = next
	m.reloadErr = nil
	m.detach = m.bridge.Attach(next, m.gen)
	m.applyFocus()
	m.log.Info("widget rebuilt from reloaded config")
}

// Close detaches from the bridge and releases the widget's timers.
func (m Model) Close() {
	m.detach()
	m.widget.Close()
}

// Widget returns the widget currently on screen.
func (m Model) Widget() *widget.Widget {
	return m.widget
}

// Focus returns the focused slider.
func (m Model) Focus() Focus {
	return m.focus
}

func (m Model) focused() *slider.Slider {
	if m.focus == FocusHeight {
		return m.widget.Height()
	}
	return m.widget.Weight()
}

func (m *Model) applyFocus() {
	m.widget.Weight().SetFocused(m.focus == FocusWeight)
	m.widget.Height().SetFocused(m.focus == FocusHeight)
}

// contentWidth is the column width inside the frame padding.
func (m Model) contentWidth() int {
	w := m.width - frameStyle.GetHorizontalFrameSize()
	limit := MaxWidth
	if m.maxWidth > 0 && m.maxWidth < limit {
		limit = m.maxWidth
	}
	if w > limit {
		w = limit
	}
	if w < MinWidth {
		w = MinWidth
	}
	return w
}

func (m *Model) resize() {
	w := m.contentWidth()
	m.bar.Width = w
	m.help.Width = w
}

// barPercent maps a record to the bubbles progress range (0-1).
func barPercent(rec bmi.Record) float64 {
	if !rec.Valid() {
		return 0
	}
	return ui.ClampPercent(presenter.IndicatorWidth(rec.BMI)) / 100
}
