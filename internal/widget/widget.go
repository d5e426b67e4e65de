// Package widget wires two sliders into the BMI pipeline: combine-latest over
// weight and height, derive a record, debounce, then present.
package widget

import (
	"sync"
	"time"

	"github.com/rileyhilliard/bmi/internal/bmi"
	"github.com/rileyhilliard/bmi/internal/config"
	"github.com/rileyhilliard/bmi/internal/logger"
	"github.com/rileyhilliard/bmi/internal/presenter"
	"github.com/rileyhilliard/bmi/internal/slider"
	"github.com/rileyhilliard/bmi/internal/stream"
	"github.com/rileyhilliard/bmi/internal/view"
)

// Option configures a Widget.
type Option func(*options)

type options struct {
	clock    stream.Clock
	log      logger.Logger
	debounce *time.Duration
}

// WithClock replaces the timer source used by the debounce stage.
func WithClock(c stream.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger for pipeline events.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithDebounce overrides the config's debounce window.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = &d }
}

// Widget owns the sliders and the derivation pipeline between them and the
// render tree.
type Widget struct {
	weight *slider.Slider
	height *slider.Slider

	current     *stream.Value[bmi.Record]
	stopCombine func()
	debouncer   *stream.Debouncer[bmi.Record]

	log       logger.Logger
	stopLog   func()
	closeOnce sync.Once
}

// New validates cfg, builds both sliders and starts the pipeline. The initial
// slider values are already in flight: the first record settles one debounce
// window after New returns.
func New(cfg *config.Config, opts ...Option) (*Widget, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	o := options{clock: stream.RealClock(), log: logger.Noop()}
	for _, opt := range opts {
		opt(&o)
	}
	window := cfg.DebounceDuration()
	if o.debounce != nil {
		window = *o.debounce
	}

	weight, err := slider.New(cfg.WeightSlider())
	if err != nil {
		return nil, err
	}
	height, err := slider.New(cfg.HeightSlider())
	if err != nil {
		weight.Close()
		return nil, err
	}

	w := &Widget{
		weight: weight,
		height: height,
		log:    o.log,
	}
	w.current, w.stopCombine = stream.CombineLatest(weight.Values(), height.Values(), bmi.Derive)
	w.debouncer = stream.Debounce(w.current, window, o.clock)
	w.stopLog = w.debouncer.Out().Subscribe(func(rec bmi.Record) {
		w.log.Debug("settled %s", presenter.Readout(rec))
	})

	w.log.Debug("widget started (debounce %s)", window)
	return w, nil
}

// Weight is the weight slider.
func (w *Widget) Weight() *slider.Slider { return w.weight }

// Height is the height slider.
func (w *Widget) Height() *slider.Slider { return w.height }

// Records is the debounced record stream. Subscribers see only settled
// values.
func (w *Widget) Records() *stream.Value[bmi.Record] {
	return w.debouncer.Out()
}

// Current returns the latest derived record, settled or not.
func (w *Widget) Current() bmi.Record {
	rec, _ := w.current.Get()
	return rec
}

// Settled returns the last debounced record and whether one has settled yet.
func (w *Widget) Settled() (bmi.Record, bool) {
	return w.Records().Get()
}

// Settle emits any pending record immediately.
func (w *Widget) Settle() {
	w.debouncer.Flush()
}

// Pending reports whether a record is waiting out the debounce window.
func (w *Widget) Pending() bool {
	return w.debouncer.Pending()
}

// Tree renders the composite view for the last settled record. Before the
// first record settles the readout shows the undefined sentinel.
func (w *Widget) Tree() view.Node {
	rec, _ := w.Settled()
	return w.TreeFor(rec)
}

// TreeFor renders the composite view for rec with the sliders' current nodes.
func (w *Widget) TreeFor(rec bmi.Record) view.Node {
	return presenter.Tree(w.weight.Node(), w.height.Node(), rec)
}

// OnRender calls fn with a fresh tree each time a record settles, including
// the current one if it already has. The returned function stops delivery.
func (w *Widget) OnRender(fn func(view.Node)) (unsubscribe func()) {
	return w.Records().Subscribe(func(rec bmi.Record) {
		fn(w.TreeFor(rec))
	})
}

// Close stops the pending timer and releases every subscription. Nothing is
// emitted after Close returns. Safe to call more than once.
func (w *Widget) Close() {
	w.closeOnce.Do(func() {
		w.debouncer.Stop()
		w.stopLog()
		w.stopCombine()
		w.weight.Close()
		w.height.Close()
		w.log.Debug("widget closed")
	})
}
