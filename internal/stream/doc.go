// Package stream provides the small reactive primitives the widget is built
// from: a latest-value publisher, a combine-latest derivation and a debounce
// stage.
//
// # Value
//
// Value[T] holds the most recent value published to it. Subscribers are
// called synchronously on every Set, and a new subscriber immediately
// receives the current value if one exists. There is no history: each Set
// supersedes the previous value.
//
// # CombineLatest
//
// CombineLatest derives a Value from two sources. Once both sources have a
// value, any change to either recomputes the output using the most recent
// value of the other.
//
// # Debounce
//
// Debounce forwards a source's value only after the source has been quiet
// for the configured window. Each new input stops the pending timer and
// schedules a fresh one, so a burst of inputs produces a single emission
// carrying the last value. Timers come from a Clock so tests can drive time
// by hand (see the testing subpackage).
package stream
