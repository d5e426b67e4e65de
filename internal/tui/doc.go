// Package tui hosts the BMI widget in a Bubble Tea program.
//
// Slider changes happen on the Bubble Tea goroutine. Settled records come
// back from the debounce timer goroutine through a Bridge, which coalesces
// them and forwards the latest one with program.Send.
package tui
