// Package ui holds the shared terminal palette and the small rendering
// helpers built on Lip Gloss: slider tracks, proportional cell widths for
// the category bar, sparklines and tables.
//
// # Color Scheme
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (amber)  - Warnings such as clamped input
//	ColorInfo      (cyan)   - Informational values
//	ColorMuted     (gray)   - Secondary text, hints, empty tracks
//	ColorAccent    (pink)   - Focused slider and titles
//
// Use DisableColors() to switch to monochrome output (for --no-color flag)
// and ForceColors() when color is requested for piped output.
//
// # Symbols
//
//	SymbolSuccess  - Task completed successfully
//	SymbolFail     - Error prefix
//	SymbolWarning  - Warning prefix
//	SymbolFocus    - Marks the focused slider or the current legend row
//	SymbolKnob     - Slider knob on a track
package ui
