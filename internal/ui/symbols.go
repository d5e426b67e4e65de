package ui

// Unicode symbols for status indicators and slider tracks.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "⚠"
	SymbolFocus   = "▸"
	SymbolKnob    = "●"
)
