package ui

// Unicode symbols for status indicators.
const (
	SymbolNormal   = "●" // Status dot
	SymbolFail     = "✗" // Error prefix
	SymbolPending  = "○" // Unset status
	SymbolBranch   = "⑂" // Metric derived from other models
	SymbolBullet   = "•" // List item
	SymbolFormula  = "ƒ" // Formula heading
	SymbolSelected = "▸" // Focus marker
)
