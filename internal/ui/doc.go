// Package ui provides terminal styling shared by hdt's non-interactive output.
//
// The dashboard has its own themed styles; this package covers what the CLI
// prints outside the TUI: semantic colors, status symbols, and tables.
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Normal status
//	ColorWarning   (yellow) - Warning status
//	ColorError     (red)    - Critical status, failures
//	ColorInfo      (cyan)   - Formulas, informational text
//	ColorMuted     (gray)   - Secondary text
//
// Use DisableColors() to switch to monochrome output (for --no-color).
//
// # Tables
//
// RenderSimpleTable renders a bubbles table for static CLI output. It is used
// by 'hdt tables' to print the reference tables.
package ui
