// Package dashboard implements the cardiovascular cockpit TUI.
//
// The dashboard shows the digital twin's reference tables across four tabs,
// a live vitals banner fed by the feed package, and a modal that explains how
// each data-driven metric is derived.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: view state (active tab, open metric, theme), card focus, scroll
//     offset, the current vitals and the time of the last feed tick
//   - Update: processes key presses, mouse clicks, feed ticks and resizes
//   - View: renders header, tab bar, the active tab body and a footer
//
// # View State
//
// ViewState holds the three user-visible pieces of state. Switching tabs never
// touches the open metric or the theme. Opening a metric without a formula
// entry is a no-op, and closing always clears the selection.
//
// # Message Flow
//
//  1. The feed handle's channel delivers a tick
//  2. waitForTick turns it into a feedTickMsg
//  3. Update redraws the four jittered vitals and re-arms waitForTick
//  4. View re-renders with the new values
//
// # Mouse
//
// Every render pass records the screen rectangles of tabs, cards and the theme
// button. A click is resolved against the same pass, so hit-testing always
// matches what is on screen.
//
// # Keyboard Shortcuts
//
//	1-4, Tab/Shift+Tab, ←/→  - Switch tabs
//	↑/↓, j/k, h/l            - Move card focus
//	Enter                    - Open formula for the focused card
//	Esc, x, q                - Close the formula
//	t                        - Toggle light/dark theme
//	?                        - Toggle help overlay
//	q, Ctrl+C                - Quit
package dashboard
