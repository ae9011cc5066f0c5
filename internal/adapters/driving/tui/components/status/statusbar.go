// Package status renders the one-line bar at the bottom of list screens.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/styles"
)

// State is what the bar reports on its left side.
type State string

const (
	StateReady    State = "ready"
	StateLoading  State = "loading"
	StateError    State = "error"
	StateEditing  State = "editing"
	StateComplete State = "complete"
)

// Bar shows the screen's state on the left and its key hints on the right.
// While editing, the hints switch to the notes-entry bindings.
type Bar struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	context keymap.Context

	state   State
	message string
	count   int
	width   int
}

// NewBar creates a bar for the screen identified by ctx. Nil styles or
// keys mean the defaults.
func NewBar(s *styles.Styles, keys *keymap.KeyMap, ctx keymap.Context) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if keys == nil {
		keys = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keys: keys, context: ctx, state: StateReady, width: 80}
}

// View renders the bar padded to its width.
func (b *Bar) View() string {
	left, right := b.status(), b.hints()

	gap := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) status() string {
	switch b.state {
	case StateLoading:
		return b.styles.Muted.Render("Loading...")
	case StateError:
		if b.message == "" {
			return b.styles.Error.Render("Error")
		}
		return b.styles.Error.Render("Error: " + b.message)
	case StateEditing:
		return b.styles.Normal.Render("Completing check-in")
	case StateComplete:
		if b.message == "" {
			return b.styles.Success.Render("Done")
		}
		return b.styles.Success.Render(b.message)
	case StateReady:
	}

	switch b.count {
	case 0:
		return b.styles.Muted.Render("Nothing due")
	case 1:
		return b.styles.Normal.Render("1 check-in")
	default:
		return b.styles.Normal.Render(fmt.Sprintf("%d check-ins", b.count))
	}
}

func (b *Bar) hints() string {
	ctx := b.context
	if b.state == StateEditing {
		ctx = keymap.ContextEditing
	}
	return b.styles.Muted.Render(keymap.Hints(b.keys.For(ctx), " | "))
}

// SetState sets what the left side reports.
func (b *Bar) SetState(state State) { b.state = state }

// State returns the current state.
func (b *Bar) State() State { return b.state }

// SetMessage sets the error or completion text.
func (b *Bar) SetMessage(message string) { b.message = message }

// Message returns the error or completion text.
func (b *Bar) Message() string { return b.message }

// SetCount sets how many check-ins the screen lists.
func (b *Bar) SetCount(count int) { b.count = count }

// Count returns how many check-ins the screen lists.
func (b *Bar) Count() int { return b.count }

// SetWidth sets the rendered width.
func (b *Bar) SetWidth(width int) { b.width = width }

// Width returns the rendered width.
func (b *Bar) Width() int { return b.width }

// Clear returns the bar to ready with no message or count.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.count = 0
}
