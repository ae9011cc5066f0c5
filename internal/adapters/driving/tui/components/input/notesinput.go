// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// NotesInput wraps a bubbles textinput for entering check-in notes.
type NotesInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewNotesInput creates a new notes input, blurred until Focus is called.
func NewNotesInput(s *styles.Styles) *NotesInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "What did you talk about? (optional)"
	ti.CharLimit = domain.MaxNotesLength
	ti.Width = 50

	return &NotesInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the notes input.
func (n *NotesInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (n *NotesInput) Update(msg tea.Msg) (*NotesInput, tea.Cmd) {
	var cmd tea.Cmd
	n.textinput, cmd = n.textinput.Update(msg)
	return n, cmd
}

// View renders the notes input.
func (n *NotesInput) View() string {
	label := n.styles.Title.Render("Notes: ")
	field := n.styles.InputField.Render(n.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (n *NotesInput) Value() string {
	return n.textinput.Value()
}

// SetValue sets the input value.
func (n *NotesInput) SetValue(value string) {
	n.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (n *NotesInput) Focus() tea.Cmd {
	return n.textinput.Focus()
}

// Blur removes focus from the input.
func (n *NotesInput) Blur() {
	n.textinput.Blur()
}

// Focused returns whether the input is focused.
func (n *NotesInput) Focused() bool {
	return n.textinput.Focused()
}

// SetWidth sets the width of the input.
func (n *NotesInput) SetWidth(width int) {
	n.width = width
	// Account for label and padding
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	n.textinput.Width = inputWidth
}

// Width returns the current width.
func (n *NotesInput) Width() int {
	return n.width
}

// Reset clears the input and removes focus.
func (n *NotesInput) Reset() {
	n.textinput.Reset()
	n.textinput.Blur()
}
