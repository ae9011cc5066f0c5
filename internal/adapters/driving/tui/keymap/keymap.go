// Package keymap holds every key binding the TUI reacts to, grouped by the
// screen that uses them so status bars and the help screen stay in sync
// with the handlers.
package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap is the full set of bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding

	// SwitchList moves focus between the dashboard's overdue and upcoming lists.
	SwitchList key.Binding
	Complete   key.Binding
	Reload     key.Binding

	// Save and Cancel end notes entry while completing a check-in.
	Save   key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns vim-style navigation plus single-letter actions.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		SwitchList: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		Complete:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Save:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Context is a screen, or a mode within one, with its own bindings.
type Context int

const (
	ContextMenu Context = iota
	ContextDashboard
	ContextContacts
	ContextHistory
	ContextEditing
)

// String returns the heading used on the help screen.
func (c Context) String() string {
	switch c {
	case ContextMenu:
		return "Menu"
	case ContextDashboard:
		return "Dashboard"
	case ContextContacts:
		return "Contacts"
	case ContextHistory:
		return "History"
	case ContextEditing:
		return "Completing"
	default:
		return "unknown"
	}
}

// Contexts lists every context in help-screen order.
func Contexts() []Context {
	return []Context{ContextMenu, ContextDashboard, ContextContacts, ContextHistory, ContextEditing}
}

// For returns the bindings active in ctx.
func (k *KeyMap) For(ctx Context) []key.Binding {
	switch ctx {
	case ContextMenu:
		return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
	case ContextDashboard:
		return []key.Binding{k.Up, k.Down, k.SwitchList, k.Complete, k.Reload, k.Back}
	case ContextContacts:
		return []key.Binding{k.Up, k.Down, k.Select, k.Reload, k.Back}
	case ContextHistory:
		return []key.Binding{k.Up, k.Down, k.Complete, k.Reload, k.Back}
	case ContextEditing:
		return []key.Binding{k.Save, k.Cancel}
	default:
		return []key.Binding{k.Back, k.Quit}
	}
}

// Hints renders bindings as "key: desc" pairs joined by sep.
func Hints(bindings []key.Binding, sep string) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, sep)
}
