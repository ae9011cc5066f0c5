// Package menu provides the start screen of the TUI.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/styles"
)

// Item is one entry of the menu. An item without a target view quits.
type Item struct {
	Label       string
	Description string
	View        messages.ViewType
	Quit        bool
}

// View is the start screen listing where to go next.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates the menu. A nil styles means the default theme.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		items: []Item{
			{Label: "Dashboard", Description: "Overdue and upcoming check-ins", View: messages.ViewDashboard},
			{Label: "Contacts", Description: "Everyone you keep in touch with and their history", View: messages.ViewContacts},
			{Label: "Help", Description: "Keys for every screen", View: messages.ViewHelp},
			{Label: "Quit", Description: "Leave kith", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init implements the view lifecycle; the menu loads nothing.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles navigation. Digits 1-n jump straight to an item.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case key.Matches(msg, v.keys.Up):
			if v.selected > 0 {
				v.selected--
			}
		case key.Matches(msg, v.keys.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case key.Matches(msg, v.keys.Select):
			return v, v.choose(v.selected)
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < len(v.items):
			v.selected = int(k[0] - '1')
			return v, v.choose(v.selected)
		}
	}

	return v, nil
}

func (v *View) choose(index int) tea.Cmd {
	item := v.items[index]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("kith"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Keep in touch with the people who matter"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i != v.selected {
			b.WriteString("  " + v.styles.Normal.Render(label) + "\n")
			continue
		}
		b.WriteString("> " + v.styles.Subtitle.Render(label) + "\n")
		b.WriteString("     " + v.styles.Muted.Render(item.Description) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(fmt.Sprintf("1-%d: jump  ", len(v.items)) +
		keymap.Hints(v.keys.For(keymap.ContextMenu), "  ")))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the highlighted item index.
func (v *View) Selected() int {
	return v.selected
}
