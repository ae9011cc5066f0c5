// Package contacts provides the contact list view for the TUI.
package contacts

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// View lists contacts with their category.
type View struct {
	styles          *styles.Styles
	keys            *keymap.KeyMap
	contactService  driving.ContactService
	categoryService driving.CategoryService

	contacts   []domain.Contact
	categories map[domain.CategoryID]domain.Category
	selected   int
	width      int
	height     int
	ready      bool
	err        error
	loading    bool
}

// NewView creates a new contacts view. categoryService may be nil, in
// which case category names are not shown.
func NewView(
	s *styles.Styles,
	contactService driving.ContactService,
	categoryService driving.CategoryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		keys:            keymap.DefaultKeyMap(),
		contactService:  contactService,
		categoryService: categoryService,
		categories:      make(map[domain.CategoryID]domain.Category),
		width:           80,
		height:          24,
	}
}

// Init loads contacts.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadContacts()
}

// contactsLoadedMsg carries full categories so colours can be rendered.
type contactsLoadedMsg struct {
	messages.ContactsLoaded
	full map[domain.CategoryID]domain.Category
}

func (v *View) loadContacts() tea.Cmd {
	return func() tea.Msg {
		if v.contactService == nil {
			return contactsLoadedMsg{
				ContactsLoaded: messages.ContactsLoaded{Err: fmt.Errorf("contact service not available")},
			}
		}

		ctx := context.Background()
		contacts, err := v.contactService.List(ctx)
		if err != nil {
			return contactsLoadedMsg{ContactsLoaded: messages.ContactsLoaded{Err: err}}
		}

		names := make(map[domain.CategoryID]string)
		full := make(map[domain.CategoryID]domain.Category)
		if v.categoryService != nil {
			categories, err := v.categoryService.List(ctx)
			if err != nil {
				return contactsLoadedMsg{ContactsLoaded: messages.ContactsLoaded{Err: err}}
			}
			for _, c := range categories {
				names[c.ID] = c.Name
				full[c.ID] = c
			}
		}

		return contactsLoadedMsg{
			ContactsLoaded: messages.ContactsLoaded{Contacts: contacts, Categories: names},
			full:           full,
		}
	}
}

// Update handles messages for the contacts view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case contactsLoadedMsg:
		v.apply(msg.ContactsLoaded)
		if msg.Err == nil {
			v.categories = msg.full
		}
		return v, nil

	case messages.ContactsLoaded:
		v.apply(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) apply(msg messages.ContactsLoaded) {
	v.loading = false
	if msg.Err != nil {
		v.err = msg.Err
		return
	}
	v.err = nil
	v.contacts = msg.Contacts
	v.categories = make(map[domain.CategoryID]domain.Category, len(msg.Categories))
	for id, name := range msg.Categories {
		v.categories[id] = domain.Category{ID: id, Name: name}
	}
	if v.selected >= len(v.contacts) {
		v.selected = 0
	}
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keys.Down):
		if v.selected < len(v.contacts)-1 {
			v.selected++
		}
	case key.Matches(msg, v.keys.Select):
		if len(v.contacts) > 0 && v.selected < len(v.contacts) {
			contact := v.contacts[v.selected]
			return v, func() tea.Msg {
				return messages.ContactSelected{Contact: contact}
			}
		}
	case key.Matches(msg, v.keys.Reload):
		v.loading = true
		return v, v.loadContacts()
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// View renders the contacts view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Contacts"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading contacts..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
	case len(v.contacts) == 0:
		b.WriteString(v.styles.Muted.Render("No contacts yet. Add one with: kith contact add"))
	default:
		for i := range v.contacts {
			b.WriteString(v.renderContact(i, &v.contacts[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render(keymap.Hints(v.keys.For(keymap.ContextContacts), "  ")))
	return b.String()
}

func (v *View) renderContact(index int, c *domain.Contact) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	label := "Uncategorized"
	style := v.styles.Muted
	if c.IsCategorized() {
		if cat, ok := v.categories[c.CategoryID]; ok {
			label = cat.Name
			style = v.styles.Category(cat.Color)
		} else {
			label = c.CategoryID.String()
		}
	}

	name := c.Name
	maxNameLen := v.width - len(label) - 8
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, name)) +
			"  " + style.Render(label)
	}
	return v.styles.Normal.Render(indicator+name) + "  " + style.Render(label)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Contacts returns the listed contacts.
func (v *View) Contacts() []domain.Contact {
	return v.contacts
}

// SelectedIndex returns the selected contact index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
