// Package history provides the check-in history view for a single contact.
package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// View shows every check-in for one contact.
type View struct {
	styles         *styles.Styles
	keys           *keymap.KeyMap
	checkInService driving.CheckInService

	contact *domain.Contact
	list    *list.CheckInList
	notes   *input.NotesInput
	bar     *status.Bar
	editing bool
	width   int
	height  int
	err     error
	loading bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, checkInService driving.CheckInService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	keys := keymap.DefaultKeyMap()
	return &View{
		styles:         s,
		keys:           keys,
		checkInService: checkInService,
		list:           list.NewCheckInList(s, "Check-ins"),
		notes:          input.NewNotesInput(s),
		bar:            status.NewBar(s, keys, keymap.ContextHistory),
		width:          80,
		height:         24,
	}
}

// SetContact sets the contact and loads its history.
func (v *View) SetContact(contact domain.Contact) tea.Cmd {
	v.contact = &contact
	v.list.SetCheckIns(nil)
	v.list.SetNames(map[domain.ContactID]string{contact.ID: contact.Name})
	v.err = nil
	v.editing = false
	v.notes.Reset()
	v.bar.Clear()
	return v.loadHistory()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

func (v *View) loadHistory() tea.Cmd {
	v.loading = true
	v.bar.SetState(status.StateLoading)
	return func() tea.Msg {
		if v.contact == nil || v.checkInService == nil {
			return messages.HistoryLoaded{Err: fmt.Errorf("check-in service not available")}
		}
		checkIns, err := v.checkInService.CheckInHistory(context.Background(), v.contact.ID)
		return messages.HistoryLoaded{
			ContactID: v.contact.ID,
			CheckIns:  checkIns,
			Err:       err,
		}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditingKey(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.HistoryLoaded:
		v.loading = false
		// Ignore stale loads for a previously selected contact.
		if v.contact != nil && msg.ContactID != "" && msg.ContactID != v.contact.ID {
			return v, nil
		}
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.list.SetCheckIns(msg.CheckIns)
		v.bar.SetCount(len(msg.CheckIns))
		if v.bar.State() != status.StateComplete {
			v.bar.SetState(status.StateReady)
		}
		return v, nil

	case messages.CheckInCompleted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.bar.SetState(status.StateComplete)
		v.bar.SetMessage(fmt.Sprintf("Next check-in %s",
			msg.Next.ScheduledDate().Time().Format(domain.DateLayout)))
		return v, v.loadHistory()

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Up):
		v.list.MoveUp()
	case key.Matches(msg, v.keys.Down):
		v.list.MoveDown()
	case key.Matches(msg, v.keys.Complete):
		if selected := v.list.SelectedCheckIn(); selected != nil && !selected.IsCompleted() {
			v.editing = true
			v.bar.SetState(status.StateEditing)
			return v, v.notes.Focus()
		}
	case key.Matches(msg, v.keys.Reload):
		if v.contact != nil {
			return v, v.loadHistory()
		}
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewContacts}
		}
	}
	return v, nil
}

func (v *View) handleEditingKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Cancel):
		v.editing = false
		v.notes.Reset()
		v.bar.SetState(status.StateReady)
		return v, nil

	case key.Matches(msg, v.keys.Save):
		selected := v.list.SelectedCheckIn()
		notes := v.notes.Value()
		v.editing = false
		v.notes.Reset()
		if selected == nil {
			v.bar.SetState(status.StateReady)
			return v, nil
		}
		id := selected.ID()
		return v, func() tea.Msg {
			return messages.CompleteRequested{CheckInID: id, Notes: notes}
		}
	}

	var cmd tea.Cmd
	v.notes, cmd = v.notes.Update(msg)
	return v, cmd
}

func (v *View) setError(err error) {
	v.err = err
	v.bar.SetState(status.StateError)
	v.bar.SetMessage(err.Error())
}

// View renders the history view.
func (v *View) View() string {
	var b strings.Builder

	title := "History"
	if v.contact != nil {
		title = fmt.Sprintf("History: %s", v.contact.Name)
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading check-ins..."))
	} else {
		b.WriteString(v.list.View())
	}
	b.WriteString("\n\n")

	if v.editing {
		b.WriteString(v.notes.View())
		b.WriteString("\n\n")
	}

	b.WriteString(v.bar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-8)
	v.notes.SetWidth(width)
	v.bar.SetWidth(width)
}

// Contact returns the contact being shown, or nil.
func (v *View) Contact() *domain.Contact {
	return v.contact
}

// CheckIns returns the listed check-ins.
func (v *View) CheckIns() []domain.CheckIn {
	return v.list.CheckIns()
}

// Editing reports whether notes are being entered.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
