// Package dashboard provides the dashboard view: summary counts plus the
// overdue and upcoming check-ins, which can be completed in place.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
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

// View is the dashboard view.
type View struct {
	styles           *styles.Styles
	keys             *keymap.KeyMap
	checkInService   driving.CheckInService
	dashboardService driving.DashboardService
	contactService   driving.ContactService

	summary  *domain.DashboardSummary
	overdue  *list.CheckInList
	upcoming *list.CheckInList
	notes    *input.NotesInput
	bar      *status.Bar

	// focusUpcoming selects which list receives navigation keys.
	focusUpcoming bool
	editing       bool
	width         int
	height        int
	err           error
}

// NewView creates a new dashboard view. dashboardService and contactService
// may be nil.
func NewView(
	s *styles.Styles,
	checkInService driving.CheckInService,
	dashboardService driving.DashboardService,
	contactService driving.ContactService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	keys := keymap.DefaultKeyMap()
	upcoming := list.NewCheckInList(s, "Upcoming")
	upcoming.SetFocused(false)

	return &View{
		styles:           s,
		keys:             keys,
		checkInService:   checkInService,
		dashboardService: dashboardService,
		contactService:   contactService,
		overdue:          list.NewCheckInList(s, "Overdue"),
		upcoming:         upcoming,
		notes:            input.NewNotesInput(s),
		bar:              status.NewBar(s, keys, keymap.ContextDashboard),
		width:            80,
		height:           24,
	}
}

// Init loads the dashboard.
func (v *View) Init() tea.Cmd {
	v.bar.SetState(status.StateLoading)
	return v.load()
}

// Reset clears transient state before the view is shown again.
func (v *View) Reset() {
	v.editing = false
	v.notes.Reset()
	v.err = nil
	v.bar.Clear()
}

func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		if v.checkInService == nil {
			return messages.DashboardLoaded{Err: errors.New("check-in service not available")}
		}

		ctx := context.Background()
		msg := messages.DashboardLoaded{}
		var err error

		if v.dashboardService != nil {
			if msg.Summary, err = v.dashboardService.Summary(ctx); err != nil {
				return messages.DashboardLoaded{Err: err}
			}
		}
		if msg.Overdue, err = v.checkInService.OverdueCheckIns(ctx); err != nil {
			return messages.DashboardLoaded{Err: err}
		}
		if msg.Upcoming, err = v.checkInService.UpcomingCheckIns(ctx, domain.DefaultUpcomingDays); err != nil {
			return messages.DashboardLoaded{Err: err}
		}
		msg.Names = v.resolveNames(ctx, msg.Overdue, msg.Upcoming)
		return msg
	}
}

func (v *View) resolveNames(ctx context.Context, groups ...[]domain.CheckIn) map[domain.ContactID]string {
	names := make(map[domain.ContactID]string)
	if v.contactService == nil {
		return names
	}
	for _, checkIns := range groups {
		for i := range checkIns {
			id := checkIns[i].ContactID()
			if _, ok := names[id]; ok {
				continue
			}
			if contact, err := v.contactService.Get(ctx, id); err == nil {
				names[id] = contact.Name
			}
		}
	}
	return names
}

// Update handles messages for the dashboard view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditingKey(msg)
		}
		return v.handleKey(msg)

	case messages.DashboardLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.summary = msg.Summary
		v.overdue.SetCheckIns(msg.Overdue)
		v.overdue.SetNames(msg.Names)
		v.upcoming.SetCheckIns(msg.Upcoming)
		v.upcoming.SetNames(msg.Names)
		if v.overdue.IsEmpty() && !v.upcoming.IsEmpty() {
			v.focus(true)
		} else if v.upcoming.IsEmpty() {
			v.focus(false)
		}
		if v.bar.State() != status.StateComplete {
			v.bar.SetState(status.StateReady)
		}
		v.bar.SetCount(v.overdue.Count() + v.upcoming.Count())
		return v, nil

	case messages.CheckInCompleted:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.bar.SetState(status.StateComplete)
		v.bar.SetMessage(fmt.Sprintf("Next check-in %s",
			msg.Next.ScheduledDate().Time().Format(domain.DateLayout)))
		return v, v.load()

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	active := v.active()
	switch {
	case key.Matches(msg, v.keys.Up):
		if active.AtTop() && v.focusUpcoming && !v.overdue.IsEmpty() {
			v.focus(false)
			v.overdue.SetSelected(v.overdue.Count() - 1)
			return v, nil
		}
		active.MoveUp()
	case key.Matches(msg, v.keys.Down):
		if active.AtBottom() && !v.focusUpcoming && !v.upcoming.IsEmpty() {
			v.focus(true)
			return v, nil
		}
		active.MoveDown()
	case key.Matches(msg, v.keys.SwitchList):
		v.focus(!v.focusUpcoming)
	case key.Matches(msg, v.keys.Complete):
		if selected := active.SelectedCheckIn(); selected != nil && !selected.IsCompleted() {
			v.editing = true
			v.bar.SetState(status.StateEditing)
			return v, v.notes.Focus()
		}
	case key.Matches(msg, v.keys.Reload):
		v.bar.SetState(status.StateLoading)
		return v, v.load()
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
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
		selected := v.active().SelectedCheckIn()
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

func (v *View) active() *list.CheckInList {
	if v.focusUpcoming {
		return v.upcoming
	}
	return v.overdue
}

func (v *View) focus(upcoming bool) {
	v.focusUpcoming = upcoming
	v.overdue.SetFocused(!upcoming)
	v.upcoming.SetFocused(upcoming)
}

func (v *View) setError(err error) {
	v.err = err
	v.bar.SetState(status.StateError)
	v.bar.SetMessage(err.Error())
}

// View renders the dashboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Dashboard"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.summary != nil {
		b.WriteString(v.renderSummary())
		b.WriteString("\n\n")
	}

	b.WriteString(v.overdue.View())
	b.WriteString("\n\n")
	b.WriteString(v.upcoming.View())
	b.WriteString("\n\n")

	if v.editing {
		b.WriteString(v.notes.View())
		b.WriteString("\n\n")
	}

	b.WriteString(v.bar.View())
	return b.String()
}

func (v *View) renderSummary() string {
	s := v.summary
	line := fmt.Sprintf("%s  %s  %s",
		v.styles.Overdue.Render(fmt.Sprintf("%d overdue", s.OverdueCount)),
		v.styles.Scheduled.Render(fmt.Sprintf("%d upcoming", s.UpcomingCount)),
		v.styles.Normal.Render(fmt.Sprintf("%d contacts", s.TotalContacts)),
	)
	if len(s.ContactsByCategory) == 0 {
		return line
	}

	keys := make([]string, 0, len(s.ContactsByCategory))
	for k := range s.ContactsByCategory {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %d", k, s.ContactsByCategory[k]))
	}
	return line + "\n" + v.styles.Muted.Render(strings.Join(parts, "  "))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	listHeight := (height - 12) / 2
	if listHeight < 3 {
		listHeight = 3
	}
	v.overdue.SetDimensions(width, listHeight)
	v.upcoming.SetDimensions(width, listHeight)
	v.notes.SetWidth(width)
	v.bar.SetWidth(width)
}

// Editing reports whether notes are being entered.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
