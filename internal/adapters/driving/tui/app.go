package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/views/contacts"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// now supplies completion dates.
	now func() time.Time

	styles *styles.Styles
	keys   *keymap.KeyMap

	menuView      *menu.View
	dashboardView *dashboard.View
	contactsView  *contacts.View
	historyView   *history.View

	// selectedContact is the contact whose history is shown.
	selectedContact *domain.Contact

	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		now:           time.Now,
		styles:        s,
		keys:          keymap.DefaultKeyMap(),
		menuView:      menu.NewView(s),
		dashboardView: dashboard.NewView(s, ports.CheckIns, ports.Dashboard, ports.Contacts),
		contactsView:  contacts.NewView(s, ports.Contacts, ports.Categories),
		historyView:   history.NewView(s, ports.CheckIns),
		currentView:   messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("kith"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if key.Matches(msg, a.keys.Back, a.keys.Quit) {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewDashboard:
			a.dashboardView.Reset()
			return a, a.dashboardView.Init()
		case messages.ViewContacts:
			return a, a.contactsView.Init()
		case messages.ViewHistory:
			if a.selectedContact != nil {
				return a, a.historyView.SetContact(*a.selectedContact)
			}
			a.currentView = messages.ViewContacts
			return a, a.contactsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.ContactSelected:
		a.selectedContact = &msg.Contact
		a.currentView = messages.ViewHistory
		return a, a.historyView.SetContact(msg.Contact)

	case messages.CompleteRequested:
		return a, a.complete(msg)

	case messages.DashboardLoaded:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
		return a, cmd

	case messages.HistoryLoaded:
		a.historyView, cmd = a.historyView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.forward(msg)

	case messages.CheckInCompleted:
		if msg.Err != nil {
			a.err = msg.Err
		}
		return a, a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewDashboard:
		a.dashboardView, cmd = a.dashboardView.Update(msg)
	case messages.ViewContacts:
		a.contactsView, cmd = a.contactsView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
	}
	return cmd
}

// complete returns a command that completes a check-in as of now.
func (a *App) complete(req messages.CompleteRequested) tea.Cmd {
	ctx := a.ctx
	checkIns := a.ports.CheckIns
	at := a.now()
	return func() tea.Msg {
		notes, err := domain.NewCheckInNotes(req.Notes)
		if err != nil {
			return messages.CheckInCompleted{Err: err}
		}
		date, err := domain.NewCompletionDate(at)
		if err != nil {
			return messages.CheckInCompleted{Err: err}
		}
		result, err := checkIns.CompleteCheckIn(ctx, driving.CompleteInput{
			CheckInID:      req.CheckInID,
			CompletionDate: date,
			Notes:          notes,
		})
		if err != nil {
			return messages.CheckInCompleted{Err: err}
		}
		return messages.CheckInCompleted{Completed: result.Completed, Next: result.Next}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewDashboard:
		return a.dashboardView.View()
	case messages.ViewContacts:
		return a.contactsView.View()
	case messages.ViewHistory:
		return a.historyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp lists the bindings of every screen.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n")

	for _, ctx := range keymap.Contexts() {
		b.WriteString("\n")
		b.WriteString(a.styles.Subtitle.Render(ctx.String()))
		b.WriteString("\n")
		for _, binding := range a.keys.For(ctx) {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("ctrl+c quits from anywhere. Notes are optional when completing."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render(keymap.Hints([]key.Binding{a.keys.Back}, "")))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedContact returns the contact whose history was last opened.
func (a *App) SelectedContact() *domain.Contact {
	return a.selectedContact
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.dashboardView.SetDimensions(width, height)
	a.contactsView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}
