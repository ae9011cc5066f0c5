package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
)

var testNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func testCheckIn(t *testing.T, id string, scheduled time.Time) domain.CheckIn {
	t.Helper()
	sd, err := domain.NewScheduledDate(scheduled)
	require.NoError(t, err)
	return domain.NewCheckIn(domain.CheckInRecord{
		ID:            domain.CheckInID(id),
		ContactID:     "alice",
		ScheduledDate: sd,
	}, testNow)
}

func newTestApp(t *testing.T, checkIns *MockCheckInService) *App {
	t.Helper()
	contacts := &MockContactService{Contacts: []domain.Contact{{ID: "alice", Name: "Alice"}}}
	app, err := NewApp(NewPorts(checkIns, contacts))
	require.NoError(t, err)
	app.now = func() time.Time { return testNow }
	app.SetDimensions(80, 24)
	return app
}

// run applies msg and then every message its commands produce, one level deep.
func run(app *App, msg tea.Msg) {
	_, cmd := app.Update(msg)
	if cmd == nil {
		return
	}
	if next := cmd(); next != nil {
		app.Update(next)
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(NewPorts(&MockCheckInService{}, &MockContactService{}))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Contacts: &MockContactService{}})

	assert.ErrorIs(t, err, ErrMissingCheckInService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, &MockCheckInService{})

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t, &MockCheckInService{})

	assert.NotNil(t, app.Init())
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(NewPorts(&MockCheckInService{}, &MockContactService{}))
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(NewPorts(&MockCheckInService{}, &MockContactService{}))
	require.NoError(t, err)

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.width)
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t, &MockCheckInService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t, &MockCheckInService{})

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_MenuToDashboard(t *testing.T) {
	checkIns := &MockCheckInService{
		OverdueFunc: func(context.Context) ([]domain.CheckIn, error) {
			return []domain.CheckIn{testCheckIn(t, "ci-late", testNow.AddDate(0, 0, -2))}, nil
		},
	}
	app := newTestApp(t, checkIns)

	// Dashboard is the first menu item.
	run(app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, messages.ViewDashboard, app.CurrentView())

	run(app, messages.ViewChanged{View: messages.ViewDashboard})
	out := app.View()
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "Alice")
}

func TestApp_ContactSelectedShowsHistory(t *testing.T) {
	var gotID domain.ContactID
	checkIns := &MockCheckInService{
		HistoryFunc: func(_ context.Context, id domain.ContactID) ([]domain.CheckIn, error) {
			gotID = id
			return []domain.CheckIn{testCheckIn(t, "ci-1", testNow.AddDate(0, 0, 4))}, nil
		},
	}
	app := newTestApp(t, checkIns)

	run(app, messages.ContactSelected{Contact: domain.Contact{ID: "alice", Name: "Alice"}})

	assert.Equal(t, messages.ViewHistory, app.CurrentView())
	assert.Equal(t, domain.ContactID("alice"), gotID)
	require.NotNil(t, app.SelectedContact())
	assert.Contains(t, app.View(), "History: Alice")
}

func TestApp_ViewHistoryWithoutContactFallsBack(t *testing.T) {
	app := newTestApp(t, &MockCheckInService{})

	app.Update(messages.ViewChanged{View: messages.ViewHistory})

	assert.Equal(t, messages.ViewContacts, app.CurrentView())
}

func TestApp_CompleteRequested(t *testing.T) {
	next := testCheckIn(t, "ci-next", testNow.AddDate(0, 1, 0))
	checkIns := &MockCheckInService{
		CompleteFunc: func(context.Context, driving.CompleteInput) (*driving.CompleteResult, error) {
			return &driving.CompleteResult{Next: next}, nil
		},
	}
	app := newTestApp(t, checkIns)
	app.Update(messages.ViewChanged{View: messages.ViewDashboard})

	_, cmd := app.Update(messages.CompleteRequested{CheckInID: "ci-1", Notes: "  coffee  "})
	require.NotNil(t, cmd)
	msg := cmd()

	completed, ok := msg.(messages.CheckInCompleted)
	require.True(t, ok)
	require.NoError(t, completed.Err)
	assert.Equal(t, domain.CheckInID("ci-next"), completed.Next.ID())

	require.Len(t, checkIns.completed, 1)
	input := checkIns.completed[0]
	assert.Equal(t, domain.CheckInID("ci-1"), input.CheckInID)
	assert.Equal(t, domain.CheckInNotes("coffee"), input.Notes)
	assert.True(t, input.CompletionDate.Time().Equal(testNow))

	// The dashboard reloads after completion.
	_, cmd = app.Update(msg)
	assert.NotNil(t, cmd)
	assert.NoError(t, app.Err())
}

func TestApp_CompleteRequested_Error(t *testing.T) {
	checkIns := &MockCheckInService{
		CompleteFunc: func(context.Context, driving.CompleteInput) (*driving.CompleteResult, error) {
			return nil, domain.ErrNotFound
		},
	}
	app := newTestApp(t, checkIns)

	run(app, messages.CompleteRequested{CheckInID: "missing"})

	assert.ErrorIs(t, app.Err(), domain.ErrNotFound)
}

func TestApp_CompleteRequested_NotesTooLong(t *testing.T) {
	checkIns := &MockCheckInService{}
	app := newTestApp(t, checkIns)
	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'x'
	}

	run(app, messages.CompleteRequested{CheckInID: "ci-1", Notes: string(long)})

	assert.ErrorIs(t, app.Err(), domain.ErrInvalidInput)
	assert.Empty(t, checkIns.completed)
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t, &MockCheckInService{})

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	view := app.View()
	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "Dashboard")
	assert.Contains(t, view, "switch list")
	assert.Contains(t, view, "Completing")

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, &MockCheckInService{})
	boom := errors.New("boom")

	app.Update(messages.ErrorOccurred{Err: boom})

	assert.ErrorIs(t, app.Err(), boom)
}

func TestApp_ContactsView(t *testing.T) {
	app := newTestApp(t, &MockCheckInService{})

	run(app, messages.ViewChanged{View: messages.ViewContacts})

	assert.Equal(t, messages.ViewContacts, app.CurrentView())
	assert.Contains(t, app.View(), "Alice")
}
