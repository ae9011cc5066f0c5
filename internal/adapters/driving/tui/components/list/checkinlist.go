// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/kith-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// CheckInList displays check-ins in a navigable list.
type CheckInList struct {
	title    string
	checkIns []domain.CheckIn
	names    map[domain.ContactID]string
	selected int
	focused  bool
	styles   *styles.Styles
	keys     *keymap.KeyMap
	width    int
	height   int
}

// NewCheckInList creates a new check-in list with a section title.
func NewCheckInList(s *styles.Styles, title string) *CheckInList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CheckInList{
		title:   title,
		names:   make(map[domain.ContactID]string),
		focused: true,
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		width:   80,
		height:  10,
	}
}

// Init initialises the list.
func (l *CheckInList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *CheckInList) Update(msg tea.Msg) (*CheckInList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, l.keys.Up):
			l.MoveUp()
		case key.Matches(msg, l.keys.Down):
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *CheckInList) View() string {
	lines := make([]string, 0, len(l.checkIns)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", l.title, len(l.checkIns))))

	if len(l.checkIns) == 0 {
		lines = append(lines, l.styles.Muted.Render("  none"))
		return strings.Join(lines, "\n")
	}

	// Each check-in takes one line, two with notes
	visibleCount := l.height - 1
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.checkIns) {
		end = len(l.checkIns)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderCheckIn(i, l.checkIns[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *CheckInList) renderCheckIn(index int, c domain.CheckIn) string {
	indicator := "  "
	if l.focused && index == l.selected {
		indicator = "> "
	}

	name := l.names[c.ContactID()]
	if name == "" {
		name = c.ContactID().String()
	}
	maxNameLen := l.width - 30
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	date := c.ScheduledDate().Time().Format(domain.DateLayout)
	status := l.styles.Status(c.Status()).Render(fmt.Sprintf("%-9s", c.Status()))

	var line string
	if l.focused && index == l.selected {
		line = l.styles.Selected.Render(fmt.Sprintf("%s%s  %-*s", indicator, date, maxNameLen, name)) + "  " + status
	} else {
		line = l.styles.Normal.Render(fmt.Sprintf("%s%s  %-*s", indicator, date, maxNameLen, name)) + "  " + status
	}

	if c.IsCompleted() && !c.Notes().IsEmpty() {
		notes := c.Notes().String()
		maxNotesLen := l.width - 6
		if maxNotesLen < 20 {
			maxNotesLen = 20
		}
		if len(notes) > maxNotesLen {
			notes = notes[:maxNotesLen-3] + "..."
		}
		line += "\n" + l.styles.Muted.Render("    "+notes)
	}
	return line
}

// SetCheckIns replaces the listed check-ins and resets the selection.
func (l *CheckInList) SetCheckIns(checkIns []domain.CheckIn) {
	l.checkIns = checkIns
	l.selected = 0
}

// CheckIns returns the listed check-ins.
func (l *CheckInList) CheckIns() []domain.CheckIn {
	return l.checkIns
}

// SetNames sets the contact display names.
func (l *CheckInList) SetNames(names map[domain.ContactID]string) {
	if names == nil {
		names = make(map[domain.ContactID]string)
	}
	l.names = names
}

// SetFocused controls whether the selection indicator is drawn.
func (l *CheckInList) SetFocused(focused bool) {
	l.focused = focused
}

// Focused reports whether the list has focus.
func (l *CheckInList) Focused() bool {
	return l.focused
}

// Selected returns the index of the selected check-in.
func (l *CheckInList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *CheckInList) SetSelected(index int) {
	if index >= 0 && index < len(l.checkIns) {
		l.selected = index
	}
}

// SelectedCheckIn returns the currently selected check-in, or nil if none.
func (l *CheckInList) SelectedCheckIn() *domain.CheckIn {
	if len(l.checkIns) == 0 || l.selected < 0 || l.selected >= len(l.checkIns) {
		return nil
	}
	return &l.checkIns[l.selected]
}

// MoveUp moves selection up.
func (l *CheckInList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *CheckInList) MoveDown() {
	if l.selected < len(l.checkIns)-1 {
		l.selected++
	}
}

// AtTop reports whether the first check-in is selected.
func (l *CheckInList) AtTop() bool {
	return l.selected == 0
}

// AtBottom reports whether the last check-in is selected.
func (l *CheckInList) AtBottom() bool {
	return l.selected >= len(l.checkIns)-1
}

// SetDimensions sets the component dimensions.
func (l *CheckInList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of check-ins.
func (l *CheckInList) Count() int {
	return len(l.checkIns)
}

// IsEmpty returns whether the list is empty.
func (l *CheckInList) IsEmpty() bool {
	return len(l.checkIns) == 0
}
