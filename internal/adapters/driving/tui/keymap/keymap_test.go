package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
		want    bool
	}{
		{"k moves up", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, km.Up, true},
		{"arrow moves up", tea.KeyMsg{Type: tea.KeyUp}, km.Up, true},
		{"j moves down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, km.Down, true},
		{"tab switches list", tea.KeyMsg{Type: tea.KeyTab}, km.SwitchList, true},
		{"c completes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, km.Complete, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit, true},
		{"enter saves notes", tea.KeyMsg{Type: tea.KeyEnter}, km.Save, true},
		{"esc cancels notes", tea.KeyMsg{Type: tea.KeyEsc}, km.Cancel, true},
		{"x is nothing", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, km.Quit, false},
		{"down is not up", tea.KeyMsg{Type: tea.KeyDown}, km.Up, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_For(t *testing.T) {
	km := DefaultKeyMap()

	for _, ctx := range Contexts() {
		t.Run(ctx.String(), func(t *testing.T) {
			bindings := km.For(ctx)
			require.NotEmpty(t, bindings)
			for _, b := range bindings {
				assert.NotEmpty(t, b.Help().Key)
				assert.NotEmpty(t, b.Help().Desc)
			}
		})
	}

	assert.Contains(t, km.For(ContextDashboard), km.SwitchList)
	assert.NotContains(t, km.For(ContextHistory), km.SwitchList)
	assert.Equal(t, []key.Binding{km.Save, km.Cancel}, km.For(ContextEditing))
	assert.Equal(t, []key.Binding{km.Back, km.Quit}, km.For(Context(99)))
}

func TestContext_String(t *testing.T) {
	assert.Equal(t, "Dashboard", ContextDashboard.String())
	assert.Equal(t, "Completing", ContextEditing.String())
	assert.Equal(t, "unknown", Context(99).String())
}

func TestHints(t *testing.T) {
	km := DefaultKeyMap()
	disabled := km.Reload
	disabled.SetEnabled(false)

	got := Hints([]key.Binding{km.Save, disabled, km.Cancel}, " | ")

	assert.Equal(t, "enter: save | esc: cancel", got)
	assert.Empty(t, Hints(nil, " | "))
}
