package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim down", runes("j"), core.ActionDown},
		{"vim left", runes("h"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace},
		{"new game", runes("n"), core.ActionNewGame},
		{"reset score", runes("r"), core.ActionResetScore},
		{"change starter", runes("c"), core.ActionChangeStarter},
		{"history", runes("H"), core.ActionHistory},
		{"quit", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := core.NewInputFrame()
			assert.True(t, km.Frame(tt.msg, &in))
			assert.True(t, in.Has(tt.want), "expected %v", tt.want)
			assert.Zero(t, in.Pick)
		})
	}
}

func TestKeyMapPick(t *testing.T) {
	km := DefaultKeyMap()

	for n := 1; n <= 9; n++ {
		in := core.NewInputFrame()
		assert.True(t, km.Frame(runes(string(rune('0'+n))), &in))
		assert.Equal(t, n, in.Pick)
		assert.Empty(t, in.Actions)
	}
}

func TestKeyMapUnbound(t *testing.T) {
	km := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{runes("0"), runes("x"), runes("?")} {
		in := core.NewInputFrame()
		assert.False(t, km.Frame(msg, &in), "key %q", msg.String())
		assert.True(t, in.Empty())
	}
}
