package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// KeyMap defines the key bindings for the board screen.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Place         key.Binding
	Pick          key.Binding
	NewGame       key.Binding
	ResetScore    key.Binding
	ChangeStarter key.Binding
	History       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Place, k.NewGame, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Pick, k.NewGame},
		{k.ResetScore, k.ChangeStarter, k.History},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "place"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "place at cell"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		ResetScore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset score"),
		),
		ChangeStarter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "change starter"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Frame translates a key message into an input frame.
// Returns false for keys with no action (including Help).
func (k KeyMap) Frame(msg tea.KeyMsg, in *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Up):
		in.Set(core.ActionUp)
	case key.Matches(msg, k.Down):
		in.Set(core.ActionDown)
	case key.Matches(msg, k.Left):
		in.Set(core.ActionLeft)
	case key.Matches(msg, k.Right):
		in.Set(core.ActionRight)
	case key.Matches(msg, k.Place):
		in.Set(core.ActionPlace)
	case key.Matches(msg, k.Pick):
		in.Pick = int(msg.String()[0] - '0')
	case key.Matches(msg, k.NewGame):
		in.Set(core.ActionNewGame)
	case key.Matches(msg, k.ResetScore):
		in.Set(core.ActionResetScore)
	case key.Matches(msg, k.ChangeStarter):
		in.Set(core.ActionChangeStarter)
	case key.Matches(msg, k.History):
		in.Set(core.ActionHistory)
	case key.Matches(msg, k.Quit):
		in.Set(core.ActionQuit)
	default:
		return false
	}
	return true
}
