package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// Options configure a board session.
type Options struct {
	Theme    config.Theme
	Starting engine.Mark
	Store    *storage.Store // nil disables history
	Logger   *log.Logger
	Session  string // Name recorded with results
	Width    int
	Height   int

	// Bell receives a BEL byte when a game is won. nil disables it.
	Bell io.Writer
	// Renderer styles the board; nil uses the default lipgloss renderer.
	Renderer *lipgloss.Renderer
}

// effects collects side effects requested by engine notifications until
// the next Update returns them as commands.
type effects struct {
	bell bool
}

// Model is the Bubble Tea model for one board.
type Model struct {
	game     *tictactoe.Game
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	history  HistoryModel
	logger   *log.Logger
	bell     io.Writer
	fx       *effects

	width       int
	height      int
	showHistory bool
	blinking    bool
	quitting    bool
}

// NewModel creates a presenter around a fresh engine.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	fx := &effects{}
	eng := engine.New(
		engine.WithStartingPlayer(opts.Starting),
		engine.WithListener(func(s engine.Snapshot) {
			logger.Debug("board changed",
				"event", s.Event,
				"status", s.Status(),
				"moves", s.Moves(),
			)
			if s.Event == engine.EventWon {
				fx.bell = true
			}
		}),
	)

	m := Model{
		game:     tictactoe.New(eng, opts.Theme, newRecorder(opts.Store, opts.Session)),
		screen:   core.NewScreen(opts.Width, opts.Height),
		renderer: NewRenderer(opts.Renderer),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		history:  NewHistoryModel(opts.Store, opts.Width, opts.Height),
		logger:   logger,
		bell:     opts.Bell,
		fx:       fx,
		width:    opts.Width,
		height:   opts.Height,
	}
	m.layout()
	return m
}

// Init implements tea.Model. The board is event driven, so nothing is
// scheduled until a game is won.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleResize(wsm)
	}

	if m.showHistory {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if m.game.Click(msg.X, msg.Y) {
				cmd := m.afterChange()
				return m, cmd
			}
		}

	case BlinkMsg:
		return m.handleBlink()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	in := core.NewInputFrame()
	if !m.keys.Frame(msg, &in) {
		return m, nil
	}

	switch {
	case in.Has(core.ActionQuit):
		m.quitting = true
		return m, tea.Quit
	case in.Has(core.ActionHistory):
		m.history.Reload()
		m.showHistory = true
		return m, nil
	}

	if res := m.game.Step(in); !res.Changed {
		return m, nil
	}
	cmd := m.afterChange()
	return m, cmd
}

// afterChange turns pending effects into commands.
func (m *Model) afterChange() tea.Cmd {
	var cmds []tea.Cmd

	if err := m.game.TakeRecordError(); err != nil {
		m.logger.Error("could not save result", "error", err)
	}

	if m.fx.bell {
		m.fx.bell = false
		if m.bell != nil {
			cmds = append(cmds, bellCmd(m.bell))
		}
	}

	if m.game.Blinking() && !m.blinking {
		m.blinking = true
		cmds = append(cmds, blinkCmd())
	}

	return tea.Batch(cmds...)
}

// handleBlink flashes the win line until the next game starts.
func (m Model) handleBlink() (tea.Model, tea.Cmd) {
	if !m.game.Blinking() {
		m.blinking = false
		return m, nil
	}
	m.game.ToggleBlink()
	return m, blinkCmd()
}

// handleResize processes window resize events. The game is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.layout()

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.Closed() {
		m.showHistory = false
	}
	return m, cmd
}

// layout gives the board whatever the help bar leaves.
func (m *Model) layout() {
	helpH := lipgloss.Height(m.help.View(m.keys))
	boardH := core.Max(m.height-helpH, 0)
	m.screen.Resize(m.width, boardH)
	m.game.Resize(core.RuntimeConfig{ScreenW: m.width, ScreenH: boardH})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.renderer.Screen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the board driven by this model.
func (m Model) Game() *tictactoe.Game {
	return m.game
}

// bellCmd rings the terminal bell on w.
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		_, _ = w.Write([]byte("\a"))
		return nil
	}
}

// Run starts a local session on the current terminal.
func Run(opts Options, progOpts ...tea.ProgramOption) error {
	model := NewModel(opts)

	progOpts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, progOpts...)

	p := tea.NewProgram(model, progOpts...)
	_, err := p.Run()
	return err
}
