package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// maxHistory is how many results the table loads.
const maxHistory = 100

// HistoryKeyMap defines the key bindings for the history table.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "H"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel shows recorded results in a table.
type HistoryModel struct {
	store   *storage.Store
	results []storage.Result
	totals  storage.Totals
	loadErr error
	table   table.Model
	help    help.Model
	keys    HistoryKeyMap
	width   int
	height  int

	closed   bool
	quitting bool
}

// NewHistoryModel creates a history view. A nil store shows a notice
// that history is disabled.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// Reload fetches results from the store and reopens the view.
func (m *HistoryModel) Reload() {
	m.closed = false
	m.quitting = false
	m.results = nil
	m.totals = storage.Totals{}
	m.loadErr = nil

	if m.store == nil {
		m.updateTableRows()
		return
	}

	results, err := m.store.RecentResults(maxHistory)
	if err != nil {
		m.loadErr = err
	} else {
		m.results = results
	}
	totals, err := m.store.Totals()
	if err != nil {
		m.loadErr = err
	} else {
		m.totals = totals
	}
	m.updateTableRows()
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Result", Width: 8},
		{Title: "Opened", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "When", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			resultLabel(r),
			r.Starting,
			fmt.Sprintf("%d", r.Moves),
			r.Session,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// resultLabel is the short outcome text shown for r.
func resultLabel(r storage.Result) string {
	if r.Tie() {
		return "tie"
	}
	return r.Winner + " won"
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RESULT HISTORY", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(fmt.Sprintf("Games: %d   X wins: %d   O wins: %d   Ties: %d",
		m.totals.Games, m.totals.WinsX, m.totals.WinsO, m.totals.Ties), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 2)

	switch {
	case m.store == nil:
		return emptyStyle.Render("History is disabled.\nSet storage.path in the config to keep results.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No games recorded yet.")
	}
	return m.table.View()
}

// Closed reports whether the user left the view.
func (m HistoryModel) Closed() bool {
	return m.closed
}

// IsQuitting reports whether the user asked to quit.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
