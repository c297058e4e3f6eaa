package tictactoe

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

type fakeRecorder struct {
	got []Finished
	err error
}

func (f *fakeRecorder) Record(r Finished) error {
	f.got = append(f.got, r)
	return f.err
}

func newGame(t *testing.T, rec Recorder, opts ...engine.Option) *Game {
	t.Helper()
	theme, err := config.Default().Theme.Resolve()
	require.NoError(t, err)
	return New(engine.New(opts...), theme, rec)
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func pick(g *Game, cells ...int) {
	for _, n := range cells {
		in := core.NewInputFrame()
		in.Pick = n
		g.Step(in)
	}
}

func TestCursorStartsCentredAndClamps(t *testing.T) {
	g := newGame(t, nil)
	assert.Equal(t, engine.Coord{Row: 1, Col: 1}, g.Cursor())

	res := g.Step(frame(core.ActionUp, core.ActionLeft))
	assert.True(t, res.Changed)
	assert.Equal(t, engine.Coord{Row: 0, Col: 0}, g.Cursor())

	// Already at the corner
	res = g.Step(frame(core.ActionUp))
	assert.False(t, res.Changed)
	assert.Equal(t, engine.Coord{Row: 0, Col: 0}, g.Cursor())

	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionRight))
	assert.Equal(t, engine.Coord{Row: 2, Col: 1}, g.Cursor())
}

func TestPlaceAtCursor(t *testing.T) {
	g := newGame(t, nil)

	g.Step(frame(core.ActionPlace))

	assert.Equal(t, engine.X, g.Engine().CellAt(1, 1))
	assert.Equal(t, engine.O, g.Snapshot().Current)
	assert.Equal(t, engine.EventPlaced, g.Snapshot().Event)
}

func TestPickUsesKeypadOrder(t *testing.T) {
	tests := []struct {
		n    int
		want engine.Coord
	}{
		{1, engine.Coord{Row: 0, Col: 0}},
		{3, engine.Coord{Row: 0, Col: 2}},
		{5, engine.Coord{Row: 1, Col: 1}},
		{7, engine.Coord{Row: 2, Col: 0}},
		{9, engine.Coord{Row: 2, Col: 2}},
	}
	for _, tt := range tests {
		g := newGame(t, nil)
		pick(g, tt.n)
		assert.Equal(t, engine.X, g.Engine().CellAt(tt.want.Row, tt.want.Col), "pick %d", tt.n)
		assert.Equal(t, tt.want, g.Cursor(), "pick %d moves the cursor", tt.n)
	}
}

func TestPickOccupiedIsRejected(t *testing.T) {
	g := newGame(t, nil)
	pick(g, 5, 5)

	snap := g.Snapshot()
	assert.Equal(t, engine.EventRejected, snap.Event)
	assert.Equal(t, engine.O, snap.Current)
	assert.Equal(t, 1, snap.Moves())
}

func TestCommandsReachEngine(t *testing.T) {
	g := newGame(t, nil)

	// Given: X has won once
	pick(g, 1, 4, 2, 5, 3)
	require.Equal(t, 1, g.Snapshot().ScoreX)

	// When: starter is changed and a new game begins
	g.Step(frame(core.ActionChangeStarter))
	assert.Equal(t, engine.O, g.Snapshot().Starting)
	g.Step(frame(core.ActionNewGame))

	// Then: the board is clear, O moves first and the score is kept
	snap := g.Snapshot()
	assert.Equal(t, engine.Cells, snap.Free)
	assert.Equal(t, engine.O, snap.Current)
	assert.Equal(t, 1, snap.ScoreX)
	assert.Equal(t, engine.O, g.Opener())

	g.Step(frame(core.ActionResetScore))
	assert.Zero(t, g.Snapshot().ScoreX)
}

func TestRecorderGetsWin(t *testing.T) {
	rec := &fakeRecorder{}
	g := newGame(t, rec)

	pick(g, 1, 4, 2, 5, 3)

	require.Len(t, rec.got, 1)
	assert.Equal(t, Finished{Winner: engine.X, Starting: engine.X, Moves: 5}, rec.got[0])
	assert.True(t, g.State().GameOver)
}

func TestRecorderGetsTie(t *testing.T) {
	rec := &fakeRecorder{}
	g := newGame(t, rec, engine.WithStartingPlayer(engine.O))

	// O X O
	// O X X
	// X O O
	pick(g, 1, 2, 3, 5, 4, 6, 8, 7, 9)

	require.Len(t, rec.got, 1)
	assert.Equal(t, Finished{Winner: engine.Empty, Starting: engine.O, Moves: 9}, rec.got[0])
	assert.Equal(t, engine.StatusTie, g.Snapshot().Outcome.Status)
}

func TestRecorderKeepsOpenerAfterStarterChange(t *testing.T) {
	rec := &fakeRecorder{}
	g := newGame(t, rec)

	pick(g, 1, 4)
	g.Step(frame(core.ActionChangeStarter))
	pick(g, 2, 5, 3)

	require.Len(t, rec.got, 1)
	assert.Equal(t, engine.X, rec.got[0].Starting)
}

func TestRecorderErrorIsKept(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	g := newGame(t, rec)

	pick(g, 1, 4, 2, 5, 3)

	err := g.TakeRecordError()
	assert.EqualError(t, err, "disk full")
	assert.NoError(t, g.TakeRecordError())
}

func TestTooSmallIgnoresInput(t *testing.T) {
	g := newGame(t, nil)
	g.Resize(core.RuntimeConfig{ScreenW: 20, ScreenH: 10})

	res := g.Step(frame(core.ActionPlace))

	assert.True(t, res.State.TooSmall)
	assert.False(t, res.Changed)
	assert.Equal(t, engine.Cells, g.Snapshot().Free)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestResizeKeepsGame(t *testing.T) {
	g := newGame(t, nil)
	pick(g, 5)

	g.Resize(core.RuntimeConfig{ScreenW: 120, ScreenH: 40})

	assert.False(t, g.State().TooSmall)
	assert.Equal(t, engine.X, g.Engine().CellAt(1, 1))
}

func TestRenderBoard(t *testing.T) {
	g := newGame(t, nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "TIC-TAC-TOE")
	assert.Contains(t, out, "Game in progress: X's turn")
	assert.Contains(t, out, "Next game: X starts")

	pick(g, 1, 4, 2, 5, 3)
	g.Render(screen)
	out = screen.String()
	assert.Contains(t, out, "X wins")
	assert.Contains(t, out, "X: 1")

	r := g.CellRect(engine.Coord{Row: 0, Col: 0})
	cx, cy := r.Center()
	assert.Equal(t, 'X', screen.Get(cx, cy))

	r = g.CellRect(engine.Coord{Row: 1, Col: 0})
	cx, cy = r.Center()
	assert.Equal(t, ' ', screen.Get(cx, cy), "O glyph is hollow")
	assert.Equal(t, '╭', screen.Get(r.X+glyphOffset, r.Y))
}

func TestRenderRejectionReason(t *testing.T) {
	g := newGame(t, nil)
	pick(g, 5, 5)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.True(t, strings.Contains(screen.Row(statusRow), engine.ErrOccupied.Error()))
}

func TestWinLineBlinks(t *testing.T) {
	g := newGame(t, nil)
	theme, _ := config.Default().Theme.Resolve()
	assert.False(t, g.Blinking())

	pick(g, 1, 4, 2, 5, 3)
	require.True(t, g.Blinking())

	screen := core.NewScreen(80, 24)
	r := g.CellRect(engine.Coord{Row: 0, Col: 2})
	cx, cy := r.Center()

	g.Render(screen)
	assert.Equal(t, theme.Win, screen.GetCell(cx, cy).Color)

	g.ToggleBlink()
	g.Render(screen)
	assert.Equal(t, theme.X, screen.GetCell(cx, cy).Color)
}

func TestClick(t *testing.T) {
	g := newGame(t, nil)

	r := g.CellRect(engine.Coord{Row: 2, Col: 2})
	assert.True(t, g.Click(r.X, r.Y))
	assert.Equal(t, engine.X, g.Engine().CellAt(2, 2))
	assert.Equal(t, engine.Coord{Row: 2, Col: 2}, g.Cursor())

	// Grid lines and the HUD are not cells
	assert.False(t, g.Click(r.X-1, r.Y))
	assert.False(t, g.Click(0, 0))
	assert.Equal(t, 1, g.Snapshot().Moves())
}
