// Package tictactoe adapts the engine to the platform: it owns the cursor,
// turns input frames into engine commands and draws the board into a
// core.Screen. It holds no game rules of its own.
package tictactoe

import (
	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

// Finished describes a completed game.
type Finished struct {
	Winner   engine.Mark // Empty for a tie
	Starting engine.Mark
	Moves    int
}

// Recorder receives every finished game. Implementations must not call back
// into the engine.
type Recorder interface {
	Record(f Finished) error
}

// Game is the playable board: an engine plus a cursor.
type Game struct {
	eng      *engine.Engine
	theme    config.Theme
	recorder Recorder

	snap   engine.Snapshot
	cursor engine.Coord

	// Starting player of the game in progress. The engine only knows who
	// opens the next one.
	opener engine.Mark

	screenW  int
	screenH  int
	tooSmall bool

	// Win line highlight phase, toggled by the platform.
	blinkOn bool

	recordErr error
}

// New wraps eng. The recorder may be nil when history is disabled.
func New(eng *engine.Engine, theme config.Theme, rec Recorder) *Game {
	g := &Game{
		eng:      eng,
		theme:    theme,
		recorder: rec,
		snap:     eng.Snapshot(),
		cursor:   engine.Coord{Row: 1, Col: 1},
		opener:   eng.CurrentPlayer(),
		blinkOn:  true,
	}
	eng.OnChange(g.onChange)
	g.Resize(core.DefaultConfig())
	return g
}

// onChange keeps the cached snapshot current and records finished games.
func (g *Game) onChange(s engine.Snapshot) {
	g.snap = s

	switch s.Event {
	case engine.EventNewGame:
		g.opener = s.Current
		g.blinkOn = true
	case engine.EventWon, engine.EventTie:
		g.blinkOn = true
		if g.recorder == nil {
			return
		}
		if err := g.recorder.Record(Finished{
			Winner:   s.Outcome.Winner,
			Starting: g.opener,
			Moves:    s.Moves(),
		}); err != nil {
			g.recordErr = err
		}
	}
}

// Engine returns the wrapped engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Resize adapts the layout to new screen dimensions. Game state is kept.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies one input frame. Movement keys only move the cursor; the
// engine sees PlaceMark, NewGame, ResetScore and ChangeStartingPlayer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	changed := false

	if in.Has(core.ActionChangeStarter) {
		g.eng.ChangeStartingPlayer()
		changed = true
	}
	if in.Has(core.ActionResetScore) {
		g.eng.ResetScore()
		changed = true
	}
	if in.Has(core.ActionNewGame) {
		g.eng.NewGame()
		changed = true
	}

	if g.moveCursor(in) {
		changed = true
	}

	if in.Pick >= 1 && in.Pick <= engine.Cells {
		g.cursor = pickCoord(in.Pick)
		g.eng.PlaceMark(g.cursor.Row, g.cursor.Col)
		changed = true
	} else if in.Has(core.ActionPlace) {
		g.eng.PlaceMark(g.cursor.Row, g.cursor.Col)
		changed = true
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// moveCursor applies directional actions, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) bool {
	row, col := g.cursor.Row, g.cursor.Col
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	next := engine.Coord{
		Row: core.Clamp(row, 0, engine.Size-1),
		Col: core.Clamp(col, 0, engine.Size-1),
	}
	if next == g.cursor {
		return false
	}
	g.cursor = next
	return true
}

// Click places a mark on the cell under screen position (x, y).
// It reports whether the position hit a cell.
func (g *Game) Click(x, y int) bool {
	if g.tooSmall {
		return false
	}
	c, ok := g.CellAtPoint(x, y)
	if !ok {
		return false
	}
	g.cursor = c
	g.eng.PlaceMark(c.Row, c.Col)
	return true
}

// State returns the adapter state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.snap.Outcome.Terminal(),
		TooSmall: g.tooSmall,
	}
}

// Snapshot returns the most recent engine snapshot.
func (g *Game) Snapshot() engine.Snapshot {
	return g.snap
}

// Cursor returns the highlighted cell.
func (g *Game) Cursor() engine.Coord {
	return g.cursor
}

// Opener returns who started the game in progress.
func (g *Game) Opener() engine.Mark {
	return g.opener
}

// Blinking reports whether a win line is on screen and should flash.
func (g *Game) Blinking() bool {
	return g.snap.HasWinLine
}

// ToggleBlink flips the win line highlight.
func (g *Game) ToggleBlink() {
	g.blinkOn = !g.blinkOn
}

// TakeRecordError returns and clears the last recorder failure.
func (g *Game) TakeRecordError() error {
	err := g.recordErr
	g.recordErr = nil
	return err
}

// pickCoord converts keypad order 1..9 to a coordinate.
func pickCoord(n int) engine.Coord {
	return engine.Coord{Row: (n - 1) / engine.Size, Col: (n - 1) % engine.Size}
}
