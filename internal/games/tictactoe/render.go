package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

const (
	cellWidth  = 7 // Inner width of a cell
	cellHeight = 3 // Inner height of a cell

	boardW = engine.Size*(cellWidth+1) + 1
	boardH = engine.Size*(cellHeight+1) + 1

	hudHeight = 3
	boardTop  = hudHeight + 1
	statusRow = boardTop + boardH + 1

	minScreenW = boardW + 6
	minScreenH = statusRow + 1
)

// glyphs are the three-row marks drawn in the middle of a cell.
var glyphs = map[engine.Mark][cellHeight]string{
	engine.X: {`\ /`, ` X `, `/ \`},
	engine.O: {`╭─╮`, `│ │`, `╰─╯`},
}

const glyphOffset = (cellWidth - 3) / 2

// Render draws the board, HUD and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	for row := 0; row < engine.Size; row++ {
		for col := 0; col < engine.Size; col++ {
			g.renderCell(dst, engine.Coord{Row: row, Col: col})
		}
	}
	g.renderStatus(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH/2 - 1
	msg := "Window too small"
	w := len(msg) + 4
	dst.DrawBox(core.NewRect((g.screenW-w)/2, y-1, w, 4))
	dst.DrawTextCentered(y, msg)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "TIC-TAC-TOE")

	left := fmt.Sprintf("X: %d", g.snap.ScoreX)
	right := fmt.Sprintf("O: %d", g.snap.ScoreO)
	gap := "    "
	x := (g.screenW - len(left) - len(gap) - len(right)) / 2
	dst.DrawTextColored(x, 1, left, g.theme.X)
	dst.DrawTextColored(x+len(left)+len(gap), 1, right, g.theme.O)

	dst.DrawTextCentered(2, fmt.Sprintf("Opened by %s   Next game: %s starts", g.opener, g.snap.Starting))
}

// renderGrid draws the 3x3 grid lines.
func (g *Game) renderGrid(dst *core.Screen) {
	x0 := g.boardLeft()
	color := g.theme.Grid

	for gy := 0; gy < engine.Size + 1; gy++ {
		py := boardTop + gy*(cellHeight+1)
		for gx := 0; gx < engine.Size + 1; gx++ {
			px := x0 + gx*(cellWidth+1)
			dst.SetColored(px, py, junction(gx, gy), color)

			if gx < engine.Size {
				for i := 1; i <= cellWidth; i++ {
					dst.SetColored(px+i, py, '─', color)
				}
			}
			if gy < engine.Size {
				for i := 1; i <= cellHeight; i++ {
					dst.SetColored(px, py+i, '│', color)
				}
			}
		}
	}
}

// junction returns the box-drawing rune for grid point (gx, gy).
func junction(gx, gy int) rune {
	last := engine.Size
	switch {
	case gy == 0 && gx == 0:
		return '┌'
	case gy == 0 && gx == last:
		return '┐'
	case gy == last && gx == 0:
		return '└'
	case gy == last && gx == last:
		return '┘'
	case gy == 0:
		return '┬'
	case gy == last:
		return '┴'
	case gx == 0:
		return '├'
	case gx == last:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderCell(dst *core.Screen, c engine.Coord) {
	r := g.CellRect(c)
	mark := g.snap.Board.At(c)

	if mark == engine.Empty {
		// Keypad hint for direct picks
		n := c.Row*engine.Size + c.Col + 1
		cx, cy := r.Center()
		dst.SetColored(cx, cy, rune('0'+n), core.ColorGray)
	} else {
		color := g.markColor(mark)
		if g.snap.HasWinLine && g.snap.WinLine.Contains(c) && g.blinkOn {
			color = g.theme.Win
		}
		for i, line := range glyphs[mark] {
			dst.DrawTextColored(r.X+glyphOffset, r.Y+i, line, color)
		}
	}

	if c == g.cursor && !g.snap.Outcome.Terminal() {
		_, cy := r.Center()
		dst.SetColored(r.X+glyphOffset-1, cy, '[', g.theme.Cursor)
		dst.SetColored(r.X+glyphOffset+3, cy, ']', g.theme.Cursor)
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	text := g.snap.Status()
	color := core.ColorDefault

	switch g.snap.Outcome.Status {
	case engine.StatusWon:
		color = g.theme.Win
	case engine.StatusInProgress:
		color = g.markColor(g.snap.Current)
	}

	if g.snap.Event == engine.EventRejected {
		if err := g.eng.CanPlace(g.snap.Move.Row, g.snap.Move.Col); err != nil {
			text = fmt.Sprintf("%s (%v)", text, err)
		}
	}

	x := (g.screenW - len([]rune(text))) / 2
	dst.DrawTextColored(x, statusRow, text, color)
}

func (g *Game) markColor(m engine.Mark) core.Color {
	switch m {
	case engine.X:
		return g.theme.X
	case engine.O:
		return g.theme.O
	default:
		return core.ColorDefault
	}
}

func (g *Game) boardLeft() int {
	return (g.screenW - boardW) / 2
}

// CellRect returns the inner screen area of cell c.
func (g *Game) CellRect(c engine.Coord) core.Rect {
	return core.NewRect(
		g.boardLeft()+1+c.Col*(cellWidth+1),
		boardTop+1+c.Row*(cellHeight+1),
		cellWidth,
		cellHeight,
	)
}

// CellAtPoint maps a screen position to a board cell.
func (g *Game) CellAtPoint(x, y int) (engine.Coord, bool) {
	for row := 0; row < engine.Size; row++ {
		for col := 0; col < engine.Size; col++ {
			c := engine.Coord{Row: row, Col: col}
			if g.CellRect(c).Contains(x, y) {
				return c, true
			}
		}
	}
	return engine.Coord{}, false
}
