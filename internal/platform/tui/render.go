package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// palette maps core colors to ANSI 256 codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Renderer turns screen buffers into styled strings. Each SSH session needs
// its own so colors match the client terminal.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer builds styles from r. A nil r uses the default renderer.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = r.NewStyle()
	for c, code := range palette {
		styles[c] = r.NewStyle().Foreground(code)
	}
	return &Renderer{styles: styles}
}

// Style returns the style for c.
func (r *Renderer) Style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	return r.styles[core.ColorDefault]
}

// Screen converts a buffer to a styled string.
// Runs of the same color share one escape sequence.
func (r *Renderer) Screen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
