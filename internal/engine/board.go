package engine

// Size is the board dimension.
const Size = 3

// Cells is the number of squares on the board.
const Cells = Size * Size

// Coord addresses a board cell. Row and Col are zero-based.
type Coord struct {
	Row, Col int
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Line is one of the eight triples that ends the game when uniformly marked.
type Line [Size]Coord

// Lines lists every winning line: rows, then columns, then both diagonals.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Contains reports whether c is one of the line's cells.
func (l Line) Contains(c Coord) bool {
	for _, lc := range l {
		if lc == c {
			return true
		}
	}
	return false
}

// Board is a value copy of the 3x3 grid.
type Board [Size][Size]Mark

// At returns the mark at c, or Empty when c is off the board.
func (b Board) At(c Coord) Mark {
	if !c.InBounds() {
		return Empty
	}
	return b[c.Row][c.Col]
}

// Count returns how many cells hold m.
func (b Board) Count(m Mark) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == m {
				n++
			}
		}
	}
	return n
}

// Free returns the number of empty cells.
func (b Board) Free() int {
	return b.Count(Empty)
}

// uniform reports whether all three cells of l hold m.
func (b Board) uniform(l Line, m Mark) bool {
	return b.At(l[0]) == m && b.At(l[1]) == m && b.At(l[2]) == m
}

// lineThrough returns a line through c completed by the mark at c.
// Only the row, the column and the diagonals that pass through c are
// inspected: a line cannot be complete unless its last filled cell is on it.
func (b Board) lineThrough(c Coord) (Line, bool) {
	m := b.At(c)
	if m == Empty {
		return Line{}, false
	}

	row := Line{{c.Row, 0}, {c.Row, 1}, {c.Row, 2}}
	if b.uniform(row, m) {
		return row, true
	}

	col := Line{{0, c.Col}, {1, c.Col}, {2, c.Col}}
	if b.uniform(col, m) {
		return col, true
	}

	if c.Row == c.Col {
		if diag := Lines[6]; b.uniform(diag, m) {
			return diag, true
		}
	}

	if c.Row == Size-1-c.Col {
		if anti := Lines[7]; b.uniform(anti, m) {
			return anti, true
		}
	}

	return Line{}, false
}
