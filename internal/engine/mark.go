// Package engine implements the tic-tac-toe game state: board occupancy,
// move legality, win/tie detection, turn order, session score and
// starting-player rotation. It has no dependencies on any UI.
package engine

// Mark is the content of a board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// Other returns the opposing mark. Empty maps to Empty.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// String returns "X", "O" or " " for Empty.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// ParseMark converts "X"/"x" or "O"/"o" to a player mark.
func ParseMark(s string) (Mark, bool) {
	switch s {
	case "X", "x":
		return X, true
	case "O", "o":
		return O, true
	default:
		return Empty, false
	}
}

// Status classifies a game as running or finished.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusTie
)

// Outcome is the terminal/non-terminal classification of the current game.
// Winner is only meaningful when Status is StatusWon.
type Outcome struct {
	Status Status
	Winner Mark
}

// InProgress is the outcome of a game that still accepts moves.
func InProgress() Outcome { return Outcome{Status: StatusInProgress} }

// WonBy is the outcome of a game completed by m.
func WonBy(m Mark) Outcome { return Outcome{Status: StatusWon, Winner: m} }

// Tie is the outcome of a full board without a completed line.
func Tie() Outcome { return Outcome{Status: StatusTie} }

// Terminal reports whether the game has ended.
func (o Outcome) Terminal() bool {
	return o.Status != StatusInProgress
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusWon:
		return "won by " + o.Winner.String()
	case StatusTie:
		return "tie"
	default:
		return "in progress"
	}
}
