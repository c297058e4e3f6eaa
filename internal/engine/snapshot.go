package engine

import "fmt"

// Event names the operation that produced a snapshot.
type Event uint8

const (
	EventNone Event = iota
	EventNewGame
	EventPlaced         // accepted move, game continues
	EventRejected       // PlaceMark no-op
	EventWon            // accepted move completed a line
	EventTie            // accepted move filled the board
	EventScoreReset     // ResetScore
	EventStarterChanged // ChangeStartingPlayer
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNewGame:
		return "new_game"
	case EventPlaced:
		return "placed"
	case EventRejected:
		return "rejected"
	case EventWon:
		return "won"
	case EventTie:
		return "tie"
	case EventScoreReset:
		return "score_reset"
	case EventStarterChanged:
		return "starter_changed"
	default:
		return "none"
	}
}

// Snapshot is an immutable copy of the engine state delivered to listeners.
// It contains everything a presenter needs to redraw.
type Snapshot struct {
	Board    Board
	Current  Mark
	Starting Mark
	Outcome  Outcome
	ScoreX   int
	ScoreO   int
	Free     int

	Event Event
	// Move is the coordinate passed to the PlaceMark call that produced this
	// snapshot. Only set for EventPlaced, EventRejected, EventWon and EventTie.
	Move Coord
	// WinLine is the completed line while Outcome is WonBy.
	WinLine    Line
	HasWinLine bool
}

// Score returns the wins recorded for m.
func (s Snapshot) Score(m Mark) int {
	switch m {
	case X:
		return s.ScoreX
	case O:
		return s.ScoreO
	default:
		return 0
	}
}

// Status returns a one-line description of the game for display.
func (s Snapshot) Status() string {
	switch s.Outcome.Status {
	case StatusWon:
		return fmt.Sprintf("%s wins", s.Outcome.Winner)
	case StatusTie:
		return "Tie"
	default:
		return fmt.Sprintf("Game in progress: %s's turn", s.Current)
	}
}

// Moves returns the number of marks on the board.
func (s Snapshot) Moves() int {
	return Cells - s.Free
}
