package engine

import "errors"

// Reasons a placement would be rejected. PlaceMark never returns these;
// CanPlace reports them so an input layer can disable controls.
var (
	ErrOutOfRange = errors.New("cell is out of range")
	ErrOccupied   = errors.New("cell is already occupied")
	ErrGameOver   = errors.New("game is already finished")
)

// minFilledForWin is the earliest move count at which a line can be complete.
const minFilledForWin = 2*Size - 1

// Listener receives a snapshot after every mutating call.
type Listener func(Snapshot)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithStartingPlayer sets who opens the first game. Anything other than X or O
// is ignored.
func WithStartingPlayer(m Mark) Option {
	return func(e *Engine) {
		if m == X || m == O {
			e.starting = m
		}
	}
}

// WithListener registers l before the engine is returned.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.OnChange(l)
	}
}

// Engine owns all game state. It is not safe for concurrent use; every call is
// expected to come from the goroutine that drives the UI.
type Engine struct {
	board    Board
	free     int
	current  Mark
	starting Mark
	outcome  Outcome
	scoreX   int
	scoreO   int

	event   Event
	move    Coord
	winLine Line
	hasWin  bool

	listeners []Listener
	notifying bool
}

// New creates an engine with an empty board, X to start and zero scores.
// No notification is sent for the initial state.
func New(opts ...Option) *Engine {
	e := &Engine{starting: X}
	for _, opt := range opts {
		opt(e)
	}
	e.clear()
	return e
}

// OnChange registers l. Listeners run in registration order, synchronously,
// before the mutating call returns.
func (e *Engine) OnChange(l Listener) {
	if l == nil {
		return
	}
	e.listeners = append(e.listeners, l)
}

// NewGame clears the board and hands the first move to the starting player.
// Scores are kept.
func (e *Engine) NewGame() {
	e.guard()
	e.clear()
	e.event = EventNewGame
	e.notify()
}

// ChangeStartingPlayer toggles who opens the next game. The running game and
// the score are not affected.
func (e *Engine) ChangeStartingPlayer() {
	e.guard()
	e.starting = e.starting.Other()
	e.event = EventStarterChanged
	e.notify()
}

// ResetScore zeroes both scores. The board and outcome are not affected.
func (e *Engine) ResetScore() {
	e.guard()
	e.scoreX, e.scoreO = 0, 0
	e.event = EventScoreReset
	e.notify()
}

// PlaceMark puts the current player's mark at (row, col). Out-of-range
// coordinates, occupied cells and moves after the game ended leave the state
// unchanged. Listeners are notified in every case. The return value reports
// whether the move was accepted.
func (e *Engine) PlaceMark(row, col int) bool {
	e.guard()
	c := Coord{Row: row, Col: col}
	e.move = c

	if e.CanPlace(row, col) != nil {
		e.event = EventRejected
		e.notify()
		return false
	}

	mover := e.current
	e.board[row][col] = mover
	e.free--

	switch line, won := e.winningLine(c); {
	case won:
		e.outcome = WonBy(mover)
		e.winLine, e.hasWin = line, true
		e.addWin(mover)
		e.event = EventWon
	case e.free == 0:
		e.outcome = Tie()
		e.event = EventTie
	default:
		e.current = mover.Other()
		e.event = EventPlaced
	}

	e.notify()
	return true
}

// CanPlace reports why PlaceMark(row, col) would be rejected, or nil if it
// would be accepted.
func (e *Engine) CanPlace(row, col int) error {
	if !(Coord{Row: row, Col: col}).InBounds() {
		return ErrOutOfRange
	}
	if e.outcome.Terminal() {
		return ErrGameOver
	}
	if e.board[row][col] != Empty {
		return ErrOccupied
	}
	return nil
}

// CellAt returns the mark at (row, col), or Empty off the board.
func (e *Engine) CellAt(row, col int) Mark {
	return e.board.At(Coord{Row: row, Col: col})
}

// CurrentPlayer returns whose turn it is. After the game ends it stays on the
// last mover.
func (e *Engine) CurrentPlayer() Mark {
	return e.current
}

// StartingPlayer returns who opens the next new game.
func (e *Engine) StartingPlayer() Mark {
	return e.starting
}

// Outcome returns the state of the current game.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// ScoreOf returns the session wins of m. Empty has no score.
func (e *Engine) ScoreOf(m Mark) int {
	switch m {
	case X:
		return e.scoreX
	case O:
		return e.scoreO
	default:
		return 0
	}
}

// FreeSquares returns the number of empty cells.
func (e *Engine) FreeSquares() int {
	return e.free
}

// Board returns a copy of the grid.
func (e *Engine) Board() Board {
	return e.board
}

// Snapshot returns a copy of the full state, tagged with the last event.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:      e.board,
		Current:    e.current,
		Starting:   e.starting,
		Outcome:    e.outcome,
		ScoreX:     e.scoreX,
		ScoreO:     e.scoreO,
		Free:       e.free,
		Event:      e.event,
		Move:       e.move,
		WinLine:    e.winLine,
		HasWinLine: e.hasWin,
	}
}

func (e *Engine) clear() {
	e.board = Board{}
	e.free = Cells
	e.outcome = InProgress()
	e.current = e.starting
	e.move = Coord{}
	e.winLine, e.hasWin = Line{}, false
}

// winningLine checks the lines through the cell just filled. Nothing is
// inspected before enough marks are down for a line to exist.
func (e *Engine) winningLine(c Coord) (Line, bool) {
	if Cells-e.free < minFilledForWin {
		return Line{}, false
	}
	return e.board.lineThrough(c)
}

func (e *Engine) addWin(m Mark) {
	if m == X {
		e.scoreX++
	} else {
		e.scoreO++
	}
}

// guard panics when a listener calls back into a mutating operation.
func (e *Engine) guard() {
	if e.notifying {
		panic("engine: mutating call from inside a change listener")
	}
}

func (e *Engine) notify() {
	if len(e.listeners) == 0 {
		return
	}
	snap := e.Snapshot()
	e.notifying = true
	defer func() { e.notifying = false }()
	for _, l := range e.listeners {
		l(snap)
	}
}
