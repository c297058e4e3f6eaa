package tui

import (
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// storeRecorder saves finished games to the result history.
type storeRecorder struct {
	store   *storage.Store
	session string
}

// newRecorder returns nil when history is disabled so the game skips
// recording entirely.
func newRecorder(store *storage.Store, session string) tictactoe.Recorder {
	if store == nil {
		return nil
	}
	return &storeRecorder{store: store, session: session}
}

// Record implements tictactoe.Recorder.
func (r *storeRecorder) Record(f tictactoe.Finished) error {
	winner := ""
	if f.Winner != engine.Empty {
		winner = f.Winner.String()
	}
	_, err := r.store.SaveResult(storage.Result{
		Winner:   winner,
		Starting: f.Starting.String(),
		Moves:    f.Moves,
		Session:  r.session,
	})
	return err
}
