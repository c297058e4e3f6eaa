package core

// RuntimeConfig contains the terminal dimensions handed to the game adapter.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState summarizes the adapter state for the platform layer.
type GameState struct {
	GameOver bool // The current game has been won or tied
	TooSmall bool // The screen cannot fit the board
}

// StepResult is returned by Game.Step after each input frame.
type StepResult struct {
	State GameState
	// Changed is true when at least one engine command ran.
	Changed bool
}
