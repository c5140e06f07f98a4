package core

// MaxFrameDelta is the upper bound on a single simulation step, in seconds.
// Frame deltas are clamped here before entering the simulation so a stalled
// frame cannot tunnel the player through thin walls or swallow a whole dash.
const MaxFrameDelta = 0.1

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and locate their tuning config.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	ConfigPath string // Optional path to a custom tuning YAML
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// ClampDelta sanitizes a frame delta before it enters the simulation.
// Negative or non-finite deltas collapse to zero; large deltas are capped
// at MaxFrameDelta.
func ClampDelta(dt float64) float64 {
	if !(dt > 0) { // also catches NaN
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// GameState represents the current state of a game mode.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// RunStats summarizes a finished run for storage.
type RunStats struct {
	Score         int
	DurationSecs  int
	DistanceTiles int
	ChunksSeen    int
	ShotsFired    int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
