package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
// The play field is measured in logical pixels; the screen is whatever the
// platform draws on (terminal cells or window pixels).
type RuntimeConfig struct {
	FieldW   int   // Play field width in logical pixels
	FieldH   int   // Play field height in logical pixels
	ScreenW  int   // Output width (cells for the terminal, pixels for a window)
	ScreenH  int   // Output height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with the reference field geometry.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   750,
		FieldH:   750,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary a game reports to the platform after every tick.
type GameState struct {
	Score    int  // Enemies destroyed by the player
	Level    int  // Current wave level
	Lives    int  // Remaining lives
	GameOver bool // Lost banner is showing
	Paused   bool // Whether the game is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State      GameState
	Terminated bool // The loop has finished and the session should end
}
