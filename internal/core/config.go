package core

// RuntimeConfig contains configuration passed to the engine at initialization.
// The engine uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  float64 // Screen width in world units
	ScreenH  float64 // Screen height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  480,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
