package config

// LevelScale computes per-level simulation parameters from the scaling
// config. Growth is linear in level with hard caps so late levels remain
// playable.
type LevelScale struct {
	terrain TerrainConfig
	pads    PadsConfig
	rules   RulesConfig
	scaling ScalingConfig
}

// NewLevelScale creates a level scaler for the given configuration.
func NewLevelScale(cfg LanderConfig) *LevelScale {
	return &LevelScale{
		terrain: cfg.Terrain,
		pads:    cfg.Pads,
		rules:   cfg.Rules,
		scaling: cfg.Scaling,
	}
}

// Segments returns the terrain segment count for a level.
func (s *LevelScale) Segments(level int) int {
	if level < 1 {
		level = 1
	}
	n := s.terrain.BaseSegments + (level-1)*s.scaling.SegmentsPerLevel
	if n > s.scaling.MaxSegments {
		n = s.scaling.MaxSegments
	}
	return n
}

// Amplitude returns the primary height-variation amplitude for a level.
func (s *LevelScale) Amplitude(level int) float64 {
	if level < 1 {
		level = 1
	}
	a := s.terrain.BaseAmplitude + float64(level-1)*s.scaling.AmplitudePerLevel
	if a > s.scaling.MaxAmplitude {
		a = s.scaling.MaxAmplitude
	}
	return a
}

// PadCount returns the number of on-screen pads requested for a level.
func (s *LevelScale) PadCount(level int) int {
	if level < 1 {
		level = 1
	}
	step := s.scaling.PadLevelStep
	if step < 1 {
		step = 1
	}
	n := s.pads.BaseCount + (level-1)/step
	if n > s.pads.MaxCount {
		n = s.pads.MaxCount
	}
	return n
}

// OffscreenPads returns how many pads to place in each extended off-screen
// region for a level: one at first, two from level 3 on.
func (s *LevelScale) OffscreenPads(level int) int {
	if level >= 3 {
		return 2
	}
	return 1
}

// SpawnDrift returns the magnitude of the initial horizontal drift imposed
// on the ship at level start.
func (s *LevelScale) SpawnDrift(level int) float64 {
	if level < 1 {
		level = 1
	}
	d := s.rules.SpawnDriftBase + float64(level-1)*s.scaling.DriftPerLevel
	if d > s.scaling.MaxDrift {
		d = s.scaling.MaxDrift
	}
	return d
}
