// Package config provides YAML-based game configuration loading and
// level scaling for the lander platform.
package config

// LanderConfig contains all tunable parameters for the lander game.
type LanderConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Terrain TerrainConfig `yaml:"terrain"`
	Pads    PadsConfig    `yaml:"pads"`
	Rules   RulesConfig   `yaml:"rules"`
	Effects EffectsConfig `yaml:"effects"`
	Scaling ScalingConfig `yaml:"scaling"`
}

// PhysicsConfig defines the ship's flight model. All rates are per second;
// dt-based integration makes the simulation tick-rate independent.
type PhysicsConfig struct {
	Gravity             float64 `yaml:"gravity"`                // Downward acceleration, world units/s²
	ThrustPower         float64 `yaml:"thrust_power"`           // Acceleration at full throttle
	RotationSpeed       float64 `yaml:"rotation_speed"`         // Angular rate under rotate input, rad/s
	MaxFuel             float64 `yaml:"max_fuel"`               // Fuel units at level start
	FuelConsumption     float64 `yaml:"fuel_consumption"`       // Fuel units/s at full throttle
	MinThrottle         float64 `yaml:"min_throttle"`           // Throttle floor when thrust begins
	ThrottleRampTime    float64 `yaml:"throttle_ramp_time"`     // Seconds from floor to full throttle
	MaxSafeLandingSpeed float64 `yaml:"max_safe_landing_speed"` // Speed ceiling for a safe touchdown
	MaxSafeLandingAngle float64 `yaml:"max_safe_landing_angle"` // Tilt ceiling in degrees
	CeilingY            float64 `yaml:"ceiling_y"`              // Upper flight bound (negative = above screen)
	MaxStep             float64 `yaml:"max_step"`               // Upper bound on a single dt, seconds
}

// TerrainConfig defines procedural terrain generation.
type TerrainConfig struct {
	BaseSegments     int     `yaml:"base_segments"`      // Segment count at level 1
	MinHeightFrac    float64 `yaml:"min_height_frac"`    // Highest ground as a fraction of screen height
	MaxHeightFrac    float64 `yaml:"max_height_frac"`    // Lowest ground as a fraction of screen height
	ExtensionFrac    float64 `yaml:"extension_frac"`     // Off-screen extension per side, fraction of width
	MountainSegments int     `yaml:"mountain_segments"`  // Segments of forced rise at each extended edge
	MountainRiseFrac float64 `yaml:"mountain_rise_frac"` // Mountain peak rise, fraction of screen height
	BaseAmplitude    float64 `yaml:"base_amplitude"`     // Primary sine amplitude at level 1
	NoiseAmplitude   float64 `yaml:"noise_amplitude"`    // Deterministic fine-noise amplitude
}

// PadsConfig defines landing pad placement. Widths cycle widest to narrowest
// in lockstep with the multiplier cycle, so narrow pads pay more.
type PadsConfig struct {
	Widths            []float64 `yaml:"widths"`             // Width cycle by placement order
	Multipliers       []int     `yaml:"multipliers"`        // Score multiplier cycle by placement order
	SpacingMargin     float64   `yaml:"spacing_margin"`     // Required gap beyond pad width
	PlacementAttempts int       `yaml:"placement_attempts"` // Retry budget per pad before omitting it
	BaseCount         int       `yaml:"base_count"`         // On-screen pads at level 1
	MaxCount          int       `yaml:"max_count"`          // On-screen pad ceiling
	BlendSegments     int       `yaml:"blend_segments"`     // Segments of linear blend at pad edges
}

// RulesConfig defines session rules, scoring, and spawning.
type RulesConfig struct {
	StartLives       int     `yaml:"start_lives"`
	PadScore         int     `yaml:"pad_score"`          // Base score per landing before multiplier
	FuelScoreDivisor int     `yaml:"fuel_score_divisor"` // Remaining fuel / divisor bonus
	MessageSeconds   float64 `yaml:"message_seconds"`    // Landed/Crashed hold before auto-advance
	SpawnHeightFrac  float64 `yaml:"spawn_height_frac"`  // Spawn altitude, fraction of screen height
	SpawnOffsetMax   float64 `yaml:"spawn_offset_max"`   // Random horizontal spawn offset from center
	SpawnDriftBase   float64 `yaml:"spawn_drift_base"`   // Initial drift speed at level 1
	SpawnTiltMax     float64 `yaml:"spawn_tilt_max"`     // Max spawn tilt in degrees, toward drift
}

// EffectsConfig defines the cosmetic crash explosion.
type EffectsConfig struct {
	Duration        float64 `yaml:"duration"`          // Seconds before the effect is discarded
	ParticleCount   int     `yaml:"particle_count"`
	DebrisCount     int     `yaml:"debris_count"`
	ParticleSpeed   float64 `yaml:"particle_speed"`    // Max initial particle speed
	ParticleGravity float64 `yaml:"particle_gravity"`  // Mild gravity on particles, units/s²
	Drag            float64 `yaml:"drag"`              // Velocity decay per second
	LifeMin         float64 `yaml:"life_min"`          // Min particle lifetime, seconds
	LifeMax         float64 `yaml:"life_max"`          // Max particle lifetime, seconds
}

// ScalingConfig defines how difficulty grows per level. All growth is capped
// so high levels stay playable.
type ScalingConfig struct {
	SegmentsPerLevel  int     `yaml:"segments_per_level"`  // Extra terrain segments per level
	MaxSegments       int     `yaml:"max_segments"`        // Segment ceiling
	AmplitudePerLevel float64 `yaml:"amplitude_per_level"` // Extra height variation per level
	MaxAmplitude      float64 `yaml:"max_amplitude"`       // Amplitude ceiling
	PadLevelStep      int     `yaml:"pad_level_step"`      // Levels between extra on-screen pads
	DriftPerLevel     float64 `yaml:"drift_per_level"`     // Extra spawn drift per level
	MaxDrift          float64 `yaml:"max_drift"`           // Drift ceiling
}
