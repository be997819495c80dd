package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default lander configuration. Used as the
// last-resort fallback if the embedded YAML cannot be parsed.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Physics: PhysicsConfig{
			Gravity:             60,
			ThrustPower:         150,
			RotationSpeed:       2.5,
			MaxFuel:             1000,
			FuelConsumption:     60,
			MinThrottle:         0.3,
			ThrottleRampTime:    0.6,
			MaxSafeLandingSpeed: 40,
			MaxSafeLandingAngle: 15,
			CeilingY:            -100,
			MaxStep:             0.1,
		},
		Terrain: TerrainConfig{
			BaseSegments:     60,
			MinHeightFrac:    0.50,
			MaxHeightFrac:    0.88,
			ExtensionFrac:    0.5,
			MountainSegments: 8,
			MountainRiseFrac: 0.55,
			BaseAmplitude:    40,
			NoiseAmplitude:   6,
		},
		Pads: PadsConfig{
			Widths:            []float64{80, 65, 50, 35},
			Multipliers:       []int{1, 2, 3, 5},
			SpacingMargin:     40,
			PlacementAttempts: 100,
			BaseCount:         4,
			MaxCount:          6,
			BlendSegments:     2,
		},
		Rules: RulesConfig{
			StartLives:       3,
			PadScore:         50,
			FuelScoreDivisor: 10,
			MessageSeconds:   2.0,
			SpawnHeightFrac:  0.12,
			SpawnOffsetMax:   40,
			SpawnDriftBase:   20,
			SpawnTiltMax:     25,
		},
		Effects: EffectsConfig{
			Duration:        2.0,
			ParticleCount:   40,
			DebrisCount:     6,
			ParticleSpeed:   120,
			ParticleGravity: 30,
			Drag:            0.6,
			LifeMin:         0.5,
			LifeMax:         2.0,
		},
		Scaling: ScalingConfig{
			SegmentsPerLevel:  6,
			MaxSegments:       140,
			AmplitudePerLevel: 12,
			MaxAmplitude:      110,
			PadLevelStep:      2,
			DriftPerLevel:     10,
			MaxDrift:          80,
		},
	}
}
