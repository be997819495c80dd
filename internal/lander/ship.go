// Package lander implements the lunar lander simulation core: ship physics,
// procedural terrain, collision evaluation, and the game state machine.
// It contains pure logic with no terminal or audio dependencies; the platform
// layer drives it through Update and reads back render snapshots.
package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Lifecycle is the ship's per-attempt state.
type Lifecycle int

const (
	Flying Lifecycle = iota
	Landed
	Crashed
)

// Foot contact offsets in the ship's local frame (rotation 0 = pointing up).
// The two feet are the only geometry the collision system needs.
const (
	footOffsetX = 10.0
	footOffsetY = 12.0
)

// Ship is the player-controlled rigid body. Owned exclusively by the Engine
// and mutated only through its methods.
type Ship struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Rotation float64 // radians, 0 = pointing up
	Fuel     float64
	Throttle float64

	lifecycle Lifecycle
	thrusting bool

	cfg config.PhysicsConfig
}

// NewShip creates a ship with the given flight model, parked at the origin.
func NewShip(cfg config.PhysicsConfig) *Ship {
	s := &Ship{cfg: cfg}
	s.Reset(core.Vec2{})
	return s
}

// Reset restores the ship to a fresh Flying state at the given position:
// zero velocity and rotation, full fuel, floor throttle.
func (s *Ship) Reset(pos core.Vec2) {
	s.Pos = pos
	s.Vel = core.Vec2{}
	s.Rotation = 0
	s.Fuel = s.cfg.MaxFuel
	s.Throttle = s.cfg.MinThrottle
	s.lifecycle = Flying
	s.thrusting = false
}

// Update integrates one physics step. Rotation and thrust inputs are ignored
// once the ship has landed or crashed.
func (s *Ship) Update(dt float64, rotateLeft, rotateRight, thrust bool, wheelDelta float64) {
	if s.lifecycle != Flying {
		return
	}

	s.Vel.Y += s.cfg.Gravity * dt

	if rotateLeft {
		s.Rotation -= s.cfg.RotationSpeed * dt
	}
	if rotateRight {
		s.Rotation += s.cfg.RotationSpeed * dt
	}
	// Wheel input maps to a direct rotation adjustment, not rate-based.
	s.Rotation += wheelDelta

	s.thrusting = thrust && s.Fuel > 0
	if s.thrusting {
		// Throttle ramps from the floor toward full power instead of
		// snapping, so the flame and acceleration build smoothly.
		if s.cfg.ThrottleRampTime > 0 {
			s.Throttle += (1.0 - s.cfg.MinThrottle) / s.cfg.ThrottleRampTime * dt
		} else {
			s.Throttle = 1.0
		}
		s.Throttle = core.ClampF(s.Throttle, s.cfg.MinThrottle, 1.0)

		// Thrust points "up" in the ship's local frame: rotation - 90°.
		angle := s.Rotation - math.Pi/2
		power := s.cfg.ThrustPower * s.Throttle
		s.Vel.X += math.Cos(angle) * power * dt
		s.Vel.Y += math.Sin(angle) * power * dt

		s.Fuel -= s.cfg.FuelConsumption * s.Throttle * dt
		if s.Fuel < 0 {
			s.Fuel = 0
		}
	} else {
		s.Throttle = s.cfg.MinThrottle
	}

	s.Pos = s.Pos.Add(s.Vel.Scale(dt))

	// Soft ceiling above the visible area; horizontal travel is bounded by
	// the terrain's mountain zones instead.
	if s.Pos.Y < s.cfg.CeilingY {
		s.Pos.Y = s.cfg.CeilingY
		if s.Vel.Y < 0 {
			s.Vel.Y = 0
		}
	}
}

// Speed returns the magnitude of the ship's velocity.
func (s *Ship) Speed() float64 {
	return s.Vel.Len()
}

// SafeLandingSpeed reports whether the current speed permits a landing.
func (s *Ship) SafeLandingSpeed() bool {
	return s.Speed() <= s.cfg.MaxSafeLandingSpeed
}

// SafeLandingAngle reports whether the current tilt permits a landing.
func (s *Ship) SafeLandingAngle() bool {
	deg := math.Abs(core.NormalizeAngle(s.Rotation)) * 180 / math.Pi
	return deg <= s.cfg.MaxSafeLandingAngle
}

// Feet returns the left and right foot contact points in world space,
// computed by rotating the fixed local offsets by the current orientation.
func (s *Ship) Feet() (left, right core.Vec2) {
	left = core.Vec2{X: -footOffsetX, Y: footOffsetY}.Rotate(s.Rotation).Add(s.Pos)
	right = core.Vec2{X: footOffsetX, Y: footOffsetY}.Rotate(s.Rotation).Add(s.Pos)
	return left, right
}

// Land freezes the ship on a successful touchdown.
func (s *Ship) Land() {
	s.Vel = core.Vec2{}
	s.thrusting = false
	s.lifecycle = Landed
}

// Crash freezes the ship after a failed landing.
func (s *Ship) Crash() {
	s.Vel = core.Vec2{}
	s.thrusting = false
	s.lifecycle = Crashed
}

// Lifecycle returns the ship's per-attempt state.
func (s *Ship) Lifecycle() Lifecycle {
	return s.lifecycle
}

// Thrusting reports whether the engine produced thrust this tick.
func (s *Ship) Thrusting() bool {
	return s.thrusting
}

// FuelFraction returns remaining fuel as a fraction of the tank.
func (s *Ship) FuelFraction() float64 {
	if s.cfg.MaxFuel <= 0 {
		return 0
	}
	return s.Fuel / s.cfg.MaxFuel
}
