package lander

import (
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Ship hull outline and flame in the local frame, rotated by the current
// orientation when snapshotted.
var shipHull = []core.Vec2{
	{X: 0, Y: -14},
	{X: 9, Y: -2},
	{X: 7, Y: 8},
	{X: -7, Y: 8},
	{X: -9, Y: -2},
}

// HUD carries the read-only scalars shown to the player each tick.
type HUD struct {
	Score        int
	Level        int
	Lives        int
	FuelFraction float64
	HSpeed       float64
	VSpeed       float64
	Altitude     float64
}

// PadView is a landing pad as seen by the renderer.
type PadView struct {
	X, Y, Width float64
	Multiplier  int
}

// ParticleView is an explosion particle with its render opacity.
type ParticleView struct {
	Pos   core.Vec2
	Alpha float64
}

// DebrisView is a debris segment with its render opacity.
type DebrisView struct {
	A, B  core.Vec2
	Alpha float64
}

// Snapshot is the per-tick read-only view of the simulation, the full render
// contract between the core and the platform layer. All geometry is in world
// coordinates.
type Snapshot struct {
	State   State
	Message string
	HUD     HUD

	Terrain       []core.Vec2 // polyline including the two closing points
	Pads          []PadView
	MountainLeft  float64
	MountainRight float64

	ShipPos   core.Vec2
	Body      []core.Vec2    // closed hull polygon
	Legs      [][2]core.Vec2 // leg segments from hull to feet
	Flame     []core.Vec2    // thrust triangle, nil when not burning
	LeftFoot  core.Vec2
	RightFoot core.Vec2

	Particles []ParticleView
	Debris    []DebrisView

	ScreenW, ScreenH float64
}

// Snapshot captures the current render state. Safe to call in any state; an
// engine that has not yet seen screen dimensions yields an empty snapshot.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:   e.state,
		Message: e.message,
		ScreenW: e.screenW,
		ScreenH: e.screenH,
		HUD: HUD{
			Score:        e.score,
			Level:        e.level,
			Lives:        e.lives,
			FuelFraction: e.ship.FuelFraction(),
			HSpeed:       e.ship.Vel.X,
			VSpeed:       e.ship.Vel.Y,
		},
	}

	if e.terrain != nil {
		snap.Terrain = e.terrain.Samples()
		snap.MountainLeft, snap.MountainRight = e.terrain.MountainBounds()
		for _, p := range e.terrain.Pads() {
			snap.Pads = append(snap.Pads, PadView{
				X: p.X, Y: p.Y, Width: p.Width, Multiplier: p.Multiplier,
			})
		}

		left, right := e.ship.Feet()
		snap.LeftFoot, snap.RightFoot = left, right
		alt := e.terrain.HeightAt(left.X) - left.Y
		if alt < 0 {
			alt = 0
		}
		snap.HUD.Altitude = alt
	}

	snap.ShipPos = e.ship.Pos
	if e.state != StateCrashed && e.state != StateGameOver {
		snap.Body = e.shipBody()
		snap.Legs = e.shipLegs()
		if e.ship.Thrusting() {
			snap.Flame = e.shipFlame()
		}
	}

	if e.explosion != nil {
		for _, p := range e.explosion.Particles {
			snap.Particles = append(snap.Particles, ParticleView{Pos: p.Pos, Alpha: p.Alpha()})
		}
		for _, d := range e.explosion.Debris {
			a, b := d.Ends()
			snap.Debris = append(snap.Debris, DebrisView{A: a, B: b, Alpha: d.Alpha()})
		}
	}

	return snap
}

func (e *Engine) shipBody() []core.Vec2 {
	body := make([]core.Vec2, len(shipHull))
	for i, p := range shipHull {
		body[i] = p.Rotate(e.ship.Rotation).Add(e.ship.Pos)
	}
	return body
}

func (e *Engine) shipLegs() [][2]core.Vec2 {
	rot := e.ship.Rotation
	pos := e.ship.Pos
	left, right := e.ship.Feet()
	return [][2]core.Vec2{
		{core.Vec2{X: -7, Y: 8}.Rotate(rot).Add(pos), left},
		{core.Vec2{X: 7, Y: 8}.Rotate(rot).Add(pos), right},
	}
}

// shipFlame returns the thrust triangle, lengthened by throttle.
func (e *Engine) shipFlame() []core.Vec2 {
	rot := e.ship.Rotation
	pos := e.ship.Pos
	length := 8 + 10*e.ship.Throttle
	local := []core.Vec2{
		{X: -4, Y: 8},
		{X: 4, Y: 8},
		{X: 0, Y: 8 + length},
	}
	flame := make([]core.Vec2, len(local))
	for i, p := range local {
		flame[i] = p.Rotate(rot).Add(pos)
	}
	return flame
}
