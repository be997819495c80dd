package lander

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Particle is a single decaying explosion fragment.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    float64
	MaxLife float64
}

// Alpha returns the remaining-life fraction, used as render opacity.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// Debris is a short spinning line segment thrown off by the crash.
type Debris struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Angle   float64
	Spin    float64 // rad/s
	Length  float64
	Life    float64
	MaxLife float64
}

// Alpha returns the remaining-life fraction, used as render opacity.
func (d Debris) Alpha() float64 {
	if d.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(d.Life/d.MaxLife, 0, 1)
}

// Ends returns the debris segment's endpoints in world space.
func (d Debris) Ends() (a, b core.Vec2) {
	half := core.Vec2{X: d.Length / 2}.Rotate(d.Angle)
	return d.Pos.Sub(half), d.Pos.Add(half)
}

// Explosion is a fixed-duration particle and debris decay simulation spawned
// on a crash. Purely cosmetic: it feeds nothing back into gameplay state.
type Explosion struct {
	Particles []Particle
	Debris    []Debris

	age      float64
	duration float64
	cfg      config.EffectsConfig
}

// NewExplosion spawns an explosion at the given position, with particle
// kinematics drawn from the injected rng.
func NewExplosion(cfg config.EffectsConfig, rng *rand.Rand, at core.Vec2) *Explosion {
	e := &Explosion{
		Particles: make([]Particle, 0, cfg.ParticleCount),
		Debris:    make([]Debris, 0, cfg.DebrisCount),
		duration:  cfg.Duration,
		cfg:       cfg,
	}

	for i := 0; i < cfg.ParticleCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64() * cfg.ParticleSpeed
		life := cfg.LifeMin + rng.Float64()*(cfg.LifeMax-cfg.LifeMin)
		e.Particles = append(e.Particles, Particle{
			Pos:     at,
			Vel:     core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed),
			Life:    life,
			MaxLife: life,
		})
	}

	for i := 0; i < cfg.DebrisCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.ParticleSpeed * (0.3 + rng.Float64()*0.5)
		life := cfg.LifeMin + rng.Float64()*(cfg.LifeMax-cfg.LifeMin)
		e.Debris = append(e.Debris, Debris{
			Pos:     at,
			Vel:     core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed),
			Angle:   rng.Float64() * 2 * math.Pi,
			Spin:    (rng.Float64()*2 - 1) * 6,
			Length:  6 + rng.Float64()*10,
			Life:    life,
			MaxLife: life,
		})
	}

	return e
}

// Update advances the decay simulation: life drains, fragments drift under
// mild gravity and drag, and dead fragments are dropped.
func (e *Explosion) Update(dt float64) {
	e.age += dt
	decay := 1 - e.cfg.Drag*dt
	if decay < 0 {
		decay = 0
	}

	alive := e.Particles[:0]
	for _, p := range e.Particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Vel.Y += e.cfg.ParticleGravity * dt
		p.Vel = p.Vel.Scale(decay)
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		alive = append(alive, p)
	}
	e.Particles = alive

	aliveDebris := e.Debris[:0]
	for _, d := range e.Debris {
		d.Life -= dt
		if d.Life <= 0 {
			continue
		}
		d.Vel.Y += e.cfg.ParticleGravity * dt
		d.Vel = d.Vel.Scale(decay)
		d.Pos = d.Pos.Add(d.Vel.Scale(dt))
		d.Angle += d.Spin * dt
		aliveDebris = append(aliveDebris, d)
	}
	e.Debris = aliveDebris
}

// Done reports whether the effect's duration has elapsed and it should be
// discarded.
func (e *Explosion) Done() bool {
	return e.age >= e.duration
}
