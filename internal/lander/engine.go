package lander

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// State is the game-flow state.
type State int

const (
	StateReady State = iota
	StatePlaying
	StatePaused
	StateLanded
	StateCrashed
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLanded:
		return "Landed"
	case StateCrashed:
		return "Crashed"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Crash reason messages. Off-pad collisions always report the missed pad;
// speed takes priority over angle when the feet are on a pad.
const (
	MsgMountain  = "HIT THE MOUNTAINS!"
	MsgTooFast   = "TOO FAST!"
	MsgBadAngle  = "BAD ANGLE!"
	MsgMissedPad = "MISSED THE PAD!"
)

// Engine orchestrates the simulation: it owns the state machine, wires input
// signals to the ship, runs collision and landing evaluation against the
// terrain each tick, and manages scoring, lives, and level progression.
// Single writer, no internal concurrency: one driver calls Update per frame.
type Engine struct {
	cfg   config.LanderConfig
	scale *config.LevelScale
	rng   *rand.Rand
	sink  AudioSink

	ship      *Ship
	terrain   *Terrain
	explosion *Explosion

	state        State
	score        int
	level        int
	lives        int
	message      string
	messageTimer float64

	screenW float64
	screenH float64
	sized   bool // both dimensions supplied at least once

	prev       core.Signals
	thrusterOn bool
}

// New creates an engine. The sink may be nil to disable audio. The runtime
// seed makes terrain, spawns, and effects reproducible.
func New(cfg config.LanderConfig, rtc core.RuntimeConfig, sink AudioSink) *Engine {
	return &Engine{
		cfg:   cfg,
		scale: config.NewLevelScale(cfg),
		rng:   rand.New(rand.NewSource(rtc.Seed)),
		sink:  sink,
		ship:  NewShip(cfg.Physics),
		state: StateReady,
	}
}

// SetScreenSize pushes the host's dimensions, in world units. The first time
// both are known, the initial session is set up exactly once; the engine then
// stays in Ready until the player's first restart edge.
func (e *Engine) SetScreenSize(w, h float64) {
	e.screenW = w
	e.screenH = h
	if !e.sized && w > 0 && h > 0 {
		e.sized = true
		e.StartNewGame()
	}
}

// StartNewGame resets the session: score, level, and lives back to initial
// values, with a fresh terrain for level 1.
func (e *Engine) StartNewGame() {
	e.score = 0
	e.level = 1
	e.lives = e.cfg.Rules.StartLives
	e.SetupLevel()
}

// SetupLevel regenerates the terrain for the current level and respawns the
// ship near screen center with a level-scaled horizontal drift. The ship
// starts tilted toward its drift, so the player must counter-rotate before
// landing.
func (e *Engine) SetupLevel() {
	e.terrain = GenerateTerrain(e.cfg, e.scale, e.rng, e.screenW, e.screenH, e.level)

	spawn := core.Vec2{
		X: e.screenW/2 + (e.rng.Float64()*2-1)*e.cfg.Rules.SpawnOffsetMax,
		Y: e.screenH * e.cfg.Rules.SpawnHeightFrac,
	}
	e.ship.Reset(spawn)

	drift := e.scale.SpawnDrift(e.level)
	dir := 1.0
	if e.rng.Float64() < 0.5 {
		dir = -1.0
	}
	e.ship.Vel.X = dir * drift

	maxDrift := e.cfg.Scaling.MaxDrift
	if maxDrift > 0 {
		tilt := e.cfg.Rules.SpawnTiltMax * math.Pi / 180 * (drift / maxDrift)
		e.ship.Rotation = dir * tilt
	}

	e.explosion = nil
	e.message = ""
	e.messageTimer = 0
	e.stopThruster()
}

// Update advances the simulation by one frame. Input signals are sampled
// once here; dt is clamped so a stalled driver cannot inject an unstable
// physics step.
func (e *Engine) Update(dt float64, sig core.Signals) {
	if dt > e.cfg.Physics.MaxStep {
		dt = e.cfg.Physics.MaxStep
	}
	if dt < 0 {
		dt = 0
	}

	edges := sig.RisingEdges(e.prev)
	e.prev = sig

	if !e.sized {
		return // screen dimensions not yet known: expected pre-condition
	}

	switch e.state {
	case StateReady:
		if edges.Restart {
			e.state = StatePlaying
		}

	case StatePlaying:
		if edges.Pause || edges.Back {
			e.state = StatePaused
			e.stopThruster()
			return
		}
		e.tick(dt, sig)

	case StatePaused:
		if edges.Pause || edges.Back {
			e.state = StatePlaying
		}

	case StateLanded:
		e.updateEffect(dt)
		e.messageTimer -= dt
		if e.messageTimer <= 0 {
			e.level++
			e.SetupLevel()
			e.state = StatePlaying
		}

	case StateCrashed:
		e.updateEffect(dt)
		e.messageTimer -= dt
		if e.messageTimer <= 0 {
			if e.lives > 0 {
				e.SetupLevel()
				e.state = StatePlaying
			} else {
				e.state = StateGameOver
			}
		}

	case StateGameOver:
		e.updateEffect(dt)
		if edges.Restart {
			e.StartNewGame()
			e.state = StatePlaying
		}
	}
}

// tick runs one Playing frame: physics, audio triggers, then collision and
// landing evaluation in strict order.
func (e *Engine) tick(dt float64, sig core.Signals) {
	e.ship.Update(dt, sig.RotateLeft, sig.RotateRight, sig.Thrust, sig.WheelDelta)

	if e.ship.Thrusting() {
		e.startThruster()
	} else {
		e.stopThruster()
	}

	// 1. Mountain zones crash unconditionally, before any terrain check.
	if e.terrain.InMountainZone(e.ship.Pos.X) {
		e.crash(MsgMountain)
		return
	}

	// 2. Neither foot at the surface yet: nothing further this tick.
	left, right := e.ship.Feet()
	if !e.terrain.CollidesWithTerrain(left, right) {
		return
	}

	// 3. Touchdown: pad containment, then speed, then angle.
	pad := e.terrain.PadAt(left, right)
	switch {
	case pad == nil:
		e.crash(MsgMissedPad)
	case !e.ship.SafeLandingSpeed():
		e.crash(MsgTooFast)
	case !e.ship.SafeLandingAngle():
		e.crash(MsgBadAngle)
	default:
		e.land(pad)
	}
}

func (e *Engine) land(pad *Pad) {
	e.ship.Land()
	points := e.cfg.Rules.PadScore*pad.Multiplier +
		int(math.Floor(e.ship.Fuel/float64(e.cfg.Rules.FuelScoreDivisor)))
	e.score += points

	e.message = fmt.Sprintf("LANDED! +%d", points)
	e.messageTimer = e.cfg.Rules.MessageSeconds
	e.state = StateLanded

	e.stopThruster()
	if e.sink != nil {
		e.sink.Play(CueLanding)
	}
}

func (e *Engine) crash(reason string) {
	e.ship.Crash()
	e.lives--
	e.explosion = NewExplosion(e.cfg.Effects, e.rng, e.ship.Pos)

	e.message = reason
	e.messageTimer = e.cfg.Rules.MessageSeconds
	e.state = StateCrashed

	e.stopThruster()
	if e.sink != nil {
		e.sink.Play(CueExplosion)
	}
}

func (e *Engine) updateEffect(dt float64) {
	if e.explosion == nil {
		return
	}
	e.explosion.Update(dt)
	if e.explosion.Done() {
		e.explosion = nil
	}
}

func (e *Engine) startThruster() {
	if e.thrusterOn {
		return
	}
	e.thrusterOn = true
	if e.sink != nil {
		e.sink.Play(CueThruster)
	}
}

func (e *Engine) stopThruster() {
	if !e.thrusterOn {
		return
	}
	e.thrusterOn = false
	if e.sink != nil {
		e.sink.Stop(CueThruster)
	}
}

// State returns the current game-flow state.
func (e *Engine) State() State { return e.state }

// Score returns the session score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Message returns the current landed/crashed message, if any.
func (e *Engine) Message() string { return e.message }

// Ship returns the player's ship.
func (e *Engine) Ship() *Ship { return e.ship }

// Terrain returns the current level's terrain.
func (e *Engine) Terrain() *Terrain { return e.terrain }
