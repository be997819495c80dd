package lander

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: testW, ScreenH: testH, TickRate: 60, Seed: seed}
}

// newReadyEngine builds an engine with screen dimensions supplied, sitting
// in Ready.
func newReadyEngine(seed int64) *Engine {
	e := New(config.DefaultLanderConfig(), testRuntime(seed), nil)
	e.SetScreenSize(testW, testH)
	return e
}

// newPlayingEngine builds an engine and issues the first restart edge.
func newPlayingEngine(seed int64) *Engine {
	e := newReadyEngine(seed)
	e.Update(0.016, core.Signals{Restart: true})
	e.Update(0.016, core.Signals{})
	return e
}

// advance runs the engine for roughly the given duration with no input.
func advance(e *Engine, seconds float64) {
	for t := 0.0; t < seconds; t += 0.05 {
		e.Update(0.05, core.Signals{})
	}
}

// parkOnPad teleports the ship to rest just touching the given pad, upright.
func parkOnPad(e *Engine, pad Pad) {
	s := e.Ship()
	s.Pos = core.Vec2{X: pad.X + pad.Width/2, Y: pad.Y - footOffsetY + 0.1}
	s.Vel = core.Vec2{}
	s.Rotation = 0
}

func TestEngineDeferredSetup(t *testing.T) {
	e := New(config.DefaultLanderConfig(), testRuntime(1), nil)

	// Dimensions unknown: input is ignored, nothing is generated
	e.Update(0.016, core.Signals{Restart: true})
	if e.State() != StateReady {
		t.Fatalf("state = %v, expected Ready before screen size is known", e.State())
	}
	if e.Terrain() != nil {
		t.Fatal("terrain should not exist before screen size is known")
	}

	// First size triggers setup exactly once, but does not auto-start
	e.Update(0.016, core.Signals{})
	e.SetScreenSize(testW, testH)
	if e.Terrain() == nil {
		t.Fatal("terrain should be generated once dimensions are known")
	}
	if e.State() != StateReady {
		t.Fatalf("state = %v, expected Ready until the first restart edge", e.State())
	}
	first := e.Terrain()

	// Subsequent size pushes do not regenerate
	e.SetScreenSize(testW, testH)
	if e.Terrain() != first {
		t.Error("repeated size pushes must not rerun level setup")
	}

	e.Update(0.016, core.Signals{Restart: true})
	if e.State() != StatePlaying {
		t.Errorf("state = %v, expected Playing after restart edge", e.State())
	}
}

func TestEngineRestartIsEdgeTriggered(t *testing.T) {
	e := newReadyEngine(2)

	e.Update(0.016, core.Signals{Restart: true})
	if e.State() != StatePlaying {
		t.Fatalf("state = %v, expected Playing", e.State())
	}

	// Burn through all three lives with the restart signal held the whole
	// time: crash, wait out the message timer, repeat.
	for i := 0; i < 3; i++ {
		e.Ship().Pos.X = -10000 // deep in the mountain zone
		e.Update(0.016, core.Signals{Restart: true})
		if e.State() != StateCrashed {
			t.Fatalf("crash %d: state = %v, expected Crashed", i+1, e.State())
		}
		for e.State() == StateCrashed {
			e.Update(0.05, core.Signals{Restart: true})
		}
	}
	if e.State() != StateGameOver {
		t.Fatalf("state = %v, expected GameOver after third crash", e.State())
	}

	// Still held: no edge, so no new game
	for i := 0; i < 5; i++ {
		e.Update(0.016, core.Signals{Restart: true})
	}
	if e.State() != StateGameOver {
		t.Errorf("held restart re-triggered: state = %v", e.State())
	}

	// Release, then press again: a fresh edge starts a new game
	e.Update(0.016, core.Signals{})
	if e.State() != StateGameOver {
		t.Fatalf("release changed state to %v", e.State())
	}
	e.Update(0.016, core.Signals{Restart: true})
	if e.State() != StatePlaying {
		t.Errorf("state = %v, expected Playing after a fresh restart edge", e.State())
	}
	if e.Lives() != 3 || e.Score() != 0 || e.Level() != 1 {
		t.Errorf("new game = lives %d score %d level %d, expected 3/0/1",
			e.Lives(), e.Score(), e.Level())
	}
}

func TestEngineLandingScenario(t *testing.T) {
	e := newPlayingEngine(3)
	pad := e.Terrain().Pads()[0]
	parkOnPad(e, pad)
	e.Ship().Fuel = 500

	scoreBefore := e.Score()
	e.Update(0.016, core.Signals{})

	if e.State() != StateLanded {
		t.Fatalf("state = %v, expected Landed", e.State())
	}
	if e.Ship().Lifecycle() != Landed {
		t.Error("ship lifecycle should be Landed")
	}

	// score += 50*multiplier + floor(fuel/10)
	want := scoreBefore + 50*pad.Multiplier + 50
	if e.Score() != want {
		t.Errorf("score = %d, expected %d", e.Score(), want)
	}
	if e.Lives() != 3 {
		t.Errorf("lives = %d, a landing must not cost a life", e.Lives())
	}
}

func TestEngineScoringOnThreeTimesPad(t *testing.T) {
	e := newPlayingEngine(4)

	var pad *Pad
	for i, p := range e.Terrain().Pads() {
		if p.Multiplier == 3 && p.X >= 0 && p.Right() <= testW {
			pad = &e.Terrain().Pads()[i]
			break
		}
	}
	if pad == nil {
		t.Fatal("no on-screen 3x pad generated for this seed")
	}

	parkOnPad(e, *pad)
	e.Ship().Fuel = 500
	e.Update(0.016, core.Signals{})

	if e.State() != StateLanded {
		t.Fatalf("state = %v, expected Landed", e.State())
	}
	if e.Score() != 200 { // 50*3 + floor(500/10)
		t.Errorf("score = %d, expected 200", e.Score())
	}
}

func TestEngineLandedAdvancesLevel(t *testing.T) {
	e := newPlayingEngine(5)
	pad := e.Terrain().Pads()[0]
	parkOnPad(e, pad)
	e.Update(0.016, core.Signals{})
	if e.State() != StateLanded {
		t.Fatalf("state = %v, expected Landed", e.State())
	}
	terrainBefore := e.Terrain()

	// The 2-second message hold must elapse first
	advance(e, 1.0)
	if e.State() != StateLanded {
		t.Fatalf("state = %v, message hold ended too early", e.State())
	}

	advance(e, 1.5)
	if e.State() != StatePlaying {
		t.Fatalf("state = %v, expected Playing after hold", e.State())
	}
	if e.Level() != 2 {
		t.Errorf("level = %d, expected 2", e.Level())
	}
	if e.Terrain() == terrainBefore {
		t.Error("a new level must regenerate the terrain")
	}
	if e.Ship().Lifecycle() != Flying {
		t.Error("ship should be respawned Flying")
	}
}

func TestEngineMountainPrecedence(t *testing.T) {
	e := newPlayingEngine(6)
	left, _ := e.Terrain().MountainBounds()

	// Safe speed and angle: the mountain zone must still crash instantly
	s := e.Ship()
	s.Pos = core.Vec2{X: left - 50, Y: 100}
	s.Vel = core.Vec2{}
	s.Rotation = 0

	e.Update(0.016, core.Signals{})

	if e.State() != StateCrashed {
		t.Fatalf("state = %v, expected Crashed", e.State())
	}
	if e.Message() != MsgMountain {
		t.Errorf("message = %q, expected %q", e.Message(), MsgMountain)
	}
	if e.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", e.Lives())
	}
}

func TestEngineCrashTooFast(t *testing.T) {
	e := newPlayingEngine(7)
	pad := e.Terrain().Pads()[0]
	parkOnPad(e, pad)
	e.Ship().Pos.Y -= 0.6 // stay at the surface after one fast step
	e.Ship().Vel = core.Vec2{Y: 50}

	e.Update(0.016, core.Signals{})

	if e.State() != StateCrashed {
		t.Fatalf("state = %v, expected Crashed", e.State())
	}
	if e.Message() != MsgTooFast {
		t.Errorf("message = %q, expected %q", e.Message(), MsgTooFast)
	}
}

func TestEngineCrashBadAngle(t *testing.T) {
	e := newPlayingEngine(8)
	pad := e.Terrain().Pads()[0]

	s := e.Ship()
	s.Pos = core.Vec2{X: pad.X + pad.Width/2, Y: pad.Y - 10}
	s.Vel = core.Vec2{}
	s.Rotation = 30 * 3.14159265 / 180

	e.Update(0.016, core.Signals{})

	if e.State() != StateCrashed {
		t.Fatalf("state = %v, expected Crashed", e.State())
	}
	if e.Message() != MsgBadAngle {
		t.Errorf("message = %q, expected %q", e.Message(), MsgBadAngle)
	}
}

func TestEngineOffPadAlwaysMissed(t *testing.T) {
	e := newPlayingEngine(9)
	tr := e.Terrain()

	// Find on-screen ground clear of every pad span
	var x float64 = -1
	for cand := 60.0; cand < testW-60; cand += 10 {
		clear := true
		for _, p := range tr.Pads() {
			if p.Contains(cand-footOffsetX-5) || p.Contains(cand+footOffsetX+5) {
				clear = false
				break
			}
		}
		if clear && !tr.InMountainZone(cand) {
			x = cand
			break
		}
	}
	if x < 0 {
		t.Fatal("no pad-free ground found for this seed")
	}

	// Excess speed as well: off-pad collisions still report the missed pad
	s := e.Ship()
	// Well below the surface so sloped ground cannot rescue either foot
	s.Pos = core.Vec2{X: x, Y: tr.HeightAt(x) + 30}
	s.Vel = core.Vec2{Y: 50}
	s.Rotation = 0

	e.Update(0.016, core.Signals{})

	if e.State() != StateCrashed {
		t.Fatalf("state = %v, expected Crashed", e.State())
	}
	if e.Message() != MsgMissedPad {
		t.Errorf("message = %q, expected %q", e.Message(), MsgMissedPad)
	}
}

func TestEngineLivesAndGameOver(t *testing.T) {
	e := newPlayingEngine(10)

	for i := 0; i < 3; i++ {
		e.Ship().Pos.X = -10000
		e.Update(0.016, core.Signals{})
		if e.State() != StateCrashed {
			t.Fatalf("crash %d: state = %v, expected Crashed", i+1, e.State())
		}
		if got := e.Lives(); got != 2-i {
			t.Fatalf("crash %d: lives = %d, expected %d", i+1, got, 2-i)
		}
		// GameOver only on the message timer's expiry, never before
		if e.State() == StateGameOver {
			t.Fatal("GameOver must wait for the message hold")
		}
		advance(e, 2.2)
	}

	if e.State() != StateGameOver {
		t.Fatalf("state = %v, expected GameOver after third crash", e.State())
	}
}

func TestEngineCrashedRetriesSameLevel(t *testing.T) {
	e := newPlayingEngine(11)
	e.Ship().Pos.X = -10000
	e.Update(0.016, core.Signals{})
	if e.State() != StateCrashed {
		t.Fatalf("state = %v, expected Crashed", e.State())
	}

	advance(e, 2.2)

	if e.State() != StatePlaying {
		t.Fatalf("state = %v, expected Playing again", e.State())
	}
	if e.Level() != 1 {
		t.Errorf("level = %d, a crash must retry the same level", e.Level())
	}
	if e.Ship().Lifecycle() != Flying {
		t.Error("ship should be respawned Flying")
	}
}

func TestEngineStartNewGameResets(t *testing.T) {
	e := newPlayingEngine(12)

	// Land once for score, then burn through all lives
	pad := e.Terrain().Pads()[0]
	parkOnPad(e, pad)
	e.Update(0.016, core.Signals{})
	advance(e, 2.2)

	for e.State() != StateGameOver {
		e.Ship().Pos.X = -10000
		e.Update(0.016, core.Signals{})
		advance(e, 2.2)
	}

	e.Update(0.016, core.Signals{Restart: true})

	if e.State() != StatePlaying {
		t.Fatalf("state = %v, expected Playing after restart", e.State())
	}
	if e.Score() != 0 || e.Level() != 1 || e.Lives() != 3 {
		t.Errorf("got score=%d level=%d lives=%d, expected 0/1/3",
			e.Score(), e.Level(), e.Lives())
	}
	if e.Terrain() == nil {
		t.Error("restart must regenerate terrain")
	}
}

func TestEnginePauseFreezesSimulation(t *testing.T) {
	e := newPlayingEngine(13)

	e.Update(0.016, core.Signals{Pause: true})
	if e.State() != StatePaused {
		t.Fatalf("state = %v, expected Paused", e.State())
	}

	pos := e.Ship().Pos
	for i := 0; i < 30; i++ {
		e.Update(0.05, core.Signals{Thrust: true})
	}
	if e.Ship().Pos != pos {
		t.Error("paused simulation must not move the ship")
	}

	// Pause edge resumes (signal must first be released)
	e.Update(0.016, core.Signals{})
	e.Update(0.016, core.Signals{Pause: true})
	if e.State() != StatePlaying {
		t.Fatalf("state = %v, expected Playing after resume", e.State())
	}
}

func TestEngineFuelThrottleClampedEveryTick(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	e := newPlayingEngine(14)

	sig := core.Signals{Thrust: true, RotateRight: true}
	for i := 0; i < 400; i++ {
		e.Update(0.05, sig)
		s := e.Ship()
		if s.Fuel < 0 || s.Fuel > cfg.Physics.MaxFuel {
			t.Fatalf("tick %d: fuel out of range: %f", i, s.Fuel)
		}
		if s.Throttle < cfg.Physics.MinThrottle || s.Throttle > 1.0 {
			t.Fatalf("tick %d: throttle out of range: %f", i, s.Throttle)
		}
	}
}

func TestEngineDtClamp(t *testing.T) {
	e := newPlayingEngine(15)
	s := e.Ship()
	velBefore := s.Vel.Y

	// An oversized frame must be treated as at most MaxStep
	e.Update(5.0, core.Signals{})

	maxGain := config.DefaultLanderConfig().Physics.Gravity * 0.1
	if gain := s.Vel.Y - velBefore; gain > maxGain+1e-9 {
		t.Errorf("velocity gained %f in one frame, expected at most %f", gain, maxGain)
	}
}

func TestEngineSpawnDriftAndTilt(t *testing.T) {
	e := newPlayingEngine(16)
	s := e.Ship()

	if s.Vel.X == 0 {
		t.Error("spawn must impose a horizontal drift")
	}
	if s.Rotation == 0 {
		t.Error("spawn must tilt the ship")
	}
	// Tilted in the direction of drift
	if (s.Vel.X > 0) != (s.Rotation > 0) {
		t.Errorf("tilt %f should match drift direction %f", s.Rotation, s.Vel.X)
	}
}

func TestEngineDeterminism(t *testing.T) {
	script := func(e *Engine) {
		e.Update(0.016, core.Signals{Restart: true})
		for i := 0; i < 300; i++ {
			sig := core.Signals{}
			if i%3 == 0 {
				sig.Thrust = true
			}
			if i%7 == 0 {
				sig.RotateLeft = true
			}
			e.Update(0.016, sig)
		}
	}

	a := newReadyEngine(99)
	b := newReadyEngine(99)
	script(a)
	script(b)

	if a.State() != b.State() || a.Score() != b.Score() || a.Lives() != b.Lives() {
		t.Errorf("runs diverged: %v/%d/%d vs %v/%d/%d",
			a.State(), a.Score(), a.Lives(), b.State(), b.Score(), b.Lives())
	}
	if a.Ship().Pos != b.Ship().Pos {
		t.Errorf("ship positions diverged: %v vs %v", a.Ship().Pos, b.Ship().Pos)
	}
}

func TestEngineAudioTriggers(t *testing.T) {
	rec := &recordingSink{}
	e := New(config.DefaultLanderConfig(), testRuntime(17), rec)
	e.SetScreenSize(testW, testH)
	e.Update(0.016, core.Signals{Restart: true})

	e.Update(0.016, core.Signals{Thrust: true})
	if rec.plays[CueThruster] != 1 {
		t.Errorf("thruster plays = %d, expected 1", rec.plays[CueThruster])
	}

	// Holding thrust must not retrigger the loop
	e.Update(0.016, core.Signals{Thrust: true})
	if rec.plays[CueThruster] != 1 {
		t.Errorf("thruster plays = %d, loop must not retrigger", rec.plays[CueThruster])
	}

	e.Update(0.016, core.Signals{})
	if rec.stops[CueThruster] != 1 {
		t.Errorf("thruster stops = %d, expected 1", rec.stops[CueThruster])
	}

	e.Ship().Pos.X = -10000
	e.Update(0.016, core.Signals{})
	if rec.plays[CueExplosion] != 1 {
		t.Errorf("explosion plays = %d, expected 1", rec.plays[CueExplosion])
	}
}

type recordingSink struct {
	plays map[Cue]int
	stops map[Cue]int
}

func (r *recordingSink) Play(c Cue) {
	if r.plays == nil {
		r.plays = make(map[Cue]int)
	}
	r.plays[c]++
}

func (r *recordingSink) Stop(c Cue) {
	if r.stops == nil {
		r.stops = make(map[Cue]int)
	}
	r.stops[c]++
}
