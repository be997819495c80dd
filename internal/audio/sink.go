// Package audio synthesizes the game's sound effects with gopxl/beep. All
// streamers are generated, no sample assets. A sink that fails to open the
// speaker stays usable and simply plays nothing.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-lander/internal/lander"
)

const sampleRate = beep.SampleRate(44100)

// Sink implements lander.AudioSink on top of a single beep mixer. The
// thruster is a paused-by-default looping streamer toggled via beep.Ctrl;
// explosion and landing are fire-and-forget one-shots.
type Sink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	thruster    *beep.Ctrl
	initialized bool
	muted       bool
}

// NewSink returns a silent sink. Call Init before use; a muted sink skips
// speaker setup entirely.
func NewSink(muted bool) *Sink {
	return &Sink{mixer: &beep.Mixer{}, muted: muted}
}

// Init opens the speaker and attaches the mixer. Returns the speaker error so
// the caller can log it; the sink itself degrades to silence on failure.
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized || s.muted {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	s.thruster = &beep.Ctrl{
		Streamer: &gain{streamer: newRumble(sampleRate), factor: 0.5},
		Paused:   true,
	}
	s.mixer.Add(s.thruster)

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything. The speaker itself has no close; clearing the
// mixer is enough to stop output.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.thruster.Paused = true
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Play starts the streamer for the given cue. Safe on an uninitialized sink.
func (s *Sink) Play(cue lander.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	switch cue {
	case lander.CueThruster:
		speaker.Lock()
		s.thruster.Paused = false
		speaker.Unlock()
	case lander.CueExplosion:
		s.oneShot(explosionStreamer())
	case lander.CueLanding:
		s.oneShot(landingStreamer())
	}
}

// Stop halts a looping cue. One-shot cues run to completion regardless.
func (s *Sink) Stop(cue lander.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	if cue == lander.CueThruster {
		speaker.Lock()
		s.thruster.Paused = true
		speaker.Unlock()
	}
}

func (s *Sink) oneShot(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// explosionStreamer is a noise burst with a hard attack and long tail.
func explosionStreamer() beep.Streamer {
	noise := newOscillator(0, 900*time.Millisecond, waveNoise, sampleRate)
	shaped := newEnvelope(noise, 900*time.Millisecond, 10*time.Millisecond, 700*time.Millisecond, sampleRate)
	return &gain{streamer: shaped, factor: 0.8}
}

// landingStreamer is a short rising two-note chime.
func landingStreamer() beep.Streamer {
	low := newEnvelope(
		newOscillator(523.25, 120*time.Millisecond, waveTriangle, sampleRate),
		120*time.Millisecond, 8*time.Millisecond, 40*time.Millisecond, sampleRate)
	high := newEnvelope(
		newOscillator(783.99, 220*time.Millisecond, waveTriangle, sampleRate),
		220*time.Millisecond, 8*time.Millisecond, 120*time.Millisecond, sampleRate)
	return &gain{streamer: beep.Seq(low, high), factor: 0.6}
}
