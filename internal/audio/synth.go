package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

type waveShape int

const (
	waveSine waveShape = iota
	waveTriangle
	waveNoise
)

// oscillator produces a raw mono wave mirrored onto both channels. A zero
// duration makes it run forever, for use behind beep.Loop or beep.Ctrl.
type oscillator struct {
	freq     float64
	phase    float64
	shape    waveShape
	rate     beep.SampleRate
	position int
	duration int // 0 = endless
}

func newOscillator(freq float64, d time.Duration, shape waveShape, rate beep.SampleRate) *oscillator {
	o := &oscillator{freq: freq, shape: shape, rate: rate}
	if d > 0 {
		o.duration = rate.N(d)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.shape {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// rumble is the engine sound: low-pass filtered noise with a slow sine wobble
// so the burn does not read as pure static. Endless; pause it via beep.Ctrl.
type rumble struct {
	rate  beep.SampleRate
	last  float64
	phase float64
}

func newRumble(rate beep.SampleRate) *rumble {
	return &rumble{rate: rate}
}

func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	// One-pole low-pass keeps only the low end of the noise
	const alpha = 0.04
	const wobbleHz = 27.0

	for i := range samples {
		raw := rand.Float64()*2 - 1
		r.last += alpha * (raw - r.last)

		wobble := 0.7 + 0.3*math.Sin(2*math.Pi*r.phase)
		val := r.last * wobble * 3.0
		if val > 1 {
			val = 1
		} else if val < -1 {
			val = -1
		}

		samples[i][0] = val
		samples[i][1] = val

		r.phase += wobbleHz / float64(r.rate)
		r.phase -= math.Floor(r.phase)
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if rem := e.total - e.position; rem < e.release && e.release > 0 {
			vol = float64(rem) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales a streamer by a constant factor.
type gain struct {
	streamer beep.Streamer
	factor   float64
}

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.factor
		samples[i][1] *= g.factor
	}
	return n, ok
}

func (g *gain) Err() error { return g.streamer.Err() }
