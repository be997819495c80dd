package lander

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Pad is a flat landing segment with a score multiplier. Narrower pads carry
// higher multipliers through the paired width/multiplier cycles.
type Pad struct {
	X          float64 // left edge
	Y          float64 // surface height
	Width      float64
	Multiplier int
}

// Right returns the x-coordinate of the pad's right edge.
func (p Pad) Right() float64 {
	return p.X + p.Width
}

// Contains reports whether x falls within the pad's span.
func (p Pad) Contains(x float64) bool {
	return x >= p.X && x <= p.Right()
}

// Terrain is the generated height polyline with embedded pads and edge
// mountain zones. Sample x-coordinates are strictly increasing over the
// terrain portion; two trailing points close the polygon for rendering and
// are excluded from height queries.
type Terrain struct {
	samples      []core.Vec2
	terrainCount int // samples participating in height queries
	pads         []Pad

	mountainLeft  float64
	mountainRight float64
}

// Relative wavelengths of the three height octaves, as fractions of screen
// width: rolling hills, medium features, fine detail.
const (
	waveLenPrimary   = 0.90
	waveLenSecondary = 0.31
	waveLenDetail    = 0.11
	waveLenNoise     = 0.043
)

// GenerateTerrain builds the terrain profile for a level. All randomness
// comes from the injected rng, so a seeded generator reproduces the level
// exactly.
func GenerateTerrain(cfg config.LanderConfig, scale *config.LevelScale, rng *rand.Rand, screenW, screenH float64, level int) *Terrain {
	tc := cfg.Terrain
	n := scale.Segments(level)

	ext := screenW * tc.ExtensionFrac
	x0 := -ext
	x1 := screenW + ext
	dx := (x1 - x0) / float64(n)

	minY := tc.MinHeightFrac * screenH
	maxY := tc.MaxHeightFrac * screenH
	mid := (minY + maxY) / 2

	// One random phase per octave, drawn once per generation.
	p1 := rng.Float64() * 2 * math.Pi
	p2 := rng.Float64() * 2 * math.Pi
	p3 := rng.Float64() * 2 * math.Pi
	pn := rng.Float64() * 2 * math.Pi

	a1 := scale.Amplitude(level)
	a2 := a1 * 0.45
	a3 := a1 * 0.18

	f1 := 2 * math.Pi / (screenW * waveLenPrimary)
	f2 := 2 * math.Pi / (screenW * waveLenSecondary)
	f3 := 2 * math.Pi / (screenW * waveLenDetail)
	fn := 2 * math.Pi / (screenW * waveLenNoise)

	raw := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		x := x0 + float64(i)*dx
		y := mid +
			a1*math.Sin(x*f1+p1) +
			a2*math.Sin(x*f2+p2) +
			a3*math.Sin(x*f3+p3) +
			tc.NoiseAmplitude*math.Sin(x*fn+pn)*math.Cos(x*fn*2.7+pn*1.3)
		raw[i] = core.ClampF(y, minY, maxY)
	}

	// Force the extended edges up into steep mountains. The boundary where
	// the rise begins is an unconditional crash line.
	mSeg := tc.MountainSegments
	if mSeg > n/2 {
		mSeg = n / 2
	}
	rise := tc.MountainRiseFrac * screenH
	for i := 0; i <= n; i++ {
		var t float64
		switch {
		case i < mSeg:
			t = 1 - float64(i)/float64(mSeg)
		case i > n-mSeg:
			t = 1 - float64(n-i)/float64(mSeg)
		default:
			continue
		}
		raw[i] -= rise * t * t
	}

	t := &Terrain{
		mountainLeft:  x0 + float64(mSeg)*dx,
		mountainRight: x1 - float64(mSeg)*dx,
	}

	t.placePads(cfg.Pads, scale, rng, raw, x0, dx, screenW, level)

	// Emit final samples: pad spans are flat at the pad height, with a short
	// linear blend into the surrounding terrain at each pad edge.
	blendDist := float64(cfg.Pads.BlendSegments) * dx
	t.samples = make([]core.Vec2, 0, n+3)
	for i := 0; i <= n; i++ {
		x := x0 + float64(i)*dx
		y := raw[i]
		if pad, blend := t.padInfluence(x, blendDist); pad != nil {
			y = core.Lerp(y, pad.Y, blend)
		}
		t.samples = append(t.samples, core.Vec2{X: x, Y: y})
	}
	t.terrainCount = len(t.samples)

	// Closing points extend the polygon below the screen bottom for
	// rendering fill only.
	t.samples = append(t.samples,
		core.Vec2{X: x1, Y: screenH + 50},
		core.Vec2{X: x0, Y: screenH + 50},
	)

	return t
}

// placePads runs the randomized placement loop: a main on-screen group, then
// one or two pads in each extended region. Each pad gets a bounded retry
// budget; exhausting it simply omits that pad.
func (t *Terrain) placePads(pc config.PadsConfig, scale *config.LevelScale, rng *rand.Rand, raw []float64, x0, dx, screenW float64, level int) {
	if len(pc.Widths) == 0 || len(pc.Multipliers) == 0 {
		return
	}

	edge := pc.SpacingMargin
	type region struct {
		lo, hi float64
		count  int
	}
	regions := []region{
		{lo: edge, hi: screenW - edge, count: scale.PadCount(level)},
		{lo: t.mountainLeft + edge, hi: -edge, count: scale.OffscreenPads(level)},
		{lo: screenW + edge, hi: t.mountainRight - edge, count: scale.OffscreenPads(level)},
	}

	padIdx := 0
	for _, r := range regions {
		for k := 0; k < r.count; k++ {
			width := pc.Widths[padIdx%len(pc.Widths)]
			mult := pc.Multipliers[padIdx%len(pc.Multipliers)]
			padIdx++

			span := r.hi - r.lo - width
			if span <= 0 {
				continue
			}

			for attempt := 0; attempt < pc.PlacementAttempts; attempt++ {
				x := r.lo + rng.Float64()*span
				if !t.padFits(x, width, pc.SpacingMargin) {
					continue
				}
				t.pads = append(t.pads, Pad{
					X:          x,
					Y:          surfaceHeight(raw, x0, dx, x, x+width),
					Width:      width,
					Multiplier: mult,
				})
				break
			}
		}
	}
}

// padFits checks the minimum-spacing constraint against all placed pads.
func (t *Terrain) padFits(x, width, margin float64) bool {
	for _, p := range t.pads {
		if x < p.Right()+margin && p.X < x+width+margin {
			return false
		}
	}
	return true
}

// surfaceHeight returns the highest raw terrain point across [lo, hi], so the
// pad sits at or above the surrounding terrain, never buried. Y grows
// downward, so the highest point is the minimum sample.
func surfaceHeight(raw []float64, x0, dx, lo, hi float64) float64 {
	iLo := core.Clamp(int(math.Floor((lo-x0)/dx)), 0, len(raw)-1)
	iHi := core.Clamp(int(math.Ceil((hi-x0)/dx)), 0, len(raw)-1)
	best := raw[iLo]
	for i := iLo; i <= iHi; i++ {
		if raw[i] < best {
			best = raw[i]
		}
	}
	return best
}

// padInfluence returns the pad shaping sample x, and the blend factor toward
// the pad height: 1 inside the span, easing to 0 over blendDist outside it.
// Containment wins over any neighboring pad's blend zone, so samples inside a
// span always take the pad's flat height.
func (t *Terrain) padInfluence(x, blendDist float64) (*Pad, float64) {
	for i := range t.pads {
		p := &t.pads[i]
		if p.Contains(x) {
			return p, 1
		}
	}
	if blendDist <= 0 {
		return nil, 0
	}
	for i := range t.pads {
		p := &t.pads[i]
		if x < p.X && p.X-x <= blendDist {
			return p, 1 - (p.X-x)/blendDist
		}
		if x > p.Right() && x-p.Right() <= blendDist {
			return p, 1 - (x-p.Right())/blendDist
		}
	}
	return nil, 0
}

// HeightAt returns the terrain height at x by linear interpolation between
// the bracketing samples. Outside the sampled range the nearest edge sample
// extends as a constant.
func (t *Terrain) HeightAt(x float64) float64 {
	if t.terrainCount == 0 {
		return 0
	}
	first := t.samples[0]
	last := t.samples[t.terrainCount-1]
	if x <= first.X {
		return first.Y
	}
	if x >= last.X {
		return last.Y
	}

	i := sort.Search(t.terrainCount, func(i int) bool {
		return t.samples[i].X >= x
	})
	a := t.samples[i-1]
	b := t.samples[i]
	frac := (x - a.X) / (b.X - a.X)
	return core.Lerp(a.Y, b.Y, frac)
}

// CollidesWithTerrain reports whether either foot has reached or crossed the
// terrain surface (y grows downward).
func (t *Terrain) CollidesWithTerrain(leftFoot, rightFoot core.Vec2) bool {
	return leftFoot.Y >= t.HeightAt(leftFoot.X) || rightFoot.Y >= t.HeightAt(rightFoot.X)
}

// PadAt returns the pad containing both feet, or nil if the feet are not on
// the same pad.
func (t *Terrain) PadAt(leftFoot, rightFoot core.Vec2) *Pad {
	for i := range t.pads {
		p := &t.pads[i]
		if p.Contains(leftFoot.X) && p.Contains(rightFoot.X) {
			return p
		}
	}
	return nil
}

// InMountainZone reports whether x is at or beyond either mountain boundary.
// Presence there is an instant crash regardless of speed or angle.
func (t *Terrain) InMountainZone(x float64) bool {
	return x <= t.mountainLeft || x >= t.mountainRight
}

// MountainBounds returns the left and right mountain-zone boundaries.
func (t *Terrain) MountainBounds() (left, right float64) {
	return t.mountainLeft, t.mountainRight
}

// Samples returns the full polyline including the two closing polygon points.
func (t *Terrain) Samples() []core.Vec2 {
	return t.samples
}

// TerrainSamples returns only the samples participating in height queries.
func (t *Terrain) TerrainSamples() []core.Vec2 {
	return t.samples[:t.terrainCount]
}

// Pads returns the pads generated for this level.
func (t *Terrain) Pads() []Pad {
	return t.pads
}
