package typebrick

import (
	"math"

	"github.com/typebrick/typebrick/internal/core"
)

// ParticleSystem owns the explosion particles and the background starfield.
// Both are pure decoration: they never touch collision or scoring, and they
// keep animating while the game is paused or on a terminal screen. The
// system has its own RNG so cosmetic effects never perturb gameplay
// determinism.
type ParticleSystem struct {
	Particles []Particle
	Stars     []Star

	rng     *SimpleRNG
	screenW int
	screenH int

	gravity  float64
	drag     float64
	minDecay float64
	maxDecay float64
}

// NewParticleSystem creates an empty system with the given cosmetic seed.
func NewParticleSystem(seed int64, screenW, screenH int, gravity, drag, minDecay, maxDecay float64) *ParticleSystem {
	return &ParticleSystem{
		rng:      NewSimpleRNG(seed),
		screenW:  screenW,
		screenH:  screenH,
		gravity:  gravity,
		drag:     drag,
		minDecay: minDecay,
		maxDecay: maxDecay,
	}
}

// SeedStars populates the starfield with count stars scattered across the
// whole playfield. Called on every game reset.
func (ps *ParticleSystem) SeedStars(count int, minSpeed, maxSpeed float64) {
	ps.Stars = ps.Stars[:0]
	for i := 0; i < count; i++ {
		ps.Stars = append(ps.Stars, Star{
			X:     ps.rng.Float64() * float64(ps.screenW),
			Y:     ps.rng.Float64() * float64(ps.screenH),
			Speed: ps.rng.RangeF(minSpeed, maxSpeed),
			Glyph: starGlyphs[ps.rng.Intn(len(starGlyphs))],
		})
	}
}

// Burst spawns an explosion of count particles at (x, y) in the given color.
func (ps *ParticleSystem) Burst(x, y float64, count int, color core.Color) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.rng.RangeF(0.05, 0.35)
		ps.Particles = append(ps.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Color: color,
			Life:  1.0,
			Decay: ps.rng.RangeF(ps.minDecay, ps.maxDecay),
		})
	}
}

// StepParticles advances every particle by one tick: integrate position,
// apply gravity to the vertical velocity, damp both components, burn life.
// Particles whose life reaches zero are dropped.
func (ps *ParticleSystem) StepParticles() {
	alive := ps.Particles[:0]
	for _, p := range ps.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ps.gravity
		p.VX *= ps.drag
		p.VY *= ps.drag
		p.Life -= p.Decay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.Particles = alive
}

// StepStars drifts the starfield down one tick. A star exiting the bottom
// wraps to a random column just above the top edge.
func (ps *ParticleSystem) StepStars() {
	for i := range ps.Stars {
		ps.Stars[i].Y += ps.Stars[i].Speed
		if ps.Stars[i].Y >= float64(ps.screenH) {
			ps.Stars[i].Y = -ps.rng.Float64() * 2
			ps.Stars[i].X = ps.rng.Float64() * float64(ps.screenW)
		}
	}
}

// Resize updates the bounds used for star wrapping.
func (ps *ParticleSystem) Resize(screenW, screenH int) {
	ps.screenW = screenW
	ps.screenH = screenH
}

// Render draws stars under particles. Particle glyphs dim as life burns out.
func (ps *ParticleSystem) Render(dst *core.Screen) {
	for i := range ps.Stars {
		s := &ps.Stars[i]
		dst.SetCell(int(s.X), int(s.Y), s.Glyph, core.ColorGray)
	}
	for i := range ps.Particles {
		p := &ps.Particles[i]
		glyph := particleGlyphs[0]
		switch {
		case p.Life < 1.0/3:
			glyph = particleGlyphs[2]
		case p.Life < 2.0/3:
			glyph = particleGlyphs[1]
		}
		dst.SetCell(int(p.X), int(p.Y), glyph, p.Color)
	}
}
