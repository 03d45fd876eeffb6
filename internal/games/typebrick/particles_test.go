package typebrick

import (
	"testing"

	"github.com/typebrick/typebrick/internal/core"
)

func TestParticleBurstAndDecay(t *testing.T) {
	ps := NewParticleSystem(1, 80, 24, 0.012, 0.97, 0.015, 0.035)

	ps.Burst(40, 12, 12, core.ColorBrightRed)

	if len(ps.Particles) != 12 {
		t.Fatalf("Burst should spawn 12 particles, got %d", len(ps.Particles))
	}
	for i, p := range ps.Particles {
		if p.Life != 1.0 {
			t.Errorf("Particle %d should start at full life, got %f", i, p.Life)
		}
		if p.Decay < 0.015 || p.Decay >= 0.035 {
			t.Errorf("Particle %d decay out of range, got %f", i, p.Decay)
		}
	}

	// Every particle burns out within 1/minDecay ticks
	for i := 0; i < 70; i++ {
		ps.StepParticles()
	}
	if len(ps.Particles) != 0 {
		t.Errorf("All particles should decay away, %d remain", len(ps.Particles))
	}
}

func TestParticleGravityAndDrag(t *testing.T) {
	ps := NewParticleSystem(1, 80, 24, 0.012, 0.97, 0.015, 0.035)

	ps.Particles = append(ps.Particles, Particle{
		X: 10, Y: 10, VX: 0.2, VY: 0, Life: 1.0, Decay: 0.001,
	})

	ps.StepParticles()

	p := ps.Particles[0]
	if p.X != 10.2 {
		t.Errorf("Particle should integrate VX, X=%f", p.X)
	}
	if p.VY <= 0 {
		t.Errorf("Gravity should pull VY downward, got %f", p.VY)
	}
	if p.VX >= 0.2 {
		t.Errorf("Drag should damp VX, got %f", p.VX)
	}
}

func TestStarfieldSeedAndWrap(t *testing.T) {
	ps := NewParticleSystem(1, 80, 24, 0.012, 0.97, 0.015, 0.035)

	ps.SeedStars(40, 0.02, 0.09)

	if len(ps.Stars) != 40 {
		t.Fatalf("SeedStars should place 40 stars, got %d", len(ps.Stars))
	}
	for i, s := range ps.Stars {
		if s.X < 0 || s.X >= 80 || s.Y < 0 || s.Y >= 24 {
			t.Errorf("Star %d seeded out of bounds at (%f, %f)", i, s.X, s.Y)
		}
		if s.Speed < 0.02 || s.Speed >= 0.09 {
			t.Errorf("Star %d speed out of range, got %f", i, s.Speed)
		}
	}

	// Push one star past the bottom: it must wrap to just above the top
	ps.Stars[0].Y = 23.99
	ps.Stars[0].Speed = 0.5
	ps.StepStars()

	if ps.Stars[0].Y >= 0 {
		t.Errorf("Star should wrap above the top edge, Y=%f", ps.Stars[0].Y)
	}
}

func TestParticleRenderDims(t *testing.T) {
	ps := NewParticleSystem(1, 80, 24, 0.012, 0.97, 0.015, 0.035)

	ps.Particles = append(ps.Particles,
		Particle{X: 10, Y: 10, Life: 1.0, Color: core.ColorBrightRed},
		Particle{X: 20, Y: 10, Life: 0.5, Color: core.ColorBrightRed},
		Particle{X: 30, Y: 10, Life: 0.1, Color: core.ColorBrightRed},
	)

	screen := core.NewScreen(80, 24)
	ps.Render(screen)

	if screen.Get(10, 10) != particleGlyphs[0] {
		t.Errorf("Fresh particle should use the brightest glyph, got %q", screen.Get(10, 10))
	}
	if screen.Get(20, 10) != particleGlyphs[1] {
		t.Errorf("Half-life particle should use the middle glyph, got %q", screen.Get(20, 10))
	}
	if screen.Get(30, 10) != particleGlyphs[2] {
		t.Errorf("Dying particle should use the dimmest glyph, got %q", screen.Get(30, 10))
	}
}
