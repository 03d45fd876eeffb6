// Package typebrick implements a brick-breaker where, in letter mode, each
// brick carries a letter the player must type within a response window
// before the ball strikes it.
package typebrick

import (
	"github.com/typebrick/typebrick/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// Particle glyphs from brightest (fresh) to dimmest (fading).
var particleGlyphs = []rune{'*', '+', '·'}

// Star glyphs, mixed for visual variety.
var starGlyphs = []rune{'·', '.', '✦'}

// Paddle is the player's paddle. X is the left edge in float cell units;
// Y is a fixed row near the bottom of the playfield.
type Paddle struct {
	X     float64
	Y     int
	Width int
	Speed float64 // Cells per tick
}

// Left returns the paddle's left edge.
func (p *Paddle) Left() float64 {
	return p.X
}

// Right returns the paddle's right edge.
func (p *Paddle) Right() float64 {
	return p.X + float64(p.Width)
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + float64(p.Width)/2
}

// CellX returns the paddle's left edge in cell coordinates.
func (p *Paddle) CellX() int {
	return int(p.X)
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.FRect {
	return core.NewFRect(p.X, float64(p.Y), float64(p.Width), 1)
}

// Ball is the ball state in float cell coordinates. X, Y is the center.
type Ball struct {
	X, Y   float64
	VX, VY float64 // Velocity per tick
	Radius float64
	Speed  float64 // Base speed magnitude, cells per tick
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int {
	return int(b.X)
}

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int {
	return int(b.Y)
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() core.FRect {
	return core.NewFRect(b.X-b.Radius, b.Y-b.Radius, b.Radius*2, b.Radius*2)
}

// Particle is a short-lived cosmetic fragment spawned when a brick explodes.
// Life runs from 1 down to 0; the particle is removed once it reaches 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  core.Color
	Life   float64
	Decay  float64 // Life lost per tick
}

// Star is a decorative background star drifting slowly downward.
type Star struct {
	X, Y  float64
	Speed float64 // Cells per tick
	Glyph rune
}
