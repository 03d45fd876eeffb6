package typebrick

import (
	"github.com/typebrick/typebrick/internal/core"
)

// Brick is a single brick in the grid. Letters are assigned at grid creation
// in letter mode. TappedAtMs records the last tap on this brick (touch
// input); letter presses are tracked per letter on the Game instead, since a
// key press matches every brick carrying that letter.
type Brick struct {
	Row, Col   int
	Color      core.Color
	Points     int
	Alive      bool
	Letter     rune
	Target     bool    // Current predictive typing target
	TappedAtMs float64 // Last tap timestamp, -1 when never tapped
}

// Brick row colors, cycled top to bottom.
var brickRowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// Grid is the brick field. Bricks are laid out in a fixed rows x cols matrix
// starting at the top of the play area; geometry is derived from the screen
// size at reset.
type Grid struct {
	Rows, Cols int
	Bricks     []Brick // Row-major, len = Rows*Cols

	// Layout in cells
	Top        int     // Y row where bricks start
	BrickW     int     // Width of each brick
	BrickH     int     // Height of each brick
	OffsetX    float64 // Left margin to center the grid
	fieldWidth int
}

// NewGrid creates a fully populated grid. rowPoints gives points per row from
// the top; its last value repeats for any extra rows. In letter mode every
// brick gets a random letter from rng.
func NewGrid(rows, cols, screenW, top int, rowPoints []int, letterMode bool, rng *SimpleRNG) *Grid {
	brickW := screenW / cols
	if brickW < 2 {
		brickW = 2
	}
	offsetX := float64(screenW-brickW*cols) / 2

	g := &Grid{
		Rows:       rows,
		Cols:       cols,
		Bricks:     make([]Brick, rows*cols),
		Top:        top,
		BrickW:     brickW,
		BrickH:     1,
		OffsetX:    offsetX,
		fieldWidth: screenW,
	}

	for row := 0; row < rows; row++ {
		points := 1
		if len(rowPoints) > 0 {
			if row < len(rowPoints) {
				points = rowPoints[row]
			} else {
				points = rowPoints[len(rowPoints)-1]
			}
		}
		for col := 0; col < cols; col++ {
			b := Brick{
				Row:        row,
				Col:        col,
				Color:      brickRowColors[row%len(brickRowColors)],
				Points:     points,
				Alive:      true,
				TappedAtMs: -1,
			}
			if letterMode {
				b.Letter = rng.Letter()
			}
			g.Bricks[row*cols+col] = b
		}
	}

	return g
}

// AssignLetters gives every brick a fresh random letter. Used when toggling
// into letter mode mid-session on a grid built without letters.
func (g *Grid) AssignLetters(rng *SimpleRNG) {
	for i := range g.Bricks {
		if g.Bricks[i].Letter == 0 {
			g.Bricks[i].Letter = rng.Letter()
		}
	}
}

// Rect returns the bounding box of the brick at the given index.
func (g *Grid) Rect(idx int) core.FRect {
	b := &g.Bricks[idx]
	x := g.OffsetX + float64(b.Col*g.BrickW)
	y := float64(g.Top + b.Row*g.BrickH)
	return core.NewFRect(x, y, float64(g.BrickW), float64(g.BrickH))
}

// CountAlive returns the number of remaining bricks.
func (g *Grid) CountAlive() int {
	count := 0
	for i := range g.Bricks {
		if g.Bricks[i].Alive {
			count++
		}
	}
	return count
}

// ClearTargets drops the target flag from every brick.
func (g *Grid) ClearTargets() {
	for i := range g.Bricks {
		g.Bricks[i].Target = false
	}
}

// TargetIndex returns the index of the flagged target brick, or -1.
func (g *Grid) TargetIndex() int {
	for i := range g.Bricks {
		if g.Bricks[i].Target {
			return i
		}
	}
	return -1
}

// BrickAt returns the index of the alive brick containing the given cell
// position, or -1. Used to resolve taps.
func (g *Grid) BrickAt(x, y int) int {
	for i := range g.Bricks {
		if !g.Bricks[i].Alive {
			continue
		}
		r := g.Rect(i)
		if float64(x) >= r.X && float64(x) < r.Right() &&
			float64(y) >= r.Y && float64(y) < r.Bottom() {
			return i
		}
	}
	return -1
}
