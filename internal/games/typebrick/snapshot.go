package typebrick

import "math"

// Snapshot contains the complete gameplay state for replay and save support.
// Floats are stored as their IEEE 754 bit patterns so the snapshot is exact
// and serializes stably. Cosmetic state (particles, stars) is excluded on
// purpose: it never feeds back into gameplay.
type Snapshot struct {
	Tick        uint64
	PaddleX     uint64 // float bits
	PaddleWidth int
	BallX       uint64 // float bits
	BallY       uint64 // float bits
	BallVX      uint64 // float bits
	BallVY      uint64 // float bits
	Score       int
	Lives       int
	State       string
	LetterMode  bool
	TargetIndex int

	// Per-letter last press timestamps (26 float bit patterns, a-z)
	LastPress []uint64

	// Brick states (row-major: row*cols + col = index)
	// Each brick is 3 values: Alive (0/1), Letter (code point), TappedAtMs bits
	BrickData []uint64

	// RNG state for gameplay randomness
	RNGState uint64
}

// Snapshot returns the current gameplay state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]uint64, len(g.grid.Bricks)*3)
	for i := range g.grid.Bricks {
		b := &g.grid.Bricks[i]
		idx := i * 3
		if b.Alive {
			brickData[idx] = 1
		}
		brickData[idx+1] = uint64(b.Letter) //#nosec G115 -- letters are a-z
		brickData[idx+2] = math.Float64bits(b.TappedAtMs)
	}

	lastPress := make([]uint64, len(g.lastPress))
	for i, v := range g.lastPress {
		lastPress[i] = math.Float64bits(v)
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:     math.Float64bits(g.paddle.X),
		PaddleWidth: g.paddle.Width,
		BallX:       math.Float64bits(g.ball.X),
		BallY:       math.Float64bits(g.ball.Y),
		BallVX:      math.Float64bits(g.ball.VX),
		BallVY:      math.Float64bits(g.ball.VY),
		Score:       g.score,
		Lives:       g.lives,
		State:       g.state,
		LetterMode:  g.letterMode,
		TargetIndex: g.targetIndex,
		LastPress:   lastPress,
		BrickData:   brickData,
		RNGState:    g.rng.state,
	}
}

// ApplySnapshot restores gameplay state from a snapshot. The grid geometry is
// untouched; only per-brick state is restored, so the snapshot must come from
// a game reset with the same configuration and screen size.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.paddle.X = math.Float64frombits(snap.PaddleX)
	g.paddle.Width = snap.PaddleWidth
	g.ball.X = math.Float64frombits(snap.BallX)
	g.ball.Y = math.Float64frombits(snap.BallY)
	g.ball.VX = math.Float64frombits(snap.BallVX)
	g.ball.VY = math.Float64frombits(snap.BallVY)
	g.score = snap.Score
	g.lives = snap.Lives
	g.state = snap.State
	g.letterMode = snap.LetterMode
	g.targetIndex = snap.TargetIndex

	for i := range g.lastPress {
		if i < len(snap.LastPress) {
			g.lastPress[i] = math.Float64frombits(snap.LastPress[i])
		}
	}

	if g.grid != nil && len(snap.BrickData) == len(g.grid.Bricks)*3 {
		for i := range g.grid.Bricks {
			idx := i * 3
			g.grid.Bricks[i].Alive = snap.BrickData[idx] == 1
			g.grid.Bricks[i].Letter = rune(snap.BrickData[idx+1]) //#nosec G115 -- letters are a-z
			g.grid.Bricks[i].TappedAtMs = math.Float64frombits(snap.BrickData[idx+2])
		}
		g.grid.ClearTargets()
		if g.targetIndex >= 0 && g.targetIndex < len(g.grid.Bricks) {
			g.grid.Bricks[g.targetIndex].Target = true
		}
	}

	g.rng.state = snap.RNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + snap.PaddleX
	h = h*31 + uint64(snap.PaddleWidth) //#nosec G115 -- hash computation
	h = h*31 + snap.BallX
	h = h*31 + snap.BallY
	h = h*31 + snap.BallVX
	h = h*31 + snap.BallVY
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	if snap.LetterMode {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	h = h*31 + uint64(snap.TargetIndex+1) //#nosec G115 -- index >= -1

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}

	for _, v := range snap.LastPress {
		h = h*31 + v
	}

	for _, v := range snap.BrickData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
