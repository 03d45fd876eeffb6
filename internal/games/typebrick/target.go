package typebrick

// SelectTarget flags the brick the ball is predicted to strike soonest,
// provided the predicted impact falls within the response window. Among all
// alive bricks the smallest positive predicted time wins; at most one brick
// is flagged, and flagging a new target clears the previous one. Returns the
// new target index, or -1 when no brick qualifies.
//
// Only meaningful in letter mode; classic mode never calls this.
func SelectTarget(grid *Grid, ball *Ball, msPerTick float64, windowMs float64) int {
	bestIdx := -1
	bestMs := windowMs

	for i := range grid.Bricks {
		if !grid.Bricks[i].Alive {
			continue
		}
		t, ok := TimeToImpact(ball.X, ball.Y, ball.VX, ball.VY, grid.Rect(i))
		if !ok {
			continue
		}
		ms := t * msPerTick
		if ms <= bestMs {
			bestMs = ms
			bestIdx = i
		}
	}

	current := grid.TargetIndex()
	if current != bestIdx {
		grid.ClearTargets()
		if bestIdx >= 0 {
			grid.Bricks[bestIdx].Target = true
		}
	}

	return bestIdx
}
