package typebrick

import (
	"testing"
)

func targetTestGrid() *Grid {
	rng := NewSimpleRNG(1)
	return NewGrid(2, 4, 40, 2, []int{5, 1}, true, rng)
}

func TestSelectTargetNearestWithinWindow(t *testing.T) {
	grid := targetTestGrid()
	msPerTick := 1000.0 / 60

	// Ball straight under brick (1, 1), moving up. The bottom row brick is
	// reached first; it must win over the row above it.
	rect := grid.Rect(1*grid.Cols + 1)
	ball := &Ball{X: rect.X + rect.W/2, Y: rect.Bottom() + 3, VX: 0, VY: -0.5, Radius: 0.5, Speed: 0.5}

	idx := SelectTarget(grid, ball, msPerTick, 500)

	if idx != 1*grid.Cols+1 {
		t.Fatalf("Nearest brick on the path should be the target, got %d", idx)
	}
	if !grid.Bricks[idx].Target {
		t.Error("Selected brick should carry the target flag")
	}

	// Exactly one flagged brick
	count := 0
	for i := range grid.Bricks {
		if grid.Bricks[i].Target {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Exactly one brick may be flagged, got %d", count)
	}
}

func TestSelectTargetOutsideWindow(t *testing.T) {
	grid := targetTestGrid()
	msPerTick := 1000.0 / 60

	// Impact in 3 cells / 0.02 cells per tick = 150 ticks = 2500ms, far past
	// a 500ms window.
	rect := grid.Rect(1*grid.Cols + 1)
	ball := &Ball{X: rect.X + rect.W/2, Y: rect.Bottom() + 3, VX: 0, VY: -0.02, Radius: 0.5, Speed: 0.02}

	idx := SelectTarget(grid, ball, msPerTick, 500)

	if idx != -1 {
		t.Errorf("Impact beyond the window should leave no target, got %d", idx)
	}
	if grid.TargetIndex() != -1 {
		t.Error("No brick should carry the target flag")
	}
}

func TestSelectTargetMovesWithTrajectory(t *testing.T) {
	grid := targetTestGrid()
	msPerTick := 1000.0 / 60

	first := 1*grid.Cols + 0
	second := 1*grid.Cols + 2

	r1 := grid.Rect(first)
	ball := &Ball{X: r1.X + r1.W/2, Y: r1.Bottom() + 2, VX: 0, VY: -0.5, Radius: 0.5, Speed: 0.5}
	if idx := SelectTarget(grid, ball, msPerTick, 500); idx != first {
		t.Fatalf("First selection should flag brick %d, got %d", first, idx)
	}

	// The ball bounces elsewhere: the old flag must clear before the new one
	r2 := grid.Rect(second)
	ball.X = r2.X + r2.W/2
	if idx := SelectTarget(grid, ball, msPerTick, 500); idx != second {
		t.Fatalf("Retarget should flag brick %d, got %d", second, idx)
	}
	if grid.Bricks[first].Target {
		t.Error("Previous target flag should be cleared on retarget")
	}
}

func TestSelectTargetSkipsDeadBricks(t *testing.T) {
	grid := targetTestGrid()
	msPerTick := 1000.0 / 60

	bottom := 1*grid.Cols + 1
	above := 0*grid.Cols + 1
	grid.Bricks[bottom].Alive = false

	rect := grid.Rect(bottom)
	ball := &Ball{X: rect.X + rect.W/2, Y: rect.Bottom() + 3, VX: 0, VY: -0.5, Radius: 0.5, Speed: 0.5}

	idx := SelectTarget(grid, ball, msPerTick, 500)

	if idx != above {
		t.Errorf("Dead bricks are skipped; the brick behind should be the target, got %d", idx)
	}
}
