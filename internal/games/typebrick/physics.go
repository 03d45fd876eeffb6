package typebrick

import (
	"math"

	"github.com/typebrick/typebrick/internal/core"
)

// Separation applied after a brick bounce so the ball does not re-trigger
// the same overlap on the next tick.
const bounceBuffer = 0.05

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// CheckWallCollision reflects the ball off the left, right, and top walls.
// On penetration the coordinate snaps exactly to the boundary and the
// velocity component is forced inward, so a wall can never re-trigger on the
// following tick. The bottom has no wall; returns fellOff=true once the
// ball's center passes the bottom edge.
func CheckWallCollision(ball *Ball, topWall float64, screenW, screenH int) (side CollisionSide, fellOff bool) {
	r := ball.Radius

	if ball.X-r < 0 {
		ball.X = r
		ball.VX = math.Abs(ball.VX)
		return CollisionLeft, false
	}

	if ball.X+r > float64(screenW) {
		ball.X = float64(screenW) - r
		ball.VX = -math.Abs(ball.VX)
		return CollisionRight, false
	}

	if ball.Y-r < topWall {
		ball.Y = topWall + r
		ball.VY = math.Abs(ball.VY)
		return CollisionTop, false
	}

	if ball.Y > float64(screenH) {
		return CollisionBottom, true
	}

	return CollisionNone, false
}

// CheckPaddleCollision bounces a downward-moving ball off the paddle.
// The outgoing horizontal velocity is a linear function of where across the
// paddle the ball struck: fraction 0 (left edge) gives -speed, 0.5 (center)
// gives 0, 1 (right edge) gives +speed. Vertical velocity is forced upward
// and the ball snaps flush above the paddle. Returns true on hit.
func CheckPaddleCollision(ball *Ball, paddle *Paddle) bool {
	if ball.VY <= 0 {
		return false
	}

	if !ball.Bounds().Intersects(paddle.Rect()) {
		return false
	}

	fraction := (ball.X - paddle.Left()) / float64(paddle.Width)
	fraction = core.ClampF(fraction, 0, 1)

	ball.VX = ball.Speed * (fraction - 0.5) * 2
	ball.VY = -math.Abs(ball.VY)
	ball.Y = float64(paddle.Y) - ball.Radius

	return true
}

// ResolveBrickBounce reflects the ball off a brick it overlaps. The side is
// chosen by minimum penetration depth: the edge the ball has crossed least
// is the edge it actually entered through. The ball is repositioned flush
// against that edge plus bounceBuffer.
func ResolveBrickBounce(ball *Ball, brick core.FRect) CollisionSide {
	bounds := ball.Bounds()

	overlapLeft := bounds.Right() - brick.X
	overlapRight := brick.Right() - bounds.X
	overlapTop := bounds.Bottom() - brick.Y
	overlapBottom := brick.Bottom() - bounds.Y

	side := CollisionLeft
	depth := overlapLeft
	if overlapRight < depth {
		side = CollisionRight
		depth = overlapRight
	}
	if overlapTop < depth {
		side = CollisionTop
		depth = overlapTop
	}
	if overlapBottom < depth {
		side = CollisionBottom
	}

	switch side {
	case CollisionLeft:
		ball.X = brick.X - ball.Radius - bounceBuffer
		ball.VX = -math.Abs(ball.VX)
	case CollisionRight:
		ball.X = brick.Right() + ball.Radius + bounceBuffer
		ball.VX = math.Abs(ball.VX)
	case CollisionTop:
		ball.Y = brick.Y - ball.Radius - bounceBuffer
		ball.VY = -math.Abs(ball.VY)
	case CollisionBottom:
		ball.Y = brick.Bottom() + ball.Radius + bounceBuffer
		ball.VY = math.Abs(ball.VY)
	}

	return side
}

// TimeToImpact returns the earliest future time, in ticks, at which the
// ball's center crosses into the rectangle along its straight-line
// trajectory, and whether such a crossing exists. For each of the four
// boundary lines it solves t = (boundary - coord) / velocity (a zero
// velocity component means no crossing on that axis) and qualifies the
// crossing by checking the other-axis position at t against the
// rectangle's span.
func TimeToImpact(x, y, vx, vy float64, rect core.FRect) (float64, bool) {
	best := math.Inf(1)

	// Vertical boundaries: left and right edges
	if vx != 0 {
		for _, edge := range [2]float64{rect.X, rect.Right()} {
			t := (edge - x) / vx
			if t <= 0 {
				continue
			}
			yAt := y + vy*t
			if yAt >= rect.Y && yAt <= rect.Bottom() && t < best {
				best = t
			}
		}
	}

	// Horizontal boundaries: top and bottom edges
	if vy != 0 {
		for _, edge := range [2]float64{rect.Y, rect.Bottom()} {
			t := (edge - y) / vy
			if t <= 0 {
				continue
			}
			xAt := x + vx*t
			if xAt >= rect.X && xAt <= rect.Right() && t < best {
				best = t
			}
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
