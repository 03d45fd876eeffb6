package typebrick

import (
	"fmt"
	"math"

	"github.com/typebrick/typebrick/internal/config"
	"github.com/typebrick/typebrick/internal/core"
	"github.com/typebrick/typebrick/internal/registry"
)

// GameState constants
const (
	StateStart    = "start"    // Title screen, waiting for launch
	StateRunning  = "running"  // Ball in play
	StatePaused   = "paused"   // Game paused, decorations still animate
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All bricks cleared
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the TypeBrick game logic.
type Game struct {
	letterMode bool

	// Game objects
	paddle    *Paddle
	ball      *Ball
	grid      *Grid
	particles *ParticleSystem

	// Typing state: last press timestamp per letter a-z in simulated
	// milliseconds, -1 when never pressed.
	lastPress [26]float64

	// Game state
	state       string
	score       int
	lives       int
	tickCount   int
	targetIndex int

	// Gameplay RNG: letter assignment and launch angles. Cosmetic
	// randomness lives in the particle system.
	rng *SimpleRNG

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.GameConfig

	// Layout (computed from screen size)
	topWall        float64 // Y of the top wall below the HUD
	brickAreaTop   int     // Y row where bricks start
	paddleY        int     // Y row of the paddle
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game in letter mode.
func New() *Game {
	return &Game{letterMode: true}
}

// NewClassic creates a new game in classic mode (no typing challenge).
func NewClassic() *Game {
	return &Game{letterMode: false}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if !g.letterMode {
		return "typebrick_classic"
	}
	return "typebrick"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if !g.letterMode {
		return "TypeBrick (Classic)"
	}
	return "TypeBrick"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.calculateLayout()

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.targetIndex = -1
	for i := range g.lastPress {
		g.lastPress[i] = -1
	}

	g.rng = NewSimpleRNG(runtime.Seed)

	// Paddle width follows the playfield width, standing in for the
	// original's device-class sizing.
	paddleWidth := core.Clamp(
		int(float64(runtime.ScreenW)*cfg.Paddle.WidthFraction),
		cfg.Paddle.MinWidth, cfg.Paddle.MaxWidth)
	g.paddle = &Paddle{
		X:     float64(runtime.ScreenW-paddleWidth) / 2,
		Y:     g.paddleY,
		Width: paddleWidth,
		Speed: cfg.Physics.PaddleSpeed,
	}

	g.grid = NewGrid(cfg.Bricks.Rows, cfg.Bricks.Cols, runtime.ScreenW,
		g.brickAreaTop, cfg.Bricks.RowPoints, g.letterMode, g.rng)

	g.ball = &Ball{
		Radius: cfg.Physics.BallRadius,
		Speed:  cfg.Physics.BallSpeed,
	}
	g.respawnBall()

	// Cosmetic RNG gets a derived seed so gameplay and decoration streams
	// stay independent.
	g.particles = NewParticleSystem(runtime.Seed^0x5DEECE66D, runtime.ScreenW, runtime.ScreenH,
		cfg.Particles.Gravity, cfg.Particles.Drag, cfg.Particles.MinDecay, cfg.Particles.MaxDecay)
	g.particles.SeedStars(cfg.Stars.Count, cfg.Stars.MinSpeed, cfg.Stars.MaxSpeed)

	g.state = StateStart
}

// calculateLayout computes brick and paddle positions based on screen size.
func (g *Game) calculateLayout() {
	// HUD takes the top 2 rows; the top wall sits just below it.
	g.topWall = 2
	g.brickAreaTop = 2
	g.paddleY = g.runtime.ScreenH - 2
}

// nowMs returns the current simulated time in milliseconds.
func (g *Game) nowMs() float64 {
	return float64(g.tickCount) * g.runtime.MsPerTick()
}

// respawnBall places the ball at its fixed spawn point above the paddle and
// launches it upward at a random angle within the configured spread of
// straight up.
func (g *Game) respawnBall() {
	g.ball.X = float64(g.runtime.ScreenW) / 2
	g.ball.Y = float64(g.paddleY - 2)

	spread := g.cfg.Physics.LaunchAngleDeg * math.Pi / 180
	angle := (g.rng.Float64()*2 - 1) * spread
	g.ball.VX = g.ball.Speed * math.Sin(angle)
	g.ball.VY = -g.ball.Speed * math.Cos(angle)
}

// clearTarget drops the predictive target, if any.
func (g *Game) clearTarget() {
	g.grid.ClearTargets()
	g.targetIndex = -1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	terminal := g.state == StateGameOver || g.state == StateWin

	// Handle restart
	if in.Has(core.ActionRestart) && terminal {
		mode := g.letterMode
		g.Reset(g.runtime)
		g.letterMode = mode
		return core.StepResult{State: g.State()}
	}

	// Mode can toggle any time outside the terminal screens. It changes the
	// destruction and targeting rules, not the state machine.
	if in.Has(core.ActionMode) && !terminal {
		g.letterMode = !g.letterMode
		if g.letterMode {
			g.grid.AssignLetters(g.rng)
		} else {
			g.clearTarget()
		}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StateRunning
		} else if g.state == StateRunning {
			g.state = StatePaused
		}
	}

	// Handle launch from the title screen
	if g.state == StateStart && in.Has(core.ActionStart) {
		g.state = StateRunning
	}

	if g.state == StateRunning {
		g.tickCount++
		g.recordTypingInput(in)
		g.updatePaddle(in)
		g.updateBall()
		g.particles.StepStars()
	} else {
		// Decorations keep moving on the title, pause, and end screens.
		g.particles.StepStars()
	}

	// Particles always advance, even while frozen.
	g.particles.StepParticles()

	return core.StepResult{State: g.State()}
}

// recordTypingInput stamps letter presses and taps with the current
// simulated time. A tap on the target brick counts as solving it; any other
// tap nudges the paddle toward the tapped side.
func (g *Game) recordTypingInput(in core.InputFrame) {
	now := g.nowMs()

	for _, r := range in.Letters {
		if r >= 'a' && r <= 'z' {
			g.lastPress[r-'a'] = now
		}
	}

	if !in.HasTap {
		return
	}

	if g.letterMode {
		if idx := g.grid.BrickAt(in.TapX, in.TapY); idx >= 0 && g.grid.Bricks[idx].Target {
			g.grid.Bricks[idx].TappedAtMs = now
			return
		}
	}

	// Discretized paddle nudge toward the tapped side.
	nudge := g.paddle.Speed * 4
	if in.TapX < g.runtime.ScreenW/2 {
		g.paddle.X -= nudge
	} else {
		g.paddle.X += nudge
	}
	g.clampPaddle()
}

// updatePaddle handles paddle movement.
func (g *Game) updatePaddle(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.paddle.X -= g.paddle.Speed
	}
	if in.Has(core.ActionRight) {
		g.paddle.X += g.paddle.Speed
	}
	g.clampPaddle()
}

func (g *Game) clampPaddle() {
	g.paddle.X = core.ClampF(g.paddle.X, 0, float64(g.runtime.ScreenW-g.paddle.Width))
}

// updateBall integrates ball motion and runs the collision, scoring, and
// targeting sweep for one tick.
func (g *Game) updateBall() {
	g.ball.Move()

	_, fellOff := CheckWallCollision(g.ball, g.topWall, g.runtime.ScreenW, g.runtime.ScreenH)
	if fellOff {
		g.loseLife()
		return
	}

	CheckPaddleCollision(g.ball, g.paddle)

	g.sweepBricks()

	if g.state != StateWin && g.letterMode {
		g.targetIndex = SelectTarget(g.grid, g.ball, g.runtime.MsPerTick(),
			float64(g.cfg.Gameplay.ResponseWindowMs))
	}
}

// sweepBricks tests the ball against every alive brick. Overlap is checked
// against the ball's position at the start of the sweep, and the bounce is
// resolved once, so a repositioned ball cannot chain into neighboring bricks
// within the same tick. Points from the sweep accumulate into a pending
// delta applied to the score once, so simultaneous hits cannot double-apply.
func (g *Game) sweepBricks() {
	pending := 0
	bounds := g.ball.Bounds()
	bounced := false

	for i := range g.grid.Bricks {
		brick := &g.grid.Bricks[i]
		if !brick.Alive {
			continue
		}

		rect := g.grid.Rect(i)
		if !bounds.Intersects(rect) {
			continue
		}

		if g.destructionEligible(brick) {
			brick.Alive = false
			pending += brick.Points
			cx := rect.X + rect.W/2
			cy := rect.Y + rect.H/2
			g.particles.Burst(cx, cy, g.cfg.Particles.BurstCount, brick.Color)
			if brick.Target {
				g.clearTarget()
			}
		}

		// Positional response is independent of destruction: a surviving
		// brick and a freshly broken one both deflect the ball.
		if !bounced {
			ResolveBrickBounce(g.ball, rect)
			bounced = true
		}
	}

	if pending > 0 {
		g.score += pending
	}

	if g.grid.CountAlive() == 0 {
		g.state = StateWin
		g.clearTarget()
	}
}

// destructionEligible reports whether an overlapped brick breaks. Classic
// mode: always. Letter mode: only when the brick's letter was pressed, or
// the brick tapped, within the response window before now.
func (g *Game) destructionEligible(brick *Brick) bool {
	if !g.letterMode {
		return true
	}

	now := g.nowMs()
	window := float64(g.cfg.Gameplay.ResponseWindowMs)

	if brick.Letter >= 'a' && brick.Letter <= 'z' {
		if lp := g.lastPress[brick.Letter-'a']; lp >= 0 && now-lp <= window {
			return true
		}
	}
	if brick.TappedAtMs >= 0 && now-brick.TappedAtMs <= window {
		return true
	}
	return false
}

// loseLife handles the ball crossing the bottom edge.
func (g *Game) loseLife() {
	if g.lives > 0 {
		g.lives--
	}
	g.clearTarget()

	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		return
	}

	g.respawnBall()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	// Stars and particles sit behind everything.
	g.particles.Render(dst)

	if g.state == StateStart {
		g.renderTitle(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderTitle draws the start screen.
func (g *Game) renderTitle(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCenteredColored(h/2-3, "T Y P E B R I C K", core.ColorBrightYellow)
	if g.letterMode {
		dst.DrawTextCentered(h/2-1, "Type the glowing brick's letter before the ball lands")
	} else {
		dst.DrawTextCentered(h/2-1, "Classic rules: every hit breaks a brick")
	}
	dst.DrawTextCenteredColored(h/2+1, "Press SPACE to start", core.ColorBrightGreen)
	dst.DrawTextCentered(h/2+3, "A/D or arrows move  |  M toggles mode  |  P pauses")
}

// renderHUD draws the score, lives, mode label, and target hint.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	mode := "Letters"
	if !g.letterMode {
		mode = "Classic"
	}
	modeText := fmt.Sprintf("Mode: %s", mode)
	dst.DrawText(dst.Width()-len(modeText)-1, 0, modeText)

	// Separator row doubles as the target hint line.
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
	if g.letterMode && g.targetIndex >= 0 {
		letter := g.grid.Bricks[g.targetIndex].Letter
		hint := fmt.Sprintf(" TYPE %c (or tap it) ", letter-'a'+'A')
		dst.DrawTextCenteredColored(1, hint, core.ColorBrightYellow)
	}
}

// renderBricks draws all alive bricks. In letter mode the brick's letter
// shows in its center cell; the predictive target is highlighted.
func (g *Game) renderBricks(dst *core.Screen) {
	for i := range g.grid.Bricks {
		brick := &g.grid.Bricks[i]
		if !brick.Alive {
			continue
		}

		rect := g.grid.Rect(i)
		x := int(rect.X)
		y := int(rect.Y)

		fill := '█'
		color := brick.Color
		if brick.Target {
			fill = '▓'
			color = core.ColorBrightWhite
		}

		for dx := 0; dx < g.grid.BrickW; dx++ {
			dst.SetCell(x+dx, y, fill, color)
		}

		if g.letterMode && brick.Letter != 0 {
			letterColor := brick.Color
			if brick.Target {
				letterColor = core.ColorBrightYellow
			}
			dst.SetCell(x+g.grid.BrickW/2, y, brick.Letter-'a'+'A', letterColor)
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	paddleX := g.paddle.CellX()
	for i := range g.paddle.Width {
		dst.SetCell(paddleX+i, g.paddle.Y, PaddleChar, core.ColorBrightCyan)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	dst.SetCell(g.ball.CellX(), g.ball.CellY(), BallChar, core.ColorBrightWhite)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Lives:      g.lives,
		GameOver:   g.state == StateGameOver || g.state == StateWin,
		Won:        g.state == StateWin,
		Running:    g.state == StateRunning,
		Paused:     g.state == StatePaused,
		LetterMode: g.letterMode,
	}
}

// Register the game variants with the registry
func init() {
	registry.Register("typebrick", func() registry.Game {
		return New()
	})
	registry.Register("typebrick_classic", func() registry.Game {
		return NewClassic()
	})
}
