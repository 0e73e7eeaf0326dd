package arkanoid

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// State is the session state.
type State string

// State constants
const (
	StatePlaying  State = "playing"  // Ball in play
	StateGameOver State = "gameover" // Ball fell out; terminal
)

// Game is the level/session controller. It exclusively owns the paddle, ball,
// block field and session counters. It is not safe for concurrent use; the
// platform calls Step once per frame from a single goroutine.
type Game struct {
	cfg     config.ArkanoidConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	// Game objects
	paddle Paddle
	ball   Ball
	field  *BlockField

	// Session state
	state    State
	score    int
	level    int
	speed    float64 // Derived from cfg.Ball.BaseSpeed at each level start
	paused   bool
	tick     uint64
	finished bool // Finish has handed the session to the leaderboard
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.ArkanoidConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arkanoid"
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)) //#nosec G115,G404 -- cosmetic, not crypto

	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	g.paddle = Paddle{
		Shape: core.NewRect(math.Floor(w/2), g.cfg.Paddle.Y, g.cfg.Paddle.Width, g.cfg.Paddle.Height),
	}

	g.ball = Ball{Shape: core.NewCircle(0, 0, g.cfg.Ball.Radius)}
	g.ball.Respawn(g.rng, w, h)

	g.field = NewBlockField(g.cfg.Blocks, h, g.rng)

	g.state = StatePlaying
	g.score = 0
	g.level = 1
	g.speed = g.cfg.Ball.BaseSpeed
	g.paused = false
	g.tick = 0
	g.finished = false

	g.field.Generate(g.level)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Nothing moves after the session has ended
	if g.state == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	// The latest command persists until superseded, including across a pause
	if d, ok := in.Direction(); ok {
		g.paddle.SetDirection(d, g.cfg.Paddle.Speed)
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	g.paddle.Advance(w)
	g.ball.Advance(g.speed)

	contacts := Resolve(&g.ball, &g.paddle, g.field, w, h)
	g.score += contacts.BlocksHit

	result := core.StepResult{BlocksHit: contacts.BlocksHit}

	// Falling out takes priority over clearing the field
	if g.ball.Shape.Bottom() < 0 {
		g.state = StateGameOver
		result.State = g.State()
		return result
	}

	if g.field.IsEmpty() {
		g.advanceLevel()
		result.LevelCleared = true
	}

	result.State = g.State()
	return result
}

// advanceLevel moves to the next level within the current tick.
func (g *Game) advanceLevel() {
	g.level++
	g.speed = g.cfg.Ball.BaseSpeed + float64(g.level)
	g.ball.Respawn(g.rng, g.cfg.Playfield.Width, g.cfg.Playfield.Height)
	g.field.Generate(g.level)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
	}
}
