package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// BlockView is a read-only copy of an alive block.
type BlockView struct {
	Shape core.Rect
	Color core.RGB
}

// Snapshot is a read-only copy of everything the renderer needs for one frame.
// It shares no memory with the game.
type Snapshot struct {
	Tick   uint64
	State  State
	Paused bool
	Score  int
	Level  int
	Speed  float64

	Width  float64
	Height float64

	Paddle core.Rect
	Ball   core.Circle
	BallDX int
	BallDY int
	Blocks []BlockView
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	alive := g.field.Alive()
	blocks := make([]BlockView, len(alive))
	for i, b := range alive {
		blocks[i] = BlockView{Shape: b.Shape, Color: b.Color}
	}

	return Snapshot{
		Tick:   g.tick,
		State:  g.state,
		Paused: g.paused,
		Score:  g.score,
		Level:  g.level,
		Speed:  g.speed,
		Width:  g.cfg.Playfield.Width,
		Height: g.cfg.Playfield.Height,
		Paddle: g.paddle.Shape,
		Ball:   g.ball.Shape,
		BallDX: g.ball.DX,
		BallDY: g.ball.DY,
		Blocks: blocks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDY) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + math.Float64bits(snap.Paddle.X)
	h = h*31 + math.Float64bits(snap.Ball.X)
	h = h*31 + math.Float64bits(snap.Ball.Y)

	for _, b := range snap.Blocks {
		h = h*31 + math.Float64bits(b.Shape.X)
		h = h*31 + math.Float64bits(b.Shape.Y)
		h = h*31 + (uint64(b.Color.R)<<16 | uint64(b.Color.G)<<8 | uint64(b.Color.B))
	}

	return h
}
