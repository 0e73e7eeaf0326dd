package arkanoid

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// Contacts reports what the ball touched during one resolution pass.
type Contacts struct {
	Wall      bool
	Ceiling   bool
	Paddle    bool
	BlocksHit int // Blocks removed this pass
}

// Resolve runs collision detection and response for one tick, in a fixed order:
// side walls, ceiling, paddle, blocks. Each axis can flip at most once per check,
// and a multi-block hit flips DY once while every block removed is counted.
// The floor is not handled here; falling out is a game-over condition.
func Resolve(ball *Ball, paddle *Paddle, field *BlockField, width, height float64) Contacts {
	var c Contacts

	if ball.Shape.Left() <= 0 || ball.Shape.Right() >= width {
		ball.ReflectX()
		c.Wall = true
	}

	if ball.Shape.Top() >= height {
		ball.ReflectY()
		c.Ceiling = true
	}

	// Only a descending ball bounces, so a ball still inside the paddle on the
	// next tick does not flip back down.
	if ball.DY < 0 && core.CircleRectOverlap(ball.Shape, paddle.Shape) {
		ball.ReflectY()
		c.Paddle = true
	}

	hits := field.Overlapping(ball.Shape)
	for _, b := range hits {
		if field.Remove(b) {
			c.BlocksHit++
		}
	}
	if len(hits) > 0 {
		ball.ReflectY()
	}

	return c
}
