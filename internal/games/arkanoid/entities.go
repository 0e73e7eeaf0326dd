// Package arkanoid implements the Arkanoid simulation engine: a paddle, a ball
// and a grid of blocks, advanced one fixed tick at a time.
//
// The playfield origin is the bottom-left corner and y grows upward. The ball's
// direction components are restricted to {-1, 0, +1} and a separate scalar speed
// is applied every tick, so a bounce is always a sign flip.
package arkanoid

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Paddle is the player's horizontal-only actor.
type Paddle struct {
	Shape core.Rect
	VX    float64 // Signed units per tick; a step function of the last command
}

// SetDirection maps a command to a horizontal velocity of -speed, +speed or 0.
func (p *Paddle) SetDirection(d core.Direction, speed float64) {
	p.VX = float64(d) * speed
}

// Advance moves the paddle by its velocity and clamps it inside [0, width].
// Clamping is a hard stop and leaves VX untouched.
func (p *Paddle) Advance(width float64) {
	p.Shape.X += p.VX
	if p.Shape.Left() < 0 {
		p.Shape.SetLeft(0)
	}
	if p.Shape.Right() > width {
		p.Shape.SetRight(width)
	}
}

// Ball is the free-moving actor. It has no awareness of walls, paddle or blocks.
type Ball struct {
	Shape  core.Circle
	DX, DY int // Each in {-1, 0, +1}
}

// Advance moves the ball one tick at the given scalar speed.
func (b *Ball) Advance(speed float64) {
	b.Shape.X += speed * float64(b.DX)
	b.Shape.Y += speed * float64(b.DY)
}

// ReflectX reverses horizontal direction.
func (b *Ball) ReflectX() {
	b.DX = -b.DX
}

// ReflectY reverses vertical direction.
func (b *Ball) ReflectY() {
	b.DY = -b.DY
}

// Respawn places the ball at a random x in [radius, width-radius) at mid-height,
// moving right and down.
func (b *Ball) Respawn(rng *rand.Rand, width, height float64) {
	r := b.Shape.R
	b.Shape.X = r + rng.Float64()*(width-2*r)
	b.Shape.Y = height / 2
	b.DX = 1
	b.DY = -1
}

// Block is a single destructible block. Color is cosmetic.
type Block struct {
	Shape core.Rect
	Color core.RGB
	Alive bool
}
