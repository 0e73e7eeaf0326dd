package arkanoid

import (
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func newTestField(seed uint64) *BlockField {
	rng := rand.New(rand.NewPCG(seed, seed))
	return NewBlockField(config.DefaultArkanoidConfig().Blocks, 600, rng)
}

func TestGenerateLayout(t *testing.T) {
	f := newTestField(1)
	if !f.IsEmpty() {
		t.Error("new field should be empty before Generate")
	}

	f.Generate(1)

	if f.Len() != 24 || f.IsEmpty() {
		t.Fatalf("expected 24 alive blocks, got %d", f.Len())
	}

	blocks := f.Alive()
	tests := []struct {
		name string
		idx  int
		x, y float64
	}{
		{"first column top row", 0, 60, 540},
		{"first column bottom row", 3, 60, 360},
		{"second column top row", 4, 180, 540},
		{"last column bottom row", 23, 660, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := blocks[tt.idx]
			if b.Shape.X != tt.x || b.Shape.Y != tt.y {
				t.Errorf("block %d at (%v, %v), expected (%v, %v)", tt.idx, b.Shape.X, b.Shape.Y, tt.x, tt.y)
			}
			if b.Shape.Width() != 100 || b.Shape.Height() != 50 {
				t.Errorf("block %d size %vx%v, expected 100x50", tt.idx, b.Shape.Width(), b.Shape.Height())
			}
		})
	}
}

func TestGenerateColorsInRange(t *testing.T) {
	f := newTestField(2)
	for level := 1; level <= 5; level++ {
		f.Generate(level)
		for _, b := range f.Alive() {
			for _, ch := range []uint8{b.Color.R, b.Color.G, b.Color.B} {
				if ch < 30 {
					t.Fatalf("level %d: color channel %d below 30", level, ch)
				}
			}
		}
	}
}

func TestGenerateReplacesField(t *testing.T) {
	f := newTestField(3)
	f.Generate(1)
	for _, b := range f.Alive()[:10] {
		f.Remove(b)
	}

	f.Generate(2)
	if f.Len() != 24 {
		t.Errorf("Generate should discard old blocks, got %d alive", f.Len())
	}
}

func TestRemoveUntilEmpty(t *testing.T) {
	f := newTestField(4)
	f.Generate(1)

	blocks := f.Alive()
	for i, b := range blocks {
		if f.IsEmpty() {
			t.Fatalf("field empty after removing only %d blocks", i)
		}
		if !f.Remove(b) {
			t.Fatalf("first Remove of block %d should report true", i)
		}
	}

	if !f.IsEmpty() {
		t.Errorf("field should be empty, %d left", f.Len())
	}
	if f.Remove(blocks[0]) {
		t.Error("removing a dead block should report false")
	}
	if f.Len() != 0 {
		t.Errorf("Len should stay 0, got %d", f.Len())
	}
}

func TestOverlappingIgnoresDeadBlocks(t *testing.T) {
	f := newTestField(5)
	f.Generate(1)

	ball := core.NewCircle(60, 540, 20)
	hits := f.Overlapping(ball)
	if len(hits) != 1 {
		t.Fatalf("expected 1 overlapping block, got %d", len(hits))
	}

	f.Remove(hits[0])
	if got := f.Overlapping(ball); len(got) != 0 {
		t.Errorf("dead block should not overlap, got %d", len(got))
	}
}

func TestRespawnRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	b := Ball{Shape: core.NewCircle(0, 0, 20)}

	for range 1000 {
		b.DX, b.DY = 0, 1
		b.Respawn(rng, 770, 600)
		if b.Shape.X < 20 || b.Shape.X > 750 {
			t.Fatalf("respawn x %v outside [20, 750]", b.Shape.X)
		}
		if b.Shape.Y != 300 || b.DX != 1 || b.DY != -1 {
			t.Fatalf("respawn = y %v dir (%d, %d)", b.Shape.Y, b.DX, b.DY)
		}
	}
}

func TestResolveWallAndBlockSameTick(t *testing.T) {
	f := newTestField(6)
	f.Generate(1)
	paddle := Paddle{Shape: core.NewRect(385, 30, 200, 10)}

	// Column 0 sits 10 units from the left wall
	ball := Ball{Shape: core.NewCircle(15, 540, 20), DX: -1, DY: 1}
	c := Resolve(&ball, &paddle, f, 770, 600)

	if !c.Wall || c.BlocksHit != 1 {
		t.Errorf("contacts = %+v, expected wall and one block", c)
	}
	if ball.DX != 1 || ball.DY != -1 {
		t.Errorf("direction = (%d, %d), expected (1, -1)", ball.DX, ball.DY)
	}
}
