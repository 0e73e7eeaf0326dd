package arkanoid

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// BlockField is the ordered set of blocks for the current level.
type BlockField struct {
	layout config.BlocksConfig
	height float64 // Playfield height, rows hang down from the ceiling
	rng    *rand.Rand
	blocks []*Block
	alive  int
}

// NewBlockField creates an empty field. Call Generate to populate it.
func NewBlockField(layout config.BlocksConfig, playfieldHeight float64, rng *rand.Rand) *BlockField {
	return &BlockField{
		layout: layout,
		height: playfieldHeight,
		rng:    rng,
	}
}

// Generate discards any existing blocks and lays out a fresh Cols x Rows grid
// with random colors. The layout is identical on every level.
func (f *BlockField) Generate(_ int) {
	l := f.layout
	f.blocks = make([]*Block, 0, l.Cols*l.Rows)
	for col := range l.Cols {
		for row := range l.Rows {
			x := l.OffsetX + float64(col)*l.PitchX
			y := f.height - l.OffsetTop - float64(row)*l.PitchY
			f.blocks = append(f.blocks, &Block{
				Shape: core.NewRect(x, y, l.Width, l.Height),
				Color: f.randomColor(),
				Alive: true,
			})
		}
	}
	f.alive = len(f.blocks)
}

// randomColor returns a color with every channel in [MinChannel, MaxChannel].
func (f *BlockField) randomColor() core.RGB {
	span := f.layout.MaxChannel - f.layout.MinChannel + 1
	channel := func() uint8 {
		return uint8(f.layout.MinChannel + f.rng.IntN(span)) //#nosec G115 -- channel bounds validated to [0, 255]
	}
	return core.RGB{R: channel(), G: channel(), B: channel()}
}

// Remove marks a block as destroyed. It reports whether the block was alive,
// so removing the same block twice counts once.
func (f *BlockField) Remove(b *Block) bool {
	if b == nil || !b.Alive {
		return false
	}
	b.Alive = false
	f.alive--
	return true
}

// IsEmpty reports whether no blocks remain alive.
func (f *BlockField) IsEmpty() bool {
	return f.alive == 0
}

// Len returns the number of alive blocks.
func (f *BlockField) Len() int {
	return f.alive
}

// Alive returns the alive blocks in layout order.
func (f *BlockField) Alive() []*Block {
	out := make([]*Block, 0, f.alive)
	for _, b := range f.blocks {
		if b.Alive {
			out = append(out, b)
		}
	}
	return out
}

// Overlapping returns the alive blocks whose bounds intersect the ball.
func (f *BlockField) Overlapping(ball core.Circle) []*Block {
	var hits []*Block
	for _, b := range f.blocks {
		if b.Alive && core.CircleRectOverlap(ball, b.Shape) {
			hits = append(hits, b)
		}
	}
	return hits
}
