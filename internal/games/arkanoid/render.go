package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '▀'
	BallChar    = '●'
	BlockChar   = '█'
	BorderHoriz = '─'
)

// Layout constants
const (
	hudRows    = 2
	MinScreenW = 30
	MinScreenH = 15
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(g.Snapshot(), dst)
}

// RenderSnapshot draws a snapshot to the screen. It only reads the snapshot.
func RenderSnapshot(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := newViewport(snap.Width, snap.Height, dst.Width(), dst.Height()-hudRows)

	renderHUD(snap, dst)

	for _, b := range snap.Blocks {
		x, y, w, h := v.project(b.Shape)
		dst.FillArea(x, y, w, h, BlockChar, b.Color)
	}

	x, y, w, h := v.project(snap.Paddle)
	dst.FillArea(x, y, w, h, PaddleChar, core.ColorDarkGreen)

	x, y, w, h = v.project(snap.Ball.Bounds())
	dst.FillArea(x, y, w, h, BallChar, core.ColorPurple)

	renderOverlay(snap, dst)
}

// viewport maps playfield units (origin bottom-left, y up) to screen cells
// (origin top-left, y down) below the HUD.
type viewport struct {
	sx, sy float64 // Cells per playfield unit
	rows   int
}

func newViewport(fieldW, fieldH float64, cols, rows int) viewport {
	return viewport{
		sx:   float64(cols) / fieldW,
		sy:   float64(rows) / fieldH,
		rows: rows,
	}
}

// project returns the cell rectangle covered by r. Every visible shape covers
// at least one cell.
func (v viewport) project(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.Left() * v.sx))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y0 := int(math.Floor(float64(v.rows) - r.Top()*v.sy))
	y1 := int(math.Ceil(float64(v.rows) - r.Bottom()*v.sy))

	// Keep shapes poking above the ceiling out of the HUD
	if y0 < 0 {
		y0 = 0
	}

	w = max(x1-x0, 1)
	h = max(y1-y0, 1)
	return x0, y0 + hudRows, w, h
}

// renderHUD draws the score and level indicator.
func renderHUD(snap Snapshot, dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorIndigo)

	levelText := fmt.Sprintf("Level: %d", snap.Level)
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 0, levelText, core.ColorIndigo)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderOverlay draws game state messages.
func renderOverlay(snap Snapshot, dst *core.Screen) {
	switch {
	case snap.State == StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Level: %d", snap.Score, snap.Level)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
