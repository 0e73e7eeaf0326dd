package arkanoid

import (
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultArkanoidConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// clearAllBut removes every block except keep.
func clearAllBut(g *Game, keep *Block) {
	for _, b := range g.field.Alive() {
		if b != keep {
			g.field.Remove(b)
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)

	if g.state != StatePlaying {
		t.Errorf("Reset should set state to playing, got %s", g.state)
	}
	if g.score != 0 || g.level != 1 {
		t.Errorf("Reset should start at score 0 level 1, got score=%d level=%d", g.score, g.level)
	}
	if g.speed != 6 {
		t.Errorf("level 1 speed = %v, expected base speed 6", g.speed)
	}
	if g.field.Len() != 24 {
		t.Errorf("field should have 24 blocks, got %d", g.field.Len())
	}
	if g.paddle.Shape.X != 385 || g.paddle.Shape.Y != 30 {
		t.Errorf("paddle center = (%v, %v), expected (385, 30)", g.paddle.Shape.X, g.paddle.Shape.Y)
	}
	if g.ball.Shape.Y != 300 || g.ball.DX != 1 || g.ball.DY != -1 {
		t.Errorf("ball = y %v dir (%d, %d), expected y 300 dir (1, -1)", g.ball.Shape.Y, g.ball.DX, g.ball.DY)
	}

	// Play a few ticks, then reset again
	for range 30 {
		g.Step(input(core.ActionRight))
	}
	g.Reset(g.runtime)

	if g.tick != 0 {
		t.Errorf("Reset should clear tick, got %d", g.tick)
	}
	if g.paddle.VX != 0 {
		t.Errorf("Reset should stop the paddle, got VX=%v", g.paddle.VX)
	}
}

func TestPaddleClampsAtLeftWall(t *testing.T) {
	p := Paddle{Shape: core.NewRect(385, 30, 200, 10)}
	p.SetDirection(core.DirLeft, 15)

	for i := range 50 {
		p.Advance(770)
		if p.Shape.Left() < 0 || p.Shape.Right() > 770 {
			t.Fatalf("frame %d: paddle out of bounds [%v, %v]", i, p.Shape.Left(), p.Shape.Right())
		}
	}

	if p.Shape.Left() != 0 {
		t.Errorf("paddle left = %v, expected 0", p.Shape.Left())
	}
	// Clamping is a hard stop; the command is still held
	if p.VX != -15 {
		t.Errorf("paddle VX = %v, expected -15 after clamping", p.VX)
	}
}

func TestPaddleClampsAtRightWall(t *testing.T) {
	p := Paddle{Shape: core.NewRect(385, 30, 200, 10)}
	p.SetDirection(core.DirRight, 15)

	for range 50 {
		p.Advance(770)
	}

	if p.Shape.Right() != 770 {
		t.Errorf("paddle right = %v, expected 770", p.Shape.Right())
	}
	if p.VX != 15 {
		t.Errorf("paddle VX = %v, expected 15 after clamping", p.VX)
	}
}

func TestPaddleHeldCommandInGame(t *testing.T) {
	g := newTestGame(t, 1)

	// Park the ball so nothing ends the session
	g.ball.Shape.X, g.ball.Shape.Y = 385, 300
	g.ball.DX, g.ball.DY = 0, 0

	g.Step(input(core.ActionLeft))
	for i := range 49 {
		g.Step(core.NewInputFrame()) // No new command; left persists
		if g.paddle.Shape.Left() < 0 {
			t.Fatalf("frame %d: paddle left %v < 0", i, g.paddle.Shape.Left())
		}
	}

	if g.paddle.Shape.Left() != 0 {
		t.Errorf("paddle left = %v, expected 0", g.paddle.Shape.Left())
	}

	g.Step(input(core.ActionStop))
	if g.paddle.VX != 0 {
		t.Errorf("Stop should zero velocity, got %v", g.paddle.VX)
	}

	g.Step(input(core.ActionRight))
	if g.paddle.Shape.Left() != 15 {
		t.Errorf("paddle should move right off the wall, left = %v", g.paddle.Shape.Left())
	}
}

func TestLatestCommandWinsWithinFrame(t *testing.T) {
	g := newTestGame(t, 1)
	g.ball.DX, g.ball.DY = 0, 0

	g.Step(input(core.ActionLeft, core.ActionRight))
	if g.paddle.VX != 15 {
		t.Errorf("later Right should supersede Left, VX = %v", g.paddle.VX)
	}
}

func TestSideWallReflects(t *testing.T) {
	field := NewBlockField(config.DefaultArkanoidConfig().Blocks, 600, nil)
	paddle := Paddle{Shape: core.NewRect(385, 30, 200, 10)}
	ball := Ball{Shape: core.NewCircle(5, 300, 20), DX: -1, DY: 1}

	ball.Advance(6)
	c := Resolve(&ball, &paddle, field, 770, 600)

	if !c.Wall {
		t.Error("expected a wall contact")
	}
	if ball.DX != 1 {
		t.Fatalf("DX = %d, expected 1 after hitting the left wall", ball.DX)
	}

	x := ball.Shape.X
	ball.Advance(6)
	if ball.Shape.X <= x {
		t.Errorf("ball should move right after the bounce, x went %v -> %v", x, ball.Shape.X)
	}
}

func TestCeilingReflects(t *testing.T) {
	field := NewBlockField(config.DefaultArkanoidConfig().Blocks, 600, nil)
	paddle := Paddle{Shape: core.NewRect(385, 30, 200, 10)}
	ball := Ball{Shape: core.NewCircle(385, 580, 20), DX: 1, DY: 1}

	c := Resolve(&ball, &paddle, field, 770, 600)
	if !c.Ceiling || ball.DY != -1 {
		t.Errorf("ball touching the ceiling should flip DY, got DY=%d", ball.DY)
	}
	if ball.DX != 1 {
		t.Errorf("ceiling should not touch DX, got %d", ball.DX)
	}
}

func TestPaddleBounceOnlyWhenDescending(t *testing.T) {
	g := newTestGame(t, 1)
	g.ball.Shape.X, g.ball.Shape.Y = 385, 40
	g.ball.DX, g.ball.DY = 0, -1

	g.Step(core.NewInputFrame())
	if g.ball.DY != 1 {
		t.Fatalf("descending ball on paddle should bounce up, DY = %d", g.ball.DY)
	}

	// Still nested in the paddle but already rising: no second flip
	g.Step(core.NewInputFrame())
	if !core.CircleRectOverlap(g.ball.Shape, g.paddle.Shape) {
		t.Fatal("test setup: ball should still overlap the paddle")
	}
	if g.ball.DY != 1 {
		t.Errorf("rising ball inside paddle should keep DY = 1, got %d", g.ball.DY)
	}
}

func TestMultiBlockHitScoresAllReflectsOnce(t *testing.T) {
	g := newTestGame(t, 7)

	// Centered on the corner shared by columns 0-1 and rows 0-1
	g.ball.Shape.X, g.ball.Shape.Y = 120, 504
	g.ball.DX, g.ball.DY = 0, 1

	res := g.Step(core.NewInputFrame())

	if res.BlocksHit != 4 {
		t.Errorf("BlocksHit = %d, expected 4", res.BlocksHit)
	}
	if g.score != 4 {
		t.Errorf("score = %d, expected 4", g.score)
	}
	if g.ball.DY != -1 {
		t.Errorf("DY = %d, expected a single flip to -1", g.ball.DY)
	}
	if g.field.Len() != 20 {
		t.Errorf("field should have 20 blocks left, got %d", g.field.Len())
	}
}

func TestSingleBlockHit(t *testing.T) {
	g := newTestGame(t, 7)

	g.ball.Shape.X, g.ball.Shape.Y = 60, 534
	g.ball.DX, g.ball.DY = 0, 1

	res := g.Step(core.NewInputFrame())
	if res.BlocksHit != 1 || g.score != 1 {
		t.Errorf("expected one block and score 1, got hit=%d score=%d", res.BlocksHit, g.score)
	}
	if g.ball.DY != -1 {
		t.Errorf("DY = %d, expected -1", g.ball.DY)
	}
}

func TestLevelTransition(t *testing.T) {
	g := newTestGame(t, 99)

	last := g.field.Alive()[0] // Column 0, row 0 at (60, 540)
	clearAllBut(g, last)

	// A stale speed must not leak into the next level
	g.speed = 100
	g.ball.Shape.X, g.ball.Shape.Y = 60, 440
	g.ball.DX, g.ball.DY = 0, 1

	res := g.Step(core.NewInputFrame())

	if !res.LevelCleared {
		t.Fatal("expected LevelCleared in the same step")
	}
	if g.state != StatePlaying {
		t.Errorf("state = %s, expected playing", g.state)
	}
	if g.level != 2 {
		t.Errorf("level = %d, expected 2", g.level)
	}
	if g.speed != 6+2 {
		t.Errorf("speed = %v, expected base + level = 8", g.speed)
	}
	if g.field.Len() != 24 || g.field.IsEmpty() {
		t.Errorf("field should be repopulated to 24, got %d", g.field.Len())
	}
	if g.score != 1 {
		t.Errorf("score = %d, expected 1", g.score)
	}
	r := g.ball.Shape.R
	if g.ball.Shape.X < r || g.ball.Shape.X > 770-r {
		t.Errorf("respawned x = %v outside [%v, %v]", g.ball.Shape.X, r, 770-r)
	}
	if g.ball.Shape.Y != 300 || g.ball.DX != 1 || g.ball.DY != -1 {
		t.Errorf("respawned ball = y %v dir (%d, %d)", g.ball.Shape.Y, g.ball.DX, g.ball.DY)
	}

	// A second clear compounds with the level, not the previous speed
	last = g.field.Alive()[0]
	clearAllBut(g, last)
	g.ball.Shape.X, g.ball.Shape.Y = 60, 532
	g.ball.DX, g.ball.DY = 0, 1
	g.Step(core.NewInputFrame())

	if g.level != 3 || g.speed != 6+3 {
		t.Errorf("level %d speed %v, expected level 3 speed 9", g.level, g.speed)
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := newTestGame(t, 3)
	g.score = 11

	g.ball.Shape.X, g.ball.Shape.Y = 700, 25
	g.ball.DX, g.ball.DY = 0, -1

	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver || g.state != StateGameOver {
		t.Fatalf("ball bottom %v should end the session", g.ball.Shape.Bottom())
	}
	if res.State.Score != 11 || res.State.Level != 1 {
		t.Errorf("final state = %+v, expected score 11 level 1", res.State)
	}

	before := g.Snapshot()
	for range 20 {
		g.Step(input(core.ActionLeft, core.ActionPause))
	}
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("no mutation should happen after game over")
	}
	if after.Paused {
		t.Error("pause should be ignored after game over")
	}
}

func TestGameOverPreemptsLevelClear(t *testing.T) {
	g := newTestGame(t, 3)
	for _, b := range g.field.Alive() {
		g.field.Remove(b)
	}
	g.ball.Shape.X, g.ball.Shape.Y = 700, 25
	g.ball.DX, g.ball.DY = 0, -1

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.LevelCleared {
		t.Errorf("expected game over without level clear, got %+v", res)
	}
	if g.level != 1 {
		t.Errorf("level should stay 1, got %d", g.level)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 5)
	before := g.Snapshot()

	g.Step(input(core.ActionPause))
	for range 10 {
		g.Step(input(core.ActionRight))
	}

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	if after := g.Snapshot(); after.Ball != before.Ball || after.Tick != before.Tick {
		t.Error("paused game should not advance")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestCommandsWhilePausedAreKept(t *testing.T) {
	tests := []struct {
		name   string
		frames []core.InputFrame
		wantVX float64
	}{
		{
			name: "stop while paused",
			frames: []core.InputFrame{
				input(core.ActionLeft),
				input(core.ActionPause),
				input(core.ActionStop),
				input(core.ActionPause),
			},
			wantVX: 0,
		},
		{
			name: "move on the pausing tick",
			frames: []core.InputFrame{
				input(core.ActionPause, core.ActionRight),
				input(core.ActionPause),
			},
			wantVX: 15,
		},
		{
			name: "move on the resuming tick",
			frames: []core.InputFrame{
				input(core.ActionRight),
				input(core.ActionPause),
				input(core.ActionPause, core.ActionLeft),
			},
			wantVX: -15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 8)
			for _, in := range tt.frames {
				g.Step(in)
			}

			if g.State().Paused {
				t.Fatal("game should have resumed")
			}
			if g.paddle.VX != tt.wantVX {
				t.Errorf("paddle VX = %v, expected %v", g.paddle.VX, tt.wantVX)
			}
		})
	}
}

func TestPausedPaddleDoesNotMove(t *testing.T) {
	g := newTestGame(t, 8)
	g.Step(input(core.ActionPause))
	x := g.paddle.Shape.X

	for range 5 {
		g.Step(input(core.ActionLeft))
	}

	if g.paddle.Shape.X != x {
		t.Errorf("paddle moved while paused: %v -> %v", x, g.paddle.Shape.X)
	}
	if g.paddle.VX != -15 {
		t.Errorf("paddle VX = %v, expected the held -15", g.paddle.VX)
	}
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	g := newTestGame(t, 2024)
	actions := []core.Action{core.ActionLeft, core.ActionRight, core.ActionStop}

	for i := range 5000 {
		var in core.InputFrame
		if i%7 == 0 {
			in = input(actions[(i/7)%len(actions)])
		}
		res := g.Step(in)

		for _, d := range []int{g.ball.DX, g.ball.DY} {
			if d < -1 || d > 1 {
				t.Fatalf("tick %d: direction component %d out of range", i, d)
			}
		}
		if g.paddle.Shape.Left() < 0 || g.paddle.Shape.Right() > 770 {
			t.Fatalf("tick %d: paddle out of bounds", i)
		}
		if g.speed != 6 && g.speed != 6+float64(g.level) {
			t.Fatalf("tick %d: speed %v does not follow the level rule", i, g.speed)
		}
		if res.State.GameOver {
			g.Reset(g.runtime)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for i := range 600 {
			in := core.NewInputFrame()
			switch i % 40 {
			case 0:
				in.Set(core.ActionLeft)
			case 20:
				in.Set(core.ActionRight)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score/tick differ (%d/%d vs %d/%d)", snap1.Score, snap1.Tick, snap2.Score, snap2.Tick)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 8)
	snap := g.Snapshot()

	snap.Blocks[0].Color = core.RGB{}
	snap.Paddle.X = 0

	again := g.Snapshot()
	if again.Blocks[0].Color.IsZero() || again.Paddle.X != 385 {
		t.Error("mutating a snapshot must not affect the game")
	}
}
