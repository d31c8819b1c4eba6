package platformer

import (
	"testing"

	"chosenoffset.com/platformkit/internal/game"
	"chosenoffset.com/platformkit/internal/input"
	"chosenoffset.com/platformkit/internal/render/rendertest"
)

func newTestCommon() (*game.Common, *rendertest.Renderer) {
	r := &rendertest.Renderer{}
	return game.NewCommon(r, &rendertest.Font{CharWidth: 7, Height: 13}, 800, 480), r
}

func TestNewGameStartsOnFloor(t *testing.T) {
	c, _ := newTestCommon()
	g := NewGame(c)

	if !g.Player.OnGround {
		t.Error("Expected player to start on the ground")
	}
	if g.Player.Y+PlayerSize != g.FloorY() {
		t.Errorf("Expected player feet at %v, got %v", g.FloorY(), g.Player.Y+PlayerSize)
	}
}

func TestStepMoves(t *testing.T) {
	c, _ := newTestCommon()
	g := NewGame(c)
	startX := g.Player.X

	g.Step(input.Signals{Left: true})
	if g.Player.X != startX-MoveSpeed {
		t.Errorf("Expected x %v after moving left, got %v", startX-MoveSpeed, g.Player.X)
	}

	g.Step(input.Signals{Right: true})
	g.Step(input.Signals{Right: true})
	if g.Player.X != startX+MoveSpeed {
		t.Errorf("Expected x %v after moving right twice, got %v", startX+MoveSpeed, g.Player.X)
	}

	g.Step(input.Signals{Left: true, Right: true})
	if g.Player.X != startX+MoveSpeed {
		t.Errorf("Expected left and right to cancel, got x %v", g.Player.X)
	}
}

func TestStepClampsToScreen(t *testing.T) {
	c, _ := newTestCommon()
	g := NewGame(c)
	g.Player.X = 1

	g.Step(input.Signals{Left: true})
	if g.Player.X != 0 {
		t.Errorf("Expected player clamped at 0, got %v", g.Player.X)
	}
}

func TestStepJumpAndLand(t *testing.T) {
	c, _ := newTestCommon()
	g := NewGame(c)
	floor := g.Player.Y

	g.Step(input.Signals{Up: true})
	if g.Player.OnGround || g.Player.Y >= floor {
		t.Fatalf("Expected player airborne after jumping, got y=%v", g.Player.Y)
	}

	// Holding up in the air must not jump again.
	for i := 0; i < 120; i++ {
		g.Step(input.Signals{Up: i < 5})
		if g.Player.Y > floor {
			t.Fatalf("Expected player never below the floor, got y=%v", g.Player.Y)
		}
	}
	if !g.Player.OnGround || g.Player.Y != floor {
		t.Errorf("Expected player back on the floor at %v, got y=%v", floor, g.Player.Y)
	}
}

func TestMessagesExpire(t *testing.T) {
	c, _ := newTestCommon()
	g := NewGame(c)
	g.ShowMessage("hello")

	for i := 0; i < 179; i++ {
		g.Step(input.Signals{})
	}
	if len(g.Messages) != 1 {
		t.Fatalf("Expected message still shown, got %d messages", len(g.Messages))
	}

	for i := 0; i < 2; i++ {
		g.Step(input.Signals{})
	}
	if len(g.Messages) != 0 {
		t.Errorf("Expected message expired after 3 seconds, got %d", len(g.Messages))
	}
}

func TestDrawCentersMessages(t *testing.T) {
	c, r := newTestCommon()
	g := NewGame(c)
	g.ShowMessage("Go!")

	g.Draw(rendertest.NewImage("screen", 800, 480))

	if r.Rects != 2 {
		t.Errorf("Expected floor and player rectangles, got %d", r.Rects)
	}
	if len(r.Texts) != 1 {
		t.Fatalf("Expected one message drawn, got %d", len(r.Texts))
	}
	// 3 runes of 7 pixels.
	if r.Texts[0].X != 400-10.5 {
		t.Errorf("Expected message centered at %v, got %v", 400-10.5, r.Texts[0].X)
	}
}
