package physics

import (
	"testing"

	"github.com/lixenwraith/paddleball/constant"
	"github.com/lixenwraith/paddleball/core"
	"pgregory.net/rapid"
)

var testField = Field{Width: constant.ScreenWidth, Height: constant.ScreenHeight}

func testPaddle(x int) core.Paddle {
	return core.Paddle{
		X:      x,
		Y:      constant.ScreenHeight - constant.PaddleMargin,
		Width:  constant.PaddleWidth,
		Height: constant.PaddleHeight,
	}
}

func centeredBall() core.Ball {
	return core.Ball{
		X:      constant.ScreenWidth / 2,
		Y:      constant.ScreenHeight / 2,
		VX:     1,
		VY:     1,
		Radius: constant.BallRadius,
	}
}

func TestCheckXCollisionInclusive(t *testing.T) {
	p := testPaddle(100)
	tests := []struct {
		x    int
		want bool
	}{
		{99, false},
		{100, true},
		{160, true},
		{220, true},
		{221, false},
	}
	for _, tt := range tests {
		if got := CheckXCollision(tt.x, p); got != tt.want {
			t.Errorf("CheckXCollision(%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestAdvanceFromCenter(t *testing.T) {
	b := centeredBall()
	over := Step(&b, testPaddle(0), testField, constant.BallSpeed)

	if over {
		t.Fatal("game over on first step from center")
	}
	wantX := constant.ScreenWidth/2 + constant.BallSpeed
	wantY := constant.ScreenHeight/2 + constant.BallSpeed
	if b.X != wantX || b.Y != wantY {
		t.Errorf("position = (%d,%d), want (%d,%d)", b.X, b.Y, wantX, wantY)
	}
	if b.VX != 1 || b.VY != 1 {
		t.Errorf("direction changed mid-field: (%d,%d)", b.VX, b.VY)
	}
}

func TestReflectWalls(t *testing.T) {
	r := constant.BallRadius
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY bool
	}{
		{"inside", 480, 272, false, false},
		{"right edge touch", constant.ScreenWidth - r, 272, true, false},
		{"left edge touch", r, 272, true, false},
		{"top overshoot", 480, r - 3, false, true},
		{"bottom edge", 480, constant.ScreenHeight - r, false, true},
		{"corner", r, r, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := core.Ball{X: tt.x, Y: tt.y, VX: 1, VY: -1, Radius: r}
			fx, fy := ReflectWalls(&b, testField)
			if fx != tt.wantX || fy != tt.wantY {
				t.Fatalf("flipped = (%v,%v), want (%v,%v)", fx, fy, tt.wantX, tt.wantY)
			}
			wantVX, wantVY := 1, -1
			if tt.wantX {
				wantVX = -1
			}
			if tt.wantY {
				wantVY = 1
			}
			if b.VX != wantVX || b.VY != wantVY {
				t.Errorf("direction = (%d,%d), want (%d,%d)", b.VX, b.VY, wantVX, wantVY)
			}
		})
	}
}

func TestBouncePaddle(t *testing.T) {
	p := testPaddle(400)
	b := core.Ball{X: 460, Y: p.Y - constant.BallRadius, VX: 1, VY: 1, Radius: constant.BallRadius}
	if !BouncePaddle(&b, p) {
		t.Fatal("expected bounce with ball bottom on paddle top")
	}
	if b.VY != -1 {
		t.Errorf("VY = %d, want -1", b.VY)
	}

	miss := core.Ball{X: 100, Y: p.Y, VX: 1, VY: 1, Radius: constant.BallRadius}
	if BouncePaddle(&miss, p) {
		t.Error("bounce reported with ball outside paddle span")
	}
}

// Wall and paddle flips in the same frame cancel out
func TestDoubleFlipAtBottomOverPaddle(t *testing.T) {
	p := testPaddle(400)
	b := core.Ball{X: 460, Y: constant.ScreenHeight - constant.BallRadius - constant.BallSpeed, VX: 1, VY: 1, Radius: constant.BallRadius}

	over := Step(&b, p, testField, constant.BallSpeed)
	if over {
		t.Error("ball over the paddle must not end the game")
	}
	if b.VY != 1 {
		t.Errorf("VY = %d, want 1 after wall and paddle flips", b.VY)
	}
}

func TestIsGameOver(t *testing.T) {
	p := testPaddle(0)
	bottom := constant.ScreenHeight - constant.BallRadius
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"above bottom row", 700, bottom - 1, false},
		{"bottom away from paddle", 700, bottom, true},
		{"past bottom away from paddle", 700, bottom + 5, true},
		{"bottom over paddle", 60, bottom, false},
		{"bottom on paddle right edge", constant.PaddleWidth, bottom, false},
	}
	for _, tt := range tests {
		b := core.Ball{X: tt.x, Y: tt.y, Radius: constant.BallRadius}
		if got := IsGameOver(b, p, testField); got != tt.want {
			t.Errorf("%s: IsGameOver = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStepUntilGameOver(t *testing.T) {
	b := centeredBall()
	p := testPaddle(0)

	frames := 0
	for !Step(&b, p, testField, constant.BallSpeed) {
		frames++
		if frames > 1000 {
			t.Fatal("no game over within 1000 frames")
		}
	}
	if b.Y+b.Radius < constant.ScreenHeight {
		t.Errorf("game over before bottom row: y=%d", b.Y)
	}
	if CheckXCollision(b.X, p) {
		t.Errorf("game over with ball over paddle at x=%d", b.X)
	}
}

func TestMovePaddle(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		velocity float64
		want     int
	}{
		{"still", 300, 0, 300},
		{"right", 300, 5, 320},
		{"left", 300, -2.5, 290},
		{"fractional left truncates toward zero", 300, -0.3, 298},
		{"fractional", 300, 0.3, 301},
		{"clamp left", 10, -10, 0},
		{"clamp right", constant.ScreenWidth - constant.PaddleWidth - 5, 10, constant.ScreenWidth - constant.PaddleWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPaddle(tt.x)
			MovePaddle(&p, tt.velocity, constant.PaddleSpeed, testField)
			if p.X != tt.want {
				t.Errorf("x = %d, want %d", p.X, tt.want)
			}
		})
	}
}

func TestPaddleStaysOnScreen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.IntRange(-2*constant.ScreenWidth, 2*constant.ScreenWidth).Draw(t, "x")
		v := rapid.Float64Range(-10, 10).Draw(t, "velocity")

		p := testPaddle(x)
		MovePaddle(&p, v, constant.PaddleSpeed, testField)

		if p.X < 0 || p.X > constant.ScreenWidth-constant.PaddleWidth {
			t.Fatalf("paddle x %d outside [0,%d]", p.X, constant.ScreenWidth-constant.PaddleWidth)
		}
	})
}

func TestWallReflectionInvertsOnlyAffectedAxis(t *testing.T) {
	r := constant.BallRadius
	rapid.Check(t, func(t *rapid.T) {
		vx := rapid.SampledFrom([]int{-1, 1}).Draw(t, "vx")
		vy := rapid.SampledFrom([]int{-1, 1}).Draw(t, "vy")
		// One axis sits on or past a wall, the other strictly inside
		horizontal := rapid.Bool().Draw(t, "horizontal")

		var b core.Ball
		if horizontal {
			x := rapid.SampledFrom([]int{
				rapid.IntRange(-constant.BallSpeed, r).Draw(t, "leftX"),
				rapid.IntRange(constant.ScreenWidth-r, constant.ScreenWidth+constant.BallSpeed).Draw(t, "rightX"),
			}).Draw(t, "x")
			y := rapid.IntRange(r+1, constant.ScreenHeight-r-1).Draw(t, "y")
			b = core.Ball{X: x, Y: y, VX: vx, VY: vy, Radius: r}
		} else {
			x := rapid.IntRange(r+1, constant.ScreenWidth-r-1).Draw(t, "x")
			y := rapid.SampledFrom([]int{
				rapid.IntRange(-constant.BallSpeed, r).Draw(t, "topY"),
				rapid.IntRange(constant.ScreenHeight-r, constant.ScreenHeight+constant.BallSpeed).Draw(t, "bottomY"),
			}).Draw(t, "y")
			b = core.Ball{X: x, Y: y, VX: vx, VY: vy, Radius: r}
		}

		fx, fy := ReflectWalls(&b, testField)
		if horizontal {
			if !fx || fy {
				t.Fatalf("flipped = (%v,%v), want (true,false)", fx, fy)
			}
			if b.VX != -vx || b.VY != vy {
				t.Fatalf("direction = (%d,%d), from (%d,%d)", b.VX, b.VY, vx, vy)
			}
		} else {
			if fx || !fy {
				t.Fatalf("flipped = (%v,%v), want (false,true)", fx, fy)
			}
			if b.VX != vx || b.VY != -vy {
				t.Fatalf("direction = (%d,%d), from (%d,%d)", b.VX, b.VY, vx, vy)
			}
		}
	})
}
