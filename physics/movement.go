package physics

import "github.com/lixenwraith/paddleball/core"

// Advance moves the ball one frame along its direction signs
func Advance(b *core.Ball, speed int) {
	b.X += b.VX * speed
	b.Y += b.VY * speed
}

// Step runs one physics frame: advance, wall reflection, paddle bounce, game-over test
func Step(b *core.Ball, p core.Paddle, f Field, speed int) (gameOver bool) {
	Advance(b, speed)
	ReflectWalls(b, f)
	BouncePaddle(b, p)
	return IsGameOver(*b, p, f)
}

// MovePaddle displaces the paddle by velocity*speed, truncating toward zero, then clamps it on screen
func MovePaddle(p *core.Paddle, velocity float64, speed int, f Field) {
	p.X = int(float64(p.X) + velocity*float64(speed))
	ClampPaddle(p, f)
}

// ClampPaddle keeps the whole paddle rectangle inside [0, f.Width]
func ClampPaddle(p *core.Paddle, f Field) {
	if p.X < 0 {
		p.X = 0
	}
	if p.X+p.Width >= f.Width {
		p.X = f.Width - p.Width
	}
}
