package physics

import "github.com/lixenwraith/paddleball/core"

// CheckXCollision reports whether x lies over the paddle span, edges inclusive
func CheckXCollision(x int, p core.Paddle) bool {
	return p.X <= x && x <= p.X+p.Width
}

// ReflectWalls flips the direction sign of each axis whose edge touched or crossed a wall
// Returns which axes flipped
func ReflectWalls(b *core.Ball, f Field) (flippedX, flippedY bool) {
	if b.X+b.Radius >= f.Width || b.X-b.Radius <= 0 {
		b.VX = -b.VX
		flippedX = true
	}
	if b.Y+b.Radius >= f.Height || b.Y-b.Radius <= 0 {
		b.VY = -b.VY
		flippedY = true
	}
	return flippedX, flippedY
}

// BouncePaddle flips the vertical sign when the ball's bottom edge reached the paddle top
// and its center is over the paddle. Independent of ReflectWalls: both may fire in one frame
func BouncePaddle(b *core.Ball, p core.Paddle) bool {
	if b.Y+b.Radius >= p.Y && CheckXCollision(b.X, p) {
		b.VY = -b.VY
		return true
	}
	return false
}

// IsGameOver reports a ball whose bottom edge reached the screen bottom away from the paddle
// The row test runs first; the paddle span is only consulted at the bottom row
func IsGameOver(b core.Ball, p core.Paddle, f Field) bool {
	if b.Y+b.Radius < f.Height {
		return false
	}
	return !CheckXCollision(b.X, p)
}
