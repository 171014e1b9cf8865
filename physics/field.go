// Package physics integrates the ball and paddle on the logical playfield.
// All arithmetic is integer except the paddle steering input.
package physics

import "github.com/lixenwraith/paddleball/core"

// Field is the playfield extent in logical pixels
type Field struct {
	Width, Height int
}

// Center returns the playfield midpoint
func (f Field) Center() (x, y int) {
	return f.Width / 2, f.Height / 2
}

// CenterBall places the ball at the playfield midpoint, keeping its direction
func (f Field) CenterBall(b *core.Ball) {
	b.X, b.Y = f.Center()
}
