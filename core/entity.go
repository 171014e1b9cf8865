package core

// Ball is a disk moving at constant speed along both diagonals
// VX and VY are direction signs, always -1 or +1
type Ball struct {
	X, Y   int
	VX, VY int
	Radius int
}

// Paddle is the player-controlled bar; Y is fixed, X moves horizontally
type Paddle struct {
	X, Y          int
	Width, Height int
}

// Center returns the horizontal midpoint of the paddle
func (p Paddle) Center() int {
	return p.X + p.Width/2
}

// Rect is an axis-aligned rectangle in logical pixels
type Rect struct {
	X, Y, W, H int
}

// Rect returns the paddle bounds
func (p Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
