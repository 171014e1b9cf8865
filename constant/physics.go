package constant

// Playfield is expressed in logical pixels, independent of the terminal size
const (
	ScreenWidth  = 960
	ScreenHeight = 544
)

// Ball
const (
	BallRadius = 40
	// BallSpeed is the per-frame displacement on each axis
	BallSpeed = 8
)

// Paddle
const (
	PaddleWidth  = BallRadius * 3
	PaddleHeight = 10
	// PaddleMargin is the distance from the screen bottom to the paddle top edge
	PaddleMargin = PaddleHeight * 2
	// PaddleSpeed scales the stick velocity into a per-frame displacement
	PaddleSpeed = 4
)

// Bullets
const (
	BulletCount  = 4
	BulletSpeed  = 15
	BulletWidth  = 4
	BulletHeight = 10
)
