package constant

import "github.com/lixenwraith/paddleball/core"

// Draw colors
var (
	RGBBackground = core.RGBBlack
	RGBPaddle     = core.RGB{R: 200, G: 200, B: 200}
	RGBBullet     = core.RGBWhite
)

// DefaultPalette is the ball color cycle advanced on every game-over
var DefaultPalette = []core.RGB{
	{R: 255, G: 0, B: 0},   // Red
	{R: 0, G: 255, B: 0},   // Green
	{R: 0, G: 0, B: 255},   // Blue
	{R: 255, G: 255, B: 0}, // Yellow
	{R: 255, G: 0, B: 255}, // Magenta
	{R: 0, G: 255, B: 255}, // Cyan
	{R: 255, G: 165, B: 0}, // Orange
	{R: 128, G: 0, B: 128}, // Purple
}
