package render

import "github.com/lixenwraith/paddleball/core"

// Canvas is the drawing surface the frame loop paints on each frame
// Coordinates are logical playfield pixels; implementations scale and clip
type Canvas interface {
	SetColor(c core.RGB)
	Clear()
	DrawPoint(x, y int)
	FillRect(r core.Rect)
	Present()
}
