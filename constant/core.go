package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the fixed post-render delay (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)
