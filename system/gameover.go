package system

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/lixenwraith/paddleball/core"
	"github.com/lixenwraith/paddleball/physics"
)

// Beeper plays the game-over cue and returns once playback ended
type Beeper interface {
	Beep(ctx context.Context)
}

// GameOver applies the reset sequence when the ball drops past the paddle
type GameOver struct {
	palette *core.Palette
	field   physics.Field
	beeper  Beeper
	logger  *log.Logger

	count int
}

// NewGameOver wires the handler; beeper may be nil for a silent game
func NewGameOver(palette *core.Palette, field physics.Field, beeper Beeper, logger *log.Logger) *GameOver {
	return &GameOver{
		palette: palette,
		field:   field,
		beeper:  beeper,
		logger:  logger,
	}
}

// Handle cycles the ball color, recenters ball and paddle, then blocks on the tone
// The paddle is recentered by its left edge and not clamped; the next movement step clamps it
func (g *GameOver) Handle(ctx context.Context, ball *core.Ball, paddle *core.Paddle) {
	color := g.palette.Advance()
	g.count++

	g.field.CenterBall(ball)
	paddle.X = g.field.Width / 2

	g.logger.Info("game over",
		"count", g.count,
		"color_index", g.palette.Index(),
		"color", color,
	)

	if g.beeper != nil {
		g.beeper.Beep(ctx)
	}
}

// Count returns the number of game-over events handled
func (g *GameOver) Count() int {
	return g.count
}
