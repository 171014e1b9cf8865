package engine

import (
	"github.com/lixenwraith/paddleball/config"
	"github.com/lixenwraith/paddleball/core"
	"github.com/lixenwraith/paddleball/system"
)

// GameState is every mutable value of a running game
// Owned by the frame loop goroutine; no field is shared with other goroutines
type GameState struct {
	Ball    core.Ball
	Paddle  core.Paddle
	Bullets *system.Magazine
	Palette *core.Palette

	// FrameNumber counts completed updates
	FrameNumber uint64
}

// NewGameState builds the opening position: ball centered moving down-right, paddle at the left edge
func NewGameState(cfg *config.Config) (*GameState, error) {
	colors, err := cfg.PaletteColors()
	if err != nil {
		return nil, err
	}

	field := cfg.Field()
	margin := cfg.Paddle.Height * 2

	s := &GameState{
		Ball: core.Ball{
			VX:     1,
			VY:     1,
			Radius: cfg.Ball.Radius,
		},
		Paddle: core.Paddle{
			X:      0,
			Y:      field.Height - margin,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		Bullets: system.NewMagazine(cfg.Bullet.Count, cfg.Bullet.Speed, cfg.ShotCooldown(), field.Height-margin),
		Palette: core.NewPalette(colors),
	}
	field.CenterBall(&s.Ball)
	return s, nil
}

// BallColor is the palette color the ball is drawn with
func (s *GameState) BallColor() core.RGB {
	return s.Palette.Current()
}
