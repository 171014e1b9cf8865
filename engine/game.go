package engine

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lixenwraith/paddleball/config"
	"github.com/lixenwraith/paddleball/core"
	"github.com/lixenwraith/paddleball/input"
	"github.com/lixenwraith/paddleball/physics"
	"github.com/lixenwraith/paddleball/render"
	"github.com/lixenwraith/paddleball/system"
)

// Deps are the collaborators a game talks to
type Deps struct {
	Controller input.Controller
	Canvas     render.Canvas
	// Beeper is optional; nil plays no tone
	Beeper system.Beeper
	Clock  core.Clock
	Logger *log.Logger
}

// Game runs the per-frame pipeline over a GameState
type Game struct {
	state *GameState
	field physics.Field

	ballSpeed   int
	paddleSpeed int
	frame       time.Duration

	controller input.Controller
	sampler    input.Sampler
	canvas     render.Canvas
	scene      render.Scene
	gameOver   *system.GameOver
	clock      core.Clock
	logger     *log.Logger
}

// NewGame wires a game from configuration and collaborators
func NewGame(cfg *config.Config, deps Deps) (*Game, error) {
	if deps.Controller == nil || deps.Canvas == nil {
		return nil, errors.New("engine: controller and canvas are required")
	}
	if deps.Clock == nil {
		deps.Clock = core.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	state, err := NewGameState(cfg)
	if err != nil {
		return nil, err
	}

	field := cfg.Field()
	scene := render.DefaultScene()
	scene.BulletWidth, scene.BulletHeight = cfg.Bullet.Width, cfg.Bullet.Height

	return &Game{
		state:       state,
		field:       field,
		ballSpeed:   cfg.Ball.Speed,
		paddleSpeed: cfg.Paddle.Speed,
		frame:       cfg.FrameInterval(),
		controller:  deps.Controller,
		sampler: input.Sampler{
			DeadZone:      cfg.Input.DeadZone,
			VelocityScale: cfg.Input.VelocityScale,
			ShootButton:   input.ButtonCross,
		},
		canvas:   deps.Canvas,
		scene:    scene,
		gameOver: system.NewGameOver(state.Palette, field, deps.Beeper, deps.Logger),
		clock:    deps.Clock,
		logger:   deps.Logger,
	}, nil
}

// State exposes the live game state
func (g *Game) State() *GameState {
	return g.state
}

// GameOvers returns how many times the ball was lost
func (g *Game) GameOvers() int {
	return g.gameOver.Count()
}

// Update advances one frame: input, physics, bullets, then game-over handling
// The game-over tone blocks inside Update
func (g *Game) Update(ctx context.Context) (gameOver bool) {
	s := g.state

	cmd := g.sampler.Sample(g.controller.Peek())
	if cmd.Shoot {
		s.Bullets.Spawn(g.clock.Now(), s.Paddle.Center())
	}
	physics.MovePaddle(&s.Paddle, cmd.Velocity, g.paddleSpeed, g.field)

	gameOver = physics.Step(&s.Ball, s.Paddle, g.field, g.ballSpeed)

	s.Bullets.Advance()

	if gameOver {
		g.gameOver.Handle(ctx, &s.Ball, &s.Paddle)
	}

	s.FrameNumber++
	return gameOver
}

// Draw paints the current state and presents it
func (g *Game) Draw() {
	s := g.state
	g.scene.Draw(g.canvas, s.Ball, s.BallColor(), s.Paddle, s.Bullets)
}

// Run loops update, draw and the fixed frame delay until ctx is done
func (g *Game) Run(ctx context.Context) error {
	g.logger.Info("game started", "frame", g.frame, "field", g.field)

	timer := time.NewTimer(g.frame)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			break
		}

		g.Update(ctx)
		g.Draw()

		timer.Reset(g.frame)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}

	g.logger.Info("game stopped",
		"frames", g.state.FrameNumber,
		"game_overs", g.gameOver.Count(),
	)
	return nil
}
