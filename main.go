package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/lixenwraith/paddleball/audio"
	"github.com/lixenwraith/paddleball/config"
	"github.com/lixenwraith/paddleball/core"
	"github.com/lixenwraith/paddleball/engine"
	"github.com/lixenwraith/paddleball/input"
	"github.com/lixenwraith/paddleball/logging"
	"github.com/lixenwraith/paddleball/render"
	"golang.org/x/sync/errgroup"
)

// Exit codes
const (
	exitOK     = 0
	exitRender = 1
	exitConfig = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		return exitConfig
	}

	logger, closeLog := openLogger(cfg)
	defer closeLog()

	term, err := render.OpenTerminal(cfg.Field())
	if err != nil {
		logger.Error("renderer init failed", "err", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return exitRender
	}

	keyboard := input.NewKeyboard(core.SystemClock{}, cfg.KeyHold())
	spk := audio.NewSpeaker()
	defer spk.Shutdown()
	beeper := audio.NewBeeper(spk, cfg.Beeper(), logger)

	game, err := engine.NewGame(cfg, engine.Deps{
		Controller: keyboard,
		Canvas:     term,
		Beeper:     beeper,
		Clock:      core.SystemClock{},
		Logger:     logger,
	})
	if err != nil {
		term.Close()
		logger.Error("game init failed", "err", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Finalizing the screen also unblocks the event pump
		defer term.Close()
		return game.Run(gctx)
	})
	g.Go(func() error {
		return keyboard.Pump(gctx, term.Screen(), term.Resized)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, input.ErrQuit) {
		logger.Error("game loop failed", "err", err)
		return exitRender
	}
	return exitOK
}

// openLogger writes to the configured file; an unwritable file drops logs rather than corrupt the screen
func openLogger(cfg *config.Config) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger, err := logging.New(w, cfg.Log.Level)
	if err != nil {
		// Level was validated with the config
		logger = log.New(w)
	}
	return logging.WithSession(logger), closeFn
}
