// Package config loads game tuning from an optional TOML file.
//
// Defaults reproduce the stock game. A file only needs the keys it changes;
// unknown keys are rejected so typos surface at startup. A few environment
// variables override the file for quick toggles.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lixenwraith/paddleball/audio"
	"github.com/lixenwraith/paddleball/constant"
	"github.com/lixenwraith/paddleball/core"
	"github.com/lixenwraith/paddleball/physics"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Environment overrides
const (
	EnvAudioEnabled = "PADDLEBALL_AUDIO_ENABLED"
	EnvLogLevel     = "PADDLEBALL_LOG_LEVEL"
)

// Config is the full game configuration
type Config struct {
	Screen  ScreenConfig `toml:"screen"`
	Ball    BallConfig   `toml:"ball"`
	Paddle  PaddleConfig `toml:"paddle"`
	Bullet  BulletConfig `toml:"bullet"`
	Input   InputConfig  `toml:"input"`
	Audio   AudioConfig  `toml:"audio"`
	Log     LogConfig    `toml:"log"`
	Palette []string     `toml:"palette"`
}

// ScreenConfig sizes the logical playfield and frame pacing
type ScreenConfig struct {
	Width   int `toml:"width"`
	Height  int `toml:"height"`
	FrameMs int `toml:"frame_ms"`
}

// BallConfig is the ball size and per-frame speed
type BallConfig struct {
	Radius int `toml:"radius"`
	Speed  int `toml:"speed"`
}

// PaddleConfig is the paddle size and steering speed
type PaddleConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Speed  int `toml:"speed"`
}

// BulletConfig sizes the bullet arena, sprite and fire rate
type BulletConfig struct {
	Count      int `toml:"count"`
	Speed      int `toml:"speed"`
	Width      int `toml:"width"`
	Height     int `toml:"height"`
	CooldownMs int `toml:"cooldown_ms"`
}

// InputConfig tunes the stick mapping and keyboard hold window
type InputConfig struct {
	DeadZone      float64 `toml:"dead_zone"`
	VelocityScale float64 `toml:"velocity_scale"`
	HoldMs        int     `toml:"hold_ms"`
}

// AudioConfig describes the game-over tone and output device
type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	BufferSize int     `toml:"buffer_size"`
	Frequency  float64 `toml:"frequency"`
	Amplitude  int     `toml:"amplitude"`
	DurationMs int     `toml:"duration_ms"`
}

// LogConfig selects the log file and level
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the stock game configuration
func Default() *Config {
	palette := make([]string, len(constant.DefaultPalette))
	for i, c := range constant.DefaultPalette {
		palette[i] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}

	return &Config{
		Screen: ScreenConfig{
			Width:   constant.ScreenWidth,
			Height:  constant.ScreenHeight,
			FrameMs: int(constant.FrameUpdateInterval / time.Millisecond),
		},
		Ball: BallConfig{
			Radius: constant.BallRadius,
			Speed:  constant.BallSpeed,
		},
		Paddle: PaddleConfig{
			Width:  constant.PaddleWidth,
			Height: constant.PaddleHeight,
			Speed:  constant.PaddleSpeed,
		},
		Bullet: BulletConfig{
			Count:      constant.BulletCount,
			Speed:      constant.BulletSpeed,
			Width:      constant.BulletWidth,
			Height:     constant.BulletHeight,
			CooldownMs: int(constant.ShotCooldown / time.Millisecond),
		},
		Input: InputConfig{
			DeadZone:      constant.StickDeadZone,
			VelocityScale: constant.StickVelocityScale,
			HoldMs:        int(constant.KeyHoldWindow / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: constant.AudioSampleRate,
			BufferSize: constant.AudioBufferSamples,
			Frequency:  constant.ToneFrequency,
			Amplitude:  constant.ToneAmplitude,
			DurationMs: int(constant.ToneDuration / time.Millisecond),
		},
		Log: LogConfig{
			File:  filepath.Join(os.TempDir(), "paddleball.log"),
			Level: "info",
		},
		Palette: palette,
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode merges TOML data into cfg, rejecting unknown keys
func (c *Config) decode(data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return err
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvAudioEnabled, v, err)
		}
		c.Audio.Enabled = enabled
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Field returns the playfield extent
func (c *Config) Field() physics.Field {
	return physics.Field{Width: c.Screen.Width, Height: c.Screen.Height}
}

// FrameInterval is the fixed delay after each presented frame
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Screen.FrameMs) * time.Millisecond
}

// ShotCooldown is the minimum gap between two successful spawns
func (c *Config) ShotCooldown() time.Duration {
	return time.Duration(c.Bullet.CooldownMs) * time.Millisecond
}

// KeyHold is the keyboard hold window
func (c *Config) KeyHold() time.Duration {
	return time.Duration(c.Input.HoldMs) * time.Millisecond
}

// PaletteColors parses the palette hex strings
func (c *Config) PaletteColors() ([]core.RGB, error) {
	colors := make([]core.RGB, 0, len(c.Palette))
	for i, hex := range c.Palette {
		cf, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: palette[%d] %q: %v", ErrInvalid, i, hex, err)
		}
		r, g, b := cf.RGB255()
		colors = append(colors, core.RGB{R: r, G: g, B: b})
	}
	return colors, nil
}

// Beeper returns the game-over tone settings
func (c *Config) Beeper() audio.BeeperConfig {
	return audio.BeeperConfig{
		Enabled:    c.Audio.Enabled,
		SampleRate: c.Audio.SampleRate,
		BufferSize: c.Audio.BufferSize,
		Frequency:  c.Audio.Frequency,
		Amplitude:  int16(c.Audio.Amplitude),
		Duration:   time.Duration(c.Audio.DurationMs) * time.Millisecond,
	}
}
