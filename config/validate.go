package config

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// Validate checks that every value yields a playable game
func (c *Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive"},
		{c.Screen.FrameMs > 0, "screen.frame_ms must be positive"},
		{c.Ball.Radius > 0, "ball.radius must be positive"},
		{2*c.Ball.Radius < min(c.Screen.Width, c.Screen.Height), "ball must fit on screen"},
		{c.Ball.Speed > 0, "ball.speed must be positive"},
		{c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive"},
		{c.Paddle.Width < c.Screen.Width, "paddle must be narrower than the screen"},
		{2*c.Paddle.Height < c.Screen.Height, "paddle margin must fit on screen"},
		{c.Paddle.Speed > 0, "paddle.speed must be positive"},
		{c.Bullet.Count > 0, "bullet.count must be positive"},
		{c.Bullet.Speed > 0, "bullet.speed must be positive"},
		{c.Bullet.Width > 0 && c.Bullet.Height > 0, "bullet size must be positive"},
		{c.Bullet.CooldownMs >= 0, "bullet.cooldown_ms must not be negative"},
		{c.Input.DeadZone >= 0 && c.Input.DeadZone < 1, "input.dead_zone must be in [0, 1)"},
		{c.Input.VelocityScale > 0, "input.velocity_scale must be positive"},
		{c.Input.HoldMs > 0, "input.hold_ms must be positive"},
		{c.Audio.SampleRate > 0, "audio.sample_rate must be positive"},
		{c.Audio.BufferSize > 0, "audio.buffer_size must be positive"},
		{c.Audio.Frequency > 0, "audio.frequency must be positive"},
		{c.Audio.Amplitude > 0 && c.Audio.Amplitude <= math.MaxInt16, "audio.amplitude must be in (0, 32767]"},
		{c.Audio.DurationMs >= 0, "audio.duration_ms must not be negative"},
		{len(c.Palette) > 0, "palette must not be empty"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.msg)
		}
	}

	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
