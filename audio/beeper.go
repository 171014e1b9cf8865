package audio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/lixenwraith/paddleball/constant"
)

// ErrDisabled is returned by Play when audio is turned off
var ErrDisabled = errors.New("audio: disabled")

// BeeperConfig describes the game-over tone
type BeeperConfig struct {
	Enabled    bool
	SampleRate int
	BufferSize int
	Frequency  float64
	Amplitude  int16
	Duration   time.Duration
}

// DefaultBeeperConfig returns the stock 440 Hz half-second tone
func DefaultBeeperConfig() BeeperConfig {
	return BeeperConfig{
		Enabled:    true,
		SampleRate: constant.AudioSampleRate,
		BufferSize: constant.AudioBufferSamples,
		Frequency:  constant.ToneFrequency,
		Amplitude:  constant.ToneAmplitude,
		Duration:   constant.ToneDuration,
	}
}

// Beeper plays a fixed tone synchronously: open, play, wait, close
// The device is only held for the duration of one tone
type Beeper struct {
	device Device
	cfg    BeeperConfig
	logger *log.Logger
}

// NewBeeper creates a beeper on device
func NewBeeper(device Device, cfg BeeperConfig, logger *log.Logger) *Beeper {
	return &Beeper{device: device, cfg: cfg, logger: logger}
}

// Play blocks until the device has consumed the tone and drained its buffer, or until ctx is done
// Device open failures are returned without playing
func (b *Beeper) Play(ctx context.Context) error {
	if !b.cfg.Enabled {
		return ErrDisabled
	}

	sr := beep.SampleRate(b.cfg.SampleRate)
	if err := b.device.Open(sr, b.cfg.BufferSize); err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	defer b.device.Close()

	done := make(chan struct{})
	tone := NewTone(sr, b.cfg.Frequency, b.cfg.Amplitude)
	b.device.Play(beep.Seq(
		beep.Take(sr.N(b.cfg.Duration), tone),
		beep.Callback(func() { close(done) }),
	))

	// A stalled device must not freeze the game past the tone
	limit := time.NewTimer(b.cfg.Duration + sr.D(b.cfg.BufferSize) + constant.ToneCompletionGrace)
	defer limit.Stop()
	select {
	case <-done:
	case <-limit.C:
		return nil
	case <-ctx.Done():
		return nil
	}

	// The last buffer is still in the device when the callback fires
	drain := time.NewTimer(sr.D(b.cfg.BufferSize))
	defer drain.Stop()
	select {
	case <-drain.C:
	case <-ctx.Done():
	}
	return nil
}

// Beep plays the tone and logs failures; audio is never fatal to the game
func (b *Beeper) Beep(ctx context.Context) {
	err := b.Play(ctx)
	switch {
	case err == nil, errors.Is(err, ErrDisabled):
	default:
		b.logger.Warn("game-over tone skipped", "err", err)
	}
}
