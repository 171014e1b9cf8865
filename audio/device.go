package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrSpeakerShutdown is returned by Open after Shutdown; the speaker package cannot be reinitialized
var ErrSpeakerShutdown = errors.New("audio: speaker shut down")

//go:generate go tool mockgen -destination=./mocks/device_mock.go -package=mocks . Device

// Device is an output that pulls samples from a streamer while open
// Open may be called once per tone; implementations decide what reopening costs
type Device interface {
	Open(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Close()
}

// Speaker drives the system audio output through beep's speaker package
// The speaker can only be initialized once per process, so the first Open
// initializes it and later Opens reuse it. Close only clears playback;
// Shutdown releases the device
type Speaker struct {
	mu          sync.Mutex
	initialized bool
	shutdown    bool

	// speaker package hooks, replaced in tests
	init  func(sr beep.SampleRate, bufferSize int) error
	play  func(s ...beep.Streamer)
	clear func()
	close func()
}

// NewSpeaker creates a speaker on the system output
func NewSpeaker() *Speaker {
	return &Speaker{
		init:  speaker.Init,
		play:  speaker.Play,
		clear: speaker.Clear,
		close: speaker.Close,
	}
}

// Open initializes the output device on first use
func (s *Speaker) Open(sr beep.SampleRate, bufferSize int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shutdown {
		return ErrSpeakerShutdown
	}
	if s.initialized {
		return nil
	}
	if err := s.init(sr, bufferSize); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Play starts pulling samples from st
func (s *Speaker) Play(st beep.Streamer) {
	s.play(st)
}

// Close stops playback and keeps the device ready for the next tone
func (s *Speaker) Close() {
	s.clear()
}

// Shutdown stops playback and releases the output device
func (s *Speaker) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.clear()
	s.close()
	s.shutdown = true
}
