package audio

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
)

// fakeOutput mirrors the speaker package: Init succeeds once per process
type fakeOutput struct {
	inits, plays, clears, closes int
}

func (f *fakeOutput) speaker() *Speaker {
	return &Speaker{
		init: func(beep.SampleRate, int) error {
			f.inits++
			if f.inits > 1 {
				return errors.New("speaker cannot be initialized more than once")
			}
			return nil
		},
		play: func(s ...beep.Streamer) {
			f.plays++
			buf := make([][2]float64, 512)
			for _, st := range s {
				for {
					if _, ok := st.Stream(buf); !ok {
						break
					}
				}
			}
		},
		clear: func() { f.clears++ },
		close: func() { f.closes++ },
	}
}

func TestSpeakerInitializesOnce(t *testing.T) {
	out := &fakeOutput{}
	s := out.speaker()

	for i := 0; i < 3; i++ {
		if err := s.Open(44100, 2048); err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		s.Close()
	}
	if out.inits != 1 {
		t.Errorf("inits = %d, want 1", out.inits)
	}
	if out.clears != 3 || out.closes != 0 {
		t.Errorf("clears = %d closes = %d, want 3 and 0", out.clears, out.closes)
	}

	s.Shutdown()
	if out.closes != 1 {
		t.Errorf("closes after shutdown = %d, want 1", out.closes)
	}
	if err := s.Open(44100, 2048); !errors.Is(err, ErrSpeakerShutdown) {
		t.Errorf("open after shutdown = %v, want ErrSpeakerShutdown", err)
	}
	if out.inits != 1 {
		t.Errorf("reinitialized after shutdown: inits = %d", out.inits)
	}
}

func TestSpeakerInitFailureRetries(t *testing.T) {
	calls := 0
	s := &Speaker{
		init: func(beep.SampleRate, int) error {
			calls++
			if calls == 1 {
				return errors.New("no output device")
			}
			return nil
		},
		clear: func() {},
		close: func() {},
	}

	if err := s.Open(44100, 2048); err == nil {
		t.Fatal("expected init failure")
	}
	if err := s.Open(44100, 2048); err != nil {
		t.Errorf("second open after failed init: %v", err)
	}
}

func TestSpeakerShutdownBeforeOpen(t *testing.T) {
	out := &fakeOutput{}
	s := out.speaker()
	s.Shutdown()
	if out.closes != 0 || out.clears != 0 {
		t.Errorf("shutdown touched an uninitialized device: clears=%d closes=%d", out.clears, out.closes)
	}
}

func TestConsecutiveGameOversEachPlayTone(t *testing.T) {
	out := &fakeOutput{}
	cfg := DefaultBeeperConfig()
	cfg.Duration = 2 * time.Millisecond

	var logs bytes.Buffer
	b := NewBeeper(out.speaker(), cfg, log.New(&logs))

	for i := 0; i < 2; i++ {
		if err := b.Play(context.Background()); err != nil {
			t.Fatalf("game over %d: %v", i+1, err)
		}
	}
	b.Beep(context.Background())

	if out.plays != 3 {
		t.Errorf("plays = %d, want 3", out.plays)
	}
	if out.inits != 1 {
		t.Errorf("inits = %d, want 1", out.inits)
	}
	if logs.Len() != 0 {
		t.Errorf("tone skipped: %q", logs.String())
	}
}
