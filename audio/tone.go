package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Tone is an endless sine generator quantized to signed 16-bit mono
// Each sample is copied to both channels of the beep stream
type Tone struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	phase     int
}

// NewTone creates a sine generator; amplitude is the 16-bit peak
func NewTone(sr beep.SampleRate, freq float64, amplitude int16) *Tone {
	return &Tone{
		sr:        sr,
		freq:      freq,
		amplitude: float64(amplitude),
	}
}

// Sample16 returns the next sample as the device would receive it
func (t *Tone) Sample16() int16 {
	s := int16(t.amplitude * math.Sin(2*math.Pi*t.freq*float64(t.phase)/float64(t.sr)))
	t.phase++
	return s
}

// Stream fills samples with the tone on both channels; it never ends
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := float64(t.Sample16()) / (math.MaxInt16 + 1)
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err always returns nil
func (t *Tone) Err() error {
	return nil
}
