package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	// AudioBufferSamples is the device buffer size in frames
	AudioBufferSamples = 2048
)

// Game-over tone
const (
	ToneFrequency = 440.0
	// ToneAmplitude is the peak of the 16-bit signed sample
	ToneAmplitude = 28000
	ToneDuration  = 500 * time.Millisecond
)

// ToneCompletionGrace bounds the wait for a device that stops pulling samples
const ToneCompletionGrace = 250 * time.Millisecond
