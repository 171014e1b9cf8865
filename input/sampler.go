package input

import (
	"math"

	"github.com/lixenwraith/paddleball/constant"
)

// Command is the per-frame intent derived from a controller poll
type Command struct {
	// Deflection is the raw horizontal stick position in [-1, 1]
	Deflection float64
	// Velocity is the paddle velocity after the dead zone, zero when inside it
	Velocity float64
	// Vertical is read for completeness; gameplay ignores it
	Vertical float64
	Shoot    bool
}

// Sampler converts controller state into commands
type Sampler struct {
	DeadZone      float64
	VelocityScale float64
	ShootButton   Button
}

// NewSampler returns a sampler with the stock dead zone and scale
func NewSampler() Sampler {
	return Sampler{
		DeadZone:      constant.StickDeadZone,
		VelocityScale: constant.StickVelocityScale,
		ShootButton:   ButtonCross,
	}
}

// MapAxis maps a raw 0..255 axis into [-1, 1]
func MapAxis(v uint8) float64 {
	return float64(v)/constant.AxisMax*2 - 1
}

// Sample reads one controller state
// Shoot requires the shoot button alone; chords with other buttons do not fire
func (s Sampler) Sample(st State) Command {
	d := MapAxis(st.LX)
	cmd := Command{
		Deflection: d,
		Vertical:   MapAxis(st.LY),
		Shoot:      st.Buttons == s.ShootButton,
	}
	if math.Abs(d) >= s.DeadZone {
		cmd.Velocity = d * s.VelocityScale
	}
	return cmd
}
