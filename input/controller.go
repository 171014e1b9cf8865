// Package input turns controller snapshots into paddle commands.
//
// A Controller mimics a handheld analog pad: a button bitmask and two axes
// in 0..255 with 128 at rest. The Sampler maps the horizontal axis into a
// signed deflection, applies the dead zone and scales it into a paddle
// velocity. Keyboard emulates such a pad from terminal key events.
package input

import "github.com/lixenwraith/paddleball/constant"

// Button is a controller button bitmask
type Button uint16

const (
	ButtonCross Button = 1 << iota
	ButtonCircle
	ButtonSquare
	ButtonTriangle
)

// State is one controller poll
type State struct {
	Buttons Button
	LX, LY  uint8
}

// Pressed reports whether every bit of b is held
func (s State) Pressed(b Button) bool {
	return s.Buttons&b == b
}

// NeutralState is a pad at rest with no buttons held
func NeutralState() State {
	return State{LX: constant.AxisNeutral, LY: constant.AxisNeutral}
}

// Controller is polled once per frame
type Controller interface {
	Peek() State
}
