package constant

import "time"

// Shooting
const (
	// ShotCooldown is the minimum wall-clock gap between two successful spawns
	ShotCooldown = 300 * time.Millisecond
)

// Analog stick mapping
const (
	// AxisMax is the raw axis upper bound, AxisNeutral its resting value
	AxisMax     = 255
	AxisNeutral = 128

	// StickDeadZone ignores deflections below this magnitude
	StickDeadZone = 0.2

	// StickVelocityScale converts deflection into paddle velocity
	StickVelocityScale = 10.0
)

// Keyboard stick emulation
const (
	// KeyHoldWindow keeps a pressed key active until the terminal's key repeat refreshes it
	KeyHoldWindow = 120 * time.Millisecond
)
