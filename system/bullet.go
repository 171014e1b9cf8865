package system

import (
	"time"
)

// Bullet is one arena slot; inactive slots are always the zero value
type Bullet struct {
	X, Y   int
	Active bool
}

// Magazine is a fixed-capacity bullet arena
// Slots are reused in place, a shot takes the lowest free index
// Spawns are rate limited against the previous successful spawn only
type Magazine struct {
	slots    []Bullet
	speed    int
	cooldown time.Duration
	spawnY   int
	lastShot time.Time // zero until the first successful spawn
}

// NewMagazine creates an empty arena; bullets start at spawnY and climb speed pixels per frame
func NewMagazine(capacity, speed int, cooldown time.Duration, spawnY int) *Magazine {
	return &Magazine{
		slots:    make([]Bullet, capacity),
		speed:    speed,
		cooldown: cooldown,
		spawnY:   spawnY,
	}
}

// Spawn fires a bullet at x if the cooldown elapsed and a slot is free
// A full arena or an active cooldown is a silent no-op
func (m *Magazine) Spawn(now time.Time, x int) bool {
	if !m.lastShot.IsZero() && now.Sub(m.lastShot) < m.cooldown {
		return false
	}
	for i := range m.slots {
		if m.slots[i].Active {
			continue
		}
		m.slots[i] = Bullet{X: x, Y: m.spawnY, Active: true}
		m.lastShot = now
		return true
	}
	return false
}

// Advance moves every active bullet up and frees slots that reached the top in the same call
func (m *Magazine) Advance() {
	for i := range m.slots {
		b := &m.slots[i]
		if !b.Active {
			continue
		}
		b.Y -= m.speed
		if b.Y <= 0 {
			*b = Bullet{}
		}
	}
}

// ForEachActive calls fn for each live bullet in slot order
func (m *Magazine) ForEachActive(fn func(Bullet)) {
	for _, b := range m.slots {
		if b.Active {
			fn(b)
		}
	}
}

// ActiveCount returns the number of live bullets
func (m *Magazine) ActiveCount() int {
	n := 0
	for _, b := range m.slots {
		if b.Active {
			n++
		}
	}
	return n
}

// Slots returns a snapshot of the arena
func (m *Magazine) Slots() []Bullet {
	out := make([]Bullet, len(m.slots))
	copy(out, m.slots)
	return out
}

// Capacity returns the arena size
func (m *Magazine) Capacity() int {
	return len(m.slots)
}

// Reset frees every slot and forgets the last shot
func (m *Magazine) Reset() {
	clear(m.slots)
	m.lastShot = time.Time{}
}
