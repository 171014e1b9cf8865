package input

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/paddleball/constant"
	"github.com/lixenwraith/paddleball/core"
)

// ErrQuit is returned by Pump when the player asked to leave
var ErrQuit = errors.New("input: quit requested")

// EventSource is the blocking half of a tcell screen
type EventSource interface {
	PollEvent() tcell.Event
}

// keyID indexes the emulated pad inputs
type keyID int

const (
	keyLeft keyID = iota
	keyRight
	keyUp
	keyDown
	keyShoot
	keyCount
)

// Keyboard emulates an analog pad from terminal key events
// Terminals report presses and auto-repeats but never releases, so each
// press keeps its input held for the hold window after the latest repeat
type Keyboard struct {
	mu      sync.Mutex
	clock   core.Clock
	hold    time.Duration
	pressed [keyCount]time.Time
}

// NewKeyboard creates a keyboard pad; hold <= 0 uses the stock window
func NewKeyboard(clock core.Clock, hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = constant.KeyHoldWindow
	}
	return &Keyboard{clock: clock, hold: hold}
}

// HandleEvent records a key press; returns true when the key asks to quit
func (k *Keyboard) HandleEvent(ev *tcell.EventKey) (quit bool) {
	id, ok := keyID(-1), false

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		id, ok = keyLeft, true
	case tcell.KeyRight:
		id, ok = keyRight, true
	case tcell.KeyUp:
		id, ok = keyUp, true
	case tcell.KeyDown:
		id, ok = keyDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'h', 'a':
			id, ok = keyLeft, true
		case 'l', 'd':
			id, ok = keyRight, true
		case 'k', 'w':
			id, ok = keyUp, true
		case 'j', 's':
			id, ok = keyDown, true
		case ' ', 'x':
			id, ok = keyShoot, true
		}
	}

	if ok {
		now := k.clock.Now()
		k.mu.Lock()
		k.pressed[id] = now
		// Opposite directions cancel the older one
		switch id {
		case keyLeft:
			k.pressed[keyRight] = time.Time{}
		case keyRight:
			k.pressed[keyLeft] = time.Time{}
		case keyUp:
			k.pressed[keyDown] = time.Time{}
		case keyDown:
			k.pressed[keyUp] = time.Time{}
		}
		k.mu.Unlock()
	}
	return false
}

// Peek returns the pad state as of now
func (k *Keyboard) Peek() State {
	now := k.clock.Now()

	k.mu.Lock()
	defer k.mu.Unlock()

	held := func(id keyID) bool {
		t := k.pressed[id]
		return !t.IsZero() && now.Sub(t) < k.hold
	}

	st := NeutralState()
	switch {
	case held(keyLeft):
		st.LX = 0
	case held(keyRight):
		st.LX = constant.AxisMax
	}
	switch {
	case held(keyUp):
		st.LY = 0
	case held(keyDown):
		st.LY = constant.AxisMax
	}
	if held(keyShoot) {
		st.Buttons |= ButtonCross
	}
	return st
}

// Pump feeds terminal events into the keyboard until the source closes or a quit key arrives
// onResize runs on the pump goroutine for each resize event
func (k *Keyboard) Pump(ctx context.Context, src EventSource, onResize func()) error {
	for {
		ev := src.PollEvent()
		if ev == nil {
			// Source finalized
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if k.HandleEvent(ev) {
				return ErrQuit
			}
		case *tcell.EventResize:
			if onResize != nil {
				onResize()
			}
		}
	}
}
