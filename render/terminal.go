package render

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/paddleball/core"
	"github.com/lixenwraith/paddleball/physics"
)

// halfBlock draws two vertically stacked pixels in one cell
const halfBlock = '▀'

// Terminal is a Canvas on a tcell screen
// Every cell holds two pixels, so a cols x rows terminal shows a cols x 2*rows image
// of the logical playfield, stretched to fill the screen
type Terminal struct {
	screen tcell.Screen
	field  physics.Field

	cols, rows int
	pixels     []core.RGB // cols * rows*2, row-major
	color      core.RGB

	resized atomic.Bool
}

// OpenTerminal creates and initializes the terminal screen
func OpenTerminal(field physics.Field) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return NewTerminal(screen, field), nil
}

// NewTerminal wraps an initialized screen
func NewTerminal(screen tcell.Screen, field physics.Field) *Terminal {
	t := &Terminal{screen: screen, field: field}
	t.fit()
	return t
}

// Screen exposes the underlying screen for event polling
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Resized marks the pixel grid stale; safe to call from the event goroutine
func (t *Terminal) Resized() {
	t.resized.Store(true)
}

// fit sizes the pixel grid to the current screen
func (t *Terminal) fit() {
	cols, rows := t.screen.Size()
	t.cols, t.rows = max(cols, 0), max(rows, 0)
	size := t.cols * t.rows * 2
	if cap(t.pixels) < size {
		t.pixels = make([]core.RGB, size)
	} else {
		t.pixels = t.pixels[:size]
	}
}

// SetColor selects the color for subsequent draw calls
func (t *Terminal) SetColor(c core.RGB) {
	t.color = c
}

// Clear fills the whole image with the current color
func (t *Terminal) Clear() {
	if t.resized.Swap(false) {
		t.fit()
		t.screen.Sync()
	}
	for i := range t.pixels {
		t.pixels[i] = t.color
	}
}

// DrawPoint sets the pixel covering logical (x, y); off-field points are dropped
func (t *Terminal) DrawPoint(x, y int) {
	if x < 0 || y < 0 || x >= t.field.Width || y >= t.field.Height {
		return
	}
	px, py := t.toPixel(x, y)
	t.set(px, py)
}

// FillRect fills every pixel the rectangle overlaps; a visible rectangle covers at least one pixel
func (t *Terminal) FillRect(r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := max(r.X, 0)
	y0 := max(r.Y, 0)
	x1 := min(r.X+r.W, t.field.Width)
	y1 := min(r.Y+r.H, t.field.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	px0, py0 := t.toPixel(x0, y0)
	px1, py1 := t.toPixelCeil(x1, y1)
	px1 = max(px1, px0+1)
	py1 = max(py1, py0+1)

	for py := py0; py < py1; py++ {
		for px := px0; px < px1; px++ {
			t.set(px, py)
		}
	}
}

// Present composes pixel pairs into half-block cells and shows the frame
func (t *Terminal) Present() {
	for row := 0; row < t.rows; row++ {
		top := t.pixels[(2*row)*t.cols : (2*row+1)*t.cols]
		bottom := t.pixels[(2*row+1)*t.cols : (2*row+2)*t.cols]
		for col := 0; col < t.cols; col++ {
			t.screen.SetContent(col, row, halfBlock, nil, halfBlockStyle(top[col], bottom[col]))
		}
	}
	t.screen.Show()
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Pixel returns the color at pixel (px, py) of the current image
func (t *Terminal) Pixel(px, py int) (core.RGB, bool) {
	if px < 0 || py < 0 || px >= t.cols || py >= t.rows*2 {
		return core.RGB{}, false
	}
	return t.pixels[py*t.cols+px], true
}

func (t *Terminal) set(px, py int) {
	if px < 0 || py < 0 || px >= t.cols || py >= t.rows*2 {
		return
	}
	t.pixels[py*t.cols+px] = t.color
}

func (t *Terminal) toPixel(x, y int) (int, int) {
	return x * t.cols / t.field.Width, y * t.rows * 2 / t.field.Height
}

func (t *Terminal) toPixelCeil(x, y int) (int, int) {
	w, h := t.field.Width, t.field.Height
	return (x*t.cols + w - 1) / w, (y*t.rows*2 + h - 1) / h
}
