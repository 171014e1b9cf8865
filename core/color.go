package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Palette is an ordered color cycle with a wrapping cursor
// The zero index is the first entry; Advance wraps modulo the palette size
type Palette struct {
	colors []RGB
	index  int
}

// NewPalette copies colors into a palette positioned at the first entry
// Panics on an empty slice since a palette without colors cannot draw
func NewPalette(colors []RGB) *Palette {
	if len(colors) == 0 {
		panic("core: empty palette")
	}
	c := make([]RGB, len(colors))
	copy(c, colors)
	return &Palette{colors: c}
}

// Current returns the active color
func (p *Palette) Current() RGB {
	return p.colors[p.index]
}

// Index returns the active position in the cycle
func (p *Palette) Index() int {
	return p.index
}

// Len returns the number of colors in the cycle
func (p *Palette) Len() int {
	return len(p.colors)
}

// Advance moves to the next color, wrapping to the first after the last
func (p *Palette) Advance() RGB {
	p.index = (p.index + 1) % len(p.colors)
	return p.colors[p.index]
}
