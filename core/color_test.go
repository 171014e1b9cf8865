package core

import "testing"

func TestPaletteAdvanceWraps(t *testing.T) {
	colors := []RGB{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	p := NewPalette(colors)

	if p.Index() != 0 || p.Current() != colors[0] {
		t.Fatalf("fresh palette at index %d color %v", p.Index(), p.Current())
	}

	for i := 1; i <= 7; i++ {
		got := p.Advance()
		want := colors[i%len(colors)]
		if got != want {
			t.Errorf("advance %d: got %v, want %v", i, got, want)
		}
		if p.Index() != i%len(colors) {
			t.Errorf("advance %d: index %d, want %d", i, p.Index(), i%len(colors))
		}
	}
}

func TestPaletteCopiesInput(t *testing.T) {
	colors := []RGB{{1, 2, 3}}
	p := NewPalette(colors)
	colors[0] = RGBWhite

	if p.Current() != (RGB{1, 2, 3}) {
		t.Errorf("palette aliased caller slice: %v", p.Current())
	}
}

func TestNewPaletteEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty palette")
		}
	}()
	NewPalette(nil)
}

func TestPaddleGeometry(t *testing.T) {
	p := Paddle{X: 10, Y: 524, Width: 120, Height: 10}
	if p.Center() != 70 {
		t.Errorf("center = %d, want 70", p.Center())
	}
	if r := p.Rect(); r != (Rect{10, 524, 120, 10}) {
		t.Errorf("rect = %+v", r)
	}
}
