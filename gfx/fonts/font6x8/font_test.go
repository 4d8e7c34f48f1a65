package font6x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type pixels struct {
	w, h int16
	set  map[[2]int16]bool
}

func newPixels(w, h int16) *pixels {
	return &pixels{w: w, h: h, set: map[[2]int16]bool{}}
}

func (p *pixels) Size() (int16, int16) { return p.w, p.h }
func (p *pixels) Display() error       { return nil }
func (p *pixels) SetPixel(x, y int16, c color.RGBA) {
	p.set[[2]int16{x, y}] = true
}

func TestGlyphRows(t *testing.T) {
	g, ok := Glyph('A')
	if !ok {
		t.Fatalf("Glyph('A') ok = false")
	}
	want := [8]byte{0x1C, 0x22, 0x22, 0x3E, 0x22, 0x22, 0x22, 0x00}
	if g != want {
		t.Fatalf("Glyph('A') = %#v, want %#v", g, want)
	}
}

func TestGlyphLookup(t *testing.T) {
	upper, _ := Glyph('N')
	lower, _ := Glyph('n')
	if upper != lower {
		t.Fatalf("Glyph('n') != Glyph('N')")
	}

	q, _ := Glyph('?')
	for _, r := range []rune{'Ж', '€', '漢'} {
		g, ok := Glyph(r)
		if !ok || g != q {
			t.Fatalf("Glyph(%q) = %v, %v, want the '?' glyph", r, g, ok)
		}
	}

	deg, ok := Glyph('°')
	if !ok || deg == q {
		t.Fatalf("Glyph('°') fell back to '?'")
	}

	if _, ok := Glyph('\n'); ok {
		t.Fatalf("Glyph('\\n') ok = true, want false")
	}
}

func TestWriteLine(t *testing.T) {
	d := newPixels(64, 16)
	tinyfont.WriteLine(d, Font, 0, 7, "I-", color.RGBA{R: 255, A: 255})

	// 'I' lights 11 pixels and '-' lights 5.
	if len(d.set) != 16 {
		t.Fatalf("lit pixels = %d, want 16", len(d.set))
	}
	// Top bar of 'I' sits on the first row of the cell.
	if !d.set[[2]int16{1, 0}] || !d.set[[2]int16{3, 0}] {
		t.Fatalf("top bar of 'I' missing: %v", d.set)
	}
	// The dash is one cell to the right, on row 3.
	for x := int16(6); x < 11; x++ {
		if !d.set[[2]int16{x, 3}] {
			t.Fatalf("dash pixel (%d, 3) missing", x)
		}
	}
}

func TestFontMetrics(t *testing.T) {
	if Font.GetYAdvance() != 8 {
		t.Fatalf("GetYAdvance() = %d, want 8", Font.GetYAdvance())
	}
	info := Font.GetGlyph('x').Info()
	if info.XAdvance != 6 || info.YOffset != -7 {
		t.Fatalf("Info() = %+v, want XAdvance 6, YOffset -7", info)
	}
}
