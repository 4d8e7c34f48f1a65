// Package hud draws a small text overlay onto a frame just before it is
// presented.
package hud

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"planet/gfx/fixedgl"
	"planet/gfx/fonts/font6x8"
)

const margin = 2

// Overlay wraps a render target. Drawing passes straight through; Present
// stamps the current status lines and then presents the wrapped target.
type Overlay struct {
	fixedgl.Target

	lines func() []string
	font  tinyfont.Fonter

	Fg color.RGBA
	Bg color.RGBA
}

var (
	_ fixedgl.Target    = (*Overlay)(nil)
	_ fixedgl.Presenter = (*Overlay)(nil)
)

// New returns an overlay on t that shows whatever lines returns at present
// time.
func New(t fixedgl.Target, lines func() []string) *Overlay {
	return &Overlay{
		Target: t,
		lines:  lines,
		font:   font6x8.Font,
		Fg:     colornames.Yellow,
		Bg:     colornames.Black,
	}
}

// Draw stamps the status lines in the top left corner, each with a one pixel
// drop shadow.
func (o *Overlay) Draw() {
	if o.lines == nil {
		return
	}
	d := displayer{t: o.Target}
	y := int16(margin + 7)
	for _, line := range o.lines() {
		tinyfont.WriteLine(d, o.font, margin+1, y+1, line, o.Bg)
		tinyfont.WriteLine(d, o.font, margin, y, line, o.Fg)
		y += int16(o.font.GetYAdvance())
	}
}

func (o *Overlay) Present() error {
	o.Draw()
	if p, ok := o.Target.(fixedgl.Presenter); ok {
		return p.Present()
	}
	return nil
}

// Status formats the rotation angle and frame count.
func Status(angle float32, frames uint64) []string {
	return []string{
		fmt.Sprintf("ANGLE %3.0f°", angle),
		fmt.Sprintf("FRAME %d", frames),
	}
}

// displayer adapts a fixedgl.Target to the tinygo display interface so
// tinyfont can draw on it.
type displayer struct {
	t fixedgl.Target
}

var _ drivers.Displayer = displayer{}

func (d displayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), fixedgl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d displayer) Display() error { return nil }
