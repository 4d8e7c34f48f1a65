package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"planet/gfx/fixedgl"
	"planet/gfx/fonts/font6x8"
	"planet/hal"
)

// guard wraps a loop callback. A panic is logged with its stack, painted on
// the framebuffer and latched; after that every guarded callback is a no-op.
func (a *App) guard(name string, fn func()) func() {
	return func() {
		if a.failed != nil {
			return
		}
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			a.failed = fmt.Errorf("app: %s callback panicked: %v", name, v)
			a.log.Error("app: panic", "callback", name, "panic", v, "stack", string(stack))
			a.panicName, a.panicVal, a.panicStack = name, v, stack
			a.showPanic()
		}()
		fn()
	}
}

// showPanic paints the latched panic on the framebuffer. It runs again on
// reshape since a resize discards the framebuffer contents.
func (a *App) showPanic() {
	name, v, stack := a.panicName, a.panicVal, a.panicStack
	fb := a.h.Display().Framebuffer()
	fb.Clear(fixedgl.RGB(255, 255, 255))

	lines := []string{
		"PLANET PANIC",
		"callback: " + name,
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	d := panicDisplay{fb: fb}
	font := font6x8.Font
	fontWidth := int16(6)
	fontHeight := int16(font.GetYAdvance())
	fg := color.RGBA{A: 255}

	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}
	y := int16(0)
	maxH := int16(fb.Height())
outer:
	for _, line := range lines {
		for len(line) > 0 {
			if y+fontHeight > maxH {
				break outer
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y+7, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

type panicDisplay struct {
	fb *hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetPixel(int(x), int(y), fixedgl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
}

func (d panicDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
