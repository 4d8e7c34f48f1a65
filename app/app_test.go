package app

import (
	"context"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planet/gfx/fixedgl"
	"planet/hal"
	"planet/internal/ppm"
)

func whiteTexture() *ppm.Image {
	pix := make([]byte, 4*4*3)
	for i := range pix {
		pix[i] = 255
	}
	return &ppm.Image{Pix: pix, Width: 4, Height: 4, MaxVal: 255}
}

func headlessConfig(ticks uint64) hal.Config {
	return hal.Config{
		Title:  "Planet",
		Width:  48,
		Height: 48,
		Hz:     1000,
		Ticks:  ticks,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestHeadlessRun(t *testing.T) {
	var a *App
	err := hal.RunHeadless(context.Background(), headlessConfig(60), NewApp(Config{Texture: whiteTexture()}, func(x *App) { a = x }))
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if a == nil {
		t.Fatalf("ready callback not called")
	}

	// 60 ticks of 1ms fire the 25ms rotation timer twice.
	if got := a.Scene().Angle(); got != 4 {
		t.Fatalf("Angle() = %v, want 4", got)
	}
	// The initial reshape draws once, each rotation step once more.
	if got := a.Scene().Frames(); got != 3 {
		t.Fatalf("Frames() = %d, want 3", got)
	}

	fb := a.h.Display().Framebuffer()
	if fb.Presented() != 3 {
		t.Fatalf("Presented() = %d, want 3", fb.Presented())
	}
	c := fb.Snapshot().RGBAAt(24, 24)
	if c.B == 0 || c.B <= c.R {
		t.Fatalf("center pixel = %v, want the lit sphere", c)
	}
	if corner := fb.Snapshot().RGBAAt(0, 0); corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Fatalf("corner pixel = %v, want black", corner)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := a.Dump(path); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("Stat(%s) = %v, %v", path, st, err)
	}
}

func TestHeadlessRunWithHUD(t *testing.T) {
	var a *App
	err := hal.RunHeadless(context.Background(), headlessConfig(30), NewApp(Config{Texture: whiteTexture(), HUD: true}, func(x *App) { a = x }))
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	img := a.h.Display().Framebuffer().Snapshot()
	yellow := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 48; x++ {
			c := img.RGBAAt(x, y)
			if c.R == 255 && c.G == 255 && c.B == 0 {
				yellow++
			}
		}
	}
	if yellow == 0 {
		t.Fatalf("no HUD text in the top rows")
	}
}

func TestNewRequiresTexture(t *testing.T) {
	h := hal.New(headlessConfig(0))
	if _, err := New(h, Config{}); err == nil {
		t.Fatalf("New() without texture error = nil, want error")
	}
}

func TestPanicGuard(t *testing.T) {
	h := hal.New(headlessConfig(0))
	a, err := New(h, Config{Texture: whiteTexture(), ExitOnPanic: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	calls := 0
	a.guard("timer", func() { panic("boom") })()
	a.guard("timer", func() { calls++ })()
	if calls != 0 {
		t.Fatalf("guarded callback ran after a panic")
	}

	if err := a.Err(); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Err() = %v, want the panic", err)
	}
	if err := a.Step(); err == nil {
		t.Fatalf("Step() after panic = nil, want error")
	}

	fb := h.Display().Framebuffer()
	if fb.Presented() != 1 {
		t.Fatalf("Presented() = %d, want 1", fb.Presented())
	}
	if got := fb.At(47, 47); got != fixedgl.RGB(255, 255, 255) {
		t.Fatalf("At(47, 47) = %v, want white panic screen", got)
	}
}

func TestPanicScreenSurvivesResize(t *testing.T) {
	h := hal.New(headlessConfig(0))
	a, err := New(h, Config{Texture: whiteTexture(), ExitOnPanic: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.guard("display", func() { panic("boom") })()

	fb := h.Display().Framebuffer()
	fb.Resize(64, 40)
	h.Loop().Resize(64, 40)

	if fb.Presented() != 2 {
		t.Fatalf("Presented() = %d, want 2", fb.Presented())
	}
	white := fixedgl.RGB(255, 255, 255)
	if got := fb.At(63, 39); got != white {
		t.Fatalf("At(63, 39) = %v, want white panic screen", got)
	}
	if got := fb.Snapshot().RGBAAt(63, 39); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("Snapshot().RGBAAt(63, 39) = %v, want white", got)
	}
	if a.Err() == nil {
		t.Fatalf("Err() = nil after resize, want the latched panic")
	}
}

func TestHeadlessStopsOnPanic(t *testing.T) {
	cfg := Config{Texture: whiteTexture(), ExitOnPanic: true}
	err := hal.RunHeadless(context.Background(), headlessConfig(100), func(h hal.HAL) (func() error, error) {
		var a *App
		step, err := NewApp(cfg, func(x *App) { a = x })(h)
		if err != nil {
			return nil, err
		}
		guardedLoop{a: a, loop: h.Loop()}.TimerFunc(5, func() { panic("late") })
		return step, nil
	})
	if err == nil || !strings.Contains(err.Error(), "late") {
		t.Fatalf("RunHeadless() error = %v, want the timer panic", err)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int16
		head, tail string
	}{
		{"abcdef", 4, "abcd", "ef"},
		{"abc", 4, "abc", ""},
		{"ёжик", 2, "ёж", "ик"},
		{"", 3, "", ""},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Fatalf("takeRunes(%q, %d) = %q, %q, want %q, %q", tt.s, tt.n, head, tail, tt.head, tt.tail)
		}
	}
}
