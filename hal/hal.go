package hal

import (
	"errors"
	"log/slog"
)

var ErrNotImplemented = errors.New("not implemented")

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() *Framebuffer
}

// Time provides a millisecond clock.
//
// The window runner follows wall time; the headless runner advances it by a
// fixed period per tick.
type Time interface {
	Millis() uint64
}

// HAL provides the only contact point between the renderer and the host.
type HAL interface {
	Logger() *slog.Logger
	Display() Display
	Loop() *Dispatcher
	Time() Time
}

// Config describes the window (or the offscreen surface in headless mode).
type Config struct {
	Title  string
	Width  int
	Height int
	// X and Y place the window; negative values leave placement to the host.
	X, Y int

	// Hz is the update rate: ebiten TPS in a window, the ticker rate headless.
	Hz int
	// Ticks stops a headless run after that many updates; 0 runs until ctx is done.
	Ticks uint64

	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Hz <= 0 {
		c.Hz = 60
	}
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 320
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// NewApp wires an application onto h. The returned step, if any, runs once
// per runner update after due timers have fired.
type NewApp func(h HAL) (step func() error, err error)
