package hal

import (
	"log/slog"
)

type hostHAL struct {
	log  *slog.Logger
	fb   *Framebuffer
	loop *Dispatcher
	t    *hostTime
}

// New returns a host HAL with a cfg-sized framebuffer.
func New(cfg Config) HAL {
	return newHost(cfg.withDefaults())
}

func newHost(cfg Config) *hostHAL {
	return &hostHAL{
		log:  cfg.Logger,
		fb:   NewFramebuffer(cfg.Width, cfg.Height),
		loop: NewDispatcher(),
		t:    newHostTime(),
	}
}

func (h *hostHAL) Logger() *slog.Logger { return h.log }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Loop() *Dispatcher    { return h.loop }
func (h *hostHAL) Time() Time           { return h.t }

// resize applies a new surface size, framebuffer first so reshape callbacks
// see the new target.
func (h *hostHAL) resize(w, hh int) {
	h.fb.Resize(w, hh)
	if h.loop.Resize(w, hh) {
		h.log.Debug("hal: resize", "width", w, "height", hh)
	}
}

// update runs one loop iteration at time now: timers, the app step, then a
// redraw if one is pending.
func (h *hostHAL) update(now uint64, step func() error) (drawn bool, err error) {
	h.loop.Step(now)
	if step != nil {
		if err := step(); err != nil {
			return false, err
		}
	}
	return h.loop.Redraw(), nil
}

type hostDisplay struct {
	fb *Framebuffer
}

func (d hostDisplay) Framebuffer() *Framebuffer { return d.fb }
