package hal

import (
	"context"
	"fmt"
	"time"
)

// RunHeadless drives newApp without opening a window. The clock advances by
// one tick period per update, so a run of N ticks is reproducible no matter
// how fast the host is.
func RunHeadless(ctx context.Context, cfg Config, newApp NewApp) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg)
	return runHeadless(ctx, h, cfg, newApp)
}

func runHeadless(ctx context.Context, h *hostHAL, cfg Config, newApp NewApp) error {
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	h.resize(cfg.Width, cfg.Height)
	h.log.Info("hal: headless start", "width", cfg.Width, "height", cfg.Height, "hz", cfg.Hz, "ticks", cfg.Ticks)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick, frames uint64
	for {
		select {
		case <-ctx.Done():
			h.log.Info("hal: headless stop", "ticks", tick, "frames", frames, "reason", ctx.Err())
			return ctx.Err()
		case <-t.C:
			drawn, err := h.update(h.t.advance(d), step)
			if err != nil {
				return err
			}
			if drawn {
				frames++
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				h.log.Info("hal: headless stop", "ticks", tick, "frames", frames)
				return nil
			}
		}
	}
}
