//go:build cgo

package hal

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that shows the presented framebuffer and
// feeds the dispatcher from ebiten's update loop. It blocks until the window
// closes or ctx is done.
func RunWindow(ctx context.Context, cfg Config, newApp NewApp) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{ctx: ctx, h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.X >= 0 && cfg.Y >= 0 {
		ebiten.SetWindowPosition(cfg.X, cfg.Y)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Hz)
	h.log.Info("hal: window start", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "tps", cfg.Hz)

	err = ebiten.RunGame(g)
	h.log.Info("hal: window closed", "frames", g.frames)
	return err
}

type hostGame struct {
	ctx    context.Context
	h      *hostHAL
	step   func() error
	fbImg  *ebiten.Image
	pix    []byte
	frames uint64
}

func (g *hostGame) Update() error {
	if g.ctx.Err() != nil || quitRequested() {
		return ebiten.Termination
	}
	g.h.loop.Step(g.h.t.step())
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.h.loop.Redraw() {
		g.frames++
	}

	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if w == 0 || h == 0 {
		return
	}
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.pix = make([]byte, w*h*4)
	}

	fb.snapshot(g.pix)
	for i := 3; i < len(g.pix); i += 4 {
		g.pix[i] = 0xFF
	}
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.h.resize(outsideWidth, outsideHeight)
	}
	w, h := g.h.fb.Width(), g.h.fb.Height()
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	return w, h
}
