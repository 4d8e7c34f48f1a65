package app

import (
	"errors"
	"fmt"
	"log/slog"

	"planet/gfx/fixedgl"
	"planet/gfx/hud"
	"planet/hal"
	"planet/internal/framedump"
	"planet/internal/ppm"
	"planet/planet"
)

// statsEveryMs is how often Step logs the rotation state at debug level.
const statsEveryMs = 1000

type Config struct {
	Texture *ppm.Image
	// HUD stamps the angle and frame counter on every frame.
	HUD bool
	// ExitOnPanic makes Step report a recovered callback panic so the runner
	// stops. Otherwise the panic screen stays up until the window closes.
	ExitOnPanic bool
}

// App wires the planet scene to a HAL: the framebuffer becomes the render
// target and the HAL's dispatcher drives the scene callbacks.
type App struct {
	h     hal.HAL
	log   *slog.Logger
	cfg   Config
	gl    *fixedgl.Context
	scene *planet.Scene
	hud   *hud.Overlay

	failed  error
	lastLog uint64

	panicName  string
	panicVal   any
	panicStack []byte
}

// New initializes the scene on h and registers its callbacks.
func New(h hal.HAL, cfg Config) (*App, error) {
	if cfg.Texture == nil {
		return nil, errors.New("app: no texture")
	}
	a := &App{h: h, log: h.Logger(), cfg: cfg}

	var target fixedgl.Target = h.Display().Framebuffer()
	if cfg.HUD {
		a.hud = hud.New(target, func() []string {
			return hud.Status(a.scene.Angle(), a.scene.Frames())
		})
		target = a.hud
	}
	a.gl = fixedgl.NewContext(target)
	a.scene = planet.New(a.gl, a.log)

	if err := a.scene.Initialize(cfg.Texture); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if err := a.scene.Start(guardedLoop{a: a, loop: h.Loop()}); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	a.log.Info("app: scene started",
		"texture", fmt.Sprintf("%dx%d", cfg.Texture.Width, cfg.Texture.Height),
		"hud", cfg.HUD)
	return a, nil
}

// NewApp adapts New to a hal runner. The created App is handed to ready
// before the runner starts.
func NewApp(cfg Config, ready func(*App)) hal.NewApp {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		if ready != nil {
			ready(a)
		}
		return a.Step, nil
	}
}

// Step runs once per runner update.
func (a *App) Step() error {
	if a.failed != nil && a.cfg.ExitOnPanic {
		return a.failed
	}
	now := a.h.Time().Millis()
	if now-a.lastLog >= statsEveryMs {
		a.lastLog = now
		a.log.Debug("app: stats", "ms", now, "angle", a.scene.Angle(), "frames", a.scene.Frames())
	}
	return nil
}

// Dump writes the last presented frame to path.
func (a *App) Dump(path string) error {
	img := a.h.Display().Framebuffer().Snapshot()
	if err := framedump.Write(path, img); err != nil {
		return err
	}
	a.log.Info("app: frame written", "path", path, "frames", a.scene.Frames())
	return nil
}

func (a *App) Scene() *planet.Scene { return a.scene }

// Err returns the recovered panic, if any.
func (a *App) Err() error { return a.failed }

// guardedLoop registers scene callbacks wrapped in the panic guard.
type guardedLoop struct {
	a    *App
	loop *hal.Dispatcher
}

func (g guardedLoop) DisplayFunc(fn func()) { g.loop.DisplayFunc(g.a.guard("display", fn)) }
func (g guardedLoop) PostRedisplay()        { g.loop.PostRedisplay() }

func (g guardedLoop) ReshapeFunc(fn func(w, h int)) {
	g.loop.ReshapeFunc(func(w, h int) {
		if g.a.failed != nil {
			g.a.showPanic()
			return
		}
		g.a.guard("reshape", func() { fn(w, h) })()
	})
}

func (g guardedLoop) TimerFunc(delayMs int, fn func()) {
	g.loop.TimerFunc(delayMs, g.a.guard("timer", fn))
}
