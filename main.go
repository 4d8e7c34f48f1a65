package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"planet/app"
	"planet/hal"
	"planet/internal/buildinfo"
	"planet/internal/ppm"
)

func main() {
	var (
		headless bool
		hz       int
		ticks    uint64
		texture  string
		dump     string
		showHUD  bool
		verbose  bool
		version  bool
		width    int
		height   int
	)
	flag.StringVar(&texture, "texture", "scuff.ppm", "Binary PPM (P6) texture to wrap around the sphere.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 60, "Update rate (window TPS, or tick rate in headless mode).")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.IntVar(&width, "width", 0, "Window width (0 = texture width).")
	flag.IntVar(&height, "height", 0, "Window height (0 = texture height).")
	flag.StringVar(&dump, "dump", "", "Headless only: write the last frame to this .bmp, .tiff or .png file.")
	flag.BoolVar(&showHUD, "hud", false, "Overlay the rotation angle and frame counter.")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	img, err := ppm.Load(texture)
	if err != nil {
		fmt.Print("Could not open texture ppm.")
		logger.Error("planet: texture load failed", "path", texture, "err", err)
		os.Exit(-1)
	}
	logger.Info("planet: starting", "build", buildinfo.Short(), "texture", texture,
		"width", img.Width, "height", img.Height)

	if width <= 0 {
		width = img.Width
	}
	if height <= 0 {
		height = img.Height
	}
	hcfg := hal.Config{
		Title:  "Planet",
		Width:  width,
		Height: height,
		X:      100,
		Y:      100,
		Hz:     hz,
		Ticks:  ticks,
		Logger: logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var a *app.App
	newApp := app.NewApp(app.Config{
		Texture:     img,
		HUD:         showHUD,
		ExitOnPanic: headless,
	}, func(x *app.App) { a = x })

	if headless {
		err := hal.RunHeadless(ctx, hcfg, newApp)
		if a != nil && dump != "" {
			if derr := a.Dump(dump); derr != nil {
				logger.Error("planet: frame dump failed", "path", dump, "err", derr)
				os.Exit(1)
			}
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("planet: headless run failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(ctx, hcfg, newApp); err != nil {
		logger.Error("planet: window failed", "err", err)
		os.Exit(1)
	}
}
