package hal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

func testConfig() Config {
	return Config{
		Width:  8,
		Height: 6,
		Hz:     1000,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRunHeadlessDrivesLoop(t *testing.T) {
	cfg := testConfig()
	cfg.Ticks = 10

	var reshapes [][2]int
	var steps, timers, draws int
	var fb *Framebuffer
	err := RunHeadless(context.Background(), cfg, func(h HAL) (func() error, error) {
		loop := h.Loop()
		fb = h.Display().Framebuffer()
		loop.DisplayFunc(func() { draws++ })
		loop.ReshapeFunc(func(w, hh int) { reshapes = append(reshapes, [2]int{w, hh}) })
		var tick func()
		tick = func() {
			timers++
			loop.PostRedisplay()
			loop.TimerFunc(5, tick)
		}
		loop.TimerFunc(5, tick)
		return func() error { steps++; return nil }, nil
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	if len(reshapes) != 1 || reshapes[0] != [2]int{8, 6} {
		t.Fatalf("reshapes = %v, want [[8 6]]", reshapes)
	}
	if steps != 10 {
		t.Fatalf("steps = %d, want 10", steps)
	}
	if timers != 2 {
		t.Fatalf("timers = %d, want 2", timers)
	}
	// One redraw for the initial reshape, one per timer.
	if draws != 3 {
		t.Fatalf("draws = %d, want 3", draws)
	}
	if w, h := fb.Size(); w != 8 || h != 6 {
		t.Fatalf("framebuffer = %dx%d, want 8x6", w, h)
	}
}

func TestRunHeadlessStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	err := RunHeadless(ctx, testConfig(), func(h HAL) (func() error, error) {
		return func() error {
			steps++
			if steps == 3 {
				cancel()
			}
			return nil
		}, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("RunHeadless() error = %v, want %v", err, context.Canceled)
	}
}

func TestRunHeadlessErrors(t *testing.T) {
	boom := errors.New("boom")

	err := RunHeadless(context.Background(), testConfig(), func(h HAL) (func() error, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("setup error = %v, want %v", err, boom)
	}

	err = RunHeadless(context.Background(), testConfig(), func(h HAL) (func() error, error) {
		return func() error { return boom }, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("step error = %v, want %v", err, boom)
	}

	cfg := testConfig()
	cfg.Hz = 2_000_000_000
	err = RunHeadless(context.Background(), cfg, func(h HAL) (func() error, error) { return nil, nil })
	if err == nil {
		t.Fatalf("RunHeadless(hz=%d) error = nil, want error", cfg.Hz)
	}
}
