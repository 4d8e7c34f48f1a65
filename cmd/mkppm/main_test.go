package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"planet/internal/ppm"
)

func TestGenerate(t *testing.T) {
	a := generate(64, 32, 7)
	b := generate(64, 32, 7)
	if a.Width != 64 || a.Height != 32 || len(a.Pix) != 64*32*3 {
		t.Fatalf("generate size = %dx%d (%d bytes)", a.Width, a.Height, len(a.Pix))
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("generate is not deterministic for a fixed seed")
	}
	// The first row is polar ice.
	if a.Pix[0] < 200 || a.Pix[1] < 200 || a.Pix[2] < 200 {
		t.Fatalf("first pixel = %v, want ice", a.Pix[:3])
	}
	if c := generate(64, 32, 8); bytes.Equal(a.Pix, c.Pix) {
		t.Fatalf("different seeds gave the same texture")
	}
}

func TestValueNoiseWraps(t *testing.T) {
	for _, y := range []float64{0.25, 1.5, 3.75} {
		if l, r := valueNoise(0, y, 8, 3), valueNoise(8, y, 8, 3); l != r {
			t.Fatalf("valueNoise(0, %v) = %v, valueNoise(8, %v) = %v, want equal", y, l, y, r)
		}
	}
}

func TestImageToPPMAndBack(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(2, 1, color.RGBA{R: 9, G: 99, B: 199, A: 255})

	pngPath := filepath.Join(dir, "in.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	f.Close()

	ppmPath := filepath.Join(dir, "tex.ppm")
	if err := imageToPPM(pngPath, ppmPath); err != nil {
		t.Fatalf("imageToPPM: %v", err)
	}
	img, err := ppm.Load(ppmPath)
	if err != nil {
		t.Fatalf("ppm.Load: %v", err)
	}
	if got := img.Pix[(1*3+2)*3:][:3]; !bytes.Equal(got, []byte{9, 99, 199}) {
		t.Fatalf("pixel (2, 1) = %v, want [9 99 199]", got)
	}

	bmpPath := filepath.Join(dir, "out.bmp")
	if err := ppmToImage(ppmPath, bmpPath); err != nil {
		t.Fatalf("ppmToImage: %v", err)
	}
	if st, err := os.Stat(bmpPath); err != nil || st.Size() == 0 {
		t.Fatalf("Stat(%s) = %v, %v", bmpPath, st, err)
	}
}
