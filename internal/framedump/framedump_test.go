package framedump

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testFrame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(40 * x), G: uint8(100 * y), B: 200, A: 255})
		}
	}
	return img
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"frame.bmp", BMP},
		{"FRAME.BMP", BMP},
		{"out/frame.tif", TIFF},
		{"frame.tiff", TIFF},
		{"frame.png", PNG},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if err != nil || got != tt.want {
			t.Fatalf("FormatFor(%q) = %q, %v, want %q", tt.path, got, err, tt.want)
		}
	}

	if _, err := FormatFor("frame.jpg"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("FormatFor(frame.jpg) error = %v, want %v", err, ErrUnknownFormat)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	decoders := map[string]func(f *os.File) (image.Image, error){
		"frame.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"frame.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
		"frame.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
	}
	src := testFrame()
	dir := t.TempDir()

	for name, decode := range decoders {
		path := filepath.Join(dir, name)
		if err := Write(path, src); err != nil {
			t.Fatalf("Write(%s): %v", name, err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Open(%s): %v", name, err)
		}
		img, err := decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if img.Bounds() != src.Bounds() {
			t.Fatalf("%s bounds = %v, want %v", name, img.Bounds(), src.Bounds())
		}
		r, g, b, _ := img.At(2, 1).RGBA()
		if r>>8 != 80 || g>>8 != 100 || b>>8 != 200 {
			t.Fatalf("%s At(2, 1) = %d,%d,%d, want 80,100,200", name, r>>8, g>>8, b>>8)
		}
	}
}

func TestWriteUnknownFormatCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.gif")
	if err := Write(path, testFrame()); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Write() error = %v, want %v", err, ErrUnknownFormat)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Stat(%s) error = %v, want not exist", path, err)
	}
}
