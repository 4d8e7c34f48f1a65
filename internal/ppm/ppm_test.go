package ppm

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texture.ppm")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func pixels(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

func TestLoadTwoByTwo(t *testing.T) {
	data := append([]byte("P6\n2 2 255\n"), pixels(12)...)
	img, err := Load(writeFile(t, data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("Load() size = %dx%d, want 2x2", img.Width, img.Height)
	}
	if !bytes.Equal(img.Pix, pixels(12)) {
		t.Fatalf("Load() Pix = %v, want %v", img.Pix, pixels(12))
	}
	if img.MaxVal != 255 {
		t.Fatalf("Load() MaxVal = %d, want 255", img.MaxVal)
	}
}

func TestDecodeHeaderLayouts(t *testing.T) {
	tests := []struct {
		name   string
		header string
		w, h   int
	}{
		{"one line", "P6\n3 2 255\n", 3, 2},
		{"size then max", "P6\n3 2\n255\n", 3, 2},
		{"one per line", "P6\n3\n2\n255\n", 3, 2},
		{"width then rest", "P6\n3\n2 255\n", 3, 2},
		{"comments between fields", "P6\n# made by hand\n4 4\n# max\n255\n", 4, 4},
		{"leading comments", "P6\n#a\n#b\n#c\n1 1 255\n", 1, 1},
		{"windows newlines", "P6\r\n2 1 255\r\n", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := tt.w * tt.h * 3
			data := append([]byte(tt.header), pixels(size)...)
			img, err := Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if img.Width != tt.w || img.Height != tt.h {
				t.Fatalf("Decode() size = %dx%d, want %dx%d", img.Width, img.Height, tt.w, tt.h)
			}
			if !bytes.Equal(img.Pix, pixels(size)) {
				t.Fatalf("Decode() Pix mismatch")
			}
		})
	}
}

func TestDecodeCommentedFourByFour(t *testing.T) {
	data := append([]byte("P6\n# comment\n4 4\n# another\n255\n"), pixels(48)...)
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width != 4 || img.Height != 4 || len(img.Pix) != 48 {
		t.Fatalf("Decode() = %dx%d (%d bytes), want 4x4 (48 bytes)", img.Width, img.Height, len(img.Pix))
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	for _, in := range []string{"P5 3 2 255\n", "P3\n1 1 255\n0 0 0\n", "p6\n1 1 255\n", "P"} {
		_, err := Decode(strings.NewReader(in))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("Decode(%q) error = %v, want %v", in, err, ErrUnsupportedFormat)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ppm"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("Load() error = %v, want %v", err, ErrIO)
	}
}

func TestDecodeInvalidDimensions(t *testing.T) {
	for _, header := range []string{
		"P6\n0 4 255\n",
		"P6\n4 0 255\n",
		"P6\n-4 4 255\n",
		"P6\n4 -4 255\n",
		"P6\n-2 -2 255\n",
		"P6\n65536 65536 255\n",
	} {
		_, err := Decode(strings.NewReader(header + "data"))
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("Decode(%q) error = %v, want %v", header, err, ErrInvalidDimensions)
		}
	}
}

func TestDecodeShortPixelData(t *testing.T) {
	data := append([]byte("P6\n2 2 255\n"), 9, 9, 9)
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(img.Pix) != 12 {
		t.Fatalf("len(Pix) = %d, want 12", len(img.Pix))
	}
	want := []byte{9, 9, 9, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(img.Pix, want) {
		t.Fatalf("Pix = %v, want %v", img.Pix, want)
	}
}

func TestDecodeTruncatedHeader(t *testing.T) {
	_, err := Decode(strings.NewReader("P6\n# only a comment\n4 4\n"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("Decode() error = %v, want %v", err, ErrIO)
	}
}

func TestDecodePixelsFollowHeaderNewline(t *testing.T) {
	// The first pixel byte is a newline; it must not be taken as part of the header.
	pix := []byte{'\n', '#', '1', ' ', '2', '3'}
	data := append([]byte("P6\n2 1 255\n"), pix...)
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(img.Pix, pix) {
		t.Fatalf("Pix = %q, want %q", img.Pix, pix)
	}
}

func TestScanInts(t *testing.T) {
	tests := []struct {
		in   string
		want int
		vals [3]int32
	}{
		{"1 2 3\n", 3, [3]int32{1, 2, 3}},
		{"  7\t8\n", 2, [3]int32{7, 8, 0}},
		{"+5 -6 x\n", 2, [3]int32{5, -6, 0}},
		{"abc\n", 0, [3]int32{}},
		{"\n", 0, [3]int32{}},
		{"12abc 4\n", 1, [3]int32{12, 0, 0}},
	}
	for _, tt := range tests {
		var a, b, c int32
		if got := scanInts([]byte(tt.in), &a, &b, &c); got != tt.want {
			t.Fatalf("scanInts(%q) = %d, want %d", tt.in, got, tt.want)
		}
		if [3]int32{a, b, c} != tt.vals {
			t.Fatalf("scanInts(%q) values = %v, want %v", tt.in, [3]int32{a, b, c}, tt.vals)
		}
	}
}
