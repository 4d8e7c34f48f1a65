// Package framedump writes a rendered frame to an image file, choosing the
// encoder from the file extension.
package framedump

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnknownFormat = errors.New("framedump: unknown image format")

// Format is an output encoding.
type Format string

const (
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	PNG  Format = "png"
)

// FormatFor maps a file name to its encoding.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".png":
		return PNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PNG:
		return png.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Write encodes img into the file at path.
func Write(path string, img image.Image) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("framedump: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("framedump: %w", cerr)
		}
	}()
	if err := Encode(out, img, f); err != nil {
		return fmt.Errorf("framedump: encode %s: %w", path, err)
	}
	return nil
}
