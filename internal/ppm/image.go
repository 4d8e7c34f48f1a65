package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Encode writes img as a raw P6 file with a single-line header.
func Encode(w io.Writer, img *Image) error {
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) < img.Width*img.Height*3 {
		return fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidDimensions, img.Width, img.Height, len(img.Pix))
	}
	maxVal := img.MaxVal
	if maxVal <= 0 || maxVal > 255 {
		maxVal = 255
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, img.Width, img.Height, maxVal); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := bw.Write(img.Pix[:img.Width*img.Height*3]); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// FromImage converts any image to an 8-bit pixel map, dropping alpha.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := &Image{
		Pix:    make([]byte, b.Dx()*b.Dy()*3),
		Width:  b.Dx(),
		Height: b.Dy(),
		MaxVal: 255,
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			i += 3
		}
	}
	return img
}

// RGBA returns the pixel map as an opaque image.
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, j := 0, 0; i+2 < len(img.Pix) && j+3 < len(out.Pix); i, j = i+3, j+4 {
		out.Pix[j+0] = img.Pix[i+0]
		out.Pix[j+1] = img.Pix[i+1]
		out.Pix[j+2] = img.Pix[i+2]
		out.Pix[j+3] = 0xFF
	}
	return out
}
