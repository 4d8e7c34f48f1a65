// Package ppm loads raw binary (P6) pixel maps.
//
// Only the three-channel raw form is accepted. The header is read line by line:
// comment lines are skipped and the width, height and maximum channel value may be
// spread over any number of lines. The pixel data that follows is read leniently;
// a file that ends early still yields a buffer of the declared size.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrIO                = errors.New("ppm: i/o error")
	ErrUnsupportedFormat = errors.New("ppm: not a raw PPM file")
	ErrInvalidDimensions = errors.New("ppm: invalid dimensions")
)

const magic = "P6"

// maxLine mirrors the fixed header line buffer: a longer line is consumed in
// several pieces.
const maxLine = 69

// Image is a decoded pixel map. Pix holds Width*Height RGB triples, row-major,
// first row first.
type Image struct {
	Pix    []byte
	Width  int
	Height int
	MaxVal int
}

// Load opens and decodes the file at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode reads a pixel map from r.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	line, err := readLine(br)
	if len(line) < len(magic) || string(line[:len(magic)]) != magic {
		if err != nil && len(line) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		return nil, ErrUnsupportedFormat
	}

	var width, height, maxVal int32
	for n := 0; n < 3; {
		line, err = readLine(br)
		if len(line) == 0 && err != nil {
			return nil, fmt.Errorf("%w: header: %v", ErrIO, io.ErrUnexpectedEOF)
		}
		if line[0] == '#' {
			continue
		}
		switch n {
		case 0:
			n += scanInts(line, &width, &height, &maxVal)
		case 1:
			n += scanInts(line, &height, &maxVal)
		case 2:
			n += scanInts(line, &maxVal)
		}
	}

	// Sized like a C int, so absurd headers wrap to non-positive and are rejected.
	size := width * height * 3
	if width <= 0 || height <= 0 || size <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	pix := make([]byte, size)
	// A short read leaves the tail zeroed; it is not reported.
	_, _ = io.ReadFull(br, pix)

	return &Image{
		Pix:    pix,
		Width:  int(width),
		Height: int(height),
		MaxVal: int(maxVal),
	}, nil
}

// readLine returns the next line including its newline, or at most maxLine
// bytes of it. The error is non-nil only when the input ended.
func readLine(br *bufio.Reader) ([]byte, error) {
	var line []byte
	for len(line) < maxLine {
		b, err := br.ReadByte()
		if err != nil {
			return line, err
		}
		line = append(line, b)
		if b == '\n' {
			break
		}
	}
	return line, nil
}

// scanInts parses leading decimal integers from line into dst in order, the
// way %d conversions do, and returns how many were stored. Parsing stops at
// the first token that is not an integer.
func scanInts(line []byte, dst ...*int32) int {
	i := 0
	for k, d := range dst {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		neg := false
		if i < len(line) && (line[i] == '+' || line[i] == '-') {
			neg = line[i] == '-'
			i++
		}
		start := i
		var v int64
		for i < len(line) && line[i] >= '0' && line[i] <= '9' {
			if v <= 1<<31 {
				v = v*10 + int64(line[i]-'0')
			}
			i++
		}
		if i == start {
			return k
		}
		if neg {
			v = -v
		}
		*d = int32(v)
	}
	return len(dst)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
