package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"planet/internal/framedump"
	"planet/internal/ppm"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input file (any png/jpeg/bmp/tiff for encode, .ppm for decode).")
		outPath = flag.String("out", "", "Output file (.ppm for encode and gen, .png/.bmp/.tiff for decode).")
		mode    = flag.String("mode", "encode", "encode|decode|gen.")
		width   = flag.Int("w", 256, "Texture width (gen mode only).")
		height  = flag.Int("h", 256, "Texture height (gen mode only).")
		seed    = flag.Uint64("seed", 1, "Noise seed (gen mode only).")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: mkppm -mode encode -in in.png -out out.ppm\n       mkppm -mode decode -in in.ppm -out out.png\n       mkppm -mode gen -out scuff.ppm [-w 256] [-h 256] [-seed 1]")
	}

	switch strings.ToLower(*mode) {
	case "encode":
		if err := imageToPPM(*inPath, *outPath); err != nil {
			fatalf("encode: %v", err)
		}
	case "decode":
		if err := ppmToImage(*inPath, *outPath); err != nil {
			fatalf("decode: %v", err)
		}
	case "gen":
		if err := writePPM(*outPath, generate(*width, *height, *seed)); err != nil {
			fatalf("gen: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func imageToPPM(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	src, format, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "mkppm: %s %s %dx%d\n", inPath, format, src.Bounds().Dx(), src.Bounds().Dy())
	return writePPM(outPath, ppm.FromImage(src))
}

func ppmToImage(inPath, outPath string) error {
	img, err := ppm.Load(inPath)
	if err != nil {
		return err
	}
	return framedump.Write(outPath, img.RGBA())
}

func writePPM(path string, img *ppm.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ppm.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// generate paints an equirectangular planet: value-noise continents over a
// blue ocean, with ice towards the first and last rows.
func generate(w, h int, seed uint64) *ppm.Image {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := &ppm.Image{Pix: make([]byte, w*h*3), Width: w, Height: h, MaxVal: 255}
	i := 0
	for y := 0; y < h; y++ {
		lat := math.Abs(float64(y)+0.5-float64(h)/2) / (float64(h) / 2)
		for x := 0; x < w; x++ {
			u := float64(x) / float64(w)
			v := float64(y) / float64(h)
			n := fbm(u*8, v*4, 8, seed)

			var r, g, b float64
			switch {
			case lat > 0.85-0.1*n:
				r, g, b = 235, 240, 250
			case n > 0.55:
				t := (n - 0.55) / 0.45
				r, g, b = 60+120*t, 120+40*t, 40+30*t
			default:
				t := n / 0.55
				r, g, b = 10, 30+60*t, 90+110*t
			}
			img.Pix[i+0] = uint8(r)
			img.Pix[i+1] = uint8(g)
			img.Pix[i+2] = uint8(b)
			i += 3
		}
	}
	return img
}

// fbm sums four octaves of value noise that wraps horizontally every period
// cells, so the texture seam lines up on the sphere.
func fbm(x, y float64, period int, seed uint64) float64 {
	var sum, amp, norm float64 = 0, 0.5, 0
	for o := 0; o < 4; o++ {
		sum += amp * valueNoise(x, y, period, seed+uint64(o))
		norm += amp
		x, y = x*2, y*2
		period *= 2
		amp /= 2
	}
	return sum / norm
}

func valueNoise(x, y float64, period int, seed uint64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix, iy := int(x0), int(y0)

	corner := func(dx, dy int) float64 {
		cx := ((ix+dx)%period + period) % period
		return hash(cx, iy+dy, seed)
	}
	sx := fx * fx * (3 - 2*fx)
	sy := fy * fy * (3 - 2*fy)
	top := corner(0, 0) + sx*(corner(1, 0)-corner(0, 0))
	bot := corner(0, 1) + sx*(corner(1, 1)-corner(0, 1))
	return top + sy*(bot-top)
}

func hash(x, y int, seed uint64) float64 {
	h := seed*0x9E3779B97F4A7C15 ^ uint64(int64(x))*0xBF58476D1CE4E5B9 ^ uint64(int64(y))*0x94D049BB133111EB
	h ^= h >> 31
	h *= 0xD6E8FEB86659FD93
	h ^= h >> 32
	return float64(h>>11) / float64(1<<53)
}
