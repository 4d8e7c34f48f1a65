package fixedgl

// Target is a pixel surface for software rendering.
//
// Coordinates are top-left based. Implementations should clip out-of-bounds
// coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// Presenter is implemented by targets that publish a finished frame on Flush.
type Presenter interface {
	Present() error
}

// RGBATarget renders into an RGBA8888 buffer.
//
// Callers provide the backing buffer and its layout.
type RGBATarget struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

// NewRGBATarget allocates a tightly packed w*h target.
func NewRGBATarget(w, h int) *RGBATarget {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &RGBATarget{Buf: make([]byte, w*h*4), Stride: w * 4, W: w, H: h}
}

func (t *RGBATarget) Size() (w, h int) { return t.W, t.H }

func (t *RGBATarget) Clear(c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*4
			if off+3 >= len(t.Buf) {
				return
			}
			t.Buf[off+0] = c.R
			t.Buf[off+1] = c.G
			t.Buf[off+2] = c.B
			t.Buf[off+3] = c.A
		}
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*4
	if off+3 >= len(t.Buf) {
		return
	}
	t.Buf[off+0] = c.R
	t.Buf[off+1] = c.G
	t.Buf[off+2] = c.B
	t.Buf[off+3] = c.A
}

// At returns the pixel at x, y (zero when out of bounds).
func (t *RGBATarget) At(x, y int) Color {
	if t == nil || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return Color{}
	}
	off := y*t.Stride + x*4
	if off+3 >= len(t.Buf) {
		return Color{}
	}
	return Color{R: t.Buf[off], G: t.Buf[off+1], B: t.Buf[off+2], A: t.Buf[off+3]}
}
