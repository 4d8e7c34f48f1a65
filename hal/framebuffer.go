package hal

import (
	"image"
	"sync"

	"planet/gfx/fixedgl"
)

// Framebuffer is an RGBA8888 back buffer with a presented front copy.
//
// The renderer draws into the back buffer; Present publishes it so the window
// (or a frame dump) always reads a complete frame.
type Framebuffer struct {
	mu        sync.Mutex
	width     int
	height    int
	back      []byte
	front     []byte
	presented uint64
}

var (
	_ fixedgl.Target    = (*Framebuffer)(nil)
	_ fixedgl.Presenter = (*Framebuffer)(nil)
)

func NewFramebuffer(width, height int) *Framebuffer {
	f := &Framebuffer{}
	f.Resize(width, height)
	return f
}

func (f *Framebuffer) Width() int       { return f.width }
func (f *Framebuffer) Height() int      { return f.height }
func (f *Framebuffer) StrideBytes() int { return f.width * 4 }

// Size implements fixedgl.Target.
func (f *Framebuffer) Size() (w, h int) { return f.width, f.height }

// Resize reallocates both buffers. Contents are discarded.
func (f *Framebuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if width == f.width && height == f.height && f.back != nil {
		return
	}
	f.width = width
	f.height = height
	f.back = make([]byte, width*height*4)
	f.front = make([]byte, width*height*4)
}

func (f *Framebuffer) Clear(c fixedgl.Color) {
	for i := 0; i+3 < len(f.back); i += 4 {
		f.back[i+0] = c.R
		f.back[i+1] = c.G
		f.back[i+2] = c.B
		f.back[i+3] = c.A
	}
}

func (f *Framebuffer) SetPixel(x, y int, c fixedgl.Color) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.back[i+0] = c.R
	f.back[i+1] = c.G
	f.back[i+2] = c.B
	f.back[i+3] = c.A
}

// At reads the back buffer.
func (f *Framebuffer) At(x, y int) fixedgl.Color {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return fixedgl.Color{}
	}
	i := (y*f.width + x) * 4
	return fixedgl.Color{R: f.back[i], G: f.back[i+1], B: f.back[i+2], A: f.back[i+3]}
}

// Present copies the back buffer to the front buffer.
func (f *Framebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.presented++
	return nil
}

// Presented returns how many frames have been presented.
func (f *Framebuffer) Presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presented
}

// snapshot copies the front buffer into dst, which must match the current size.
func (f *Framebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}

// Snapshot returns a copy of the last presented frame with opaque alpha.
func (f *Framebuffer) Snapshot() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.front)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img
}
