package fixedgl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl32/matstack"
)

// Capability is a pipeline feature switched with Enable/Disable.
type Capability uint8

const (
	DepthTest Capability = iota + 1
	CullFace
	Lighting
	Light0
	Texture2D

	capabilityCount
)

// ClearMask selects the buffers Clear resets.
type ClearMask uint8

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// ShadeModel selects how colors are interpolated across a primitive.
type ShadeModel uint8

const (
	Smooth ShadeModel = iota
	Flat
)

// Context is the complete pipeline state. It is not safe for concurrent use.
type Context struct {
	target Target

	caps  [capabilityCount]bool
	shade ShadeModel

	clearColor mgl32.Vec4
	clearDepth float32

	viewport    [4]int
	viewportSet bool

	mode   MatrixMode
	stacks [matrixModeCount]*matstack.MatStack

	current  mgl32.Vec4
	material [2]Material
	light0   Light
	ambient  mgl32.Vec4

	textures    map[Texture]*texture
	nextTexture Texture
	bound       Texture

	depthBuf []float32
	depthW   int
	depthH   int

	err Error
}

// NewContext creates a context drawing into t with GL default state.
func NewContext(t Target) *Context {
	c := &Context{
		target:     t,
		clearDepth: 1,
		current:    mgl32.Vec4{1, 1, 1, 1},
		material:   [2]Material{DefaultMaterial(), DefaultMaterial()},
		light0:     DefaultLight(),
		ambient:    mgl32.Vec4{0.2, 0.2, 0.2, 1},
		textures:   map[Texture]*texture{0: newTexture()},
	}
	for i := range c.stacks {
		c.stacks[i] = matstack.NewMatStack()
	}
	return c
}

// Target returns the surface the context draws into.
func (c *Context) Target() Target { return c.target }

// SetTarget replaces the drawing surface. State is kept.
func (c *Context) SetTarget(t Target) { c.target = t }

func (c *Context) Enable(cp Capability)  { c.setCap(cp, true) }
func (c *Context) Disable(cp Capability) { c.setCap(cp, false) }

// IsEnabled reports whether cp is on. Unknown capabilities report false.
func (c *Context) IsEnabled(cp Capability) bool {
	if cp == 0 || cp >= capabilityCount {
		return false
	}
	return c.caps[cp]
}

func (c *Context) setCap(cp Capability, on bool) {
	if cp == 0 || cp >= capabilityCount {
		c.setErr(InvalidEnum)
		return
	}
	c.caps[cp] = on
}

// ShadeModel selects flat or smooth shading.
func (c *Context) ShadeModel(m ShadeModel) {
	if m != Smooth && m != Flat {
		c.setErr(InvalidEnum)
		return
	}
	c.shade = m
}

// ClearColor sets the color used by Clear(ColorBufferBit).
func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = clamp4(mgl32.Vec4{r, g, b, a})
}

// Color sets the current color used when lighting is disabled.
func (c *Context) Color(r, g, b, a float32) {
	c.current = mgl32.Vec4{r, g, b, a}
}

// Viewport maps normalized device coordinates to the window rectangle whose
// lower-left corner is x, y.
func (c *Context) Viewport(x, y, w, h int) {
	if w < 0 || h < 0 {
		c.setErr(InvalidValue)
		return
	}
	c.viewport = [4]int{x, y, w, h}
	c.viewportSet = true
}

// CurrentViewport returns the active viewport rectangle.
func (c *Context) CurrentViewport() (x, y, w, h int) {
	if !c.viewportSet && c.target != nil {
		tw, th := c.target.Size()
		return 0, 0, tw, th
	}
	return c.viewport[0], c.viewport[1], c.viewport[2], c.viewport[3]
}

// Clear resets the selected buffers over the whole target.
func (c *Context) Clear(mask ClearMask) {
	if mask&^(ColorBufferBit|DepthBufferBit) != 0 {
		c.setErr(InvalidValue)
		return
	}
	if c.target == nil {
		return
	}
	if mask&ColorBufferBit != 0 {
		c.target.Clear(colorFromVec4(c.clearColor))
	}
	if mask&DepthBufferBit != 0 {
		c.ensureDepth()
		for i := range c.depthBuf {
			c.depthBuf[i] = c.clearDepth
		}
	}
}

// Flush finishes the frame and presents it if the target supports it.
func (c *Context) Flush() error {
	if p, ok := c.target.(Presenter); ok {
		return p.Present()
	}
	return nil
}

// ensureDepth keeps the depth buffer sized to the target.
func (c *Context) ensureDepth() {
	if c.target == nil {
		return
	}
	w, h := c.target.Size()
	if w <= 0 || h <= 0 {
		c.depthBuf = c.depthBuf[:0]
		c.depthW, c.depthH = 0, 0
		return
	}
	if w == c.depthW && h == c.depthH && len(c.depthBuf) == w*h {
		return
	}
	if cap(c.depthBuf) < w*h {
		c.depthBuf = make([]float32, w*h)
	} else {
		c.depthBuf = c.depthBuf[:w*h]
	}
	for i := range c.depthBuf {
		c.depthBuf[i] = c.clearDepth
	}
	c.depthW, c.depthH = w, h
}
