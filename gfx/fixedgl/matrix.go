package fixedgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MatrixMode selects the stack matrix operations apply to.
type MatrixMode uint8

const (
	ModelView MatrixMode = iota
	Projection

	matrixModeCount
)

// Maximum stack depths, matching the minimums GL implementations guarantee.
const (
	maxModelViewDepth  = 32
	maxProjectionDepth = 2
)

func (c *Context) MatrixMode(m MatrixMode) {
	if m >= matrixModeCount {
		c.setErr(InvalidEnum)
		return
	}
	c.mode = m
}

// Matrix returns the top of the given stack.
func (c *Context) Matrix(m MatrixMode) mgl32.Mat4 {
	if m >= matrixModeCount {
		return mgl32.Ident4()
	}
	return c.stacks[m].Peek()
}

// MatrixDepth returns the number of entries on the given stack.
func (c *Context) MatrixDepth(m MatrixMode) int {
	if m >= matrixModeCount {
		return 0
	}
	return len(*c.stacks[m])
}

func (c *Context) LoadIdentity() { c.stacks[c.mode].LoadIdent() }

func (c *Context) LoadMatrix(m mgl32.Mat4) { c.stacks[c.mode].Load(m) }

// MultMatrix post-multiplies the current matrix by m.
func (c *Context) MultMatrix(m mgl32.Mat4) { c.stacks[c.mode].RightMul(m) }

func (c *Context) PushMatrix() {
	limit := maxModelViewDepth
	if c.mode == Projection {
		limit = maxProjectionDepth
	}
	if len(*c.stacks[c.mode]) >= limit {
		c.setErr(StackOverflow)
		return
	}
	c.stacks[c.mode].Push()
}

func (c *Context) PopMatrix() {
	if err := c.stacks[c.mode].Pop(); err != nil {
		c.setErr(StackUnderflow)
	}
}

// Rotate multiplies the current matrix by a rotation of deg degrees
// counter-clockwise about the axis x, y, z.
func (c *Context) Rotate(deg, x, y, z float32) {
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() == 0 {
		return
	}
	c.MultMatrix(mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize()))
}

func (c *Context) Translate(x, y, z float32) {
	c.MultMatrix(mgl32.Translate3D(x, y, z))
}

func (c *Context) Scale(x, y, z float32) {
	c.MultMatrix(mgl32.Scale3D(x, y, z))
}

// LookAt multiplies the current matrix by a viewing transform placing the eye at
// eye, looking at center, with up as the vertical direction.
func (c *Context) LookAt(eye, center, up mgl32.Vec3) {
	if eye == center {
		return
	}
	c.MultMatrix(mgl32.LookAtV(eye, center, up))
}

// Perspective multiplies the current matrix by a perspective projection.
//
// fovy is the vertical field of view in degrees. Like the GLU utility, the call
// does nothing when the depth range, the field of view, or the aspect is zero.
func (c *Context) Perspective(fovy, aspect, zNear, zFar float64) {
	rad := fovy / 2 * math.Pi / 180
	if zFar-zNear == 0 || math.Sin(rad) == 0 || aspect == 0 {
		return
	}
	c.MultMatrix(mgl32.Perspective(float32(2*rad), float32(aspect), float32(zNear), float32(zFar)))
}

// Ortho multiplies the current matrix by an orthographic projection.
func (c *Context) Ortho(left, right, bottom, top, zNear, zFar float32) {
	if left == right || bottom == top || zNear == zFar {
		c.setErr(InvalidValue)
		return
	}
	c.MultMatrix(mgl32.Ortho(left, right, bottom, top, zNear, zFar))
}
