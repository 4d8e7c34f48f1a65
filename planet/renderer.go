package planet

import (
	"github.com/go-gl/mathgl/mgl32"

	"planet/gfx/fixedgl"
)

// Renderer is the slice of the fixed-function pipeline the scene drives.
// *fixedgl.Context implements it.
type Renderer interface {
	Enable(cp fixedgl.Capability)
	ShadeModel(m fixedgl.ShadeModel)
	ClearColor(r, g, b, a float32)
	Clear(mask fixedgl.ClearMask)

	GenTexture() fixedgl.Texture
	BindTexture(t fixedgl.Texture)
	TexImage2D(w, h int, format fixedgl.PixelFormat, pix []byte)
	TexParameter(p fixedgl.TextureParam, v fixedgl.TextureValue)

	Material(face fixedgl.Face, p fixedgl.MaterialParam, v ...float32)

	MatrixMode(m fixedgl.MatrixMode)
	LoadIdentity()
	PushMatrix()
	PopMatrix()
	Rotate(deg, x, y, z float32)
	LookAt(eye, center, up mgl32.Vec3)
	Perspective(fovy, aspect, zNear, zFar float64)
	Viewport(x, y, w, h int)

	Sphere(q *fixedgl.Quadric, radius float32, slices, stacks int)
	Flush() error
	Err() fixedgl.Error
}

var _ Renderer = (*fixedgl.Context)(nil)

// Loop is the windowing side the scene schedules work on.
type Loop interface {
	DisplayFunc(fn func())
	ReshapeFunc(fn func(w, h int))
	TimerFunc(delayMs int, fn func())
	PostRedisplay()
}
