// Package planet draws a single textured sphere spinning about the vertical axis.
package planet

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"planet/gfx/fixedgl"
	"planet/internal/ppm"
)

// Scene constants.
const (
	SphereRadius = 5
	SphereSlices = 20
	SphereStacks = 20

	FieldOfView = 90.0
	NearPlane   = 0.1
	FarPlane    = 100.0

	// TickMs is the delay between rotation steps.
	TickMs = 25
	// StepDeg is the rotation added per tick.
	StepDeg = 2
)

var (
	ambientMat   = []float32{0.0, 0.0, 1.0, 1.0}
	diffuseMat   = []float32{0.1, 0.2, 1.0, 1.0}
	specularMat  = []float32{0.3, 0.3, 0.3, 1.0}
	shininessMat = float32(5.0)

	eye    = mgl32.Vec3{0, 0, 10}
	center = mgl32.Vec3{0, 0, 0}
	up     = mgl32.Vec3{0, 1, 0}
)

var ErrNotInitialized = errors.New("planet: scene not initialized")

// Scene owns the texture, the quadric and the rotation angle. All methods run
// on the loop's single thread.
type Scene struct {
	r    Renderer
	log  *slog.Logger
	loop Loop

	img     *ppm.Image
	texture fixedgl.Texture
	quad    *fixedgl.Quadric
	angle   float32

	ready  bool
	frames uint64
}

// New returns an uninitialized scene drawing through r.
func New(r Renderer, log *slog.Logger) *Scene {
	if log == nil {
		log = slog.Default()
	}
	return &Scene{r: r, log: log}
}

// Initialize sets up the persistent pipeline state and uploads img as the
// sphere texture. It runs once.
func (s *Scene) Initialize(img *ppm.Image) error {
	if s.ready {
		return errors.New("planet: scene already initialized")
	}
	if img == nil {
		return errors.New("planet: nil texture image")
	}

	s.r.ClearColor(0, 0, 0, 0)
	s.r.ShadeModel(fixedgl.Flat)

	s.r.Enable(fixedgl.DepthTest)
	s.r.Enable(fixedgl.CullFace)
	s.r.Enable(fixedgl.Lighting)
	s.r.Enable(fixedgl.Light0)
	s.r.Enable(fixedgl.Texture2D)

	s.texture = s.r.GenTexture()
	s.r.BindTexture(s.texture)
	s.r.TexImage2D(img.Width, img.Height, fixedgl.FormatRGB, img.Pix)
	s.r.TexParameter(fixedgl.TextureMagFilter, fixedgl.Linear)
	s.r.TexParameter(fixedgl.TextureMinFilter, fixedgl.Linear)

	s.quad = fixedgl.NewQuadric()

	if e := s.r.Err(); e != fixedgl.NoError {
		return fmt.Errorf("planet: initialize: %w", e)
	}
	// Kept for the life of the scene, like the texture it was uploaded to.
	s.img = img
	s.ready = true
	s.log.Debug("planet: scene initialized", "texture", s.texture, "width", img.Width, "height", img.Height)
	return nil
}

// Start registers the scene's callbacks on loop and arms the first tick.
func (s *Scene) Start(loop Loop) error {
	if !s.ready {
		return ErrNotInitialized
	}
	s.loop = loop
	loop.DisplayFunc(s.Render)
	loop.ReshapeFunc(s.Reshape)
	loop.TimerFunc(TickMs, s.Tick)
	return nil
}

// Render draws one frame.
func (s *Scene) Render() {
	if !s.ready {
		return
	}
	s.r.Clear(fixedgl.ColorBufferBit | fixedgl.DepthBufferBit)
	s.r.MatrixMode(fixedgl.ModelView)

	s.r.Material(fixedgl.Front, fixedgl.Ambient, ambientMat...)
	s.r.Material(fixedgl.Front, fixedgl.Diffuse, diffuseMat...)
	s.r.Material(fixedgl.Front, fixedgl.Specular, specularMat...)
	s.r.Material(fixedgl.Front, fixedgl.Shininess, shininessMat)

	s.quad.SetDrawStyle(fixedgl.StyleFill)
	s.r.BindTexture(s.texture)
	s.quad.SetTexture(true)
	s.quad.SetNormals(fixedgl.NormalsSmooth)

	s.r.PushMatrix()
	s.r.Rotate(s.angle, 0, 1, 0)
	s.r.Sphere(s.quad, SphereRadius, SphereSlices, SphereStacks)
	s.r.PopMatrix()

	// The camera is placed after drawing, so it takes effect from the next
	// frame on. The second pop underflows and is only latched as an error.
	s.r.LoadIdentity()
	s.r.LookAt(eye, center, up)
	s.r.PopMatrix()

	if err := s.r.Flush(); err != nil {
		s.log.Warn("planet: present failed", "err", err)
	}
	if e := s.r.Err(); e != fixedgl.NoError {
		s.log.Debug("planet: pipeline error", "frame", s.frames, "err", e)
	}
	s.frames++
}

// Reshape adapts the viewport and projection to a w×h window.
func (s *Scene) Reshape(w, h int) {
	s.r.Viewport(0, 0, w, h)
	s.r.MatrixMode(fixedgl.Projection)
	s.r.LoadIdentity()
	s.r.Perspective(FieldOfView, Aspect(w, h), NearPlane, FarPlane)
	s.r.MatrixMode(fixedgl.ModelView)
	s.log.Debug("planet: reshape", "width", w, "height", h, "aspect", Aspect(w, h))
}

// Tick advances the rotation, requests a redraw and re-arms itself.
func (s *Scene) Tick() {
	s.angle = NextAngle(s.angle)
	if s.loop == nil {
		return
	}
	s.loop.PostRedisplay()
	s.loop.TimerFunc(TickMs, s.Tick)
}

// Angle returns the current rotation in degrees.
func (s *Scene) Angle() float32 { return s.angle }

// Frames returns the number of frames rendered so far.
func (s *Scene) Frames() uint64 { return s.frames }

// Image returns the texture image the scene was initialized with.
func (s *Scene) Image() *ppm.Image { return s.img }

// NextAngle steps the rotation. Once the angle has gone past 360 the next step
// subtracts 360 instead of adding, so the sequence runs 0, 2, ..., 360, 362, 2, 4.
func NextAngle(a float32) float32 {
	if a > 360 {
		return a - 360
	}
	return a + StepDeg
}

// Aspect returns the projection aspect ratio for a w×h window. The ratio is
// taken with integer division, so any window narrower than it is tall gets 0
// and keeps an identity projection. A zero height also yields 0.
func Aspect(w, h int) float64 {
	if h == 0 {
		return 0
	}
	return 1.0 * float64(w/h)
}
