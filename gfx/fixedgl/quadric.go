package fixedgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawStyle selects how quadric surfaces are rasterized.
type DrawStyle uint8

const (
	StyleFill DrawStyle = iota + 1
	StyleLine
	StylePoint
)

// Normals selects which normals a quadric generates.
type Normals uint8

const (
	NormalsSmooth Normals = iota + 1
	NormalsFlat
	NormalsNone
)

// Quadric holds tessellation options for procedurally generated surfaces.
//
// The last generated mesh is cached, so drawing the same sphere every frame
// does not allocate.
type Quadric struct {
	style   DrawStyle
	normals Normals
	texture bool

	key  sphereKey
	mesh Mesh
}

type sphereKey struct {
	radius         float32
	slices, stacks int
}

// NewQuadric returns a quadric with filled style, smooth normals and no
// texture coordinates.
func NewQuadric() *Quadric {
	return &Quadric{style: StyleFill, normals: NormalsSmooth}
}

func (q *Quadric) SetDrawStyle(s DrawStyle) { q.style = s }
func (q *Quadric) SetNormals(n Normals)     { q.normals = n }
func (q *Quadric) SetTexture(on bool)       { q.texture = on }

func (q *Quadric) DrawStyle() DrawStyle { return q.style }
func (q *Quadric) Normals() Normals     { return q.normals }
func (q *Quadric) Texture() bool        { return q.texture }

// Vertex is one mesh vertex in object space.
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	Tex    mgl32.Vec2
}

// Mesh is an indexed triangle list with counter-clockwise front faces.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// SphereMesh tessellates a sphere centred at the origin with its axis along Z.
//
// Stacks run from +Z (t = 1) to -Z (t = 0); slices start at +Y and advance
// towards +X, with s running from 1 down to 0.
func SphereMesh(radius float32, slices, stacks int) Mesh {
	if slices < 2 || stacks < 1 {
		return Mesh{}
	}
	cols := slices + 1
	verts := make([]Vertex, 0, cols*(stacks+1))
	for j := 0; j <= stacks; j++ {
		phi := math.Pi * float64(j) / float64(stacks)
		sp, cp := math.Sincos(phi)
		if j == stacks {
			sp = 0
		}
		for i := 0; i <= slices; i++ {
			theta := 2 * math.Pi * float64(i) / float64(slices)
			if i == slices {
				theta = 0
			}
			st, ct := math.Sincos(theta)
			n := mgl32.Vec3{float32(st * sp), float32(ct * sp), float32(cp)}
			verts = append(verts, Vertex{
				Pos:    n.Mul(radius),
				Normal: n,
				Tex:    mgl32.Vec2{1 - float32(i)/float32(slices), 1 - float32(j)/float32(stacks)},
			})
		}
	}

	indices := make([]uint32, 0, slices*stacks*6)
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			a := uint32(j*cols + i)
			b := uint32((j+1)*cols + i)
			cc := b + 1
			d := a + 1
			indices = append(indices, a, d, b)
			indices = append(indices, d, cc, b)
		}
	}
	return Mesh{Vertices: verts, Indices: indices}
}

// Sphere draws a sphere of the given radius with the quadric's options.
func (c *Context) Sphere(q *Quadric, radius float32, slices, stacks int) {
	if q == nil || radius < 0 || slices < 2 || stacks < 1 {
		c.setErr(InvalidValue)
		return
	}
	key := sphereKey{radius: radius, slices: slices, stacks: stacks}
	if q.key != key || len(q.mesh.Indices) == 0 {
		q.mesh = SphereMesh(radius, slices, stacks)
		q.key = key
	}
	c.DrawMesh(q.mesh, DrawOptions{Style: q.style, Normals: q.normals, Texture: q.texture})
}
