package fixedgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Face selects which material Material updates.
type Face uint8

const (
	Front Face = iota + 1
	Back
	FrontAndBack
)

// MaterialParam names a material property.
type MaterialParam uint8

const (
	Ambient MaterialParam = iota + 1
	Diffuse
	Specular
	Emission
	Shininess
	AmbientAndDiffuse
)

// Material holds the reflectance constants used by the lighting model.
type Material struct {
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Specular  mgl32.Vec4
	Emission  mgl32.Vec4
	Shininess float32
}

// DefaultMaterial returns the initial material of a fresh context.
func DefaultMaterial() Material {
	return Material{
		Ambient:  mgl32.Vec4{0.2, 0.2, 0.2, 1},
		Diffuse:  mgl32.Vec4{0.8, 0.8, 0.8, 1},
		Specular: mgl32.Vec4{0, 0, 0, 1},
		Emission: mgl32.Vec4{0, 0, 0, 1},
	}
}

// Light is a single light source. Position is in eye coordinates; W == 0 makes
// it directional.
type Light struct {
	Ambient  mgl32.Vec4
	Diffuse  mgl32.Vec4
	Specular mgl32.Vec4
	Position mgl32.Vec4
}

// DefaultLight returns the initial state of light 0.
func DefaultLight() Light {
	return Light{
		Ambient:  mgl32.Vec4{0, 0, 0, 1},
		Diffuse:  mgl32.Vec4{1, 1, 1, 1},
		Specular: mgl32.Vec4{1, 1, 1, 1},
		Position: mgl32.Vec4{0, 0, 1, 0},
	}
}

// Material sets one material property. Color properties take four values,
// Shininess takes one in 0..128.
func (c *Context) Material(face Face, p MaterialParam, v ...float32) {
	if face < Front || face > FrontAndBack {
		c.setErr(InvalidEnum)
		return
	}
	set := func(fn func(m *Material)) {
		if face == Front || face == FrontAndBack {
			fn(&c.material[0])
		}
		if face == Back || face == FrontAndBack {
			fn(&c.material[1])
		}
	}

	if p == Shininess {
		if len(v) != 1 || v[0] < 0 || v[0] > 128 {
			c.setErr(InvalidValue)
			return
		}
		set(func(m *Material) { m.Shininess = v[0] })
		return
	}

	if len(v) != 4 {
		c.setErr(InvalidValue)
		return
	}
	col := mgl32.Vec4{v[0], v[1], v[2], v[3]}
	switch p {
	case Ambient:
		set(func(m *Material) { m.Ambient = col })
	case Diffuse:
		set(func(m *Material) { m.Diffuse = col })
	case Specular:
		set(func(m *Material) { m.Specular = col })
	case Emission:
		set(func(m *Material) { m.Emission = col })
	case AmbientAndDiffuse:
		set(func(m *Material) { m.Ambient, m.Diffuse = col, col })
	default:
		c.setErr(InvalidEnum)
	}
}

// FrontMaterial returns the current front-face material.
func (c *Context) FrontMaterial() Material { return c.material[0] }

// SetLight0 replaces the state of light 0.
func (c *Context) SetLight0(l Light) { c.light0 = l }

// LightModelAmbient sets the global ambient term.
func (c *Context) LightModelAmbient(r, g, b, a float32) {
	c.ambient = mgl32.Vec4{r, g, b, a}
}

// lightVertex evaluates the lighting equation for an eye-space position and
// unit normal, with a non-local viewer.
func (c *Context) lightVertex(eye mgl32.Vec4, n mgl32.Vec3) mgl32.Vec4 {
	m := c.material[0]
	col := m.Emission.Add(mul4(m.Ambient, c.ambient))

	if c.caps[Light0] {
		l := c.light0
		var dir mgl32.Vec3
		if l.Position[3] == 0 {
			dir = l.Position.Vec3().Normalize()
		} else {
			p := l.Position.Vec3().Mul(1 / l.Position[3])
			e := eye.Vec3()
			if eye[3] != 0 {
				e = e.Mul(1 / eye[3])
			}
			dir = p.Sub(e).Normalize()
		}

		col = col.Add(mul4(m.Ambient, l.Ambient))
		if nl := n.Dot(dir); nl > 0 {
			col = col.Add(mul4(m.Diffuse, l.Diffuse).Mul(nl))

			h := dir.Add(mgl32.Vec3{0, 0, 1}).Normalize()
			nh := n.Dot(h)
			if nh < 0 {
				nh = 0
			}
			spec := float32(math.Pow(float64(nh), float64(m.Shininess)))
			col = col.Add(mul4(m.Specular, l.Specular).Mul(spec))
		}
	}

	col[3] = m.Diffuse[3]
	return clamp4(col)
}
