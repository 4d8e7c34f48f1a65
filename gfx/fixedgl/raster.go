package fixedgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawOptions controls how DrawMesh uses the mesh attributes.
type DrawOptions struct {
	Style   DrawStyle
	Normals Normals
	Texture bool
}

// clipVertex is a vertex after lighting, in clip coordinates.
type clipVertex struct {
	pos   mgl32.Vec4
	color mgl32.Vec4
	tex   mgl32.Vec2
}

// windowVertex is a vertex after the perspective divide and viewport mapping.
// Attributes are pre-divided by w for perspective-correct interpolation.
type windowVertex struct {
	x, y, z float32
	invW    float32
	color   mgl32.Vec4 // divided by w
	tex     mgl32.Vec2 // divided by w
}

// DrawMesh transforms, lights, clips and rasterizes a triangle mesh with the
// current state.
func (c *Context) DrawMesh(m Mesh, opt DrawOptions) {
	if c.target == nil || len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	w, h := c.target.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if c.caps[DepthTest] {
		c.ensureDepth()
	}
	if opt.Style == 0 {
		opt.Style = StyleFill
	}
	if opt.Normals == 0 {
		opt.Normals = NormalsSmooth
	}

	mv := c.Matrix(ModelView)
	mvp := c.Matrix(Projection).Mul4(mv)
	nm := mgl32.Mat4Normal(mv)
	tex := c.activeTexture()
	if !opt.Texture {
		tex = nil
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(i0) >= len(m.Vertices) || int(i1) >= len(m.Vertices) || int(i2) >= len(m.Vertices) {
			c.setErr(InvalidValue)
			return
		}
		tri := [3]Vertex{m.Vertices[i0], m.Vertices[i1], m.Vertices[i2]}

		switch opt.Normals {
		case NormalsFlat:
			n := tri[1].Pos.Sub(tri[0].Pos).Cross(tri[2].Pos.Sub(tri[0].Pos))
			if n.Len() == 0 {
				continue
			}
			n = n.Normalize()
			for k := range tri {
				tri[k].Normal = n
			}
		case NormalsNone:
			for k := range tri {
				tri[k].Normal = mgl32.Vec3{0, 0, 1}
			}
		}

		var cv [3]clipVertex
		for k, v := range tri {
			obj := v.Pos.Vec4(1)
			cv[k].pos = mvp.Mul4x1(obj)
			cv[k].tex = v.Tex
			if c.caps[Lighting] {
				n := nm.Mul3x1(v.Normal)
				if n.Len() != 0 {
					n = n.Normalize()
				}
				cv[k].color = c.lightVertex(mv.Mul4x1(obj), n)
			} else {
				cv[k].color = c.current
			}
		}
		if c.shade == Flat {
			// The last vertex provokes the color of the whole triangle.
			cv[0].color = cv[2].color
			cv[1].color = cv[2].color
		}

		c.drawTriangle(cv, opt.Style, tex, w, h)
	}
}

func (c *Context) drawTriangle(cv [3]clipVertex, style DrawStyle, tex *texture, w, h int) {
	var bufA, bufB [8]clipVertex
	poly := append(bufA[:0], cv[0], cv[1], cv[2])
	// Near plane, then far plane.
	poly = clipPolygon(poly, bufB[:0], func(p mgl32.Vec4) float32 { return p[2] + p[3] })
	if len(poly) < 3 {
		return
	}
	poly = clipPolygon(poly, bufA[:0], func(p mgl32.Vec4) float32 { return p[3] - p[2] })
	if len(poly) < 3 {
		return
	}

	var wv [8]windowVertex
	n := 0
	for _, v := range poly {
		if v.pos[3] <= 0 || n == len(wv) {
			return
		}
		wv[n] = c.toWindow(v)
		n++
	}

	// Face orientation is decided on the whole polygon, as GL does.
	area := polygonArea(wv[:n])
	if area == 0 {
		return
	}
	if c.caps[CullFace] && area < 0 {
		return
	}

	switch style {
	case StyleLine:
		for k := 0; k < n; k++ {
			a, b := wv[k], wv[(k+1)%n]
			c.drawLine(a, b, w, h)
		}
	case StylePoint:
		for k := 0; k < n; k++ {
			c.plot(wv[k], w, h)
		}
	default:
		for k := 1; k+1 < n; k++ {
			c.fillTriangle(wv[0], wv[k], wv[k+1], tex, w, h)
		}
	}
}

// clipPolygon keeps the part of in where dist >= 0 (Sutherland-Hodgman).
func clipPolygon(in, out []clipVertex, dist func(mgl32.Vec4) float32) []clipVertex {
	for k := range in {
		a := in[k]
		b := in[(k+1)%len(in)]
		da := dist(a.pos)
		db := dist(b.pos)
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			t := da / (da - db)
			out = append(out, lerpClip(a, b, t))
		}
	}
	return out
}

func lerpClip(a, b clipVertex, t float32) clipVertex {
	return clipVertex{
		pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
		color: a.color.Add(b.color.Sub(a.color).Mul(t)),
		tex:   a.tex.Add(b.tex.Sub(a.tex).Mul(t)),
	}
}

func (c *Context) toWindow(v clipVertex) windowVertex {
	invW := 1 / v.pos[3]
	ndc := v.pos.Vec3().Mul(invW)
	vx, vy, vw, vh := c.CurrentViewport()
	return windowVertex{
		x:     (ndc[0]+1)*float32(vw)/2 + float32(vx),
		y:     (ndc[1]+1)*float32(vh)/2 + float32(vy),
		z:     ndc[2]*0.5 + 0.5,
		invW:  invW,
		color: v.color.Mul(invW),
		tex:   v.tex.Mul(invW),
	}
}

// polygonArea is twice the signed area in window coordinates; positive means
// counter-clockwise.
func polygonArea(p []windowVertex) float32 {
	var a float32
	for k := range p {
		q := p[(k+1)%len(p)]
		a += p[k].x*q.y - q.x*p[k].y
	}
	return a
}

// scissor returns the pixel rectangle fragments may land in, in window
// coordinates: the viewport intersected with the target.
func (c *Context) scissor(w, h int) (x0, y0, x1, y1 int) {
	vx, vy, vw, vh := c.CurrentViewport()
	x0, y0 = max(vx, 0), max(vy, 0)
	x1, y1 = min(vx+vw, w), min(vy+vh, h)
	return x0, y0, x1, y1
}

func (c *Context) fillTriangle(a, b, d windowVertex, tex *texture, w, h int) {
	sx0, sy0, sx1, sy1 := c.scissor(w, h)
	minX := max(int(math.Floor(float64(min(a.x, b.x, d.x)))), sx0)
	maxX := min(int(math.Ceil(float64(max(a.x, b.x, d.x)))), sx1-1)
	minY := max(int(math.Floor(float64(min(a.y, b.y, d.y)))), sy0)
	maxY := min(int(math.Ceil(float64(max(a.y, b.y, d.y)))), sy1-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edge(a, b, d.x, d.y)
	if area == 0 {
		return
	}
	inv := 1 / area

	for py := minY; py <= maxY; py++ {
		fy := float32(py) + 0.5
		row := h - 1 - py
		for px := minX; px <= maxX; px++ {
			fx := float32(px) + 0.5
			w0 := edge(b, d, fx, fy) * inv
			w1 := edge(d, a, fx, fy) * inv
			w2 := edge(a, b, fx, fy) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.z + w1*b.z + w2*d.z
			if z < 0 || z > 1 {
				continue
			}
			if c.caps[DepthTest] {
				idx := row*c.depthW + px
				if idx < 0 || idx >= len(c.depthBuf) || z >= c.depthBuf[idx] {
					continue
				}
				c.depthBuf[idx] = z
			}

			iw := w0*a.invW + w1*b.invW + w2*d.invW
			if iw == 0 {
				continue
			}
			pw := 1 / iw
			col := a.color.Mul(w0).Add(b.color.Mul(w1)).Add(d.color.Mul(w2)).Mul(pw)
			if tex != nil {
				st := a.tex.Mul(w0).Add(b.tex.Mul(w1)).Add(d.tex.Mul(w2)).Mul(pw)
				col = mul4(col, tex.sample(st[0], st[1]))
			}
			c.target.SetPixel(px, row, colorFromVec4(col))
		}
	}
}

// edge is the signed area of (a, b, p) in window coordinates.
func edge(a, b windowVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

func (c *Context) plot(v windowVertex, w, h int) {
	x := int(math.Floor(float64(v.x)))
	y := int(math.Floor(float64(v.y)))
	sx0, sy0, sx1, sy1 := c.scissor(w, h)
	if x < sx0 || y < sy0 || x >= sx1 || y >= sy1 {
		return
	}
	c.target.SetPixel(x, h-1-y, colorFromVec4(v.color.Mul(1/v.invW)))
}

func (c *Context) drawLine(a, b windowVertex, w, h int) {
	x0, y0 := int(math.Floor(float64(a.x))), int(math.Floor(float64(a.y)))
	x1, y1 := int(math.Floor(float64(b.x))), int(math.Floor(float64(b.y)))
	col := colorFromVec4(a.color.Mul(1 / a.invW))
	sx0, sy0, sx1, sy1 := c.scissor(w, h)

	dx := absInt(x1 - x0)
	stepX := -1
	if x0 < x1 {
		stepX = 1
	}
	dy := -absInt(y1 - y0)
	stepY := -1
	if y0 < y1 {
		stepY = 1
	}
	err := dx + dy
	for {
		if x0 >= sx0 && y0 >= sy0 && x0 < sx1 && y0 < sy1 {
			c.target.SetPixel(x0, h-1-y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += stepX
		}
		if e2 <= dx {
			err += dx
			y0 += stepY
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
