package fixedgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Texture names a texture object. Zero is the default texture.
type Texture uint32

// PixelFormat is the layout of uploaded texel data.
type PixelFormat uint8

const (
	FormatRGB PixelFormat = iota + 1
	FormatRGBA
)

func (f PixelFormat) bytesPerPixel() int {
	switch f {
	case FormatRGB:
		return 3
	case FormatRGBA:
		return 4
	}
	return 0
}

// TextureParam names a sampler parameter.
type TextureParam uint8

const (
	TextureMinFilter TextureParam = iota + 1
	TextureMagFilter
	TextureWrapS
	TextureWrapT
)

// TextureValue is a filter or wrap mode.
type TextureValue uint8

const (
	Nearest TextureValue = iota + 1
	Linear
	NearestMipmapLinear
	Repeat
	ClampToEdge
)

type texture struct {
	w, h   int
	format PixelFormat
	texels []byte

	minFilter TextureValue
	magFilter TextureValue
	wrapS     TextureValue
	wrapT     TextureValue
}

func newTexture() *texture {
	return &texture{
		minFilter: NearestMipmapLinear,
		magFilter: Linear,
		wrapS:     Repeat,
		wrapT:     Repeat,
	}
}

// complete reports whether the texture can be sampled. Only level 0 is ever
// uploaded, so a mipmapping minification filter leaves it incomplete.
func (t *texture) complete() bool {
	if t == nil || t.w <= 0 || t.h <= 0 || len(t.texels) == 0 {
		return false
	}
	return t.minFilter == Nearest || t.minFilter == Linear
}

// GenTexture reserves an unused texture name.
func (c *Context) GenTexture() Texture {
	c.nextTexture++
	for c.textures[c.nextTexture] != nil {
		c.nextTexture++
	}
	c.textures[c.nextTexture] = newTexture()
	return c.nextTexture
}

// BindTexture makes name the current 2D texture, creating it on first use.
func (c *Context) BindTexture(name Texture) {
	if c.textures[name] == nil {
		c.textures[name] = newTexture()
	}
	c.bound = name
}

// BoundTexture returns the current 2D texture name.
func (c *Context) BoundTexture() Texture { return c.bound }

// TexImage2D copies w*h pixels of the given format into the bound texture.
// Rows are tightly packed, first row first.
func (c *Context) TexImage2D(w, h int, format PixelFormat, pix []byte) {
	bpp := format.bytesPerPixel()
	if bpp == 0 {
		c.setErr(InvalidEnum)
		return
	}
	if w <= 0 || h <= 0 || len(pix) < w*h*bpp {
		c.setErr(InvalidValue)
		return
	}
	t := c.textures[c.bound]
	if t == nil {
		t = newTexture()
		c.textures[c.bound] = t
	}
	t.w, t.h, t.format = w, h, format
	t.texels = append(t.texels[:0], pix[:w*h*bpp]...)
}

// TexParameter sets a sampler parameter of the bound texture.
func (c *Context) TexParameter(p TextureParam, v TextureValue) {
	t := c.textures[c.bound]
	switch p {
	case TextureMinFilter:
		if v != Nearest && v != Linear && v != NearestMipmapLinear {
			c.setErr(InvalidEnum)
			return
		}
		t.minFilter = v
	case TextureMagFilter:
		if v != Nearest && v != Linear {
			c.setErr(InvalidEnum)
			return
		}
		t.magFilter = v
	case TextureWrapS, TextureWrapT:
		if v != Repeat && v != ClampToEdge {
			c.setErr(InvalidEnum)
			return
		}
		if p == TextureWrapS {
			t.wrapS = v
		} else {
			t.wrapT = v
		}
	default:
		c.setErr(InvalidEnum)
	}
}

// activeTexture returns the texture fragments should sample, or nil.
func (c *Context) activeTexture() *texture {
	if !c.caps[Texture2D] {
		return nil
	}
	t := c.textures[c.bound]
	if !t.complete() {
		return nil
	}
	return t
}

// sample filters the texture at s, t. Minification and magnification are not
// told apart per fragment; the magnification filter decides.
func (t *texture) sample(s, tc float32) mgl32.Vec4 {
	if t.magFilter == Nearest {
		x := wrapIndex(int(math.Floor(float64(s*float32(t.w)))), t.w, t.wrapS)
		y := wrapIndex(int(math.Floor(float64(tc*float32(t.h)))), t.h, t.wrapT)
		return t.texel(x, y)
	}

	u := s*float32(t.w) - 0.5
	v := tc*float32(t.h) - 0.5
	fu := float32(math.Floor(float64(u)))
	fv := float32(math.Floor(float64(v)))
	a := u - fu
	b := v - fv

	x0 := wrapIndex(int(fu), t.w, t.wrapS)
	x1 := wrapIndex(int(fu)+1, t.w, t.wrapS)
	y0 := wrapIndex(int(fv), t.h, t.wrapT)
	y1 := wrapIndex(int(fv)+1, t.h, t.wrapT)

	t00 := t.texel(x0, y0)
	t10 := t.texel(x1, y0)
	t01 := t.texel(x0, y1)
	t11 := t.texel(x1, y1)

	top := t00.Mul(1 - a).Add(t10.Mul(a))
	bottom := t01.Mul(1 - a).Add(t11.Mul(a))
	return top.Mul(1 - b).Add(bottom.Mul(b))
}

func (t *texture) texel(x, y int) mgl32.Vec4 {
	bpp := t.format.bytesPerPixel()
	off := (y*t.w + x) * bpp
	if off < 0 || off+bpp > len(t.texels) {
		return mgl32.Vec4{0, 0, 0, 1}
	}
	p := t.texels[off : off+bpp]
	out := mgl32.Vec4{float32(p[0]) / 255, float32(p[1]) / 255, float32(p[2]) / 255, 1}
	if bpp == 4 {
		out[3] = float32(p[3]) / 255
	}
	return out
}

func wrapIndex(i, n int, mode TextureValue) int {
	if mode == ClampToEdge {
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
