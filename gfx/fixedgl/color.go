package fixedgl

import "github.com/go-gl/mathgl/mgl32"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Vec4 returns the color with channels scaled to 0..1.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// colorFromVec4 clamps each channel to 0..1 and rounds to 8 bits.
func colorFromVec4(v mgl32.Vec4) Color {
	ch := func(f float32) uint8 {
		return uint8(mgl32.Clamp(f, 0, 1)*255 + 0.5)
	}
	return Color{R: ch(v[0]), G: ch(v[1]), B: ch(v[2]), A: ch(v[3])}
}

func clamp4(v mgl32.Vec4) mgl32.Vec4 {
	for i := range v {
		v[i] = mgl32.Clamp(v[i], 0, 1)
	}
	return v
}

// mul4 is the component-wise product.
func mul4(a, b mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}
