// Package fixedgl is a small software rendition of the fixed-function 3D pipeline.
//
// It covers the subset a classic immediate-mode program needs: capability switches,
// model-view and projection matrix stacks, one light, front-face materials, 2D RGB
// textures, quadric spheres, and a depth-tested, back-face-culled rasterizer.
//
// Pipeline (fixed):
//
//	Vertex → Model-view → Lighting → Projection → Clipping → Viewport → Raster → Target.
//
// A Context draws into a caller-provided Target and keeps its state between frames,
// exactly like a GL context. Errors never abort a call; they are latched into a
// sticky flag that Err returns and clears.
package fixedgl
