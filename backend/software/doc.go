// Package software provides the pure-Go reference driver for ndraw.
//
// The driver renders into a caller-supplied *image.RGBA, which is the
// surface handed to Token.NewGraphics. It exists so the ndraw contract
// is usable and testable on every platform, independent of any native
// graphics subsystem. Rasterization uses golang.org/x/image/vector.
//
// The software driver is registered on import:
//
//	import _ "github.com/ndraw/ndraw/backend/software"
//
// It never reports NativeFault or NativeStatus on its own; its only
// failure mode is a Precondition error for a nil or wrongly typed
// surface. Rendering quality is best effort: curves are flattened to
// line segments and strokes are drawn as filled quads, without joint
// or cap styling.
package software
