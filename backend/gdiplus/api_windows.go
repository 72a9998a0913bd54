package gdiplus

import (
	"math"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/ndraw/ndraw"
)

// Flat GDI+ API bindings.
var (
	gdiplusDLL = windows.NewLazySystemDLL("gdiplus.dll")

	procGdiplusStartup      = gdiplusDLL.NewProc("GdiplusStartup")
	procGdiplusShutdown     = gdiplusDLL.NewProc("GdiplusShutdown")
	procGdipCreateFromHDC   = gdiplusDLL.NewProc("GdipCreateFromHDC")
	procGdipDeleteGraphics  = gdiplusDLL.NewProc("GdipDeleteGraphics")
	procGdipCreatePen1      = gdiplusDLL.NewProc("GdipCreatePen1")
	procGdipDeletePen       = gdiplusDLL.NewProc("GdipDeletePen")
	procGdipCreateSolidFill = gdiplusDLL.NewProc("GdipCreateSolidFill")
	procGdipDeleteBrush     = gdiplusDLL.NewProc("GdipDeleteBrush")
	procGdipDrawLineI       = gdiplusDLL.NewProc("GdipDrawLineI")
	procGdipDrawRectangleI  = gdiplusDLL.NewProc("GdipDrawRectangleI")
	procGdipDrawArcI        = gdiplusDLL.NewProc("GdipDrawArcI")
	procGdipDrawEllipseI    = gdiplusDLL.NewProc("GdipDrawEllipseI")
	procGdipFillRectangleI  = gdiplusDLL.NewProc("GdipFillRectangleI")
	procGdipFillPieI        = gdiplusDLL.NewProc("GdipFillPieI")
	procGdipFillEllipseI    = gdiplusDLL.NewProc("GdipFillEllipseI")
)

// GpStatus success value. Everything else maps to NativeStatus.
const statusOk = 0

// unitPixel is the GpUnit for device-pixel measures.
const unitPixel = 2

// startupInput mirrors GdiplusStartupInput.
type startupInput struct {
	GdiplusVersion           uint32
	DebugEventCallback       uintptr
	SuppressBackgroundThread int32
	SuppressExternalCodecs   int32
}

// f32 passes a REAL argument through the call boundary.
// REAL arguments in the flat API beyond the register positions are
// read from the stack as 32-bit patterns, so the bit image is what
// must cross.
func f32(v float32) uintptr {
	return uintptr(math.Float32bits(v))
}

// argb packs a color into the GDI+ ARGB layout.
func argb(c ndraw.Color) uintptr {
	return uintptr(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// call invokes a flat-API proc and maps its result onto the ndraw
// error kinds. A panic out of the call layer (missing export, native
// fault) is recovered into NativeFault; a non-Ok GpStatus becomes
// NativeStatus carrying the code.
func call(op string, proc *windows.LazyProc, args ...uintptr) (err error) {
	defer func() {
		if recover() != nil {
			err = &ndraw.Error{Kind: ndraw.NativeFault, Op: op}
		}
	}()
	r1, _, _ := proc.Call(args...)
	if status := int32(r1); status != statusOk {
		return &ndraw.Error{Kind: ndraw.NativeStatus, Op: op, Status: status}
	}
	return nil
}

// release invokes a flat-API destructor, swallowing every failure.
// Destruction must be unconditionally safe to call once.
func release(proc *windows.LazyProc, handle uintptr) {
	defer func() {
		_ = recover()
	}()
	_, _, _ = proc.Call(handle)
}

// ptrArg converts an out-parameter pointer for the call boundary.
func ptrArg[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}
