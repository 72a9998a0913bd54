package gdiplus

import (
	"golang.org/x/sys/windows"

	"github.com/ndraw/ndraw"
	"github.com/ndraw/ndraw/backend"
)

// init registers the gdiplus driver on package import.
func init() {
	backend.Register(backend.GDIPlus, func() ndraw.Driver {
		return &Driver{}
	})
}

// Driver is the Windows GDI+ ndraw driver. The zero value is ready to
// use.
type Driver struct{}

// New creates a new GDI+ driver.
func New() *Driver {
	return &Driver{}
}

// Name returns the driver identifier.
func (*Driver) Name() string {
	return backend.GDIPlus
}

// Startup calls GdiplusStartup and returns the GDI+ startup token.
func (*Driver) Startup() (uintptr, error) {
	var token uintptr
	input := startupInput{GdiplusVersion: 1}
	if err := call("Startup", procGdiplusStartup,
		ptrArg(&token), ptrArg(&input), 0); err != nil {
		return 0, err
	}
	return token, nil
}

// Shutdown calls GdiplusShutdown with the startup token.
func (*Driver) Shutdown(token uintptr) {
	release(procGdiplusShutdown, token)
}

// NewGraphics wraps a device context handle (uintptr or windows.HDC).
func (*Driver) NewGraphics(surface ndraw.Surface) (ndraw.DriverGraphics, error) {
	var hdc uintptr
	switch s := surface.(type) {
	case uintptr:
		hdc = s
	case windows.HDC:
		hdc = uintptr(s)
	default:
		return nil, &ndraw.Error{Kind: ndraw.Precondition, Op: "NewGraphics"}
	}
	if hdc == 0 {
		return nil, &ndraw.Error{Kind: ndraw.Precondition, Op: "NewGraphics"}
	}

	var ptr uintptr
	if err := call("NewGraphics", procGdipCreateFromHDC, hdc, ptrArg(&ptr)); err != nil {
		return nil, err
	}
	return &graphics{ptr: ptr}, nil
}

// NewPen calls GdipCreatePen1 with the color and width in device
// units. width == 0 is a legal hairline pen.
func (*Driver) NewPen(c ndraw.Color, width uint32) (ndraw.DriverPen, error) {
	var ptr uintptr
	if err := call("NewPen", procGdipCreatePen1,
		argb(c), f32(float32(width)), unitPixel, ptrArg(&ptr)); err != nil {
		return nil, err
	}
	return &pen{ptr: ptr}, nil
}

// NewBrush calls GdipCreateSolidFill with the color.
func (*Driver) NewBrush(c ndraw.Color) (ndraw.DriverBrush, error) {
	var ptr uintptr
	if err := call("NewBrush", procGdipCreateSolidFill,
		argb(c), ptrArg(&ptr)); err != nil {
		return nil, err
	}
	return &brush{ptr: ptr}, nil
}

// pen wraps a native GpPen pointer.
type pen struct {
	ptr uintptr
}

func (p *pen) Release() {
	release(procGdipDeletePen, p.ptr)
	p.ptr = 0
}

// brush wraps a native GpSolidFill pointer.
type brush struct {
	ptr uintptr
}

func (b *brush) Release() {
	release(procGdipDeleteBrush, b.ptr)
	b.ptr = 0
}

// graphics wraps a native GpGraphics pointer.
type graphics struct {
	ptr uintptr
}

func (g *graphics) Release() {
	release(procGdipDeleteGraphics, g.ptr)
	g.ptr = 0
}

func (g *graphics) DrawLine(p ndraw.DriverPen, x1, y1, x2, y2 int) error {
	return call("DrawLine", procGdipDrawLineI,
		g.ptr, p.(*pen).ptr,
		uintptr(x1), uintptr(y1), uintptr(x2), uintptr(y2))
}

func (g *graphics) DrawRect(p ndraw.DriverPen, x, y int, w, h uint32) error {
	return call("DrawRect", procGdipDrawRectangleI,
		g.ptr, p.(*pen).ptr,
		uintptr(x), uintptr(y), uintptr(w), uintptr(h))
}

func (g *graphics) DrawEllipse(p ndraw.DriverPen, x, y int, w, h uint32) error {
	return call("DrawEllipse", procGdipDrawEllipseI,
		g.ptr, p.(*pen).ptr,
		uintptr(x), uintptr(y), uintptr(w), uintptr(h))
}

func (g *graphics) DrawArc(p ndraw.DriverPen, x, y int, w, h uint32, start, sweep float32) error {
	return call("DrawArc", procGdipDrawArcI,
		g.ptr, p.(*pen).ptr,
		uintptr(x), uintptr(y), uintptr(w), uintptr(h),
		f32(start), f32(sweep))
}

func (g *graphics) FillRect(b ndraw.DriverBrush, x, y int, w, h uint32) error {
	return call("FillRect", procGdipFillRectangleI,
		g.ptr, b.(*brush).ptr,
		uintptr(x), uintptr(y), uintptr(w), uintptr(h))
}

func (g *graphics) FillEllipse(b ndraw.DriverBrush, x, y int, w, h uint32) error {
	return call("FillEllipse", procGdipFillEllipseI,
		g.ptr, b.(*brush).ptr,
		uintptr(x), uintptr(y), uintptr(w), uintptr(h))
}

func (g *graphics) FillPie(b ndraw.DriverBrush, x, y int, w, h uint32, start, sweep float32) error {
	return call("FillPie", procGdipFillPieI,
		g.ptr, b.(*brush).ptr,
		uintptr(x), uintptr(y), uintptr(w), uintptr(h),
		f32(start), f32(sweep))
}
