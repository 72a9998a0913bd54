package software

import (
	"image"

	"github.com/ndraw/ndraw"
	"github.com/ndraw/ndraw/backend"
)

// init registers the software driver on package import.
func init() {
	backend.Register(backend.Software, func() ndraw.Driver {
		return &Driver{}
	})
}

// Driver is the pure-Go ndraw driver. The zero value is ready to use.
type Driver struct{}

// New creates a new software driver.
func New() *Driver {
	return &Driver{}
}

// Name returns the driver identifier.
func (*Driver) Name() string {
	return backend.Software
}

// Startup performs subsystem setup. The software driver has no
// process-wide native state; the returned token is a fixed marker
// value.
func (*Driver) Startup() (uintptr, error) {
	return 1, nil
}

// Shutdown consumes the startup token. No-op for the software driver.
func (*Driver) Shutdown(uintptr) {}

// NewGraphics wraps an *image.RGBA surface. Any other surface value is
// a Precondition error.
func (*Driver) NewGraphics(surface ndraw.Surface) (ndraw.DriverGraphics, error) {
	img, ok := surface.(*image.RGBA)
	if !ok || img == nil {
		return nil, &ndraw.Error{Kind: ndraw.Precondition, Op: "NewGraphics"}
	}
	return &graphics{img: img}, nil
}

// NewPen creates a stroke style. width == 0 means hairline (one
// device unit).
func (*Driver) NewPen(c ndraw.Color, width uint32) (ndraw.DriverPen, error) {
	return &pen{color: c, width: width}, nil
}

// NewBrush creates a fill style.
func (*Driver) NewBrush(c ndraw.Color) (ndraw.DriverBrush, error) {
	return &brush{color: c}, nil
}

type pen struct {
	color ndraw.Color
	width uint32
}

func (*pen) Release() {}

type brush struct {
	color ndraw.Color
}

func (*brush) Release() {}

// graphics renders directly into the wrapped image.
type graphics struct {
	img *image.RGBA
}

// Release drops the surface reference. The image itself belongs to the
// caller.
func (g *graphics) Release() {
	g.img = nil
}

func (g *graphics) DrawLine(p ndraw.DriverPen, x1, y1, x2, y2 int) error {
	pn := p.(*pen)
	g.strokeSegment(pn, float32(x1), float32(y1), float32(x2), float32(y2))
	return nil
}

func (g *graphics) DrawRect(p ndraw.DriverPen, x, y int, w, h uint32) error {
	pn := p.(*pen)
	g.strokePolyline(pn, rectOutline(x, y, w, h), true)
	return nil
}

func (g *graphics) DrawEllipse(p ndraw.DriverPen, x, y int, w, h uint32) error {
	return g.DrawArc(p, x, y, w, h, 0, 360)
}

func (g *graphics) DrawArc(p ndraw.DriverPen, x, y int, w, h uint32, start, sweep float32) error {
	pn := p.(*pen)
	closed := sweep >= 360 || sweep <= -360
	g.strokePolyline(pn, arcPoints(x, y, w, h, start, sweep), closed)
	return nil
}

func (g *graphics) FillRect(b ndraw.DriverBrush, x, y int, w, h uint32) error {
	br := b.(*brush)
	g.fillPolygon(br, rectOutline(x, y, w, h))
	return nil
}

func (g *graphics) FillEllipse(b ndraw.DriverBrush, x, y int, w, h uint32) error {
	br := b.(*brush)
	g.fillPolygon(br, arcPoints(x, y, w, h, 0, 360))
	return nil
}

func (g *graphics) FillPie(b ndraw.DriverBrush, x, y int, w, h uint32, start, sweep float32) error {
	br := b.(*brush)
	pts := arcPoints(x, y, w, h, start, sweep)
	if sweep < 360 && sweep > -360 {
		// Wedge: radii from the center bound the arc.
		cx := float32(x) + float32(w)/2
		cy := float32(y) + float32(h)/2
		pts = append([]vec{{cx, cy}}, pts...)
	}
	g.fillPolygon(br, pts)
	return nil
}
