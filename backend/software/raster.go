package software

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// vec is a point in device units, kept as float32 to match the
// rasterizer's coordinate space.
type vec struct {
	x, y float32
}

// arcSegments is the flattening resolution for a full ellipse.
const arcSegments = 64

// rectOutline returns the four corners of a rectangle. Zero sizes
// degenerate to a line or point, which rasterizes to nothing.
func rectOutline(x, y int, w, h uint32) []vec {
	x0, y0 := float32(x), float32(y)
	x1, y1 := x0+float32(w), y0+float32(h)
	return []vec{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// arcPoints flattens the arc of the ellipse inscribed in the bounding
// rectangle. Angles follow the native convention: degrees, zero along
// the positive x axis, increasing clockwise in screen coordinates.
func arcPoints(x, y int, w, h uint32, start, sweep float32) []vec {
	rx := float32(w) / 2
	ry := float32(h) / 2
	cx := float32(x) + rx
	cy := float32(y) + ry

	n := int(math.Abs(float64(sweep))/360*arcSegments + 0.5)
	if n < 2 {
		n = 2
	}
	pts := make([]vec, 0, n+1)
	for i := 0; i <= n; i++ {
		a := float64(start) + float64(sweep)*float64(i)/float64(n)
		rad := a * math.Pi / 180
		pts = append(pts, vec{
			x: cx + rx*float32(math.Cos(rad)),
			y: cy + ry*float32(math.Sin(rad)),
		})
	}
	return pts
}

// fillPolygon rasterizes the polygon onto the surface with the brush
// color.
func (g *graphics) fillPolygon(br *brush, pts []vec) {
	if len(pts) < 3 {
		return
	}
	b := g.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		z.LineTo(p.x, p.y)
	}
	z.ClosePath()
	z.Draw(g.img, b, image.NewUniform(br.color.NRGBA()), image.Point{})
}

// strokeSegment draws one line segment as a filled quad of the pen's
// width. A zero-width pen strokes one device unit (hairline).
func (g *graphics) strokeSegment(pn *pen, x1, y1, x2, y2 float32) {
	width := float32(pn.width)
	if width == 0 {
		width = 1
	}

	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		// Degenerate segment: a dot of the pen's width.
		half := width / 2
		g.fillQuad(pn, []vec{
			{x1 - half, y1 - half}, {x1 + half, y1 - half},
			{x1 + half, y1 + half}, {x1 - half, y1 + half},
		})
		return
	}

	// Perpendicular offset of half the width on each side.
	px := -dy / length * width / 2
	py := dx / length * width / 2
	g.fillQuad(pn, []vec{
		{x1 + px, y1 + py}, {x2 + px, y2 + py},
		{x2 - px, y2 - py}, {x1 - px, y1 - py},
	})
}

// strokePolyline strokes consecutive segments of a flattened path.
func (g *graphics) strokePolyline(pn *pen, pts []vec, closed bool) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		g.strokeSegment(pn, pts[i].x, pts[i].y, pts[i+1].x, pts[i+1].y)
	}
	if closed {
		last := pts[len(pts)-1]
		g.strokeSegment(pn, last.x, last.y, pts[0].x, pts[0].y)
	}
}

// fillQuad rasterizes a quad with the pen color.
func (g *graphics) fillQuad(pn *pen, pts []vec) {
	b := g.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		z.LineTo(p.x, p.y)
	}
	z.ClosePath()
	z.Draw(g.img, b, image.NewUniform(pn.color.NRGBA()), image.Point{})
}
