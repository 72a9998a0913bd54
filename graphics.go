package ndraw

import "errors"

// Graphics is a drawing surface bound to a native device context. All
// drawing operations go through a Graphics handle together with a Pen
// (stroke) or Brush (fill) and integer geometry in device units.
//
// A failed operation records the failure on the handle and returns it;
// the Graphics, Pen and Brush involved remain valid and reusable for
// subsequent calls. Not safe for concurrent use without external
// synchronization.
type Graphics struct {
	res     DriverGraphics
	lastErr error
}

// Close releases the native graphics resource. It never fails,
// swallowing any native destructor fault, and is safe to call more
// than once; drawing on the handle after Close returns a Precondition
// error.
func (g *Graphics) Close() error {
	if g == nil || g.res == nil {
		return nil
	}
	g.res.Release()
	g.res = nil
	return nil
}

// LastError returns the fixed-table message of the most recent failure
// on this handle, or "" when none has been recorded. The record is
// most-recent-wins and is not cleared by later successes.
func (g *Graphics) LastError() string {
	if g == nil {
		return ""
	}
	return lastErrorMessage(g.lastErr)
}

// lastErrorMessage maps a recorded failure to its fixed-table message.
func lastErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.Message()
	}
	return err.Error()
}

// record stores a failure on the handle and passes it through.
func (g *Graphics) record(err error) error {
	if err != nil {
		g.lastErr = err
	}
	return err
}

// strokeArgs validates the handle pair for a stroke operation and
// unwraps the native pen.
func (g *Graphics) strokeArgs(op string, p *Pen) (DriverPen, error) {
	if g == nil || g.res == nil {
		return nil, &Error{Kind: Precondition, Op: op}
	}
	if p == nil || p.res == nil {
		err := &Error{Kind: Precondition, Op: op}
		if p != nil {
			p.lastErr = err
		}
		return nil, g.record(err)
	}
	return p.res, nil
}

// fillArgs validates the handle pair for a fill operation and unwraps
// the native brush.
func (g *Graphics) fillArgs(op string, b *Brush) (DriverBrush, error) {
	if g == nil || g.res == nil {
		return nil, &Error{Kind: Precondition, Op: op}
	}
	if b == nil || b.res == nil {
		err := &Error{Kind: Precondition, Op: op}
		if b != nil {
			b.lastErr = err
		}
		return nil, g.record(err)
	}
	return b.res, nil
}

// DrawLine strokes a line from (x1, y1) to (x2, y2). A zero-length
// line is legal and succeeds.
func (g *Graphics) DrawLine(p *Pen, x1, y1, x2, y2 int) error {
	dp, err := g.strokeArgs("DrawLine", p)
	if err != nil {
		return err
	}
	return g.record(g.res.DrawLine(dp, x1, y1, x2, y2))
}

// DrawRectangle strokes the outline of the rectangle with origin
// (x, y) and the given size. Zero width or height degenerates to a
// line or point and succeeds.
func (g *Graphics) DrawRectangle(p *Pen, x, y int, w, h uint32) error {
	dp, err := g.strokeArgs("DrawRectangle", p)
	if err != nil {
		return err
	}
	return g.record(g.res.DrawRect(dp, x, y, w, h))
}

// DrawEllipse strokes the ellipse inscribed in the bounding rectangle.
func (g *Graphics) DrawEllipse(p *Pen, x, y int, w, h uint32) error {
	dp, err := g.strokeArgs("DrawEllipse", p)
	if err != nil {
		return err
	}
	return g.record(g.res.DrawEllipse(dp, x, y, w, h))
}

// DrawArc strokes the arc of the ellipse inscribed in the bounding
// rectangle, from start to end degrees. The native layer receives
// the signed sweep end - start: pass end > start for a clockwise
// sweep.
func (g *Graphics) DrawArc(p *Pen, x, y int, w, h uint32, start, end float32) error {
	dp, err := g.strokeArgs("DrawArc", p)
	if err != nil {
		return err
	}
	return g.record(g.res.DrawArc(dp, x, y, w, h, start, end-start))
}

// FillRectangle fills the rectangle with origin (x, y) and the given
// size. Zero width or height degenerates and succeeds.
func (g *Graphics) FillRectangle(b *Brush, x, y int, w, h uint32) error {
	db, err := g.fillArgs("FillRectangle", b)
	if err != nil {
		return err
	}
	return g.record(g.res.FillRect(db, x, y, w, h))
}

// FillEllipse fills the ellipse inscribed in the bounding rectangle.
func (g *Graphics) FillEllipse(b *Brush, x, y int, w, h uint32) error {
	db, err := g.fillArgs("FillEllipse", b)
	if err != nil {
		return err
	}
	return g.record(g.res.FillEllipse(db, x, y, w, h))
}

// FillArc fills the pie slice of the ellipse inscribed in the bounding
// rectangle: the wedge bounded by the radii at start and end degrees
// and the arc between them. The native layer receives the signed sweep
// end - start.
func (g *Graphics) FillArc(b *Brush, x, y int, w, h uint32, start, end float32) error {
	db, err := g.fillArgs("FillArc", b)
	if err != nil {
		return err
	}
	return g.record(g.res.FillPie(db, x, y, w, h, start, end-start))
}

// DrawLines strokes one line per consecutive pair of points:
// (points[0], points[1]), (points[2], points[3]), and so on. An odd
// trailing point is ignored. Stops at the first failure.
func (g *Graphics) DrawLines(p *Pen, points []Point) error {
	for i := 0; i+1 < len(points); i += 2 {
		a, b := points[i], points[i+1]
		if err := g.DrawLine(p, a.X, a.Y, b.X, b.Y); err != nil {
			return err
		}
	}
	return nil
}

// DrawRectangles strokes each rectangle in turn, stopping at the
// first failure.
func (g *Graphics) DrawRectangles(p *Pen, rects []Rect) error {
	for _, r := range rects {
		if err := g.DrawRectangle(p, r.X, r.Y, r.Width, r.Height); err != nil {
			return err
		}
	}
	return nil
}

// DrawEllipses strokes the ellipse inscribed in each bounding
// rectangle in turn, stopping at the first failure.
func (g *Graphics) DrawEllipses(p *Pen, rects []Rect) error {
	for _, r := range rects {
		if err := g.DrawEllipse(p, r.X, r.Y, r.Width, r.Height); err != nil {
			return err
		}
	}
	return nil
}

// DrawArcs strokes each arc in turn, stopping at the first failure.
func (g *Graphics) DrawArcs(p *Pen, arcs []Arc) error {
	for _, a := range arcs {
		r := a.Bounds
		if err := g.DrawArc(p, r.X, r.Y, r.Width, r.Height, a.Start, a.End); err != nil {
			return err
		}
	}
	return nil
}

// FillRectangles fills each rectangle in turn, stopping at the first
// failure.
func (g *Graphics) FillRectangles(b *Brush, rects []Rect) error {
	for _, r := range rects {
		if err := g.FillRectangle(b, r.X, r.Y, r.Width, r.Height); err != nil {
			return err
		}
	}
	return nil
}

// FillEllipses fills the ellipse inscribed in each bounding rectangle
// in turn, stopping at the first failure.
func (g *Graphics) FillEllipses(b *Brush, rects []Rect) error {
	for _, r := range rects {
		if err := g.FillEllipse(b, r.X, r.Y, r.Width, r.Height); err != nil {
			return err
		}
	}
	return nil
}

// FillArcs fills each pie slice in turn, stopping at the first
// failure.
func (g *Graphics) FillArcs(b *Brush, arcs []Arc) error {
	for _, a := range arcs {
		r := a.Bounds
		if err := g.FillArc(b, r.X, r.Y, r.Width, r.Height, a.Start, a.End); err != nil {
			return err
		}
	}
	return nil
}
