package ndraw

// mockDriver is an in-memory Driver for tests. It counts native
// allocations per resource type, captures drawing calls with their
// arguments, and can inject a failure into the next operation.
type mockDriver struct {
	startErr  error
	starts    int
	shutdowns int
	token     uintptr

	newGraphicsErr error
	newPenErr      error
	newBrushErr    error

	graphicsLive int
	pensLive     int
	brushesLive  int

	// failNext is returned by the next drawing operation, then cleared.
	failNext error

	calls []mockCall
}

type mockCall struct {
	op             string
	x1, y1, x2, y2 int
	x, y           int
	w, h           uint32
	start, sweep   float32
}

func (d *mockDriver) Name() string { return "mock" }

func (d *mockDriver) Startup() (uintptr, error) {
	if d.startErr != nil {
		return 0, d.startErr
	}
	d.starts++
	d.token = uintptr(0xfeed)
	return d.token, nil
}

func (d *mockDriver) Shutdown(token uintptr) {
	d.shutdowns++
	d.token = token
}

func (d *mockDriver) NewGraphics(Surface) (DriverGraphics, error) {
	if d.newGraphicsErr != nil {
		return nil, d.newGraphicsErr
	}
	d.graphicsLive++
	return &mockGraphics{d: d}, nil
}

func (d *mockDriver) NewPen(Color, uint32) (DriverPen, error) {
	if d.newPenErr != nil {
		return nil, d.newPenErr
	}
	d.pensLive++
	return &mockPen{d: d}, nil
}

func (d *mockDriver) NewBrush(Color) (DriverBrush, error) {
	if d.newBrushErr != nil {
		return nil, d.newBrushErr
	}
	d.brushesLive++
	return &mockBrush{d: d}, nil
}

// op records a call and pops the injected failure, if any.
func (d *mockDriver) op(c mockCall) error {
	d.calls = append(d.calls, c)
	err := d.failNext
	d.failNext = nil
	return err
}

// lastCall returns the most recent recorded call.
func (d *mockDriver) lastCall() mockCall {
	if len(d.calls) == 0 {
		return mockCall{}
	}
	return d.calls[len(d.calls)-1]
}

type mockPen struct {
	d *mockDriver
}

func (p *mockPen) Release() { p.d.pensLive-- }

type mockBrush struct {
	d *mockDriver
}

func (b *mockBrush) Release() { b.d.brushesLive-- }

type mockGraphics struct {
	d *mockDriver
}

func (g *mockGraphics) Release() { g.d.graphicsLive-- }

func (g *mockGraphics) DrawLine(_ DriverPen, x1, y1, x2, y2 int) error {
	return g.d.op(mockCall{op: "DrawLine", x1: x1, y1: y1, x2: x2, y2: y2})
}

func (g *mockGraphics) DrawRect(_ DriverPen, x, y int, w, h uint32) error {
	return g.d.op(mockCall{op: "DrawRect", x: x, y: y, w: w, h: h})
}

func (g *mockGraphics) DrawEllipse(_ DriverPen, x, y int, w, h uint32) error {
	return g.d.op(mockCall{op: "DrawEllipse", x: x, y: y, w: w, h: h})
}

func (g *mockGraphics) DrawArc(_ DriverPen, x, y int, w, h uint32, start, sweep float32) error {
	return g.d.op(mockCall{op: "DrawArc", x: x, y: y, w: w, h: h, start: start, sweep: sweep})
}

func (g *mockGraphics) FillRect(_ DriverBrush, x, y int, w, h uint32) error {
	return g.d.op(mockCall{op: "FillRect", x: x, y: y, w: w, h: h})
}

func (g *mockGraphics) FillEllipse(_ DriverBrush, x, y int, w, h uint32) error {
	return g.d.op(mockCall{op: "FillEllipse", x: x, y: y, w: w, h: h})
}

func (g *mockGraphics) FillPie(_ DriverBrush, x, y int, w, h uint32, start, sweep float32) error {
	return g.d.op(mockCall{op: "FillPie", x: x, y: y, w: w, h: h, start: start, sweep: sweep})
}

// startedToken is a test helper: a token over a fresh mock driver.
func startedToken(d *mockDriver) *Token {
	tok, err := Startup(d)
	if err != nil {
		panic(err)
	}
	return tok
}
