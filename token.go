package ndraw

// Token is the capability value proving the native graphics subsystem
// has been initialized. Every resource handle is created through a
// Token, so a handle cannot exist before startup. The token must
// outlive every handle created under it.
type Token struct {
	driver Driver
	native uintptr
	closed bool
}

// Startup performs the subsystem's one-time native setup through the
// given driver and returns the startup token. A nil driver is a
// checked Precondition error; a native setup failure surfaces as the
// driver reports it.
func Startup(d Driver) (*Token, error) {
	if d == nil {
		return nil, &Error{Kind: Precondition, Op: "Startup"}
	}
	native, err := d.Startup()
	if err != nil {
		return nil, err
	}
	return &Token{driver: d, native: native}, nil
}

// Shutdown surrenders the token and releases all process-wide native
// state. It is safe to call once; further calls are no-ops. Calling
// Shutdown while handles created under this token are still live is a
// caller error with undefined native behavior; this layer does not
// detect it.
func (t *Token) Shutdown() {
	if t == nil || t.closed {
		return
	}
	t.closed = true
	t.driver.Shutdown(t.native)
}

// Driver returns the driver this token was started with.
func (t *Token) Driver() Driver {
	if t == nil {
		return nil
	}
	return t.driver
}

// live returns a Precondition error when the token is nil or already
// shut down.
func (t *Token) live(op string) *Error {
	if t == nil || t.closed {
		return &Error{Kind: Precondition, Op: op}
	}
	return nil
}

// NewGraphics wraps a native drawing surface supplied by the windowing
// layer into a Graphics handle. On failure no handle is returned and
// the error carries the native failure kind. The Graphics must not
// outlive the surface it was built from.
func (t *Token) NewGraphics(surface Surface) (*Graphics, error) {
	if err := t.live("NewGraphics"); err != nil {
		return nil, err
	}
	res, err := t.driver.NewGraphics(surface)
	if err != nil {
		return nil, err
	}
	return &Graphics{res: res}, nil
}

// NewPen creates a stroke style from a color and a width in device
// units. width == 0 is legal and means hairline; it never fails for
// that reason. The pen is independent of any Graphics and reusable
// across draw calls.
func (t *Token) NewPen(c Color, width uint32) (*Pen, error) {
	if err := t.live("NewPen"); err != nil {
		return nil, err
	}
	res, err := t.driver.NewPen(c, width)
	if err != nil {
		return nil, err
	}
	return &Pen{res: res}, nil
}

// NewBrush creates a fill style from a color. The brush is independent
// of any Graphics and reusable across draw calls.
func (t *Token) NewBrush(c Color) (*Brush, error) {
	if err := t.live("NewBrush"); err != nil {
		return nil, err
	}
	res, err := t.driver.NewBrush(c)
	if err != nil {
		return nil, err
	}
	return &Brush{res: res}, nil
}
