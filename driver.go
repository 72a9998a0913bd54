package ndraw

// Surface is an opaque native drawing surface supplied by the
// windowing layer: an HDC on Windows, an *image.RGBA for the software
// driver. A Graphics handle must not outlive the surface it was built
// from.
type Surface any

// Driver is the contract a native graphics subsystem implements.
// Drivers live in subpackages of backend and register themselves with
// the backend registry; application code normally reaches them through
// backend.Default rather than constructing one directly.
//
// Drivers report failures as *Error with the kind matching the native
// convention: NativeFault for exception-class failures, NativeStatus
// for status-code failures.
type Driver interface {
	// Name returns the driver identifier (e.g., "software", "gdiplus").
	Name() string

	// Startup performs the subsystem's one-time native setup and
	// returns its opaque startup token.
	Startup() (uintptr, error)

	// Shutdown releases all process-wide native state, consuming the
	// token returned by Startup. It must run exactly once, after every
	// resource created under the token has been released.
	Shutdown(token uintptr)

	// NewGraphics wraps a native drawing surface. It returns a fully
	// formed resource or an error; half-initialized resources must
	// never escape.
	NewGraphics(surface Surface) (DriverGraphics, error)

	// NewPen allocates a native stroke style. width is a thickness in
	// device units; zero is legal and means hairline.
	NewPen(c Color, width uint32) (DriverPen, error)

	// NewBrush allocates a native fill style.
	NewBrush(c Color) (DriverBrush, error)
}

// DriverGraphics is a live native drawing surface. Angles are degrees
// and sweep is the signed extent already computed as end minus start;
// drivers pass it through to the native layer unchanged.
type DriverGraphics interface {
	DrawLine(p DriverPen, x1, y1, x2, y2 int) error
	DrawRect(p DriverPen, x, y int, w, h uint32) error
	DrawEllipse(p DriverPen, x, y int, w, h uint32) error
	DrawArc(p DriverPen, x, y int, w, h uint32, start, sweep float32) error

	FillRect(b DriverBrush, x, y int, w, h uint32) error
	FillEllipse(b DriverBrush, x, y int, w, h uint32) error
	FillPie(b DriverBrush, x, y int, w, h uint32, start, sweep float32) error

	// Release frees the native resource. Native destructor faults are
	// swallowed here; Release must be unconditionally safe to call
	// once.
	Release()
}

// DriverPen is a live native stroke style.
type DriverPen interface {
	Release()
}

// DriverBrush is a live native fill style.
type DriverBrush interface {
	Release()
}
