package backend

import "errors"

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested driver is not
	// available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Driver name constants.
const (
	// Software is the name of the pure-Go reference driver.
	Software = "software"
	// GDIPlus is the name of the Windows GDI+ driver.
	GDIPlus = "gdiplus"
)
