// Package backend provides a pluggable native-driver registry.
//
// The backend package lets ndraw route its command and resource
// contract through different native graphics subsystems. Drivers
// register themselves via init() functions and are selected at
// runtime.
//
// # Driver Registration
//
// Import a driver package for its side effect:
//
//	import _ "github.com/ndraw/ndraw/backend/software"
//	import _ "github.com/ndraw/ndraw/backend/gdiplus" // windows only
//
// # Driver Selection
//
// Use Default() to get the best available driver, or Get() to request
// a specific driver by name:
//
//	// Best available (gdiplus on windows, software otherwise)
//	d := backend.Default()
//
//	// Or request a specific driver
//	d := backend.Get(backend.Software)
//
// # Usage
//
// The selected driver is handed to ndraw.Startup, or use the
// backend.Startup shorthand:
//
//	tok, err := backend.Startup()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tok.Shutdown()
//
// # Available Drivers
//
// - "software": pure-Go rasterizer into *image.RGBA (always available)
// - "gdiplus": Windows GDI+ (GOOS=windows)
//
// An X11 driver would plug in the same way by satisfying ndraw.Driver.
package backend
