// Package gdiplus provides the Windows GDI+ driver for ndraw.
//
// The driver binds the flat GDI+ C API (gdiplus.dll) and maps its two
// failure surfaces onto the ndraw error kinds: a non-Ok GpStatus from
// a flat-API call becomes NativeStatus carrying the status code, and a
// fault crossing the call boundary becomes NativeFault.
//
// The surface handed to Token.NewGraphics is a device context handle
// (HDC), given as a uintptr or windows.HDC. The Graphics built from it
// must not outlive the device context.
//
// The driver is registered on import and only on windows builds:
//
//	import _ "github.com/ndraw/ndraw/backend/gdiplus"
//
// On other platforms the package is empty and registers nothing.
package gdiplus
