// Package ndraw provides a thin, uniform layer over native 2D graphics
// subsystems.
//
// # Overview
//
// ndraw exposes one small command and resource contract (Graphics, Pen
// and Brush handles plus a fixed set of stroke and fill operations)
// and routes it through whatever native drawing API the host platform
// provides. Resource lifetimes and the native error conventions
// (structured exceptions on one platform, status codes on another) are
// reconciled behind a single error model.
//
// # Quick Start
//
//	import (
//		"github.com/ndraw/ndraw"
//		"github.com/ndraw/ndraw/backend"
//		_ "github.com/ndraw/ndraw/backend/software"
//	)
//
//	tok, err := ndraw.Startup(backend.Default())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tok.Shutdown()
//
//	g, _ := tok.NewGraphics(surface)
//	pen, _ := tok.NewPen(ndraw.Red, 2)
//	defer g.Close()
//	defer pen.Close()
//
//	if err := g.DrawLine(pen, 10, 10, 200, 150); err != nil {
//		log.Println(err)
//	}
//
// # Resource Model
//
// Every handle wraps exactly one opaque native resource. Handles are
// created only through the fallible constructors on Token and are
// released with Close, which never fails and is safe to call once per
// handle. A Pen or Brush is independent of any Graphics: any live Pen
// or Brush may be used with any live Graphics, in any construction
// order. Handles are not safe for concurrent use from multiple
// goroutines without external synchronization; the native context
// underneath is typically thread-affine.
//
// # Lifecycle
//
// Startup must complete before any handle is created, and Shutdown must
// run only after every handle created under the token has been closed.
// Shutting down early is a caller error with undefined native behavior;
// this layer documents the precondition rather than policing it.
//
// # Error Model
//
// Operations return an error inline and record it on the handle, where
// LastError reports the most recent failure message. Native failures
// come in two kinds that callers can branch on: NativeFault (the native
// call raised an exception, which usually means a deeper bug) and NativeStatus
// (the native call returned a non-OK status, usually a recoverable
// condition such as invalid geometry). A failed operation never poisons
// the handle it was issued on.
//
// # Angle Convention
//
// Arc and pie operations take start and end angles in degrees. The
// sweep handed to the native layer is end - start, a signed extent:
// pass end > start for a clockwise sweep.
//
// # Drivers
//
// Native subsystems plug in as drivers registered with the backend
// package. The software driver (pure Go, renders into an *image.RGBA)
// is always available; the gdiplus driver binds Windows GDI+ when
// built for windows. An X11 driver would satisfy the same Driver
// contract.
package ndraw
