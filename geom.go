package ndraw

// Point is an integer point in device units.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle: an origin in device units plus an
// unsigned size. A zero Width or Height is legal and degenerates to a
// line or point.
type Rect struct {
	X, Y          int
	Width, Height uint32
}

// Arc is an elliptical arc described by its bounding rectangle and a
// pair of angles in degrees. The sweep passed to the native layer is
// End - Start.
type Arc struct {
	Bounds     Rect
	Start, End float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rt is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func Rt(x, y int, w, h uint32) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}
