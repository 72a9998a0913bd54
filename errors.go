package ndraw

import "strconv"

// ErrorKind classifies a failure reported by this layer. The two
// native kinds are deliberately distinct: a fault suggests a deeper
// bug in the native subsystem or its inputs, while a status suggests
// a recoverable condition such as invalid geometry.
type ErrorKind int

const (
	// NativeFault reports that the underlying native call raised a
	// structured exception or fault during execution.
	NativeFault ErrorKind = iota

	// NativeStatus reports that the underlying native call returned an
	// explicit non-success status code without faulting.
	NativeStatus

	// Precondition reports that the caller passed a nil or released
	// handle where a live one was required.
	Precondition
)

// kindMessages is the fixed message table. The strings are stable:
// callers and tests may match on them.
var kindMessages = [...]string{
	NativeFault:  "ndraw: native call raised an exception",
	NativeStatus: "ndraw: native call returned non-OK status",
	Precondition: "ndraw: nil or released handle",
}

// Message returns the fixed human-readable message for the kind.
func (k ErrorKind) Message() string {
	if k < 0 || int(k) >= len(kindMessages) {
		return "ndraw: unknown error"
	}
	return kindMessages[k]
}

// Error is the failure type returned by every fallible operation in
// this package. Callers branch on Kind, or use errors.Is against the
// exported kind sentinels.
type Error struct {
	// Kind is the failure class.
	Kind ErrorKind

	// Op names the operation that failed, e.g. "DrawLine".
	Op string

	// Status carries the native status code for NativeStatus errors,
	// zero otherwise.
	Status int32
}

// Error implements the error interface. The message always begins with
// the fixed table entry for the kind.
func (e *Error) Error() string {
	s := e.Kind.Message()
	if e.Op != "" {
		s += ": " + e.Op
	}
	if e.Kind == NativeStatus && e.Status != 0 {
		s += " (status " + strconv.Itoa(int(e.Status)) + ")"
	}
	return s
}

// Is reports whether target is a kind sentinel matching this error,
// so errors.Is(err, ndraw.ErrNativeStatus) works regardless of Op or
// Status detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Status == 0 && t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	// ErrNativeFault matches any NativeFault error.
	ErrNativeFault = &Error{Kind: NativeFault}

	// ErrNativeStatus matches any NativeStatus error.
	ErrNativeStatus = &Error{Kind: NativeStatus}

	// ErrPrecondition matches any Precondition error.
	ErrPrecondition = &Error{Kind: Precondition}
)
