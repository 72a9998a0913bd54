package ndraw

import (
	"errors"
	"fmt"
	"testing"
)

// The fixed-table messages are part of the contract; changing one is a
// breaking change.
func TestKindMessagesStable(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{kind: NativeFault, want: "ndraw: native call raised an exception"},
		{kind: NativeStatus, want: "ndraw: native call returned non-OK status"},
		{kind: Precondition, want: "ndraw: nil or released handle"},
	}

	for _, tt := range tests {
		if got := tt.kind.Message(); got != tt.want {
			t.Errorf("Message(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
	if got := ErrorKind(99).Message(); got != "ndraw: unknown error" {
		t.Errorf("Message(99) = %q", got)
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: NativeFault},
			want: "ndraw: native call raised an exception",
		},
		{
			name: "with op",
			err:  &Error{Kind: NativeFault, Op: "DrawLine"},
			want: "ndraw: native call raised an exception: DrawLine",
		},
		{
			name: "status with code",
			err:  &Error{Kind: NativeStatus, Op: "FillPie", Status: 2},
			want: "ndraw: native call returned non-OK status: FillPie (status 2)",
		},
		{
			name: "precondition",
			err:  &Error{Kind: Precondition, Op: "NewPen"},
			want: "ndraw: nil or released handle: NewPen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIsSentinels(t *testing.T) {
	err := fmt.Errorf("wrapped: %w",
		&Error{Kind: NativeStatus, Op: "DrawArc", Status: 7})

	if !errors.Is(err, ErrNativeStatus) {
		t.Error("errors.Is(err, ErrNativeStatus) = false, want true")
	}
	if errors.Is(err, ErrNativeFault) {
		t.Error("errors.Is(err, ErrNativeFault) = true, want false")
	}
	if errors.Is(err, ErrPrecondition) {
		t.Error("errors.Is(err, ErrPrecondition) = true, want false")
	}

	var e *Error
	if !errors.As(err, &e) || e.Status != 7 {
		t.Errorf("errors.As status = %v, want 7", e)
	}
}
