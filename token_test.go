package ndraw

import (
	"errors"
	"testing"
)

func TestStartupNilDriver(t *testing.T) {
	tok, err := Startup(nil)
	if tok != nil {
		t.Errorf("Startup(nil) token = %v, want nil", tok)
	}
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("Startup(nil) error = %v, want Precondition", err)
	}
}

func TestStartupFailurePropagates(t *testing.T) {
	want := &Error{Kind: NativeStatus, Op: "Startup", Status: 7}
	d := &mockDriver{startErr: want}

	tok, err := Startup(d)
	if tok != nil {
		t.Errorf("Startup() token = %v, want nil", tok)
	}
	if !errors.Is(err, ErrNativeStatus) {
		t.Errorf("Startup() error = %v, want NativeStatus", err)
	}
}

func TestShutdownExactlyOnce(t *testing.T) {
	d := &mockDriver{}
	tok := startedToken(d)

	tok.Shutdown()
	tok.Shutdown()
	tok.Shutdown()

	if d.shutdowns != 1 {
		t.Errorf("driver shutdowns = %d, want 1", d.shutdowns)
	}
}

func TestShutdownNilToken(t *testing.T) {
	var tok *Token
	tok.Shutdown() // must not panic
}

func TestConstructorsOnShutdownToken(t *testing.T) {
	d := &mockDriver{}
	tok := startedToken(d)
	tok.Shutdown()

	if _, err := tok.NewGraphics(nil); !errors.Is(err, ErrPrecondition) {
		t.Errorf("NewGraphics() error = %v, want Precondition", err)
	}
	if _, err := tok.NewPen(Red, 1); !errors.Is(err, ErrPrecondition) {
		t.Errorf("NewPen() error = %v, want Precondition", err)
	}
	if _, err := tok.NewBrush(Red); !errors.Is(err, ErrPrecondition) {
		t.Errorf("NewBrush() error = %v, want Precondition", err)
	}
	if d.graphicsLive+d.pensLive+d.brushesLive != 0 {
		t.Errorf("live resources after failed constructors = %d, want 0",
			d.graphicsLive+d.pensLive+d.brushesLive)
	}
}

func TestConstructorFailureReturnsNoHandle(t *testing.T) {
	d := &mockDriver{
		newGraphicsErr: &Error{Kind: NativeFault, Op: "NewGraphics"},
	}
	tok := startedToken(d)
	defer tok.Shutdown()

	g, err := tok.NewGraphics(nil)
	if g != nil {
		t.Errorf("NewGraphics() handle = %v, want nil", g)
	}
	if !errors.Is(err, ErrNativeFault) {
		t.Errorf("NewGraphics() error = %v, want NativeFault", err)
	}
}

func TestPenWidthZeroIsLegal(t *testing.T) {
	d := &mockDriver{}
	tok := startedToken(d)
	defer tok.Shutdown()

	p, err := tok.NewPen(Black, 0)
	if err != nil {
		t.Fatalf("NewPen(width=0) error = %v", err)
	}
	if p == nil {
		t.Fatal("NewPen(width=0) returned nil handle")
	}
	p.Close()
}

func TestTokenDriver(t *testing.T) {
	d := &mockDriver{}
	tok := startedToken(d)
	defer tok.Shutdown()

	if tok.Driver() != Driver(d) {
		t.Errorf("Driver() = %v, want the startup driver", tok.Driver())
	}
	var nilTok *Token
	if nilTok.Driver() != nil {
		t.Error("nil Token Driver() should be nil")
	}
}

// Round-trip construct/destroy for every resource type must leave no
// native allocation behind.
func TestRoundTripLeavesNoLeak(t *testing.T) {
	d := &mockDriver{}
	tok := startedToken(d)

	g, err := tok.NewGraphics(nil)
	if err != nil {
		t.Fatalf("NewGraphics() error = %v", err)
	}
	p, err := tok.NewPen(Red, 2)
	if err != nil {
		t.Fatalf("NewPen() error = %v", err)
	}
	b, err := tok.NewBrush(Blue)
	if err != nil {
		t.Fatalf("NewBrush() error = %v", err)
	}

	if d.graphicsLive != 1 || d.pensLive != 1 || d.brushesLive != 1 {
		t.Fatalf("live = (%d, %d, %d), want (1, 1, 1)",
			d.graphicsLive, d.pensLive, d.brushesLive)
	}

	if err := g.Close(); err != nil {
		t.Errorf("Graphics.Close() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Pen.Close() error = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Brush.Close() error = %v", err)
	}
	tok.Shutdown()

	if d.graphicsLive != 0 || d.pensLive != 0 || d.brushesLive != 0 {
		t.Errorf("live after close = (%d, %d, %d), want (0, 0, 0)",
			d.graphicsLive, d.pensLive, d.brushesLive)
	}
}

// Close is matched 1:1 with construction: calling it again must not
// release a second time.
func TestDoubleCloseReleasesOnce(t *testing.T) {
	d := &mockDriver{}
	tok := startedToken(d)
	defer tok.Shutdown()

	g, _ := tok.NewGraphics(nil)
	p, _ := tok.NewPen(Red, 1)
	b, _ := tok.NewBrush(Red)

	for i := 0; i < 3; i++ {
		_ = g.Close()
		_ = p.Close()
		_ = b.Close()
	}

	if d.graphicsLive != 0 || d.pensLive != 0 || d.brushesLive != 0 {
		t.Errorf("live after repeated close = (%d, %d, %d), want (0, 0, 0)",
			d.graphicsLive, d.pensLive, d.brushesLive)
	}
}
