package ndraw

// Brush is a fill style: one opaque native resource created from a
// color. Brushes are independent of any Graphics; a live brush may be
// used with any live Graphics. Not safe for concurrent use without
// external synchronization.
type Brush struct {
	res     DriverBrush
	lastErr error
}

// Close releases the native brush. It never fails, swallowing any
// native destructor fault, and is safe to call more than once;
// operations using the brush after Close return a Precondition error.
func (b *Brush) Close() error {
	if b == nil || b.res == nil {
		return nil
	}
	b.res.Release()
	b.res = nil
	return nil
}

// LastError returns the fixed-table message of the most recent failure
// involving this brush, or "" when none has been recorded.
func (b *Brush) LastError() string {
	if b == nil {
		return ""
	}
	return lastErrorMessage(b.lastErr)
}
