package ndraw

// Pen is a stroke style: one opaque native resource created from a
// color and a width. Pens are independent of any Graphics; a live pen
// may be used with any live Graphics. Not safe for concurrent use
// without external synchronization.
type Pen struct {
	res     DriverPen
	lastErr error
}

// Close releases the native pen. It never fails, swallowing any native
// destructor fault, and is safe to call more than once; operations
// using the pen after Close return a Precondition error.
func (p *Pen) Close() error {
	if p == nil || p.res == nil {
		return nil
	}
	p.res.Release()
	p.res = nil
	return nil
}

// LastError returns the fixed-table message of the most recent failure
// involving this pen, or "" when none has been recorded. The record is
// most-recent-wins and is not cleared by later successes.
func (p *Pen) LastError() string {
	if p == nil {
		return ""
	}
	return lastErrorMessage(p.lastErr)
}
