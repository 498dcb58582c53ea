package window

// pointerTracker turns absolute cursor positions into relative movement. The first position
// after a reset only primes the tracker, so locking the cursor never produces a jump.
type pointerTracker struct {
	x, y   float64
	primed bool
}

func (p *pointerTracker) reset() {
	p.primed = false
}

// move records a new absolute position and returns the delta from the previous one.
func (p *pointerTracker) move(x, y float64) (dx, dy float32, ok bool) {
	if !p.primed {
		p.x, p.y, p.primed = x, y, true
		return 0, 0, false
	}
	dx, dy = float32(x-p.x), float32(y-p.y)
	p.x, p.y = x, y
	return dx, dy, true
}
