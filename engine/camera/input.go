package camera

// InputState accumulates pointer motion and held keys between ticks. It is owned by the
// host, written from window callbacks and read by the controller on the render thread.
type InputState struct {
	dx, dy float32
	held   map[int]bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{held: make(map[int]bool)}
}

// AddPointerDelta accumulates relative pointer motion in pixels.
func (s *InputState) AddPointerDelta(dx, dy float32) {
	s.dx += dx
	s.dy += dy
}

// PointerDelta returns the accumulated motion without resetting it.
func (s *InputState) PointerDelta() (dx, dy float32) {
	return s.dx, s.dy
}

// ConsumePointerDelta returns the accumulated motion and resets it to zero.
//
// Returns:
//   - dx, dy: motion since the last consume, in pixels
func (s *InputState) ConsumePointerDelta() (dx, dy float32) {
	dx, dy = s.dx, s.dy
	s.dx, s.dy = 0, 0
	return dx, dy
}

// Press marks key as held.
func (s *InputState) Press(key int) {
	s.held[key] = true
}

// Release marks key as no longer held.
func (s *InputState) Release(key int) {
	delete(s.held, key)
}

// Held reports whether key is currently held.
func (s *InputState) Held(key int) bool {
	return s.held[key]
}
