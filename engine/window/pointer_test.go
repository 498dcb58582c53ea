package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerTracker(t *testing.T) {
	var p pointerTracker

	_, _, ok := p.move(100, 100)
	assert.False(t, ok, "first event only primes")

	dx, dy, ok := p.move(110, 95)
	assert.True(t, ok)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(-5), dy)

	dx, dy, ok = p.move(110, 95)
	assert.True(t, ok)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	p.reset()
	_, _, ok = p.move(500, 500)
	assert.False(t, ok, "reset drops the jump to the new position")
	dx, _, _ = p.move(501, 500)
	assert.Equal(t, float32(1), dx)
}
