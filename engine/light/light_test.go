package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	assert.True(t, l.Enabled())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Radiance())

	l = NewLight(WithColor(0.8, 0.5, 0.5), WithIntensity(2))
	assert.True(t, l.Radiance().ApproxEqual(mgl32.Vec3{1.6, 1, 1}))
}

func TestCopyIsIndependent(t *testing.T) {
	l := NewLight(WithColor(1, 0, 0))
	c := l.Copy()
	c.SetColor(mgl32.Vec3{0, 1, 0})

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, l.Color())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Color())
}

func TestPackPadsWithZeros(t *testing.T) {
	sources := []Source{
		{Position: mgl32.Vec3{1, 2, 3}, Color: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{4, 5, 6}, Color: mgl32.Vec3{0, 1, 0}},
	}

	s := Pack(sources, 5)
	assert.Len(t, s.Positions, 5)
	assert.Len(t, s.Colors, 5)
	assert.Equal(t, 2, s.Bound)
	assert.Zero(t, s.Dropped)
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, s.Positions[1])
	for i := 2; i < 5; i++ {
		assert.Equal(t, mgl32.Vec3{}, s.Positions[i])
		assert.Equal(t, mgl32.Vec3{}, s.Colors[i])
	}
}

func TestPackDropsExtra(t *testing.T) {
	sources := make([]Source, 7)
	for i := range sources {
		sources[i].Color = mgl32.Vec3{float32(i), 0, 0}
	}

	s := Pack(sources, 4)
	assert.Equal(t, 4, s.Bound)
	assert.Equal(t, 3, s.Dropped)
	assert.Equal(t, float32(3), s.Colors[3][0])

	empty := Pack(nil, 3)
	assert.Zero(t, empty.Bound)
	assert.Len(t, empty.Positions, 3)
}
