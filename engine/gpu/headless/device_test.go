package headless

import (
	"context"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileProgramResolvesNames(t *testing.T) {
	d := NewDevice()
	p, err := d.CompileProgram(gpu.ProgramSource{
		Name:       "pbr",
		Attributes: []string{"aPosition", "aNormal"},
		Uniforms:   []string{"uModelMatrix"},
	})
	require.NoError(t, err)

	assert.Equal(t, gpu.Location(0), p.Attribute("aPosition"))
	assert.Equal(t, gpu.Location(2), p.Uniform("uModelMatrix"))
	assert.Equal(t, gpu.NoLocation, p.Uniform("uMissing"))

	d.UseProgram(p)
	d.SetMat4(p.Uniform("uModelMatrix"), mgl32.Ident4())
	calls := d.Uniform("pbr", "uModelMatrix")
	require.Len(t, calls, 1)
	assert.Equal(t, OpSetMat4, calls[0].Op)
}

func TestFailCompile(t *testing.T) {
	d := NewDevice()
	boom := errors.New("0:1: syntax error")
	d.FailCompile("sky", boom)

	_, err := d.CompileProgram(gpu.ProgramSource{Name: "sky"})
	assert.ErrorIs(t, err, boom)

	_, err = d.CompileProgram(gpu.ProgramSource{Name: "sky"})
	assert.NoError(t, err)
}

func TestCreateBufferChecksUsage(t *testing.T) {
	d := NewDevice()
	b, err := d.CreateBuffer(gpu.BufferUsageVertex, []float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())

	_, err = d.CreateBuffer(gpu.BufferUsageIndex, []float32{1})
	assert.Error(t, err)
	_, err = d.CreateBuffer(gpu.BufferUsageVertex, []int{1})
	assert.Error(t, err)

	tex, err := d.CreateTexture(context.Background(), "res/textures/a.png")
	require.NoError(t, err)
	assert.Equal(t, gpu.Texture2D, tex.Kind())

	buffers, textures, programs := d.Counts()
	assert.Equal(t, 1, buffers)
	assert.Equal(t, 1, textures)
	assert.Equal(t, 0, programs)
}
