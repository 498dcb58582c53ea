package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-forward/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestResolveMaterial(t *testing.T) {
	red := material.NewMaterial(material.WithName("red"), material.WithAlbedo(mgl32.Vec3{1, 0, 0}))
	s := NewScene(WithMaterials(red))

	name := "red"
	assert.Same(t, red, s.ResolveMaterial(&name))

	missing := "nope"
	assert.Same(t, s.DefaultMaterial(), s.ResolveMaterial(&missing))
	assert.Same(t, s.DefaultMaterial(), s.ResolveMaterial(nil))
	assert.Equal(t, RootName, s.Root().Name)
}

func TestAddMaterialReplaces(t *testing.T) {
	s := NewScene()
	s.AddMaterial(material.NewMaterial(material.WithName("m"), material.WithRoughness(0.1)))
	later := material.NewMaterial(material.WithName("m"), material.WithRoughness(0.9))
	s.AddMaterial(later)

	assert.Len(t, s.Materials(), 1)
	name := "m"
	assert.Same(t, later, s.ResolveMaterial(&name))
}
