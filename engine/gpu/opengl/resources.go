package opengl

import (
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
)

type buffer struct {
	id    uint32
	usage gpu.BufferUsage
	n     int
}

var _ gpu.Buffer = &buffer{}

func (b *buffer) Usage() gpu.BufferUsage { return b.usage }
func (b *buffer) Len() int               { return b.n }

type texture struct {
	id     uint32
	kind   gpu.TextureKind
	source string
	// ready is set once the decoded image replaced the placeholder.
	ready bool
}

var _ gpu.Texture = &texture{}

func (t *texture) Kind() gpu.TextureKind { return t.kind }
func (t *texture) Source() string        { return t.source }

type program struct {
	id         uint32
	name       string
	attributes map[string]gpu.Location
	uniforms   map[string]gpu.Location
}

var _ gpu.Program = &program{}

func (p *program) Name() string { return p.name }

func (p *program) Attribute(name string) gpu.Location {
	if loc, ok := p.attributes[name]; ok {
		return loc
	}
	return gpu.NoLocation
}

func (p *program) Uniform(name string) gpu.Location {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return gpu.NoLocation
}
