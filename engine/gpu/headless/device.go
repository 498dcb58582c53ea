// Package headless implements gpu.Device without a GPU. Every call is recorded so tests
// and tooling can inspect exactly what a frame would have issued.
package headless

import (
	"context"
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Op names a recorded device call.
type Op string

const (
	OpCreateBuffer     Op = "CreateBuffer"
	OpCreateTexture    Op = "CreateTexture"
	OpCreateCubeMap    Op = "CreateCubeMap"
	OpCompileProgram   Op = "CompileProgram"
	OpUseProgram       Op = "UseProgram"
	OpSetMat4          Op = "SetMat4"
	OpSetVec3          Op = "SetVec3"
	OpSetVec3Array     Op = "SetVec3Array"
	OpSetFloat         Op = "SetFloat"
	OpSetInt           Op = "SetInt"
	OpBindTexture      Op = "BindTexture"
	OpBindVertexBuffer Op = "BindVertexBuffer"
	OpDrawIndexed      Op = "DrawIndexed"
	OpSetDepthFunc     Op = "SetDepthFunc"
	OpBeginFrame       Op = "BeginFrame"
	OpViewport         Op = "Viewport"
)

// Call is one recorded device call. Only the fields relevant to Op are set.
type Call struct {
	Op Op
	// Program is the program current when the call was made.
	Program string
	// Name is the attribute or uniform name the location resolved to.
	Name     string
	Location gpu.Location
	Unit     int
	Texture  gpu.Texture
	Buffer   gpu.Buffer
	Count    int
	Mat4     mgl32.Mat4
	Vec3     []mgl32.Vec3
	Float    float32
	Int      int32
	Depth    gpu.DepthFunc
}

type buffer struct {
	usage gpu.BufferUsage
	n     int
}

func (b *buffer) Usage() gpu.BufferUsage { return b.usage }
func (b *buffer) Len() int               { return b.n }

type texture struct {
	kind   gpu.TextureKind
	source string
}

func (t *texture) Kind() gpu.TextureKind { return t.kind }
func (t *texture) Source() string        { return t.source }

type program struct {
	name       string
	attributes map[string]gpu.Location
	uniforms   map[string]gpu.Location
	names      map[gpu.Location]string
}

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

// Device records calls instead of executing them.
type Device struct {
	calls       []Call
	current     *program
	compileErrs map[string]error
	buffers     int
	textures    int
	programs    int
}

var _ gpu.Device = &Device{}

// NewDevice creates an empty recording device.
func NewDevice() *Device {
	return &Device{compileErrs: map[string]error{}}
}

// FailCompile makes the next CompileProgram for name return err.
func (d *Device) FailCompile(name string, err error) {
	d.compileErrs[name] = err
}

// Calls returns every recorded call in order.
func (d *Device) Calls() []Call {
	return d.calls
}

// CallsOf returns the recorded calls with the given op.
func (d *Device) CallsOf(op Op) []Call {
	var out []Call
	for _, c := range d.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Uniform returns the calls that set the named uniform on the named program.
func (d *Device) Uniform(programName, uniform string) []Call {
	var out []Call
	for _, c := range d.calls {
		if c.Program == programName && c.Name == uniform && c.Op != OpBindVertexBuffer {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops the recorded calls but keeps created resources.
func (d *Device) Reset() {
	d.calls = d.calls[:0]
}

// Counts returns how many buffers, textures and programs were created.
func (d *Device) Counts() (buffers, textures, programs int) {
	return d.buffers, d.textures, d.programs
}

func (d *Device) record(c Call) {
	if d.current != nil {
		c.Program = d.current.name
		if c.Location != gpu.NoLocation {
			c.Name = d.current.names[c.Location]
		}
	}
	d.calls = append(d.calls, c)
}

func (d *Device) CreateBuffer(usage gpu.BufferUsage, data any) (gpu.Buffer, error) {
	var n int
	switch v := data.(type) {
	case []float32:
		if usage != gpu.BufferUsageVertex {
			return nil, fmt.Errorf("%s buffer cannot hold []float32", usage)
		}
		n = len(v)
	case []uint32:
		if usage != gpu.BufferUsageIndex {
			return nil, fmt.Errorf("%s buffer cannot hold []uint32", usage)
		}
		n = len(v)
	default:
		return nil, fmt.Errorf("unsupported buffer data %T", data)
	}
	b := &buffer{usage: usage, n: n}
	d.buffers++
	d.calls = append(d.calls, Call{Op: OpCreateBuffer, Buffer: b, Count: n, Location: gpu.NoLocation})
	return b, nil
}

func (d *Device) CreateTexture(_ context.Context, location string) (gpu.Texture, error) {
	t := &texture{kind: gpu.Texture2D, source: location}
	d.textures++
	d.calls = append(d.calls, Call{Op: OpCreateTexture, Texture: t, Location: gpu.NoLocation})
	return t, nil
}

func (d *Device) CreateCubeMap(_ context.Context, faces [6]string) (gpu.Texture, error) {
	t := &texture{kind: gpu.TextureCube, source: faces[0]}
	d.textures++
	d.calls = append(d.calls, Call{Op: OpCreateCubeMap, Texture: t, Location: gpu.NoLocation})
	return t, nil
}

// CompileProgram assigns attribute locations from 0 and uniform locations after them,
// in the order the names are listed.
func (d *Device) CompileProgram(src gpu.ProgramSource) (gpu.Program, error) {
	if err, ok := d.compileErrs[src.Name]; ok {
		delete(d.compileErrs, src.Name)
		return nil, err
	}
	p := &program{
		name:       src.Name,
		attributes: make(map[string]gpu.Location, len(src.Attributes)),
		uniforms:   make(map[string]gpu.Location, len(src.Uniforms)),
		names:      make(map[gpu.Location]string),
	}
	var next gpu.Location
	for _, name := range src.Attributes {
		p.attributes[name] = next
		p.names[next] = name
		next++
	}
	for _, name := range src.Uniforms {
		p.uniforms[name] = next
		p.names[next] = name
		next++
	}
	d.programs++
	d.calls = append(d.calls, Call{Op: OpCompileProgram, Program: src.Name, Location: gpu.NoLocation})
	return p, nil
}

func (d *Device) UseProgram(p gpu.Program) {
	d.current, _ = p.(*program)
	d.record(Call{Op: OpUseProgram, Location: gpu.NoLocation})
}

func (d *Device) SetMat4(loc gpu.Location, m mgl32.Mat4) {
	d.record(Call{Op: OpSetMat4, Location: loc, Mat4: m})
}

func (d *Device) SetVec3(loc gpu.Location, v mgl32.Vec3) {
	d.record(Call{Op: OpSetVec3, Location: loc, Vec3: []mgl32.Vec3{v}})
}

func (d *Device) SetVec3Array(loc gpu.Location, v []mgl32.Vec3) {
	d.record(Call{Op: OpSetVec3Array, Location: loc, Vec3: slices.Clone(v), Count: len(v)})
}

func (d *Device) SetFloat(loc gpu.Location, f float32) {
	d.record(Call{Op: OpSetFloat, Location: loc, Float: f})
}

func (d *Device) SetInt(loc gpu.Location, i int32) {
	d.record(Call{Op: OpSetInt, Location: loc, Int: i})
}

func (d *Device) BindTexture(unit int, tex gpu.Texture) {
	d.record(Call{Op: OpBindTexture, Unit: unit, Texture: tex, Location: gpu.NoLocation})
}

func (d *Device) BindVertexBuffer(loc gpu.Location, buf gpu.Buffer, components int) {
	d.record(Call{Op: OpBindVertexBuffer, Location: loc, Buffer: buf, Count: components})
}

func (d *Device) DrawIndexed(index gpu.Buffer, count int) {
	d.record(Call{Op: OpDrawIndexed, Buffer: index, Count: count, Location: gpu.NoLocation})
}

func (d *Device) SetDepthFunc(f gpu.DepthFunc) {
	d.record(Call{Op: OpSetDepthFunc, Depth: f, Location: gpu.NoLocation})
}

func (d *Device) BeginFrame(clear [4]float32) {
	d.record(Call{Op: OpBeginFrame, Vec3: []mgl32.Vec3{{clear[0], clear[1], clear[2]}}, Float: clear[3], Location: gpu.NoLocation})
}

func (d *Device) Viewport(width, height int) {
	d.record(Call{Op: OpViewport, Int: int32(width), Count: height, Location: gpu.NoLocation})
}
