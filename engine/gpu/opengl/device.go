// Package opengl implements gpu.Device on an OpenGL 4.1 core context. Every method must be
// called on the thread that owns the context; only image decoding runs elsewhere.
package opengl

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type device struct {
	logger        log.Logger
	decodeWorkers int
	mipmaps       bool

	decoder *decoder

	vao     uint32
	current *program
}

var _ gpu.Device = &device{}

// NewDevice loads the GL function pointers for the current context and prepares the shared
// vertex array and decode pool. The context must already be current on the calling thread.
//
// Parameters:
//   - options: variadic list of DeviceBuilderOption
//
// Returns:
//   - gpu.Device: the OpenGL device
//   - error: error if the GL functions cannot be loaded
func NewDevice(options ...DeviceBuilderOption) (gpu.Device, error) {
	d := &device{
		logger:        log.For(log.Device),
		decodeWorkers: runtime.NumCPU(),
		mipmaps:       true,
	}
	for _, option := range options {
		option(d)
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: init failed: %w", err)
	}
	d.logger.Infof("OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	d.decoder = newDecoder(d.decodeWorkers)

	// Core profile refuses attribute pointers without a bound VAO.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	return d, nil
}

func (d *device) CreateBuffer(usage gpu.BufferUsage, data any) (gpu.Buffer, error) {
	b := &buffer{usage: usage}
	gl.GenBuffers(1, &b.id)
	switch v := data.(type) {
	case []float32:
		if usage != gpu.BufferUsageVertex {
			return nil, fmt.Errorf("opengl: %s buffer cannot hold []float32", usage)
		}
		b.n = len(v)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
		if len(v) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(v)*4, gl.Ptr(v), gl.STATIC_DRAW)
		}
	case []uint32:
		if usage != gpu.BufferUsageIndex {
			return nil, fmt.Errorf("opengl: %s buffer cannot hold []uint32", usage)
		}
		b.n = len(v)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
		if len(v) > 0 {
			gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(v)*4, gl.Ptr(v), gl.STATIC_DRAW)
		}
	default:
		gl.DeleteBuffers(1, &b.id)
		return nil, fmt.Errorf("opengl: unsupported buffer data %T", data)
	}
	return b, nil
}

func (d *device) CreateTexture(ctx context.Context, location string) (gpu.Texture, error) {
	t := &texture{kind: gpu.Texture2D, source: location}
	gl.GenTextures(1, &t.id)
	if t.id == 0 {
		return nil, fmt.Errorf("opengl: could not allocate texture for '%s'", location)
	}
	d.upload2D(t, common.PlaceholderTexture(), false)

	d.decoder.submit(ctx, t, func(ctx context.Context) ([]common.TextureStagingData, error) {
		img, err := decodeImage(ctx, location)
		if err != nil {
			return nil, err
		}
		return []common.TextureStagingData{img}, nil
	})
	return t, nil
}

func (d *device) CreateCubeMap(ctx context.Context, faces [6]string) (gpu.Texture, error) {
	t := &texture{kind: gpu.TextureCube, source: faces[0]}
	gl.GenTextures(1, &t.id)
	if t.id == 0 {
		return nil, fmt.Errorf("opengl: could not allocate cube map for '%s'", faces[0])
	}
	placeholder := common.PlaceholderTexture()
	d.uploadCube(t, []common.TextureStagingData{placeholder, placeholder, placeholder, placeholder, placeholder, placeholder})

	d.decoder.submit(ctx, t, func(ctx context.Context) ([]common.TextureStagingData, error) {
		return decodeFaces(ctx, faces)
	})
	return t, nil
}

func (d *device) CompileProgram(src gpu.ProgramSource) (gpu.Program, error) {
	vert, err := compileShader(src.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s vertex shader: %w", src.Name, err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(src.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s fragment shader: %w", src.Name, err)
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(msg))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%s link failed: %s", src.Name, strings.TrimRight(msg, "\x00"))
	}

	p := &program{
		id:         id,
		name:       src.Name,
		attributes: make(map[string]gpu.Location, len(src.Attributes)),
		uniforms:   make(map[string]gpu.Location, len(src.Uniforms)),
	}
	for _, name := range src.Attributes {
		p.attributes[name] = gpu.Location(gl.GetAttribLocation(id, gl.Str(name+"\x00")))
	}
	for _, name := range src.Uniforms {
		p.uniforms[name] = gpu.Location(gl.GetUniformLocation(id, gl.Str(name+"\x00")))
	}
	return p, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	id := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(msg))
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile failed: %s", strings.TrimRight(msg, "\x00"))
	}
	return id, nil
}

func (d *device) UseProgram(p gpu.Program) {
	prog, ok := p.(*program)
	if !ok || prog == nil {
		d.current = nil
		gl.UseProgram(0)
		return
	}
	d.current = prog
	gl.UseProgram(prog.id)
}

func (d *device) SetMat4(loc gpu.Location, m mgl32.Mat4) {
	if loc == gpu.NoLocation {
		return
	}
	gl.UniformMatrix4fv(int32(loc), 1, false, &m[0])
}

func (d *device) SetVec3(loc gpu.Location, v mgl32.Vec3) {
	if loc == gpu.NoLocation {
		return
	}
	gl.Uniform3f(int32(loc), v[0], v[1], v[2])
}

func (d *device) SetVec3Array(loc gpu.Location, v []mgl32.Vec3) {
	if loc == gpu.NoLocation || len(v) == 0 {
		return
	}
	gl.Uniform3fv(int32(loc), int32(len(v)), &v[0][0])
}

func (d *device) SetFloat(loc gpu.Location, f float32) {
	if loc == gpu.NoLocation {
		return
	}
	gl.Uniform1f(int32(loc), f)
}

func (d *device) SetInt(loc gpu.Location, i int32) {
	if loc == gpu.NoLocation {
		return
	}
	gl.Uniform1i(int32(loc), i)
}

func (d *device) BindTexture(unit int, tex gpu.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	t, ok := tex.(*texture)
	if !ok || t == nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
		return
	}
	gl.BindTexture(target(t.kind), t.id)
}

func (d *device) BindVertexBuffer(loc gpu.Location, buf gpu.Buffer, components int) {
	b, ok := buf.(*buffer)
	if loc == gpu.NoLocation || !ok || b == nil {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointerWithOffset(uint32(loc), int32(components), gl.FLOAT, false, 0, 0)
}

func (d *device) DrawIndexed(index gpu.Buffer, count int) {
	b, ok := index.(*buffer)
	if !ok || b == nil || count <= 0 {
		return
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, 0)
}

func (d *device) SetDepthFunc(f gpu.DepthFunc) {
	if f == gpu.DepthLessEqual {
		gl.DepthFunc(gl.LEQUAL)
		return
	}
	gl.DepthFunc(gl.LESS)
}

// BeginFrame drains every finished decode without blocking, then clears the frame.
func (d *device) BeginFrame(clear [4]float32) {
	for _, res := range d.decoder.drain() {
		d.land(res)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// land uploads a finished decode. Failed decodes keep the placeholder.
func (d *device) land(res decoded) {
	if res.err != nil {
		d.logger.Warningf("texture '%s' failed to load, keeping placeholder: %v", res.tex.source, res.err)
		return
	}
	switch res.tex.kind {
	case gpu.TextureCube:
		d.uploadCube(res.tex, res.faces)
	default:
		d.upload2D(res.tex, res.faces[0], d.mipmaps)
	}
	res.tex.ready = true
	d.logger.Debugf("texture '%s' uploaded", res.tex.source)
}

func (d *device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *device) upload2D(t *texture, img common.TextureStagingData, mipmaps bool) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if mipmaps {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
	if mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (d *device) uploadCube(t *texture, faces []common.TextureStagingData) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.id)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i, img := range faces {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
	}
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
}

func target(kind gpu.TextureKind) uint32 {
	if kind == gpu.TextureCube {
		return gl.TEXTURE_CUBE_MAP
	}
	return gl.TEXTURE_2D
}
