// Package gpu defines the resource layer the renderer draws through: buffers, textures and
// programs with named attribute and uniform locations. Resources are created once and
// live for the rest of the process.
package gpu

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"
)

// BufferUsage identifies what a buffer is bound as.
type BufferUsage int

const (
	// BufferUsageVertex is a float32 vertex attribute stream.
	BufferUsageVertex BufferUsage = iota

	// BufferUsageIndex is a uint32 triangle index list.
	BufferUsageIndex
)

func (u BufferUsage) String() string {
	switch u {
	case BufferUsageVertex:
		return "vertex"
	case BufferUsageIndex:
		return "index"
	default:
		return "unknown"
	}
}

// TextureKind identifies the texture target.
type TextureKind int

const (
	// Texture2D is a regular 2D texture.
	Texture2D TextureKind = iota

	// TextureCube is a six-face cube map.
	TextureCube
)

// DepthFunc selects the depth comparison used by subsequent draws.
type DepthFunc int

const (
	// DepthLess passes fragments strictly nearer than the stored depth.
	DepthLess DepthFunc = iota

	// DepthLessEqual also passes fragments at exactly the stored depth.
	DepthLessEqual
)

func (f DepthFunc) String() string {
	if f == DepthLessEqual {
		return "LEQUAL"
	}
	return "LESS"
}

// Location is a resolved attribute or uniform slot in a compiled program.
type Location int32

// NoLocation marks a name the program does not use. Setting it is a no-op.
const NoLocation Location = -1

// Buffer is an opaque GPU buffer handle.
type Buffer interface {
	// Usage returns what the buffer was created for.
	Usage() BufferUsage

	// Len returns the number of elements (floats or indices) stored.
	Len() int
}

// Texture is an opaque GPU texture handle. The backing image may still be decoding,
// in which case the handle samples a placeholder.
type Texture interface {
	// Kind returns the texture target.
	Kind() TextureKind

	// Source returns the location the image was requested from.
	Source() string
}

// Program is a compiled and linked shader program with named locations.
type Program interface {
	// Name returns the identifier the program was compiled under.
	Name() string

	// Attribute returns the location of a vertex attribute, or NoLocation.
	Attribute(name string) Location

	// Uniform returns the location of a uniform, or NoLocation.
	Uniform(name string) Location
}

// ProgramSource describes a program to compile.
type ProgramSource struct {
	Name     string
	Vertex   string
	Fragment string
	// Attributes and Uniforms list the names to resolve after linking.
	Attributes []string
	Uniforms   []string
}

// Device is the resource and draw service the renderer talks to. All methods except the
// texture decode work happen on the render thread.
type Device interface {
	// CreateBuffer uploads data to a new buffer. Vertex buffers take []float32 and index
	// buffers take []uint32.
	//
	// Parameters:
	//   - usage: vertex or index
	//   - data: the elements to upload
	//
	// Returns:
	//   - Buffer: the new buffer
	//   - error: error if data does not match usage
	CreateBuffer(usage BufferUsage, data any) (Buffer, error)

	// CreateTexture returns a texture handle immediately and starts decoding the image at
	// location in the background. The handle samples a placeholder until the decode lands.
	//
	// Parameters:
	//   - ctx: context for the background fetch
	//   - location: file path or URL of the image
	//
	// Returns:
	//   - Texture: the texture handle
	//   - error: error if the handle cannot be allocated
	CreateTexture(ctx context.Context, location string) (Texture, error)

	// CreateCubeMap is CreateTexture for the six faces of a cube map in +X, -X, +Y, -Y, +Z, -Z order.
	//
	// Parameters:
	//   - ctx: context for the background fetches
	//   - faces: the six face image locations
	//
	// Returns:
	//   - Texture: the cube map handle
	//   - error: error if the handle cannot be allocated
	CreateCubeMap(ctx context.Context, faces [6]string) (Texture, error)

	// CompileProgram compiles and links a program and resolves its named locations.
	//
	// Parameters:
	//   - src: the program sources and names
	//
	// Returns:
	//   - Program: the linked program
	//   - error: the compile or link log on failure
	CompileProgram(src ProgramSource) (Program, error)

	UseProgram(p Program)
	SetMat4(loc Location, m mgl32.Mat4)
	SetVec3(loc Location, v mgl32.Vec3)
	SetVec3Array(loc Location, v []mgl32.Vec3)
	SetFloat(loc Location, f float32)
	SetInt(loc Location, i int32)

	// BindTexture binds tex to a texture unit. A nil tex unbinds the unit.
	BindTexture(unit int, tex Texture)

	// BindVertexBuffer feeds buf to the attribute at loc with the given component count.
	BindVertexBuffer(loc Location, buf Buffer, components int)

	// DrawIndexed draws count indices from index as triangles.
	DrawIndexed(index Buffer, count int)

	SetDepthFunc(f DepthFunc)

	// BeginFrame uploads finished texture decodes, resets the fixed-function state and
	// clears the color and depth buffers.
	BeginFrame(clear [4]float32)

	Viewport(width, height int)
}
