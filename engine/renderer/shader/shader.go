package shader

import (
	"fmt"
	"slices"

	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
)

// ShaderType identifies the pipeline stage a shader is compiled for.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used in pair with a vertex shader.
	ShaderTypeFragment
)

func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderType(%d)", int(t))
	}
}

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	attributes []Variable
	uniforms   []Variable

	declarations []Annotation
}

// Shader is a pre-processed GLSL stage together with the attributes and uniforms it
// declares. The declared names become the named locations of the linked program.
type Shader interface {
	// Key retrieves the unique identifier for this shader.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the pre-processed GLSL source.
	//
	// Returns:
	//   - string: the GLSL source code of the shader
	Source() string

	// ShaderType returns the stage of the shader.
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType

	// Attributes returns the vertex inputs, empty for fragment shaders.
	//
	// Returns:
	//   - []Variable: the inputs in declaration order
	Attributes() []Variable

	// Uniforms returns the top-level uniforms, including those injected by annotations.
	//
	// Returns:
	//   - []Variable: the uniforms in declaration order
	Uniforms() []Variable

	// Declarations returns the annotations that were expanded in the source.
	//
	// Returns:
	//   - []Annotation: the annotations in source order
	Declarations() []Annotation
}

var _ Shader = &shader{}

// NewShader pre-processes source and parses its declarations.
//
// Parameters:
//   - key: a unique identifier for the shader, used in errors and logs
//   - shaderType: the stage
//   - source: the raw GLSL source
//   - pp: the pre-processor; nil uses a fresh one with no constants set
//
// Returns:
//   - Shader: the processed shader
//   - error: error if an annotation cannot be expanded
func NewShader(key string, shaderType ShaderType, source string, pp PreProcessor) (Shader, error) {
	if pp == nil {
		pp = NewPreProcessor()
	}
	processed, err := pp.Process(source)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", key, err)
	}

	s := &shader{
		key:          key,
		source:       processed,
		shaderType:   shaderType,
		uniforms:     parseUniforms(processed),
		declarations: slices.Clone(pp.Declarations()),
	}
	if shaderType == ShaderTypeVertex {
		s.attributes = parseAttributes(processed)
	}
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Attributes() []Variable {
	return s.attributes
}

func (s *shader) Uniforms() []Variable {
	return s.uniforms
}

func (s *shader) Declarations() []Annotation {
	return s.declarations
}

// ProgramSource pairs a vertex and a fragment shader into the source the Device links.
// Uniforms declared by both stages are listed once.
//
// Parameters:
//   - name: the program name
//   - vertex: the vertex stage
//   - fragment: the fragment stage
//
// Returns:
//   - gpu.ProgramSource: the link input
func ProgramSource(name string, vertex, fragment Shader) gpu.ProgramSource {
	src := gpu.ProgramSource{
		Name:     name,
		Vertex:   vertex.Source(),
		Fragment: fragment.Source(),
	}
	for _, a := range vertex.Attributes() {
		src.Attributes = append(src.Attributes, a.Name)
	}
	for _, stage := range []Shader{vertex, fragment} {
		for _, u := range stage.Uniforms() {
			if !slices.Contains(src.Uniforms, u.Name) {
				src.Uniforms = append(src.Uniforms, u.Name)
			}
		}
	}
	return src
}
