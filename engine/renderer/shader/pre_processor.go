// pre_processor.go implements the Oxy GLSL shader pre-processor. It scans shader source
// for @oxy: annotations and replaces them with the registered uniform blocks or with
// #define lines for renderer-supplied constants.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-forward/engine/camera"
	"github.com/Carmen-Shannon/oxy-forward/engine/light"
	"github.com/Carmen-Shannon/oxy-forward/engine/renderer/material"
)

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// blockRegistry maps include arguments to their embedded GLSL source.
	blockRegistry map[AnnotationArg]string

	// constants maps define arguments to the value emitted for them.
	constants map[AnnotationArg]string

	// declarations accumulates the annotations of the last Process call.
	declarations []Annotation
}

// PreProcessor processes raw GLSL shader source containing @oxy: annotations.
type PreProcessor interface {
	// Process replaces every annotation in source. Include annotations become the
	// registered block; define annotations become "#define NAME value".
	//
	// Parameters:
	//   - source: the raw GLSL source
	//
	// Returns:
	//   - string: the processed source
	//   - error: an error if an annotation is malformed or a constant has no value
	Process(source string) (string, error)

	// Declarations returns the annotations found by the most recent Process call, in
	// source order.
	//
	// Returns:
	//   - []Annotation: the annotations
	Declarations() []Annotation

	// SetConstant sets the value emitted for a define annotation.
	//
	// Parameters:
	//   - name: the constant
	//   - value: the GLSL literal
	SetConstant(name AnnotationArg, value string)
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a new PreProcessor with the camera, lights and material blocks
// registered and no constants set.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		blockRegistry: map[AnnotationArg]string{
			AnnotationArgCamera:   camera.GLSLUniforms,
			AnnotationArgLights:   light.GLSLUniforms,
			AnnotationArgMaterial: material.GLSLUniforms,
		},
		constants: make(map[AnnotationArg]string),
	}
}

func (p *preProcessor) SetConstant(name AnnotationArg, value string) {
	p.constants[name] = value
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case AnnotationTypeInclude:
			block, ok := p.blockRegistry[a.Arg]
			if !ok {
				return "", fmt.Errorf("line %d: unknown @oxy:include argument %q", i+1, a.Arg)
			}
			out = append(out, strings.TrimRight(block, "\n"))
		case AnnotationTypeDefine:
			value, ok := p.constants[a.Arg]
			if !ok {
				return "", fmt.Errorf("line %d: no value set for constant %q", i+1, a.Arg)
			}
			out = append(out, fmt.Sprintf("#define %s %s", a.Arg, value))
		default:
			return "", fmt.Errorf("line %d: unknown annotation type %q", i+1, a.Type)
		}
		p.declarations = append(p.declarations, *a)
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}
