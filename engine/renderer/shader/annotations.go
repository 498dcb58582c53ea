// annotations.go defines the annotation types, argument constants, and parser for the
// Oxy GLSL shader pre-processor. Annotations are single-line GLSL comments prefixed
// with @oxy: that inject shared uniform declarations and compile-time constants, so the
// PBR and sky programs declare camera, light and material uniforms exactly the way the
// Go side binds them.
package shader

import (
	"fmt"
	"slices"
	"strings"
)

// annotationPrefix is the marker that identifies an Oxy annotation within a GLSL comment line.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a GLSL comment line.
type AnnotationType string

const (
	// AnnotationTypeInclude injects the GLSL uniform block registered for its argument.
	//
	// Syntax: //@oxy:include <block>
	//
	// Example: //@oxy:include lights
	AnnotationTypeInclude AnnotationType = "include"

	// AnnotationTypeDefine emits a #define for a constant supplied by the renderer.
	//
	// Syntax: //@oxy:define <constant>
	//
	// Example: //@oxy:define MAX_LIGHTS
	AnnotationTypeDefine AnnotationType = "define"
)

// Annotation represents a single parsed @oxy: annotation from a GLSL source line.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Arg is the block key for include annotations or the constant name for define annotations.
	Arg AnnotationArg

	// Line is the 1-based line number in the original source. Used for error reporting.
	Line int
}

// AnnotationArg is a typed string constant used as an argument in annotations.
type AnnotationArg string

// ── Block arguments ───────────────────────────────────────────────────────────

const (
	// AnnotationArgCamera identifies the view, projection and camera position uniforms.
	// Source: engine/camera/assets/camera.glsl
	AnnotationArgCamera AnnotationArg = "camera"

	// AnnotationArgLights identifies the light slot arrays. Requires MAX_LIGHTS.
	// Source: engine/light/assets/lights.glsl
	AnnotationArgLights AnnotationArg = "lights"

	// AnnotationArgMaterial identifies the PBR material factors, maps and flags.
	// Source: engine/renderer/material/assets/material.glsl
	AnnotationArgMaterial AnnotationArg = "material"
)

// ── Constant arguments ────────────────────────────────────────────────────────

const (
	// AnnotationArgMaxLights is the number of light slots in the lights block.
	AnnotationArgMaxLights AnnotationArg = "MAX_LIGHTS"
)

var validBlocks = []AnnotationArg{
	AnnotationArgCamera,
	AnnotationArgLights,
	AnnotationArgMaterial,
}

var validConstants = []AnnotationArg{
	AnnotationArgMaxLights,
}

// parseAnnotation attempts to parse a single line of GLSL source as an @oxy: annotation.
// Returns nil with no error for lines that do not contain the annotation prefix. Returns
// a populated Annotation for valid annotations, or an error describing the problem for
// malformed annotations with correct prefix but invalid syntax or unknown arguments.
//
// Parameters:
//   - line: the raw GLSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	after, ok := strings.CutPrefix(trimmed, "//")
	if !ok {
		return nil, nil
	}
	after, ok = strings.CutPrefix(strings.TrimSpace(after), annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch args[0] {
	case string(AnnotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validBlocks, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown block %q in @oxy include annotation", lineNum, args[1])
		}
		return &Annotation{Type: AnnotationTypeInclude, Arg: AnnotationArg(args[1]), Line: lineNum}, nil
	case string(AnnotationTypeDefine):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy define annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validConstants, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown constant %q in @oxy define annotation", lineNum, args[1])
		}
		return &Annotation{Type: AnnotationTypeDefine, Arg: AnnotationArg(args[1]), Line: lineNum}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
}
