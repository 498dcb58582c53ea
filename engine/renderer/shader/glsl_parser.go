package shader

import (
	"regexp"
	"strings"
)

var (
	// attributeRegex matches vertex inputs: "in vec3 aPosition;" with an optional layout
	// qualifier, or the older "attribute" keyword.
	attributeRegex = regexp.MustCompile(`^(?:layout\s*\([^)]*\)\s*)?(?:in|attribute)\s+(?:(?:highp|mediump|lowp)\s+)?(\w+)\s+(\w+)\s*;`)

	// uniformRegex matches "uniform <type> <name>[<size>];" with the array suffix optional.
	uniformRegex = regexp.MustCompile(`^uniform\s+(?:(?:highp|mediump|lowp)\s+)?(\w+)\s+(\w+)\s*(?:\[\s*(\w+)\s*\])?\s*;`)

	blockCommentRegex = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// parseAttributes extracts the vertex inputs of a vertex stage in declaration order.
//
// Parameters:
//   - source: pre-processed GLSL source
//
// Returns:
//   - []Variable: the inputs
func parseAttributes(source string) []Variable {
	return parseVariables(source, attributeRegex)
}

// parseUniforms extracts the top-level uniforms of a stage in declaration order.
//
// Parameters:
//   - source: pre-processed GLSL source
//
// Returns:
//   - []Variable: the uniforms
func parseUniforms(source string) []Variable {
	return parseVariables(source, uniformRegex)
}

func parseVariables(source string, re *regexp.Regexp) []Variable {
	source = blockCommentRegex.ReplaceAllString(source, "")

	var vars []Variable
	for line := range strings.SplitSeq(source, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		m := re.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		v := Variable{Type: m[1], Name: m[2]}
		if len(m) > 3 {
			v.ArraySize = m[3]
		}
		vars = append(vars, v)
	}
	return vars
}
