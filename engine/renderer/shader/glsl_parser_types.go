package shader

// Variable is an attribute or uniform declared at the top level of a GLSL stage.
type Variable struct {
	// Name is the identifier, without any array suffix.
	Name string

	// Type is the GLSL type name, e.g. "vec3" or "sampler2D".
	Type string

	// ArraySize is the array length expression, empty for non-arrays. It may name a
	// #define constant.
	ArraySize string
}
