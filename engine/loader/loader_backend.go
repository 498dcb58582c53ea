package loader

import (
	"io"
)

// loaderBackend defines the format-specific half of loading: turning scene and material
// library streams into parsed records. The loader turns those records into a scene.
type loaderBackend interface {
	// ParseScene parses a scene stream.
	//
	// Parameters:
	//   - r: the scene source
	//   - name: the name used in errors
	//
	// Returns:
	//   - *ParsedScene: the objects and referenced material libraries
	//   - error: a *ParseError if the stream is malformed
	ParseScene(r io.Reader, name string) (*ParsedScene, error)

	// ParseMaterials parses a material library stream.
	//
	// Parameters:
	//   - r: the library source
	//   - name: the name used in errors
	//
	// Returns:
	//   - []*ParsedMaterial: the materials in declaration order
	//   - error: a *ParseError if the stream is malformed
	ParseMaterials(r io.Reader, name string) ([]*ParsedMaterial, error)
}
