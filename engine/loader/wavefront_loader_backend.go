package loader

import (
	"io"
)

// wavefrontLoaderBackendImpl is the implementation of wavefrontLoaderBackend.
type wavefrontLoaderBackendImpl struct{}

// wavefrontLoaderBackend is a loaderBackend for the OBJ-style scene format and its
// MTL-style material libraries.
type wavefrontLoaderBackend interface {
	loaderBackend
}

var _ wavefrontLoaderBackend = &wavefrontLoaderBackendImpl{}

// newWavefrontLoaderBackend creates a new wavefront loader backend.
//
// Returns:
//   - wavefrontLoaderBackend: the loader backend for .obj/.mtl files
func newWavefrontLoaderBackend() wavefrontLoaderBackend {
	return &wavefrontLoaderBackendImpl{}
}

func (b *wavefrontLoaderBackendImpl) ParseScene(r io.Reader, name string) (*ParsedScene, error) {
	return parseOBJ(r, name)
}

func (b *wavefrontLoaderBackendImpl) ParseMaterials(r io.Reader, name string) ([]*ParsedMaterial, error) {
	return parseMTL(r, name)
}
