package loader

import (
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/Carmen-Shannon/oxy-forward/log"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithDevice is an option builder that sets the Device textures are created on.
//
// Parameters:
//   - device: the GPU device
//
// Returns:
//   - LoaderBuilderOption: a function that applies the device option to a loader
func WithDevice(device gpu.Device) LoaderBuilderOption {
	return func(l *loader) {
		l.device = device
	}
}

// WithTexturesRoot is an option builder that sets the directory or URL prefix texture
// paths in material libraries are resolved under.
//
// Parameters:
//   - root: the textures root
//
// Returns:
//   - LoaderBuilderOption: a function that applies the textures root option to a loader
func WithTexturesRoot(root string) LoaderBuilderOption {
	return func(l *loader) {
		l.texturesRoot = root
	}
}

// WithModelsRoot is an option builder that sets the directory or URL prefix material
// libraries are resolved under. When unset they resolve relative to the scene file.
//
// Parameters:
//   - root: the models root
//
// Returns:
//   - LoaderBuilderOption: a function that applies the models root option to a loader
func WithModelsRoot(root string) LoaderBuilderOption {
	return func(l *loader) {
		l.modelsRoot = root
	}
}

// WithLogger replaces the loader's logger.
func WithLogger(logger log.Logger) LoaderBuilderOption {
	return func(l *loader) {
		l.logger = logger
	}
}
