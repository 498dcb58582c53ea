package opengl

import (
	"github.com/Carmen-Shannon/oxy-forward/log"
)

// DeviceBuilderOption configures a Device before the GL state is created.
type DeviceBuilderOption func(*device)

// WithLogger overrides the device logger.
func WithLogger(l log.Logger) DeviceBuilderOption {
	return func(d *device) {
		d.logger = l
	}
}

// WithDecodeWorkers sets the maximum number of goroutines decoding textures at once.
//
// Parameters:
//   - n: worker count, values below 1 are ignored
func WithDecodeWorkers(n int) DeviceBuilderOption {
	return func(d *device) {
		if n > 0 {
			d.decodeWorkers = n
		}
	}
}

// WithMipmaps toggles mipmap generation for 2D textures.
func WithMipmaps(enabled bool) DeviceBuilderOption {
	return func(d *device) {
		d.mipmaps = enabled
	}
}
