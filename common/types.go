// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width uint32
	// Height is the height of the texture in pixels.
	Height uint32
}

// PlaceholderTexture returns the 2x2 grey checker used while a texture file is still decoding.
//
// Returns:
//   - TextureStagingData: the placeholder pixels
func PlaceholderTexture() TextureStagingData {
	return TextureStagingData{
		Pixels: []byte{
			100, 100, 100, 255,
			150, 150, 150, 255,
			100, 100, 100, 255,
			150, 150, 150, 255,
		},
		Width:  2,
		Height: 2,
	}
}

// TextureSource references image data for a texture, either in memory or on disk.
type TextureSource struct {
	// Path is the file path for external textures (empty for in-memory data).
	Path string

	// Data contains raw encoded image bytes (PNG, JPEG, BMP, TIFF, WebP).
	Data []byte
}

// Decode decodes the texture to raw RGBA pixel data.
// Uses either the in-memory Data bytes or loads from Path on disk.
// Reference: https://pkg.go.dev/image
//
// Returns:
//   - TextureStagingData: RGBA pixels (4 bytes per pixel, row-major order) and dimensions
//   - error: error if decoding fails
func (t TextureSource) Decode() (TextureStagingData, error) {
	var img image.Image
	var err error

	if len(t.Data) > 0 {
		img, _, err = image.Decode(bytes.NewReader(t.Data))
		if err != nil {
			return TextureStagingData{}, fmt.Errorf("failed to decode embedded image: %w", err)
		}
	} else if t.Path != "" {
		file, fileErr := os.Open(t.Path)
		if fileErr != nil {
			return TextureStagingData{}, fmt.Errorf("failed to open texture file %s: %w", t.Path, fileErr)
		}
		defer file.Close()

		img, _, err = image.Decode(file)
		if err != nil {
			return TextureStagingData{}, fmt.Errorf("failed to decode texture file %s: %w", t.Path, err)
		}
	} else {
		return TextureStagingData{}, fmt.Errorf("texture has neither data nor path")
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}, nil
}
