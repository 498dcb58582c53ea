package opengl

import (
	"context"
	"fmt"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/Carmen-Shannon/oxy-forward/engine/asset"
)

// decoded is a finished background decode waiting for upload on the render thread.
type decoded struct {
	tex   *texture
	faces []common.TextureStagingData
	err   error
}

// decodeImage fetches and decodes one image into RGBA pixels.
//
// Parameters:
//   - ctx: context bounding remote fetches
//   - location: file path or URL of the image
//
// Returns:
//   - common.TextureStagingData: the decoded pixels
//   - error: error if the image cannot be read or decoded
func decodeImage(ctx context.Context, location string) (common.TextureStagingData, error) {
	data, err := asset.ReadAll(ctx, location)
	if err != nil {
		return common.TextureStagingData{}, err
	}
	img, err := common.TextureSource{Data: data}.Decode()
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("%s: %w", location, err)
	}
	return img, nil
}

// decodeFaces decodes all six faces of a cube map. Faces must be square and share one size,
// otherwise the cube would be incomplete.
func decodeFaces(ctx context.Context, faces [6]string) ([]common.TextureStagingData, error) {
	out := make([]common.TextureStagingData, 0, len(faces))
	for i, loc := range faces {
		img, err := decodeImage(ctx, loc)
		if err != nil {
			return nil, err
		}
		if img.Width != img.Height {
			return nil, fmt.Errorf("cube face %d '%s' is %dx%d, faces must be square", i, loc, img.Width, img.Height)
		}
		if i > 0 && img.Width != out[0].Width {
			return nil, fmt.Errorf("cube face %d '%s' is %dpx, expected %dpx", i, loc, img.Width, out[0].Width)
		}
		out = append(out, img)
	}
	return out, nil
}
