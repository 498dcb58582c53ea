package opengl

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-forward/common"
	"github.com/Carmen-Shannon/oxy-forward/engine/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderAcceptsManyTexturesBeforeFirstFrame(t *testing.T) {
	const textures = 600
	q := newDecoder(4)

	submitted := make(chan struct{})
	go func() {
		defer close(submitted)
		for i := range textures {
			tex := &texture{kind: gpu.Texture2D, source: string(rune('a' + i%26))}
			q.submit(context.Background(), tex, func(context.Context) ([]common.TextureStagingData, error) {
				return []common.TextureStagingData{common.PlaceholderTexture()}, nil
			})
		}
	}()

	select {
	case <-submitted:
	case <-time.After(10 * time.Second):
		t.Fatal("submitting decodes blocked without a frame draining them")
	}

	var landed []decoded
	require.Eventually(t, func() bool {
		landed = append(landed, q.drain()...)
		return len(landed) == textures
	}, 10*time.Second, 5*time.Millisecond)

	for _, res := range landed {
		assert.NoError(t, res.err)
		require.Len(t, res.faces, 1)
	}
	assert.Empty(t, q.drain(), "drain hands results over once")
}

func TestDecoderKeepsFailures(t *testing.T) {
	q := newDecoder(1)
	tex := &texture{kind: gpu.TextureCube, source: "px.png"}
	var calls atomic.Int32
	q.submit(context.Background(), tex, func(context.Context) ([]common.TextureStagingData, error) {
		calls.Add(1)
		return nil, errors.New("broken face")
	})

	var landed []decoded
	require.Eventually(t, func() bool {
		landed = append(landed, q.drain()...)
		return len(landed) == 1
	}, 5*time.Second, 5*time.Millisecond)

	assert.Same(t, tex, landed[0].tex)
	assert.EqualError(t, landed[0].err, "broken face")
	assert.Equal(t, int32(1), calls.Load())
}
