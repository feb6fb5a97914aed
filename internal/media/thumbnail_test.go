package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFixture(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestThumbnailEncodesWebP(t *testing.T) {
	out, err := Thumbnail(pngFixture(t, 320, 180))

	require.NoError(t, err)
	require.NotEmpty(t, out)

	// RIFF....WEBP container header
	assert.Equal(t, "RIFF", string(out[:4]))
	assert.Equal(t, "WEBP", string(out[8:12]))
}

func TestThumbnailDownscalesWideImages(t *testing.T) {
	out, err := Thumbnail(pngFixture(t, 1920, 1080))

	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, MaxThumbnailWidth, cfg.Width)
	assert.Equal(t, 360, cfg.Height)
}

func TestThumbnailRejectsNonImages(t *testing.T) {
	_, err := Thumbnail(strings.NewReader("definitely not an image"))

	assert.Error(t, err)
}
