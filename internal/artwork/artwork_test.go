package artwork

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for x := 0; x < 640; x++ {
		for y := 0; y < 480; y++ {
			src.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 127, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img, err := Normalize(buf.Bytes())
	require.NoError(t, err)

	full, err := png.Decode(bytes.NewReader(img.PNG))
	require.NoError(t, err)
	assert.Equal(t, Side, full.Bounds().Dx())
	assert.Equal(t, Side, full.Bounds().Dy())

	thumb, err := png.Decode(bytes.NewReader(img.Thumb))
	require.NoError(t, err)
	assert.Equal(t, ThumbSide, thumb.Bounds().Dx())
	assert.Equal(t, ThumbSide, thumb.Bounds().Dy())
}

func TestNormalize_SquareInputKeptIntact(t *testing.T) {
	src := imageOfSize(t, 1024, 1024)

	img, err := Normalize(src)
	require.NoError(t, err)

	full, err := png.Decode(bytes.NewReader(img.PNG))
	require.NoError(t, err)
	assert.Equal(t, Side, full.Bounds().Dx())
	assert.Equal(t, Side, full.Bounds().Dy())
}

func TestNormalize_InvalidImage(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	assert.Error(t, err)
}

func imageOfSize(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}
