package images

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestImage() *image.RGBA {
	// A 64x48 gradient so lossy codecs have something non-trivial to chew.
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255})
		}
	}
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := getTestImage()

	for _, format := range Formats {
		var buf bytes.Buffer
		err := Encode(&buf, src, format, EncodeOptions{})
		require.NoError(t, err, "encoding %s should succeed", format)

		assert.Equal(t, format, DetectFormat(buf.Bytes()),
			"encoded %s bytes should sniff as %s", format, format)

		img, detected, err := Decode(buf.Bytes())
		require.NoError(t, err, "decoding %s should succeed", format)
		assert.Equal(t, format, detected)
		assert.Equal(t, 64, img.Rect.Dx())
		assert.Equal(t, 48, img.Rect.Dy())
		assert.Equal(t, image.Point{}, img.Rect.Min, "decoded buffers are origin-anchored")
	}
}

func TestDecodePNGIsLossless(t *testing.T) {
	src := getTestImage()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, FormatPNG, EncodeOptions{}))

	img, _, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src.Pix, img.Pix, "PNG round trip must be exact")
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode([]byte("definitely not an image"))
	assert.Error(t, err, "unknown magic bytes should fail")

	// Valid magic, truncated body.
	_, _, err = Decode(append([]byte(nil), pngMagic...))
	assert.Error(t, err, "a truncated PNG should fail to decode")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, ImageFormat(""), DetectFormat(nil))
	assert.Equal(t, FormatJPEG, DetectFormat([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
	assert.Equal(t, FormatBMP, DetectFormat([]byte("BM????")))
	assert.Equal(t, ImageFormat(""), DetectFormat([]byte("RIFF1234NOPE")),
		"a RIFF container that is not WebP is not an image we decode")
}

func TestFormatForExtension(t *testing.T) {
	assert.Equal(t, FormatJPEG, FormatForExtension(".jpg"))
	assert.Equal(t, FormatJPEG, FormatForExtension(".jpeg"))
	assert.Equal(t, FormatWebP, FormatForExtension("webp"))
	assert.Equal(t, ImageFormat(""), FormatForExtension(".tiff"))
}
