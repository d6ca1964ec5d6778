package backends

import (
	"bytes"
	"context"
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelmend/go-inpaint/inpaint"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = uint8(rng.Intn(256))
		img.Pix[i+1] = uint8(rng.Intn(256))
		img.Pix[i+2] = uint8(rng.Intn(256))
		img.Pix[i+3] = 255
	}
	return img
}

func TestLocalInpaintMutatesRegionOnly(t *testing.T) {
	img := testImage(120, 90)
	orig := append([]uint8(nil), img.Pix...)
	region := image.Rect(30, 30, 70, 60)

	opts := inpaint.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(1))
	local := &Local{Options: &opts}

	require.NoError(t, local.Inpaint(context.Background(), img, region))

	assert.False(t, bytes.Equal(orig, img.Pix), "the region should be rewritten")
	for y := 0; y < 90; y++ {
		for x := 0; x < 120; x++ {
			if image.Pt(x, y).In(region) {
				continue
			}
			off := img.PixOffset(x, y)
			if !bytes.Equal(orig[off:off+4], img.Pix[off:off+4]) {
				t.Fatalf("pixel outside the region changed at (%d,%d)", x, y)
			}
		}
	}
}

func TestLocalInpaintEmptyRegionIsNoOp(t *testing.T) {
	img := testImage(40, 40)
	orig := append([]uint8(nil), img.Pix...)

	local := NewLocal()
	require.NoError(t, local.Inpaint(context.Background(), img, image.Rectangle{}))
	assert.True(t, bytes.Equal(orig, img.Pix))
}

func TestLocalInpaintReportsProgress(t *testing.T) {
	img := testImage(120, 90)

	var last float64
	opts := inpaint.DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(2))
	local := &Local{
		Options: &opts,
		Sink:    inpaint.ProgressFunc(func(p float64) { last = p }),
	}

	require.NoError(t, local.Inpaint(context.Background(), img, image.Rect(10, 10, 50, 40)))
	assert.Equal(t, 100.0, last, "the sink should see the run complete")
}

func TestLocalInpaintNilOptionsUsesDefaults(t *testing.T) {
	img := testImage(60, 60)
	local := &Local{}
	require.NoError(t, local.Inpaint(context.Background(), img, image.Rect(10, 10, 30, 30)))
}
