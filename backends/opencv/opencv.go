// Package opencv - inpainting backend backed by OpenCV via gocv.
//
// Kept in its own package so the cgo/OpenCV dependency is opt-in: only
// programs importing this package need OpenCV installed.
package opencv

import (
	"context"
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/pixelmend/go-inpaint/images"
)

// DefaultRadius is the neighborhood radius handed to OpenCV's inpainting.
const DefaultRadius = 5

// Backend implements backends.Inpainter with OpenCV's Telea algorithm.
type Backend struct {
	// Radius is the inpainting neighborhood radius. Values below 1 fall
	// back to DefaultRadius.
	Radius float32
}

// New returns a Backend with the default radius.
func New() *Backend {
	return &Backend{Radius: DefaultRadius}
}

// Inpaint implements backends.Inpainter. Only the region's RGB channels are
// written back into img; alpha and every pixel outside the region keep
// their input values, matching the local engine's contract.
func (b *Backend) Inpaint(ctx context.Context, img *image.RGBA, region image.Rectangle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	region = region.Canon().Intersect(image.Rect(0, 0, w, h))
	if region.Empty() {
		return nil
	}

	src, err := gocv.ImageToMatRGB(images.ToRGBA(img))
	if err != nil {
		return errors.Wrap(err, "opencv: converting image to Mat")
	}
	defer src.Close()

	mask := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC1)
	defer mask.Close()
	roi := mask.Region(region)
	roi.SetTo(gocv.NewScalar(255, 0, 0, 0))
	roi.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	radius := b.Radius
	if radius < 1 {
		radius = DefaultRadius
	}
	gocv.Inpaint(src, mask, &dst, radius, gocv.Telea)

	out, err := dst.ToImage()
	if err != nil {
		return errors.Wrap(err, "opencv: converting result Mat")
	}
	result := images.ToRGBA(out)

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			srcOff := result.PixOffset(x, y)
			dstOff := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
			img.Pix[dstOff+0] = result.Pix[srcOff+0]
			img.Pix[dstOff+1] = result.Pix[srcOff+1]
			img.Pix[dstOff+2] = result.Pix[srcOff+2]
		}
	}
	return nil
}
