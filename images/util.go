package images

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/draw"
)

// Checksum generates a deterministic checksum for a pixel buffer, used to
// verify whether a processing call touched the image at all.
//
// Arguments:
// - img: The buffer to compute a checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
//
// Example:
//
// ```go
//
//	before := images.Checksum(buf)
//	status, _ := inpaint.Inpaint(ctx, buf, sel, opts, nil)
//	changed := before != images.Checksum(buf)
//
// ```
func Checksum(img *image.RGBA) string {
	if img == nil || len(img.Pix) == 0 {
		return "empty"
	}

	hash := md5.New()
	hash.Write(img.Pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// ToRGBA returns an origin-anchored *image.RGBA copy of src. If src already
// is an *image.RGBA with bounds at (0,0), it is returned directly without
// copying.
func ToRGBA(src image.Image) *image.RGBA {
	if r, ok := src.(*image.RGBA); ok && r.Rect.Min == (image.Point{}) {
		return r
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

// Clone returns an independent deep copy of img with the same bounds.
func Clone(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}
