package inpaint

import "image"

// textureBank is the pool of exterior colors reinjected during the fill.
// Samples are flat (r, g, b) triples in row-major scan order, taken from the
// margin ring around the selection and never from inside it.
type textureBank struct {
	samples []uint8
	mean    [3]uint8
}

// buildTextureBank scans the selection's bounding box expanded by margin on
// all sides, clipped to the image, and collects every pixel outside the
// selection itself. An empty bank means the call is unsatisfiable (the
// selection leaves no exterior to sample) and the pipeline must no-op.
func buildTextureBank(img *image.RGBA, sel Selection, margin int) *textureBank {
	ring := sel.Rect().Inset(-margin).
		Intersect(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))

	bank := &textureBank{}
	var sumR, sumG, sumB uint64
	for y := ring.Min.Y; y < ring.Max.Y; y++ {
		for x := ring.Min.X; x < ring.Max.X; x++ {
			if sel.Contains(x, y) {
				continue
			}
			off := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
			r, g, b := img.Pix[off], img.Pix[off+1], img.Pix[off+2]
			bank.samples = append(bank.samples, r, g, b)
			sumR += uint64(r)
			sumG += uint64(g)
			sumB += uint64(b)
		}
	}
	if n := bank.Len(); n > 0 {
		bank.mean = [3]uint8{
			uint8(sumR / uint64(n)),
			uint8(sumG / uint64(n)),
			uint8(sumB / uint64(n)),
		}
	}
	return bank
}

// Len returns the number of samples in the bank.
func (b *textureBank) Len() int { return len(b.samples) / 3 }

// At returns the i'th sample. The caller guarantees 0 <= i < Len().
func (b *textureBank) At(i int) (r, g, bl uint8) {
	off := i * 3
	return b.samples[off], b.samples[off+1], b.samples[off+2]
}

// Mean returns the average sample color, used as the fill baseline.
func (b *textureBank) Mean() (r, g, bl uint8) {
	return b.mean[0], b.mean[1], b.mean[2]
}
