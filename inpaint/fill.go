package inpaint

import (
	"context"

	"github.com/chewxy/math32"
)

// fill replaces the selection layer by layer from the boundary inward. A
// pixel at layer N reads exterior pixels and interior pixels at layers < N
// only, so no pixel ever sees an unfinished value; pixels at or beyond the
// current layer are excluded from the gather. The layer index is strictly
// increasing and terminal at the field's maximum.
func (r *run) fill(ctx context.Context) error {
	field := newDistanceField(r.sel)

	// Baseline: flood the selection with the bank's mean color so layer
	// processing never reads a residual overlay value.
	mr, mg, mb := r.bank.Mean()
	for ly := 0; ly < r.sel.Height; ly++ {
		off := r.off(r.sel.X, r.sel.Y+ly)
		for lx := 0; lx < r.sel.Width; lx++ {
			r.img.Pix[off+0] = mr
			r.img.Pix[off+1] = mg
			r.img.Pix[off+2] = mb
			off += 4
		}
	}

	radius := min(maxNeighborRadius, r.opts.MarginWidth)

	for layer := 0; layer <= field.max; layer++ {
		for ly := 0; ly < r.sel.Height; ly++ {
			for lx := 0; lx < r.sel.Width; lx++ {
				if field.at(lx, ly) != layer {
					continue
				}
				r.fillPixel(r.sel.X+lx, r.sel.Y+ly, layer, radius, field)
			}
		}
		if (layer+1)%yieldEveryLayers == 0 {
			if err := r.yield(ctx); err != nil {
				return err
			}
		}
		if field.max > 0 {
			r.prog.span(progressBankDone, progressFillDone, float64(layer)/float64(field.max))
		}
	}
	// A 1-pixel-thin selection has a single layer; report the band's upper
	// bound directly instead of dividing by zero.
	r.prog.report(progressFillDone)
	return nil
}

// fillPixel computes the weighted mean of every admissible neighbor within
// the gather radius plus a couple of low-weight random texture draws, and
// writes the result. A zero total weight leaves the pixel at its baseline.
func (r *run) fillPixel(x, y, layer, radius int, field *distanceField) {
	var sumR, sumG, sumB, sumW float32

	for dy := -radius; dy <= radius; dy++ {
		ny := y + dy
		if ny < 0 || ny >= r.h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= r.w {
				continue
			}
			d2 := dx*dx + dy*dy
			if d2 > radius*radius {
				continue
			}
			if r.sel.Contains(nx, ny) && field.at(nx-r.sel.X, ny-r.sel.Y) >= layer {
				// Not finalized yet; reading it would break the causal
				// fill order.
				continue
			}
			w := 1 / (1 + math32.Sqrt(float32(d2))*distanceFalloff)
			off := r.off(nx, ny)
			sumR += w * float32(r.img.Pix[off+0])
			sumG += w * float32(r.img.Pix[off+1])
			sumB += w * float32(r.img.Pix[off+2])
			sumW += w
		}
	}

	// Reintroduce high-frequency texture so the fill doesn't flatten into
	// a blur.
	for i := 0; i < textureDrawsPerPixel; i++ {
		if r.rng.Float64() >= r.opts.TextureInjection {
			continue
		}
		tr, tg, tb := r.bank.At(r.rng.Intn(r.bank.Len()))
		sumR += textureSampleWeight * float32(tr)
		sumG += textureSampleWeight * float32(tg)
		sumB += textureSampleWeight * float32(tb)
		sumW += textureSampleWeight
	}

	if sumW == 0 {
		return
	}
	off := r.off(x, y)
	r.img.Pix[off+0] = clampByte(sumR/sumW + 0.5)
	r.img.Pix[off+1] = clampByte(sumG/sumW + 0.5)
	r.img.Pix[off+2] = clampByte(sumB/sumW + 0.5)
}
