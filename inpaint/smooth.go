package inpaint

import "context"

// smooth removes the blockiness of the discrete layered fill with PassCount
// box-blur iterations restricted to the selection interior. Every iteration
// reads from a snapshot of the previous one, never read-modify-write in
// place, so the blur has no directional bias. PassCount 0 skips the stage.
func (r *run) smooth(ctx context.Context) error {
	passes := r.opts.PassCount
	for pass := 0; pass < passes; pass++ {
		snap := append([]uint8(nil), r.img.Pix...)

		for ly := 0; ly < r.sel.Height; ly++ {
			y := r.sel.Y + ly
			for lx := 0; lx < r.sel.Width; lx++ {
				x := r.sel.X + lx

				var sumR, sumG, sumB, n uint32
				for dy := -smoothRadius; dy <= smoothRadius; dy++ {
					ny := y + dy
					if ny < 0 || ny >= r.h {
						continue
					}
					for dx := -smoothRadius; dx <= smoothRadius; dx++ {
						nx := x + dx
						if nx < 0 || nx >= r.w {
							continue
						}
						off := r.off(nx, ny)
						sumR += uint32(snap[off+0])
						sumG += uint32(snap[off+1])
						sumB += uint32(snap[off+2])
						n++
					}
				}
				off := r.off(x, y)
				r.img.Pix[off+0] = uint8((sumR + n/2) / n)
				r.img.Pix[off+1] = uint8((sumG + n/2) / n)
				r.img.Pix[off+2] = uint8((sumB + n/2) / n)
			}
		}

		if err := r.yield(ctx); err != nil {
			return err
		}
		r.prog.span(progressFillDone, progressSmoothDone, float64(pass+1)/float64(passes))
	}
	r.prog.report(progressSmoothDone)
	return nil
}
