package inpaint

// grain adds independent uniform noise in [-GrainStrength, +GrainStrength]
// to each RGB channel of every interior pixel, clamped to [0, 255]. Purely
// cosmetic: it matches the surrounding image's natural noise so the patch
// doesn't look unnaturally clean. Applied last.
func (r *run) grain() {
	g := r.opts.GrainStrength
	if g > 0 {
		span := 2*g + 1
		for ly := 0; ly < r.sel.Height; ly++ {
			off := r.off(r.sel.X, r.sel.Y+ly)
			for lx := 0; lx < r.sel.Width; lx++ {
				for c := 0; c < 3; c++ {
					v := int(r.img.Pix[off+c]) + r.rng.Intn(span) - g
					if v < 0 {
						v = 0
					} else if v > 255 {
						v = 255
					}
					r.img.Pix[off+c] = uint8(v)
				}
				off += 4
			}
		}
	}
	r.prog.report(progressAllDone)
}
