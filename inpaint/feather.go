package inpaint

// feather blends the boundary band of the synthesized region toward true
// exterior colors to hide the seam. For an interior pixel at edge distance d
// < featherWidth, the nearest truly-exterior pixel within a featherWidth
// window is found (Euclidean, ties broken first-found in scan order) and the
// output is current*(d/featherWidth) + exterior*(1-d/featherWidth): fully
// exterior-colored at the boundary, fully synthesized at the band's inner
// edge. Exterior pixels are never mutated, so in-place blending is safe.
func (r *run) feather() {
	for ly := 0; ly < r.sel.Height; ly++ {
		y := r.sel.Y + ly
		for lx := 0; lx < r.sel.Width; lx++ {
			dist := min(lx, r.sel.Width-1-lx, ly, r.sel.Height-1-ly)
			if dist >= featherWidth {
				continue
			}
			x := r.sel.X + lx

			bestD2 := -1
			bestOff := 0
			for dy := -featherWidth; dy <= featherWidth; dy++ {
				ny := y + dy
				if ny < 0 || ny >= r.h {
					continue
				}
				for dx := -featherWidth; dx <= featherWidth; dx++ {
					nx := x + dx
					if nx < 0 || nx >= r.w || r.sel.Contains(nx, ny) {
						continue
					}
					d2 := dx*dx + dy*dy
					if bestD2 < 0 || d2 < bestD2 {
						bestD2 = d2
						bestOff = r.off(nx, ny)
					}
				}
			}
			if bestD2 < 0 {
				continue
			}

			t := float32(dist) / featherWidth
			off := r.off(x, y)
			r.img.Pix[off+0] = clampByte(float32(r.img.Pix[off+0])*t + float32(r.img.Pix[bestOff+0])*(1-t) + 0.5)
			r.img.Pix[off+1] = clampByte(float32(r.img.Pix[off+1])*t + float32(r.img.Pix[bestOff+1])*(1-t) + 0.5)
			r.img.Pix[off+2] = clampByte(float32(r.img.Pix[off+2])*t + float32(r.img.Pix[bestOff+2])*(1-t) + 0.5)
		}
	}
	r.prog.report(progressSeamDone)
}
