package inpaint

// distanceField holds, per interior pixel, the minimal distance to the
// nearest selection edge: min(lx, w-1-lx, ly, h-1-ly) in selection-local
// coordinates. It only orders fill work and is discarded after the fill
// stage. Pixels sharing one value form a layer; layer 0 is the boundary.
type distanceField struct {
	width, height int
	d             []int
	max           int
}

func newDistanceField(sel Selection) *distanceField {
	f := &distanceField{
		width:  sel.Width,
		height: sel.Height,
		d:      make([]int, sel.Width*sel.Height),
	}
	for ly := 0; ly < sel.Height; ly++ {
		for lx := 0; lx < sel.Width; lx++ {
			d := min(lx, sel.Width-1-lx, ly, sel.Height-1-ly)
			f.d[ly*sel.Width+lx] = d
			if d > f.max {
				f.max = d
			}
		}
	}
	return f
}

// at returns the distance at selection-local (lx, ly).
func (f *distanceField) at(lx, ly int) int {
	return f.d[ly*f.width+lx]
}
