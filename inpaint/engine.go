package inpaint

import (
	"context"
	"image"
	"math/rand"
	"runtime"
)

// Status reports what one Inpaint call actually did. The engine never fails
// on a well-formed, non-degenerate selection with a non-empty texture bank;
// the skip statuses are soft no-ops, not errors.
type Status int

const (
	// StatusProcessed means the selection was filled and post-processed.
	StatusProcessed Status = iota
	// StatusSkippedDegenerateSelection means clamping produced a zero-area
	// rectangle; the buffer was returned untouched.
	StatusSkippedDegenerateSelection
	// StatusSkippedEmptyTextureBank means the margin ring held no exterior
	// samples (e.g. the selection spans the whole image); the buffer was
	// returned untouched.
	StatusSkippedEmptyTextureBank
	// StatusCanceled means the context expired at a yield point. The buffer
	// holds the most recent complete snapshot: every finished layer or pass
	// is fully written, nothing is half-written.
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusSkippedDegenerateSelection:
		return "skipped: degenerate selection"
	case StatusSkippedEmptyTextureBank:
		return "skipped: empty texture bank"
	case StatusCanceled:
		return "canceled"
	}
	return "unknown"
}

// Inpaint erases the selection from img and synthesizes replacement texture
// from the surrounding pixels. The buffer is mutated in place and owned
// exclusively by this call until it returns; nothing else may touch it
// meanwhile. Alpha is never modified, and no pixel outside the selection is
// ever written.
//
// The selection is clamped to the image before anything else; a degenerate
// result, or a selection leaving no exterior to sample, returns a skip
// status with the buffer untouched. The only error ever returned is the
// context's, paired with StatusCanceled.
func Inpaint(ctx context.Context, img *image.RGBA, sel Selection, opts Options, sink ProgressSink) (Status, error) {
	prog := &progressReporter{sink: sink}
	if img == nil || img.Rect.Empty() {
		return StatusSkippedDegenerateSelection, nil
	}

	sel = sel.Clamp(img.Rect.Dx(), img.Rect.Dy())
	if sel.Empty() {
		return StatusSkippedDegenerateSelection, nil
	}
	opts = opts.normalized()

	bank := buildTextureBank(img, sel, opts.MarginWidth)
	if bank.Len() == 0 {
		return StatusSkippedEmptyTextureBank, nil
	}

	r := &run{
		img:  img,
		base: img.Rect.Min,
		w:    img.Rect.Dx(),
		h:    img.Rect.Dy(),
		sel:  sel,
		opts: opts,
		bank: bank,
		rng:  opts.Rand,
		prog: prog,
	}
	prog.report(progressBankDone)

	if err := r.fill(ctx); err != nil {
		return StatusCanceled, err
	}
	if err := r.smooth(ctx); err != nil {
		return StatusCanceled, err
	}
	r.feather()
	r.grain()
	return StatusProcessed, nil
}

// run is the per-call state: one exclusively-owned buffer flowing through
// the stages. Coordinates are 0-based regardless of the buffer's bounds
// origin; off translates to Pix offsets.
type run struct {
	img  *image.RGBA
	base image.Point
	w, h int
	sel  Selection
	opts Options
	bank *textureBank
	rng  *rand.Rand
	prog *progressReporter
}

func (r *run) off(x, y int) int {
	return r.img.PixOffset(r.base.X+x, r.base.Y+y)
}

// yield cedes control back to the host scheduler between chunks of CPU-heavy
// work and is the only place cancellation is observed. Not a concurrency
// point: the buffer stays exclusively owned across it.
func (r *run) yield(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runtime.Gosched()
	return nil
}

func clampByte(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
