package backends

import (
	"context"
	"image"

	"github.com/pixelmend/go-inpaint/inpaint"
)

// Local adapts the in-process engine to the Inpainter interface.
type Local struct {
	// Options configures every call. The zero value means DefaultOptions.
	Options *inpaint.Options
	// Sink optionally receives progress from each call.
	Sink inpaint.ProgressSink
}

// NewLocal returns a Local backend with default options.
func NewLocal() *Local {
	opts := inpaint.DefaultOptions()
	return &Local{Options: &opts}
}

// Inpaint implements Inpainter. Skip statuses (degenerate region, empty
// texture bank) are soft no-ops here as in the engine itself.
func (l *Local) Inpaint(ctx context.Context, img *image.RGBA, region image.Rectangle) error {
	opts := inpaint.DefaultOptions()
	if l.Options != nil {
		opts = *l.Options
	}
	region = region.Canon()
	sel := inpaint.Selection{
		X:      region.Min.X,
		Y:      region.Min.Y,
		Width:  region.Dx(),
		Height: region.Dy(),
	}
	_, err := inpaint.Inpaint(ctx, img, sel, opts, l.Sink)
	return err
}
