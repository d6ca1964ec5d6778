package inpaint

// ProgressSink receives a monotonically non-decreasing completion percentage
// in [0, 100]. Implementations must be cheap: they are called from inside
// the pixel loops' layer boundaries.
type ProgressSink interface {
	Progress(percent float64)
}

// ProgressFunc adapts a plain function to a ProgressSink.
type ProgressFunc func(percent float64)

// Progress implements ProgressSink.
func (f ProgressFunc) Progress(percent float64) { f(percent) }

// Stage boundaries of the reported percentage. The fill stage owns the
// 20-70 band; the cheap cosmetic stages share the rest.
const (
	progressBankDone   = 20.0
	progressFillDone   = 70.0
	progressSmoothDone = 85.0
	progressSeamDone   = 95.0
	progressAllDone    = 100.0
)

// progressReporter clamps into [0, 100] and drops any value that would move
// backwards, so sinks never observe a regression regardless of stage math.
type progressReporter struct {
	sink ProgressSink
	last float64
}

func (r *progressReporter) report(percent float64) {
	if r.sink == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if percent < r.last {
		return
	}
	r.last = percent
	r.sink.Progress(percent)
}

// span reports a fraction of the way through the band (lo, hi].
func (r *progressReporter) span(lo, hi, frac float64) {
	r.report(lo + (hi-lo)*frac)
}
