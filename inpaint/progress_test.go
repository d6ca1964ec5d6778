package inpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressReporterClampsAndMonotone(t *testing.T) {
	var seen []float64
	r := &progressReporter{sink: ProgressFunc(func(p float64) { seen = append(seen, p) })}

	r.report(-5)
	r.report(10)
	r.report(4) // regression, dropped
	r.report(10)
	r.report(250)

	assert.Equal(t, []float64{0, 10, 10, 100}, seen)
}

func TestProgressReporterNilSink(t *testing.T) {
	r := &progressReporter{}
	// Must not panic.
	r.report(50)
	r.span(20, 70, 0.5)
}

func TestProgressReporterSpan(t *testing.T) {
	var seen []float64
	r := &progressReporter{sink: ProgressFunc(func(p float64) { seen = append(seen, p) })}

	r.span(20, 70, 0)
	r.span(20, 70, 0.5)
	r.span(20, 70, 1)

	assert.Equal(t, []float64{20, 45, 70}, seen)
}

func TestOptionsNormalized(t *testing.T) {
	o := Options{PassCount: -3, MarginWidth: 0, GrainStrength: -1, TextureInjection: 1.5}.normalized()

	assert.Equal(t, 0, o.PassCount, "negative pass counts collapse to zero, which is valid")
	assert.Equal(t, 0, o.GrainStrength)
	assert.Equal(t, DefaultMarginWidth, o.MarginWidth)
	assert.Equal(t, DefaultTextureInjection, o.TextureInjection)
	assert.NotNil(t, o.Rand, "normalization must supply a random source")
}
