package inpaint

import (
	"math/rand"
	"time"
)

// Defaults for the tunable knobs. These cluster around what works for
// watermark-sized regions; all are independently overridable.
const (
	// DefaultPassCount is the number of smoothing iterations.
	DefaultPassCount = 8
	// DefaultMarginWidth is the width of the exterior sampling ring, in pixels.
	DefaultMarginWidth = 40
	// DefaultGrainStrength is the half-range of the uniform grain noise.
	DefaultGrainStrength = 3
	// DefaultTextureInjection is the probability that a per-pixel texture
	// draw contributes a random bank sample during the fill.
	DefaultTextureInjection = 0.25
)

// Fixed fill policy. These are deliberate constants rather than options: the
// fill quality degrades quickly outside these values.
const (
	// maxNeighborRadius caps the fill's neighbor gather radius.
	maxNeighborRadius = 10
	// textureDrawsPerPixel is how many bank draws each filled pixel attempts.
	textureDrawsPerPixel = 2
	// textureSampleWeight is the fixed low weight of an injected bank sample.
	textureSampleWeight = 0.1
	// distanceFalloff shapes the neighbor weight 1/(1+d*distanceFalloff).
	distanceFalloff = 0.3
	// smoothRadius is the box-blur window radius of the smoothing pass.
	smoothRadius = 2
	// featherWidth is the boundary band blended toward exterior colors.
	featherWidth = 4
	// yieldEveryLayers is how many fill layers run between yield points.
	yieldEveryLayers = 3
)

// Options configures one inpainting call. The zero value is valid: it means
// no smoothing and no grain, with margin and texture injection at their
// defaults. Start from DefaultOptions for the usual behavior.
type Options struct {
	// PassCount is the number of smoothing box-blur iterations. Zero skips
	// the smoothing stage entirely.
	PassCount int
	// MarginWidth is the width of the ring outside the selection that feeds
	// the texture bank. Values below 1 fall back to DefaultMarginWidth.
	MarginWidth int
	// GrainStrength is the half-range of the uniform noise added to each
	// RGB channel at the end. Zero disables grain.
	GrainStrength int
	// TextureInjection is the probability, per draw, that a random texture
	// bank sample joins a pixel's weighted mean. Values outside (0, 1] fall
	// back to DefaultTextureInjection.
	TextureInjection float64
	// AutoDetect makes Resolve ignore any user rectangle and use the
	// positional watermark heuristic.
	AutoDetect bool
	// Rand is the random source for texture injection and grain. Nil means
	// a time-seeded source; inject a fixed-seed source for reproducible
	// output.
	Rand *rand.Rand
}

// DefaultOptions returns the options used when the caller has no opinion.
func DefaultOptions() Options {
	return Options{
		PassCount:        DefaultPassCount,
		MarginWidth:      DefaultMarginWidth,
		GrainStrength:    DefaultGrainStrength,
		TextureInjection: DefaultTextureInjection,
	}
}

// normalized fills invalid fields with defaults and guarantees a usable
// random source. PassCount and GrainStrength are left alone: zero is a
// meaningful value for both.
func (o Options) normalized() Options {
	if o.PassCount < 0 {
		o.PassCount = 0
	}
	if o.GrainStrength < 0 {
		o.GrainStrength = 0
	}
	if o.MarginWidth < 1 {
		o.MarginWidth = DefaultMarginWidth
	}
	if o.TextureInjection <= 0 || o.TextureInjection > 1 {
		o.TextureInjection = DefaultTextureInjection
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
