// Package backends - inpainting backend interface and implementations.
//
// The core engine in the inpaint package is one strategy among several: the
// same (image, region) -> image contract can be served by a remote service
// or by OpenCV's inpainting. Which backend runs is a configuration concern,
// not part of the algorithm.
package backends

import (
	"context"
	"image"
)

// BackendType is the type of the inpainting backend.
type BackendType string

const (
	// BackendLocal is the built-in progressive-fill engine.
	BackendLocal BackendType = "local"
	// BackendRemote is an HTTP service implementing the same contract.
	BackendRemote BackendType = "remote"
	// BackendOpenCV is OpenCV's Telea inpainting via gocv (opt-in package).
	BackendOpenCV BackendType = "opencv"
)

// Backends is a list of all supported backend types.
var Backends = []BackendType{BackendLocal, BackendRemote, BackendOpenCV}

// Inpainter fills the given region of img with plausible surrounding
// texture. Implementations mutate img in place and own it for the call's
// duration; the region is clamped to the image by the implementation.
type Inpainter interface {
	Inpaint(ctx context.Context, img *image.RGBA, region image.Rectangle) error
}
