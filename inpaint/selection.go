package inpaint

import "image"

// Selection is the target rectangle to be erased and refilled, in 0-based
// pixel coordinates.
type Selection struct {
	X      int `json:"x"      yaml:"x"`
	Y      int `json:"y"      yaml:"y"`
	Width  int `json:"width"  yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Auto-detect placement constants. This is a fixed positional guess for the
// common bottom-right watermark placement, not image analysis.
const (
	autoDetectOffsetX = 200
	autoDetectOffsetY = 80
	autoDetectWidth   = 180
	autoDetectHeight  = 60
)

// AutoDetect returns the heuristic watermark selection for an image of the
// given dimensions: anchored near the bottom-right corner, clamped so it
// never exceeds the image.
func AutoDetect(imageWidth, imageHeight int) Selection {
	return Selection{
		X:      max(0, imageWidth-autoDetectOffsetX),
		Y:      max(0, imageHeight-autoDetectOffsetY),
		Width:  min(autoDetectWidth, imageWidth),
		Height: min(autoDetectHeight, imageHeight),
	}.Clamp(imageWidth, imageHeight)
}

// Resolve turns an optional user rectangle into a validated, image-clamped
// Selection. A nil user rectangle, or AutoDetect set in opts, falls back to
// the positional heuristic. The result may still be degenerate; callers
// check Empty.
func Resolve(imageWidth, imageHeight int, user *Selection, opts Options) Selection {
	if user == nil || opts.AutoDetect {
		return AutoDetect(imageWidth, imageHeight)
	}
	return user.Clamp(imageWidth, imageHeight)
}

// Clamp restricts the selection to the image bounds. A selection with no
// overlap clamps to a zero-area (degenerate) rectangle. Negative dimensions
// stay degenerate: they are never reinterpreted as a flipped rectangle.
func (s Selection) Clamp(imageWidth, imageHeight int) Selection {
	if s.Empty() {
		return Selection{X: s.X, Y: s.Y}
	}
	r := s.Rect().Intersect(image.Rect(0, 0, imageWidth, imageHeight))
	return Selection{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Empty reports whether the selection is degenerate (zero or negative area).
// A degenerate selection short-circuits the whole pipeline.
func (s Selection) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect converts the selection to an image.Rectangle.
func (s Selection) Rect() image.Rectangle {
	return image.Rect(s.X, s.Y, s.X+s.Width, s.Y+s.Height).Canon()
}

// Contains reports whether the pixel at (x, y) lies inside the selection.
func (s Selection) Contains(x, y int) bool {
	return x >= s.X && x < s.X+s.Width && y >= s.Y && y < s.Y+s.Height
}
