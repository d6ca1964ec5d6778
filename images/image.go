// Package images - codec and pixel-buffer utilities for the inpainting
// pipeline. The engine itself only ever sees an origin-anchored *image.RGBA;
// this package is the boundary where encoded files become that buffer and
// back.
package images

// Image represents an encoded image with its format, raw bytes, and
// decoded dimensions.
type Image struct {
	// The format of the image.
	Format ImageFormat `json:"format" yaml:"format"`
	// The encoded bytes of the image.
	Data []byte `json:"data" yaml:"data"`
	// The width of the image in pixels.
	Width int `json:"width" yaml:"width"`
	// The height of the image in pixels.
	Height int `json:"height" yaml:"height"`
}
