package images

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// DefaultJPEGQuality is used when EncodeOptions.Quality is zero.
const DefaultJPEGQuality = 92

// EncodeOptions configures Encode. The zero value is usable.
type EncodeOptions struct {
	// Quality applies to JPEG and WebP output, range 1-100.
	Quality int
}

// Decode decodes an encoded image into an origin-anchored RGBA buffer and
// reports the detected format.
//
// Arguments:
// - data: Encoded image bytes (JPEG, PNG, WebP, or BMP).
//
// Returns:
// - *image.RGBA: The decoded pixel buffer, bounds anchored at (0,0).
// - ImageFormat: The format detected from the data's magic bytes.
// - error: Error if the format is unknown or the decode fails.
func Decode(data []byte) (*image.RGBA, ImageFormat, error) {
	format := DetectFormat(data)
	if format == "" {
		return nil, "", errors.New("images: unrecognized image format")
	}

	var (
		img image.Image
		err error
	)
	r := bytes.NewReader(data)
	switch format {
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	}
	if err != nil {
		return nil, format, errors.Wrapf(err, "images: decoding %s", format)
	}
	return ToRGBA(img), format, nil
}

// Describe reports the format and dimensions of encoded image data without
// decoding the pixels, cheap enough to run across a whole directory.
func Describe(data []byte) (Image, error) {
	format := DetectFormat(data)
	if format == "" {
		return Image{}, errors.New("images: unrecognized image format")
	}

	var (
		cfg image.Config
		err error
	)
	r := bytes.NewReader(data)
	switch format {
	case FormatJPEG:
		cfg, err = jpeg.DecodeConfig(r)
	case FormatPNG:
		cfg, err = png.DecodeConfig(r)
	case FormatWebP:
		cfg, err = webp.DecodeConfig(r)
	case FormatBMP:
		cfg, err = bmp.DecodeConfig(r)
	}
	if err != nil {
		return Image{}, errors.Wrapf(err, "images: reading %s header", format)
	}
	return Image{Format: format, Data: data, Width: cfg.Width, Height: cfg.Height}, nil
}

// DecodeFile reads and decodes an image file.
func DecodeFile(path string) (*image.RGBA, ImageFormat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "images: reading %s", path)
	}
	return Decode(data)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format ImageFormat, opts EncodeOptions) error {
	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}

	var err error
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return errors.Errorf("images: unsupported encode format %q", format)
	}
	return errors.Wrapf(err, "images: encoding %s", format)
}

// EncodeFile encodes img into path, picking the format from the file
// extension.
func EncodeFile(path string, img image.Image, opts EncodeOptions) error {
	format := FormatForExtension(filepath.Ext(path))
	if format == "" {
		return errors.Errorf("images: no codec for extension %q", filepath.Ext(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "images: creating %s", path)
	}
	if err := Encode(f, img, format, opts); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "images: closing %s", path)
}
