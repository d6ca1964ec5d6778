package images

import "bytes"

// ImageFormat represents supported image formats
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatWebP ImageFormat = "webp"
	FormatPNG  ImageFormat = "png"
	FormatBMP  ImageFormat = "bmp"
)

// Formats lists every format the codec can decode and encode.
var Formats = []ImageFormat{FormatJPEG, FormatWebP, FormatPNG, FormatBMP}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
	bmpMagic  = []byte("BM")
)

// DetectFormat sniffs the leading bytes of an encoded image and reports its
// format. Returns an empty ImageFormat when the data matches no known magic.
func DetectFormat(data []byte) ImageFormat {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return FormatPNG
	case bytes.HasPrefix(data, jpegMagic):
		return FormatJPEG
	case bytes.HasPrefix(data, riffMagic) && len(data) >= 12 && bytes.Equal(data[8:12], webpMagic):
		return FormatWebP
	case bytes.HasPrefix(data, bmpMagic):
		return FormatBMP
	}
	return ""
}

// FormatForExtension maps a file extension (with or without the leading dot)
// to an ImageFormat. Unknown extensions return an empty ImageFormat.
func FormatForExtension(ext string) ImageFormat {
	switch ext {
	case ".jpg", ".jpeg", "jpg", "jpeg":
		return FormatJPEG
	case ".png", "png":
		return FormatPNG
	case ".webp", "webp":
		return FormatWebP
	case ".bmp", "bmp":
		return FormatBMP
	}
	return ""
}
