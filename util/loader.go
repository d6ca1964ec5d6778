// Package util - filesystem helpers for batch inpainting runs.
package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/pixelmend/go-inpaint/images"
)

// ImageFile represents an image file staged for processing.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Image carries the raw bytes plus the sniffed format and dimensions.
	images.Image
}

// LoadDirectoryImageFiles reads all image files from a directory, sorted by
// name. Files whose extension matches a known codec but whose contents
// don't sniff as an image are skipped rather than failing the whole batch.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []ImageFile: Slice of ImageFile, each containing the raw bytes of an image file.
// - error: Error if the directory or a file cannot be read.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "util: reading directory %s", dir)
	}

	var out []ImageFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if images.FormatForExtension(ext) == "" {
			continue
		}

		imgPath := filepath.Join(dir, file.Name())
		data, readErr := os.ReadFile(imgPath)
		if readErr != nil {
			return nil, errors.Wrapf(readErr, "util: reading %s", imgPath)
		}
		desc, descErr := images.Describe(data)
		if descErr != nil {
			continue
		}
		out = append(out, ImageFile{Path: imgPath, Image: desc})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out, nil
}
