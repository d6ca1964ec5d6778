package util

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelmend/go-inpaint/images"
)

func writeTestImage(t *testing.T, path string, format images.ImageFormat) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 200
		img.Pix[i+3] = 255
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, images.Encode(f, img, format, images.EncodeOptions{}))
	require.NoError(t, f.Close())
}

func TestLoadDirectoryImageFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "b.png"), images.FormatPNG)
	writeTestImage(t, filepath.Join(dir, "a.jpg"), images.FormatJPEG)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := LoadDirectoryImageFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2, "only image files should be loaded")

	assert.Equal(t, filepath.Join(dir, "a.jpg"), files[0].Path, "results are sorted by name")
	assert.Equal(t, images.FormatJPEG, files[0].Format)
	assert.Equal(t, images.FormatPNG, files[1].Format)
	for _, f := range files {
		assert.NotEmpty(t, f.Data)
		assert.Equal(t, 8, f.Width, "dimensions come from the image header")
		assert.Equal(t, 8, f.Height)
	}
}

func TestLoadDirectoryImageFilesSkipsMislabeledFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fake.png"), []byte("not a png"), 0o644))

	files, err := LoadDirectoryImageFiles(dir)
	require.NoError(t, err)
	assert.Empty(t, files, "files that don't sniff as images are skipped")
}

func TestLoadDirectoryImageFilesMissingDir(t *testing.T) {
	_, err := LoadDirectoryImageFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
