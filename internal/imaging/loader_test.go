package imaging

import (
	"encoding/base64"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func pngFileBytes(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(pngBase64(t, solid(w, h, c)))
	require.NoError(t, err)
	return raw
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	raw := pngFileBytes(t, 6, 3, color.NRGBA{0, 0, 0, 100})
	path := filepath.Join(dir, "photo.png")
	writeTestFile(t, path, raw)

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, path, img.Path)
	assert.Equal(t, 6, img.Width)
	assert.Equal(t, 3, img.Height)
	assert.Equal(t, FormatPNG, img.Format)
	assert.True(t, img.HasAlpha)
	// The payload is the file, not a re-encoding.
	assert.Equal(t, base64.StdEncoding.EncodeToString(raw), img.Data)
}

func TestLoadImage_SVGPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.svg")
	writeTestFile(t, path, []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, img.Format)
	assert.Equal(t, 0, img.Width)
	assert.Equal(t, 0, img.Height)
	assert.True(t, img.HasAlpha)
	assert.NotEmpty(t, img.Data)
}

func TestLoadImage_ContentSniffing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "download.bin")
	writeTestFile(t, path, pngFileBytes(t, 2, 2, red))

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, img.Format)
	assert.False(t, img.HasAlpha)

	junk := filepath.Join(dir, "notes.txt")
	writeTestFile(t, junk, []byte("just some text"))
	_, err = LoadImage(junk)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat), "got %v", err)
	assert.Contains(t, err.Error(), "unknown format: txt")
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()

	heic := filepath.Join(dir, "phone.heic")
	writeTestFile(t, heic, []byte("ftypheic"))
	corrupt := filepath.Join(dir, "broken.png")
	writeTestFile(t, corrupt, []byte("\x89PNG\r\n\x1a\nnope"))

	tests := []struct {
		name string
		path string
		kind error
	}{
		{"missing", filepath.Join(dir, "nope.png"), ErrFileNotFound},
		{"heic", heic, ErrUnsupportedFormat},
		{"corrupt", corrupt, ErrImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadImage(tt.path)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	src := pngData(t, solid(3, 3, blue))

	path := filepath.Join(dir, "out.png")
	require.NoError(t, SaveImage(src, path))

	loaded, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, src.Data, loaded.Data)
	assert.Equal(t, 3, loaded.Width)
}

func TestSaveImage_Errors(t *testing.T) {
	dir := t.TempDir()
	src := pngData(t, solid(1, 1, blue))

	err := SaveImage(src, filepath.Join(dir, "missing", "out.png"))
	assert.True(t, errors.Is(err, ErrFileNotFound), "got %v", err)
	assert.Contains(t, err.Error(), "directory does not exist")

	err = SaveImage(ImageData{Format: FormatPNG, Data: "not base64!"}, filepath.Join(dir, "x.png"))
	assert.True(t, errors.Is(err, ErrInvalidImageData), "got %v", err)

	// Writing over a directory fails for a reason other than permissions.
	target := filepath.Join(dir, "taken.png")
	require.NoError(t, os.Mkdir(target, 0o755))
	err = SaveImage(src, target)
	assert.True(t, errors.Is(err, ErrSaveFailed), "got %v", err)
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PNG", "a.jpg", "c.webp", "notes.txt", "d.svg"} {
		writeTestFile(t, filepath.Join(dir, name), []byte("x"))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	images, err := ListImages(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.PNG"),
		filepath.Join(dir, "c.webp"),
		filepath.Join(dir, "d.svg"),
	}, images)
}

func TestListImages_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := ListImages(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, ErrFileNotFound))

	file := filepath.Join(dir, "a.png")
	writeTestFile(t, file, []byte("x"))
	_, err = ListImages(file)
	assert.True(t, errors.Is(err, ErrInvalidParameters))
	assert.Contains(t, err.Error(), "path is not a directory")
}
