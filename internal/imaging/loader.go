package imaging

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// LoadImage reads an image file into an ImageData value.
//
// The payload is the file's bytes unchanged. Width, height and the alpha
// flag come from decoding it; the format comes from the extension, falling
// back to the content when the extension is unknown.
//
// SVG files are not rasterized: they load as a 0x0 placeholder with
// HasAlpha set, for the viewer to render. HEIC/HEIF files are rejected.
//
// Errors:
//   - ErrFileNotFound: path does not exist
//   - ErrIO: path cannot be read
//   - ErrUnsupportedFormat: HEIC, or an unknown extension with unknown content
//   - ErrInvalidImageData, ErrImage: the content cannot be decoded
func LoadImage(path string) (ImageData, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ImageData{}, newError(ErrFileNotFound, nil, "%s", path)
		}
		return ImageData{}, newError(ErrIO, err, "failed to stat %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return ImageData{}, newError(ErrIO, err, "failed to read %s", path)
	}

	format, known := FormatFromPath(path)
	switch {
	case known && format == FormatSVG:
		return ImageData{
			Path:     path,
			Format:   FormatSVG,
			Data:     base64.StdEncoding.EncodeToString(raw),
			HasAlpha: true,
		}, nil
	case known && format == FormatHEIC:
		return ImageData{}, unsupportedFormat("HEIC format is not yet supported")
	}

	if !known {
		if format, err = DetectFormat(raw); err != nil {
			return ImageData{}, unsupportedFormat("unknown format: %s", strings.TrimPrefix(filepath.Ext(path), "."))
		}
	}
	img, err := Decode(raw)
	if err != nil {
		return ImageData{}, err
	}

	b := img.Bounds()
	return ImageData{
		Path:     path,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Format:   format,
		Data:     base64.StdEncoding.EncodeToString(raw),
		HasAlpha: HasAlpha(img),
	}, nil
}

// SaveImage writes the payload of img to path as-is. The parent directory
// must exist.
func SaveImage(img ImageData, path string) error {
	raw, err := img.Bytes()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return newError(ErrFileNotFound, nil, "directory does not exist: %s", dir)
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		if os.IsPermission(err) {
			return newError(ErrPermissionDenied, nil, "cannot write to: %s", path)
		}
		return newError(ErrSaveFailed, errors.Wrap(err, "failed to save image"), "")
	}
	return nil
}

// ListImages returns the paths of the files in dir whose extension is a
// known image format, sorted. Subdirectories are not descended.
func ListImages(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newError(ErrFileNotFound, nil, "%s", dir)
		}
		return nil, newError(ErrIO, err, "failed to stat %s", dir)
	}
	if !info.IsDir() {
		return nil, invalidParams("path is not a directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(ErrIO, err, "failed to read %s", dir)
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if _, ok := FormatFromPath(p); ok {
			images = append(images, p)
		}
	}
	sort.Strings(images)
	return images, nil
}
