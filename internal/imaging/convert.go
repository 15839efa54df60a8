package imaging

import (
	"path/filepath"
	"strings"
)

// Convert re-encodes an image in another format.
//
// The target is parsed with ParseFormat ("jpeg", "JPG", "tiff", ...). The
// quality option is validated before anything else, so an out-of-range value
// fails without decoding. The returned Path has its extension replaced by the
// target's canonical extension ("photo.png" becomes "photo.jpg").
//
// Errors:
//   - ErrInvalidParameters: quality outside 1-100
//   - ErrUnsupportedFormat: unknown target, SVG/HEIC target or source
//   - ErrInvalidImageData, ErrImage: payload cannot be decoded or encoded
func Convert(img ImageData, target string, opts *ConversionOptions) (ImageData, error) {
	var quality *int
	if opts != nil {
		quality = opts.Quality
	}
	if err := ValidateQuality(quality); err != nil {
		return ImageData{}, err
	}

	format, err := ParseFormat(target)
	if err != nil {
		return ImageData{}, err
	}
	if !format.Transformable() {
		return ImageData{}, unsupportedFormat("cannot convert to %s", format)
	}
	if err := requireTransformable(img); err != nil {
		return ImageData{}, err
	}

	src, err := decodeImageData(img)
	if err != nil {
		return ImageData{}, err
	}
	return newImageData(ReplaceExtension(img.Path, format), src, format, quality)
}

// ReplaceExtension swaps the extension of path for the canonical extension
// of f, appending one if path has none.
func ReplaceExtension(path string, f Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + f.Extension()
}
