package imaging

import (
	"encoding/base64"
	"image"
)

// ImageData is the immutable image value passed in and out of every edit
// operation.
//
// Operations take ImageData by value and return a fresh value; the encoded
// payload in Data is decoded anew on each call and never modified.
type ImageData struct {
	// Path is an opaque handle. Only its extension is touched, by Convert.
	Path string `json:"path"`

	// Width is the image width in pixels (0 only for the SVG placeholder).
	Width int `json:"width"`

	// Height is the image height in pixels (0 only for the SVG placeholder).
	Height int `json:"height"`

	// Format is the container format of Data.
	Format Format `json:"format"`

	// Data is the encoded image, standard base64.
	Data string `json:"data"`

	// HasAlpha is true iff some pixel is not fully opaque.
	HasAlpha bool `json:"hasAlpha"`
}

// Bytes returns the decoded payload.
func (d ImageData) Bytes() ([]byte, error) {
	return decodeBase64(d.Data)
}

// RGB is an opaque 8-bit background color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ConversionOptions carries optional encoder settings for Convert.
type ConversionOptions struct {
	// Quality applies to JPEG (1-100, default 90). WEBP and AVIF accept it
	// but encode with their default settings.
	Quality *int `json:"quality,omitempty"`
}

func decodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, newError(ErrInvalidImageData, err, "failed to decode base64")
	}
	return b, nil
}

// requireTransformable rejects the formats that have no codec path before
// any payload work is done.
func requireTransformable(d ImageData) error {
	if !d.Format.Transformable() {
		return unsupportedFormat("cannot transform %s images", d.Format)
	}
	return nil
}

// decodeImageData detransports and decodes the payload of d.
func decodeImageData(d ImageData) (image.Image, error) {
	raw, err := d.Bytes()
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// newImageData encodes img as format and builds the resulting value.
//
// The alpha flag describes the encoded payload, not img. JPEG has no alpha
// channel and GIF quantizes translucency away, so when img has alpha the
// payload is decoded again to see what survived.
func newImageData(path string, img image.Image, format Format, quality *int) (ImageData, error) {
	encoded, err := Encode(img, format, quality)
	if err != nil {
		return ImageData{}, err
	}

	hasAlpha := HasAlpha(img)
	if hasAlpha {
		out, err := Decode(encoded)
		if err != nil {
			return ImageData{}, err
		}
		hasAlpha = HasAlpha(out)
	}

	b := img.Bounds()
	return ImageData{
		Path:     path,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Format:   format,
		Data:     base64.StdEncoding.EncodeToString(encoded),
		HasAlpha: hasAlpha,
	}, nil
}
