package imaging

import (
	"bytes"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gen2brain/avif"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// DefaultJPEGQuality is used when Encode is called for JPEG without a quality.
const DefaultJPEGQuality = 90

// Decode parses an encoded image of any supported raster format.
//
// Returns an ErrInvalidImageData error when the bytes match no registered
// container, and an ErrImage error when a container is recognized but its
// codec fails (truncated stream, corrupt chunk).
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, newError(ErrInvalidImageData, nil, "empty image data")
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, newError(ErrInvalidImageData, err, "unrecognized image container")
		}
		return nil, newError(ErrImage, errors.Wrap(err, "failed to decode image"), "")
	}
	return img, nil
}

// DetectFormat identifies the container of data by its magic bytes.
func DetectFormat(data []byte) (Format, error) {
	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return 0, newError(ErrInvalidImageData, err, "unrecognized image container")
		}
		return 0, newError(ErrImage, errors.Wrap(err, "failed to read image header"), "")
	}
	f, err := ParseFormat(name)
	if err != nil {
		return 0, err
	}
	return f, nil
}

// ValidateQuality checks an optional encoder quality.
func ValidateQuality(quality *int) error {
	if quality == nil {
		return nil
	}
	if *quality < 1 || *quality > 100 {
		return invalidParams("quality parameter must be between 1 and 100, got %d", *quality)
	}
	return nil
}

// Encode writes img in the given format.
//
// quality is honored for JPEG only (default DefaultJPEGQuality). WEBP and AVIF
// accept it but always encode with their library defaults. SVG and HEIC have
// no encoder and fail with ErrUnsupportedFormat.
func Encode(img image.Image, format Format, quality *int) ([]byte, error) {
	if err := ValidateQuality(quality); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	case FormatJPEG:
		q := DefaultJPEGQuality
		if quality != nil {
			q = *quality
		}
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(q))
	case FormatGIF:
		err = imaging.Encode(&buf, img, imaging.GIF)
	case FormatBMP:
		err = imaging.Encode(&buf, img, imaging.BMP)
	case FormatTIFF:
		err = imaging.Encode(&buf, img, imaging.TIFF)
	case FormatWEBP:
		// TODO: pass quality through once the WEBP encoding path settles on lossy vs lossless.
		err = webp.Encode(&buf, img, nil)
	case FormatAVIF:
		err = avif.Encode(&buf, img)
	case FormatICO:
		err = encodeICO(&buf, img)
	case FormatSVG, FormatHEIC:
		return nil, unsupportedFormat("no encoder for %s", format)
	default:
		return nil, unsupportedFormat("unknown format %s", format)
	}
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, e
		}
		return nil, newError(ErrImage, errors.Wrapf(err, "failed to encode %s", format), "")
	}
	return buf.Bytes(), nil
}
