package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts a rectangular region from an image.
//
// The region is clamped to the image rather than rejected: see ClampRegion.
// Only a zero (or negative) width or height is an error. Cropping the full
// image returns the same dimensions.
func Crop(img ImageData, x, y, width, height int) (ImageData, error) {
	if width <= 0 || height <= 0 {
		return ImageData{}, invalidParams("crop width and height must be positive, got %dx%d", width, height)
	}
	if x < 0 || y < 0 {
		return ImageData{}, invalidParams("crop origin must not be negative, got (%d,%d)", x, y)
	}
	if err := requireTransformable(img); err != nil {
		return ImageData{}, err
	}

	src, err := decodeImageData(img)
	if err != nil {
		return ImageData{}, err
	}

	b := src.Bounds()
	region := ClampRegion(x, y, width, height, b.Dx(), b.Dy())
	cropped := imaging.Crop(src, region.Add(b.Min))
	return newImageData(img.Path, cropped, img.Format, nil)
}

// ClampRegion fits the requested region inside an imgW x imgH image:
//
//	x' = min(x, imgW-1), y' = min(y, imgH-1)
//	w' = max(1, min(w, imgW-x')), h' = max(1, min(h, imgH-y'))
func ClampRegion(x, y, w, h, imgW, imgH int) image.Rectangle {
	cx := minInt(x, imgW-1)
	cy := minInt(y, imgH-1)
	cw := maxInt(1, minInt(w, imgW-cx))
	ch := maxInt(1, minInt(h, imgH-cy))
	return image.Rect(cx, cy, cx+cw, cy+ch)
}

// CropQuadrant crops a named region of an image: one of the four quadrants
// ("top-left", "top-right", "bottom-left", "bottom-right"), a half
// ("top-half", "bottom-half", "left-half", "right-half") or the central 50%
// ("center"). Odd dimensions round the midpoint down.
func CropQuadrant(img ImageData, region string) (ImageData, error) {
	w, h := img.Width, img.Height
	if w <= 0 || h <= 0 {
		return ImageData{}, invalidParams("image has no dimensions")
	}
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int
	switch region {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return ImageData{}, invalidParams("unknown region: %s", region)
	}

	return Crop(img, x1, y1, x2-x1, y2-y1)
}
