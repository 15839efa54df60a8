package imaging

import (
	"math"

	"github.com/disintegration/imaging"
)

// Resize scales an image to width x height using a Lanczos filter.
//
// Parameters:
//   - img: The source image. It is not modified.
//   - width, height: Target dimensions. Both must be positive.
//   - keepAspect: When true the result fits inside width x height while
//     keeping the source proportions (see FitDimensions). When false the
//     result is exactly width x height and may be distorted.
//
// Returns:
//   - ImageData: A new value in the source format with HasAlpha recomputed.
//   - error: ErrInvalidParameters for non-positive dimensions,
//     ErrUnsupportedFormat for SVG/HEIC sources, ErrInvalidImageData or
//     ErrImage when the payload cannot be decoded.
func Resize(img ImageData, width, height int, keepAspect bool) (ImageData, error) {
	if width <= 0 || height <= 0 {
		return ImageData{}, invalidParams("width and height must be positive integers, got %dx%d", width, height)
	}
	if err := requireTransformable(img); err != nil {
		return ImageData{}, err
	}

	src, err := decodeImageData(img)
	if err != nil {
		return ImageData{}, err
	}

	w, h := width, height
	if keepAspect {
		b := src.Bounds()
		w, h = FitDimensions(b.Dx(), b.Dy(), width, height)
	}

	resized := imaging.Resize(src, w, h, imaging.Lanczos)
	return newImageData(img.Path, resized, img.Format, nil)
}

// FitDimensions returns the largest size inside targetW x targetH that keeps
// the srcW:srcH ratio.
//
// When the source is relatively wider than the target, width is the limiting
// axis and the height is derived by rounding; otherwise height limits. The
// derived side is never smaller than 1.
//
//	FitDimensions(200, 100, 100, 100) // 100, 50
//	FitDimensions(100, 200, 100, 100) // 50, 100
func FitDimensions(srcW, srcH, targetW, targetH int) (int, int) {
	originalRatio := float64(srcW) / float64(srcH)
	targetRatio := float64(targetW) / float64(targetH)

	if originalRatio > targetRatio {
		h := int(math.Round(float64(targetW) / originalRatio))
		return targetW, maxInt(h, 1)
	}
	w := int(math.Round(float64(targetH) * originalRatio))
	return maxInt(w, 1), targetH
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
