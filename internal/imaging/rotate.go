package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Rotate90 turns an image a quarter turn, clockwise or counter-clockwise.
// Width and height swap; the alpha flag is recomputed.
func Rotate90(img ImageData, clockwise bool) (ImageData, error) {
	if err := requireTransformable(img); err != nil {
		return ImageData{}, err
	}

	src, err := decodeImageData(img)
	if err != nil {
		return ImageData{}, err
	}

	var rotated image.Image
	if clockwise {
		// imaging rotates counter-clockwise.
		rotated = imaging.Rotate270(src)
	} else {
		rotated = imaging.Rotate90(src)
	}
	return newImageData(img.Path, rotated, img.Format, nil)
}
