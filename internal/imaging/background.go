package imaging

import (
	"math"

	"github.com/disintegration/imaging"
)

// SetBackground flattens transparency onto an opaque background color.
//
// The input must report HasAlpha; otherwise the call fails with
// ErrInvalidParameters before the payload is decoded. Each pixel with alpha
// below 255 is blended as
//
//	out = src*(a/255) + bg*(1 - a/255)
//
// and made fully opaque. Opaque pixels are left as they are. The result
// always has HasAlpha == false.
func SetBackground(img ImageData, bg RGB) (ImageData, error) {
	if !img.HasAlpha {
		return ImageData{}, invalidParams("image does not have transparency")
	}
	if err := requireTransformable(img); err != nil {
		return ImageData{}, err
	}

	src, err := decodeImageData(img)
	if err != nil {
		return ImageData{}, err
	}

	// Clone always yields a fresh, zero-origin, non-premultiplied buffer.
	dst := imaging.Clone(src)
	bgc := [3]float64{float64(bg.R), float64(bg.G), float64(bg.B)}
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		a := dst.Pix[i+3]
		if a == 0xff {
			continue
		}
		f := float64(a) / 255
		for c := 0; c < 3; c++ {
			v := float64(dst.Pix[i+c])*f + bgc[c]*(1-f)
			dst.Pix[i+c] = uint8(math.Round(math.Min(v, 255)))
		}
		dst.Pix[i+3] = 0xff
	}

	out, err := newImageData(img.Path, dst, img.Format, nil)
	if err != nil {
		return ImageData{}, err
	}
	out.HasAlpha = false
	return out, nil
}
