package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Sticker is a secondary image composited onto a base image.
type Sticker struct {
	// Data is the encoded sticker image, standard base64.
	Data string `json:"data"`

	// X, Y locate the top-left corner of the unrotated sticker box.
	X int `json:"x"`
	Y int `json:"y"`

	// Width, Height are the size the sticker is resized to before rotation.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Rotation is in degrees, clockwise on screen, about the box center.
	Rotation float64 `json:"rotation"`
}

// ApplyStickers composites stickers onto a base image in order, later
// stickers on top.
//
// Each sticker is decoded, resized to Width x Height with a Lanczos filter,
// then rotated about its own center by inverse mapping: for every candidate
// base pixel (bx, by) the unrotated sticker coordinate is
//
//	srcX =  dx*cos(t) + dy*sin(t) + w/2
//	srcY = -dx*sin(t) + dy*cos(t) + h/2
//
// with (dx, dy) the offset from the sticker center. Pixels whose source
// falls inside [0,w) x [0,h) are sampled bilinearly and blended alpha-over;
// all others are untouched. Only the rotated bounding box of each sticker is
// scanned.
//
// The result has the base image's dimensions and format.
func ApplyStickers(img ImageData, stickers []Sticker) (ImageData, error) {
	if len(stickers) == 0 {
		return ImageData{}, invalidParams("no stickers to apply")
	}
	for i, s := range stickers {
		if s.Width <= 0 || s.Height <= 0 {
			return ImageData{}, invalidParams("sticker %d: width and height must be positive, got %dx%d", i, s.Width, s.Height)
		}
	}
	if err := requireTransformable(img); err != nil {
		return ImageData{}, err
	}

	base, err := decodeImageData(img)
	if err != nil {
		return ImageData{}, err
	}
	canvas := imaging.Clone(base)

	for i, s := range stickers {
		raw, err := decodeBase64(s.Data)
		if err != nil {
			return ImageData{}, stickerError(i, err)
		}
		src, err := Decode(raw)
		if err != nil {
			return ImageData{}, stickerError(i, err)
		}
		overlay := imaging.Resize(src, s.Width, s.Height, imaging.Lanczos)
		compositeRotated(canvas, overlay, s)
	}

	return newImageData(img.Path, canvas, img.Format, nil)
}

// stickerError names the sticker in err's detail and keeps its kind, so a
// truncated sticker is still ErrImage.
func stickerError(i int, err error) error {
	var e *Error
	if !errors.As(err, &e) {
		return newError(ErrImage, err, "sticker %d", i)
	}
	msg := fmt.Sprintf("sticker %d", i)
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return newError(e.Kind(), e.Err, "%s", msg)
}

// compositeRotated blends overlay (already Width x Height) onto dst.
func compositeRotated(dst, overlay *image.NRGBA, s Sticker) {
	w := float64(s.Width)
	h := float64(s.Height)
	halfW, halfH := w/2, h/2
	centerX := float64(s.X) + halfW
	centerY := float64(s.Y) + halfH

	theta := s.Rotation * math.Pi / 180
	sin, cos := math.Sincos(theta)

	scan := rotatedBounds(centerX, centerY, halfW, halfH, sin, cos).Intersect(dst.Rect)
	for by := scan.Min.Y; by < scan.Max.Y; by++ {
		dy := float64(by) - centerY
		for bx := scan.Min.X; bx < scan.Max.X; bx++ {
			dx := float64(bx) - centerX
			srcX := dx*cos + dy*sin + halfW
			srcY := -dx*sin + dy*cos + halfH
			if srcX < 0 || srcX >= w || srcY < 0 || srcY >= h {
				continue
			}
			r, g, b, a := sampleBilinear(overlay, srcX, srcY)
			if a <= 0 {
				continue
			}
			blendOver(dst, bx, by, r, g, b, a)
		}
	}
}

// rotatedBounds returns the integer box covering the sticker rectangle
// rotated by (sin, cos) about its center, padded by one pixel.
func rotatedBounds(cx, cy, halfW, halfH, sin, cos float64) image.Rectangle {
	// Forward rotation (clockwise on screen) of the corner offsets.
	ex := math.Abs(halfW*cos) + math.Abs(halfH*sin)
	ey := math.Abs(halfW*sin) + math.Abs(halfH*cos)
	return image.Rect(
		int(math.Floor(cx-ex))-1,
		int(math.Floor(cy-ey))-1,
		int(math.Ceil(cx+ex))+1,
		int(math.Ceil(cy+ey))+1,
	)
}

// sampleBilinear interpolates the four overlay pixels around (x, y),
// clamping at the edges. Colors are interpolated premultiplied so that
// transparent neighbours do not darken the result; the returned color is
// straight (non-premultiplied) with all channels in 0..255.
func sampleBilinear(m *image.NRGBA, x, y float64) (r, g, b, a float64) {
	maxX := m.Rect.Dx() - 1
	maxY := m.Rect.Dy() - 1

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)
	x0 = clampInt(x0, 0, maxX)
	y0 = clampInt(y0, 0, maxY)
	x1 := clampInt(x0+1, 0, maxX)
	y1 := clampInt(y0+1, 0, maxY)

	weights := [4]float64{(1 - fx) * (1 - fy), fx * (1 - fy), (1 - fx) * fy, fx * fy}
	points := [4][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}}

	var pr, pg, pb float64
	for i, p := range points {
		wgt := weights[i]
		if wgt == 0 {
			continue
		}
		o := p[1]*m.Stride + p[0]*4
		pa := float64(m.Pix[o+3])
		pr += float64(m.Pix[o]) * pa * wgt
		pg += float64(m.Pix[o+1]) * pa * wgt
		pb += float64(m.Pix[o+2]) * pa * wgt
		a += pa * wgt
	}
	if a <= 0 {
		return 0, 0, 0, 0
	}
	return pr / a, pg / a, pb / a, a
}

// blendOver applies alpha-over of a straight color onto dst at (x, y):
//
//	rgb = base*(1-k) + over*k,  alpha = baseA*(1-k) + overA,  k = overA/255
func blendOver(dst *image.NRGBA, x, y int, r, g, b, a float64) {
	o := dst.PixOffset(x, y)
	k := a / 255
	p := dst.Pix[o : o+4 : o+4]
	p[0] = toUint8(float64(p[0])*(1-k) + r*k)
	p[1] = toUint8(float64(p[1])*(1-k) + g*k)
	p[2] = toUint8(float64(p[2])*(1-k) + b*k)
	p[3] = toUint8(float64(p[3])*(1-k) + a)
}

func toUint8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
