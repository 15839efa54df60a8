package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

// solid creates a w x h image filled with c.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// pattern creates a w x h image with a distinct color per pixel.
func pattern(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 7), uint8(y * 11), uint8((x + y) * 3), 255})
		}
	}
	return img
}

func pngBase64(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// pngData wraps img as a PNG ImageData value.
func pngData(t *testing.T, img image.Image) ImageData {
	t.Helper()
	b := img.Bounds()
	return ImageData{
		Path:     "/images/test.png",
		Width:    b.Dx(),
		Height:   b.Dy(),
		Format:   FormatPNG,
		Data:     pngBase64(t, img),
		HasAlpha: HasAlpha(img),
	}
}

// decoded decodes the payload of d.
func decoded(t *testing.T, d ImageData) image.Image {
	t.Helper()
	img, err := decodeImageData(d)
	require.NoError(t, err)
	return img
}

// nrgbaAt returns the non-premultiplied color at (x, y).
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func intPtr(v int) *int { return &v }
