package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textImage renders text with basicfont, scaled up so Tesseract has enough
// pixels per glyph.
func textImage(text string, scale int) *image.RGBA {
	w := len(text)*7 + 40
	h := 40
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(20), Y: fixed.I(25)},
	}
	d.DrawString(text)

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		for x := 0; x < w*scale; x++ {
			img.Set(x, y, small.At(x/scale, y/scale))
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// skipUnavailable skips when Tesseract or its language data is missing.
func skipUnavailable(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
}

func TestRecognize(t *testing.T) {
	data := encodePNG(t, textImage("HELLO", 4))

	result, err := Recognize(data, Options{})
	skipUnavailable(t, err)

	require.NotNil(t, result)
	assert.NotNil(t, result.Words)
	for _, w := range result.Words {
		assert.NotEmpty(t, w.Text)
		assert.GreaterOrEqual(t, w.Confidence, 0.0)
		assert.LessOrEqual(t, w.Confidence, 1.0)
	}
}

func TestRecognize_EmptyData(t *testing.T) {
	_, err := Recognize(nil, Options{})
	assert.Error(t, err)
}

func TestRecognizeRegion_OffsetsBounds(t *testing.T) {
	inner := textImage("WORLD", 3)
	img := image.NewRGBA(image.Rect(0, 0, inner.Rect.Dx()+100, inner.Rect.Dy()+100))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	region := inner.Rect.Add(image.Pt(50, 50))
	draw.Draw(img, region, inner, image.Point{}, draw.Src)

	result, err := RecognizeRegion(img, region, Options{Language: DefaultLanguage})
	skipUnavailable(t, err)

	for _, w := range result.Words {
		assert.GreaterOrEqual(t, w.Bounds.X1, 50, "word %q", w.Text)
		assert.GreaterOrEqual(t, w.Bounds.Y1, 50, "word %q", w.Text)
	}
}

func TestRecognizeRegion_OutsideImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	_, err := RecognizeRegion(img, image.Rect(20, 20, 30, 30), Options{})
	assert.Error(t, err)
}
