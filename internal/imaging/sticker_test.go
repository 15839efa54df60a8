package imaging

import (
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	red   = color.NRGBA{255, 0, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
)

// halves creates a w x h image, red on the left half and blue on the right.
func halves(w, h int) *image.NRGBA {
	img := solid(w, h, red)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			img.SetNRGBA(x, y, blue)
		}
	}
	return img
}

func TestApplyStickers_Identity(t *testing.T) {
	base := pngData(t, solid(4, 4, red))
	sticker := Sticker{Data: pngBase64(t, solid(4, 4, blue)), Width: 4, Height: 4}

	out, err := ApplyStickers(base, []Sticker{sticker})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Width)
	assert.Equal(t, 4, out.Height)
	assert.Equal(t, FormatPNG, out.Format)
	assert.Equal(t, base.Path, out.Path)

	img := decoded(t, out)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, blue, nrgbaAt(img, x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestApplyStickers_Placement(t *testing.T) {
	base := pngData(t, solid(8, 8, white))
	sticker := Sticker{Data: pngBase64(t, solid(2, 2, red)), X: 3, Y: 5, Width: 2, Height: 2}

	out, err := ApplyStickers(base, []Sticker{sticker})
	require.NoError(t, err)

	img := decoded(t, out)
	assert.Equal(t, red, nrgbaAt(img, 3, 5))
	assert.Equal(t, red, nrgbaAt(img, 4, 6))
	assert.Equal(t, white, nrgbaAt(img, 2, 5))
	assert.Equal(t, white, nrgbaAt(img, 5, 5))
	assert.Equal(t, white, nrgbaAt(img, 3, 4))
	assert.Equal(t, white, nrgbaAt(img, 0, 0))
}

func TestApplyStickers_Rotation(t *testing.T) {
	base := pngData(t, solid(8, 8, white))
	data := pngBase64(t, halves(4, 4))

	// Box (2,2)-(6,6), center (4,4).
	flat, err := ApplyStickers(base, []Sticker{{Data: data, X: 2, Y: 2, Width: 4, Height: 4}})
	require.NoError(t, err)
	img := decoded(t, flat)
	assert.Equal(t, red, nrgbaAt(img, 3, 4))
	assert.Equal(t, blue, nrgbaAt(img, 5, 4))

	// A half turn swaps the halves.
	turned, err := ApplyStickers(base, []Sticker{{Data: data, X: 2, Y: 2, Width: 4, Height: 4, Rotation: 180}})
	require.NoError(t, err)
	img = decoded(t, turned)
	assert.Equal(t, blue, nrgbaAt(img, 3, 4))
	assert.Equal(t, red, nrgbaAt(img, 5, 4))

	// A clockwise quarter turn puts the left half on top.
	quarter, err := ApplyStickers(base, []Sticker{{Data: data, X: 2, Y: 2, Width: 4, Height: 4, Rotation: 90}})
	require.NoError(t, err)
	img = decoded(t, quarter)
	assert.Equal(t, red, nrgbaAt(img, 4, 3))
	assert.Equal(t, blue, nrgbaAt(img, 4, 5))

	// At 45 degrees pixels fall between source texels and are interpolated.
	eighth, err := ApplyStickers(base, []Sticker{{Data: data, X: 2, Y: 2, Width: 4, Height: 4, Rotation: 45}})
	require.NoError(t, err)
	assert.Equal(t, 8, eighth.Width)
	assert.Equal(t, 8, eighth.Height)
	img = decoded(t, eighth)
	assert.Equal(t, color.NRGBA{180, 0, 75, 255}, nrgbaAt(img, 3, 4))
	assert.Equal(t, white, nrgbaAt(img, 0, 0))
	assert.Equal(t, white, nrgbaAt(img, 7, 7))
}

func TestSampleBilinear(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.SetNRGBA(0, 0, color.NRGBA{200, 0, 0, 255})
	m.SetNRGBA(1, 0, color.NRGBA{0, 0, 100, 255})

	r, g, b, a := sampleBilinear(m, 0.25, 0)
	assert.InDelta(t, 150, r, 1e-9)
	assert.InDelta(t, 0, g, 1e-9)
	assert.InDelta(t, 25, b, 1e-9)
	assert.InDelta(t, 255, a, 1e-9)

	// A transparent neighbour lowers alpha but not the color.
	m.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 0})
	r, _, _, a = sampleBilinear(m, 0.5, 0)
	assert.InDelta(t, 200, r, 1e-9)
	assert.InDelta(t, 127.5, a, 1e-9)
}

func TestApplyStickers_Blending(t *testing.T) {
	base := pngData(t, solid(2, 2, white))

	half := Sticker{Data: pngBase64(t, solid(2, 2, color.NRGBA{255, 0, 0, 128})), Width: 2, Height: 2}
	out, err := ApplyStickers(base, []Sticker{half})
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 127, 127, 255}, nrgbaAt(decoded(t, out), 0, 0))

	transparent := Sticker{Data: pngBase64(t, solid(2, 2, color.NRGBA{0, 0, 0, 0})), Width: 2, Height: 2}
	out, err = ApplyStickers(base, []Sticker{transparent})
	require.NoError(t, err)
	assert.Equal(t, white, nrgbaAt(decoded(t, out), 1, 1))
	assert.False(t, out.HasAlpha)
}

func TestApplyStickers_Order(t *testing.T) {
	base := pngData(t, solid(2, 2, white))
	first := Sticker{Data: pngBase64(t, solid(2, 2, red)), Width: 2, Height: 2}
	second := Sticker{Data: pngBase64(t, solid(2, 2, blue)), Width: 2, Height: 2}

	out, err := ApplyStickers(base, []Sticker{first, second})
	require.NoError(t, err)
	assert.Equal(t, blue, nrgbaAt(decoded(t, out), 0, 0))
}

func TestApplyStickers_OutOfBounds(t *testing.T) {
	base := pngData(t, solid(4, 4, white))
	data := pngBase64(t, solid(4, 4, red))

	// Box (-2,-2)-(2,2) only overlaps the top-left corner.
	out, err := ApplyStickers(base, []Sticker{{Data: data, X: -2, Y: -2, Width: 4, Height: 4}})
	require.NoError(t, err)
	img := decoded(t, out)
	assert.Equal(t, red, nrgbaAt(img, 0, 0))
	assert.Equal(t, red, nrgbaAt(img, 1, 1))
	assert.Equal(t, white, nrgbaAt(img, 2, 2))
	assert.Equal(t, white, nrgbaAt(img, 3, 0))

	// Entirely outside is a no-op, not an error.
	out, err = ApplyStickers(base, []Sticker{{Data: data, X: 100, Y: 100, Width: 4, Height: 4}})
	require.NoError(t, err)
	assert.Equal(t, white, nrgbaAt(decoded(t, out), 3, 3))
}

func TestApplyStickers_Errors(t *testing.T) {
	base := pngData(t, solid(4, 4, white))
	good := pngBase64(t, solid(2, 2, red))

	tests := []struct {
		name     string
		img      ImageData
		stickers []Sticker
		kind     error
		contains string
	}{
		{"no stickers", base, nil, ErrInvalidParameters, "no stickers"},
		{"zero width", base, []Sticker{{Data: good, Width: 0, Height: 2}}, ErrInvalidParameters, "sticker 0"},
		{"negative height", base, []Sticker{{Data: good, Width: 2, Height: 2}, {Data: good, Width: 2, Height: -1}}, ErrInvalidParameters, "sticker 1"},
		{"bad base64", base, []Sticker{{Data: "***", Width: 2, Height: 2}}, ErrInvalidImageData, "sticker 0"},
		{"not an image", base, []Sticker{{Data: "aGVsbG8=", Width: 2, Height: 2}}, ErrInvalidImageData, "sticker 0"},
		{"svg base", ImageData{Format: FormatSVG, Data: "PHN2Zy8+"}, []Sticker{{Data: good, Width: 2, Height: 2}}, ErrUnsupportedFormat, "SVG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyStickers(tt.img, tt.stickers)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestApplyStickers_CorruptStickerKeepsCodecKind(t *testing.T) {
	base := pngData(t, solid(4, 4, white))
	full, err := base64.StdEncoding.DecodeString(pngBase64(t, solid(8, 8, red)))
	require.NoError(t, err)
	truncated := base64.StdEncoding.EncodeToString(full[:len(full)/2])

	_, err = ApplyStickers(base, []Sticker{{Data: truncated, Width: 2, Height: 2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrImage), "got %v", err)
	assert.False(t, errors.Is(err, ErrInvalidImageData), "got %v", err)
	assert.Contains(t, err.Error(), "sticker 0")
}
