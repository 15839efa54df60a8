package fonts

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphFor(t *testing.T) {
	assert.Equal(t, glyphs['A'], GlyphFor('A'))
	assert.Equal(t, glyphs['A'], GlyphFor('a'), "lower case uses the upper-case glyph")
	assert.Equal(t, glyphs['7'], GlyphFor('7'))

	for _, r := range []rune{'日', 'の', 'カ', '한'} {
		assert.Equal(t, widePlaceholder, GlyphFor(r), "%q", r)
	}
	for _, r := range []rune{'é', '€', 'Ω'} {
		assert.Equal(t, boxPlaceholder, GlyphFor(r), "%q", r)
	}
}

func TestBitmap_Covers(t *testing.T) {
	f, err := Bitmap{}.Load(nil)
	require.NoError(t, err)

	assert.True(t, f.Covers("Hello, World!"))
	assert.True(t, f.Covers("line\n"), "control runes are ignored")
	assert.False(t, f.Covers("naïve"))
	assert.False(t, f.Covers("日本"))
}

func TestBitmap_Draw(t *testing.T) {
	f, err := Bitmap{}.Load([]string{"anything"})
	require.NoError(t, err)

	ink := color.NRGBA{0, 0, 0, 255}
	dst := image.NewNRGBA(image.Rect(0, 0, 30, 20))
	f.Draw(dst, image.Pt(1, 2), 16, ink, "L")

	// Size 16 draws at scale 2: the stem of 'L' is two pixels wide.
	assert.Equal(t, ink, dst.NRGBAAt(1, 2))
	assert.Equal(t, ink, dst.NRGBAAt(2, 2))
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(3, 2))
	// Bottom bar spans 5 columns of 2 pixels.
	assert.Equal(t, ink, dst.NRGBAAt(10, 15))
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(11, 15))
}

func TestBitmap_DrawClips(t *testing.T) {
	f, _ := Bitmap{}.Load(nil)
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	assert.NotPanics(t, func() {
		f.Draw(dst, image.Pt(-3, -3), 8, color.Black, "WIDE TEXT")
		f.Draw(dst, image.Pt(100, 100), 8, color.Black, "X")
	})
}
