package fonts

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"unicode"
)

// Bitmap is the last-resort provider: a fixed 5x7 monochrome glyph table.
// It never fails. Output is crude and only approximates the requested size.
type Bitmap struct{}

// Load always returns the bitmap font.
func (Bitmap) Load([]string) (Font, error) {
	return bitmapFont{}, nil
}

const (
	glyphW = 5
	glyphH = 7
)

// Rows are top to bottom, '1' is ink.
var glyphs = map[rune][glyphH]string{
	'A': {"01110", "10001", "10001", "11111", "10001", "10001", "10001"},
	'B': {"11110", "10001", "10001", "11110", "10001", "10001", "11110"},
	'C': {"01110", "10001", "10000", "10000", "10000", "10001", "01110"},
	'D': {"11110", "10001", "10001", "10001", "10001", "10001", "11110"},
	'E': {"11111", "10000", "10000", "11110", "10000", "10000", "11111"},
	'F': {"11111", "10000", "10000", "11110", "10000", "10000", "10000"},
	'G': {"01110", "10001", "10000", "10111", "10001", "10001", "01111"},
	'H': {"10001", "10001", "10001", "11111", "10001", "10001", "10001"},
	'I': {"01110", "00100", "00100", "00100", "00100", "00100", "01110"},
	'J': {"00111", "00010", "00010", "00010", "00010", "10010", "01100"},
	'K': {"10001", "10010", "10100", "11000", "10100", "10010", "10001"},
	'L': {"10000", "10000", "10000", "10000", "10000", "10000", "11111"},
	'M': {"10001", "11011", "10101", "10101", "10001", "10001", "10001"},
	'N': {"10001", "10001", "11001", "10101", "10011", "10001", "10001"},
	'O': {"01110", "10001", "10001", "10001", "10001", "10001", "01110"},
	'P': {"11110", "10001", "10001", "11110", "10000", "10000", "10000"},
	'Q': {"01110", "10001", "10001", "10001", "10101", "10010", "01101"},
	'R': {"11110", "10001", "10001", "11110", "10100", "10010", "10001"},
	'S': {"01111", "10000", "10000", "01110", "00001", "00001", "11110"},
	'T': {"11111", "00100", "00100", "00100", "00100", "00100", "00100"},
	'U': {"10001", "10001", "10001", "10001", "10001", "10001", "01110"},
	'V': {"10001", "10001", "10001", "10001", "10001", "01010", "00100"},
	'W': {"10001", "10001", "10001", "10101", "10101", "10101", "01010"},
	'X': {"10001", "10001", "01010", "00100", "01010", "10001", "10001"},
	'Y': {"10001", "10001", "10001", "01010", "00100", "00100", "00100"},
	'Z': {"11111", "00001", "00010", "00100", "01000", "10000", "11111"},

	'0': {"01110", "10001", "10011", "10101", "11001", "10001", "01110"},
	'1': {"00100", "01100", "00100", "00100", "00100", "00100", "01110"},
	'2': {"01110", "10001", "00001", "00010", "00100", "01000", "11111"},
	'3': {"11111", "00010", "00100", "00010", "00001", "10001", "01110"},
	'4': {"00010", "00110", "01010", "10010", "11111", "00010", "00010"},
	'5': {"11111", "10000", "11110", "00001", "00001", "10001", "01110"},
	'6': {"00110", "01000", "10000", "11110", "10001", "10001", "01110"},
	'7': {"11111", "00001", "00010", "00100", "01000", "01000", "01000"},
	'8': {"01110", "10001", "10001", "01110", "10001", "10001", "01110"},
	'9': {"01110", "10001", "10001", "01111", "00001", "00010", "01100"},

	' ':  {"00000", "00000", "00000", "00000", "00000", "00000", "00000"},
	'.':  {"00000", "00000", "00000", "00000", "00000", "01100", "01100"},
	',':  {"00000", "00000", "00000", "00000", "01100", "00100", "01000"},
	'!':  {"00100", "00100", "00100", "00100", "00100", "00000", "00100"},
	'?':  {"01110", "10001", "00001", "00010", "00100", "00000", "00100"},
	':':  {"00000", "01100", "01100", "00000", "01100", "01100", "00000"},
	';':  {"00000", "01100", "01100", "00000", "01100", "00100", "01000"},
	'\'': {"00100", "00100", "01000", "00000", "00000", "00000", "00000"},
	'"':  {"01010", "01010", "01010", "00000", "00000", "00000", "00000"},
	'-':  {"00000", "00000", "00000", "11111", "00000", "00000", "00000"},
	'+':  {"00000", "00100", "00100", "11111", "00100", "00100", "00000"},
	'=':  {"00000", "00000", "11111", "00000", "11111", "00000", "00000"},
	'_':  {"00000", "00000", "00000", "00000", "00000", "00000", "11111"},
	'/':  {"00000", "00001", "00010", "00100", "01000", "10000", "00000"},
	'(':  {"00010", "00100", "01000", "01000", "01000", "00100", "00010"},
	')':  {"01000", "00100", "00010", "00010", "00010", "00100", "01000"},
	'#':  {"01010", "01010", "11111", "01010", "11111", "01010", "01010"},
	'%':  {"11000", "11001", "00010", "00100", "01000", "10011", "00011"},
	'&':  {"01100", "10010", "10100", "01000", "10101", "10010", "01101"},
	'*':  {"00000", "00100", "10101", "01110", "10101", "00100", "00000"},
	'@':  {"01110", "10001", "00001", "01101", "10101", "10101", "01110"},
	'<':  {"00010", "00100", "01000", "10000", "01000", "00100", "00010"},
	'>':  {"01000", "00100", "00010", "00001", "00010", "00100", "01000"},
}

// Placeholders drawn for code points missing from the table.
var (
	widePlaceholder = [glyphH]string{"11111", "10101", "11111", "10101", "11111", "10101", "11111"}
	boxPlaceholder  = [glyphH]string{"11111", "10001", "10001", "10001", "10001", "10001", "11111"}
)

type bitmapFont struct{}

func (bitmapFont) Name() string { return "bitmap 5x7" }

// Covers reports whether every rune has a real glyph. Runes that would draw
// a placeholder are not covered.
func (bitmapFont) Covers(text string) bool {
	for _, r := range text {
		if unicode.IsControl(r) {
			continue
		}
		if _, ok := glyphs[unicode.ToUpper(r)]; !ok {
			return false
		}
	}
	return true
}

// Draw renders text at an integer scale of max(1, round(size/8)), advancing
// six scaled columns per rune.
func (bitmapFont) Draw(dst draw.Image, at image.Point, size float64, c color.Color, text string) {
	scale := int(math.Round(size / 8))
	if scale < 1 {
		scale = 1
	}
	pitch := (glyphW + 1) * scale
	bounds := dst.Bounds()

	cx := at.X
	for _, r := range text {
		if unicode.IsControl(r) {
			continue
		}
		g := GlyphFor(r)
		for row, line := range g {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				x0 := cx + col*scale
				y0 := at.Y + row*scale
				fill := image.Rect(x0, y0, x0+scale, y0+scale).Intersect(bounds)
				for y := fill.Min.Y; y < fill.Max.Y; y++ {
					for x := fill.Min.X; x < fill.Max.X; x++ {
						dst.Set(x, y, c)
					}
				}
			}
		}
		cx += pitch
	}
}

// GlyphFor returns the 5x7 pattern for r. Lower-case letters use the
// upper-case glyph. Han, Kana and Hangul map to a wide placeholder and every
// other unknown rune to an empty box.
func GlyphFor(r rune) [glyphH]string {
	if g, ok := glyphs[unicode.ToUpper(r)]; ok {
		return g
	}
	if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
		return widePlaceholder
	}
	return boxPlaceholder
}
