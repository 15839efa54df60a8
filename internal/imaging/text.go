package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-edit-mcp/internal/fonts"
)

// TextOverlay is a single line of text drawn onto an image.
type TextOverlay struct {
	Text string `json:"text"`

	// X, Y locate the top-left corner of the text's line box.
	X int `json:"x"`
	Y int `json:"y"`

	// FontSize is the em size in pixels.
	FontSize float64 `json:"fontSize"`

	// Color is "#RRGGBB".
	Color string `json:"color"`

	// Rotation is accepted for compatibility but not applied.
	Rotation float64 `json:"rotation"`
}

// MaxFontSize is the largest accepted TextOverlay.FontSize, in pixels.
const MaxFontSize = 2048

// Rasterizer draws text overlays with fonts from a Provider.
type Rasterizer struct {
	provider  fonts.Provider
	preferred []string
}

// NewRasterizer creates a rasterizer that resolves fonts through p. A nil p
// uses the bitmap table only.
func NewRasterizer(p fonts.Provider) *Rasterizer {
	if p == nil {
		p = fonts.Bitmap{}
	}
	return &Rasterizer{provider: p, preferred: fonts.DefaultPreferred}
}

var defaultRasterizer = NewRasterizer(fonts.Default())

// ApplyTexts draws texts with the default rasterizer, which searches the
// system font directories, then the bundled Go fonts, then the bitmap table.
func ApplyTexts(img ImageData, texts []TextOverlay) (ImageData, error) {
	return defaultRasterizer.Apply(img, texts)
}

// Apply draws texts onto img in order and returns the new image in the
// source format.
//
// Entries with empty Text are skipped. Every other entry is validated before
// the image is decoded: FontSize must be in (0, MaxFontSize] and Color
// must be "#RRGGBB". Each entry gets the first font that covers all of its runes;
// when none does the bitmap table draws placeholders for the missing glyphs.
// Text is always drawn unrotated.
func (r *Rasterizer) Apply(img ImageData, texts []TextOverlay) (ImageData, error) {
	if len(texts) == 0 {
		return ImageData{}, invalidParams("no text overlays to apply")
	}

	colors := make([]color.Color, len(texts))
	for i, t := range texts {
		if t.Text == "" {
			continue
		}
		if !(t.FontSize > 0) {
			return ImageData{}, invalidParams("text %d: font size must be positive, got %g", i, t.FontSize)
		}
		if t.FontSize > MaxFontSize {
			return ImageData{}, invalidParams("text %d: font size must be at most %d, got %g", i, MaxFontSize, t.FontSize)
		}
		c, err := ParseHexColor(t.Color)
		if err != nil {
			return ImageData{}, invalidParams("text %d: invalid color %q", i, t.Color)
		}
		colors[i] = c
	}
	if err := requireTransformable(img); err != nil {
		return ImageData{}, err
	}

	src, err := decodeImageData(img)
	if err != nil {
		return ImageData{}, err
	}
	canvas := clone.AsRGBA(src)

	for i, t := range texts {
		if t.Text == "" {
			continue
		}
		f, err := fonts.Load(r.provider, r.preferred, t.Text)
		if err != nil {
			f, _ = fonts.Bitmap{}.Load(nil)
		}
		// TODO: honor t.Rotation once overlay rotation semantics are settled with the viewer.
		f.Draw(canvas, image.Pt(canvas.Rect.Min.X+t.X, canvas.Rect.Min.Y+t.Y), t.FontSize, colors[i], t.Text)
	}

	return newImageData(img.Path, canvas, img.Format, nil)
}

// ParseHexColor parses an opaque "#RRGGBB" color. Short forms and alpha
// suffixes are rejected.
func ParseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, invalidParams("color must be #RRGGBB, got %q", s)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return color.NRGBA{}, invalidParams("color must be #RRGGBB, got %q", s)
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, newError(ErrInvalidParameters, err, "color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
