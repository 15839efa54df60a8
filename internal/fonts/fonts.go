package fonts

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// ErrNotFound is returned by a Provider that has no font to offer.
var ErrNotFound = errors.New("no usable font found")

// Font draws a single line of text.
type Font interface {
	// Name identifies the font, e.g. "Go Regular" or a file base name.
	Name() string

	// Covers reports whether every rune of text has a glyph in this font.
	Covers(text string) bool

	// Draw renders text onto dst with the top-left of its line box at at.
	// size is the pixel size of the em square. Pixels outside dst are
	// clipped.
	Draw(dst draw.Image, at image.Point, size float64, c color.Color, text string)
}

// Provider resolves a font from a list of preferred family names. Names are
// hints: a provider may return any font it has when none of them match.
type Provider interface {
	Load(preferred []string) (Font, error)
}

// CoverageProvider is implemented by providers that can choose a font for
// the text it will draw.
type CoverageProvider interface {
	Provider
	LoadFor(preferred []string, text string) (Font, error)
}

// DefaultPreferred is the family list used when a caller has no preference.
var DefaultPreferred = []string{"Arial", "Helvetica", "DejaVuSans", "LiberationSans", "Go"}

// Load resolves a font for text from p, using LoadFor when p supports it.
func Load(p Provider, preferred []string, text string) (Font, error) {
	if cp, ok := p.(CoverageProvider); ok {
		return cp.LoadFor(preferred, text)
	}
	return p.Load(preferred)
}
