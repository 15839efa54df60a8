package fonts

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// outline is a TrueType/OpenType font parsed with x/image/font/opentype.
// The parsed font is immutable; a face is created per Draw since faces
// carry scratch buffers and are not safe for concurrent use.
type outline struct {
	name string
	f    *opentype.Font
}

// NewOutline wraps a parsed font.
func NewOutline(name string, f *opentype.Font) Font {
	return &outline{name: name, f: f}
}

// ParseOutline parses TrueType or OpenType bytes.
func ParseOutline(name string, data []byte) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return NewOutline(name, f), nil
}

func (o *outline) Name() string { return o.name }

func (o *outline) Covers(text string) bool {
	var buf sfnt.Buffer
	for _, r := range text {
		if unicode.IsControl(r) {
			continue
		}
		idx, err := o.f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			return false
		}
	}
	return true
}

func (o *outline) Draw(dst draw.Image, at image.Point, size float64, c color.Color, text string) {
	face, err := opentype.NewFace(o.f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Printf("Failed to create face for %s at size %g: %v", o.name, size, err)
		return
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(at.X), Y: fixed.I(at.Y) + face.Metrics().Ascent},
	}
	d.DrawString(text)
}
