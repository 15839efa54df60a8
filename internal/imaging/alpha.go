package imaging

import (
	"image"
)

// HasAlpha reports whether any pixel of img is less than fully opaque.
//
// Pixel types that cannot carry transparency (gray, YCbCr, CMYK) return false
// without scanning. Every other type is scanned in full: a single
// anti-aliased edge pixel is enough to make the result true.
//
// Full opacity is 0xff for 8-bit storage and 0xffff for 16-bit storage.
func HasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	case *image.NRGBA:
		return anyAlphaBelow8(m.Pix, m.Stride, m.Rect, 4, 3)
	case *image.RGBA:
		return anyAlphaBelow8(m.Pix, m.Stride, m.Rect, 4, 3)
	case *image.NYCbCrA:
		for _, a := range m.A {
			if a < 0xff {
				return true
			}
		}
		return false
	case *image.Alpha:
		return anyAlphaBelow8(m.Pix, m.Stride, m.Rect, 1, 0)
	case *image.NRGBA64:
		return anyAlphaBelow16(m.Pix, m.Stride, m.Rect, 8, 6)
	case *image.RGBA64:
		return anyAlphaBelow16(m.Pix, m.Stride, m.Rect, 8, 6)
	case *image.Alpha16:
		return anyAlphaBelow16(m.Pix, m.Stride, m.Rect, 2, 0)
	case *image.Paletted:
		return palettedHasAlpha(m)
	}
	return genericHasAlpha(img)
}

// anyAlphaBelow8 scans 8-bit storage where the alpha byte sits at offset
// within each pixel of size bpp.
func anyAlphaBelow8(pix []uint8, stride int, r image.Rectangle, bpp, offset int) bool {
	w := r.Dx()
	for y := 0; y < r.Dy(); y++ {
		row := pix[y*stride : y*stride+w*bpp]
		for i := offset; i < len(row); i += bpp {
			if row[i] < 0xff {
				return true
			}
		}
	}
	return false
}

// anyAlphaBelow16 scans big-endian 16-bit storage.
func anyAlphaBelow16(pix []uint8, stride int, r image.Rectangle, bpp, offset int) bool {
	w := r.Dx()
	for y := 0; y < r.Dy(); y++ {
		row := pix[y*stride : y*stride+w*bpp]
		for i := offset; i < len(row); i += bpp {
			if uint16(row[i])<<8|uint16(row[i+1]) < 0xffff {
				return true
			}
		}
	}
	return false
}

// palettedHasAlpha checks only the palette entries that are actually used.
func palettedHasAlpha(m *image.Paletted) bool {
	translucent := make([]bool, len(m.Palette))
	found := false
	for i, c := range m.Palette {
		if _, _, _, a := c.RGBA(); a < 0xffff {
			translucent[i] = true
			found = true
		}
	}
	if !found {
		return false
	}
	w := m.Rect.Dx()
	for y := 0; y < m.Rect.Dy(); y++ {
		for _, idx := range m.Pix[y*m.Stride : y*m.Stride+w] {
			if int(idx) < len(translucent) && translucent[idx] {
				return true
			}
		}
	}
	return false
}

func genericHasAlpha(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a < 0xffff {
				return true
			}
		}
	}
	return false
}
