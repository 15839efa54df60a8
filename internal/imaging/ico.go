package imaging

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ICO container support. Entries may carry either a PNG stream or a
// BITMAPINFOHEADER DIB (32 or 24 bits per pixel). Encoding always writes a
// single PNG entry.

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	icoMaxSide    = 256
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func init() {
	image.RegisterFormat("ico", "\x00\x00\x01\x00", decodeICO, decodeICOConfig)
}

type icoEntry struct {
	width, height int
	size, offset  uint32
}

func readICOEntries(data []byte) ([]icoEntry, error) {
	if len(data) < icoHeaderSize {
		return nil, io.ErrUnexpectedEOF
	}
	if binary.LittleEndian.Uint16(data[0:]) != 0 || binary.LittleEndian.Uint16(data[2:]) != 1 {
		return nil, image.ErrFormat
	}
	count := int(binary.LittleEndian.Uint16(data[4:]))
	if count == 0 {
		return nil, fmt.Errorf("ico: no images in directory")
	}
	if len(data) < icoHeaderSize+count*icoEntrySize {
		return nil, io.ErrUnexpectedEOF
	}

	entries := make([]icoEntry, count)
	for i := range entries {
		e := data[icoHeaderSize+i*icoEntrySize:]
		w, h := int(e[0]), int(e[1])
		if w == 0 {
			w = icoMaxSide
		}
		if h == 0 {
			h = icoMaxSide
		}
		entries[i] = icoEntry{
			width:  w,
			height: h,
			size:   binary.LittleEndian.Uint32(e[8:]),
			offset: binary.LittleEndian.Uint32(e[12:]),
		}
	}
	return entries, nil
}

// largestEntry picks the entry with the most pixels.
func largestEntry(entries []icoEntry) icoEntry {
	best := entries[0]
	for _, e := range entries[1:] {
		if e.width*e.height > best.width*best.height {
			best = e
		}
	}
	return best
}

func readAllICO(r io.Reader) ([]byte, icoEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, icoEntry{}, err
	}
	entries, err := readICOEntries(data)
	if err != nil {
		return nil, icoEntry{}, err
	}
	e := largestEntry(entries)
	end := uint64(e.offset) + uint64(e.size)
	if end > uint64(len(data)) {
		return nil, icoEntry{}, io.ErrUnexpectedEOF
	}
	return data[e.offset:end], e, nil
}

func decodeICOConfig(r io.Reader) (image.Config, error) {
	_, e, err := readAllICO(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: e.width, Height: e.height}, nil
}

func decodeICO(r io.Reader) (image.Image, error) {
	payload, _, err := readAllICO(r)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(payload, pngSignature) {
		return png.Decode(bytes.NewReader(payload))
	}
	return decodeICODIB(payload)
}

// decodeICODIB decodes a headerless BMP as stored in ICO entries: the
// recorded height covers both the XOR bitmap and the AND mask.
func decodeICODIB(b []byte) (image.Image, error) {
	if len(b) < 40 {
		return nil, io.ErrUnexpectedEOF
	}
	headerSize := int(binary.LittleEndian.Uint32(b[0:]))
	width := int(int32(binary.LittleEndian.Uint32(b[4:])))
	height := int(int32(binary.LittleEndian.Uint32(b[8:]))) / 2
	bpp := int(binary.LittleEndian.Uint16(b[14:]))
	if width <= 0 || height <= 0 || headerSize < 40 || headerSize > len(b) {
		return nil, fmt.Errorf("ico: invalid bitmap header")
	}
	if bpp != 32 && bpp != 24 {
		return nil, fmt.Errorf("ico: unsupported bitmap depth %d", bpp)
	}

	stride := ((width*bpp + 31) / 32) * 4
	pixels := b[headerSize:]
	if len(pixels) < stride*height {
		return nil, io.ErrUnexpectedEOF
	}
	maskStride := ((width + 31) / 32) * 4
	mask := pixels[stride*height:]
	hasMask := bpp == 24 && len(mask) >= maskStride*height

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	step := bpp / 8
	for y := 0; y < height; y++ {
		row := pixels[(height-1-y)*stride:]
		for x := 0; x < width; x++ {
			p := row[x*step:]
			a := uint8(0xff)
			if bpp == 32 {
				a = p[3]
			} else if hasMask {
				m := mask[(height-1-y)*maskStride+x/8]
				if m&(0x80>>uint(x%8)) != 0 {
					a = 0
				}
			}
			img.SetNRGBA(x, y, color.NRGBA{R: p[2], G: p[1], B: p[0], A: a})
		}
	}
	return img, nil
}

func encodeICO(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Dx() > icoMaxSide || b.Dy() > icoMaxSide {
		return newError(ErrImage, nil, "ico images are limited to %dx%d, got %dx%d",
			icoMaxSide, icoMaxSide, b.Dx(), b.Dy())
	}

	var payload bytes.Buffer
	if err := png.Encode(&payload, img); err != nil {
		return err
	}

	header := make([]byte, icoHeaderSize+icoEntrySize)
	binary.LittleEndian.PutUint16(header[2:], 1)
	binary.LittleEndian.PutUint16(header[4:], 1)
	entry := header[icoHeaderSize:]
	entry[0] = byte(b.Dx() % icoMaxSide) // 0 means 256
	entry[1] = byte(b.Dy() % icoMaxSide)
	binary.LittleEndian.PutUint16(entry[4:], 1)
	binary.LittleEndian.PutUint16(entry[6:], 32)
	binary.LittleEndian.PutUint32(entry[8:], uint32(payload.Len()))
	binary.LittleEndian.PutUint32(entry[12:], uint32(len(header)))

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := payload.WriteTo(w)
	return err
}
