package imaging

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an image container format.
//
// The set is closed: every switch over Format in this package lists all
// enumerators, and AllFormats is checked against those switches in tests.
type Format int

const (
	FormatPNG Format = iota + 1
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatWEBP
	FormatSVG
	FormatTIFF
	FormatICO
	FormatHEIC
	FormatAVIF
)

// AllFormats returns every known format in declaration order.
func AllFormats() []Format {
	return []Format{
		FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatWEBP,
		FormatSVG, FormatTIFF, FormatICO, FormatHEIC, FormatAVIF,
	}
}

// String returns the upper-case name used on the wire ("PNG", "JPEG", ...).
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatGIF:
		return "GIF"
	case FormatBMP:
		return "BMP"
	case FormatWEBP:
		return "WEBP"
	case FormatSVG:
		return "SVG"
	case FormatTIFF:
		return "TIFF"
	case FormatICO:
		return "ICO"
	case FormatHEIC:
		return "HEIC"
	case FormatAVIF:
		return "AVIF"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the canonical file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatJPEG:
		return ".jpg"
	case FormatGIF:
		return ".gif"
	case FormatBMP:
		return ".bmp"
	case FormatWEBP:
		return ".webp"
	case FormatSVG:
		return ".svg"
	case FormatTIFF:
		return ".tiff"
	case FormatICO:
		return ".ico"
	case FormatHEIC:
		return ".heic"
	case FormatAVIF:
		return ".avif"
	}
	return ""
}

// MimeType returns the IANA media type for the format.
func (f Format) MimeType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatGIF:
		return "image/gif"
	case FormatBMP:
		return "image/bmp"
	case FormatWEBP:
		return "image/webp"
	case FormatSVG:
		return "image/svg+xml"
	case FormatTIFF:
		return "image/tiff"
	case FormatICO:
		return "image/x-icon"
	case FormatHEIC:
		return "image/heic"
	case FormatAVIF:
		return "image/avif"
	}
	return "application/octet-stream"
}

// Transformable reports whether the engine has both a decode and an encode
// path for the format. SVG and HEIC are recognized but never transformed.
func (f Format) Transformable() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatWEBP,
		FormatTIFF, FormatICO, FormatAVIF:
		return true
	case FormatSVG, FormatHEIC:
		return false
	}
	return false
}

// ParseFormat parses a format name case-insensitively. "JPG" and "TIF" are
// accepted as aliases, with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "PNG":
		return FormatPNG, nil
	case "JPEG", "JPG":
		return FormatJPEG, nil
	case "GIF":
		return FormatGIF, nil
	case "BMP":
		return FormatBMP, nil
	case "WEBP":
		return FormatWEBP, nil
	case "SVG":
		return FormatSVG, nil
	case "TIFF", "TIF":
		return FormatTIFF, nil
	case "ICO":
		return FormatICO, nil
	case "HEIC", "HEIF":
		return FormatHEIC, nil
	case "AVIF":
		return FormatAVIF, nil
	}
	return 0, unsupportedFormat("%s", s)
}

// FormatFromPath detects the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, false
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return 0, false
	}
	return f, true
}

// MarshalJSON encodes the format as its upper-case name.
func (f Format) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts any name understood by ParseFormat.
func (f *Format) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
