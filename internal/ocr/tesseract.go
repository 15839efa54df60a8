package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguage is used when Options.Language is empty.
const DefaultLanguage = "eng"

// Options configures a recognition run.
type Options struct {
	// Language is a Tesseract language code such as "eng" or "deu+fra".
	Language string

	// TessdataDir overrides where Tesseract looks for *.traineddata. Empty
	// uses the Tesseract default (or TESSDATA_PREFIX).
	TessdataDir string
}

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Word is a recognized word with its location and OCR confidence.
type Word struct {
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	Bounds Bounds `json:"bounds"`
}

// Result contains the text recognized in an image.
type Result struct {
	// Text is all recognized text with original spacing and newlines.
	Text string `json:"text"`

	// Words may be empty if bounding box extraction fails; Text is still set.
	Words []Word `json:"words"`
}

// Version reports the linked Tesseract version.
func Version() string {
	return gosseract.Version()
}

// Recognize runs OCR over an encoded image (PNG, JPEG, TIFF, BMP, GIF).
//
// Word bounding boxes use RIL_WORD granularity. If Tesseract cannot produce
// them the result still carries the full text with no words.
func Recognize(data []byte, opts Options) (*Result, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	client := gosseract.NewClient()
	defer client.Close()

	if opts.TessdataDir != "" {
		if err := client.SetTessdataPrefix(opts.TessdataDir); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	lang := opts.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	if err := client.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return &Result{Text: text, Words: []Word{}}, nil
	}

	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		words = append(words, Word{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}

	return &Result{Text: text, Words: words}, nil
}

// RecognizeRegion runs OCR over r of img. Word bounds are reported in img's
// coordinates, not the region's.
func RecognizeRegion(img image.Image, r image.Rectangle, opts Options) (*Result, error) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return nil, fmt.Errorf("region %v is outside the image", r)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.Crop(img, r)); err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}

	result, err := Recognize(buf.Bytes(), opts)
	if err != nil {
		return nil, err
	}

	dx := r.Min.X - img.Bounds().Min.X
	dy := r.Min.Y - img.Bounds().Min.Y
	for i := range result.Words {
		b := &result.Words[i].Bounds
		b.X1 += dx
		b.X2 += dx
		b.Y1 += dy
		b.Y2 += dy
	}
	return result, nil
}
