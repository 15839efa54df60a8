// Package ocr extracts text from images with Tesseract, via gosseract/v2.
//
// Images are handed to Tesseract from memory; nothing is written to disk.
//
// # Prerequisites
//
// Tesseract and its language data must be installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Additional languages use their Tesseract codes ("deu", "fra",
// "chi_sim", ...) and can be combined with "+". Options.TessdataDir points
// at a non-standard training data directory.
//
// # Performance
//
// OCR is CPU-intensive. Crop to the region of interest first where
// possible; RecognizeRegion does this and maps word bounds back to the
// source image.
package ocr
