// Package imaging is an in-memory raster image editing engine.
//
// Every operation takes an ImageData value (an encoded image plus its
// dimensions, format and alpha flag) and returns a new one. The input is
// never modified: its payload is base64-decoded and image-decoded afresh on
// each call, transformed, and re-encoded in the source format (or the
// target format, for Convert).
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Rotations given in
// degrees are clockwise on screen.
//
// # Formats
//
// Format is a closed enumeration. PNG, JPEG, GIF, BMP, TIFF, WEBP, AVIF and
// ICO decode and encode. SVG and HEIC are recognized by the loader but every
// transform rejects them with ErrUnsupportedFormat. The quality option is
// honored by the JPEG encoder only.
//
// # Error Handling
//
// All errors are *Error values whose kind is one of the Err* sentinels, for
// use with errors.Is:
//
//	out, err := imaging.Convert(img, "jpeg", &imaging.ConversionOptions{Quality: &q})
//	if errors.Is(err, imaging.ErrInvalidParameters) {
//	    // bad quality
//	}
//
// Parameter validation always happens before the payload is decoded.
//
// # Thread Safety
//
// Operations are stateless and safe for concurrent use. The only shared
// state is the default Rasterizer's font cache, which is synchronized.
package imaging
