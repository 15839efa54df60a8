// Package server implements the MCP (Model Context Protocol) server for image editing.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Image Values
//
// Edit tools do not work on files. They take an image value (path, width,
// height, format, base64 data, hasAlpha) and return a new one, leaving the
// input untouched. image_load produces the first value from a file and
// image_save writes one back.
//
// # Available Tools
//
// Files:
//   - image_load, image_save, image_list_directory
//
// Edits:
//   - image_resize, image_crop, image_crop_quadrant, image_rotate90
//   - image_convert: re-encode to another format
//   - image_set_background: flatten transparency onto a color
//   - image_apply_stickers: composite rotated images
//   - image_apply_texts: draw text
//
// OCR:
//   - image_ocr: Tesseract text extraction, whole image or a region
//
// Favorites:
//   - favorites_add, favorites_remove, favorites_check, favorites_list, favorites_tags
//
// # Error Handling
//
// Tool failures are JSON-RPC errors with code -32000; data holds the error
// string, whose prefix names its kind ("invalid parameters: ...",
// "unsupported image format: ...", "file not found: ...").
//
// # Usage
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv, err := server.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
