package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// imageSchema describes the image value every edit tool takes and returns.
func imageSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Image value as returned by image_load or any edit tool",
		"properties": map[string]interface{}{
			"path":     map[string]interface{}{"type": "string"},
			"width":    map[string]interface{}{"type": "integer"},
			"height":   map[string]interface{}{"type": "integer"},
			"format":   map[string]interface{}{"type": "string", "enum": formatNames()},
			"data":     map[string]interface{}{"type": "string", "description": "Base64-encoded image bytes"},
			"hasAlpha": map[string]interface{}{"type": "boolean"},
		},
		"required": []string{"format", "data"},
	}
}

func formatNames() []string {
	return []string{"PNG", "JPEG", "GIF", "BMP", "WEBP", "SVG", "TIFF", "ICO", "HEIC", "AVIF"}
}

func intProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

func pathProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func tagsProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": description,
	}
}

func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Files
		{
			Name:        "image_load",
			Description: "Load an image file and return it as an image value (dimensions, format, base64 data, transparency). SVG files load as a 0x0 placeholder; HEIC is not supported.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp("Absolute path to the image file"),
			}, "path"),
		},
		{
			Name:        "image_save",
			Description: "Write an image value's encoded bytes to a file. The parent directory must exist.",
			InputSchema: objectSchema(map[string]interface{}{
				"image": imageSchema(),
				"path":  pathProp("Absolute destination path"),
			}, "image", "path"),
		},
		{
			Name:        "image_list_directory",
			Description: "List the image files in a directory (non-recursive, sorted).",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp("Absolute path to the directory"),
			}, "path"),
		},

		// Edits
		{
			Name:        "image_resize",
			Description: "Resize an image with a Lanczos filter. With keep_aspect_ratio the result fits inside width x height and may be smaller in one dimension.",
			InputSchema: objectSchema(map[string]interface{}{
				"image":  imageSchema(),
				"width":  intProp("Target width in pixels (> 0)"),
				"height": intProp("Target height in pixels (> 0)"),
				"keep_aspect_ratio": map[string]interface{}{
					"type":        "boolean",
					"description": "Preserve the source aspect ratio. Default false",
					"default":     false,
				},
			}, "image", "width", "height"),
		},
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region. A region extending past the image is clamped to it.",
			InputSchema: objectSchema(map[string]interface{}{
				"image":  imageSchema(),
				"x":      intProp("Left edge X coordinate (0-based)"),
				"y":      intProp("Top edge Y coordinate (0-based)"),
				"width":  intProp("Region width (> 0)"),
				"height": intProp("Region height (> 0)"),
			}, "image", "x", "y", "width", "height"),
		},
		{
			Name:        "image_crop_quadrant",
			Description: "Crop a named region of the image (top-left, top-right, bottom-left, bottom-right, top-half, bottom-half, left-half, right-half, center).",
			InputSchema: objectSchema(map[string]interface{}{
				"image": imageSchema(),
				"region": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
					"description": "Named region to extract",
				},
			}, "image", "region"),
		},
		{
			Name:        "image_convert",
			Description: "Re-encode an image in another format. The path extension is rewritten. Quality applies to JPEG; WEBP and AVIF use encoder defaults.",
			InputSchema: objectSchema(map[string]interface{}{
				"image": imageSchema(),
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Target format (case-insensitive; JPG and TIF accepted). SVG and HEIC cannot be targets",
				},
				"quality": map[string]interface{}{
					"type":        "integer",
					"minimum":     1,
					"maximum":     100,
					"description": "Encoder quality 1-100. JPEG default 90",
				},
			}, "image", "format"),
		},
		{
			Name:        "image_rotate90",
			Description: "Rotate an image by a quarter turn. Width and height swap.",
			InputSchema: objectSchema(map[string]interface{}{
				"image": imageSchema(),
				"clockwise": map[string]interface{}{
					"type":        "boolean",
					"description": "Rotate clockwise (true) or counter-clockwise (false)",
				},
			}, "image", "clockwise"),
		},
		{
			Name:        "image_set_background",
			Description: "Flatten a transparent image onto an opaque background color. Fails if the image has no transparency.",
			InputSchema: objectSchema(map[string]interface{}{
				"image": imageSchema(),
				"r":     intProp("Red 0-255"),
				"g":     intProp("Green 0-255"),
				"b":     intProp("Blue 0-255"),
			}, "image", "r", "g", "b"),
		},
		{
			Name:        "image_apply_stickers",
			Description: "Composite sticker images onto an image, in order. Each sticker is resized to its box and rotated clockwise about the box center.",
			InputSchema: objectSchema(map[string]interface{}{
				"image": imageSchema(),
				"stickers": map[string]interface{}{
					"type": "array",
					"items": objectSchema(map[string]interface{}{
						"data":     map[string]interface{}{"type": "string", "description": "Base64-encoded sticker image"},
						"x":        intProp("Left edge of the unrotated box"),
						"y":        intProp("Top edge of the unrotated box"),
						"width":    intProp("Box width (> 0)"),
						"height":   intProp("Box height (> 0)"),
						"rotation": map[string]interface{}{"type": "number", "description": "Degrees, clockwise"},
					}, "data", "x", "y", "width", "height"),
				},
			}, "image", "stickers"),
		},
		{
			Name:        "image_apply_texts",
			Description: "Draw text overlays onto an image. Rotation is accepted but not applied.",
			InputSchema: objectSchema(map[string]interface{}{
				"image": imageSchema(),
				"texts": map[string]interface{}{
					"type": "array",
					"items": objectSchema(map[string]interface{}{
						"text":     map[string]interface{}{"type": "string"},
						"x":        intProp("Left edge of the text box"),
						"y":        intProp("Top edge of the text box"),
						"fontSize": map[string]interface{}{"type": "number", "description": "Pixel size (> 0, at most 2048)"},
						"color":    map[string]interface{}{"type": "string", "description": "#RRGGBB"},
						"rotation": map[string]interface{}{"type": "number", "description": "Ignored"},
					}, "text", "x", "y", "fontSize", "color"),
				},
			}, "image", "texts"),
		},

		// OCR
		{
			Name:        "image_ocr",
			Description: "Extract text from an image using Tesseract OCR, with word bounding boxes and confidence scores.",
			InputSchema: objectSchema(map[string]interface{}{
				"image": imageSchema(),
				"language": map[string]interface{}{
					"type":        "string",
					"description": "Tesseract language code. Defaults to the server's configured language",
				},
				"region": objectSchema(map[string]interface{}{
					"x1": map[string]interface{}{"type": "integer"},
					"y1": map[string]interface{}{"type": "integer"},
					"x2": map[string]interface{}{"type": "integer"},
					"y2": map[string]interface{}{"type": "integer"},
				}, "x1", "y1", "x2", "y2"),
			}, "image"),
		},

		// Favorites
		{
			Name:        "favorites_add",
			Description: "Mark an image path as a favorite with optional tags. Re-adding replaces the tags.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp("Image path"),
				"tags": tagsProp("Free-form tags"),
			}, "path"),
		},
		{
			Name:        "favorites_remove",
			Description: "Remove an image path from the favorites.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp("Image path"),
			}, "path"),
		},
		{
			Name:        "favorites_check",
			Description: "Check whether an image path is a favorite.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": pathProp("Image path"),
			}, "path"),
		},
		{
			Name:        "favorites_list",
			Description: "List favorites, newest first. With tags, only favorites having a tag that contains any of them (case-insensitive).",
			InputSchema: objectSchema(map[string]interface{}{
				"tags": tagsProp("Tag filters"),
			}),
		},
		{
			Name:        "favorites_tags",
			Description: "List every tag used by a favorite, sorted.",
			InputSchema: objectSchema(map[string]interface{}{}),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
