package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
	"github.com/ironsheep/image-edit-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000
// whose data is the error string, e.g. "invalid parameters: quality
// parameter must be between 1 and 100, got 0".
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Files
	case "image_load":
		return s.handleImageLoad(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_list_directory":
		return s.handleImageListDirectory(args)

	// Edits
	case "image_resize":
		return s.handleImageResize(args)
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_crop_quadrant":
		return s.handleImageCropQuadrant(args)
	case "image_convert":
		return s.handleImageConvert(args)
	case "image_rotate90":
		return s.handleImageRotate90(args)
	case "image_set_background":
		return s.handleImageSetBackground(args)
	case "image_apply_stickers":
		return s.handleImageApplyStickers(args)
	case "image_apply_texts":
		return s.handleImageApplyTexts(args)

	// OCR
	case "image_ocr":
		return s.handleImageOCR(args)

	// Favorites
	case "favorites_add":
		return s.handleFavoritesAdd(args)
	case "favorites_remove":
		return s.handleFavoritesRemove(args)
	case "favorites_check":
		return s.handleFavoritesCheck(args)
	case "favorites_list":
		return s.handleFavoritesList(args)
	case "favorites_tags":
		return s.handleFavoritesTags(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === File Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImage(a.Path)
}

type imageSaveArgs struct {
	Image imaging.ImageData `json:"image"`
	Path  string            `json:"path"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := imaging.SaveImage(a.Image, a.Path); err != nil {
		return nil, err
	}
	return map[string]interface{}{"saved": true, "path": a.Path}, nil
}

func (s *Server) handleImageListDirectory(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	images, err := imaging.ListImages(a.Path)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"images": images, "count": len(images)}, nil
}

// === Edit Handlers ===

type imageResizeArgs struct {
	Image           imaging.ImageData `json:"image"`
	Width           int               `json:"width"`
	Height          int               `json:"height"`
	KeepAspectRatio bool              `json:"keep_aspect_ratio"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.Resize(a.Image, a.Width, a.Height, a.KeepAspectRatio)
}

type imageCropArgs struct {
	Image  imaging.ImageData `json:"image"`
	X      int               `json:"x"`
	Y      int               `json:"y"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.Crop(a.Image, a.X, a.Y, a.Width, a.Height)
}

type imageCropQuadrantArgs struct {
	Image  imaging.ImageData `json:"image"`
	Region string            `json:"region"`
}

func (s *Server) handleImageCropQuadrant(args json.RawMessage) (interface{}, error) {
	var a imageCropQuadrantArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.CropQuadrant(a.Image, a.Region)
}

type imageConvertArgs struct {
	Image   imaging.ImageData `json:"image"`
	Format  string            `json:"format"`
	Quality *int              `json:"quality,omitempty"`
}

func (s *Server) handleImageConvert(args json.RawMessage) (interface{}, error) {
	var a imageConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.Convert(a.Image, a.Format, &imaging.ConversionOptions{Quality: a.Quality})
}

type imageRotate90Args struct {
	Image     imaging.ImageData `json:"image"`
	Clockwise bool              `json:"clockwise"`
}

func (s *Server) handleImageRotate90(args json.RawMessage) (interface{}, error) {
	var a imageRotate90Args
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.Rotate90(a.Image, a.Clockwise)
}

type imageSetBackgroundArgs struct {
	Image imaging.ImageData `json:"image"`
	R     int               `json:"r"`
	G     int               `json:"g"`
	B     int               `json:"b"`
}

func (s *Server) handleImageSetBackground(args json.RawMessage) (interface{}, error) {
	var a imageSetBackgroundArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	for _, v := range []int{a.R, a.G, a.B} {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("background color components must be 0-255, got (%d,%d,%d)", a.R, a.G, a.B)
		}
	}
	bg := imaging.RGB{R: uint8(a.R), G: uint8(a.G), B: uint8(a.B)}
	return imaging.SetBackground(a.Image, bg)
}

type imageApplyStickersArgs struct {
	Image    imaging.ImageData `json:"image"`
	Stickers []imaging.Sticker `json:"stickers"`
}

func (s *Server) handleImageApplyStickers(args json.RawMessage) (interface{}, error) {
	var a imageApplyStickersArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.ApplyStickers(a.Image, a.Stickers)
}

type imageApplyTextsArgs struct {
	Image imaging.ImageData     `json:"image"`
	Texts []imaging.TextOverlay `json:"texts"`
}

func (s *Server) handleImageApplyTexts(args json.RawMessage) (interface{}, error) {
	var a imageApplyTextsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.text.Apply(a.Image, a.Texts)
}

// === OCR Handlers ===

type imageOCRArgs struct {
	Image    imaging.ImageData `json:"image"`
	Language string            `json:"language"`
	Region   *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
}

func (s *Server) handleImageOCR(args json.RawMessage) (interface{}, error) {
	var a imageOCRArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := ocr.Options{Language: a.Language}
	if s.cfg != nil {
		opts.TessdataDir = s.cfg.TessdataDir
		if opts.Language == "" {
			opts.Language = s.cfg.OCRLanguage
		}
	}

	raw, err := a.Image.Bytes()
	if err != nil {
		return nil, err
	}
	if a.Region == nil {
		return ocr.Recognize(raw, opts)
	}

	img, err := imaging.Decode(raw)
	if err != nil {
		return nil, err
	}
	r := image.Rect(a.Region.X1, a.Region.Y1, a.Region.X2, a.Region.Y2).Add(img.Bounds().Min)
	return ocr.RecognizeRegion(img, r, opts)
}

// === Favorites Handlers ===

type favoritesAddArgs struct {
	Path string   `json:"path"`
	Tags []string `json:"tags"`
}

func (s *Server) handleFavoritesAdd(args json.RawMessage) (interface{}, error) {
	var a favoritesAddArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	fav := s.favorites.Add(a.Path, a.Tags)
	if err := s.favorites.Save(); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *Server) handleFavoritesRemove(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	removed := s.favorites.Remove(a.Path)
	if removed {
		if err := s.favorites.Save(); err != nil {
			return nil, err
		}
	}
	return map[string]interface{}{"path": a.Path, "removed": removed}, nil
}

func (s *Server) handleFavoritesCheck(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": a.Path, "favorite": s.favorites.IsFavorite(a.Path)}, nil
}

type favoritesListArgs struct {
	Tags []string `json:"tags"`
}

func (s *Server) handleFavoritesList(args json.RawMessage) (interface{}, error) {
	var a favoritesListArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	favs := s.favorites.SearchByTags(a.Tags)
	return map[string]interface{}{"favorites": favs, "count": len(favs)}, nil
}

func (s *Server) handleFavoritesTags(json.RawMessage) (interface{}, error) {
	return map[string]interface{}{"tags": s.favorites.AllTags()}, nil
}
