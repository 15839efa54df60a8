package server

import (
	"testing"
)

func toolsByName() map[string]Tool {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}
	return toolMap
}

func requiredOf(t *testing.T, tool Tool) []string {
	t.Helper()
	required, ok := tool.InputSchema["required"].([]string)
	if !ok {
		t.Fatalf("%s: 'required' should be a string slice", tool.Name)
	}
	return required
}

func TestGetToolDefinitions(t *testing.T) {
	expectedTools := []string{
		"image_load",
		"image_save",
		"image_list_directory",
		"image_resize",
		"image_crop",
		"image_crop_quadrant",
		"image_convert",
		"image_rotate90",
		"image_set_background",
		"image_apply_stickers",
		"image_apply_texts",
		"image_ocr",
		"favorites_add",
		"favorites_remove",
		"favorites_check",
		"favorites_list",
		"favorites_tags",
	}

	toolMap := toolsByName()
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(toolMap) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(toolMap), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema missing 'properties' map")
			}
			for _, r := range requiredOf(t, tool) {
				if _, ok := props[r]; !ok {
					t.Errorf("required %q is not a property", r)
				}
			}
		})
	}
}

func TestToolDefinitions_EditToolsRequireImage(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		switch tool.Name {
		case "image_load", "image_list_directory":
			continue
		}
		if len(tool.Name) < 6 || tool.Name[:6] != "image_" {
			continue
		}
		t.Run(tool.Name, func(t *testing.T) {
			for _, r := range requiredOf(t, tool) {
				if r == "image" {
					return
				}
			}
			t.Error("Tool should require 'image' parameter")
		})
	}
}

func TestToolDefinitions_CropQuadrantRegions(t *testing.T) {
	tool, ok := toolsByName()["image_crop_quadrant"]
	if !ok {
		t.Fatal("image_crop_quadrant tool not found")
	}

	props := tool.InputSchema["properties"].(map[string]interface{})
	region := props["region"].(map[string]interface{})
	enum, ok := region["enum"].([]string)
	if !ok {
		t.Fatal("region should have an enum")
	}
	if len(enum) != 9 {
		t.Errorf("got %d regions, want 9", len(enum))
	}
}
