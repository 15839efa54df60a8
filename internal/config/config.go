// Package config reads server settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/image-edit-mcp/internal/favorites"
)

// Environment variables understood by FromEnv.
const (
	EnvLogLevel      = "IMAGE_EDIT_LOG_LEVEL"
	EnvFontDirs      = "IMAGE_EDIT_FONT_DIRS"
	EnvFavoritesPath = "IMAGE_EDIT_FAVORITES_PATH"
	EnvOCRLanguage   = "IMAGE_EDIT_OCR_LANGUAGE"
	EnvTessdataDir   = "IMAGE_EDIT_TESSDATA_DIR"
)

// Config holds the server settings.
type Config struct {
	// Debug enables verbose logging (IMAGE_EDIT_LOG_LEVEL=debug).
	Debug bool

	// FontDirs are searched for fonts before the system font directories.
	FontDirs []string

	// FavoritesPath is the favorites JSON file.
	FavoritesPath string

	// OCRLanguage is the default Tesseract language.
	OCRLanguage string

	// TessdataDir overrides the Tesseract training data location.
	TessdataDir string
}

// FromEnv builds a Config from the process environment.
func FromEnv() (*Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		Debug:         strings.EqualFold(get(EnvLogLevel), "debug"),
		FavoritesPath: get(EnvFavoritesPath),
		OCRLanguage:   get(EnvOCRLanguage),
		TessdataDir:   get(EnvTessdataDir),
	}

	for _, dir := range filepath.SplitList(get(EnvFontDirs)) {
		if dir = strings.TrimSpace(dir); dir != "" {
			cfg.FontDirs = append(cfg.FontDirs, dir)
		}
	}

	if cfg.OCRLanguage == "" {
		cfg.OCRLanguage = "eng"
	}
	if cfg.FavoritesPath == "" {
		p, err := favorites.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.FavoritesPath = p
	}
	return cfg, nil
}
