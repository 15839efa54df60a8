package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Cache provides thread-safe caching of parsed font files so that each file
// is read and parsed at most once.
//
// Parsed fonts stay in memory until removed with Evict or Clear.
type Cache struct {
	mu    sync.RWMutex
	fonts map[string]Font
}

// NewCache creates an empty font cache.
func NewCache() *Cache {
	return &Cache{
		fonts: make(map[string]Font),
	}
}

// Load returns the parsed font at path, reading and parsing it on first use.
// The font's name is the file's base name without extension.
func (c *Cache) Load(path string) (Font, error) {
	c.mu.RLock()
	if f, ok := c.fonts[path]; ok {
		c.mu.RUnlock()
		return f, nil
	}
	c.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	f, err := ParseOutline(name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}

	c.mu.Lock()
	c.fonts[path] = f
	c.mu.Unlock()

	return f, nil
}

// Len reports the number of cached fonts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fonts)
}

// Clear removes all fonts from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.fonts = make(map[string]Font)
	c.mu.Unlock()
}

// Evict removes the font loaded from path. Unknown paths are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.fonts, path)
	c.mu.Unlock()
}
