// Package favorites keeps a user's favorite images, with free-form tags, in
// a JSON file.
//
// The file layout is
//
//	{"favorites": {"<path>": {"path": "<path>", "tags": [...], "added_at": <unix seconds>}}}
//
// A Store is safe for concurrent use. Mutations are in memory until Save.
package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Favorite is one favorited image.
type Favorite struct {
	Path    string   `json:"path"`
	Tags    []string `json:"tags"`
	AddedAt int64    `json:"added_at"`
}

type file struct {
	Favorites map[string]Favorite `json:"favorites"`
}

// Store is a set of favorites bound to a JSON file.
type Store struct {
	path string
	now  func() time.Time

	mu        sync.RWMutex
	favorites map[string]Favorite
}

// DefaultPath returns <user config dir>/simpleimageviewer/favorites.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "simpleimageviewer", "favorites.json"), nil
}

// Open loads the store at path. A missing file yields an empty store; it is
// created on the first Save.
func Open(path string) (*Store, error) {
	s := &Store{
		path:      path,
		now:       time.Now,
		favorites: make(map[string]Favorite),
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	var f file
	if err := json.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("failed to parse favorites config: %w", err)
	}
	if f.Favorites != nil {
		s.favorites = f.Favorites
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Save writes the store to its file, creating the parent directory if
// needed.
func (s *Store) Save() error {
	s.mu.RLock()
	content, err := json.MarshalIndent(file{Favorites: s.favorites}, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to serialize favorites config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}

// Add favorites path, replacing its tags and timestamp if already present.
func (s *Store) Add(path string, tags []string) Favorite {
	fav := Favorite{
		Path:    path,
		Tags:    append([]string{}, tags...),
		AddedAt: s.now().Unix(),
	}
	s.mu.Lock()
	s.favorites[path] = fav
	s.mu.Unlock()
	return fav
}

// Remove reports whether path was a favorite.
func (s *Store) Remove(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[path]; !ok {
		return false
	}
	delete(s.favorites, path)
	return true
}

// IsFavorite reports whether path is a favorite.
func (s *Store) IsFavorite(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[path]
	return ok
}

// All returns every favorite, newest first.
func (s *Store) All() []Favorite {
	return s.filter(func(Favorite) bool { return true })
}

// SearchByTags returns the favorites having a tag that contains any of tags,
// case-insensitively, newest first. No tags returns All.
func (s *Store) SearchByTags(tags []string) []Favorite {
	if len(tags) == 0 {
		return s.All()
	}
	query := make([]string, len(tags))
	for i, t := range tags {
		query[i] = strings.ToLower(t)
	}
	return s.filter(func(f Favorite) bool {
		for _, have := range f.Tags {
			have = strings.ToLower(have)
			for _, want := range query {
				if strings.Contains(have, want) {
					return true
				}
			}
		}
		return false
	})
}

// AllTags returns every distinct tag, sorted.
func (s *Store) AllTags() []string {
	s.mu.RLock()
	seen := make(map[string]struct{})
	for _, f := range s.favorites {
		for _, t := range f.Tags {
			seen[t] = struct{}{}
		}
	}
	s.mu.RUnlock()

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func (s *Store) filter(keep func(Favorite) bool) []Favorite {
	s.mu.RLock()
	out := make([]Favorite, 0, len(s.favorites))
	for _, f := range s.favorites {
		if keep(f) {
			out = append(out, f)
		}
	}
	s.mu.RUnlock()

	// Same-second entries are ordered by path so results are stable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].AddedAt != out[j].AddedAt {
			return out[i].AddedAt > out[j].AddedAt
		}
		return out[i].Path < out[j].Path
	})
	return out
}
