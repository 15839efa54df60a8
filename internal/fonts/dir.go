package fonts

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// DirProvider finds fonts on disk. Directories are walked once, on first
// use, for .ttf and .otf files; files are parsed lazily through a Cache.
type DirProvider struct {
	dirs  []string
	cache *Cache

	once  sync.Once
	paths map[string]string // normalized base name -> path
	names []string          // sorted keys of paths
}

// NewDirProvider creates a provider over dirs. Missing directories are
// skipped silently.
func NewDirProvider(dirs []string) *DirProvider {
	return &DirProvider{
		dirs:  dirs,
		cache: NewCache(),
	}
}

// SystemDirs returns the conventional font directories for the running OS.
func SystemDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{filepath.Join(windir, "Fonts")}
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		}
	}
}

func (p *DirProvider) scan() {
	p.once.Do(func() {
		p.paths = make(map[string]string)
		for _, dir := range p.dirs {
			if dir == "" {
				continue
			}
			_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					if d != nil && d.IsDir() {
						return fs.SkipDir
					}
					return nil
				}
				if d.IsDir() {
					return nil
				}
				switch strings.ToLower(filepath.Ext(path)) {
				case ".ttf", ".otf":
				default:
					return nil
				}
				key := normalizeName(strings.TrimSuffix(d.Name(), filepath.Ext(path)))
				if _, dup := p.paths[key]; !dup {
					p.paths[key] = path
				}
				return nil
			})
		}
		p.names = make([]string, 0, len(p.paths))
		for k := range p.paths {
			p.names = append(p.names, k)
		}
		sort.Strings(p.names)
	})
}

// lookup maps a family name to a file, preferring an exact base-name match
// ("DejaVuSans") over a prefix match ("DejaVuSans-Bold").
func (p *DirProvider) lookup(name string) (string, bool) {
	key := normalizeName(name)
	if key == "" {
		return "", false
	}
	if path, ok := p.paths[key]; ok {
		return path, true
	}
	i := sort.SearchStrings(p.names, key)
	if i < len(p.names) && strings.HasPrefix(p.names[i], key) {
		return p.paths[p.names[i]], true
	}
	return "", false
}

// Load returns the first preferred family found on disk.
func (p *DirProvider) Load(preferred []string) (Font, error) {
	return p.LoadFor(preferred, "")
}

// LoadFor returns the first preferred family that covers text. When none
// does, every other font on disk is tried in name order.
func (p *DirProvider) LoadFor(preferred []string, text string) (Font, error) {
	p.scan()

	tried := make(map[string]bool)
	for _, name := range preferred {
		path, ok := p.lookup(name)
		if !ok || tried[path] {
			continue
		}
		tried[path] = true
		if f := p.open(path, text); f != nil {
			return f, nil
		}
	}
	if text == "" {
		return nil, ErrNotFound
	}
	for _, key := range p.names {
		path := p.paths[key]
		if tried[path] {
			continue
		}
		if f := p.open(path, text); f != nil {
			return f, nil
		}
	}
	return nil, ErrNotFound
}

func (p *DirProvider) open(path, text string) Font {
	f, err := p.cache.Load(path)
	if err != nil {
		log.Printf("Skipping font: %v", err)
		return nil
	}
	if text != "" && !f.Covers(text) {
		return nil
	}
	return f
}

// normalizeName lower-cases a family name and drops separators so that
// "DejaVu Sans", "dejavu-sans" and "DejaVuSans" compare equal.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
