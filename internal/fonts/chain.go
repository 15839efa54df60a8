package fonts

// Chain tries providers in order.
type Chain []Provider

// Load returns the first font any provider yields.
func (c Chain) Load(preferred []string) (Font, error) {
	for _, p := range c {
		if f, err := p.Load(preferred); err == nil {
			return f, nil
		}
	}
	return nil, ErrNotFound
}

// LoadFor returns the first font that covers text. If no font covers it,
// the font from the last provider that loaded one is returned, which for
// Default is the bitmap table and its placeholder glyphs.
func (c Chain) LoadFor(preferred []string, text string) (Font, error) {
	var last Font
	for _, p := range c {
		f, err := Load(p, preferred, text)
		if err != nil {
			// A coverage-aware provider may have fonts that just miss text.
			if _, ok := p.(CoverageProvider); !ok {
				continue
			}
			if f, err = p.Load(preferred); err != nil {
				continue
			}
		}
		if f.Covers(text) {
			return f, nil
		}
		last = f
	}
	if last == nil {
		return nil, ErrNotFound
	}
	return last, nil
}

// Default returns the provider chain used when none is configured: fonts
// found under extraDirs and the system font directories, then the bundled
// Go fonts, then the bitmap table.
func Default(extraDirs ...string) Chain {
	dirs := append(append([]string{}, extraDirs...), SystemDirs()...)
	return Chain{
		NewDirProvider(dirs),
		&GoFonts{},
		Bitmap{},
	}
}
