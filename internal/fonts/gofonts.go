package fonts

import (
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// GoFonts provides the Go font family compiled into the binary. It always
// succeeds, so it is a sensible last outline provider in a Chain.
type GoFonts struct {
	once    sync.Once
	regular Font
	bold    Font
	mono    Font
	err     error
}

func (g *GoFonts) parse() {
	g.once.Do(func() {
		if g.regular, g.err = ParseOutline("Go Regular", goregular.TTF); g.err != nil {
			return
		}
		if g.bold, g.err = ParseOutline("Go Bold", gobold.TTF); g.err != nil {
			return
		}
		g.mono, g.err = ParseOutline("Go Mono", gomono.TTF)
	})
}

// Load returns Go Bold or Go Mono when a preferred name asks for them and
// Go Regular otherwise.
func (g *GoFonts) Load(preferred []string) (Font, error) {
	g.parse()
	if g.err != nil {
		return nil, g.err
	}
	for _, name := range preferred {
		n := normalizeName(name)
		switch {
		case strings.Contains(n, "mono"):
			return g.mono, nil
		case strings.Contains(n, "bold"):
			return g.bold, nil
		}
	}
	return g.regular, nil
}
