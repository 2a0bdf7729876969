package render

import (
	"errors"
	"fmt"
)

// ErrAssetLoad is returned when a font or other asset is unavailable.
var ErrAssetLoad = errors.New("render: asset load failed")

// Font names used by the renderers.
const (
	FontHUD   = "hud"
	FontTitle = "title"
)

// FontHandle is an opaque loaded font.
type FontHandle interface {
	Name() string
}

// Fonts resolves font handles by name.
type Fonts interface {
	Face(name string) (FontHandle, error)
}

// FontSet is a Fonts backed by a map.
type FontSet map[string]FontHandle

// Face returns the named handle or ErrAssetLoad.
func (fs FontSet) Face(name string) (FontHandle, error) {
	h, ok := fs[name]
	if !ok || h == nil {
		return nil, fmt.Errorf("%w: font %q", ErrAssetLoad, name)
	}
	return h, nil
}

// glyphFont is the terminal's own font; it is always available.
type glyphFont string

func (g glyphFont) Name() string { return string(g) }

// TerminalFonts returns the font set for character-cell frontends.
func TerminalFonts() FontSet {
	return FontSet{
		FontHUD:   glyphFont("terminal"),
		FontTitle: glyphFont("terminal"),
	}
}
