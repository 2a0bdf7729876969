// Package gui is the windowed and touch frontend built on ebiten. It
// feeds touches, mouse drags and keys to the frame driver and paints
// the last rendered view with vector shapes and bundled Go fonts.
package gui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/huuugs/block/internal/render"
)

// Font sizes in pixels.
const (
	hudSize   = 18
	titleSize = 40
)

// Face is a loaded font face. It satisfies render.FontHandle.
type Face struct {
	name string
	face *text.GoTextFace
}

// Name returns the font role.
func (f *Face) Name() string { return f.name }

// LoadFonts parses the bundled fonts. Any failure is reported as
// render.ErrAssetLoad.
func LoadFonts() (render.FontSet, error) {
	hud, err := loadFace(render.FontHUD, goregular.TTF, hudSize)
	if err != nil {
		return nil, err
	}
	title, err := loadFace(render.FontTitle, gobold.TTF, titleSize)
	if err != nil {
		return nil, err
	}
	return render.FontSet{
		render.FontHUD:   hud,
		render.FontTitle: title,
	}, nil
}

func loadFace(name string, ttf []byte, size float64) (*Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("%w: font %q: %v", render.ErrAssetLoad, name, err)
	}
	return &Face{name: name, face: &text.GoTextFace{Source: src, Size: size}}, nil
}

// goFace extracts the ebiten face from a handle.
func goFace(fonts render.Fonts, name string) (*text.GoTextFace, error) {
	h, err := fonts.Face(name)
	if err != nil {
		return nil, err
	}
	f, ok := h.(*Face)
	if !ok || f.face == nil {
		return nil, fmt.Errorf("%w: font %q is not a window font", render.ErrAssetLoad, name)
	}
	return f.face, nil
}
