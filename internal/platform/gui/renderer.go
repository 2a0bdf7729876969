package gui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/fsm"
	"github.com/huuugs/block/internal/grid"
	"github.com/huuugs/block/internal/render"
)

// Layout constants in pixels.
const (
	hudHeight   = 40
	boardMargin = 12
	minCell     = 4
)

var (
	background = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	boardColor = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	shadeColor = color.RGBA{A: 170}
)

// Renderer keeps the last view handed to it by the driver and paints
// it when ebiten asks for a frame.
type Renderer struct {
	fonts render.Fonts
	view  render.View
	hud   *text.GoTextFace
	title *text.GoTextFace
	ready bool
}

// NewRenderer creates a renderer using the given fonts.
func NewRenderer(fonts render.Fonts) *Renderer {
	return &Renderer{fonts: fonts}
}

// Render records v for the next Draw. A missing font leaves the
// previous view in place.
func (r *Renderer) Render(v render.View) error {
	if r.fonts == nil {
		return fmt.Errorf("%w: no font set", render.ErrAssetLoad)
	}
	hud, err := goFace(r.fonts, render.FontHUD)
	if err != nil {
		return err
	}
	title, err := goFace(r.fonts, render.FontTitle)
	if err != nil {
		return err
	}
	r.hud, r.title = hud, title
	r.view = v
	r.ready = true
	return nil
}

// boardLayout places the grid inside the window.
type boardLayout struct {
	x, y float32
	cell float32
}

// layoutBoard fits cols x rows square cells below the HUD. ok is false
// when the cells would be too small to see.
func layoutBoard(w, h, cols, rows int) (l boardLayout, ok bool) {
	availW := w - 2*boardMargin
	availH := h - hudHeight - 2*boardMargin
	if cols <= 0 || rows <= 0 || availW <= 0 || availH <= 0 {
		return l, false
	}
	cell := min(availW/cols, availH/rows)
	if cell < minCell {
		return l, false
	}
	l.cell = float32(cell)
	l.x = float32((w - cell*cols) / 2)
	l.y = float32(hudHeight + (h-hudHeight-cell*rows)/2)
	return l, true
}

// inHUD reports whether a window y coordinate falls on the status bar.
func inHUD(y int) bool {
	return y < hudHeight
}

// rgba converts a palette color with the given alpha.
func rgba(c core.Color, alpha uint8) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

// Draw paints the last recorded view.
func (r *Renderer) Draw(dst *ebiten.Image) {
	dst.Fill(background)
	if !r.ready {
		return
	}
	v := r.view
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	switch v.State {
	case fsm.Menu:
		r.drawMenu(dst, v, w, h)
	case fsm.Playing:
		r.drawPlay(dst, v, w, h)
	case fsm.Paused:
		r.drawPlay(dst, v, w, h)
		r.drawOverlay(dst, w, h, core.ColorYellow, "Paused", "Tap or press Enter to resume")
	case fsm.GameOver:
		r.drawPlay(dst, v, w, h)
		title, c := render.ResultTitle(v.Last.Result)
		detail := fmt.Sprintf("Score %d", v.Last.Score)
		if v.Last.NewBest {
			detail += "  New best!"
		}
		r.drawOverlay(dst, w, h, c, title, detail, "Tap or press Enter for menu")
	}
}

func (r *Renderer) drawMenu(dst *ebiten.Image, v render.View, w, h int) {
	cx := float64(w) / 2
	y := float64(h)/4 - titleSize/2

	drawText(dst, "BLOCK EATER", r.title, cx, y, rgba(core.ColorGold, 255))
	y += titleSize * 2

	for i, m := range v.Menu.Modes {
		label, c := m.Title, core.ColorGray
		if i == v.Menu.Selected {
			label, c = "> "+m.Title+" <", core.ColorGreen
		}
		drawText(dst, label, r.hud, cx, y, rgba(c, 255))
		y += hudSize * 1.8
	}
	y += hudSize

	if sel, ok := v.Menu.SelectedMode(); ok && sel.ID == v.Menu.LevelMode && v.Menu.LevelCount > 0 {
		drawText(dst, fmt.Sprintf("< Level %d/%d >", v.Menu.Level, v.Menu.LevelCount), r.hud, cx, y, rgba(core.ColorCyan, 255))
		y += hudSize * 1.8
	}
	if v.Best > 0 {
		drawText(dst, fmt.Sprintf("Best %d", v.Best), r.hud, cx, y, rgba(core.ColorYellow, 255))
		y += hudSize * 1.8
	}
	if v.Profile != "" {
		drawText(dst, "Player: "+v.Profile, r.hud, cx, y, rgba(core.ColorWhite, 255))
	}

	drawText(dst, "Swipe or arrows to choose, tap or Enter to play", r.hud, cx, float64(h)-hudSize*2, rgba(core.ColorGray, 255))
}

func (r *Renderer) drawPlay(dst *ebiten.Image, v render.View, w, h int) {
	s := v.Session
	if s == nil {
		return
	}
	eater := s.Eater().Color()

	hud := strings.Join(render.HUDParts(v), "   ")
	op := &text.DrawOptions{}
	op.GeoM.Translate(boardMargin, (hudHeight-hudSize)/2)
	op.ColorScale.ScaleWithColor(rgba(eater, 255))
	text.Draw(dst, hud, r.hud, op)

	g := s.Grid()
	l, ok := layoutBoard(w, h, g.Cols(), g.Rows())
	if !ok {
		r.drawOverlay(dst, w, h, core.ColorRed, "Window too small")
		return
	}

	vector.DrawFilledRect(dst, l.x, l.y, l.cell*float32(g.Cols()), l.cell*float32(g.Rows()), boardColor, false)

	inset := max(l.cell/10, 1)
	g.Cells(func(c grid.Cell) {
		var fill color.RGBA
		switch c.Kind {
		case grid.Block:
			fill = rgba(core.BlockColor(c.Value), 255)
		case grid.Obstacle:
			fill = rgba(core.ColorGray, 255)
		case grid.EaterHead:
			fill = rgba(eater, 255)
		case grid.EaterBody:
			fill = rgba(eater, 150)
		default:
			return
		}
		x := l.x + float32(c.Col)*l.cell + inset
		y := l.y + float32(c.Row)*l.cell + inset
		vector.DrawFilledRect(dst, x, y, l.cell-2*inset, l.cell-2*inset, fill, true)
	})
}

// drawOverlay shades the window and centers one line per message.
func (r *Renderer) drawOverlay(dst *ebiten.Image, w, h int, c core.Color, lines ...string) {
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), shadeColor, false)

	cx := float64(w) / 2
	y := float64(h)/2 - float64(len(lines))*hudSize
	for i, line := range lines {
		col := rgba(core.ColorWhite, 255)
		face := r.hud
		if i == 0 {
			col = rgba(c, 255)
			face = r.title
		}
		drawText(dst, line, face, cx, y, col)
		y += face.Size * 1.5
	}
}

// drawText draws s horizontally centered on x.
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
