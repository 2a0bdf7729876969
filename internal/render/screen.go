package render

import (
	"fmt"
	"strings"

	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/fsm"
	"github.com/huuugs/block/internal/grid"
	"github.com/huuugs/block/internal/sim"
)

const hudHeight = 2 // status line + separator

// ScreenRenderer draws frames into a character Screen. Frontends read
// the screen after a successful Render.
type ScreenRenderer struct {
	screen *core.Screen
	fonts  Fonts
}

// NewScreenRenderer creates a renderer with a width x height screen.
func NewScreenRenderer(width, height int, fonts Fonts) *ScreenRenderer {
	return &ScreenRenderer{
		screen: core.NewScreen(width, height),
		fonts:  fonts,
	}
}

// Screen returns the last rendered frame.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Resize changes the screen size.
func (r *ScreenRenderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

// Render draws the frame for v. On a missing font nothing is drawn and
// the previous frame stays on screen.
func (r *ScreenRenderer) Render(v View) error {
	if r.fonts == nil {
		return fmt.Errorf("%w: no font set", ErrAssetLoad)
	}
	for _, name := range []string{FontHUD, FontTitle} {
		if _, err := r.fonts.Face(name); err != nil {
			return err
		}
	}

	dst := r.screen
	dst.Clear()

	switch v.State {
	case fsm.Menu:
		r.drawMenu(dst, v)
	case fsm.Playing:
		r.drawPlay(dst, v)
	case fsm.Paused:
		r.drawPlay(dst, v)
		drawOverlay(dst, core.ColorYellow, "Paused", "Enter to resume")
	case fsm.GameOver:
		r.drawPlay(dst, v)
		title, color := ResultTitle(v.Last.Result)
		detail := fmt.Sprintf("Score %d", v.Last.Score)
		if v.Last.NewBest {
			detail += "  New best!"
		}
		drawOverlay(dst, color, title, detail, "Enter for menu")
	}
	return nil
}

// ResultTitle returns the headline and color for how a session ended.
func ResultTitle(res sim.Result) (string, core.Color) {
	switch res.Reason {
	case sim.ReasonLevelCleared:
		return "All levels cleared!", core.ColorGreen
	case sim.ReasonTimeUp:
		if res.Won {
			return "Time's up!", core.ColorCyan
		}
		return "Out of time", core.ColorRed
	case sim.ReasonTrapped:
		return "Trapped", core.ColorRed
	default:
		return "Game Over", core.ColorRed
	}
}

func (r *ScreenRenderer) drawMenu(dst *core.Screen, v View) {
	y := max(1, dst.Height()/2-len(v.Menu.Modes)-3)

	dst.DrawTextCentered(y, "B L O C K   E A T E R", core.ColorGold)
	y += 2

	for i, m := range v.Menu.Modes {
		line := "  " + m.Title + "  "
		color := core.ColorGray
		if i == v.Menu.Selected {
			line = "> " + m.Title + " <"
			color = core.ColorGreen
		}
		dst.DrawTextCentered(y, line, color)
		y++
	}
	y++

	if sel, ok := v.Menu.SelectedMode(); ok && sel.ID == v.Menu.LevelMode && v.Menu.LevelCount > 0 {
		dst.DrawTextCentered(y, fmt.Sprintf("< Level %d/%d >", v.Menu.Level, v.Menu.LevelCount), core.ColorCyan)
		y++
	}
	if v.Best > 0 {
		dst.DrawTextCentered(y, fmt.Sprintf("Best %d", v.Best), core.ColorYellow)
		y++
	}
	if v.Profile != "" {
		dst.DrawTextCentered(y, "Player: "+v.Profile, core.ColorWhite)
	}

	dst.DrawTextCentered(dst.Height()-1, "Up/Down mode  Left/Right level  Enter play  q quit", core.ColorGray)
}

func (r *ScreenRenderer) drawPlay(dst *core.Screen, v View) {
	s := v.Session
	if s == nil {
		return
	}
	r.drawHUD(dst, v)

	g := s.Grid()
	cellW := 2
	if g.Cols()*2+2 > dst.Width() {
		cellW = 1
	}
	boardW := g.Cols()*cellW + 2
	boardH := g.Rows() + 2
	if boardW > dst.Width() || boardH+hudHeight > dst.Height() {
		drawOverlay(dst, core.ColorRed, "Window too small", "Resize to continue")
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := hudHeight
	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)

	eaterColor := s.Eater().Color()
	g.Cells(func(c grid.Cell) {
		glyph, color := cellGlyph(c, eaterColor)
		x := ox + 1 + c.Col*cellW
		y := oy + 1 + c.Row
		for i := range cellW {
			dst.SetColored(x+i, y, glyph, color)
		}
	})
}

func cellGlyph(c grid.Cell, eater core.Color) (rune, core.Color) {
	switch c.Kind {
	case grid.Block:
		return '▪', core.BlockColor(c.Value)
	case grid.Obstacle:
		return '▓', core.ColorGray
	case grid.EaterHead:
		return '█', eater
	case grid.EaterBody:
		return '▒', eater
	default:
		return ' ', core.ColorDefault
	}
}

func (r *ScreenRenderer) drawHUD(dst *core.Screen, v View) {
	dst.DrawTextColored(1, 0, strings.Join(HUDParts(v), "  "), v.Session.Eater().Color())
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// HUDParts returns the status line fragments for a running session.
func HUDParts(v View) []string {
	s := v.Session
	if s == nil {
		return nil
	}
	e := s.Eater()

	parts := []string{v.Mode, fmt.Sprintf("Score %d", s.Score())}
	if s.Config().Lives > 0 {
		parts = append(parts, "Lives "+strings.Repeat("♥", max(e.Lives, 0)))
	}
	parts = append(parts, fmt.Sprintf("Lv %d", e.Level))
	if left := s.TimeLeft(); left >= 0 {
		secs := left / s.Config().TickRate
		parts = append(parts, fmt.Sprintf("%d:%02d", secs/60, secs%60))
	}
	if v.Best > 0 {
		parts = append(parts, fmt.Sprintf("Best %d", v.Best))
	}
	if st := s.Status(); st != "" {
		parts = append(parts, st)
	}
	if v.Muted {
		parts = append(parts, "muted")
	}
	return parts
}

// drawOverlay draws a centered box with one line per message.
func drawOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		dst.DrawTextCentered(box.Y+1+i*2, l, c)
	}
}
