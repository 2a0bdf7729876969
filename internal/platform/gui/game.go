package gui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/huuugs/block/internal/audio"
	"github.com/huuugs/block/internal/config"
	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/driver"
	"github.com/huuugs/block/internal/fsm"
	"github.com/huuugs/block/internal/input"
)

// mousePointer is the pointer ID of the mouse. Touch IDs are never
// negative.
const mousePointer = -1

// Options configure a windowed game.
type Options struct {
	Game    config.GameConfig
	Seed    int64
	Profile string
	Scores  driver.ScoreStore   // optional
	Sound   *audio.SoundManager // optional
	Logger  *log.Logger
	Width   int
	Height  int
	Closers []io.Closer // released when the window closes
}

// keyBindings names the keyboard keys that produce game input. Keys
// pressed in the same frame are fed in this order.
var keyBindings = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyArrowUp, "up"},
	{ebiten.KeyArrowDown, "down"},
	{ebiten.KeyArrowLeft, "left"},
	{ebiten.KeyArrowRight, "right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyEscape, "esc"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeySpace, "space"},
}

// pressedKeys returns the game keys for which pressed reports true, in
// binding order.
func pressedKeys(pressed func(ebiten.Key) bool) []input.Key {
	var keys []input.Key
	for _, b := range keyBindings {
		if pressed(b.key) {
			keys = append(keys, input.KeyFromName(b.name))
		}
	}
	return keys
}

// Game implements ebiten.Game around a frame driver.
type Game struct {
	driver   *driver.Driver
	renderer *Renderer
	sound    *audio.SoundManager
	logger   *log.Logger
	last     time.Time
	touches  []ebiten.TouchID
	quit     bool
}

var _ ebiten.Game = (*Game)(nil)

// NewGame loads the fonts and creates the driver.
func NewGame(opts Options) (*Game, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	renderer := NewRenderer(fonts)

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	dopts := driver.Options{
		Game:     opts.Game,
		Seed:     opts.Seed,
		MinSwipe: opts.Game.Input.MinSwipePixels,
		Profile:  opts.Profile,
		Renderer: renderer,
		Scores:   opts.Scores,
		Logger:   logger,
		Closers:  opts.Closers,
	}
	if opts.Sound != nil {
		dopts.Audio = opts.Sound
		dopts.Muted = !opts.Sound.Enabled()
	}

	d, err := driver.New(dopts)
	if err != nil {
		return nil, err
	}
	return &Game{
		driver:   d,
		renderer: renderer,
		sound:    opts.Sound,
		logger:   logger,
	}, nil
}

// Driver returns the hosted frame driver.
func (g *Game) Driver() *driver.Driver {
	return g.driver
}

// Update polls input and advances the driver by the wall time since
// the previous update.
func (g *Game) Update() error {
	g.pollKeys()
	g.pollTouches()
	g.pollMouse()

	now := time.Now()
	elapsed := 0.0
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last).Seconds()
	}
	g.last = now
	g.driver.StepFrame(elapsed)

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.quit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	for _, gk := range pressedKeys(inpututil.IsKeyJustPressed) {
		if gk == input.KeyPause && g.driver.State() == fsm.Paused {
			g.driver.Apply(core.IntentConfirm)
			continue
		}
		g.driver.Feed(input.Press(gk))
	}
}

func (g *Game) pollTouches() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.driver.Feed(input.Down(int(id), float64(x), float64(y)))
	}

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.driver.Feed(input.Move(int(id), float64(x), float64(y)))
	}

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.release(int(id), x, y)
	}
}

func (g *Game) pollMouse() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.driver.Feed(input.Down(mousePointer, float64(x), float64(y)))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.release(mousePointer, x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.driver.Feed(input.Move(mousePointer, float64(x), float64(y)))
	}
}

// release ends a drag. A short drag is a tap, which confirms outside
// play and pauses when it lands on the status bar during play.
func (g *Game) release(id, x, y int) {
	if g.driver.Feed(input.Up(id, float64(x), float64(y))) != core.IntentNone {
		return
	}
	g.driver.Apply(tapIntent(g.driver.State(), y))
}

// tapIntent decides what a tap at window row y means in state s.
func tapIntent(s fsm.State, y int) core.Intent {
	switch s {
	case fsm.Playing:
		if inHUD(y) {
			return core.IntentPause
		}
		return core.IntentNone
	default:
		return core.IntentConfirm
	}
}

func (g *Game) toggleMute() {
	if g.sound == nil {
		return
	}
	on := !g.sound.Enabled()
	g.sound.SetEnabled(on)
	g.driver.SetMuted(!on)
}

// Draw paints the last rendered view.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Shutdown releases the driver's resources.
func (g *Game) Shutdown() error {
	return g.driver.Shutdown()
}

// Run opens a window and blocks until it is closed.
func Run(opts Options) error {
	game, err := NewGame(opts)
	if err != nil {
		return err
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 720, 640
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Block Eater")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return errors.Join(ebiten.RunGame(game), game.Shutdown())
}
