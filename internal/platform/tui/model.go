package tui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/huuugs/block/internal/audio"
	"github.com/huuugs/block/internal/config"
	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/driver"
	"github.com/huuugs/block/internal/fsm"
	"github.com/huuugs/block/internal/render"
)

// GameOptions configure a terminal game.
type GameOptions struct {
	Game    config.GameConfig
	Seed    int64
	Profile string
	Scores  driver.ScoreStore   // optional
	Sound   *audio.SoundManager // optional
	Logger  *log.Logger
	Closers []io.Closer // released when the program exits
}

// Model is the Bubble Tea model hosting one frame driver.
type Model struct {
	driver   *driver.Driver
	renderer *render.ScreenRenderer
	keys     KeyMap
	sound    *audio.SoundManager
	fps      int
	last     time.Time
	quitting bool
}

// NewModel creates a model with a width x height screen.
func NewModel(opts GameOptions, width, height int) (Model, error) {
	renderer := render.NewScreenRenderer(width, height, render.TerminalFonts())

	dopts := driver.Options{
		Game:     opts.Game,
		Seed:     opts.Seed,
		MinSwipe: opts.Game.Input.MinSwipeCells,
		Profile:  opts.Profile,
		Renderer: renderer,
		Scores:   opts.Scores,
		Logger:   opts.Logger,
		Closers:  opts.Closers,
	}
	if opts.Sound != nil {
		dopts.Audio = opts.Sound
		dopts.Muted = !opts.Sound.Enabled()
	}

	d, err := driver.New(dopts)
	if err != nil {
		return Model{}, err
	}
	return Model{
		driver:   d,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		sound:    opts.Sound,
		fps:      opts.Game.Frame.FPS,
	}, nil
}

// Driver returns the hosted frame driver.
func (m Model) Driver() *driver.Driver {
	return m.driver
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MouseEvent(msg); ok {
			m.driver.Feed(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Mute):
		m.toggleMute()
		return m, nil
	case key.Matches(msg, m.keys.Pause) && m.driver.State() == fsm.Paused:
		// the pause key toggles
		m.driver.Apply(core.IntentConfirm)
		return m, nil
	}

	if ev, ok := m.keys.Event(msg); ok {
		m.driver.Feed(ev)
	}
	return m, nil
}

func (m Model) toggleMute() {
	if m.sound == nil {
		return
	}
	on := !m.sound.Enabled()
	m.sound.SetEnabled(on)
	m.driver.SetMuted(!on)
}

// handleFrame steps the driver by the wall time since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 0.0
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last).Seconds()
	}
	m.last = now
	m.driver.StepFrame(elapsed)
	return m, frameCmd(m.fps)
}

// View renders the last frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.renderer.Screen())
}

// Run starts the Bubble Tea program and shuts the driver down when it
// exits.
func Run(opts GameOptions, width, height int) error {
	model, err := NewModel(opts, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, runErr := p.Run()
	return errors.Join(runErr, model.driver.Shutdown())
}
