// Package driver runs the frame loop shared by every frontend. A
// frontend feeds raw input events, calls StepFrame once per display
// frame with the wall time since the previous frame, and shows whatever
// the renderer produced. The driver turns elapsed time into a whole
// number of fixed simulation ticks and routes control intents through
// the game state machine.
package driver

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/huuugs/block/internal/audio"
	"github.com/huuugs/block/internal/config"
	"github.com/huuugs/block/internal/core"
	"github.com/huuugs/block/internal/fsm"
	"github.com/huuugs/block/internal/input"
	"github.com/huuugs/block/internal/modes"
	"github.com/huuugs/block/internal/registry"
	"github.com/huuugs/block/internal/render"
	"github.com/huuugs/block/internal/sim"
	"github.com/huuugs/block/internal/storage"
)

// ScoreStore persists finished sessions. *storage.Store implements it.
type ScoreStore interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	HighScore(modeID string) (int, error)
}

var _ ScoreStore = (*storage.Store)(nil)

// Options configure a Driver.
type Options struct {
	Game     config.GameConfig
	Seed     int64 // 0 seeds each session from the clock
	MinSwipe float64
	Profile  string
	Muted    bool

	Renderer render.Renderer
	Scores   ScoreStore   // optional
	Audio    audio.Player // optional
	Logger   *log.Logger  // optional
	Closers  []io.Closer  // released by Shutdown
}

// FrameStats describe what one StepFrame call did.
type FrameStats struct {
	Ticks     int // ticks simulated
	Dropped   int // ticks discarded by the catch-up cap
	State     fsm.State
	RenderErr error
}

// Driver owns the state machine, the running session and the tick
// accumulator. It is not safe for concurrent use.
type Driver struct {
	cfg    config.GameConfig
	seed   int64
	runs   int
	logger *log.Logger

	machine *fsm.Machine
	mapper  *input.Mapper
	move    core.IntentLatch
	pending []fsm.Event

	session *sim.Session
	mode    modes.Mode
	saved   bool

	tick time.Duration
	acc  time.Duration

	menu    render.MenuView
	best    int
	last    render.Summary
	profile string
	muted   bool

	renderer       render.Renderer
	scores         ScoreStore
	audio          audio.Player
	closers        []io.Closer
	renderFailures int
	closed         bool
}

// New creates a driver in the Menu state.
func New(opts Options) (*Driver, error) {
	if err := opts.Game.Validate(); err != nil {
		return nil, err
	}
	if opts.Renderer == nil {
		return nil, errors.New("driver: no renderer")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Audio
	if player == nil {
		player = audio.Silent{}
	}

	d := &Driver{
		cfg:      opts.Game,
		seed:     opts.Seed,
		logger:   logger,
		machine:  fsm.New(),
		mapper:   input.NewMapper(opts.MinSwipe),
		tick:     time.Second / time.Duration(opts.Game.Frame.TickRate),
		profile:  opts.Profile,
		muted:    opts.Muted,
		renderer: opts.Renderer,
		scores:   opts.Scores,
		audio:    player,
		closers:  opts.Closers,
	}
	d.menu = render.MenuView{
		Modes:      menuModes(),
		Level:      1,
		LevelCount: modes.LevelCount(),
		LevelMode:  modes.IDLevel,
	}
	d.machine.OnTransition(d.onTransition)
	d.refreshBest()
	return d, nil
}

func menuModes() []registry.Info {
	list := make([]registry.Info, 0, len(modes.Order))
	for _, id := range modes.Order {
		list = append(list, registry.Info{ID: id, Title: modes.Registry.Title(id)})
	}
	return list
}

// Feed maps a raw event through the input mapper, applies the
// resulting intent and returns it.
func (d *Driver) Feed(ev input.Event) core.Intent {
	i := d.mapper.Feed(ev)
	d.Apply(i)
	return i
}

// Apply queues an intent for the next frame. Moves overwrite any move
// still pending. Each control event fires at most once per frame.
func (d *Driver) Apply(i core.Intent) {
	switch i {
	case core.IntentNone:
	case core.IntentPause:
		d.queue(fsm.EventPause)
	case core.IntentConfirm:
		d.queue(fsm.EventConfirm)
	default:
		d.move.Set(i)
	}
}

func (d *Driver) queue(ev fsm.Event) {
	for _, p := range d.pending {
		if p == ev {
			return
		}
	}
	d.pending = append(d.pending, ev)
}

// StepFrame advances the driver by one display frame.
// Time spent in another state is never owed to the simulation.
func (d *Driver) StepFrame(elapsedSeconds float64) FrameStats {
	wasPlaying := d.machine.State() == fsm.Playing
	for _, ev := range d.pending {
		d.fire(ev)
	}
	d.pending = d.pending[:0]

	var stats FrameStats
	switch d.machine.State() {
	case fsm.Menu:
		d.navigate()
		d.acc = 0
	case fsm.Playing:
		if !wasPlaying {
			elapsedSeconds = 0
		}
		stats.Ticks, stats.Dropped = d.advance(elapsedSeconds)
	default:
		d.acc = 0
	}

	stats.State = d.machine.State()
	if err := d.renderer.Render(d.View()); err != nil {
		d.renderFailures++
		stats.RenderErr = err
		d.logger.Warn("frame skipped", "err", err, "failures", d.renderFailures)
	}
	return stats
}

// advance runs the ticks owed for elapsed seconds, capped per frame.
func (d *Driver) advance(elapsedSeconds float64) (ticks, dropped int) {
	if elapsedSeconds > 0 && !math.IsInf(elapsedSeconds, 0) {
		d.acc += time.Duration(elapsedSeconds * float64(time.Second))
	}

	limit := max(d.cfg.Frame.MaxCatchUp, 1)
	for d.acc >= d.tick && ticks < limit {
		d.acc -= d.tick
		ticks++
		if d.step() {
			d.acc = 0
			return ticks, 0
		}
	}

	if d.acc >= d.tick {
		dropped = int(d.acc / d.tick)
		d.acc -= time.Duration(dropped) * d.tick
		d.logger.Debug("dropped ticks", "count", dropped)
	}
	return ticks, dropped
}

// step runs one simulation tick and reports whether the session ended.
func (d *Driver) step() bool {
	res := d.session.Step(d.move.Take())
	d.cue(res.Events)
	if res.Outcome == sim.OutcomeGameOver {
		d.fire(fsm.EventGameOver)
		return true
	}
	return false
}

func (d *Driver) cue(ev sim.Event) {
	switch {
	case ev.Has(sim.EventGameOver):
		d.audio.Play(audio.CueGameOver)
	case ev.Has(sim.EventStageCleared), ev.Has(sim.EventLevelUp):
		d.audio.Play(audio.CueLevelUp)
	case ev.Has(sim.EventBumped):
		d.audio.Play(audio.CueBump)
	case ev.Has(sim.EventConsumed):
		d.audio.Play(audio.CueEat)
	}
}

// navigate applies a pending move to the menu selection.
func (d *Driver) navigate() {
	i := d.move.Take()
	if i == core.IntentNone {
		return
	}
	n := len(d.menu.Modes)
	switch i {
	case core.IntentMoveUp:
		d.menu.Selected = (d.menu.Selected + n - 1) % n
		d.refreshBest()
	case core.IntentMoveDown:
		d.menu.Selected = (d.menu.Selected + 1) % n
		d.refreshBest()
	case core.IntentMoveLeft:
		if d.levelSelected() && d.menu.Level > 1 {
			d.menu.Level--
		}
	case core.IntentMoveRight:
		if d.levelSelected() && d.menu.Level < d.menu.LevelCount {
			d.menu.Level++
		}
	}
	d.audio.Play(audio.CueClick)
}

func (d *Driver) levelSelected() bool {
	sel, ok := d.menu.SelectedMode()
	return ok && sel.ID == d.menu.LevelMode
}

// fire applies ev to the state machine. Leaving the menu needs a new
// session first; if it cannot be built the transition does not happen.
func (d *Driver) fire(ev fsm.Event) {
	if d.machine.State() == fsm.Menu && ev == fsm.EventConfirm {
		if err := d.startSession(); err != nil {
			d.logger.Error("cannot start session", "err", err)
			return
		}
	}
	d.machine.Fire(ev)
}

func (d *Driver) onTransition(from, to fsm.State, ev fsm.Event) {
	d.logger.Debug("transition", "from", from, "to", to, "event", ev)
	d.acc = 0

	switch {
	case from == fsm.Menu && to == fsm.Playing:
		d.move.Clear()
	case to == fsm.GameOver:
		d.finishSession()
	case from == fsm.GameOver && to == fsm.Menu:
		d.session = nil
		d.mode = nil
		d.move.Clear()
		d.refreshBest()
	}
}

func (d *Driver) startSession() error {
	sel, ok := d.menu.SelectedMode()
	if !ok {
		return errors.New("driver: no mode selected")
	}
	mode, err := modes.New(sel.ID, d.menu.Level)
	if err != nil {
		return err
	}

	seed := d.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		seed += int64(d.runs)
	}
	simCfg, err := d.cfg.SimConfig(seed)
	if err != nil {
		return err
	}

	s, err := sim.NewSession(simCfg, mode, config.NewPacer(d.cfg.Difficulty, simCfg.TickRate))
	if err != nil {
		return fmt.Errorf("driver: %w", err)
	}

	d.runs++
	d.session = s
	d.mode = mode
	d.saved = false
	d.last = render.Summary{}
	d.logger.Info("session started", "mode", mode.ID(), "seed", seed)
	return nil
}

// finishSession records the score once per session.
func (d *Driver) finishSession() {
	if d.saved || d.session == nil {
		return
	}
	d.saved = true

	s := d.session
	d.last = render.Summary{
		ModeTitle: d.mode.Title(),
		Score:     s.Score(),
		Result:    s.Result(),
		NewBest:   s.Score() > 0 && s.Score() > d.best,
	}
	if d.last.NewBest {
		d.best = s.Score()
	}
	d.logger.Info("session over", "mode", d.mode.ID(), "score", s.Score(), "reason", s.Result().Reason)

	if d.scores == nil || (s.Score() == 0 && d.profile == "") {
		return
	}
	entry := storage.ScoreEntry{
		ModeID:       d.mode.ID(),
		Profile:      d.profile,
		Score:        s.Score(),
		Level:        s.Eater().Level,
		DurationSecs: int(s.Seconds()),
		Won:          s.Result().Won,
	}
	if st, ok := d.mode.(modes.Staged); ok {
		entry.Stage = st.Cleared()
	}
	_, err := d.scores.SaveScore(entry)
	if err != nil {
		d.logger.Warn("cannot save score", "err", err)
	}
}

func (d *Driver) refreshBest() {
	d.best = 0
	if d.scores == nil {
		return
	}
	sel, ok := d.menu.SelectedMode()
	if !ok {
		return
	}
	best, err := d.scores.HighScore(sel.ID)
	if err != nil {
		d.logger.Warn("cannot read high score", "mode", sel.ID, "err", err)
		return
	}
	d.best = best
}

// View returns what the renderer draws for the current frame.
func (d *Driver) View() render.View {
	v := render.View{
		State:   d.machine.State(),
		Session: d.session,
		Menu:    d.menu,
		Best:    d.best,
		Profile: d.profile,
		Last:    d.last,
		Muted:   d.muted,
	}
	if d.mode != nil {
		v.Mode = d.mode.Title()
	}
	return v
}

// State returns the current game state.
func (d *Driver) State() fsm.State { return d.machine.State() }

// Session returns the running session, or nil in the menu.
func (d *Driver) Session() *sim.Session { return d.session }

// Config returns the game configuration.
func (d *Driver) Config() config.GameConfig { return d.cfg }

// RenderFailures returns the number of frames whose render failed.
func (d *Driver) RenderFailures() int { return d.renderFailures }

// Dragging reports whether a pointer drag is in progress.
func (d *Driver) Dragging() bool { return d.mapper.Dragging() }

// SetProfile changes the profile finished sessions are recorded for.
func (d *Driver) SetProfile(name string) { d.profile = name }

// SetMuted changes the mute indicator shown in the HUD.
func (d *Driver) SetMuted(muted bool) { d.muted = muted }

// Shutdown releases every resource given in Options.Closers. Calling it
// again does nothing.
func (d *Driver) Shutdown() error {
	if d.closed {
		return nil
	}
	d.closed = true

	var errs []error
	for _, c := range d.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
