package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/huuugs/block/internal/audio"
	"github.com/huuugs/block/internal/config"
	"github.com/huuugs/block/internal/driver"
	"github.com/huuugs/block/internal/settings"
	"github.com/huuugs/block/internal/storage"
)

// environment is everything a frontend needs to start a game.
type environment struct {
	logger  *log.Logger
	prefs   *settings.Manager
	game    config.GameConfig
	store   *storage.Store // nil when the database is unavailable
	sound   *audio.SoundManager
	profile string
	closers []io.Closer
}

// setup builds the environment for a full-screen frontend or exits
// with status 1. The returned closers are handed to the driver, which
// releases them on shutdown in order.
func setup(withSound bool) *environment {
	logger, logFile, err := newLogger(true)
	exitOnError("creating logger", err)

	env := &environment{logger: logger}
	env.prefs = settings.Open(logger)
	prefs := env.prefs.Get()

	env.game, err = loadGameConfig(prefs)
	if err != nil {
		if logFile != nil {
			logFile.Close() //nolint:errcheck // exiting
		}
		exitOnError("loading config", err)
	}

	env.store = openStore(logger)
	if env.store != nil {
		env.closers = append(env.closers, env.store)
	}

	env.profile = resolveProfile(env.store, prefs.Profile, logger)

	if withSound {
		env.sound = audio.NewSoundManager(prefs.SoundEnabled, prefs.Volume, logger)
		env.sound.Initialize() //nolint:errcheck // logged; the game runs silent
		env.closers = append(env.closers, env.sound)
	}

	if logFile != nil {
		env.closers = append(env.closers, logFile)
	}

	logger.Info("starting",
		"difficulty", difficultyName(prefs),
		"grid", fmt.Sprintf("%dx%d", env.game.Grid.Cols, env.game.Grid.Rows),
		"profile", env.profile,
		"seed", flagSeed,
	)
	return env
}

// resolveProfile returns the profile to record games under: --profile
// wins over the saved setting. Unknown profiles fall back to guest.
func resolveProfile(store *storage.Store, saved string, logger *log.Logger) string {
	name := saved
	if flagProfile != "" {
		name = flagProfile
	}
	if name == "" || store == nil {
		return ""
	}
	if _, err := store.Profile(name); err != nil {
		logger.Warn("unknown profile, playing as guest", "profile", name)
		if flagProfile != "" {
			fmt.Fprintf(os.Stderr, "Warning: unknown profile %q, playing as guest\n", name)
		}
		return ""
	}
	return name
}

func difficultyName(prefs settings.Settings) string {
	if flagDifficulty != "" {
		return flagDifficulty
	}
	return prefs.Difficulty
}

// scores converts a possibly nil store for the option structs, so a
// nil *storage.Store never ends up inside a non-nil interface.
func (env *environment) scores() driver.ScoreStore {
	if env.store == nil {
		return nil
	}
	return env.store
}
