package mobile

import (
	"github.com/charmbracelet/log"

	"github.com/huuugs/block/internal/audio"
	"github.com/huuugs/block/internal/config"
	"github.com/huuugs/block/internal/platform/gui"
	"github.com/huuugs/block/internal/settings"
)

// gameOptions builds the game options from the saved settings. There is
// no score store on mobile, so a saved profile cannot be checked and
// games are played as guest. sound, if any, is released with the game.
func gameOptions(prefs settings.Settings, sound *audio.SoundManager, logger *log.Logger) gui.Options {
	cfg := config.DefaultGameConfig()
	if preset, ok := config.ParsePreset(prefs.Difficulty); ok {
		config.ApplyPreset(&cfg, preset)
	}

	if prefs.Profile != "" {
		logger.Debug("profile ignored without a score store", "profile", prefs.Profile)
	}

	opts := gui.Options{Game: cfg, Logger: logger}
	if sound != nil {
		opts.Sound = sound
		opts.Closers = append(opts.Closers, sound)
	}
	return opts
}
