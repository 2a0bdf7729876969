package mobile

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/huuugs/block/internal/audio"
	"github.com/huuugs/block/internal/settings"
)

func TestGameOptionsReleaseSound(t *testing.T) {
	logger := log.New(io.Discard)
	prefs := settings.Defaults()
	sound := audio.NewSoundManager(true, 0.5, logger)

	opts := gameOptions(prefs, sound, logger)
	if opts.Sound != sound {
		t.Error("sound manager not passed to the game")
	}
	if len(opts.Closers) != 1 || opts.Closers[0] != io.Closer(sound) {
		t.Errorf("closers = %v, expected the sound manager", opts.Closers)
	}

	opts = gameOptions(prefs, nil, logger)
	if opts.Sound != nil || len(opts.Closers) != 0 {
		t.Errorf("silent game got sound %v, closers %v", opts.Sound, opts.Closers)
	}
}

func TestGameOptionsPlayAsGuest(t *testing.T) {
	prefs := settings.Defaults()
	prefs.Profile = "ghost"
	prefs.Difficulty = "fixed"

	opts := gameOptions(prefs, nil, log.New(io.Discard))
	if opts.Profile != "" {
		t.Errorf("profile = %q, expected guest", opts.Profile)
	}
	if opts.Game.Difficulty.Enabled {
		t.Error("fixed difficulty not applied")
	}
}
