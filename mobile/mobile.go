//go:build mobile

// Package mobile is the ebitenmobile binding entry point. Build it with
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.huuugs.blockeater -o blockeater.aar ./mobile
//
// Settings are kept with gdata, which resolves the app data directory
// on Android and iOS. Scores are not recorded on mobile, so games are
// played as guest.
package mobile

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/huuugs/block/internal/audio"
	"github.com/huuugs/block/internal/platform/gui"
	"github.com/huuugs/block/internal/settings"
)

func init() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blockeater"})

	prefs := settings.Open(logger).Get()

	sound := audio.NewSoundManager(prefs.SoundEnabled, prefs.Volume, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("sound unavailable", "err", err)
		sound = nil
	}

	opts := gameOptions(prefs, sound, logger)
	game, err := gui.NewGame(opts)
	if err != nil {
		logger.Fatal("cannot start game", "err", err)
	}
	mobile.SetGame(game)
}

// Dummy forces gomobile to compile this package.
func Dummy() {}
