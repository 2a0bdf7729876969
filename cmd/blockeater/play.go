package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/huuugs/block/internal/platform/tui"
)

var flagNoMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Block Eater in the terminal.

When profiles exist and --profile is not given, a profile picker is
shown first. Press tab there to open the scoreboard.

Controls:
  Arrows/WASD  - Steer (menu: pick mode and level)
  Enter/Space  - Start, resume, back to menu
  P/Esc        - Pause and resume
  M            - Mute
  Q/Ctrl+C     - Quit
  Mouse drag   - Swipe to steer

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, fewer lives, more obstacles
  fixed  - No progression

Examples:
  blockeater play
  blockeater play --difficulty hard
  blockeater play --profile alice --seed 42
  blockeater play --config ./my-blockeater.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the profile picker")
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	env := setup(true)

	if env.store != nil && flagProfile == "" && !flagNoMenu {
		profile, ok := pickProfile(env, width, height)
		if !ok {
			closeAll(env)
			return
		}
		env.profile = profile
	}

	err := tui.Run(tui.GameOptions{
		Game:    env.game,
		Seed:    flagSeed,
		Profile: env.profile,
		Scores:  env.scores(),
		Sound:   env.sound,
		Logger:  env.logger,
		Closers: env.closers,
	}, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// pickProfile shows the profile menu until a profile is chosen. The
// scoreboard can be opened from the menu and returns to it. ok is false
// when the user quits.
func pickProfile(env *environment, width, height int) (profile string, ok bool) {
	profiles, err := env.store.Profiles()
	if err != nil {
		env.logger.Warn("cannot list profiles", "err", err)
		return env.profile, true
	}
	if len(profiles) == 0 {
		return env.profile, true
	}

	for {
		res, err := tui.RunProfileMenu(profiles, env.profile, width, height)
		if err != nil {
			env.logger.Error("profile menu failed", "err", err)
			return "", false
		}
		switch {
		case res.Quit:
			return "", false
		case res.WantsScoreboard:
			if err := tui.RunScoreboard(env.store, "", width, height); err != nil {
				env.logger.Error("scoreboard failed", "err", err)
				return "", false
			}
			continue
		}

		env.prefs.SetProfile(res.Profile)
		if err := env.prefs.Save(); err != nil {
			env.logger.Warn("cannot save profile choice", "err", err)
		}
		return res.Profile, true
	}
}

// closeAll releases the environment when no driver took ownership.
func closeAll(env *environment) {
	for _, c := range env.closers {
		if err := c.Close(); err != nil {
			env.logger.Warn("close failed", "err", err)
		}
	}
}
