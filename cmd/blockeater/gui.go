package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huuugs/block/internal/platform/gui"
)

var (
	flagWidth  int
	flagHeight int
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Start Block Eater in a desktop window.

Controls:
  Arrows/WASD  - Steer (menu: pick mode and level)
  Enter/Space  - Start, resume, back to menu
  P/Esc        - Pause and resume
  M            - Mute
  Q            - Quit
  Swipe        - Steer with mouse or touch
  Tap          - Confirm; during play a tap on the status bar pauses

Examples:
  blockeater gui
  blockeater gui --width 1024 --height 900 --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().IntVar(&flagWidth, "width", 720, "Window width in pixels")
	guiCmd.Flags().IntVar(&flagHeight, "height", 640, "Window height in pixels")
}

func runGUI(_ *cobra.Command, _ []string) {
	env := setup(true)

	err := gui.Run(gui.Options{
		Game:    env.game,
		Seed:    flagSeed,
		Profile: env.profile,
		Scores:  env.scores(),
		Sound:   env.sound,
		Logger:  env.logger,
		Width:   flagWidth,
		Height:  flagHeight,
		Closers: env.closers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
