// blockeater is a grid arcade game: steer the eater, swallow blocks,
// grow a trail and level up. It runs in the terminal, in a window, or
// over SSH.
//
// Usage:
//
//	blockeater play              - Play in the terminal
//	blockeater gui               - Play in a window (mouse, touch, keys)
//	blockeater modes             - List game modes and levels
//	blockeater scores [mode]     - Show high scores
//	blockeater profiles          - Manage player profiles
//	blockeater settings          - Show or change saved settings
//	blockeater serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--fps <rate>         - Display frame rate (0 = from config)
//	--seed <value>       - RNG seed for reproducible sessions
//	--profile <name>     - Player profile
//	--db <path>          - Scores database (default: ~/.blockeater/scores.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/huuugs/block/internal/config"
	"github.com/huuugs/block/internal/settings"
	"github.com/huuugs/block/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
	flagProfile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockeater",
	Short: "Block Eater - a grid arcade game",
	Long: `Block Eater is a grid arcade game. Steer the eater around the board,
swallow blocks for points, drag a growing trail and level up.

Available commands:
  play      - Play in the terminal
  gui       - Play in a window
  modes     - List game modes and levels
  scores    - View high scores
  profiles  - Manage player profiles
  settings  - Show or change saved settings
  serve     - Start SSH server for remote play

Examples:
  blockeater play
  blockeater play --difficulty hard --seed 42
  blockeater gui
  blockeater scores endless
  blockeater serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (default: saved setting)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Display frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Player profile to record games under (default: saved setting)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/"+config.AppDir+"/blockeater.log for full-screen commands)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the logger. Full-screen frontends own the terminal,
// so they log to a file; everything else logs to stderr.
func newLogger(fullScreen bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "blockeater",
		Level:           level,
	}

	path := flagLogFile
	if path == "" && fullScreen {
		path = config.UserPath("blockeater.log")
	}
	if path == "" {
		return log.NewWithOptions(os.Stderr, opts), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f, nil
}

// loadGameConfig loads the config and applies the difficulty preset
// from --difficulty or, failing that, the saved setting.
func loadGameConfig(prefs settings.Settings) (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	name := flagDifficulty
	if name == "" {
		name = prefs.Difficulty
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Frame.FPS = flagFPS
	}
	return cfg, nil
}

// openStore opens the scores database. Failure is logged and the game
// runs without recording scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable, scores will not be saved", "err", err)
		return nil
	}
	return store
}

// mustOpenStore opens the scores database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// exitOnError prints err and exits with status 1.
func exitOnError(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
		os.Exit(1)
	}
}
