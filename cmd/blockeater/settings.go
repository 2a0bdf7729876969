package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huuugs/block/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show saved settings",
	Long: `Show the saved player settings. Settings are used when the
matching command line flag is not given.

Examples:
  blockeater settings
  blockeater settings set difficulty hard
  blockeater settings set sound false
  blockeater settings set volume 0.4`,
	Args: cobra.NoArgs,
	Run:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting (" + strings.Join(settings.Keys, ", ") + ")",
	Args:  cobra.ExactArgs(2),
	Run:   runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	m := settings.Open(quietLogger())
	s := m.Get()

	profile := s.Profile
	if profile == "" {
		profile = "(guest)"
	}
	fmt.Printf("  sound       %t\n", s.SoundEnabled)
	fmt.Printf("  volume      %.2f\n", s.Volume)
	fmt.Printf("  difficulty  %s\n", s.Difficulty)
	fmt.Printf("  profile     %s\n", profile)
	if !m.Persistent() {
		fmt.Println()
		fmt.Println("Settings storage is unavailable; changes will not be saved.")
	}
}

func runSettingsSet(_ *cobra.Command, args []string) {
	m := settings.Open(quietLogger())
	exitOnError("changing setting", m.Set(args[0], args[1]))
	exitOnError("saving settings", m.Save())
	fmt.Printf("%s set to %s\n", args[0], args[1])
}
