package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/huuugs/block/internal/modes"
	"github.com/huuugs/block/internal/settings"
	"github.com/huuugs/block/internal/storage"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage player profiles",
	Long: fmt.Sprintf(`List, create and delete player profiles. Up to %d profiles can
exist. Games played under a profile add to its per-mode stats.

Examples:
  blockeater profiles
  blockeater profiles create alice
  blockeater profiles use alice
  blockeater profiles stats alice
  blockeater profiles delete alice`, storage.MaxProfiles),
	Args: cobra.NoArgs,
	Run:  runProfilesList,
}

var profilesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesCreate,
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and its stats",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesDelete,
}

var profilesUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Make a profile the default (no name: play as guest)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runProfilesUse,
}

var profilesStatsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show a profile's per-mode stats",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesStats,
}

func init() {
	profilesCmd.AddCommand(profilesCreateCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
	profilesCmd.AddCommand(profilesUseCmd)
	profilesCmd.AddCommand(profilesStatsCmd)
}

// quietLogger is used by the non-interactive commands.
func quietLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
}

func runProfilesList(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	profiles, err := store.Profiles()
	exitOnError("listing profiles", err)

	if len(profiles) == 0 {
		fmt.Println("No profiles yet.")
		fmt.Println()
		fmt.Println("Run 'blockeater profiles create <name>' to add one.")
		return
	}

	current := settings.Open(quietLogger()).Get().Profile

	fmt.Printf("Profiles (%d/%d):\n", len(profiles), storage.MaxProfiles)
	fmt.Println()
	for _, p := range profiles {
		mark := " "
		if p.Name == current {
			mark = "*"
		}
		fmt.Printf("  %s %-20s  created %s\n", mark, p.Name, p.CreatedAt.Format("2006-01-02"))
	}
}

func runProfilesCreate(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	p, err := store.CreateProfile(args[0])
	if errors.Is(err, storage.ErrProfileLimit) {
		fmt.Fprintf(os.Stderr, "Error: at most %d profiles can exist\n", storage.MaxProfiles)
		os.Exit(1)
	}
	exitOnError("creating profile", err)
	fmt.Printf("Profile %q created.\n", p.Name)
}

func runProfilesDelete(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	exitOnError("deleting profile", store.DeleteProfile(args[0]))

	prefs := settings.Open(quietLogger())
	if prefs.Get().Profile == args[0] {
		prefs.SetProfile("")
		exitOnError("saving settings", prefs.Save())
	}
	fmt.Printf("Profile %q deleted.\n", args[0])
}

func runProfilesUse(_ *cobra.Command, args []string) {
	name := ""
	if len(args) == 1 {
		store := mustOpenStore()
		p, err := store.Profile(args[0])
		store.Close()
		exitOnError("selecting profile", err)
		name = p.Name
	}

	prefs := settings.Open(quietLogger())
	prefs.SetProfile(name)
	exitOnError("saving settings", prefs.Save())

	if name == "" {
		fmt.Println("Playing as guest.")
		return
	}
	fmt.Printf("Playing as %q.\n", name)
}

func runProfilesStats(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	stats, err := store.ProfileStats(args[0])
	exitOnError("reading profile stats", err)

	writeProfileStats(os.Stdout, args[0], stats)
}

// writeProfileStats prints a profile's per-mode table. Stage is the
// last stage cleared, shown only for modes that have stages.
func writeProfileStats(w io.Writer, name string, stats []storage.ProfileStats) {
	fmt.Fprintf(w, "Stats - %s\n\n", name)
	if len(stats) == 0 {
		fmt.Fprintln(w, "No games played yet.")
		return
	}

	fmt.Fprintf(w, "  %-16s  %-6s  %-5s  %-8s  %-3s  %-5s  %s\n", "Mode", "Best", "Games", "Time", "Lv", "Stage", "Last played")
	fmt.Fprintf(w, "  %-16s  %-6s  %-5s  %-8s  %-3s  %-5s  %s\n", "----", "----", "-----", "----", "--", "-----", "-----------")
	for _, s := range stats {
		stage := "-"
		if s.HighestStage > 0 {
			stage = strconv.Itoa(s.HighestStage)
		}
		fmt.Fprintf(w, "  %-16s  %-6d  %-5d  %-8s  %-3d  %-5s  %s\n",
			modes.Registry.Title(s.ModeID), s.HighScore, s.GamesPlayed,
			fmt.Sprintf("%d:%02d", s.TotalSecs/60, s.TotalSecs%60),
			s.HighestLevel, stage, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
