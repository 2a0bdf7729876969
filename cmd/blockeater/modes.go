package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huuugs/block/internal/modes"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List game modes and levels",
	Long:  `Shows the available game modes and the stages of the level mode.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, id := range modes.Order {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, id := range modes.Order {
		fmt.Printf("  %-*s  %s\n", maxIDLen, id, modes.Registry.Title(id))
	}

	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-6s  %-5s  %-6s  %s\n", "#", "Target", "Eater", "Time", "Description")
	fmt.Printf("  %-3s  %-6s  %-5s  %-6s  %s\n", "-", "------", "-----", "----", "-----------")
	for _, l := range modes.Levels {
		limit := "-"
		if l.TimeLimit > 0 {
			secs := int(l.TimeLimit)
			limit = fmt.Sprintf("%d:%02d", secs/60, secs%60)
		}
		fmt.Printf("  %-3d  %-6d  Lv %-2d  %-6s  %s\n", l.Number, l.TargetScore, l.TargetLevel, limit, l.Description)
	}

	fmt.Println()
	fmt.Println("Run 'blockeater play' and pick a mode from the menu.")
}
