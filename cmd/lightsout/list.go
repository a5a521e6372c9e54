package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lightsout/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available difficulties",
	Long: `Show all difficulties from the active config.

Examples:
  lightsout list
  lightsout list --config ./my-difficulties.yaml`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available difficulties:")
	fmt.Println()
	fmt.Printf("  %-10s  %-7s  %s\n", "ID", "Board", "Scramble steps")
	fmt.Printf("  %-10s  %-7s  %s\n", "--", "-----", "--------------")

	for _, d := range cfg.Catalog() {
		fmt.Printf("  %-10s  %dx%d      %d\n", d.ID, d.Size, d.Size, d.Steps)
	}

	fmt.Println()
	fmt.Println("Play with: lightsout play <id>")
}
