// lightsout is a terminal puzzle where pressing a switch toggles it and
// its orthogonal neighbors. Clear the board in as few moves as you can.
//
// Usage:
//
//	lightsout list               - List available difficulties
//	lightsout play [difficulty]  - Play (interactive menu if omitted)
//	lightsout scores [difficulty] - Show best results
//	lightsout serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible scrambles
//	--db <path>     - Set database path (default: ~/.lightsout/results.db)
//	--config <path> - Path to a custom difficulty config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightsout",
	Short: "Lights Out - clear the board in your terminal",
	Long: `Lights Out is a terminal puzzle game. Every switch you press toggles
itself and its orthogonal neighbors; the goal is to turn every light off.

Available commands:
  list     - Show available difficulties
  play     - Play directly or pick a difficulty interactively
  serve    - Start SSH server for remote play
  scores   - View best results

Examples:
  lightsout play
  lightsout play hard
  lightsout play --seed 42
  lightsout serve --ssh :2222
  lightsout scores normal`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lightsout/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom difficulty config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
