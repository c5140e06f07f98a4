// overland is a top-down exploration game played in the terminal.
//
// Usage:
//
//	overland list              - List available modes
//	overland play <mode>       - Play a mode
//	overland menu              - Start the interactive mode picker
//	overland serve             - Start SSH server for remote play
//	overland scores <mode>     - Show best runs for a mode
//	overland map               - Print a region of the generated world
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.overland/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/overland/internal/game/roam"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "overland",
	Short: "Overland - Explore an endless world in your terminal",
	Long: `Overland is a terminal game about wandering a procedurally generated
world of forests, roads, lakes and cliffs.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  map      - Print a region of the generated world

Examples:
  overland list
  overland play roam
  overland menu
  overland serve --ssh :2222
  overland scores rush
  overland map --radius 3`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.overland/runs.db", "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mapCmd)
}
