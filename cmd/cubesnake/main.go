// cubesnake is Snake played on the six faces of a cube, in the terminal.
//
// Usage:
//
//	cubesnake list            - List available modes
//	cubesnake play [mode]     - Play a mode (menu when omitted)
//	cubesnake serve           - Start SSH server for remote play
//	cubesnake config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/cubesnake/internal/games/cubesnake"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubesnake",
	Short: "Cube Snake - Snake on the surface of a cube",
	Long: `Cube Snake is Snake played on the six faces of a cube. The board is
drawn as an unfolded cross; leaving one face carries the snake onto the
neighbouring one.

Available commands:
  list     - Show all available modes
  play     - Play a mode (or pick one from a menu)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  cubesnake list
  cubesnake play
  cubesnake play cubesnake_classic --preset hard
  cubesnake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
