// lander is a terminal lunar landing game.
//
// Usage:
//
//	lander play              - Start a game
//	lander keys              - Show the controls
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible terrain
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "lander",
	Short: "Lunar lander for your terminal",
	Long: `Pilot a lunar module down to one of the landing pads. Fight gravity,
watch your fuel, and keep the touchdown slow and level. Narrow pads pay more.

Examples:
  lander play
  lander play --seed 42
  lander play --config ./my-lander.yaml
  lander keys`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Bare `lander` starts a game
	rootCmd.Run = runPlay

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
}
