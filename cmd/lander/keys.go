package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the controls",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(`Flight controls:

  Left / A / H      rotate counterclockwise
  Right / D / L     rotate clockwise
  Up / W / Space    thrust (hold)
  Mouse wheel       fine rotation trim

Session:

  R / Enter         launch, next attempt, new game
  P / Esc           pause and resume
  Q / Ctrl+C        quit

Touch down slowly and level on a pad. Narrow pads multiply the score.
Stay clear of the mountain walls on both edges.
`)
	},
}
