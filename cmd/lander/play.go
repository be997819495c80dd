package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/audio"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start the lander.

Controls:
  Left/Right, A/D  - Rotate
  Up/W/Space       - Thrust (hold)
  Mouse wheel      - Fine rotation
  R                - Launch / restart
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Examples:
  lander play
  lander play --seed 42 --fps 30
  lander play --config ./my-lander.yaml --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	lcfg, err := config.LoadLander(flagConfig)
	if err != nil {
		log.Fatal("could not load config", "path", flagConfig, "err", err)
	}

	// Terminal size before the program starts; Bubble Tea corrects it with
	// the first WindowSizeMsg anyway.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.ScreenW, cfg.ScreenH = tui.WorldSize(width, height-1)

	sink := audio.NewSink(flagMute)
	if initErr := sink.Init(); initErr != nil {
		log.Warn("audio unavailable, continuing silent", "err", initErr)
	}
	defer sink.Close()

	if runErr := tui.Run(lcfg, cfg, sink); runErr != nil {
		log.Fatal("game crashed", "err", runErr)
	}
}
