package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing immediately.

Controls:
  Left/Right, A/D  - Move
  Up, W, X         - Rotate
  Down, S          - Soft drop
  Space            - Hard drop
  C                - Hold
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 5
  hard   - Start at level 10
  fixed  - Start at level 1, never speed up

Examples:
  blocks play
  blocks play --difficulty hard
  blocks play --level 8
  blocks play --config ./my-blocks.yaml
  blocks play --pieces ./pieces/`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, piecesCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagPieces, "pieces", "", "Piece catalog file (.yaml, .txt) or legacy piece directory")
	}
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (overrides the preset)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := configureGame(flagDifficulty, flagLevel); err != nil {
		return err
	}

	game, err := registry.Create(blocks.ID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	st, err := tui.Run(game, store, runtimeConfig(), logger)
	if err != nil {
		return err
	}

	fmt.Printf("Score: %d  Level: %d  Lines: %d\n", st.Score, st.Level, st.Lines)
	return nil
}
