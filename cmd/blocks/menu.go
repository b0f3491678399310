package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker",
	Long: `Start in interactive menu mode.

Pick a difficulty preset or a start level; after a game you return to the
menu. Tab opens the high score table.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  blocks menu
  blocks menu --fps 30
  blocks menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		high := 0
		if store != nil {
			if h, err := store.HighScore(blocks.ID); err == nil {
				high = h
			}
		}

		choice, err := tui.RunMenu(cfg, high)
		if err != nil {
			return err
		}
		cfg = choice.Config

		if choice.Quit {
			return nil
		}

		if choice.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, blocks.ID, gameTitle(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard", "err", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if _, err := configureGame(string(choice.Preset), choice.Level); err != nil {
			return err
		}

		game, err := registry.Create(blocks.ID)
		if err != nil {
			return err
		}

		// Fresh seed per game unless --seed pinned it.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		st, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			logger.Error("game", "err", err)
			continue
		}
		logger.Debug("back to menu", "score", st.Score)
	}
}
