package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores with level and cleared lines.

Examples:
  blocks scores
  blocks scores --limit 25
  blocks scores --all
  blocks scores --clear
  blocks scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded game")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "clear")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearScores(blocks.ID); err != nil {
			return err
		}
		logger.Info("scores cleared", "db", flagDBPath)
		fmt.Fprintf(out, "Cleared all %s scores.\n", gameTitle())
		return nil
	}

	limit := flagScoresLimit
	if flagScoresAll {
		limit = 0
	}
	return printScores(out, store, limit)
}

// printScores writes the score table and a stats summary. A limit of 0
// lists every game.
func printScores(out io.Writer, store *storage.Store, limit int) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if limit > 0 {
		scores, err = store.TopScores(blocks.ID, limit)
	} else {
		scores, err = store.AllScores(blocks.ID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", gameTitle())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'blocks play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Level", "Lines", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %-5d  %s\n", i+1, e.Score, e.Level, e.Lines, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(blocks.ID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Total lines: %d\n", stats.HighScore, stats.GamesCount, stats.TotalLines)
	}
	return nil
}
