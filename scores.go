package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/mariobros/storage"
)

var (
	flagScoresLevel string
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `List the best saved scores, highest first.

Examples:
  mariobros scores
  mariobros scores --level level1 --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Only show scores for this level")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.TopScores(context.Background(), flagScoresLevel, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores yet. Play a game first!")
		return nil
	}

	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out, "===========")
	for i, e := range entries {
		fmt.Fprintf(out, "%2d. %06d  %-8s %s\n", i+1, e.Score, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
