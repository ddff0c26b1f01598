// mariobros is a side-scrolling platformer built on ebiten and chipmunk.
//
// Usage:
//
//	mariobros play [--level name] [--watch]   - play a level
//	mariobros scores [--level name] [--limit n] - list saved high scores
//
// Global flags:
//
//	--db <path>  - scores database (default: ~/.mariobros/scores.db)
//	--debug      - debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/mariobros/storage"
)

var (
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mariobros",
	Short: "A small Mario-style platformer",
	Long: `mariobros plays a tile-based side-scrolling level.

Examples:
  mariobros play
  mariobros play --level level1 --watch
  mariobros scores --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
