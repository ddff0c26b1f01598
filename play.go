package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/levels"
	"github.com/milk9111/mariobros/screen"
	"github.com/milk9111/mariobros/storage"
)

var (
	flagLevel string
	flagWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Open a window and play a level. Esc pauses.

Examples:
  mariobros play
  mariobros play --level level1
  mariobros play --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	usage := "Level name"
	if names, err := levels.Names(); err == nil {
		usage = fmt.Sprintf("Level name (one of %s)", strings.Join(names, ", "))
	}
	playCmd.Flags().StringVar(&flagLevel, "level", levels.DefaultLevel, usage)
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload prefab specs and scripts when they change on disk")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger("mariobros")

	opts := []screen.Option{
		screen.WithLevel(flagLevel),
		screen.WithWatch(flagWatch),
		screen.WithLogger(logger),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
	} else {
		defer store.Close()
		opts = append(opts, screen.WithScores(store))
	}

	game := NewGame(logger)
	first, err := screen.NewPlayScreen(game, opts...)
	if err != nil {
		return err
	}
	game.SetScreen(first)

	ebiten.SetWindowSize(common.VirtualWidth*common.WindowScale, common.VirtualHeight*common.WindowScale)
	ebiten.SetWindowTitle("mariobros")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(common.TPS)

	defer game.Close()
	return ebiten.RunGame(game)
}
