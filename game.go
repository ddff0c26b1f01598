package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/screen"
)

// Game hosts the current screen and forwards ebiten's callbacks to it.
type Game struct {
	current screen.Screen
	logger  *log.Logger
	paused  bool
}

var _ screen.Host = (*Game)(nil)

func NewGame(logger *log.Logger) *Game {
	return &Game{logger: logger}
}

// SetScreen makes s current. The previous screen disposes itself.
func (g *Game) SetScreen(s screen.Screen) {
	if g.current != nil {
		g.current.Hide()
	}
	g.current = s
	g.paused = false
	if s != nil {
		s.Resize(common.VirtualWidth, common.VirtualHeight)
		s.Show()
	}
}

func (g *Game) Update() error {
	if g.current == nil {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.togglePause()
	}

	return g.current.Update(common.TimeStep)
}

func (g *Game) togglePause() {
	if p, ok := g.current.(interface{ Paused() bool }); ok {
		g.paused = p.Paused()
	}
	g.paused = !g.paused
	if g.paused {
		g.current.Pause()
	} else {
		g.current.Resume()
	}
	g.logger.Debug("pause", "paused", g.paused)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.current != nil {
		g.current.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.VirtualWidth, common.VirtualHeight
}

// Close disposes whatever screen is still showing.
func (g *Game) Close() {
	if g.current != nil {
		g.current.Dispose()
		g.current = nil
	}
}
