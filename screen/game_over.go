package screen

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen shows the final message and starts a new game on click.
type GameOverScreen struct {
	ui      *ebitenui.UI
	restart func() (Screen, error)
	host    Host
	score   int
	best    int
	paused  bool
}

// NewGameOverScreen builds the screen; its UI is created on first use. best
// is the top saved score for the level. restart builds the screen shown
// after a click and may be nil.
func NewGameOverScreen(host Host, score, best int, restart func() (Screen, error)) *GameOverScreen {
	if best < score {
		best = score
	}
	return &GameOverScreen{
		restart: restart,
		host:    host,
		score:   score,
		best:    best,
	}
}

// scoreLines is the text shown under the title.
func (g *GameOverScreen) scoreLines() []string {
	return []string{
		fmt.Sprintf("SCORE %06d", g.score),
		fmt.Sprintf("TOP %06d", g.best),
	}
}

func newGameOverUI(lines []string) *ebitenui.UI {
	centered := widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}))
	title := widget.NewText(widget.TextOpts.Text("GAME OVER", &uiFace, white), centered)
	hint := widget.NewText(widget.TextOpts.Text("Click to Play Again", &uiFace, white), centered)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	column.AddChild(title)
	for _, line := range lines {
		column.AddChild(widget.NewText(widget.TextOpts.Text(line, &uiFace, white), centered))
	}
	column.AddChild(hint)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(column)
	return &ebitenui.UI{Container: root}
}

func (g *GameOverScreen) Score() int { return g.score }

// Best is the top score shown next to the final one.
func (g *GameOverScreen) Best() int { return g.best }

func (g *GameOverScreen) Show()   {}
func (g *GameOverScreen) Hide()   {}
func (g *GameOverScreen) Pause()  { g.paused = true }
func (g *GameOverScreen) Resume() { g.paused = false }

func (g *GameOverScreen) Resize(width, height int) {}

func (g *GameOverScreen) Update(dt float64) error {
	if g.paused {
		return nil
	}
	if g.ui == nil {
		g.ui = newGameOverUI(g.scoreLines())
	}
	g.ui.Update()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	return g.Restart()
}

// Restart builds a fresh screen and hands it to the host.
func (g *GameOverScreen) Restart() error {
	if g.restart == nil || g.host == nil {
		return nil
	}
	next, err := g.restart()
	if err != nil {
		return err
	}
	g.host.SetScreen(next)
	g.Dispose()
	return nil
}

func (g *GameOverScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.ui == nil {
		g.ui = newGameOverUI(g.scoreLines())
	}
	g.ui.Draw(screen)
}

func (g *GameOverScreen) Dispose() {
	g.restart = nil
}
