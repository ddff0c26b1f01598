package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 14.0

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// HUDSystem counts the world timer down once every TPS ticks and draws the
// score panel in screen space. Time is up one second after the timer shows 0.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem { return &HUDSystem{} }

func (s *HUDSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.HUDComponent.Kind(), func(_ ecs.Entity, hud *component.HUD) {
		if hud.TimeUp {
			return
		}
		hud.Ticks++
		if hud.Ticks < common.TPS {
			return
		}
		hud.Ticks = 0
		if hud.WorldTimer > 0 {
			hud.WorldTimer--
			return
		}
		hud.TimeUp = true
	})
}

func (s *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.HUDComponent.Kind(), func(_ ecs.Entity, hud *component.HUD) {
		values := []string{
			fmt.Sprintf("%06d", hud.Score),
			hud.Level,
			fmt.Sprintf("%03d", hud.WorldTimer),
		}
		for i, v := range values {
			x := hud.X + float64(i)*hud.ColumnGap
			if i < len(hud.Labels) {
				drawHUDText(screen, hud.Labels[i], x, hud.Y, hud)
			}
			drawHUDText(screen, v, x, hud.Y+hudLineHeight, hud)
		}
	})
}

func drawHUDText(screen *ebiten.Image, s string, x, y float64, hud *component.HUD) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	if hud.TextColor != nil {
		op.ColorScale.ScaleWithColor(hud.TextColor)
	}
	text.Draw(screen, s, hudFace, op)
}

// addScore adds v to the HUD score.
func addScore(w *ecs.World, v int) {
	e, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	if hud, ok := ecs.Get(w, e, component.HUDComponent.Kind()); ok {
		hud.AddScore(v)
	}
}

// Score returns the current HUD score.
func Score(w *ecs.World) int {
	e, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return 0
	}
	if hud, ok := ecs.Get(w, e, component.HUDComponent.Kind()); ok {
		return hud.Score
	}
	return 0
}
