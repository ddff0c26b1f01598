package system

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mariobros/assets"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

// AnimationSystem advances sprite sheet animations and points each sprite
// at its current frame. Sheets are loaded by name on first use.
type AnimationSystem struct {
	logger *log.Logger
}

func NewAnimationSystem(logger *log.Logger) *AnimationSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &AnimationSystem{logger: logger}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if anim.Sheet == nil && anim.SheetName != "" {
			sheet, err := assets.LoadImage(anim.SheetName)
			if err != nil {
				a.logger.Warn("load sheet", "sheet", anim.SheetName, "err", err)
				anim.SheetName = ""
				return
			}
			anim.Sheet = sheet
		}
		if anim.Sheet == nil {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing {
			// Advance frame every N ticks based on FPS
			ticksPerFrame := 1
			if def.FPS > 0 {
				ticksPerFrame = int(common.TPS / def.FPS)
			}
			if ticksPerFrame < 1 {
				ticksPerFrame = 1
			}

			anim.FrameTimer++
			if anim.FrameTimer >= ticksPerFrame {
				anim.FrameTimer = 0
				anim.Frame++
				if anim.Frame >= def.FrameCount {
					if def.Loop {
						anim.Frame = 0
					} else {
						anim.Frame = def.FrameCount - 1
						anim.Playing = false
					}
				}
			}
		}

		x := def.ColStart*def.FrameW + anim.Frame*def.FrameW
		y := def.Row * def.FrameH
		rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.Image = anim.Sheet.SubImage(rect).(*ebiten.Image)
	})
}
