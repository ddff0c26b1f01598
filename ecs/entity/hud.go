package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/prefabs"
)

// NewHUD builds the score/timer display. level overrides the label from
// hud.yaml when set.
func NewHUD(w *ecs.World, level string) (ecs.Entity, error) {
	spec, err := prefabs.LoadHUDSpec()
	if err != nil {
		return 0, fmt.Errorf("hud: load spec: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HUDTagComponent.Kind(), &component.HUDTag{}); err != nil {
		return 0, fmt.Errorf("hud: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{}); err != nil {
		return 0, fmt.Errorf("hud: add screen space: %w", err)
	}

	if level == "" {
		level = spec.Level
	}
	if err := ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{
		WorldTimer: spec.WorldTimer,
		Level:      level,
		Labels:     spec.Labels,
		TextColor:  spec.TextColor.Or(color.White),
		X:          spec.X,
		Y:          spec.Y,
		ColumnGap:  spec.ColumnGap,
	}); err != nil {
		return 0, fmt.Errorf("hud: add hud: %w", err)
	}

	return e, nil
}
