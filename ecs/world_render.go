package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem draws ECS entities each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Draw calls every render-capable system in order.
func Draw(w *World, screen *ebiten.Image, systems ...RenderSystem) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range systems {
		if s != nil {
			s.Draw(w, screen)
		}
	}
}
