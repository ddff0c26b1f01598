package system

import (
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

// CameraSystem keeps the camera's horizontal center on its target. The
// camera transform is the top-left corner of the view in map pixels.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
	viewW, viewH float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{viewW: common.VirtualWidth, viewH: common.VirtualHeight}
}

// SetViewport changes the size of the view in pixels.
func (cs *CameraSystem) SetViewport(width, height float64) {
	if width > 0 {
		cs.viewW = width
	}
	if height > 0 {
		cs.viewH = height
	}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			cs.camEntity = camEntity
		}
	}
	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok || camComp.Frozen {
		return
	}

	if !ecs.IsAlive(w, cs.targetEntity) {
		targetEntity := findEntityByNameOrTag(w, camComp.TargetName)
		if targetEntity.Valid() {
			cs.targetEntity = targetEntity
		}
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	zoom := camComp.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	viewW := cs.viewW / zoom
	viewH := cs.viewH / zoom

	camTransform.X = targetTransform.X - viewW/2
	if camComp.ClampToLevel {
		if b, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
			bounds, _ := ecs.Get(w, b, component.LevelBoundsComponent.Kind())
			camTransform.X = common.Clamp(camTransform.X, 0, bounds.Width-viewW)
			camTransform.Y = bounds.Height - viewH
		}
	}
	if camTransform.X < 0 {
		camTransform.X = 0
	}
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" {
		if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
