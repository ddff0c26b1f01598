package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/prefabs"
)

var skyBlue = color.RGBA{R: 0x5c, G: 0x94, B: 0xfc, A: 0xff}

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := cameraSpec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		TargetName:   cameraSpec.Target,
		Zoom:         zoom,
		ClampToLevel: cameraSpec.Clamp,
		ClearColor:   cameraSpec.ClearColor.Or(skyBlue),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
