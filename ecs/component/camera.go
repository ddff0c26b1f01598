package component

import "image/color"

type Camera struct {
	TargetName   string
	Zoom         float64
	ClampToLevel bool
	ClearColor   color.Color
	// Frozen holds the camera at its last position.
	Frozen bool
}

var CameraComponent = NewComponent[Camera]()
