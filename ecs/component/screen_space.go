package component

// ScreenSpace marks entities drawn in screen space, unaffected by the camera.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
