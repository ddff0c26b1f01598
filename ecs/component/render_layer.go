package component

// RenderLayer orders sprites; tile layers always draw underneath.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
