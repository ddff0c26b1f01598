package component

// Transform is an entity's draw position in map pixels, origin at the top
// left of the level and y growing down. The physics system writes it from
// the body every step.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
