package component

import "github.com/jakecoffman/cp"

// CollisionLayer is the filter of a single fixture. Category holds exactly
// one bit; Mask lists the categories the fixture may touch.
type CollisionLayer struct {
	Category uint `yaml:"category"`
	Mask     uint `yaml:"mask"`
}

// Filter converts the layer into a Chipmunk shape filter.
func (l CollisionLayer) Filter() cp.ShapeFilter {
	return cp.ShapeFilter{Group: 0, Categories: l.Category, Mask: l.Mask}
}
