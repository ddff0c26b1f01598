package component

import "github.com/jakecoffman/cp"

// FixtureRole tells the contact listener which part of a body touched.
type FixtureRole int

const (
	FixtureBody FixtureRole = iota
	FixtureHead
)

// FixtureCollisionType is shared by every shape; contacts are told apart by
// their filter categories.
const FixtureCollisionType cp.CollisionType = 1

// Fixture is one shape attached to a body together with its filter.
type Fixture struct {
	Shape *cp.Shape
	Role  FixtureRole
	Layer CollisionLayer
}

// PhysicsBody stores Chipmunk2D runtime data. The space owns the body and its
// shapes; the component only points at them. Sizes are in meters.
type PhysicsBody struct {
	Body     *cp.Body
	Fixtures []Fixture
	Width    float64
	Height   float64
	Radius   float64
	Static   bool
	// Active is false while the body is built but not yet added to the space.
	Active bool
}

// Shape returns the first body fixture's shape.
func (p *PhysicsBody) Shape() *cp.Shape {
	if p == nil || len(p.Fixtures) == 0 {
		return nil
	}
	return p.Fixtures[0].Shape
}

// Fixture returns the fixture wrapping shape.
func (p *PhysicsBody) Fixture(shape *cp.Shape) (*Fixture, bool) {
	if p == nil || shape == nil {
		return nil, false
	}
	for i := range p.Fixtures {
		if p.Fixtures[i].Shape == shape {
			return &p.Fixtures[i], true
		}
	}
	return nil, false
}

// SetCategory reassigns the category of every fixture, keeping masks.
func (p *PhysicsBody) SetCategory(category uint) {
	if p == nil {
		return
	}
	for i := range p.Fixtures {
		p.Fixtures[i].SetCategory(category)
	}
}

// SetMask reassigns the mask of every fixture, keeping categories.
func (p *PhysicsBody) SetMask(mask uint) {
	if p == nil {
		return
	}
	for i := range p.Fixtures {
		p.Fixtures[i].Layer.Mask = mask
		if p.Fixtures[i].Shape != nil {
			p.Fixtures[i].Shape.SetFilter(p.Fixtures[i].Layer.Filter())
		}
	}
}

func (f *Fixture) SetCategory(category uint) {
	f.Layer.Category = category
	if f.Shape != nil {
		f.Shape.SetFilter(f.Layer.Filter())
	}
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
