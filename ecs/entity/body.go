package entity

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/levels"
	"github.com/milk9111/mariobros/prefabs"
)

// newStaticBox builds a static body centered on a y-up pixel rectangle with a
// box fixture of the same size. The body is added to the space immediately.
func newStaticBox(space *cp.Space, e ecs.Entity, r levels.Rect, spec prefabs.TileSpec) *component.PhysicsBody {
	w := common.ToMeters(r.Width)
	h := common.ToMeters(r.Height)

	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: common.ToMeters(r.CenterX()), Y: common.ToMeters(r.CenterY())})
	body.UserData = e

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(spec.Friction)
	shape.SetCollisionType(component.FixtureCollisionType)
	shape.UserData = e

	pb := &component.PhysicsBody{
		Body:   body,
		Width:  w,
		Height: h,
		Static: true,
		Fixtures: []component.Fixture{{
			Shape: shape,
			Role:  component.FixtureBody,
			Layer: component.CollisionLayer{Category: spec.Category, Mask: spec.Mask},
		}},
	}
	shape.SetFilter(pb.Fixtures[0].Layer.Filter())
	Activate(space, pb)
	return pb
}

// newDynamicBody builds a body that never rotates. It is not added to the
// space.
func newDynamicBody(e ecs.Entity, mass, x, y float64) *cp.Body {
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.UserData = e
	return body
}

// circleFixture attaches a circle at a vertical offset to body.
func circleFixture(body *cp.Body, e ecs.Entity, radius, offsetY, friction float64, layer component.CollisionLayer) component.Fixture {
	shape := cp.NewCircle(body, radius, cp.Vector{X: 0, Y: offsetY})
	shape.SetFriction(friction)
	shape.SetCollisionType(component.FixtureCollisionType)
	shape.SetFilter(layer.Filter())
	shape.UserData = e
	return component.Fixture{Shape: shape, Role: component.FixtureBody, Layer: layer}
}

// headSensor attaches a horizontal sensor segment above the body origin.
func headSensor(body *cp.Body, e ecs.Entity, halfWidth, offsetY float64, layer component.CollisionLayer) component.Fixture {
	shape := cp.NewSegment(body, cp.Vector{X: -halfWidth, Y: offsetY}, cp.Vector{X: halfWidth, Y: offsetY}, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(component.FixtureCollisionType)
	shape.SetFilter(layer.Filter())
	shape.UserData = e
	return component.Fixture{Shape: shape, Role: component.FixtureHead, Layer: layer}
}

// polygonSensor attaches a convex sensor given counter-clockwise vertices in
// pixels.
func polygonSensor(body *cp.Body, e ecs.Entity, vertices [][]float64, layer component.CollisionLayer) component.Fixture {
	verts := make([]cp.Vector, 0, len(vertices))
	for _, v := range vertices {
		if len(v) < 2 {
			continue
		}
		verts = append(verts, cp.Vector{X: common.ToMeters(v[0]), Y: common.ToMeters(v[1])})
	}
	shape := cp.NewPolyShapeRaw(body, len(verts), verts, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(component.FixtureCollisionType)
	shape.SetFilter(layer.Filter())
	shape.UserData = e
	return component.Fixture{Shape: shape, Role: component.FixtureHead, Layer: layer}
}

// Activate adds a built body and its fixtures to the space. It is a no-op for
// bodies that are already active.
func Activate(space *cp.Space, pb *component.PhysicsBody) {
	if space == nil || pb == nil || pb.Active || pb.Body == nil {
		return
	}
	space.AddBody(pb.Body)
	for _, f := range pb.Fixtures {
		if f.Shape != nil {
			space.AddShape(f.Shape)
		}
	}
	pb.Active = true
}

// Deactivate removes a body and its fixtures from the space. It must not be
// called while the space is stepping.
func Deactivate(space *cp.Space, pb *component.PhysicsBody) {
	if space == nil || pb == nil || !pb.Active || pb.Body == nil {
		return
	}
	for _, f := range pb.Fixtures {
		if f.Shape != nil && space.ContainsShape(f.Shape) {
			space.RemoveShape(f.Shape)
		}
	}
	if space.ContainsBody(pb.Body) {
		space.RemoveBody(pb.Body)
	}
	pb.Active = false
}

// transformFor returns a transform at a world position in meters.
func transformFor(bounds component.LevelBounds, x, y float64) *component.Transform {
	px, py := bounds.ToPixels(x, y, common.PPM)
	return &component.Transform{X: px, Y: py, ScaleX: 1, ScaleY: 1}
}

func animationFor(spec prefabs.AnimationSpec) *component.Animation {
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, defSpec := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        defSpec.Row,
			ColStart:   defSpec.ColStart,
			FrameCount: defSpec.FrameCount,
			FrameW:     defSpec.FrameW,
			FrameH:     defSpec.FrameH,
			FPS:        defSpec.FPS,
			Loop:       defSpec.Loop,
		}
	}
	return &component.Animation{
		SheetName: spec.Sheet,
		Defs:      defs,
		Current:   spec.Current,
		Playing:   true,
	}
}

func levelBounds(w *ecs.World) component.LevelBounds {
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); ok {
			return *b
		}
	}
	return component.LevelBounds{}
}
