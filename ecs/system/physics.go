package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/ecs/entity"
)

// ContactListener receives the first contact between two fixtures. It runs
// inside the physics step: it may change filters, velocities and component
// flags, but must not add or remove bodies or shapes. Returning false makes
// the space ignore the pair until they separate.
type ContactListener interface {
	BeginContact(w *ecs.World, a, b Contact) bool
}

// Contact is one side of a contact pair.
type Contact struct {
	Entity  ecs.Entity
	Body    *component.PhysicsBody
	Fixture *component.Fixture
}

type PhysicsSystem struct {
	space    *cp.Space
	listener ContactListener

	handlersReady bool
	// world is set only while the space is stepping.
	world   *ecs.World
	tracked map[ecs.Entity]*component.PhysicsBody
}

func NewSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = common.SolverIterations
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return space
}

func NewPhysicsSystem(space *cp.Space, listener ContactListener) *PhysicsSystem {
	if space == nil {
		space = NewSpace()
	}
	return &PhysicsSystem{
		space:    space,
		listener: listener,
		tracked:  make(map[ecs.Entity]*component.PhysicsBody),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Update removes the bodies of destroyed entities, steps the space once and
// copies body positions into transforms.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)

	ps.world = w
	ps.space.Step(common.TimeStep)
	ps.world = nil

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(component.FixtureCollisionType, component.FixtureCollisionType)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil || sys.listener == nil || sys.world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := sys.contactFor(shapeA)
		b, okB := sys.contactFor(shapeB)
		if !okA || !okB {
			return true
		}
		return sys.listener.BeginContact(sys.world, a, b)
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) contactFor(shape *cp.Shape) (Contact, bool) {
	if shape == nil {
		return Contact{}, false
	}
	e, ok := shape.UserData.(ecs.Entity)
	if !ok {
		return Contact{}, false
	}
	pb, ok := ecs.Get(ps.world, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return Contact{}, false
	}
	f, ok := pb.Fixture(shape)
	if !ok {
		return Contact{}, false
	}
	return Contact{Entity: e, Body: pb, Fixture: f}, true
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	bounds := component.LevelBounds{}
	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); ok {
			bounds = *b
		}
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		ps.tracked[e] = bodyComp
		if bodyComp.Body == nil || bodyComp.Static || !bodyComp.Active {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X, transform.Y = bounds.ToPixels(pos.X, pos.Y, common.PPM)
	})
}

// cleanupEntities takes the bodies of destroyed entities out of the space.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		ps.tracked[e] = pb
	})
	for e, pb := range ps.tracked {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		entity.Deactivate(ps.space, pb)
		delete(ps.tracked, e)
	}
}
