package entity

import (
	"fmt"

	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/prefabs"
)

// NewGoomba builds a goomba whose body is not yet in the space. Its origin
// is x,y in meters.
func NewGoomba(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return newEnemy(w, component.EnemyGoomba, x, y)
}

// NewTurtle builds a turtle the same way as NewGoomba.
func NewTurtle(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return newEnemy(w, component.EnemyTurtle, x, y)
}

func newEnemy(w *ecs.World, kind component.EnemyKind, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadEnemySpec(kind.String())
	if err != nil {
		return 0, fmt.Errorf("%s: load spec: %w", kind, err)
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Kind:      kind,
		State:     component.EnemyWalking,
		VelocityX: spec.Velocity.X,
		VelocityY: spec.Velocity.Y,
		KickSpeed: spec.KickSpeed,
		Script:    spec.Script,
		Tuning:    spec.Tuning,

		StompScore:  spec.StompScore,
		StompBounce: spec.StompBounce,
		DeadImpulse: spec.DeadImpulse,
	}); err != nil {
		return 0, fmt.Errorf("%s: add enemy: %w", kind, err)
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transformFor(levelBounds(w), x, y)); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", kind, err)
	}

	body := newDynamicBody(e, spec.Mass, x, y)
	layer := component.CollisionLayer{Category: spec.Collision.Category, Mask: spec.Collision.Mask}
	headLayer := component.CollisionLayer{Category: spec.Head.Category, Mask: spec.Collision.Mask}
	radius := common.ToMeters(spec.Radius)
	pb := &component.PhysicsBody{
		Body:   body,
		Radius: radius,
		Fixtures: []component.Fixture{
			circleFixture(body, e, radius, 0, spec.Friction, layer),
			polygonSensor(body, e, spec.Head.Vertices, headLayer),
		},
	}
	body.SetVelocity(spec.Velocity.X, spec.Velocity.Y)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), pb); err != nil {
		return 0, fmt.Errorf("%s: add physics body: %w", kind, err)
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		OriginX: spec.Sprite.OriginX,
		OriginY: spec.Sprite.OriginY,
	}); err != nil {
		return 0, fmt.Errorf("%s: add sprite: %w", kind, err)
	}

	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), animationFor(spec.Animation)); err != nil {
		return 0, fmt.Errorf("%s: add animation: %w", kind, err)
	}

	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("%s: add render layer: %w", kind, err)
	}

	return e, nil
}
