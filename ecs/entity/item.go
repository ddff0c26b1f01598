package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/prefabs"
)

// NewItem instantiates the actor an item definition names and adds its body
// to the space. It must not be called while the space is stepping.
func NewItem(w *ecs.World, space *cp.Space, def component.ItemDef) (ecs.Entity, error) {
	switch def.Kind {
	case component.ItemMushroom:
		return NewMushroom(w, space, def.X, def.Y)
	}
	return 0, fmt.Errorf("item: unknown kind %d", def.Kind)
}

func NewMushroom(w *ecs.World, space *cp.Space, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadItemSpec("mushroom")
	if err != nil {
		return 0, fmt.Errorf("mushroom: load spec: %w", err)
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.ItemComponent.Kind(), &component.Item{
		Kind:      component.ItemMushroom,
		VelocityX: spec.Speed,
	}); err != nil {
		return 0, fmt.Errorf("mushroom: add item: %w", err)
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transformFor(levelBounds(w), x, y)); err != nil {
		return 0, fmt.Errorf("mushroom: add transform: %w", err)
	}

	body := newDynamicBody(e, spec.Mass, x, y)
	radius := common.ToMeters(spec.Radius)
	layer := component.CollisionLayer{Category: spec.Collision.Category, Mask: spec.Collision.Mask}
	pb := &component.PhysicsBody{
		Body:     body,
		Radius:   radius,
		Fixtures: []component.Fixture{circleFixture(body, e, radius, 0, spec.Friction, layer)},
	}
	body.SetVelocity(spec.Speed, 0)
	Activate(space, pb)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), pb); err != nil {
		return 0, fmt.Errorf("mushroom: add physics body: %w", err)
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		OriginX: spec.Sprite.OriginX,
		OriginY: spec.Sprite.OriginY,
	}); err != nil {
		return 0, fmt.Errorf("mushroom: add sprite: %w", err)
	}

	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), animationFor(spec.Animation)); err != nil {
		return 0, fmt.Errorf("mushroom: add animation: %w", err)
	}

	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("mushroom: add render layer: %w", err)
	}

	return e, nil
}
