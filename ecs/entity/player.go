package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/prefabs"
)

// NewPlayer builds the small player at the spawn point of player.yaml and
// adds its body to the space.
func NewPlayer(w *ecs.World, space *cp.Space) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerAt(w, space, common.ToMeters(spec.Spawn.X), common.ToMeters(spec.Spawn.Y))
}

// NewPlayerAt builds the small player with its body origin at x,y meters.
func NewPlayerAt(w *ecs.World, space *cp.Space, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	player := playerFromSpec(spec)
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), player); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, e, component.PlayerStateMachineComponent.Kind(), &component.PlayerStateMachine{}); err != nil {
		return 0, fmt.Errorf("player: add state machine: %w", err)
	}

	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transformFor(levelBounds(w), x, y)); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	pb := &component.PhysicsBody{Body: newDynamicBody(e, spec.Mass, x, y)}
	pb.Fixtures = playerFixtures(pb.Body, e, player, false)
	pb.Radius = player.Small.Radius
	Activate(space, pb)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), pb); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		OriginX: spec.Sprite.OriginX,
		OriginY: spec.Sprite.OriginY,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}

	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), animationFor(spec.Animation)); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}

	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	return e, nil
}

func playerFromSpec(spec *prefabs.PlayerSpec) *component.Player {
	toMeters := func(px []float64) []float64 {
		out := make([]float64, len(px))
		for i, v := range px {
			out[i] = common.ToMeters(v)
		}
		return out
	}
	return &component.Player{
		RunningRight:       true,
		MoveImpulse:        spec.MoveImpulse,
		MaxSpeed:           spec.MaxSpeed,
		JumpImpulse:        spec.JumpImpulse,
		DeathImpulse:       spec.DeathImpulse,
		GrowSeconds:        spec.GrowSeconds,
		InvulnerableFrames: spec.InvulnerableFrames,
		Small: component.PlayerShape{
			Radius:  common.ToMeters(spec.Small.Radius),
			Offsets: toMeters(spec.Small.Offsets),
			OriginY: spec.Small.OriginY,
		},
		BigShape: component.PlayerShape{
			Radius:  common.ToMeters(spec.Big.Radius),
			Offsets: toMeters(spec.Big.Offsets),
			OriginY: spec.Big.OriginY,
		},
		GrowShift:     common.ToMeters(spec.Big.Shift),
		HeadHalfWidth: common.ToMeters(spec.Head.HalfWidth),
		HeadOffset:    common.ToMeters(spec.Head.Offset),
		Friction:      spec.Friction,
		Layer:         component.CollisionLayer{Category: spec.Collision.Category, Mask: spec.Collision.Mask},
		HeadLayer:     component.CollisionLayer{Category: spec.Head.Category, Mask: spec.Collision.Mask},
	}
}

func playerFixtures(body *cp.Body, e ecs.Entity, p *component.Player, big bool) []component.Fixture {
	shape := p.Small
	if big {
		shape = p.BigShape
	}
	fixtures := make([]component.Fixture, 0, len(shape.Offsets)+1)
	for _, off := range shape.Offsets {
		fixtures = append(fixtures, circleFixture(body, e, shape.Radius, off, p.Friction, p.Layer))
	}
	return append(fixtures, headSensor(body, e, p.HeadHalfWidth, p.HeadOffset, p.HeadLayer))
}

// ReshapePlayer swaps the player's fixtures between the small and big
// layouts, moving the body origin by the grow shift. Velocity is kept. It
// must not be called while the space is stepping.
func ReshapePlayer(space *cp.Space, e ecs.Entity, pb *component.PhysicsBody, p *component.Player, big bool) {
	if space == nil || pb == nil || pb.Body == nil || p == nil {
		return
	}
	for _, f := range pb.Fixtures {
		if f.Shape != nil && space.ContainsShape(f.Shape) {
			space.RemoveShape(f.Shape)
		}
	}

	pos := pb.Body.Position()
	if big {
		pos.Y += p.GrowShift
	} else {
		pos.Y -= p.GrowShift
	}
	pb.Body.SetPosition(pos)

	pb.Fixtures = playerFixtures(pb.Body, e, p, big)
	if p.Dead {
		pb.SetMask(common.NothingBit)
	}
	if !pb.Active {
		return
	}
	for _, f := range pb.Fixtures {
		space.AddShape(f.Shape)
	}
}
