package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

// PlayerControllerSystem turns sampled input into impulses on the player's
// body. A dead player ignores input.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := ecs.Query(w,
		component.PlayerComponent.Kind(),
		component.PlayerStateMachineComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		state, _ := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if player.Dead || bodyComp.Body == nil {
			continue
		}
		ApplyInput(bodyComp.Body, player, state, input)
	}
}

// ApplyInput applies one tick of movement impulses at the body's center. A
// jump marks the state as jumping straight away.
func ApplyInput(body *cp.Body, player *component.Player, state *component.PlayerStateMachine, input *component.Input) {
	center := body.Position()
	vel := body.Velocity()

	if input.JumpPressed && state.Current != component.PlayerJumping {
		body.ApplyImpulseAtWorldPoint(cp.Vector{X: 0, Y: player.JumpImpulse}, center)
		state.Current = component.PlayerJumping
	}
	if input.Right && vel.X <= player.MaxSpeed {
		body.ApplyImpulseAtWorldPoint(cp.Vector{X: player.MoveImpulse, Y: 0}, center)
	}
	if input.Left && vel.X >= -player.MaxSpeed {
		body.ApplyImpulseAtWorldPoint(cp.Vector{X: -player.MoveImpulse, Y: 0}, center)
	}
}
