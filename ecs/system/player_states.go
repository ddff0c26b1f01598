package system

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/ecs/entity"
)

// GameOverDelay is how long the player stays dead before the game ends.
const GameOverDelay = 3.0

// DeriveState picks the player's state from its flags and body velocity.
// A jump lasts while rising and through the apex.
func DeriveState(p *component.Player, sm *component.PlayerStateMachine, vel cp.Vector) component.PlayerStateID {
	switch {
	case p.Dead:
		return component.PlayerDead
	case sm.GrowTimer > 0:
		return component.PlayerGrowing
	case (vel.Y > 0 && sm.Current == component.PlayerJumping) || (vel.Y < 0 && sm.Previous == component.PlayerJumping):
		return component.PlayerJumping
	case vel.Y < 0:
		return component.PlayerFalling
	case vel.X != 0:
		return component.PlayerRunning
	}
	return component.PlayerStanding
}

// Advance records next as this tick's state. The timer keeps running while
// the state matches the previous tick's and restarts otherwise.
func Advance(sm *component.PlayerStateMachine, next component.PlayerStateID, dt float64) {
	if sm.GrowTimer > 0 {
		sm.GrowTimer -= dt
	}
	sm.Current = next
	if sm.Current == sm.Previous {
		sm.Timer += dt
	} else {
		sm.Timer = 0
	}
	sm.Previous = sm.Current
}

// IsGameOver reports whether the player has been dead for longer than the
// grace period.
func IsGameOver(w *ecs.World) bool {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	sm, ok := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
	if !ok {
		return false
	}
	return sm.Current == component.PlayerDead && sm.Timer > GameOverDelay
}

// KillPlayer makes the player fall through everything. It is safe inside the
// physics step.
func KillPlayer(w *ecs.World, e ecs.Entity) {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || p.Dead {
		return
	}
	p.Dead = true
	p.GrowPending = false
	p.ShrinkPending = false

	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		pb.SetMask(common.NothingBit)
		if pb.Body != nil {
			pb.Body.ApplyImpulseAtWorldPoint(cp.Vector{X: 0, Y: p.DeathImpulse}, pb.Body.Position())
		}
	}
	if cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok {
			c.Frozen = true
		}
	}
	if err := StopMusic(w); err != nil {
		panic("player: stop music: " + err.Error())
	}
	playSound(w, "mario_die")
}

// PlayerSystem applies pending size changes, derives the player's state and
// animation, and kills the player when time runs out or it falls off the map.
type PlayerSystem struct {
	space  *cp.Space
	logger *log.Logger
}

func NewPlayerSystem(space *cp.Space, logger *log.Logger) *PlayerSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &PlayerSystem{space: space, logger: logger}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	entities := ecs.Query(w,
		component.PlayerComponent.Kind(),
		component.PlayerStateMachineComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		sm, _ := ecs.Get(w, e, component.PlayerStateMachineComponent.Kind())
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if pb.Body == nil {
			continue
		}

		s.applyPending(w, e, p, sm, pb)
		s.checkDeath(w, e, pb)
		s.tickInvulnerable(w, e)

		vel := pb.Body.Velocity()
		Advance(sm, DeriveState(p, sm, vel), common.TimeStep)

		if vel.X > 0 {
			p.RunningRight = true
		} else if vel.X < 0 {
			p.RunningRight = false
		}
		s.animate(w, e, p, sm)
	}
}

func (s *PlayerSystem) applyPending(w *ecs.World, e ecs.Entity, p *component.Player, sm *component.PlayerStateMachine, pb *component.PhysicsBody) {
	switch {
	case p.Dead:
		p.GrowPending = false
		p.ShrinkPending = false
	case p.GrowPending:
		p.GrowPending = false
		if p.Big {
			return
		}
		p.Big = true
		entity.ReshapePlayer(s.space, e, pb, p, true)
		sm.GrowTimer = p.GrowSeconds
		s.logger.Debug("player grows")
	case p.ShrinkPending:
		p.ShrinkPending = false
		if !p.Big {
			return
		}
		p.Big = false
		entity.ReshapePlayer(s.space, e, pb, p, false)
		sm.GrowTimer = 0
		s.logger.Debug("player shrinks")
	}
}

func (s *PlayerSystem) checkDeath(w *ecs.World, e ecs.Entity, pb *component.PhysicsBody) {
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); !ok || p.Dead {
		return
	}
	if pb.Body.Position().Y < 0 {
		s.logger.Info("player fell off the map")
		KillPlayer(w, e)
		return
	}
	if h, ok := ecs.First(w, component.HUDComponent.Kind()); ok {
		if hud, ok := ecs.Get(w, h, component.HUDComponent.Kind()); ok && hud.TimeUp {
			s.logger.Info("time up")
			KillPlayer(w, e)
		}
	}
}

func (s *PlayerSystem) tickInvulnerable(w *ecs.World, e ecs.Entity) {
	inv, ok := ecs.Get(w, e, component.InvulnerableComponent.Kind())
	sprite, hasSprite := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		if hasSprite {
			sprite.Hidden = false
		}
		return
	}
	inv.Frames--
	if inv.Frames <= 0 {
		ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		if hasSprite {
			sprite.Hidden = false
		}
		return
	}
	if hasSprite {
		sprite.Hidden = inv.Frames%8 < 4
	}
}

func (s *PlayerSystem) animate(w *ecs.World, e ecs.Entity, p *component.Player, sm *component.PlayerStateMachine) {
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if ok {
		sprite.FacingLeft = !p.RunningRight
		if p.Big {
			sprite.OriginY = p.BigShape.OriginY
		} else {
			sprite.OriginY = p.Small.OriginY
		}
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	anim.Play(playerAnimation(p, sm.Current))
}

func playerAnimation(p *component.Player, state component.PlayerStateID) string {
	size := "small_"
	if p.Big {
		size = "big_"
	}
	switch state {
	case component.PlayerDead:
		return "dead"
	case component.PlayerGrowing:
		return "grow"
	case component.PlayerJumping, component.PlayerFalling:
		return size + "jump"
	case component.PlayerRunning:
		return size + "run"
	}
	return size + "stand"
}
