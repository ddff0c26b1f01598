package system

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

// ContactSystem classifies each new contact by the union of both fixtures'
// categories and runs the matching reaction.
type ContactSystem struct {
	tiles  *TileReactions
	logger *log.Logger
}

func NewContactSystem(tiles *TileReactions, logger *log.Logger) *ContactSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &ContactSystem{tiles: tiles, logger: logger}
}

func (c *ContactSystem) BeginContact(w *ecs.World, a, b Contact) bool {
	catA := a.Fixture.Layer.Category
	catB := b.Fixture.Layer.Category

	switch catA | catB {
	case common.MarioHeadBit | common.BrickBit,
		common.MarioHeadBit | common.CoinBit,
		common.MarioHeadBit | common.GroundBit:
		player, tile := a, b
		if catB == common.MarioHeadBit {
			player, tile = b, a
		}
		if c.tiles != nil {
			c.tiles.OnHeadHit(w, tile.Entity, player.Entity)
		}
		return true

	case common.EnemyHeadBit | common.MarioBit:
		enemy, player := a, b
		if catB == common.EnemyHeadBit {
			enemy, player = b, a
		}
		c.hitOnHead(w, enemy, player)
		return true

	case common.EnemyBit | common.ObjectBit:
		enemy := a
		if catB == common.EnemyBit {
			enemy = b
		}
		if en, ok := ecs.Get(w, enemy.Entity, component.EnemyComponent.Kind()); ok {
			en.Reverse()
		}
		return true

	case common.MarioBit | common.EnemyBit:
		player, enemy := a, b
		if catB == common.MarioBit {
			player, enemy = b, a
		}
		return c.playerHit(w, player, enemy)

	case common.EnemyBit:
		// Both fixtures are enemies.
		c.onEnemyHit(w, a, b)
		c.onEnemyHit(w, b, a)
		return true

	case common.ItemBit | common.ObjectBit:
		item := a
		if catB == common.ItemBit {
			item = b
		}
		if it, ok := ecs.Get(w, item.Entity, component.ItemComponent.Kind()); ok {
			it.VelocityX = -it.VelocityX
		}
		return true

	case common.ItemBit | common.MarioBit:
		item, player := a, b
		if catB == common.ItemBit {
			item, player = b, a
		}
		c.useItem(w, item, player)
		return false
	}

	return true
}

// hitOnHead handles the player landing on an enemy's head.
func (c *ContactSystem) hitOnHead(w *ecs.World, enemy, player Contact) {
	en, ok := ecs.Get(w, enemy.Entity, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	if p, ok := ecs.Get(w, player.Entity, component.PlayerComponent.Kind()); !ok || p.Dead {
		return
	}

	switch en.Kind {
	case component.EnemyGoomba:
		if en.SetToDestroy || en.Destroyed {
			return
		}
		en.SetToDestroy = true
		addScore(w, en.StompScore)
		playSound(w, "stomp")
	case component.EnemyTurtle:
		switch en.State {
		case component.EnemyWalking, component.EnemyMovingShell:
			en.SetState(component.EnemyStandingShell)
			en.VelocityX = 0
			addScore(w, en.StompScore)
			playSound(w, "stomp")
		case component.EnemyStandingShell:
			kickShell(w, en, enemy, player)
		default:
			return
		}
	}

	if en.StompBounce > 0 && player.Body.Body != nil {
		v := player.Body.Body.Velocity()
		player.Body.Body.SetVelocity(v.X, en.StompBounce)
	}
	c.logger.Debug("enemy stomped", "enemy", en.Kind, "state", en.State)
}

// playerHit handles the player's body running into an enemy. It reports
// whether the pair should still collide.
func (c *ContactSystem) playerHit(w *ecs.World, player, enemy Contact) bool {
	p, ok := ecs.Get(w, player.Entity, component.PlayerComponent.Kind())
	if !ok || p.Dead {
		return false
	}
	en, ok := ecs.Get(w, enemy.Entity, component.EnemyComponent.Kind())
	if !ok {
		return true
	}

	if en.Kind == component.EnemyTurtle && en.State == component.EnemyStandingShell {
		kickShell(w, en, enemy, player)
		return true
	}
	if en.SetToDestroy || en.Destroyed || en.State == component.EnemyStomped || en.State == component.EnemyDead {
		return false
	}
	// Landing on top is handled by the head sensor in the same step.
	if player.Body.Body != nil && enemy.Body.Body != nil &&
		player.Body.Body.Position().Y-enemy.Body.Body.Position().Y > enemy.Body.Radius {
		return true
	}
	if ecs.Has(w, player.Entity, component.InvulnerableComponent.Kind()) {
		return false
	}

	if p.Big {
		p.ShrinkPending = true
		playSound(w, "powerdown")
		if err := ecs.Add(w, player.Entity, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: p.InvulnerableFrames}); err != nil {
			panic("contacts: add invulnerable: " + err.Error())
		}
		c.logger.Debug("player shrinks", "enemy", en.Kind)
		return false
	}

	KillPlayer(w, player.Entity)
	c.logger.Info("player killed", "enemy", en.Kind)
	return false
}

// onEnemyHit reacts to enemy being touched by other.
func (c *ContactSystem) onEnemyHit(w *ecs.World, enemy, other Contact) {
	en, ok := ecs.Get(w, enemy.Entity, component.EnemyComponent.Kind())
	if !ok {
		return
	}
	ot, ok := ecs.Get(w, other.Entity, component.EnemyComponent.Kind())
	if !ok {
		return
	}

	if ot.Kind == component.EnemyTurtle && ot.State == component.EnemyMovingShell && en.State != component.EnemyMovingShell {
		switch en.Kind {
		case component.EnemyGoomba:
			en.SetToDestroy = true
		case component.EnemyTurtle:
			en.SetState(component.EnemyDead)
			enemy.Body.SetMask(common.NothingBit)
			if enemy.Body.Body != nil {
				enemy.Body.Body.ApplyImpulseAtLocalPoint(cp.Vector{X: 0, Y: en.DeadImpulse}, cp.Vector{})
			}
		}
		addScore(w, en.StompScore)
		playSound(w, "stomp")
		return
	}
	if en.State == component.EnemyMovingShell && ot.State != component.EnemyMovingShell {
		return
	}
	en.Reverse()
}

func (c *ContactSystem) useItem(w *ecs.World, item, player Contact) {
	it, ok := ecs.Get(w, item.Entity, component.ItemComponent.Kind())
	if !ok || it.ToDestroy || it.Destroyed {
		return
	}
	p, ok := ecs.Get(w, player.Entity, component.PlayerComponent.Kind())
	if !ok || p.Dead {
		return
	}

	switch it.Kind {
	case component.ItemMushroom:
		if !p.Big {
			p.GrowPending = true
		}
		playSound(w, "powerup")
	}
	it.ToDestroy = true
}

// kickShell sends a standing shell away from the player.
func kickShell(w *ecs.World, en *component.Enemy, enemy, player Contact) {
	dir := 1.0
	if enemy.Body.Body != nil && player.Body.Body != nil &&
		enemy.Body.Body.Position().X < player.Body.Body.Position().X {
		dir = -1
	}
	speed := en.KickSpeed
	if speed <= 0 {
		speed = 2
	}
	en.VelocityX = dir * speed
	en.SetState(component.EnemyMovingShell)
	playSound(w, "kick")
}
