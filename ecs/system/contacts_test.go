package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/ecs/entity"
)

func scenery(category uint) Contact {
	return Contact{
		Body:    &component.PhysicsBody{},
		Fixture: &component.Fixture{Layer: component.CollisionLayer{Category: category}},
	}
}

// place puts a body at x,y meters.
func (tw *testWorld) place(e ecs.Entity, x, y float64) {
	pb, _ := ecs.Get(tw.w, e, component.PhysicsBodyComponent.Kind())
	pb.Body.SetPosition(cp.Vector{X: x, Y: y})
}

func enemyOf(tw *testWorld, e ecs.Entity) *component.Enemy {
	en, _ := ecs.Get(tw.w, e, component.EnemyComponent.Kind())
	return en
}

func TestContactHeadHitsTile(t *testing.T) {
	tw := newTestWorld(t)
	c := NewContactSystem(tw.tiles, quiet)
	coin := tw.tile(t, component.TileCoin, false)

	head := tw.contact(t, tw.player, component.FixtureHead)
	block := tw.contact(t, coin, component.FixtureBody)

	assert.True(t, c.BeginContact(tw.w, block, head))
	assert.Equal(t, 100, Score(tw.w))
}

func TestContactBodyOnTileDoesNotReact(t *testing.T) {
	tw := newTestWorld(t)
	c := NewContactSystem(tw.tiles, quiet)
	coin := tw.tile(t, component.TileCoin, false)

	assert.True(t, c.BeginContact(tw.w, tw.contact(t, tw.player, component.FixtureBody), tw.contact(t, coin, component.FixtureBody)))
	assert.Zero(t, Score(tw.w))
}

func TestContactStompGoomba(t *testing.T) {
	tw := newTestWorld(t)
	c := NewContactSystem(tw.tiles, quiet)
	goomba := tw.creator.Goombas()[0]

	ok := c.BeginContact(tw.w, tw.contact(t, goomba, component.FixtureHead), tw.contact(t, tw.player, component.FixtureBody))
	assert.True(t, ok)

	en := enemyOf(tw, goomba)
	assert.True(t, en.SetToDestroy)
	assert.Equal(t, en.StompScore, Score(tw.w))
	pb, _ := ecs.Get(tw.w, tw.player, component.PhysicsBodyComponent.Kind())
	assert.InDelta(t, en.StompBounce, pb.Body.Velocity().Y, 1e-9)
	assert.True(t, tw.sounds().Requested("stomp"))

	c.BeginContact(tw.w, tw.contact(t, goomba, component.FixtureHead), tw.contact(t, tw.player, component.FixtureBody))
	assert.Equal(t, en.StompScore, Score(tw.w), "a goomba scores once")
}

func TestContactStompTurtle(t *testing.T) {
	tw := newTestWorld(t)
	c := NewContactSystem(tw.tiles, quiet)
	turtle := tw.creator.Turtles()[0]
	en := enemyOf(tw, turtle)

	pb, _ := ecs.Get(tw.w, turtle, component.PhysicsBodyComponent.Kind())
	tw.place(tw.player, pb.Body.Position().X-0.1, pb.Body.Position().Y+0.1)

	stomp := func() {
		c.BeginContact(tw.w, tw.contact(t, tw.player, component.FixtureBody), tw.contact(t, turtle, component.FixtureHead))
	}

	stomp()
	assert.Equal(t, component.EnemyStandingShell, en.State)
	assert.Zero(t, en.VelocityX)

	stomp()
	assert.Equal(t, component.EnemyMovingShell, en.State)
	assert.InDelta(t, en.KickSpeed, en.VelocityX, 1e-9, "kicked away from the player")
	assert.True(t, tw.sounds().Requested("kick"))

	stomp()
	assert.Equal(t, component.EnemyStandingShell, en.State)
}

func TestContactPlayerRunsIntoEnemy(t *testing.T) {
	tests := []struct {
		name         string
		big          bool
		invulnerable bool
		above        bool
		wantCollide  bool
		wantDead     bool
		wantShrink   bool
	}{
		{name: "small player dies", wantDead: true},
		{name: "big player shrinks", big: true, wantShrink: true},
		{name: "invulnerable passes through", big: false, invulnerable: true},
		{name: "landing on top is left to the head sensor", above: true, wantCollide: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			c := NewContactSystem(tw.tiles, quiet)
			goomba := tw.creator.Goombas()[0]
			pb, _ := ecs.Get(tw.w, goomba, component.PhysicsBodyComponent.Kind())
			y := pb.Body.Position().Y
			if tt.above {
				y += 0.2
			}
			tw.place(tw.player, pb.Body.Position().X-0.1, y)

			p := tw.playerComp()
			p.Big = tt.big
			if tt.invulnerable {
				require.NoError(t, ecs.Add(tw.w, tw.player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 10}))
			}

			got := c.BeginContact(tw.w, tw.contact(t, goomba, component.FixtureBody), tw.contact(t, tw.player, component.FixtureBody))
			assert.Equal(t, tt.wantCollide, got)
			assert.Equal(t, tt.wantDead, p.Dead)
			assert.Equal(t, tt.wantShrink, p.ShrinkPending)
			if tt.wantShrink {
				assert.True(t, ecs.Has(tw.w, tw.player, component.InvulnerableComponent.Kind()))
				assert.True(t, tw.sounds().Requested("powerdown"))
			}
		})
	}
}

func TestContactStandingShellIsKicked(t *testing.T) {
	tw := newTestWorld(t)
	c := NewContactSystem(tw.tiles, quiet)
	turtle := tw.creator.Turtles()[0]
	en := enemyOf(tw, turtle)
	en.SetState(component.EnemyStandingShell)
	en.VelocityX = 0

	pb, _ := ecs.Get(tw.w, turtle, component.PhysicsBodyComponent.Kind())
	tw.place(tw.player, pb.Body.Position().X+0.1, pb.Body.Position().Y)

	assert.True(t, c.BeginContact(tw.w, tw.contact(t, tw.player, component.FixtureBody), tw.contact(t, turtle, component.FixtureBody)))
	assert.Equal(t, component.EnemyMovingShell, en.State)
	assert.Less(t, en.VelocityX, 0.0)
	assert.False(t, tw.playerComp().Dead)
}

func TestContactEnemies(t *testing.T) {
	t.Run("walkers reverse", func(t *testing.T) {
		tw := newTestWorld(t)
		c := NewContactSystem(tw.tiles, quiet)
		a, b := tw.creator.Goombas()[0], tw.creator.Goombas()[1]
		va, vb := enemyOf(tw, a).VelocityX, enemyOf(tw, b).VelocityX

		c.BeginContact(tw.w, tw.contact(t, a, component.FixtureBody), tw.contact(t, b, component.FixtureBody))
		assert.Equal(t, -va, enemyOf(tw, a).VelocityX)
		assert.Equal(t, -vb, enemyOf(tw, b).VelocityX)
	})

	t.Run("moving shell kills", func(t *testing.T) {
		tw := newTestWorld(t)
		c := NewContactSystem(tw.tiles, quiet)
		shell := tw.creator.Turtles()[0]
		goomba := tw.creator.Goombas()[0]
		other := tw.creator.Turtles()[1]
		enemyOf(tw, shell).SetState(component.EnemyMovingShell)
		enemyOf(tw, shell).VelocityX = 2

		c.BeginContact(tw.w, tw.contact(t, shell, component.FixtureBody), tw.contact(t, goomba, component.FixtureBody))
		assert.True(t, enemyOf(tw, goomba).SetToDestroy)
		assert.Equal(t, 2.0, enemyOf(tw, shell).VelocityX, "the shell keeps going")

		c.BeginContact(tw.w, tw.contact(t, other, component.FixtureBody), tw.contact(t, shell, component.FixtureBody))
		assert.Equal(t, component.EnemyDead, enemyOf(tw, other).State)
		opb, _ := ecs.Get(tw.w, other, component.PhysicsBodyComponent.Kind())
		assert.Equal(t, common.NothingBit, opb.Fixtures[0].Layer.Mask)
	})

	t.Run("scenery reverses", func(t *testing.T) {
		tw := newTestWorld(t)
		c := NewContactSystem(tw.tiles, quiet)
		g := tw.creator.Goombas()[0]
		v := enemyOf(tw, g).VelocityX

		c.BeginContact(tw.w, scenery(common.ObjectBit), tw.contact(t, g, component.FixtureBody))
		assert.Equal(t, -v, enemyOf(tw, g).VelocityX)
	})
}

func TestContactMushroom(t *testing.T) {
	tw := newTestWorld(t)
	c := NewContactSystem(tw.tiles, quiet)
	mushroom, err := entity.NewItem(tw.w, tw.space, component.ItemDef{Kind: component.ItemMushroom, X: 1, Y: 1})
	require.NoError(t, err)
	it, _ := ecs.Get(tw.w, mushroom, component.ItemComponent.Kind())

	v := it.VelocityX
	assert.True(t, c.BeginContact(tw.w, tw.contact(t, mushroom, component.FixtureBody), scenery(common.ObjectBit)))
	assert.Equal(t, -v, it.VelocityX)

	assert.False(t, c.BeginContact(tw.w, tw.contact(t, tw.player, component.FixtureBody), tw.contact(t, mushroom, component.FixtureBody)))
	assert.True(t, it.ToDestroy)
	assert.True(t, tw.playerComp().GrowPending)
	assert.True(t, tw.sounds().Requested("powerup"))
}
