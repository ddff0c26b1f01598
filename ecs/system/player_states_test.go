package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

func TestDeriveState(t *testing.T) {
	tests := []struct {
		name string
		p    component.Player
		sm   component.PlayerStateMachine
		vel  cp.Vector
		want component.PlayerStateID
	}{
		{name: "dead wins", p: component.Player{Dead: true}, sm: component.PlayerStateMachine{GrowTimer: 1}, vel: cp.Vector{X: 1, Y: 1}, want: component.PlayerDead},
		{name: "growing", sm: component.PlayerStateMachine{GrowTimer: 0.5}, vel: cp.Vector{X: 1}, want: component.PlayerGrowing},
		{name: "rising after jump", sm: component.PlayerStateMachine{Current: component.PlayerJumping}, vel: cp.Vector{Y: 2}, want: component.PlayerJumping},
		{name: "falling after jump", sm: component.PlayerStateMachine{Previous: component.PlayerJumping}, vel: cp.Vector{Y: -1}, want: component.PlayerJumping},
		{name: "rising without jump", sm: component.PlayerStateMachine{Current: component.PlayerRunning}, vel: cp.Vector{X: 1, Y: 0.5}, want: component.PlayerRunning},
		{name: "falling", vel: cp.Vector{Y: -1}, want: component.PlayerFalling},
		{name: "running", vel: cp.Vector{X: -0.3}, want: component.PlayerRunning},
		{name: "standing", want: component.PlayerStanding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveState(&tt.p, &tt.sm, tt.vel))
		})
	}
}

func TestAdvanceTimer(t *testing.T) {
	sm := &component.PlayerStateMachine{}

	Advance(sm, component.PlayerRunning, 0.1)
	assert.Equal(t, component.PlayerRunning, sm.Current)
	assert.Zero(t, sm.Timer, "a new state restarts the timer")

	Advance(sm, component.PlayerRunning, 0.1)
	Advance(sm, component.PlayerRunning, 0.1)
	assert.InDelta(t, 0.2, sm.Timer, 1e-9)

	Advance(sm, component.PlayerStanding, 0.1)
	assert.Zero(t, sm.Timer)
	assert.Equal(t, component.PlayerStanding, sm.Previous)
}

func TestGameOverGracePeriod(t *testing.T) {
	tw := newTestWorld(t)
	sm, _ := ecs.Get(tw.w, tw.player, component.PlayerStateMachineComponent.Kind())
	dt := common.TimeStep

	ticks := func(n int, state component.PlayerStateID) {
		for i := 0; i < n; i++ {
			Advance(sm, state, dt)
		}
	}

	ticks(1, component.PlayerDead)
	assert.False(t, IsGameOver(tw.w))

	// just under the grace period
	ticks(int(GameOverDelay*common.TPS)-1, component.PlayerDead)
	assert.False(t, IsGameOver(tw.w))

	ticks(2, component.PlayerDead)
	assert.True(t, IsGameOver(tw.w))

	t.Run("leaving the dead state resets", func(t *testing.T) {
		ticks(1, component.PlayerStanding)
		assert.False(t, IsGameOver(tw.w))
		ticks(int(GameOverDelay*common.TPS), component.PlayerDead)
		assert.False(t, IsGameOver(tw.w))
		ticks(2, component.PlayerDead)
		assert.True(t, IsGameOver(tw.w))
	})
}

func TestIsGameOverWithoutPlayer(t *testing.T) {
	assert.False(t, IsGameOver(ecs.NewWorld()))
}

func TestKillPlayer(t *testing.T) {
	tw := newTestWorld(t)
	KillPlayer(tw.w, tw.player)

	p := tw.playerComp()
	require.True(t, p.Dead)
	pb, _ := ecs.Get(tw.w, tw.player, component.PhysicsBodyComponent.Kind())
	for _, f := range pb.Fixtures {
		assert.Equal(t, common.NothingBit, f.Layer.Mask)
	}
	assert.Greater(t, pb.Body.Velocity().Y, 0.0, "death impulse pushes up")

	cam, _ := ecs.First(tw.w, component.CameraComponent.Kind())
	c, _ := ecs.Get(tw.w, cam, component.CameraComponent.Kind())
	assert.True(t, c.Frozen)
	assert.True(t, tw.sounds().Requested("mario_die"))

	players := NewPlayerSystem(tw.space, quiet)
	players.Update(tw.w)
	sm, _ := ecs.Get(tw.w, tw.player, component.PlayerStateMachineComponent.Kind())
	assert.Equal(t, component.PlayerDead, sm.Current)
}

func TestPlayerSystemGrowAndShrink(t *testing.T) {
	tw := newTestWorld(t)
	players := NewPlayerSystem(tw.space, quiet)
	p := tw.playerComp()
	sm, _ := ecs.Get(tw.w, tw.player, component.PlayerStateMachineComponent.Kind())
	anim, _ := ecs.Get(tw.w, tw.player, component.AnimationComponent.Kind())

	p.GrowPending = true
	players.Update(tw.w)
	assert.True(t, p.Big)
	assert.False(t, p.GrowPending)
	assert.Equal(t, component.PlayerGrowing, sm.Current)
	assert.Equal(t, "grow", anim.Current)

	p.ShrinkPending = true
	players.Update(tw.w)
	assert.False(t, p.Big)
	assert.Zero(t, sm.GrowTimer)
}

func TestPlayerSystemKillsOnTimeUpAndFall(t *testing.T) {
	t.Run("time up", func(t *testing.T) {
		tw := newTestWorld(t)
		h, _ := ecs.First(tw.w, component.HUDComponent.Kind())
		hud, _ := ecs.Get(tw.w, h, component.HUDComponent.Kind())
		hud.TimeUp = true

		NewPlayerSystem(tw.space, quiet).Update(tw.w)
		assert.True(t, tw.playerComp().Dead)
	})

	t.Run("fell off the map", func(t *testing.T) {
		tw := newTestWorld(t)
		pb, _ := ecs.Get(tw.w, tw.player, component.PhysicsBodyComponent.Kind())
		pb.Body.SetPosition(cp.Vector{X: 1, Y: -0.5})

		NewPlayerSystem(tw.space, quiet).Update(tw.w)
		assert.True(t, tw.playerComp().Dead)
	})
}

func TestInvulnerableBlinksThenExpires(t *testing.T) {
	tw := newTestWorld(t)
	require.NoError(t, ecs.Add(tw.w, tw.player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: 10}))
	players := NewPlayerSystem(tw.space, quiet)

	hidden := 0
	for i := 0; i < 10; i++ {
		players.Update(tw.w)
		sprite, _ := ecs.Get(tw.w, tw.player, component.SpriteComponent.Kind())
		if sprite.Hidden {
			hidden++
		}
	}
	assert.Greater(t, hidden, 0)
	assert.False(t, ecs.Has(tw.w, tw.player, component.InvulnerableComponent.Kind()))
	sprite, _ := ecs.Get(tw.w, tw.player, component.SpriteComponent.Kind())
	assert.False(t, sprite.Hidden)
}
