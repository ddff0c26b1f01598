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

type recordingListener struct {
	pairs []uint
}

func (l *recordingListener) BeginContact(_ *ecs.World, a, b Contact) bool {
	l.pairs = append(l.pairs, a.Fixture.Layer.Category|b.Fixture.Layer.Category)
	return true
}

func (l *recordingListener) saw(pair uint) bool {
	for _, p := range l.pairs {
		if p == pair {
			return true
		}
	}
	return false
}

func TestPhysicsPlayerLandsOnGround(t *testing.T) {
	tw := newTestWorld(t)
	listener := &recordingListener{}
	ps := NewPhysicsSystem(tw.space, listener)
	tr, _ := ecs.Get(tw.w, tw.player, component.TransformComponent.Kind())
	startY := tr.Y

	for range 2 * common.TPS {
		ps.Update(tw.w)
	}

	pb, _ := ecs.Get(tw.w, tw.player, component.PhysicsBodyComponent.Kind())
	y := pb.Body.Position().Y
	assert.Less(t, y, 0.48, "fell from the spawn point")
	assert.Greater(t, y, 0.32, "rests on top of the ground")
	assert.True(t, listener.saw(common.MarioBit|common.GroundBit))
	assert.Greater(t, tr.Y, startY, "transform follows the body downward in map pixels")

	bounds := component.LevelBounds{Width: tw.lvl.PixelWidth(), Height: tw.lvl.PixelHeight()}
	wantX, wantY := bounds.ToPixels(pb.Body.Position().X, y, common.PPM)
	assert.InDelta(t, wantX, tr.X, 1e-9)
	assert.InDelta(t, wantY, tr.Y, 1e-9)
}

func TestPhysicsRemovesDestroyedBodies(t *testing.T) {
	tw := newTestWorld(t)
	ps := NewPhysicsSystem(tw.space, nil)
	ps.Update(tw.w)

	pb, _ := ecs.Get(tw.w, tw.player, component.PhysicsBodyComponent.Kind())
	body := pb.Body
	assert.True(t, tw.space.ContainsBody(body))

	ecs.DestroyEntity(tw.w, tw.player)
	ps.Update(tw.w)

	assert.False(t, tw.space.ContainsBody(body))
	assert.False(t, pb.Active)
}

func TestPhysicsNilSafe(t *testing.T) {
	var ps *PhysicsSystem
	assert.NotPanics(t, func() { ps.Update(ecs.NewWorld()) })
	assert.Nil(t, ps.Space())

	ps = NewPhysicsSystem(nil, nil)
	assert.NotNil(t, ps.Space())
	assert.NotPanics(t, func() { ps.Update(nil) })
}

// tileByID returns the tile object built from the map object with id.
func (tw *testWorld) tileByID(t *testing.T, id int) (ecs.Entity, *component.TileObject) {
	t.Helper()
	for _, e := range ecs.Query(tw.w, component.TileObjectComponent.Kind()) {
		to, _ := ecs.Get(tw.w, e, component.TileObjectComponent.Kind())
		if to.Object.ID == id {
			return e, to
		}
	}
	t.Fatalf("no tile object %d", id)
	return 0, nil
}

// standUnder puts the player on the ground below tile and lets it settle.
func (tw *testWorld) standUnder(t *testing.T, ps *PhysicsSystem, tile ecs.Entity, big bool) {
	t.Helper()
	tb, _ := ecs.Get(tw.w, tile, component.PhysicsBodyComponent.Kind())
	pb, _ := ecs.Get(tw.w, tw.player, component.PhysicsBodyComponent.Kind())
	pb.Body.SetPosition(cp.Vector{X: tb.Body.Position().X, Y: 0.40})
	pb.Body.SetVelocity(0, 0)
	if big {
		p := tw.playerComp()
		p.Big = true
		entity.ReshapePlayer(tw.space, tw.player, pb, p, true)
	}
	tw.settle(ps)
	require.InDelta(t, tb.Body.Position().X, pb.Body.Position().X, 0.01)
}

func (tw *testWorld) settle(ps *PhysicsSystem) {
	for range 2 * common.TPS {
		ps.Update(tw.w)
	}
}

func (tw *testWorld) jump(ps *PhysicsSystem) {
	pb, _ := ecs.Get(tw.w, tw.player, component.PhysicsBodyComponent.Kind())
	ApplyInput(pb.Body, tw.playerComp(), &component.PlayerStateMachine{}, &component.Input{JumpPressed: true})
	tw.settle(ps)
}

func TestHeadHitBreaksBrickThroughPhysics(t *testing.T) {
	tw := newTestWorld(t)
	ps := NewPhysicsSystem(tw.space, NewContactSystem(tw.tiles, quiet))
	brick, to := tw.tileByID(t, 14)
	tw.standUnder(t, ps, brick, true)
	require.Zero(t, Score(tw.w))

	tw.jump(ps)

	bb, _ := ecs.Get(tw.w, brick, component.PhysicsBodyComponent.Kind())
	assert.True(t, to.Destroyed)
	assert.Equal(t, common.DestroyedBit, bb.Fixtures[0].Layer.Category)
	assert.True(t, tw.space.ContainsShape(bb.Fixtures[0].Shape), "the shape stays in the space")
	assert.Zero(t, tw.grid().Cell(to.Col, to.Row))
	assert.Equal(t, 200, Score(tw.w))
	assert.True(t, tw.sounds().Requested("breakblock"))

	tw.clearSounds()
	tw.jump(ps)
	assert.Equal(t, 200, Score(tw.w), "a destroyed brick never reacts again")
	assert.False(t, tw.sounds().Requested("bump"))
	assert.False(t, tw.sounds().Requested("breakblock"))
}

func TestSmallPlayerBumpsBrickThroughPhysics(t *testing.T) {
	tw := newTestWorld(t)
	ps := NewPhysicsSystem(tw.space, NewContactSystem(tw.tiles, quiet))
	brick, to := tw.tileByID(t, 14)
	tw.standUnder(t, ps, brick, false)

	tw.jump(ps)

	bb, _ := ecs.Get(tw.w, brick, component.PhysicsBodyComponent.Kind())
	assert.False(t, to.Destroyed)
	assert.Equal(t, common.BrickBit, bb.Fixtures[0].Layer.Category)
	assert.Zero(t, Score(tw.w))
	assert.True(t, tw.sounds().Requested("bump"))
}

func TestHeadHitSpendsCoinThroughPhysics(t *testing.T) {
	tw := newTestWorld(t)
	ps := NewPhysicsSystem(tw.space, NewContactSystem(tw.tiles, quiet))
	coin, to := tw.tileByID(t, 8)
	require.False(t, to.Object.HasProperty("mushroom"))
	tw.standUnder(t, ps, coin, false)

	tw.jump(ps)
	assert.Equal(t, 100, Score(tw.w))
	assert.Equal(t, component.BlankCoinTile, tw.grid().Cell(to.Col, to.Row))
	assert.True(t, tw.sounds().Requested("coin"))

	tw.clearSounds()
	tw.jump(ps)
	assert.Equal(t, 100, Score(tw.w), "a spent coin scores once")
	assert.True(t, tw.sounds().Requested("bump"))
	assert.False(t, tw.sounds().Requested("coin"))
	assert.Zero(t, tw.items.Len())
}
