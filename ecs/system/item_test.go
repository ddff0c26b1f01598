package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

func TestItemQueueFIFO(t *testing.T) {
	q := NewItemQueue()

	_, ok := q.Pop()
	assert.False(t, ok, "empty queue pops nothing")
	_, ok = q.Peek()
	assert.False(t, ok)

	defs := []component.ItemDef{
		{Kind: component.ItemMushroom, X: 1, Y: 2},
		{Kind: component.ItemMushroom, X: 3, Y: 4},
		{Kind: component.ItemMushroom, X: 5, Y: 6},
	}
	for _, d := range defs {
		q.SpawnItem(d)
	}
	assert.Equal(t, 3, q.Len())

	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, defs[0], head)
	assert.Equal(t, 3, q.Len(), "peek keeps the item")

	for _, want := range defs {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Zero(t, q.Len())
}

func countItems(w *ecs.World) int {
	return ecs.Count(w, component.ItemComponent.Kind())
}

func TestItemSpawnSystemDrainsOnePerTick(t *testing.T) {
	tw := newTestWorld(t)
	spawner := NewItemSpawnSystem(tw.items, tw.space, quiet)

	tw.items.SpawnItem(component.ItemDef{Kind: component.ItemMushroom, X: 2.4, Y: 1.3})
	tw.items.SpawnItem(component.ItemDef{Kind: component.ItemMushroom, X: 6.0, Y: 1.3})

	steps := []struct {
		wantItems  int
		wantQueued int
	}{
		{1, 1},
		{2, 0},
		{2, 0},
	}
	for i, s := range steps {
		spawner.Update(tw.w)
		assert.Equal(t, s.wantItems, countItems(tw.w), "tick %d", i)
		assert.Equal(t, s.wantQueued, tw.items.Len(), "tick %d", i)
	}

	xs := []float64{}
	ecs.ForEach2(tw.w, component.ItemComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, _ *component.Item, pb *component.PhysicsBody) {
		assert.True(t, pb.Active)
		xs = append(xs, pb.Body.Position().X)
	})
	assert.ElementsMatch(t, []float64{2.4, 6.0}, xs)
}

func TestItemSpawnSystemPanicsOnUnknownKind(t *testing.T) {
	tw := newTestWorld(t)
	spawner := NewItemSpawnSystem(tw.items, tw.space, quiet)
	tw.items.SpawnItem(component.ItemDef{Kind: component.ItemKind(99)})

	assert.Panics(t, func() { spawner.Update(tw.w) })
}

func TestItemSystem(t *testing.T) {
	tw := newTestWorld(t)
	spawner := NewItemSpawnSystem(tw.items, tw.space, quiet)
	items := NewItemSystem(tw.space)

	tw.items.SpawnItem(component.ItemDef{Kind: component.ItemMushroom, X: 2.4, Y: 1.3})
	spawner.Update(tw.w)

	e, ok := ecs.First(tw.w, component.ItemComponent.Kind())
	require.True(t, ok)
	it, _ := ecs.Get(tw.w, e, component.ItemComponent.Kind())
	pb, _ := ecs.Get(tw.w, e, component.PhysicsBodyComponent.Kind())

	t.Run("keeps walking speed", func(t *testing.T) {
		it.VelocityX = -0.7
		pb.Body.SetVelocity(0, -1)
		items.Update(tw.w)
		assert.InDelta(t, -0.7, pb.Body.Velocity().X, 1e-9)
		assert.InDelta(t, -1, pb.Body.Velocity().Y, 1e-9)
	})

	t.Run("used items are removed", func(t *testing.T) {
		body := pb.Body
		it.ToDestroy = true
		items.Update(tw.w)
		assert.False(t, ecs.IsAlive(tw.w, e))
		assert.False(t, tw.space.ContainsBody(body))
	})

	t.Run("fallen items are removed", func(t *testing.T) {
		tw.items.SpawnItem(component.ItemDef{Kind: component.ItemMushroom, X: 1, Y: -0.5})
		spawner.Update(tw.w)
		require.Equal(t, 1, countItems(tw.w))
		items.Update(tw.w)
		assert.Zero(t, countItems(tw.w))
	})
}
