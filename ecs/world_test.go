package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mariobros/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			require.Len(t, Entities(w), c.create)

			if c.destroyIndex < 0 {
				return
			}
			e := ents[c.destroyIndex]
			require.True(t, DestroyEntity(w, e))
			assert.False(t, IsAlive(w, e))
			assert.False(t, DestroyEntity(w, e), "second destroy is a no-op")
			assert.Len(t, Entities(w), c.create-1)
		})
	}
}

func TestRecycledEntityIsNotAliveUnderOldHandle(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	require.NoError(t, Add(w, old, component.TransformComponent.Kind(), &component.Transform{X: 1}))
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	assert.True(t, IsAlive(w, fresh))
	assert.False(t, IsAlive(w, old))
	assert.False(t, Has(w, fresh, component.TransformComponent.Kind()), "components do not survive destruction")
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	tr := component.TransformComponent.Kind()
	en := component.EnemyComponent.Kind()

	goomba := CreateEntity(w)
	brick := CreateEntity(w)

	require.NoError(t, Add(w, goomba, tr, &component.Transform{X: 10, Y: 20}))
	require.NoError(t, Add(w, goomba, en, &component.Enemy{Kind: component.EnemyGoomba}))
	require.NoError(t, Add(w, brick, tr, &component.Transform{X: 32}))

	got, ok := Get(w, goomba, tr)
	require.True(t, ok)
	assert.Equal(t, 10.0, got.X)
	got.X = 11
	again, _ := Get(w, goomba, tr)
	assert.Equal(t, 11.0, again.X, "Get returns the stored pointer")

	assert.Equal(t, 2, Count(w, tr))
	assert.Equal(t, 1, Count(w, en))

	first, ok := First(w, en)
	require.True(t, ok)
	assert.Equal(t, goomba, first)

	assert.True(t, Remove(w, goomba, en))
	assert.False(t, Remove(w, goomba, en))
	assert.False(t, Has(w, goomba, en))
	_, ok = First(w, en)
	assert.False(t, ok)
}

func TestAddToDeadEntityFails(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	DestroyEntity(w, e)
	assert.Error(t, Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
}

func TestQueryAndForEach(t *testing.T) {
	w := NewWorld()
	tr := component.TransformComponent.Kind()
	en := component.EnemyComponent.Kind()
	it := component.ItemComponent.Kind()
	to := component.TileObjectComponent.Kind()

	goomba := CreateEntity(w)
	turtle := CreateEntity(w)
	mushroom := CreateEntity(w)
	dead := CreateEntity(w)

	for _, e := range []Entity{goomba, turtle, mushroom, dead} {
		require.NoError(t, Add(w, e, tr, &component.Transform{}))
	}
	require.NoError(t, Add(w, goomba, en, &component.Enemy{Kind: component.EnemyGoomba}))
	require.NoError(t, Add(w, turtle, en, &component.Enemy{Kind: component.EnemyTurtle}))
	require.NoError(t, Add(w, dead, en, &component.Enemy{Kind: component.EnemyGoomba}))
	require.NoError(t, Add(w, mushroom, it, &component.Item{}))
	DestroyEntity(w, dead)

	t.Run("query_intersection", func(t *testing.T) {
		assert.ElementsMatch(t, []Entity{goomba, turtle}, Query(w, tr, en))
		assert.ElementsMatch(t, []Entity{mushroom}, Query(w, tr, it))
	})

	t.Run("query_missing_store", func(t *testing.T) {
		assert.Empty(t, Query(w, tr, to))
	})

	t.Run("for_each2_skips_dead", func(t *testing.T) {
		seen := map[Entity]component.EnemyKind{}
		ForEach2(w, en, tr, func(e Entity, enemy *component.Enemy, _ *component.Transform) {
			seen[e] = enemy.Kind
		})
		assert.Equal(t, map[Entity]component.EnemyKind{
			goomba: component.EnemyGoomba,
			turtle: component.EnemyTurtle,
		}, seen)
	})

	t.Run("for_each3_no_common", func(t *testing.T) {
		calls := 0
		ForEach3(w, tr, en, it, func(Entity, *component.Transform, *component.Enemy, *component.Item) { calls++ })
		assert.Zero(t, calls)
	})

	t.Run("for_each4_missing_store", func(t *testing.T) {
		calls := 0
		ForEach4(w, tr, en, it, to, func(Entity, *component.Transform, *component.Enemy, *component.Item, *component.TileObject) {
			calls++
		})
		assert.Zero(t, calls)
	})
}

type countingSystem struct {
	order *[]string
	name  string
}

func (c countingSystem) Update(*World) { *c.order = append(*c.order, c.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	s := NewScheduler(countingSystem{&order, "physics"})
	s.Add(nil)
	s.Add(countingSystem{&order, "player"})
	s.Add(countingSystem{&order, "camera"})

	s.Update(NewWorld())
	s.Update(NewWorld())

	assert.Equal(t, []string{"physics", "player", "camera", "physics", "player", "camera"}, order)
	assert.Len(t, s.Systems(), 3)
}
