package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/levels"
)

func loadLevel(t *testing.T) (*ecs.World, *cp.Space, *levels.Level, *Creator) {
	t.Helper()
	lvl, err := levels.LoadLevelFromFS(levels.DefaultLevel)
	require.NoError(t, err)

	w := ecs.NewWorld()
	space := cp.NewSpace()
	c, err := LoadLevelToWorld(w, space, lvl)
	require.NoError(t, err)
	return w, space, lvl, c
}

func countObjects(t *testing.T, lvl *levels.Level, idx int) int {
	t.Helper()
	layer, err := lvl.ObjectLayer(idx)
	require.NoError(t, err)
	return len(layer.Objects)
}

func TestLoadLevelToWorldBuildsEveryObject(t *testing.T) {
	w, space, lvl, c := loadLevel(t)

	kinds := map[component.TileKind]int{}
	ecs.ForEach(w, component.TileObjectComponent.Kind(), func(_ ecs.Entity, to *component.TileObject) {
		kinds[to.Kind]++
	})
	assert.Equal(t, countObjects(t, lvl, LayerGround), kinds[component.TileGround])
	assert.Equal(t, countObjects(t, lvl, LayerCoins), kinds[component.TileCoin])
	assert.Equal(t, countObjects(t, lvl, LayerBricks), kinds[component.TileBrick])

	statics := countObjects(t, lvl, LayerGround) + countObjects(t, lvl, LayerPipes) +
		countObjects(t, lvl, LayerCoins) + countObjects(t, lvl, LayerBricks)
	active := 0
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody) {
		if pb.Active {
			active++
			assert.True(t, space.ContainsBody(pb.Body))
		}
	})
	assert.Equal(t, statics, active, "only static tiles start in the space")

	assert.Len(t, c.Goombas(), countObjects(t, lvl, LayerGoombas))
	assert.Len(t, c.Turtles(), countObjects(t, lvl, LayerTurtles))
	assert.Len(t, c.Enemies(), len(c.Goombas())+len(c.Turtles()))

	bounds := levelBounds(w)
	assert.Equal(t, lvl.PixelWidth(), bounds.Width)
	assert.Equal(t, lvl.PixelHeight(), bounds.Height)
}

func TestLoadLevelToWorldStaticFilters(t *testing.T) {
	w, _, lvl, _ := loadLevel(t)

	want := map[component.TileKind]uint{
		component.TileGround: common.GroundBit,
		component.TileCoin:   common.CoinBit,
		component.TileBrick:  common.BrickBit,
	}
	ecs.ForEach2(w, component.TileObjectComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, to *component.TileObject, pb *component.PhysicsBody) {
		require.Len(t, pb.Fixtures, 1)
		f := pb.Fixtures[0]
		assert.Equal(t, want[to.Kind], f.Layer.Category)
		assert.Equal(t, component.FixtureCollisionType, f.Shape.CollisionType())

		r := lvl.RectOf(to.Object)
		pos := pb.Body.Position()
		assert.InDelta(t, common.ToMeters(r.CenterX()), pos.X, 1e-9)
		assert.InDelta(t, common.ToMeters(r.CenterY()), pos.Y, 1e-9)
	})
}

func TestLoadLevelToWorldEnemiesStartInactive(t *testing.T) {
	w, space, lvl, c := loadLevel(t)

	goombas, err := lvl.ObjectLayer(LayerGoombas)
	require.NoError(t, err)

	for i, e := range c.Goombas() {
		en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
		require.True(t, ok)
		assert.Equal(t, component.EnemyGoomba, en.Kind)
		assert.Equal(t, component.EnemyWalking, en.State)

		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		require.True(t, ok)
		assert.False(t, pb.Active)
		assert.False(t, space.ContainsBody(pb.Body))

		r := lvl.RectOf(goombas.Objects[i])
		assert.InDelta(t, common.ToMeters(r.X), pb.Body.Position().X, 1e-9)
		assert.InDelta(t, common.ToMeters(r.Y), pb.Body.Position().Y, 1e-9)
	}
}

func TestLoadLevelToWorldTileGridIsACopy(t *testing.T) {
	w, _, lvl, _ := loadLevel(t)

	e, ok := ecs.First(w, component.TileGridComponent.Kind())
	require.True(t, ok)
	grid, _ := ecs.Get(w, e, component.TileGridComponent.Kind())

	gfx, err := lvl.TileLayer(LayerGraphics)
	require.NoError(t, err)
	before := gfx.Data[0]

	grid.SetCell(0, 0, before+1)
	assert.Equal(t, before+1, grid.Cell(0, 0))
	assert.Equal(t, before, gfx.Data[0], "level data stays immutable")
	assert.Equal(t, 0, grid.Cell(-1, 0))
	assert.Equal(t, 0, grid.Cell(lvl.Width, 0))
}

func TestLoadLevelToWorldRejectsBadLayers(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(l *levels.Level)
		wantErr error
	}{
		{
			name:    "missing turtles layer",
			mutate:  func(l *levels.Level) { l.Layers = l.Layers[:LayerTurtles] },
			wantErr: levels.ErrMissingLayer,
		},
		{
			name:    "graphics layer is objects",
			mutate:  func(l *levels.Level) { l.Layers[LayerGraphics].Kind = levels.LayerObject },
			wantErr: levels.ErrMalformedLayer,
		},
		{
			name:    "coins layer is tiles",
			mutate:  func(l *levels.Level) { l.Layers[LayerCoins].Kind = levels.LayerTile },
			wantErr: levels.ErrMalformedLayer,
		},
		{
			name:    "short background",
			mutate:  func(l *levels.Level) { l.Layers[LayerBackground].Data = l.Layers[LayerBackground].Data[:3] },
			wantErr: levels.ErrMalformedLayer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := levels.LoadLevelFromFS(levels.DefaultLevel)
			require.NoError(t, err)
			tt.mutate(lvl)

			w := ecs.NewWorld()
			space := cp.NewSpace()
			c, err := LoadLevelToWorld(w, space, lvl)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, c)
			assert.Empty(t, ecs.Entities(w), "nothing is built from a bad map")
		})
	}

	_, err := LoadLevelToWorld(ecs.NewWorld(), cp.NewSpace(), nil)
	assert.ErrorIs(t, err, levels.ErrMissingLayer)
}
