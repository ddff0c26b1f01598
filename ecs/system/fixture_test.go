package system

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/ecs/entity"
	"github.com/milk9111/mariobros/levels"
	"github.com/milk9111/mariobros/prefabs"
)

var quiet = log.New(io.Discard)

type testWorld struct {
	w       *ecs.World
	space   *cp.Space
	lvl     *levels.Level
	creator *entity.Creator
	player  ecs.Entity
	items   *ItemQueue
	tiles   *TileReactions
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	lvl, err := levels.LoadLevelFromFS(levels.DefaultLevel)
	require.NoError(t, err)

	tw := &testWorld{
		w:     ecs.NewWorld(),
		space: NewSpace(),
		lvl:   lvl,
		items: NewItemQueue(),
	}
	tw.creator, err = entity.LoadLevelToWorld(tw.w, tw.space, lvl)
	require.NoError(t, err)
	tw.player, err = entity.NewPlayer(tw.w, tw.space)
	require.NoError(t, err)
	_, err = entity.NewCamera(tw.w)
	require.NoError(t, err)
	_, err = entity.NewHUD(tw.w, lvl.Name)
	require.NoError(t, err)
	_, err = entity.NewSoundBoard(tw.w)
	require.NoError(t, err)

	spec, err := prefabs.LoadTilesSpec()
	require.NoError(t, err)
	tw.tiles = NewTileReactions(tw.items, spec, quiet)
	return tw
}

// tile returns the first tile object of kind, filtered by whether it holds a
// mushroom.
func (tw *testWorld) tile(t *testing.T, kind component.TileKind, mushroom bool) ecs.Entity {
	t.Helper()
	for _, e := range ecs.Query(tw.w, component.TileObjectComponent.Kind()) {
		to, _ := ecs.Get(tw.w, e, component.TileObjectComponent.Kind())
		if to.Kind == kind && to.Object.HasProperty("mushroom") == mushroom {
			return e
		}
	}
	t.Fatalf("no %s tile (mushroom=%v)", kind, mushroom)
	return 0
}

func (tw *testWorld) contact(t *testing.T, e ecs.Entity, role component.FixtureRole) Contact {
	t.Helper()
	pb, ok := ecs.Get(tw.w, e, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	for i := range pb.Fixtures {
		if pb.Fixtures[i].Role == role {
			return Contact{Entity: e, Body: pb, Fixture: &pb.Fixtures[i]}
		}
	}
	t.Fatalf("entity %v has no fixture with role %d", e, role)
	return Contact{}
}

func (tw *testWorld) playerComp() *component.Player {
	p, _ := ecs.Get(tw.w, tw.player, component.PlayerComponent.Kind())
	return p
}

func (tw *testWorld) grid() *component.TileGrid {
	return tileGrid(tw.w)
}

func (tw *testWorld) sounds() *component.Audio {
	e, _ := ecs.First(tw.w, component.SoundBoardTagComponent.Kind())
	a, _ := ecs.Get(tw.w, e, component.AudioComponent.Kind())
	return a
}

func (tw *testWorld) clearSounds() {
	a := tw.sounds()
	for i := range a.Play {
		a.Play[i] = false
	}
}
