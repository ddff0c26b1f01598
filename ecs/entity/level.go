package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/levels"
	"github.com/milk9111/mariobros/prefabs"
)

// Layer indices of a level map.
const (
	LayerBackground = 0
	LayerGraphics   = 1
	LayerGround     = 2
	LayerPipes      = 3
	LayerCoins      = 4
	LayerBricks     = 5
	LayerGoombas    = 6
	LayerTurtles    = 7
)

var (
	tileLayers   = []int{LayerBackground, LayerGraphics}
	objectLayers = []int{LayerGround, LayerPipes, LayerCoins, LayerBricks, LayerGoombas, LayerTurtles}
)

// Creator holds the enemies built from a level.
type Creator struct {
	goombas []ecs.Entity
	turtles []ecs.Entity
}

func (c *Creator) Goombas() []ecs.Entity { return c.goombas }

func (c *Creator) Turtles() []ecs.Entity { return c.turtles }

// Enemies returns goombas followed by turtles.
func (c *Creator) Enemies() []ecs.Entity {
	out := make([]ecs.Entity, 0, len(c.goombas)+len(c.turtles))
	out = append(out, c.goombas...)
	return append(out, c.turtles...)
}

// LoadLevelToWorld walks the fixed layers of lvl and builds the level bounds,
// the live tile grid, the static tile bodies and the enemies. Every layer is
// checked before anything is built, so a bad map leaves the world empty.
func LoadLevelToWorld(w *ecs.World, space *cp.Space, lvl *levels.Level) (*Creator, error) {
	if lvl == nil {
		return nil, fmt.Errorf("load level: %w: nil level", levels.ErrMissingLayer)
	}
	for _, idx := range tileLayers {
		if _, err := lvl.TileLayer(idx); err != nil {
			return nil, fmt.Errorf("load level %s: %w", lvl.Name, err)
		}
	}
	for _, idx := range objectLayers {
		if _, err := lvl.ObjectLayer(idx); err != nil {
			return nil, fmt.Errorf("load level %s: %w", lvl.Name, err)
		}
	}

	tiles, err := prefabs.LoadTilesSpec()
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", lvl.Name, err)
	}

	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  lvl.PixelWidth(),
		Height: lvl.PixelHeight(),
	}); err != nil {
		return nil, fmt.Errorf("load level %s: add bounds: %w", lvl.Name, err)
	}

	if err := addTileGrid(w, lvl); err != nil {
		return nil, fmt.Errorf("load level %s: %w", lvl.Name, err)
	}

	statics := []struct {
		layer int
		build func(*ecs.World, *cp.Space, *levels.Level, levels.Object, *prefabs.TilesSpec) (ecs.Entity, error)
	}{
		{LayerGround, NewGround},
		{LayerPipes, NewPipe},
		{LayerCoins, NewCoin},
		{LayerBricks, NewBrick},
	}
	for _, s := range statics {
		layer, _ := lvl.ObjectLayer(s.layer)
		for _, obj := range layer.Objects {
			if _, err := s.build(w, space, lvl, obj, tiles); err != nil {
				return nil, fmt.Errorf("load level %s: layer %s object %d: %w", lvl.Name, layer.Name, obj.ID, err)
			}
		}
	}

	c := &Creator{}
	enemies := []struct {
		layer int
		build func(*ecs.World, float64, float64) (ecs.Entity, error)
		out   *[]ecs.Entity
	}{
		{LayerGoombas, NewGoomba, &c.goombas},
		{LayerTurtles, NewTurtle, &c.turtles},
	}
	for _, en := range enemies {
		layer, _ := lvl.ObjectLayer(en.layer)
		for _, obj := range layer.Objects {
			r := lvl.RectOf(obj)
			e, err := en.build(w, common.ToMeters(r.X), common.ToMeters(r.Y))
			if err != nil {
				return nil, fmt.Errorf("load level %s: layer %s object %d: %w", lvl.Name, layer.Name, obj.ID, err)
			}
			*en.out = append(*en.out, e)
		}
	}

	return c, nil
}

func addTileGrid(w *ecs.World, lvl *levels.Level) error {
	bg, _ := lvl.TileLayer(LayerBackground)
	gfx, _ := lvl.TileLayer(LayerGraphics)

	live := make([]int, len(gfx.Data))
	copy(live, gfx.Data)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TileGridComponent.Kind(), &component.TileGrid{
		Width:  lvl.Width,
		Height: lvl.Height,
		Layers: [][]int{bg.Data, live},
		Live:   1,
	}); err != nil {
		return fmt.Errorf("add tile grid: %w", err)
	}
	return nil
}
