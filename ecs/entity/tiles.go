package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/levels"
	"github.com/milk9111/mariobros/prefabs"
)

// NewGround builds the ground reaction handler for a map object.
func NewGround(w *ecs.World, space *cp.Space, lvl *levels.Level, obj levels.Object, spec *prefabs.TilesSpec) (ecs.Entity, error) {
	return newTileObject(w, space, lvl, obj, component.TileGround, spec.Ground)
}

// NewCoin builds a coin block. Objects carrying the "mushroom" property
// spawn a mushroom when first hit.
func NewCoin(w *ecs.World, space *cp.Space, lvl *levels.Level, obj levels.Object, spec *prefabs.TilesSpec) (ecs.Entity, error) {
	return newTileObject(w, space, lvl, obj, component.TileCoin, spec.Coin)
}

// NewBrick builds a breakable brick.
func NewBrick(w *ecs.World, space *cp.Space, lvl *levels.Level, obj levels.Object, spec *prefabs.TilesSpec) (ecs.Entity, error) {
	return newTileObject(w, space, lvl, obj, component.TileBrick, spec.Brick)
}

// NewPipe builds plain static scenery; it has no reaction.
func NewPipe(w *ecs.World, space *cp.Space, lvl *levels.Level, obj levels.Object, spec *prefabs.TilesSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	pb := newStaticBox(space, e, lvl.RectOf(obj), spec.Pipe)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), pb); err != nil {
		return 0, fmt.Errorf("pipe: add physics body: %w", err)
	}
	return e, nil
}

func newTileObject(w *ecs.World, space *cp.Space, lvl *levels.Level, obj levels.Object, kind component.TileKind, spec prefabs.TileSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	pb := newStaticBox(space, e, lvl.RectOf(obj), spec)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), pb); err != nil {
		return 0, fmt.Errorf("%s: add physics body: %w", kind, err)
	}

	if err := ecs.Add(w, e, component.TileObjectComponent.Kind(), &component.TileObject{
		Kind:   kind,
		Object: obj,
		Col:    int(obj.X) / lvl.TileWidth,
		Row:    int(obj.Y) / lvl.TileHeight,
	}); err != nil {
		return 0, fmt.Errorf("%s: add tile object: %w", kind, err)
	}

	return e, nil
}
