package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/prefabs"
)

// ItemSpawner accepts item definitions produced inside contact callbacks.
type ItemSpawner interface {
	SpawnItem(def component.ItemDef)
}

// TileReactions implements the head-hit reaction of ground, coin and brick
// tiles. Every reaction runs inside the physics step.
type TileReactions struct {
	spawner ItemSpawner
	tiles   *prefabs.TilesSpec
	logger  *log.Logger
}

func NewTileReactions(spawner ItemSpawner, tiles *prefabs.TilesSpec, logger *log.Logger) *TileReactions {
	if tiles == nil {
		tiles = &prefabs.TilesSpec{
			CoinScore:     100,
			BrickScore:    200,
			BlankCoinTile: component.BlankCoinTile,
			ItemOffset:    16,
		}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &TileReactions{spawner: spawner, tiles: tiles, logger: logger}
}

// SetTiles swaps in reloaded tile tuning.
func (r *TileReactions) SetTiles(tiles *prefabs.TilesSpec) {
	if tiles != nil {
		r.tiles = tiles
	}
}

// OnHeadHit reacts to the player's head sensor touching tile.
func (r *TileReactions) OnHeadHit(w *ecs.World, tile, player ecs.Entity) {
	obj, ok := ecs.Get(w, tile, component.TileObjectComponent.Kind())
	if !ok {
		return
	}
	switch obj.Kind {
	case component.TileGround:
		r.onGroundHit(obj)
	case component.TileCoin:
		r.onCoinHit(w, tile, obj)
	case component.TileBrick:
		r.onBrickHit(w, tile, obj, player)
	}
}

func (r *TileReactions) onGroundHit(obj *component.TileObject) {
	r.logger.Debug("Ground collision", "handler", "ground", "object", obj.Object.ID)
}

func (r *TileReactions) onCoinHit(w *ecs.World, tile ecs.Entity, obj *component.TileObject) {
	r.logger.Debug("Coin collision", "handler", "coin", "object", obj.Object.ID, "col", obj.Col, "row", obj.Row)

	grid := tileGrid(w)
	if grid.Cell(obj.Col, obj.Row) == r.blankCoin() {
		playSound(w, "bump")
		return
	}

	grid.SetCell(obj.Col, obj.Row, r.blankCoin())
	addScore(w, r.tiles.CoinScore)

	if !obj.Object.HasProperty("mushroom") {
		playSound(w, "coin")
		return
	}

	pb, ok := ecs.Get(w, tile, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		panic("tile reactions: coin without body")
	}
	pos := pb.Body.Position()
	if r.spawner != nil {
		r.spawner.SpawnItem(component.ItemDef{
			Kind: component.ItemMushroom,
			X:    pos.X,
			Y:    pos.Y + common.ToMeters(r.tiles.ItemOffset),
		})
	}
	playSound(w, "powerup_spawn")
}

func (r *TileReactions) onBrickHit(w *ecs.World, tile ecs.Entity, obj *component.TileObject, player ecs.Entity) {
	if obj.Destroyed {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok || !p.Big {
		playSound(w, "bump")
		return
	}

	r.logger.Debug("Brick collision", "handler", "brick", "object", obj.Object.ID, "col", obj.Col, "row", obj.Row)

	if pb, ok := ecs.Get(w, tile, component.PhysicsBodyComponent.Kind()); ok {
		pb.SetCategory(common.DestroyedBit)
	}
	tileGrid(w).SetCell(obj.Col, obj.Row, 0)
	obj.Destroyed = true
	addScore(w, r.tiles.BrickScore)
	playSound(w, "breakblock")
}

func (r *TileReactions) blankCoin() int {
	if r.tiles.BlankCoinTile > 0 {
		return r.tiles.BlankCoinTile
	}
	return component.BlankCoinTile
}

func tileGrid(w *ecs.World) *component.TileGrid {
	e, ok := ecs.First(w, component.TileGridComponent.Kind())
	if !ok {
		return nil
	}
	grid, _ := ecs.Get(w, e, component.TileGridComponent.Kind())
	return grid
}
