package component

import "github.com/milk9111/mariobros/levels"

// TileKind selects the head-hit reaction of a placed map object.
type TileKind int

const (
	TileGround TileKind = iota
	TileCoin
	TileBrick
)

func (k TileKind) String() string {
	switch k {
	case TileGround:
		return "ground"
	case TileCoin:
		return "coin"
	case TileBrick:
		return "brick"
	}
	return "unknown"
}

// TileObject binds a static fixture to the map object it was built from.
// Col and Row address the cell of the live tile grid drawn over the object.
type TileObject struct {
	Kind      TileKind
	Object    levels.Object
	Col       int
	Row       int
	Destroyed bool
}

var TileObjectComponent = NewComponent[TileObject]()
