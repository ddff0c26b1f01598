package component

// BlankCoinTile is the tile id a spent coin block shows.
const BlankCoinTile = 28

// TileGrid holds the drawable tile layers of a level. Layers[Live] is a copy
// of the graphics layer that reactions write to; the parsed level stays
// untouched.
type TileGrid struct {
	Width  int
	Height int
	Layers [][]int
	Live   int
}

// Cell returns the live tile id at col,row, or 0 outside the grid.
func (g *TileGrid) Cell(col, row int) int {
	if g == nil || !g.inside(col, row) || g.Live >= len(g.Layers) {
		return 0
	}
	return g.Layers[g.Live][row*g.Width+col]
}

// SetCell writes the live tile id at col,row.
func (g *TileGrid) SetCell(col, row, id int) {
	if g == nil || !g.inside(col, row) || g.Live >= len(g.Layers) {
		return
	}
	g.Layers[g.Live][row*g.Width+col] = id
}

func (g *TileGrid) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Width && row < g.Height
}

var TileGridComponent = NewComponent[TileGrid]()
