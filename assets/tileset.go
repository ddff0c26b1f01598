package assets

import (
	"image"
)

const (
	TileSize       = 16
	TilesetColumns = 6
	TilesetRows    = 6
)

var questionMark = []string{
	"................",
	".OOOOOOOOOOOOOO.",
	"OYYYYYYYYYYYYYYM",
	"OYMYYYYYYYYYYMYM",
	"OYYYYOOOOOYYYYYM",
	"OYYYOOMMMOOYYYYM",
	"OYYYOOMYYOOMYYYM",
	"OYYYYMMYYOOMYYYM",
	"OYYYYYYYOOOMYYYM",
	"OYYYYYYOOMMMYYYM",
	"OYYYYYYOOMYYYYYM",
	"OYYYYYYYMMYYYYYM",
	"OYYYYYYOOYYYYYYM",
	"OYMYYYYYOOMYYMYM",
	"OYYYYYYYYMMYYYYM",
	"MMMMMMMMMMMMMMMM",
}

var blankBlock = []string{
	"MCCCCCCCCCCCCCCM",
	"CMCCCCCCCCCCCCMC",
	"CCMMCCCCCCCCMMCC",
	"CCMCCCCCCCCCCMCC",
	"CCCCCCCCCCCCCCCC",
	"CCCCCCCCCCCCCCCC",
	"CCCCCCCCCCCCCCCC",
	"CCCCCCCCCCCCCCCC",
	"CCCCCCCCCCCCCCCC",
	"CCCCCCCCCCCCCCCC",
	"CCCCCCCCCCCCCCCC",
	"CCCCCCCCCCCCCCCC",
	"CCMCCCCCCCCCCMCC",
	"CCMMCCCCCCCCMMCC",
	"CMCCCCCCCCCCCCMC",
	"MCCCCCCCCCCCCCCM",
}

// Tileset draws the 6x6 tile sheet addressed by tile id - 1. Ids the level
// does not use stay transparent.
func Tileset() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TilesetColumns*TileSize, TilesetRows*TileSize))
	for id := 1; id <= TilesetColumns*TilesetRows; id++ {
		drawTile(img, id)
	}
	return img
}

// TileRect returns the source rectangle of a tile id in the tileset.
func TileRect(id int) image.Rectangle {
	i := id - 1
	x := (i % TilesetColumns) * TileSize
	y := (i / TilesetColumns) * TileSize
	return image.Rect(x, y, x+TileSize, y+TileSize)
}

func drawTile(img *image.RGBA, id int) {
	r := TileRect(id)
	x, y := r.Min.X, r.Min.Y
	switch id {
	case 1, 2:
		fill(img, r, palette['C'])
		for row := 0; row < TileSize; row += 8 {
			fill(img, image.Rect(x, y+row, x+TileSize, y+row+1), palette['M'])
		}
		fill(img, image.Rect(x+TileSize-1, y, x+TileSize, y+TileSize), palette['M'])
		if id == 1 {
			fill(img, image.Rect(x, y, x+TileSize, y+1), palette['T'])
		}
	case 3:
		fill(img, r, palette['C'])
		for row := 0; row < TileSize; row += 4 {
			fill(img, image.Rect(x, y+row+3, x+TileSize, y+row+4), palette['K'])
			off := 0
			if (row/4)%2 == 1 {
				off = 4
			}
			fill(img, image.Rect(x+off+7, y+row, x+off+8, y+row+3), palette['K'])
		}
		fill(img, image.Rect(x, y, x+TileSize, y+1), palette['T'])
	case 13, 14:
		fill(img, r, palette['G'])
		fill(img, image.Rect(x, y, x+TileSize, y+1), palette['K'])
		fill(img, image.Rect(x, y+TileSize-1, x+TileSize, y+TileSize), palette['K'])
		if id == 13 {
			fill(img, image.Rect(x, y, x+1, y+TileSize), palette['K'])
			fill(img, image.Rect(x+3, y+1, x+5, y+TileSize-1), palette['L'])
		} else {
			fill(img, image.Rect(x+TileSize-1, y, x+TileSize, y+TileSize), palette['K'])
			fill(img, image.Rect(x+10, y+1, x+13, y+TileSize-1), palette['D'])
		}
	case 19, 20:
		if id == 19 {
			fill(img, image.Rect(x+2, y, x+TileSize, y+TileSize), palette['G'])
			fill(img, image.Rect(x+2, y, x+3, y+TileSize), palette['K'])
			fill(img, image.Rect(x+5, y, x+7, y+TileSize), palette['L'])
		} else {
			fill(img, image.Rect(x, y, x+TileSize-2, y+TileSize), palette['G'])
			fill(img, image.Rect(x+TileSize-3, y, x+TileSize-2, y+TileSize), palette['K'])
			fill(img, image.Rect(x+8, y, x+11, y+TileSize), palette['D'])
		}
	case 25, 26, 27:
		blit(img, x, y, questionMark, false)
	case 28:
		blit(img, x, y, blankBlock, false)
	case 31, 32:
		fill(img, image.Rect(x, y+6, x+TileSize, y+TileSize-2), palette['W'])
		if id == 31 {
			fill(img, image.Rect(x+4, y+2, x+TileSize, y+6), palette['W'])
		} else {
			fill(img, image.Rect(x, y+3, x+10, y+6), palette['W'])
		}
	case 33, 34:
		for row := 0; row < TileSize; row++ {
			half := row / 2
			if id == 33 {
				fill(img, image.Rect(x+TileSize-1-half*2, y+row, x+TileSize, y+row+1), palette['G'])
			} else {
				fill(img, image.Rect(x, y+row, x+1+half*2, y+row+1), palette['G'])
			}
		}
	}
}
