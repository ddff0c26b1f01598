package assets

import (
	"image"
	"image/color"
)

var palette = map[byte]color.RGBA{
	'R': {R: 0xb1, G: 0x34, B: 0x25, A: 0xff},
	'B': {R: 0x6a, G: 0x4b, B: 0x1c, A: 0xff},
	'S': {R: 0xe3, G: 0x9d, B: 0x25, A: 0xff},
	'K': {R: 0x10, G: 0x10, B: 0x10, A: 0xff},
	'W': {R: 0xfc, G: 0xfc, B: 0xfc, A: 0xff},
	'O': {R: 0xe4, G: 0x5c, B: 0x10, A: 0xff},
	'G': {R: 0x00, G: 0xa8, B: 0x00, A: 0xff},
	'L': {R: 0x80, G: 0xd0, B: 0x10, A: 0xff},
	'D': {R: 0x00, G: 0x58, B: 0x00, A: 0xff},
	'Y': {R: 0xfc, G: 0xbc, B: 0x3c, A: 0xff},
	'T': {R: 0xf0, G: 0xd0, B: 0xb0, A: 0xff},
	'C': {R: 0xc8, G: 0x4c, B: 0x0c, A: 0xff},
	'M': {R: 0x3c, G: 0x1c, B: 0x00, A: 0xff},
}

// blit paints a pattern of palette characters into dst with its top left at
// x,y. '.' and unknown characters are transparent.
func blit(dst *image.RGBA, x, y int, rows []string, flip bool) {
	for j, row := range rows {
		for i := 0; i < len(row); i++ {
			c, ok := palette[row[i]]
			if !ok {
				continue
			}
			px := x + i
			if flip {
				px = x + len(row) - 1 - i
			}
			dst.SetRGBA(px, y+j, c)
		}
	}
}

// stretch doubles every row of a pattern.
func stretch(rows []string) []string {
	out := make([]string, 0, len(rows)*2)
	for _, r := range rows {
		out = append(out, r, r)
	}
	return out
}

func fill(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}

// withLegs replaces the last rows of a pattern.
func withLegs(body []string, legs ...string) []string {
	out := append([]string(nil), body[:len(body)-len(legs)]...)
	return append(out, legs...)
}
