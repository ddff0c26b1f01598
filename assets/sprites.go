package assets

import "image"

var smallMario = []string{
	"......RRRRR.....",
	".....RRRRRRRRR..",
	".....BBBSSKS....",
	"....BSBSSSKSSS..",
	"....BSBBSSSKSSS.",
	"....BBSSSSKKKK..",
	"......SSSSSSS...",
	".....RRBRRR.....",
	"....RRRBRRBRRR..",
	"...RRRRBBBBRRRR.",
	"...SSRBYBBYBRSS.",
	"...SSSBBBBBBSSS.",
	"...SSBBBBBBBBSS.",
	".....BBB..BBB...",
	"....BBB....BBB..",
	"...BBBB....BBBB.",
}

var deadMario = []string{
	"......RRRRR.....",
	"....RRRRRRRRR...",
	"...SBBSSSSSBBS..",
	"...SSKSSSSSKSS..",
	"...SSKSSSSSKSS..",
	"....SSSKKKSSS...",
	".....SSSSSSS....",
	"..SS.RRBBRR.SS..",
	".SSSRRRBBRRRSSS.",
	"..SRRRRBBRRRRS..",
	"....RBYBBYBR....",
	"....BBBBBBBB....",
	"....BBBBBBBB....",
	"...BBB....BBB...",
	"..BBBB....BBBB..",
	"................",
}

var goomba = []string{
	"......BBBB......",
	".....BBBBBB.....",
	"....BBBBBBBB....",
	"...BWWBBBBWWB...",
	"..BBKWBBBBWKBB..",
	"..BBKWWWWWWKBB..",
	".BBBBKWBBWKBBBB.",
	".BBBBBBBBBBBBBB.",
	"BBBBBBBBBBBBBBBB",
	"BBBBTTTTTTTTBBBB",
	".BBTTTTTTTTTTBB.",
	"....TTTTTTTT....",
	"...KKTTTTTTKK...",
	"..KKKKK..KKKKK..",
	"..KKKKKK.KKKKKK.",
	"...KKKKK.KKKKK..",
}

var squishedGoomba = []string{
	"....BBBBBBBB....",
	"..BBWWBBBBWWBB..",
	".BBBKWWWWWWKBBB.",
	"BBBBBBBBBBBBBBBB",
	"..TTTTTTTTTTTT..",
	"..KKKKKKKKKKKK..",
}

var turtle = []string{
	"..........GG....",
	".........GGGG...",
	".........GWKG...",
	".........GGGG...",
	".........TGGG...",
	".........TTG....",
	"......GGGTT.....",
	"....GGWGWGGT....",
	"...GWGGWGGWGT...",
	"..GGWGGWGGWGGT..",
	"..GWWWWWWWWWGG..",
	"..GGWGGWGGWGGG..",
	"..GWGGWGGWGGWG..",
	"..WWWWWWWWWWWW..",
	"...YY......YY...",
	"..YYY......YYY..",
}

var shell = []string{
	"................",
	"................",
	"................",
	"................",
	"................",
	".....GGGGGG.....",
	"....GGWGWGGG....",
	"...GWGGWGGWGG...",
	"..GGWGGWGGWGGG..",
	"..GWWWWWWWWWGG..",
	"..GGWGGWGGWGGG..",
	"..GWGGWGGWGGWG..",
	"..WWWWWWWWWWWW..",
	"...WWWWWWWWWW...",
	"................",
	"................",
}

var mushroom = []string{
	"......RRRR......",
	"....RRWWRRRR....",
	"...RWWWWRRRRR...",
	"..RRWWWWRRWWRR..",
	"..RRRWWRRWWWWR..",
	".RRRRRRRRWWWWRR.",
	".RWWRRRRRRWWRRR.",
	"RWWWWRRRRRRRRRRR",
	"RWWWWRRRRRRWWRRR",
	".RWWRRRRRRWWWWR.",
	"..RRTTTTTTTTRR..",
	"....TTKTTKTT....",
	"....TTKTTKTT....",
	"....TTTTTTTT....",
	".....TTTTTT.....",
	"................",
}

// PlayerSheet lays out 16x32 cells: row 0 small (stand, run x3, jump, dead),
// row 1 big (stand, run x3, jump), row 2 the grow flicker.
func PlayerSheet() *image.RGBA {
	const w, h = 16, 32
	img := image.NewRGBA(image.Rect(0, 0, 6*w, 3*h))

	run1 := withLegs(smallMario, ".....BBB.BBB....", "....BBB...BB....", ".....BB...BBB...")
	run2 := withLegs(smallMario, "......BBBBB.....", "......BBB.......", ".......BBB......")
	jump := withLegs(smallMario, "..BBB......BBB..", ".BBB........BBB.", "................")

	small := [][]string{smallMario, run1, run2, smallMario, jump, deadMario}
	for i, p := range small {
		blit(img, i*w, 16, p, false)
	}
	big := [][]string{smallMario, run1, run2, smallMario, jump}
	for i, p := range big {
		blit(img, i*w, h, stretch(p), false)
	}
	for i := 0; i < 4; i++ {
		if i%2 == 0 {
			blit(img, i*w, 2*h+16, smallMario, false)
			continue
		}
		blit(img, i*w, 2*h, stretch(smallMario), false)
	}
	return img
}

// EnemySheet lays out 16x24 cells: row 0 goomba (walk x2, squished), row 1
// turtle (walk x2, shell).
func EnemySheet() *image.RGBA {
	const w, h = 16, 24
	img := image.NewRGBA(image.Rect(0, 0, 3*w, 2*h))

	blit(img, 0, 8, goomba, false)
	blit(img, w, 8, goomba, true)
	blit(img, 2*w, h-len(squishedGoomba), squishedGoomba, false)

	walk2 := withLegs(turtle, "..YYY......YY...", "...YY......YYY..")
	blit(img, 0, h+8, turtle, false)
	blit(img, w, h+8, walk2, false)
	blit(img, 2*w, h+8, shell, false)
	return img
}

// ItemSheet holds the mushroom.
func ItemSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	blit(img, 0, 0, mushroom, false)
	return img
}
