package component

import "image/color"

// HUD is the score and world timer shown along the top of the screen.
type HUD struct {
	Score      int
	WorldTimer int
	Level      string
	TimeUp     bool
	// Ticks counts fixed steps into the current second.
	Ticks int

	Labels    []string
	TextColor color.Color
	X, Y      float64
	ColumnGap float64
}

func (h *HUD) AddScore(v int) {
	if h == nil {
		return
	}
	h.Score += v
}

var HUDComponent = NewComponent[HUD]()
