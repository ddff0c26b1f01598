// Package screen holds the screens the game switches between and the
// contract they share with the host loop.
package screen

import "github.com/hajimehoshi/ebiten/v2"

// Screen is one stage of the game. The host calls Update then Draw once per
// tick on a single goroutine and Dispose exactly once when the screen is
// replaced.
type Screen interface {
	Show()
	Hide()
	Pause()
	Resume()
	Resize(width, height int)
	Update(dt float64) error
	Draw(screen *ebiten.Image)
	Dispose()
}

// Host owns the current screen.
type Host interface {
	SetScreen(s Screen)
}
