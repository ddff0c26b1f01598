package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// MusicPlayer stores global music playback state on a dedicated entity.
type MusicPlayer struct {
	Players map[string]*audio.Player

	CurrentTrack  string
	CurrentVolume float64
	CurrentLoop   bool
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()
