package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio is a bank of named one-shot sounds. Setting Play[i] cues a sound for
// the audio system; Players may be nil when no audio device is present.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

func (a *Audio) index(name string) int {
	if a == nil {
		return -1
	}
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Request cues the named sound. It reports false for unknown names.
func (a *Audio) Request(name string) bool {
	i := a.index(name)
	if i < 0 || i >= len(a.Play) {
		return false
	}
	a.Play[i] = true
	return true
}

// Requested reports whether the named sound is cued and not yet played.
func (a *Audio) Requested(name string) bool {
	i := a.index(name)
	return i >= 0 && i < len(a.Play) && a.Play[i]
}

var AudioComponent = NewComponent[Audio]()
