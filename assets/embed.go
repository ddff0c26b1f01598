package assets

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var sheets = map[string]func() *image.RGBA{
	"player":  PlayerSheet,
	"enemies": EnemySheet,
	"items":   ItemSheet,
	"tileset": Tileset,
}

var (
	images       = map[string]*ebiten.Image{}
	audioContext *audio.Context
)

// LoadImage returns the named sheet as an *ebiten.Image, building it on first
// use.
func LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := images[name]; ok {
		return img, nil
	}
	build, ok := sheets[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown image %q", name)
	}
	img := ebiten.NewImageFromImage(build())
	images[name] = img
	return img, nil
}

// AudioContext returns the shared audio context, creating it on first use.
func AudioContext() *audio.Context {
	if audioContext == nil {
		if ctx := audio.CurrentContext(); ctx != nil {
			audioContext = ctx
		} else {
			audioContext = audio.NewContext(SampleRate)
		}
	}
	return audioContext
}

// LoadAudioPlayer synthesizes a named cue or track and wraps it in a player.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	notes, ok := CueNotes(name)
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", name)
	}
	return AudioContext().NewPlayerFromBytes(Synthesize(notes)), nil
}
