package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/prefabs"
)

// NewSoundBoard builds the entity holding every sound cue. Players are left
// nil; the audio system opens them on first use.
func NewSoundBoard(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadSoundBoardSpec()
	if err != nil {
		return 0, fmt.Errorf("sound board: load spec: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SoundBoardTagComponent.Kind(), &component.SoundBoardTag{}); err != nil {
		return 0, fmt.Errorf("sound board: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), buildAudioComponent(spec.Clips)); err != nil {
		return 0, fmt.Errorf("sound board: add audio: %w", err)
	}

	if spec.Music.Track != "" {
		if err := ecs.Add(w, e, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{
			Players: map[string]*audio.Player{},
		}); err != nil {
			return 0, fmt.Errorf("sound board: add music player: %w", err)
		}
		req := ecs.CreateEntity(w)
		if err := ecs.Add(w, req, component.MusicRequestComponent.Kind(), &component.MusicRequest{
			Track:  spec.Music.Track,
			Volume: spec.Music.Volume,
			Loop:   spec.Music.Loop,
		}); err != nil {
			return 0, fmt.Errorf("sound board: request music: %w", err)
		}
	}

	return e, nil
}

func buildAudioComponent(clips []prefabs.AudioSpec) *component.Audio {
	n := len(clips)
	a := &component.Audio{
		Names:   make([]string, 0, n),
		Players: make([]*audio.Player, n),
		Volume:  make([]float64, 0, n),
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}
	for _, clip := range clips {
		a.Names = append(a.Names, clip.Name)
		a.Volume = append(a.Volume, clip.Volume)
	}
	return a
}
