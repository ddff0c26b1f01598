package system

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/mariobros/assets"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

// AudioSystem plays the cues flagged on Audio components. Players are
// opened on first use.
type AudioSystem struct {
	logger *log.Logger
	failed map[string]bool
}

func NewAudioSystem(logger *log.Logger) *AudioSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &AudioSystem{logger: logger, failed: map[string]bool{}}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := len(audioComp.Play)
		if len(audioComp.Names) < count {
			count = len(audioComp.Names)
		}
		for len(audioComp.Players) < count {
			audioComp.Players = append(audioComp.Players, nil)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			player := audioComp.Players[i]
			if player == nil {
				player = a.open(audioComp.Names[i])
				audioComp.Players[i] = player
			}
			if player == nil {
				continue
			}
			if i < len(audioComp.Volume) {
				player.SetVolume(audioComp.Volume[i])
			}
			_ = player.Rewind()
			player.Play()
		}

		for i := 0; i < count && i < len(audioComp.Stop); i++ {
			if !audioComp.Stop[i] {
				continue
			}
			audioComp.Stop[i] = false

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}
		}
	})
}

func (a *AudioSystem) open(name string) *audio.Player {
	if a.failed[name] {
		return nil
	}
	player, err := assets.LoadAudioPlayer(name)
	if err != nil {
		a.failed[name] = true
		a.logger.Warn("load sound", "name", name, "err", err)
		return nil
	}
	return player
}

// playSound cues a sound on the sound board.
func playSound(w *ecs.World, name string) {
	e, ok := ecs.First(w, component.SoundBoardTagComponent.Kind())
	if !ok {
		return
	}
	if audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		audioComp.Request(name)
	}
}
