package system

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/mariobros/assets"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

const defaultMusicVolume = 1.0

// MusicSystem applies the latest MusicRequest to the MusicPlayer and keeps a
// looping track going.
type MusicSystem struct {
	logger *log.Logger
}

func NewMusicSystem(logger *log.Logger) *MusicSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &MusicSystem{logger: logger}
}

// RequestMusicWithOptions queues req for the music system. Only the latest
// pending request is kept, and nothing is queued when the world has no music
// player.
func RequestMusicWithOptions(w *ecs.World, req *component.MusicRequest) error {
	if w == nil || req == nil {
		return nil
	}
	if _, ok := ecs.First(w, component.MusicPlayerComponent.Kind()); !ok {
		return nil
	}
	if ent, ok := ecs.First(w, component.MusicRequestComponent.Kind()); ok {
		if pending, ok := ecs.Get(w, ent, component.MusicRequestComponent.Kind()); ok {
			*pending = *req
			return nil
		}
	}
	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.MusicRequestComponent.Kind(), req); err != nil {
		ecs.DestroyEntity(w, ent)
		return fmt.Errorf("music: request %q: %w", req.Track, err)
	}
	return nil
}

func StopMusic(w *ecs.World) error {
	return RequestMusicWithOptions(w, &component.MusicRequest{})
}

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	latest, requestEntities := m.consumeLatestRequest(w)
	for _, ent := range requestEntities {
		ecs.DestroyEntity(w, ent)
	}

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok || player == nil {
		return
	}
	if player.Players == nil {
		player.Players = make(map[string]*audio.Player)
	}

	if latest != nil {
		m.applyRequest(player, *latest)
	}

	current := m.currentPlayer(player)
	if current != nil && !current.IsPlaying() && player.CurrentLoop {
		_ = current.Rewind()
		current.SetVolume(player.CurrentVolume)
		current.Play()
	}
}

func (m *MusicSystem) consumeLatestRequest(w *ecs.World) (*component.MusicRequest, []ecs.Entity) {
	var latest *component.MusicRequest
	requestEntities := make([]ecs.Entity, 0)

	ecs.ForEach(w, component.MusicRequestComponent.Kind(), func(ent ecs.Entity, req *component.MusicRequest) {
		requestEntities = append(requestEntities, ent)
		if req == nil {
			return
		}
		copy := *req
		latest = &copy
	})

	return latest, requestEntities
}

func (m *MusicSystem) applyRequest(player *component.MusicPlayer, req component.MusicRequest) {
	track := strings.TrimSpace(req.Track)
	volume := req.Volume
	if volume <= 0 {
		volume = defaultMusicVolume
	}
	if volume > 1 {
		volume = 1
	}

	current := m.currentPlayer(player)
	if track == player.CurrentTrack && current != nil {
		player.CurrentVolume = volume
		player.CurrentLoop = req.Loop
		current.SetVolume(volume)
		return
	}

	if current != nil {
		current.Pause()
		_ = current.Rewind()
	}
	player.CurrentTrack = ""
	player.CurrentVolume = 0
	player.CurrentLoop = false
	if track == "" {
		return
	}

	next, err := m.playerForTrack(player, track)
	if err != nil {
		m.logger.Warn("load music", "track", track, "err", err)
		return
	}
	player.CurrentTrack = track
	player.CurrentVolume = volume
	player.CurrentLoop = req.Loop
	_ = next.Rewind()
	next.SetVolume(volume)
	next.Play()
}

func (m *MusicSystem) currentPlayer(player *component.MusicPlayer) *audio.Player {
	if player == nil || strings.TrimSpace(player.CurrentTrack) == "" || player.Players == nil {
		return nil
	}
	return player.Players[player.CurrentTrack]
}

func (m *MusicSystem) playerForTrack(player *component.MusicPlayer, track string) (*audio.Player, error) {
	if existing, ok := player.Players[track]; ok && existing != nil {
		return existing, nil
	}
	audioPlayer, err := assets.LoadAudioPlayer(track)
	if err != nil {
		return nil, err
	}
	player.Players[track] = audioPlayer
	return audioPlayer, nil
}

// StopAllMusic pauses every music player; used on teardown.
func StopAllMusic(w *ecs.World) {
	ecs.ForEach(w, component.MusicPlayerComponent.Kind(), func(_ ecs.Entity, player *component.MusicPlayer) {
		for _, p := range player.Players {
			if p != nil {
				p.Pause()
				_ = p.Close()
			}
		}
		player.Players = nil
		player.CurrentTrack = ""
	})
}
