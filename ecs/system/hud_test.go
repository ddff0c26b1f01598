package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

func hudOf(t *testing.T, w *ecs.World) *component.HUD {
	t.Helper()
	e, ok := ecs.First(w, component.HUDComponent.Kind())
	assert.True(t, ok)
	hud, _ := ecs.Get(w, e, component.HUDComponent.Kind())
	return hud
}

func TestHUDCountsDownOncePerSecond(t *testing.T) {
	tw := newTestWorld(t)
	hud := hudOf(t, tw.w)
	s := NewHUDSystem()
	start := hud.WorldTimer

	for range common.TPS - 1 {
		s.Update(tw.w)
	}
	assert.Equal(t, start, hud.WorldTimer)

	s.Update(tw.w)
	assert.Equal(t, start-1, hud.WorldTimer, "exactly TPS ticks make a second")
	assert.Zero(t, hud.Ticks)

	for range 10 * common.TPS {
		s.Update(tw.w)
	}
	assert.Equal(t, start-11, hud.WorldTimer, "no drift over many seconds")
	assert.False(t, hud.TimeUp)
}

func TestHUDTimeUp(t *testing.T) {
	tw := newTestWorld(t)
	hud := hudOf(t, tw.w)
	hud.WorldTimer = 1
	s := NewHUDSystem()

	for range common.TPS {
		s.Update(tw.w)
	}
	assert.Zero(t, hud.WorldTimer)
	assert.False(t, hud.TimeUp, "the zero is shown for a full second first")

	for range common.TPS - 1 {
		s.Update(tw.w)
	}
	assert.False(t, hud.TimeUp)

	s.Update(tw.w)
	assert.True(t, hud.TimeUp)

	for range 2 * common.TPS {
		s.Update(tw.w)
	}
	assert.Zero(t, hud.WorldTimer, "the timer stops at zero")
}

func TestScore(t *testing.T) {
	tw := newTestWorld(t)
	addScore(tw.w, 100)
	addScore(tw.w, 200)
	assert.Equal(t, 300, Score(tw.w))

	assert.Zero(t, Score(ecs.NewWorld()))
	assert.NotPanics(t, func() { addScore(ecs.NewWorld(), 10) })
}
