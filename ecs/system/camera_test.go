package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

func TestCameraFollowsPlayer(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		wantX   float64
	}{
		{name: "left edge", playerX: 10, wantX: 0},
		{name: "centered", playerX: 1000, wantX: 1000 - common.VirtualWidth/2},
		{name: "right edge", playerX: 1590, wantX: 1600 - common.VirtualWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t)
			cs := NewCameraSystem()
			tr, _ := ecs.Get(tw.w, tw.player, component.TransformComponent.Kind())
			tr.X = tt.playerX

			cs.Update(tw.w)

			cam, _ := ecs.First(tw.w, component.CameraComponent.Kind())
			ct, _ := ecs.Get(tw.w, cam, component.TransformComponent.Kind())
			assert.Equal(t, tt.wantX, ct.X)
			assert.Equal(t, tw.lvl.PixelHeight()-common.VirtualHeight, ct.Y)
		})
	}
}

func TestFrozenCameraHolds(t *testing.T) {
	tw := newTestWorld(t)
	cs := NewCameraSystem()
	tr, _ := ecs.Get(tw.w, tw.player, component.TransformComponent.Kind())
	tr.X = 1000
	cs.Update(tw.w)

	cam, _ := ecs.First(tw.w, component.CameraComponent.Kind())
	cc, _ := ecs.Get(tw.w, cam, component.CameraComponent.Kind())
	cc.Frozen = true
	tr.X = 400
	cs.Update(tw.w)

	ct, _ := ecs.Get(tw.w, cam, component.TransformComponent.Kind())
	assert.Equal(t, float64(1000-common.VirtualWidth/2), ct.X)
}
