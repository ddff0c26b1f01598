package system

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mariobros/assets"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
)

// RenderSystem draws the tile grid and then every sprite, ordered by render
// layer, relative to the camera.
type RenderSystem struct {
	camEntity ecs.Entity
	tileset   *ebiten.Image
	logger    *log.Logger
}

func NewRenderSystem(logger *log.Logger) *RenderSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &RenderSystem{logger: logger}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY := 0.0, 0.0
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		if camComp.Zoom > 0 {
			zoom = camComp.Zoom
		}
		if camComp.ClearColor != nil {
			screen.Fill(camComp.ClearColor)
		}
	}

	r.drawTiles(w, screen, camX, camY, zoom)

	entities := ecs.Query(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		if e == r.camEntity || ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
			continue
		}

		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Image == nil || s.Hidden {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		if s.FacingLeft {
			sx = -sx
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate((t.X-camX)*zoom, (t.Y-camY)*zoom)

		screen.DrawImage(img, op)
	}
}

func (r *RenderSystem) drawTiles(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	grid := tileGrid(w)
	if grid == nil {
		return
	}
	if r.tileset == nil {
		img, err := assets.LoadImage("tileset")
		if err != nil {
			r.logger.Warn("load tileset", "err", err)
			return
		}
		r.tileset = img
	}

	size := float64(assets.TileSize)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	first := int(camX / size)
	if first < 0 {
		first = 0
	}
	last := int((camX+float64(sw)/zoom)/size) + 1
	if last > grid.Width {
		last = grid.Width
	}

	for _, layer := range grid.Layers {
		for row := 0; row < grid.Height; row++ {
			y := (float64(row)*size - camY) * zoom
			if y > float64(sh) || y+size*zoom < 0 {
				continue
			}
			for col := first; col < last; col++ {
				id := layer[row*grid.Width+col]
				if id <= 0 {
					continue
				}
				sub, ok := r.tileset.SubImage(assets.TileRect(id)).(*ebiten.Image)
				if !ok {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(zoom, zoom)
				op.GeoM.Translate((float64(col)*size-camX)*zoom, y)
				screen.DrawImage(sub, op)
			}
		}
	}
}
