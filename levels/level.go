package levels

import (
	"errors"
	"fmt"
)

var (
	ErrMissingLayer   = errors.New("levels: missing layer")
	ErrMalformedLayer = errors.New("levels: malformed layer")
)

type LayerKind string

const (
	LayerTile   LayerKind = "tile"
	LayerObject LayerKind = "object"
)

// Level is a parsed tile map: named layers in draw order. It is never
// mutated after load.
type Level struct {
	Name       string    `json:"name"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	TileWidth  int       `json:"tile_width"`
	TileHeight int       `json:"tile_height"`
	Tilesets   []Tileset `json:"tilesets"`
	Layers     []Layer   `json:"layers"`
}

type Tileset struct {
	Name      string `json:"name"`
	FirstGID  int    `json:"first_gid"`
	TileCount int    `json:"tile_count"`
	Columns   int    `json:"columns"`
}

// Layer is either a tile layer (Data is row-major, top row first, 0 = empty)
// or an object layer.
type Layer struct {
	Name    string    `json:"name"`
	Kind    LayerKind `json:"type"`
	Data    []int     `json:"data,omitempty"`
	Objects []Object  `json:"objects,omitempty"`
}

// Object is a placed rectangle. Coordinates are pixels with the origin at
// the top-left of the map and y growing down.
type Object struct {
	ID         int               `json:"id"`
	Name       string            `json:"name,omitempty"`
	X          float64           `json:"x"`
	Y          float64           `json:"y"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Rect is an axis-aligned rectangle in pixels with y pointing up.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

func (o Object) HasProperty(name string) bool {
	_, ok := o.Properties[name]
	return ok
}

func (o Object) Property(name string) (string, bool) {
	v, ok := o.Properties[name]
	return v, ok
}

func (l *Level) PixelWidth() float64 {
	return float64(l.Width * l.TileWidth)
}

func (l *Level) PixelHeight() float64 {
	return float64(l.Height * l.TileHeight)
}

// RectOf flips an object's rectangle into y-up pixel space.
func (l *Level) RectOf(o Object) Rect {
	return Rect{
		X:      o.X,
		Y:      l.PixelHeight() - o.Y - o.Height,
		Width:  o.Width,
		Height: o.Height,
	}
}

// Layer returns the layer at index.
func (l *Level) Layer(index int) (*Layer, error) {
	if l == nil || index < 0 || index >= len(l.Layers) {
		return nil, fmt.Errorf("%w: index %d", ErrMissingLayer, index)
	}
	return &l.Layers[index], nil
}

// LayerByName returns the first layer with the given name.
func (l *Level) LayerByName(name string) (*Layer, error) {
	if l != nil {
		for i := range l.Layers {
			if l.Layers[i].Name == name {
				return &l.Layers[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMissingLayer, name)
}

// ObjectLayer returns the layer at index and checks it holds well-formed
// rectangles.
func (l *Level) ObjectLayer(index int) (*Layer, error) {
	layer, err := l.Layer(index)
	if err != nil {
		return nil, err
	}
	if layer.Kind != LayerObject {
		return nil, fmt.Errorf("%w: layer %d (%s) is %q, want %q", ErrMalformedLayer, index, layer.Name, layer.Kind, LayerObject)
	}
	for _, o := range layer.Objects {
		if o.Width <= 0 || o.Height <= 0 {
			return nil, fmt.Errorf("%w: layer %d (%s) object %d has size %vx%v", ErrMalformedLayer, index, layer.Name, o.ID, o.Width, o.Height)
		}
	}
	return layer, nil
}

// TileLayer returns the layer at index and checks its grid size.
func (l *Level) TileLayer(index int) (*Layer, error) {
	layer, err := l.Layer(index)
	if err != nil {
		return nil, err
	}
	if layer.Kind != LayerTile {
		return nil, fmt.Errorf("%w: layer %d (%s) is %q, want %q", ErrMalformedLayer, index, layer.Name, layer.Kind, LayerTile)
	}
	if len(layer.Data) != l.Width*l.Height {
		return nil, fmt.Errorf("%w: layer %d (%s) has %d tiles, want %d", ErrMalformedLayer, index, layer.Name, len(layer.Data), l.Width*l.Height)
	}
	return layer, nil
}

// Tileset returns the named tileset.
func (l *Level) Tileset(name string) (*Tileset, bool) {
	for i := range l.Tilesets {
		if l.Tilesets[i].Name == name {
			return &l.Tilesets[i], true
		}
	}
	return nil, false
}

// Validate checks the map header and every tile layer's grid size.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: invalid size %dx%d", l.Width, l.Height)
	}
	if l.TileWidth <= 0 || l.TileHeight <= 0 {
		return fmt.Errorf("levels: invalid tile size %dx%d", l.TileWidth, l.TileHeight)
	}
	for i, layer := range l.Layers {
		switch layer.Kind {
		case LayerTile:
			if _, err := l.TileLayer(i); err != nil {
				return err
			}
		case LayerObject:
		default:
			return fmt.Errorf("%w: layer %d (%s) has unknown type %q", ErrMalformedLayer, i, layer.Name, layer.Kind)
		}
	}
	return nil
}
