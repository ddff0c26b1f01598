package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PointSpec is a position in pixels with y pointing up.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CollisionSpec struct {
	Category uint `yaml:"category"`
	Mask     uint `yaml:"mask"`
}

// BodyShapeSpec is a stack of circles; offsets are pixel y offsets from the
// body origin.
type BodyShapeSpec struct {
	Radius  float64   `yaml:"radius"`
	Offsets []float64 `yaml:"offsets"`
	Shift   float64   `yaml:"shift"`
	OriginY float64   `yaml:"origin_y"`
}

type HeadSpec struct {
	HalfWidth float64 `yaml:"half_width"`
	Offset    float64 `yaml:"offset"`
	Category  uint    `yaml:"category"`
}

type PlayerSpec struct {
	Name               string          `yaml:"name"`
	Spawn              PointSpec       `yaml:"spawn"`
	Mass               float64         `yaml:"mass"`
	Friction           float64         `yaml:"friction"`
	MoveImpulse        float64         `yaml:"move_impulse"`
	MaxSpeed           float64         `yaml:"max_speed"`
	JumpImpulse        float64         `yaml:"jump_impulse"`
	DeathImpulse       float64         `yaml:"death_impulse"`
	GrowSeconds        float64         `yaml:"grow_seconds"`
	InvulnerableFrames int             `yaml:"invulnerable_frames"`
	Small              BodyShapeSpec   `yaml:"small"`
	Big                BodyShapeSpec   `yaml:"big"`
	Head               HeadSpec        `yaml:"head"`
	Collision          CollisionSpec   `yaml:"collision"`
	Sprite             SpriteSpec      `yaml:"sprite"`
	Animation          AnimationSpec   `yaml:"animation"`
	RenderLayer        RenderLayerSpec `yaml:"render_layer"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// EnemyHeadSpec is the stomp fixture: a polygon in pixels relative to the
// body origin, y up.
type EnemyHeadSpec struct {
	Category uint        `yaml:"category"`
	Vertices [][]float64 `yaml:"vertices"`
}

type EnemySpec struct {
	Name        string             `yaml:"name"`
	Script      string             `yaml:"script"`
	Radius      float64            `yaml:"radius"`
	Mass        float64            `yaml:"mass"`
	Friction    float64            `yaml:"friction"`
	Velocity    PointSpec          `yaml:"velocity"`
	KickSpeed   float64            `yaml:"kick_speed"`
	StompScore  int                `yaml:"stomp_score"`
	StompBounce float64            `yaml:"stomp_bounce"`
	DeadImpulse float64            `yaml:"dead_impulse"`
	Tuning      map[string]float64 `yaml:"tuning"`
	Collision   CollisionSpec      `yaml:"collision"`
	Head        EnemyHeadSpec      `yaml:"head"`
	Sprite      SpriteSpec         `yaml:"sprite"`
	Animation   AnimationSpec      `yaml:"animation"`
	RenderLayer RenderLayerSpec    `yaml:"render_layer"`
}

func LoadEnemySpec(name string) (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec](name + ".yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ItemSpec struct {
	Name        string          `yaml:"name"`
	Radius      float64         `yaml:"radius"`
	Mass        float64         `yaml:"mass"`
	Friction    float64         `yaml:"friction"`
	Speed       float64         `yaml:"speed"`
	Collision   CollisionSpec   `yaml:"collision"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

func LoadItemSpec(name string) (*ItemSpec, error) {
	spec, err := LoadSpec[ItemSpec](name + ".yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TileSpec struct {
	Category uint    `yaml:"category"`
	Mask     uint    `yaml:"mask"`
	Friction float64 `yaml:"friction"`
}

type TilesSpec struct {
	Tileset       string   `yaml:"tileset"`
	CoinScore     int      `yaml:"coin_score"`
	BrickScore    int      `yaml:"brick_score"`
	BlankCoinTile int      `yaml:"blank_coin_tile"`
	ItemOffset    float64  `yaml:"item_offset"`
	Ground        TileSpec `yaml:"ground"`
	Pipe          TileSpec `yaml:"pipe"`
	Coin          TileSpec `yaml:"coin"`
	Brick         TileSpec `yaml:"brick"`
}

func LoadTilesSpec() (*TilesSpec, error) {
	spec, err := LoadSpec[TilesSpec]("tiles.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type HUDSpec struct {
	WorldTimer int        `yaml:"world_timer"`
	Level      string     `yaml:"level"`
	Labels     []string   `yaml:"labels"`
	TextColor  *YAMLColor `yaml:"text_color"`
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	ColumnGap  float64    `yaml:"column_gap"`
}

func LoadHUDSpec() (*HUDSpec, error) {
	spec, err := LoadSpec[HUDSpec]("hud.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name       string     `yaml:"name"`
	Target     string     `yaml:"target"`
	Zoom       float64    `yaml:"zoom"`
	Clamp      bool       `yaml:"clamp"`
	ClearColor *YAMLColor `yaml:"clear_color"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
}

type MusicSpec struct {
	Track  string  `yaml:"track"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

type SoundBoardSpec struct {
	Clips []AudioSpec `yaml:"clips"`
	Music MusicSpec   `yaml:"music"`
}

func LoadSoundBoardSpec() (*SoundBoardSpec, error) {
	spec, err := LoadSpec[SoundBoardSpec]("audio.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type SpriteSpec struct {
	Image   string  `yaml:"image"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

type AnimationSpec struct {
	Sheet   string                      `yaml:"sheet"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
	Current string                      `yaml:"current"`
}

type AnimationDefSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the color, or fallback when unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
