package screen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/ecs/entity"
	"github.com/milk9111/mariobros/ecs/system"
	"github.com/milk9111/mariobros/levels"
	"github.com/milk9111/mariobros/prefabs"
)

// ScoreSaver stores the final score of a game and reports the best one.
type ScoreSaver interface {
	SaveScore(ctx context.Context, level string, score int) (int64, error)
	HighScore(ctx context.Context, level string) (int, error)
}

type playOptions struct {
	level    string
	headless bool
	watch    bool
	logger   *log.Logger
	scores   ScoreSaver
}

type Option func(*playOptions)

// WithLevel selects the level by basename.
func WithLevel(name string) Option {
	return func(o *playOptions) { o.level = name }
}

// WithHeadless skips input, animation, sound and drawing. The world still
// simulates normally.
func WithHeadless() Option {
	return func(o *playOptions) { o.headless = true }
}

// WithWatch reloads prefab specs and enemy scripts when they change on disk.
func WithWatch(watch bool) Option {
	return func(o *playOptions) { o.watch = watch }
}

func WithLogger(logger *log.Logger) Option {
	return func(o *playOptions) { o.logger = logger }
}

// WithScores saves the final score on game over.
func WithScores(s ScoreSaver) Option {
	return func(o *playOptions) { o.scores = s }
}

// PlayScreen runs one game of a level: it owns the world, the physics space
// and the pending item queue.
type PlayScreen struct {
	host   Host
	opts   []Option
	cfg    playOptions
	logger *log.Logger

	world   *ecs.World
	space   *cp.Space
	level   *levels.Level
	player  ecs.Entity
	creator *entity.Creator
	items   *system.ItemQueue

	input      *system.InputSystem
	controller *system.PlayerControllerSystem
	spawner    *system.ItemSpawnSystem
	physics    *system.PhysicsSystem
	players    *system.PlayerSystem
	enemies    *system.EnemySystem
	itemSys    *system.ItemSystem
	hud        *system.HUDSystem
	camera     *system.CameraSystem
	animation  *system.AnimationSystem
	audio      *system.AudioSystem
	music      *system.MusicSystem
	render     *system.RenderSystem
	reactions  *system.TileReactions

	steps        *ecs.Scheduler
	presentation *ecs.Scheduler

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI

	paused   bool
	finished bool
	disposed bool
	quit     bool
}

// NewPlayScreen loads a level and builds everything a game needs. A bad
// level or prefab aborts construction.
func NewPlayScreen(host Host, opts ...Option) (*PlayScreen, error) {
	cfg := playOptions{level: levels.DefaultLevel}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "play", ReportTimestamp: true})
	}

	lvl, err := levels.LoadLevelFromFS(cfg.level)
	if err != nil {
		return nil, fmt.Errorf("play screen: %w", err)
	}

	ps := &PlayScreen{
		host:   host,
		opts:   opts,
		cfg:    cfg,
		logger: logger,
		world:  ecs.NewWorld(),
		space:  system.NewSpace(),
		level:  lvl,
		items:  system.NewItemQueue(),
	}

	if err := ps.build(); err != nil {
		ps.space = nil
		return nil, fmt.Errorf("play screen: %w", err)
	}

	if cfg.watch {
		ps.startWatcher()
	}

	return ps, nil
}

func (ps *PlayScreen) build() error {
	creator, err := entity.LoadLevelToWorld(ps.world, ps.space, ps.level)
	if err != nil {
		return err
	}
	ps.creator = creator

	if ps.player, err = entity.NewPlayer(ps.world, ps.space); err != nil {
		return err
	}
	if _, err := entity.NewCamera(ps.world); err != nil {
		return err
	}
	if _, err := entity.NewHUD(ps.world, ps.level.Name); err != nil {
		return err
	}
	if _, err := entity.NewSoundBoard(ps.world); err != nil {
		return err
	}

	tiles, err := prefabs.LoadTilesSpec()
	if err != nil {
		return err
	}

	ps.reactions = system.NewTileReactions(ps, tiles, ps.logger.WithPrefix("tiles"))
	contacts := system.NewContactSystem(ps.reactions, ps.logger.WithPrefix("contacts"))

	ps.input = system.NewInputSystem()
	ps.controller = system.NewPlayerControllerSystem()
	ps.spawner = system.NewItemSpawnSystem(ps.items, ps.space, ps.logger.WithPrefix("items"))
	ps.physics = system.NewPhysicsSystem(ps.space, contacts)
	ps.players = system.NewPlayerSystem(ps.space, ps.logger.WithPrefix("player"))
	ps.enemies = system.NewEnemySystem(ps.space, ps.logger.WithPrefix("enemies"))
	ps.itemSys = system.NewItemSystem(ps.space)
	ps.hud = system.NewHUDSystem()
	ps.camera = system.NewCameraSystem()

	if !ps.cfg.headless {
		ps.animation = system.NewAnimationSystem(ps.logger.WithPrefix("animation"))
		ps.audio = system.NewAudioSystem(ps.logger.WithPrefix("audio"))
		ps.music = system.NewMusicSystem(ps.logger.WithPrefix("music"))
		ps.render = system.NewRenderSystem(ps.logger.WithPrefix("render"))
		ps.pauseUI = newPauseUI(ps.Resume, func() { ps.quit = true })
	}

	// Order matters: input, controller, queued item, physics, player,
	// enemies, items, HUD, camera.
	ps.steps = ecs.NewScheduler()
	if !ps.cfg.headless {
		ps.steps.Add(ps.input)
	}
	ps.steps.Add(ps.controller)
	ps.steps.Add(ps.spawner)
	ps.steps.Add(ps.physics)
	ps.steps.Add(ps.players)
	ps.steps.Add(ps.enemies)
	ps.steps.Add(ps.itemSys)
	ps.steps.Add(ps.hud)
	ps.steps.Add(ps.camera)

	ps.presentation = ecs.NewScheduler()
	if !ps.cfg.headless {
		ps.presentation.Add(ps.animation)
		ps.presentation.Add(ps.audio)
		ps.presentation.Add(ps.music)
	}

	ps.logger.Info("level loaded", "level", ps.level.Name, "goombas", len(creator.Goombas()), "turtles", len(creator.Turtles()))
	return nil
}

func (ps *PlayScreen) startWatcher() {
	dirs := prefabs.Dirs()
	if len(dirs) == 0 {
		ps.logger.Warn("watch: no prefab directories on disk")
		return
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		ps.logger.Warn("watch: start", "err", err)
		return
	}
	ps.watcher = w
	ps.logger.Info("watching prefabs", "dirs", dirs)
}

// SpawnItem queues an item to be built at the start of the next update.
func (ps *PlayScreen) SpawnItem(def component.ItemDef) {
	ps.items.SpawnItem(def)
}

func (ps *PlayScreen) World() *ecs.World { return ps.world }

func (ps *PlayScreen) Space() *cp.Space { return ps.space }

func (ps *PlayScreen) Level() *levels.Level { return ps.level }

func (ps *PlayScreen) Player() ecs.Entity { return ps.player }

func (ps *PlayScreen) Creator() *entity.Creator { return ps.creator }

func (ps *PlayScreen) Items() *system.ItemQueue { return ps.items }

// Finished reports whether the game has ended.
func (ps *PlayScreen) Finished() bool { return ps.finished }

func (ps *PlayScreen) Show() {}

func (ps *PlayScreen) Hide() { ps.Pause() }

func (ps *PlayScreen) Pause() { ps.paused = true }

func (ps *PlayScreen) Resume() { ps.paused = false }

// Paused reports whether updates are suspended.
func (ps *PlayScreen) Paused() bool { return ps.paused }

func (ps *PlayScreen) Resize(width, height int) {
	if ps.camera != nil {
		ps.camera.SetViewport(float64(width), float64(height))
	}
}

// Update advances the game by one fixed step. dt is ignored; physics always
// steps by 1/60 s.
func (ps *PlayScreen) Update(dt float64) error {
	if ps.quit {
		return ebiten.Termination
	}
	if ps.disposed || ps.finished {
		return nil
	}
	if ps.paused {
		if ps.pauseUI != nil {
			ps.pauseUI.Update()
		}
		return nil
	}

	ps.steps.Update(ps.world)
	ps.presentation.Update(ps.world)

	ps.applyReloads()

	if system.IsGameOver(ps.world) {
		ps.gameOver()
	}
	return nil
}

func (ps *PlayScreen) gameOver() {
	score := system.Score(ps.world)
	ps.finished = true
	ps.logger.Info("game over", "level", ps.level.Name, "score", score)

	best := score
	if ps.cfg.scores != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if _, err := ps.cfg.scores.SaveScore(ctx, ps.level.Name, score); err != nil {
			ps.logger.Warn("save score", "err", err)
		}
		if top, err := ps.cfg.scores.HighScore(ctx, ps.level.Name); err != nil {
			ps.logger.Warn("high score", "err", err)
		} else if top > best {
			best = top
		}
		cancel()
	}

	if ps.host != nil {
		host, opts := ps.host, ps.opts
		ps.host.SetScreen(NewGameOverScreen(host, score, best, func() (Screen, error) {
			return NewPlayScreen(host, opts...)
		}))
	}
	ps.Dispose()
}

func (ps *PlayScreen) applyReloads() {
	if ps.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-ps.watcher.Events:
			if !ok {
				ps.watcher = nil
				return
			}
			ps.reload(filepath.Base(name))
		case err, ok := <-ps.watcher.Errors:
			if !ok {
				ps.watcher = nil
				return
			}
			ps.logger.Warn("watch", "err", err)
		default:
			return
		}
	}
}

// reload applies a changed prefab file to the running game.
func (ps *PlayScreen) reload(name string) {
	if prefabs.IsScript(name) {
		ps.enemies.Reload()
		ps.logger.Info("reloaded enemy scripts", "file", name)
		return
	}

	switch name {
	case "tiles.yaml":
		tiles, err := prefabs.LoadTilesSpec()
		if err != nil {
			ps.logger.Warn("reload", "file", name, "err", err)
			return
		}
		ps.reactions.SetTiles(tiles)
	case "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			ps.logger.Warn("reload", "file", name, "err", err)
			return
		}
		if p, ok := ecs.Get(ps.world, ps.player, component.PlayerComponent.Kind()); ok {
			p.MoveImpulse = spec.MoveImpulse
			p.MaxSpeed = spec.MaxSpeed
			p.JumpImpulse = spec.JumpImpulse
			p.DeathImpulse = spec.DeathImpulse
			p.GrowSeconds = spec.GrowSeconds
			p.InvulnerableFrames = spec.InvulnerableFrames
		}
	case "goomba.yaml", "turtle.yaml":
		kind := component.EnemyGoomba
		if name == "turtle.yaml" {
			kind = component.EnemyTurtle
		}
		spec, err := prefabs.LoadEnemySpec(kind.String())
		if err != nil {
			ps.logger.Warn("reload", "file", name, "err", err)
			return
		}
		ecs.ForEach(ps.world, component.EnemyComponent.Kind(), func(_ ecs.Entity, en *component.Enemy) {
			if en.Kind != kind {
				return
			}
			en.Tuning = spec.Tuning
			en.KickSpeed = spec.KickSpeed
			en.StompScore = spec.StompScore
			en.StompBounce = spec.StompBounce
			en.DeadImpulse = spec.DeadImpulse
		})
	default:
		return
	}
	ps.logger.Info("reloaded prefab", "file", name)
}

func (ps *PlayScreen) Draw(screen *ebiten.Image) {
	if ps.disposed || ps.cfg.headless {
		return
	}
	ecs.Draw(ps.world, screen, ps.render, ps.hud)
	if ps.paused && ps.pauseUI != nil {
		ps.pauseUI.Draw(screen)
	}
}

// Dispose releases the space, sound players, tile grid and watcher. Calls
// after the first are no-ops.
func (ps *PlayScreen) Dispose() {
	if ps.disposed {
		return
	}
	ps.disposed = true

	if ps.watcher != nil {
		_ = ps.watcher.Close()
		ps.watcher = nil
	}

	system.StopAllMusic(ps.world)
	ecs.ForEach(ps.world, component.AudioComponent.Kind(), func(_ ecs.Entity, a *component.Audio) {
		for i, p := range a.Players {
			if p != nil {
				_ = p.Close()
			}
			a.Players[i] = nil
		}
	})

	for _, e := range ecs.Entities(ps.world) {
		if pb, ok := ecs.Get(ps.world, e, component.PhysicsBodyComponent.Kind()); ok {
			entity.Deactivate(ps.space, pb)
		}
		ecs.DestroyEntity(ps.world, e)
	}
	ps.space = nil
	ps.pauseUI = nil
}

// Disposed reports whether Dispose has run.
func (ps *PlayScreen) Disposed() bool { return ps.disposed }
