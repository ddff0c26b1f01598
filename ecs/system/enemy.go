package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/common"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/ecs/entity"
	"github.com/milk9111/mariobros/prefabs"
)

// ActivationDistance is how far ahead of the player, in meters, an enemy's
// body joins the simulation.
const ActivationDistance = 224 / common.PPM

const enemyBrainDispatch = `
__out = brain(__enemy, __tuning)
`

type enemyBrain struct {
	script   string
	compiled *tengo.Compiled
}

// EnemySystem wakes enemies as the player approaches, runs their brain
// scripts and applies the result between physics steps.
type EnemySystem struct {
	space  *cp.Space
	logger *log.Logger
	brains map[string]*enemyBrain
}

func NewEnemySystem(space *cp.Space, logger *log.Logger) *EnemySystem {
	if logger == nil {
		logger = log.Default()
	}
	return &EnemySystem{space: space, logger: logger, brains: map[string]*enemyBrain{}}
}

// Reload drops every compiled brain so scripts are read again on next use.
func (s *EnemySystem) Reload() {
	s.brains = map[string]*enemyBrain{}
}

func (s *EnemySystem) Update(w *ecs.World) {
	playerX, hasPlayer := playerPosition(w)

	entities := ecs.Query(w, component.EnemyComponent.Kind(), component.PhysicsBodyComponent.Kind())
	for _, e := range entities {
		en, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if pb.Body == nil {
			continue
		}

		if !pb.Active && !en.Destroyed && hasPlayer && ShouldActivate(pb.Body.Position().X, playerX) {
			entity.Activate(s.space, pb)
			s.logger.Debug("enemy activated", "enemy", en.Kind, "x", pb.Body.Position().X)
		}
		if !pb.Active && !en.Destroyed {
			continue
		}

		if en.SetToDestroy && !en.Destroyed {
			s.destroy(w, e, en, pb)
		}

		en.StateTime += common.TimeStep
		out, err := s.think(en)
		if err != nil {
			panic(fmt.Sprintf("enemy system: %s brain: %v", en.Kind, err))
		}
		s.apply(w, e, en, pb, out)
	}
}

// ShouldActivate reports whether an enemy at enemyX is close enough to a
// player at playerX to start simulating.
func ShouldActivate(enemyX, playerX float64) bool {
	return enemyX < playerX+ActivationDistance
}

func (s *EnemySystem) destroy(w *ecs.World, e ecs.Entity, en *component.Enemy, pb *component.PhysicsBody) {
	entity.Deactivate(s.space, pb)
	en.Destroyed = true
	en.VelocityX, en.VelocityY = 0, 0
	en.SetState(component.EnemyStomped)
	en.StateTime = 0
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Play("squished")
	}
}

type brainOutput struct {
	vx, vy  float64
	state   component.EnemyState
	visible bool
	remove  bool
}

func (s *EnemySystem) think(en *component.Enemy) (brainOutput, error) {
	brain, err := s.brain(en.Script)
	if err != nil {
		return brainOutput{}, err
	}

	tuning := make(map[string]interface{}, len(en.Tuning))
	for k, v := range en.Tuning {
		tuning[k] = v
	}
	if err := brain.compiled.Set("__enemy", map[string]interface{}{
		"kind":       en.Kind.String(),
		"state":      string(en.State),
		"state_time": en.StateTime,
		"vx":         en.VelocityX,
		"vy":         en.VelocityY,
	}); err != nil {
		return brainOutput{}, err
	}
	if err := brain.compiled.Set("__tuning", tuning); err != nil {
		return brainOutput{}, err
	}
	if err := brain.compiled.Run(); err != nil {
		return brainOutput{}, err
	}

	raw := brain.compiled.Get("__out").Map()
	out := brainOutput{
		vx:      floatValue(raw["vx"], en.VelocityX),
		vy:      floatValue(raw["vy"], en.VelocityY),
		state:   en.State,
		visible: true,
	}
	if st, ok := raw["state"].(string); ok && st != "" {
		out.state = component.EnemyState(st)
	}
	if v, ok := raw["visible"].(bool); ok {
		out.visible = v
	}
	if v, ok := raw["remove"].(bool); ok {
		out.remove = v
	}
	return out, nil
}

func (s *EnemySystem) brain(script string) (*enemyBrain, error) {
	if b, ok := s.brains[script]; ok {
		return b, nil
	}

	src, err := prefabs.LoadScript(script)
	if err != nil {
		return nil, err
	}
	sc := tengo.NewScript([]byte(string(src) + "\n" + enemyBrainDispatch))
	_ = sc.Add("__enemy", map[string]interface{}{})
	_ = sc.Add("__tuning", map[string]interface{}{})
	_ = sc.Add("__out", map[string]interface{}{})
	sc.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := sc.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", script, err)
	}
	b := &enemyBrain{script: script, compiled: compiled}
	s.brains[script] = b
	return b, nil
}

func (s *EnemySystem) apply(w *ecs.World, e ecs.Entity, en *component.Enemy, pb *component.PhysicsBody, out brainOutput) {
	if out.remove {
		entity.Deactivate(s.space, pb)
		ecs.DestroyEntity(w, e)
		return
	}

	en.VelocityX, en.VelocityY = out.vx, out.vy
	en.SetState(out.state)

	switch en.State {
	case component.EnemyWalking, component.EnemyStandingShell, component.EnemyMovingShell:
		if pb.Active {
			pb.Body.SetVelocity(en.VelocityX, en.VelocityY)
		}
	}

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = !out.visible
		if en.VelocityX > 0 {
			sprite.FacingLeft = false
		} else if en.VelocityX < 0 {
			sprite.FacingLeft = true
		}
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Play(enemyAnimation(en))
	}
}

func enemyAnimation(en *component.Enemy) string {
	switch en.State {
	case component.EnemyStomped:
		return "squished"
	case component.EnemyStandingShell, component.EnemyMovingShell, component.EnemyDead:
		return "shell"
	}
	return "walk"
}

func floatValue(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return fallback
}

func playerPosition(w *ecs.World) (float64, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0, false
	}
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return 0, false
	}
	return pb.Body.Position().X, true
}
