package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mariobros/ecs"
	"github.com/milk9111/mariobros/ecs/component"
	"github.com/milk9111/mariobros/ecs/entity"
	"gopkg.in/eapache/queue.v1"
)

// ItemQueue is a FIFO of item definitions waiting to be built. Contact
// callbacks push during the physics step and the spawn system pops between
// steps, all on the game goroutine, so it carries no lock.
type ItemQueue struct {
	q *queue.Queue
}

func NewItemQueue() *ItemQueue {
	return &ItemQueue{q: queue.New()}
}

// SpawnItem enqueues def.
func (iq *ItemQueue) SpawnItem(def component.ItemDef) {
	iq.q.Add(def)
}

// Pop removes and returns the oldest definition.
func (iq *ItemQueue) Pop() (component.ItemDef, bool) {
	if iq.q.Length() == 0 {
		return component.ItemDef{}, false
	}
	return iq.q.Remove().(component.ItemDef), true
}

// Peek returns the oldest definition without removing it.
func (iq *ItemQueue) Peek() (component.ItemDef, bool) {
	if iq.q.Length() == 0 {
		return component.ItemDef{}, false
	}
	return iq.q.Peek().(component.ItemDef), true
}

func (iq *ItemQueue) Len() int {
	return iq.q.Length()
}

// ItemSpawnSystem builds at most one queued item per tick.
type ItemSpawnSystem struct {
	queue  *ItemQueue
	space  *cp.Space
	logger *log.Logger
}

func NewItemSpawnSystem(q *ItemQueue, space *cp.Space, logger *log.Logger) *ItemSpawnSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &ItemSpawnSystem{queue: q, space: space, logger: logger}
}

func (s *ItemSpawnSystem) Update(w *ecs.World) {
	def, ok := s.queue.Pop()
	if !ok {
		return
	}
	if _, err := entity.NewItem(w, s.space, def); err != nil {
		panic(fmt.Sprintf("item spawn: build %s: %v", def.Kind, err))
	}
	s.logger.Debug("item spawned", "kind", def.Kind, "x", def.X, "y", def.Y)
}

// ItemSystem moves live items and removes used or fallen ones.
type ItemSystem struct {
	space *cp.Space
}

func NewItemSystem(space *cp.Space) *ItemSystem {
	return &ItemSystem{space: space}
}

func (s *ItemSystem) Update(w *ecs.World) {
	entities := ecs.Query(w, component.ItemComponent.Kind(), component.PhysicsBodyComponent.Kind())
	for _, e := range entities {
		it, _ := ecs.Get(w, e, component.ItemComponent.Kind())
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if pb.Body == nil {
			continue
		}
		if it.ToDestroy || pb.Body.Position().Y < 0 {
			entity.Deactivate(s.space, pb)
			it.Destroyed = true
			ecs.DestroyEntity(w, e)
			continue
		}
		v := pb.Body.Velocity()
		pb.Body.SetVelocity(it.VelocityX, v.Y)
	}
}
