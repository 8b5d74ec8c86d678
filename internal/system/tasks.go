package system

import (
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/core/event"
	coresys "github.com/glavblock/glavblock/internal/core/system"
	"github.com/glavblock/glavblock/internal/data"
	"github.com/glavblock/glavblock/internal/world"
	"go.uber.org/zap"
)

// TaskSystem spends the labor pool on construction tasks. Phase 1 (Tasks).
//
// Equipment capacity and the pool are shared by every task this turn, so
// tasks earlier in TaskOrder win under contention. Each obligation is retired
// only by labor of its exact (profession, tier, equipment) triple.
type TaskSystem struct {
	world *world.State
	bus   *event.Bus
	log   *zap.Logger
}

func NewTaskSystem(ws *world.State, bus *event.Bus, log *zap.Logger) *TaskSystem {
	return &TaskSystem{world: ws, bus: bus, log: log}
}

func (s *TaskSystem) Phase() coresys.Phase { return coresys.PhaseTasks }

func (s *TaskSystem) Update(t *Turn) {
	ec := s.world.EquipmentCapacity()
	for _, id := range s.world.TaskOrder() {
		s.advance(t, ec, id)
	}
}

func (s *TaskSystem) advance(t *Turn, ec *world.EquipmentCapacity, id ecs.EntityID) {
	p := s.world.Progress.MustGet(id)
	for i := range p.WhoShouldFinish {
		ob := &p.WhoShouldFinish[i]
		if ob.Remaining <= 0 {
			continue
		}
		w := data.MinBP(t.Pool.Available(ob.Profession, ob.Tier), ob.Remaining)
		w = ec.Clamp(ob.Equipment, w)
		if w <= 0 {
			continue
		}
		ec.Take(ob.Equipment, w)
		t.Pool.Take(ob.Profession, ob.Tier, w)
		ob.Remaining -= w
		p.Invested += w
		t.Invested += w
	}
	if p.Invested < p.Required {
		return
	}

	label := s.world.TaskInfo(id).Label()
	s.world.CompleteTask(id)
	event.Emit(s.bus, event.TaskCompleted{Turn: t.Number, Task: id, Label: label})
	s.log.Info("construction complete",
		zap.Int("turn", t.Number),
		zap.Uint32("task", id.Index()),
		zap.String("what", label),
	)
}
