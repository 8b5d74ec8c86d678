package system

import (
	"github.com/glavblock/glavblock/internal/config"
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/core/event"
	coresys "github.com/glavblock/glavblock/internal/core/system"
	"github.com/glavblock/glavblock/internal/world"
	"go.uber.org/zap"
)

// HungerSystem decays satiety and removes the starved. Phase 2 (Hunger).
//
// The discomfort check looks at satiety as it was when the turn began, so a
// fully fed colonist loses no mood on the turn it first gets hungry. The
// starvation check looks at satiety after the decay.
type HungerSystem struct {
	world *world.State
	rules config.RulesConfig
	bus   *event.Bus
	log   *zap.Logger
}

func NewHungerSystem(ws *world.State, rules config.RulesConfig, bus *event.Bus, log *zap.Logger) *HungerSystem {
	return &HungerSystem{world: ws, rules: rules, bus: bus, log: log}
}

func (s *HungerSystem) Phase() coresys.Phase { return coresys.PhaseHunger }

func (s *HungerSystem) Update(t *Turn) {
	w := s.world.World()
	var starved []ecs.EntityID
	for _, id := range s.world.ColonistIDs() {
		sat := s.world.Satiety.MustGet(id)
		mood := s.world.Mood.MustGet(id)

		if sat.Value < s.rules.DiscomfortThreshold {
			mood.Value = max(s.rules.MinMood, mood.Value-s.rules.DiscomfortPenalty)
		}
		sat.Value = max(0, sat.Value-s.rules.HungerPerTurn)
		if sat.Value < s.rules.StarvationThreshold {
			starved = append(starved, id)
		}
	}

	for _, id := range starved {
		c := s.world.Colonists.MustGet(id)
		event.Emit(s.bus, event.ColonistStarved{
			Turn:       t.Number,
			Colonist:   id,
			Profession: c.Profession,
			Tier:       c.Tier,
		})
		s.log.Warn("colonist starved",
			zap.Int("turn", t.Number),
			zap.Uint32("colonist", id.Index()),
			zap.String("cohort", c.Profession.String()+"/"+c.Tier.String()),
		)
		w.MarkForDestruction(id)
	}
	// the dead must not eat in the feeding phase
	w.FlushDestroyQueue()
}
