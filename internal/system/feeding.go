package system

import (
	"github.com/glavblock/glavblock/internal/config"
	"github.com/glavblock/glavblock/internal/core/event"
	coresys "github.com/glavblock/glavblock/internal/core/system"
	"github.com/glavblock/glavblock/internal/data"
	"github.com/glavblock/glavblock/internal/world"
	"go.uber.org/zap"
)

// Food is the resource colonists eat.
const Food = data.Concentrate

// FeedingSystem hands out concentrate, one meal per colonist in entity
// order, then withdraws what was eaten. Phase 3 (Feeding).
type FeedingSystem struct {
	world *world.State
	rules config.RulesConfig
	bus   *event.Bus
	log   *zap.Logger
}

func NewFeedingSystem(ws *world.State, rules config.RulesConfig, bus *event.Bus, log *zap.Logger) *FeedingSystem {
	return &FeedingSystem{world: ws, rules: rules, bus: bus, log: log}
}

func (s *FeedingSystem) Phase() coresys.Phase { return coresys.PhaseFeeding }

func (s *FeedingSystem) Update(t *Turn) {
	meal := data.RealUnits(s.rules.FoodPerColonist)
	stock := s.world.TotalOf(Food)
	var eaten data.RealUnits

	for _, id := range s.world.ColonistIDs() {
		sat := s.world.Satiety.MustGet(id)
		mood := s.world.Mood.MustGet(id)
		if stock >= meal {
			stock -= meal
			eaten += meal
			mood.Value = min(s.rules.MaxMood, mood.Value+s.rules.FeedMood)
			sat.Value = min(s.rules.MaxSatiety, sat.Value+s.rules.FeedSatiety)
			t.Fed++
			continue
		}
		mood.Value = max(s.rules.MinMood, mood.Value-s.rules.UnfedPenalty)
		t.Unfed++
	}

	if short := s.world.Withdraw(Food, eaten); short > 0 {
		s.log.Warn("food withdrawal came up short",
			zap.Int("turn", t.Number),
			zap.Int("eaten", int(eaten)),
			zap.Int("short", int(short)),
		)
	}
	t.Eaten = eaten

	if t.Unfed > 0 {
		event.Emit(s.bus, event.FoodShortage{Turn: t.Number, Unfed: t.Unfed})
		s.log.Warn("food shortage", zap.Int("turn", t.Number), zap.Int("unfed", t.Unfed))
	}
	s.log.Debug("colony fed", zap.Int("turn", t.Number), zap.Int("fed", t.Fed), zap.Int("eaten", int(eaten)))
}
