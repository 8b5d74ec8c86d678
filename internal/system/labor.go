package system

import (
	"github.com/glavblock/glavblock/internal/component"
	"github.com/glavblock/glavblock/internal/core/ecs"
	coresys "github.com/glavblock/glavblock/internal/core/system"
	"github.com/glavblock/glavblock/internal/world"
	"go.uber.org/zap"
)

// LaborSystem rebuilds the build-power pool from the living population.
// Unspent labor never carries over. Phase 0 (Labor).
type LaborSystem struct {
	world *world.State
	log   *zap.Logger
}

func NewLaborSystem(ws *world.State, log *zap.Logger) *LaborSystem {
	return &LaborSystem{world: ws, log: log}
}

func (s *LaborSystem) Phase() coresys.Phase { return coresys.PhaseLabor }

func (s *LaborSystem) Update(t *Turn) {
	t.Pool.Reset()
	catalog := s.world.Catalog()
	s.world.Colonists.Each(func(_ ecs.EntityID, c *component.Colonist) {
		t.Pool.Add(c.Profession, c.Tier, catalog.ComradeBuildPower(c.Tier))
	})
	s.log.Debug("labor pool rebuilt", zap.Int("turn", t.Number), zap.Int("bp", int(t.Pool.Total())))
}
