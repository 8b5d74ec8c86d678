package system

import (
	"github.com/glavblock/glavblock/internal/core/ecs"
	coresys "github.com/glavblock/glavblock/internal/core/system"
)

// CleanupSystem flushes the deferred entity destruction queue at turn end.
// Phase 5 (Cleanup).
type CleanupSystem struct {
	world *ecs.World
}

func NewCleanupSystem(world *ecs.World) *CleanupSystem {
	return &CleanupSystem{world: world}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ *Turn) {
	s.world.FlushDestroyQueue()
}
