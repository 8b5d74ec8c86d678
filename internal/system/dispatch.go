package system

import (
	"github.com/glavblock/glavblock/internal/core/event"
	coresys "github.com/glavblock/glavblock/internal/core/system"
	"go.uber.org/zap"
)

// EventDispatchSystem delivers the events emitted this turn. Phase 4 (Report).
type EventDispatchSystem struct {
	bus *event.Bus
	log *zap.Logger
}

func NewEventDispatchSystem(bus *event.Bus, log *zap.Logger) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus, log: log}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhaseReport }

func (s *EventDispatchSystem) Update(t *Turn) {
	s.bus.SwapBuffers()
	if n := s.bus.DispatchAll(); n > 0 {
		s.log.Debug("events dispatched", zap.Int("turn", t.Number), zap.Int("count", n))
	}
}
