package system

import (
	"github.com/glavblock/glavblock/internal/config"
	"github.com/glavblock/glavblock/internal/core/event"
	coresys "github.com/glavblock/glavblock/internal/core/system"
	"github.com/glavblock/glavblock/internal/world"
	"go.uber.org/zap"
)

// NewTurnRunner registers every turn system in its phase.
func NewTurnRunner(ws *world.State, rules config.RulesConfig, bus *event.Bus, log *zap.Logger) *coresys.Runner[*Turn] {
	runner := coresys.NewRunner[*Turn]()
	runner.Register(NewLaborSystem(ws, log))
	runner.Register(NewTaskSystem(ws, bus, log))
	runner.Register(NewHungerSystem(ws, rules, bus, log))
	runner.Register(NewFeedingSystem(ws, rules, bus, log))
	runner.Register(NewEventDispatchSystem(bus, log))
	runner.Register(NewCleanupSystem(ws.World()))
	return runner
}
