// Package colony is the simulation core as the console sees it: bootstrap,
// queries between turns, and the two commands that change the world.
package colony

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/glavblock/glavblock/internal/config"
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/core/event"
	coresys "github.com/glavblock/glavblock/internal/core/system"
	"github.com/glavblock/glavblock/internal/data"
	"github.com/glavblock/glavblock/internal/system"
	"github.com/glavblock/glavblock/internal/world"
)

// Colony owns one simulated block. Not safe for concurrent use: every call
// must come from the goroutine that advances turns.
type Colony struct {
	name   string
	state  *world.State
	rules  config.RulesConfig
	bus    *event.Bus
	runner *coresys.Runner[*system.Turn]
	log    *zap.Logger

	turn    int
	pending TurnReport // filled by event handlers during AdvanceTurn
}

// New builds an empty colony. Call Bootstrap to populate it.
func New(name string, catalog *data.Catalog, rules config.RulesConfig, log *zap.Logger) *Colony {
	state := world.NewState(catalog, world.Settings{
		ColonistArea: data.Area(rules.ColonistArea),
		StartSatiety: rules.StartSatiety,
		StartMood:    rules.StartMood,
	})
	bus := event.NewBus()
	c := &Colony{
		name:   name,
		state:  state,
		rules:  rules,
		bus:    bus,
		runner: system.NewTurnRunner(state, rules, bus, log),
		log:    log,
	}

	event.Subscribe(bus, func(e event.TaskCompleted) {
		c.pending.Completed = append(c.pending.Completed, e)
	})
	event.Subscribe(bus, func(e event.BuildStarted) {
		c.pending.Started = append(c.pending.Started, e)
	})
	event.Subscribe(bus, func(e event.ColonistStarved) {
		c.pending.Starved = append(c.pending.Starved, e)
	})
	return c
}

// Scenario seeds a fresh colony with rooms, people and stock.
type Scenario func(s *world.State) error

// Bootstrap runs the starting scenario and checks the result.
func (c *Colony) Bootstrap(seed Scenario) error {
	if err := seed(c.state); err != nil {
		return fmt.Errorf("bootstrap %s: %w", c.name, err)
	}
	if err := c.state.CheckCapacity(); err != nil {
		return fmt.Errorf("bootstrap %s: %w", c.name, err)
	}
	c.log.Info("colony founded",
		zap.String("colony", c.name),
		zap.Int("rooms", len(c.state.RoomsWithSpace())),
		zap.Int("population", c.state.Headcount()),
		zap.String("digest", c.Digest()),
	)
	return nil
}

// AdvanceTurn runs one full turn and reports what happened.
func (c *Colony) AdvanceTurn() TurnReport {
	c.turn++
	c.pending = TurnReport{Turn: c.turn}

	t := &system.Turn{Number: c.turn}
	c.runner.Tick(t)

	r := c.pending
	c.pending = TurnReport{}
	r.Fed = t.Fed
	r.Unfed = t.Unfed
	r.Eaten = t.Eaten
	r.Invested = t.Invested
	r.Population = c.state.Headcount()
	r.Mood = c.state.TotalMood()
	r.Satiety = c.state.TotalSatiety()
	r.Resources = c.state.Snapshot()
	r.Digest = c.Digest()

	c.log.Info("turn advanced",
		zap.Int("turn", r.Turn),
		zap.Int("population", r.Population),
		zap.Int("mood", r.Mood),
		zap.Int("completed", len(r.Completed)),
		zap.Int("starved", len(r.Starved)),
		zap.Int("unfed", r.Unfed),
	)
	return r
}

// StartBuild places a stationary in a chosen room and withdraws its cost.
func (c *Colony) StartBuild(kind data.Stationary, room ecs.EntityID, priority data.Priority) (ecs.EntityID, error) {
	id, err := c.state.StartBuild(kind, room, priority)
	if err != nil {
		return 0, err
	}
	event.Emit(c.bus, event.BuildStarted{Turn: c.turn, Task: id, Kind: kind, Room: room})
	c.log.Info("construction started",
		zap.String("kind", kind.String()),
		zap.Uint32("room", room.Index()),
		zap.Int("priority", int(priority)),
	)
	return id, nil
}

// Build checks kind and starts it in the room CanBuild picked.
func (c *Colony) Build(kind data.Stationary, priority data.Priority) (ecs.EntityID, error) {
	room, err := c.state.CanBuild(kind)
	if err != nil {
		return 0, err
	}
	return c.StartBuild(kind, room, priority)
}

// State exposes the underlying world for tools and tests.
func (c *Colony) State() *world.State { return c.state }

func (c *Colony) Name() string { return c.name }
func (c *Colony) Turn() int    { return c.turn }
