package colony

import (
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
	"github.com/glavblock/glavblock/internal/world"
)

// Population counts colonists by profession and tier.
func (c *Colony) Population() map[data.Cohort]int { return c.state.Population() }

// Mood is the summed mood of every colonist.
func (c *Colony) Mood() int { return c.state.TotalMood() }

// Satiety is the summed satiety of every colonist.
func (c *Colony) Satiety() int { return c.state.TotalSatiety() }

func (c *Colony) Resources() map[data.Resource]data.RealUnits { return c.state.Snapshot() }

func (c *Colony) Rooms() []world.RoomSpace { return c.state.RoomsWithSpace() }

func (c *Colony) RoomDetails() map[ecs.EntityID]world.RoomUsage { return c.state.AllRoomsWithSpace() }

func (c *Colony) RoomContents(room ecs.EntityID) world.RoomContents {
	return c.state.RoomContents(room)
}

// Buildable returns the room kind would go into, or a *world.Shortfall.
func (c *Colony) Buildable(kind data.Stationary) (ecs.EntityID, error) {
	return c.state.CanBuild(kind)
}

// BuildOption is the buildability of one stationary kind.
type BuildOption struct {
	Kind data.Stationary
	Room ecs.EntityID // zero unless Err is nil
	Err  error
}

// BuildOptions checks every stationary kind.
func (c *Colony) BuildOptions() []BuildOption {
	kinds := data.Stationaries()
	out := make([]BuildOption, 0, len(kinds))
	for _, kind := range kinds {
		room, err := c.state.CanBuild(kind)
		out = append(out, BuildOption{Kind: kind, Room: room, Err: err})
	}
	return out
}

func (c *Colony) InProgress() []world.TaskInfo { return c.state.InProgress() }
