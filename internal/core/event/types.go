package event

import (
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
)

// TaskCompleted fires when a room or stationary finishes construction.
type TaskCompleted struct {
	Turn  int
	Task  ecs.EntityID
	Label string
}

// ColonistStarved fires when a colonist dies of hunger.
type ColonistStarved struct {
	Turn       int
	Colonist   ecs.EntityID
	Profession data.Profession
	Tier       data.Tier
}

// FoodShortage fires when stock could not feed everyone.
type FoodShortage struct {
	Turn  int
	Unfed int
}

// BuildStarted fires when materials are withdrawn for a new stationary.
type BuildStarted struct {
	Turn int
	Task ecs.EntityID
	Kind data.Stationary
	Room ecs.EntityID
}
