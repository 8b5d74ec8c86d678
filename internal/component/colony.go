package component

import (
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
)

// Components are pure data with zero methods; all mutations happen in world
// and system functions.

// Room is a space with a purpose and a total area (AreaType + AreaCapacity).
type Room struct {
	Type     data.AreaType
	Capacity data.Area
}

// Germ marks room infrastructure of a tier.
type Germ struct {
	Tier data.Tier
}

// TaskStatus is carried by rooms, germs and stationaries.
type TaskStatus struct {
	Status data.TaskStatus
}

type TaskPriority struct {
	Priority data.Priority
}

// Obligation is labor still owed to a task by one (profession, tier,
// equipment) triple.
type Obligation struct {
	Profession data.Profession
	Tier       data.Tier
	Equipment  data.Stationary
	Remaining  data.BuildPower
}

// TaskProgress exists only while a task is Constructing.
type TaskProgress struct {
	Required        data.BuildPower
	Invested        data.BuildPower
	WhoShouldFinish []Obligation
}

// BelongsToRoom ties an occupant to exactly one room.
type BelongsToRoom struct {
	Room ecs.EntityID
}

type AreaOccupied struct {
	Area data.Area
}

type Colonist struct {
	Profession data.Profession
	Tier       data.Tier
}

// Satiety: ~200 well fed, below 100 hungry, 0 dead. One day costs 10.
type Satiety struct {
	Value int
}

// Mood: 10 happy, 5-6 neutral, 0 miserable.
type Mood struct {
	Value int
}

// Container is one stock record of a resource.
type Container struct {
	Resource data.Resource
}

type Stationary struct {
	Kind data.Stationary
}
