package world

import (
	"errors"
	"sort"

	"github.com/glavblock/glavblock/internal/component"
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
)

var (
	// ErrNotEnoughArea: the room lacks free space for the request.
	ErrNotEnoughArea = errors.New("not enough area")
	// ErrNotEnoughResources: stock does not cover a bunch withdrawal.
	ErrNotEnoughResources = errors.New("not enough resources")
	// ErrNoEmptyArea: no room of the wanted type has space at all.
	ErrNoEmptyArea = errors.New("no empty area")
	// ErrNotBuildable: the stationary kind cannot be constructed.
	ErrNotBuildable = errors.New("not buildable")
)

// Settings are the colonist constants the ledgers need.
type Settings struct {
	ColonistArea data.Area // area one colonist rents in a room
	StartSatiety int
	StartMood    int
}

func DefaultSettings() Settings {
	return Settings{
		ColonistArea: 1000,
		StartSatiety: 100,
		StartMood:    5,
	}
}

// State holds the colony's ECS world: rooms, colonists, stock containers,
// stationaries and construction tasks.
// Accessed only from the simulation goroutine; it holds no locks.
type State struct {
	ecs      *ecs.World
	catalog  *data.Catalog
	settings Settings

	Rooms        *ecs.Store[component.Room]
	Germs        *ecs.Store[component.Germ]
	Statuses     *ecs.Store[component.TaskStatus]
	Priorities   *ecs.Store[component.TaskPriority]
	Progress     *ecs.Store[component.TaskProgress]
	Belongs      *ecs.Store[component.BelongsToRoom]
	Occupied     *ecs.Store[component.AreaOccupied]
	Colonists    *ecs.Store[component.Colonist]
	Satiety      *ecs.Store[component.Satiety]
	Mood         *ecs.Store[component.Mood]
	Containers   *ecs.Store[component.Container]
	Stationaries *ecs.Store[component.Stationary]
}

func NewState(catalog *data.Catalog, settings Settings) *State {
	w := ecs.NewWorld()
	return &State{
		ecs:      w,
		catalog:  catalog,
		settings: settings,

		Rooms:        ecs.NewRegisteredStore[component.Room](w),
		Germs:        ecs.NewRegisteredStore[component.Germ](w),
		Statuses:     ecs.NewRegisteredStore[component.TaskStatus](w),
		Priorities:   ecs.NewRegisteredStore[component.TaskPriority](w),
		Progress:     ecs.NewRegisteredStore[component.TaskProgress](w),
		Belongs:      ecs.NewRegisteredStore[component.BelongsToRoom](w),
		Occupied:     ecs.NewRegisteredStore[component.AreaOccupied](w),
		Colonists:    ecs.NewRegisteredStore[component.Colonist](w),
		Satiety:      ecs.NewRegisteredStore[component.Satiety](w),
		Mood:         ecs.NewRegisteredStore[component.Mood](w),
		Containers:   ecs.NewRegisteredStore[component.Container](w),
		Stationaries: ecs.NewRegisteredStore[component.Stationary](w),
	}
}

func (s *State) World() *ecs.World      { return s.ecs }
func (s *State) Catalog() *data.Catalog { return s.catalog }
func (s *State) Settings() Settings     { return s.settings }

// IsReady reports whether id carries a Ready task status.
func (s *State) IsReady(id ecs.EntityID) bool {
	st, ok := s.Statuses.Get(id)
	return ok && st.Status == data.Ready
}

func sortIDs(ids []ecs.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}
