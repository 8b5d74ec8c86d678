package world

import (
	"github.com/glavblock/glavblock/internal/component"
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
)

// Queries that cut across colonists, stationaries and stock.

// Resident is a colonist as seen from the room it lives in.
type Resident struct {
	ID         ecs.EntityID
	Profession data.Profession
	Tier       data.Tier
	Area       data.Area
	Satiety    int
	Mood       int
}

// Installed is a stationary as seen from its room.
type Installed struct {
	ID     ecs.EntityID
	Kind   data.Stationary
	Area   data.Area
	Status data.TaskStatus
}

// RoomContents is everything that occupies one room.
type RoomContents struct {
	People    []Resident
	Equipment []Installed
	Stock     map[data.Resource]data.RealUnits
}

// RoomContents lists the people, equipment and stock in room.
func (s *State) RoomContents(room ecs.EntityID) RoomContents {
	rc := RoomContents{Stock: make(map[data.Resource]data.RealUnits)}
	var volume [data.ResourceCount]data.Area

	var ids []ecs.EntityID
	s.Belongs.Each(func(id ecs.EntityID, b *component.BelongsToRoom) {
		if b.Room == room {
			ids = append(ids, id)
		}
	})
	sortIDs(ids)

	for _, id := range ids {
		switch {
		case s.Colonists.Has(id):
			rc.People = append(rc.People, s.resident(id))
		case s.Stationaries.Has(id):
			rc.Equipment = append(rc.Equipment, s.installed(id))
		case s.Containers.Has(id):
			c := s.Containers.MustGet(id)
			volume[c.Resource] += s.Occupied.MustGet(id).Area
		}
	}
	for _, r := range data.Resources() {
		if units := s.catalog.VolumeToUnits(r, volume[r]); units > 0 {
			rc.Stock[r] = units
		}
	}
	return rc
}

func (s *State) resident(id ecs.EntityID) Resident {
	c := s.Colonists.MustGet(id)
	r := Resident{ID: id, Profession: c.Profession, Tier: c.Tier}
	if o, ok := s.Occupied.Get(id); ok {
		r.Area = o.Area
	}
	if v, ok := s.Satiety.Get(id); ok {
		r.Satiety = v.Value
	}
	if m, ok := s.Mood.Get(id); ok {
		r.Mood = m.Value
	}
	return r
}

func (s *State) installed(id ecs.EntityID) Installed {
	in := Installed{ID: id, Kind: s.Stationaries.MustGet(id).Kind}
	if o, ok := s.Occupied.Get(id); ok {
		in.Area = o.Area
	}
	if st, ok := s.Statuses.Get(id); ok {
		in.Status = st.Status
	}
	return in
}
