package world

import (
	"fmt"

	"github.com/glavblock/glavblock/internal/component"
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
)

// Spawn settles a new colonist in room. Rooms still under construction
// take nobody.
func (s *State) Spawn(prof data.Profession, tier data.Tier, room ecs.EntityID) (ecs.EntityID, error) {
	if _, ok := s.Rooms.Get(room); !ok || !s.IsReady(room) {
		return 0, fmt.Errorf("spawn %s/%s: room %d is not a ready room: %w", prof, tier, room.Index(), ErrNotEnoughArea)
	}
	if free := s.FreeSpace(room); free < s.settings.ColonistArea {
		return 0, fmt.Errorf("spawn %s/%s into room %d (free %d): %w", prof, tier, room.Index(), free, ErrNotEnoughArea)
	}
	id := s.ecs.CreateEntity()
	s.Colonists.Set(id, &component.Colonist{Profession: prof, Tier: tier})
	s.Belongs.Set(id, &component.BelongsToRoom{Room: room})
	s.Occupied.Set(id, &component.AreaOccupied{Area: s.settings.ColonistArea})
	s.Satiety.Set(id, &component.Satiety{Value: s.settings.StartSatiety})
	s.Mood.Set(id, &component.Mood{Value: s.settings.StartMood})
	return id, nil
}

// SpawnAnywhere settles a colonist in the fullest Living room that fits.
func (s *State) SpawnAnywhere(prof data.Profession, tier data.Tier) (ecs.EntityID, error) {
	room, ok := s.FindRoom(s.settings.ColonistArea, data.Living)
	if !ok {
		return 0, fmt.Errorf("spawn %s/%s: %w", prof, tier, ErrNoEmptyArea)
	}
	return s.Spawn(prof, tier, room)
}

// Population counts colonists by profession and tier.
func (s *State) Population() map[data.Cohort]int {
	out := make(map[data.Cohort]int)
	s.Colonists.Each(func(_ ecs.EntityID, c *component.Colonist) {
		out[data.Cohort{Profession: c.Profession, Tier: c.Tier}]++
	})
	return out
}

// Headcount is the number of living colonists.
func (s *State) Headcount() int { return s.Colonists.Len() }

// TotalMood sums the mood of the whole colony.
func (s *State) TotalMood() int {
	total := 0
	s.Mood.Each(func(_ ecs.EntityID, m *component.Mood) { total += m.Value })
	return total
}

// TotalSatiety sums how well fed the colony is.
func (s *State) TotalSatiety() int {
	total := 0
	s.Satiety.Each(func(_ ecs.EntityID, v *component.Satiety) { total += v.Value })
	return total
}

// ColonistIDs returns colonist ids in entity order.
func (s *State) ColonistIDs() []ecs.EntityID {
	ids := s.Colonists.IDs()
	sortIDs(ids)
	return ids
}
