package world

import (
	"fmt"
	"sort"

	"github.com/glavblock/glavblock/internal/component"
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
)

// RoomSpace is one line of the free-space listing.
type RoomSpace struct {
	Room ecs.EntityID
	Type data.AreaType
	Free data.Area
}

// RoomUsage is the full accounting of one room.
type RoomUsage struct {
	Type     data.AreaType
	Capacity data.Area
	Free     data.Area
	Occupied data.Area
}

// occupancy sums AreaOccupied per room in one pass.
func (s *State) occupancy() map[ecs.EntityID]data.Area {
	out := make(map[ecs.EntityID]data.Area, s.Rooms.Len())
	ecs.Each2(s.Belongs, s.Occupied, func(_ ecs.EntityID, b *component.BelongsToRoom, o *component.AreaOccupied) {
		out[b.Room] += o.Area
	})
	return out
}

// readyRooms returns Ready rooms in entity order.
func (s *State) readyRooms() []ecs.EntityID {
	var ids []ecs.EntityID
	ecs.Each2(s.Rooms, s.Statuses, func(id ecs.EntityID, _ *component.Room, st *component.TaskStatus) {
		if st.Status == data.Ready {
			ids = append(ids, id)
		}
	})
	sortIDs(ids)
	return ids
}

// FreeSpace returns capacity minus everything placed in the room. The room
// must exist; asking about anything else is a programming error.
func (s *State) FreeSpace(room ecs.EntityID) data.Area {
	r := s.Rooms.MustGet(room)
	var used data.Area
	ecs.Each2(s.Belongs, s.Occupied, func(_ ecs.EntityID, b *component.BelongsToRoom, o *component.AreaOccupied) {
		if b.Room == room {
			used += o.Area
		}
	})
	return r.Capacity - used
}

// FindRoom picks, among Ready rooms of areaType with at least minFree free,
// the fullest one, so large free blocks stay intact. Ties go to the lower
// entity index.
func (s *State) FindRoom(minFree data.Area, areaType data.AreaType) (ecs.EntityID, bool) {
	occ := s.occupancy()
	var (
		best     ecs.EntityID
		bestFree data.Area
		found    bool
	)
	for _, id := range s.readyRooms() {
		r := s.Rooms.MustGet(id)
		if r.Type != areaType {
			continue
		}
		free := r.Capacity - occ[id]
		if free < minFree {
			continue
		}
		if !found || free < bestFree {
			best, bestFree, found = id, free, true
		}
	}
	return best, found
}

// RoomsWithSpace lists every Ready room with its free area.
func (s *State) RoomsWithSpace() []RoomSpace {
	occ := s.occupancy()
	ids := s.readyRooms()
	out := make([]RoomSpace, 0, len(ids))
	for _, id := range ids {
		r := s.Rooms.MustGet(id)
		out = append(out, RoomSpace{Room: id, Type: r.Type, Free: r.Capacity - occ[id]})
	}
	return out
}

// AllRoomsWithSpace maps every Ready room to its capacity accounting.
func (s *State) AllRoomsWithSpace() map[ecs.EntityID]RoomUsage {
	occ := s.occupancy()
	out := make(map[ecs.EntityID]RoomUsage)
	for _, id := range s.readyRooms() {
		r := s.Rooms.MustGet(id)
		out[id] = RoomUsage{
			Type:     r.Type,
			Capacity: r.Capacity,
			Free:     r.Capacity - occ[id],
			Occupied: occ[id],
		}
	}
	return out
}

// CheckCapacity verifies that no Ready room holds more than its capacity.
func (s *State) CheckCapacity() error {
	occ := s.occupancy()
	for _, id := range s.readyRooms() {
		r := s.Rooms.MustGet(id)
		if occ[id] > r.Capacity {
			return fmt.Errorf("room %d (%s) over capacity: %d/%d", id.Index(), r.Type, occ[id], r.Capacity)
		}
	}
	return nil
}

// storageSlot is a Party room that can still take stock.
type storageSlot struct {
	room ecs.EntityID
	free data.Area
}

// storageSlots lists Ready Party rooms with free space, fullest first.
func (s *State) storageSlots() []storageSlot {
	occ := s.occupancy()
	var out []storageSlot
	for _, id := range s.readyRooms() {
		r := s.Rooms.MustGet(id)
		if r.Type != data.Party {
			continue
		}
		if free := r.Capacity - occ[id]; free > 0 {
			out = append(out, storageSlot{room: id, free: free})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].free < out[j].free })
	return out
}
