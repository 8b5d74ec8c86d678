package world

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/glavblock/glavblock/internal/component"
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
)

// Install puts up room infrastructure ("germ") of a tier. The room starts
// Constructing and only counts as usable space once its task completes.
func (s *State) Install(tier data.Tier, purpose data.AreaType) ecs.EntityID {
	id := s.installGerm(tier, purpose, data.Constructing)
	s.Priorities.Set(id, &component.TaskPriority{})
	s.Progress.Set(id, newProgress(s.catalog.GermRequirements(tier)))
	return id
}

// InstallBuilt puts up a germ that is already Ready. Starting scenarios use it.
func (s *State) InstallBuilt(tier data.Tier, purpose data.AreaType) ecs.EntityID {
	return s.installGerm(tier, purpose, data.Ready)
}

func (s *State) installGerm(tier data.Tier, purpose data.AreaType, status data.TaskStatus) ecs.EntityID {
	capacity := s.catalog.GermCapacity(tier) // panics on NoTier
	id := s.ecs.CreateEntity()
	s.Germs.Set(id, &component.Germ{Tier: tier})
	s.Rooms.Set(id, &component.Room{Type: purpose, Capacity: capacity})
	s.Statuses.Set(id, &component.TaskStatus{Status: status})
	return id
}

func newProgress(reqs []data.TaskMeta) *component.TaskProgress {
	p := &component.TaskProgress{WhoShouldFinish: make([]component.Obligation, 0, len(reqs))}
	for _, m := range reqs {
		p.Required += m.BP
		p.WhoShouldFinish = append(p.WhoShouldFinish, component.Obligation{
			Profession: m.Profession,
			Tier:       m.Tier,
			Equipment:  m.Equipment,
			Remaining:  m.BP,
		})
	}
	return p
}

// Shortfall explains why a stationary cannot be built right now.
type Shortfall struct {
	Kind             data.Stationary
	MissingEquipment []data.Stationary
	MissingWorkers   []data.Cohort
	MissingResources map[data.Resource]data.RealUnits
	NoRoom           bool
}

func (e *Shortfall) Error() string {
	var parts []string
	if len(e.MissingEquipment) > 0 {
		names := make([]string, len(e.MissingEquipment))
		for i, s := range e.MissingEquipment {
			names[i] = s.String()
		}
		parts = append(parts, "equipment "+strings.Join(names, ", "))
	}
	if len(e.MissingWorkers) > 0 {
		names := make([]string, len(e.MissingWorkers))
		for i, c := range e.MissingWorkers {
			names[i] = c.String()
		}
		parts = append(parts, "workers "+strings.Join(names, ", "))
	}
	if len(e.MissingResources) > 0 {
		var names []string
		for _, r := range data.Resources() {
			if n, ok := e.MissingResources[r]; ok {
				names = append(names, fmt.Sprintf("%s x%d", r, n))
			}
		}
		parts = append(parts, "resources "+strings.Join(names, ", "))
	}
	if e.NoRoom {
		parts = append(parts, "no industrial room with space")
	}
	return fmt.Sprintf("cannot build %s: missing %s", e.Kind, strings.Join(parts, "; "))
}

// Is lets errors.Is match the sentinel that best describes the shortfall.
func (e *Shortfall) Is(target error) bool {
	switch target {
	case ErrNotEnoughResources:
		return len(e.MissingResources) > 0
	case ErrNotEnoughArea:
		return e.NoRoom
	}
	return false
}

// ReadyEquipment counts Ready stationaries per kind.
func (s *State) ReadyEquipment() map[data.Stationary]int {
	out := make(map[data.Stationary]int)
	ecs.Each2(s.Stationaries, s.Statuses, func(_ ecs.EntityID, st *component.Stationary, ts *component.TaskStatus) {
		if ts.Status == data.Ready {
			out[st.Kind]++
		}
	})
	return out
}

// CanBuild checks equipment, workers, stock and room for kind. On success it
// returns the Industrial room that would host it; otherwise a *Shortfall.
func (s *State) CanBuild(kind data.Stationary) (ecs.EntityID, error) {
	if kind == data.None {
		return 0, fmt.Errorf("can build %s: %w", kind, ErrNotBuildable)
	}
	short := &Shortfall{Kind: kind, MissingResources: make(map[data.Resource]data.RealUnits)}

	reqs := s.catalog.Requirements(kind)
	ready := s.ReadyEquipment()
	people := s.Population()
	seenEquipment := make(map[data.Stationary]bool)
	seenCohort := make(map[data.Cohort]bool)
	for _, m := range reqs {
		if m.Equipment != data.None && ready[m.Equipment] == 0 && !seenEquipment[m.Equipment] {
			seenEquipment[m.Equipment] = true
			short.MissingEquipment = append(short.MissingEquipment, m.Equipment)
		}
		cohort := data.Cohort{Profession: m.Profession, Tier: m.Tier}
		if people[cohort] == 0 && !seenCohort[cohort] {
			seenCohort[cohort] = true
			short.MissingWorkers = append(short.MissingWorkers, cohort)
		}
	}

	for res, need := range s.catalog.ResourceCost(kind) {
		if held := s.TotalOf(res); held < need {
			short.MissingResources[res] = need - held
		}
	}

	room, ok := s.FindRoom(s.catalog.StationarySize(kind), data.Industrial)
	short.NoRoom = !ok

	if len(short.MissingEquipment) > 0 || len(short.MissingWorkers) > 0 ||
		len(short.MissingResources) > 0 || short.NoRoom {
		return 0, short
	}
	return room, nil
}

// StartBuild withdraws the materials for kind and places a Constructing
// stationary in room. Either everything happens or nothing does.
func (s *State) StartBuild(kind data.Stationary, room ecs.EntityID, priority data.Priority) (ecs.EntityID, error) {
	if kind == data.None {
		return 0, fmt.Errorf("start build %s: %w", kind, ErrNotBuildable)
	}
	if _, ok := s.Rooms.Get(room); !ok || !s.IsReady(room) {
		return 0, fmt.Errorf("start build %s: room %d is not a ready room: %w", kind, room.Index(), ErrNotEnoughArea)
	}
	size := s.catalog.StationarySize(kind)
	if free := s.FreeSpace(room); free < size {
		return 0, fmt.Errorf("start build %s: needs %d, room %d has %d: %w", kind, size, room.Index(), free, ErrNotEnoughArea)
	}
	if err := s.WithdrawBunch(s.catalog.ResourceCost(kind)); err != nil {
		return 0, fmt.Errorf("start build %s: %w", kind, err)
	}

	id := s.ecs.CreateEntity()
	s.Stationaries.Set(id, &component.Stationary{Kind: kind})
	s.Belongs.Set(id, &component.BelongsToRoom{Room: room})
	s.Occupied.Set(id, &component.AreaOccupied{Area: size})
	s.Statuses.Set(id, &component.TaskStatus{Status: data.Constructing})
	s.Priorities.Set(id, &component.TaskPriority{Priority: priority})
	s.Progress.Set(id, newProgress(s.catalog.Requirements(kind)))
	return id, nil
}

// CompleteTask flips a task to Ready and drops its progress record.
func (s *State) CompleteTask(id ecs.EntityID) {
	st := s.Statuses.MustGet(id)
	st.Status = data.Ready
	s.Progress.Remove(id)
}

// TaskInfo describes one Constructing task for reporting.
type TaskInfo struct {
	ID          ecs.EntityID
	Room        ecs.EntityID // host room; zero for germs
	Stationary  data.Stationary
	Germ        bool
	GermTier    data.Tier
	AreaType    data.AreaType // purpose of a germ
	Priority    data.Priority
	Required    data.BuildPower
	Invested    data.BuildPower
	Obligations []component.Obligation
}

// Label names what the task produces.
func (t TaskInfo) Label() string {
	if t.Germ {
		return fmt.Sprintf("%s room %s", t.AreaType, t.GermTier)
	}
	return t.Stationary.String()
}

// InProgress lists every Constructing task in entity order.
func (s *State) InProgress() []TaskInfo {
	ids := s.Progress.IDs()
	sortIDs(ids)
	out := make([]TaskInfo, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.taskInfo(id))
	}
	return out
}

// TaskInfo returns the reporting view of a single task or stationary.
func (s *State) TaskInfo(id ecs.EntityID) TaskInfo {
	return s.taskInfo(id)
}

func (s *State) taskInfo(id ecs.EntityID) TaskInfo {
	info := TaskInfo{ID: id}
	if p, ok := s.Progress.Get(id); ok {
		info.Required = p.Required
		info.Invested = p.Invested
		info.Obligations = append([]component.Obligation(nil), p.WhoShouldFinish...)
	}
	if pr, ok := s.Priorities.Get(id); ok {
		info.Priority = pr.Priority
	}
	if g, ok := s.Germs.Get(id); ok {
		info.Germ = true
		info.GermTier = g.Tier
		info.AreaType = s.Rooms.MustGet(id).Type
	}
	if st, ok := s.Stationaries.Get(id); ok {
		info.Stationary = st.Kind
	}
	if b, ok := s.Belongs.Get(id); ok {
		info.Room = b.Room
	}
	return info
}

// TaskOrder returns Constructing tasks by priority, highest first, then
// entity order.
func (s *State) TaskOrder() []ecs.EntityID {
	ids := s.Progress.IDs()
	sortIDs(ids)
	sort.SliceStable(ids, func(i, j int) bool {
		return s.priority(ids[i]) > s.priority(ids[j])
	})
	return ids
}

func (s *State) priority(id ecs.EntityID) data.Priority {
	if p, ok := s.Priorities.Get(id); ok {
		return p.Priority
	}
	return 0
}

// IsShortfall unwraps err into a *Shortfall.
func IsShortfall(err error) (*Shortfall, bool) {
	var sf *Shortfall
	ok := errors.As(err, &sf)
	return sf, ok
}
