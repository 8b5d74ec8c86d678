package world

import (
	"fmt"

	"github.com/glavblock/glavblock/internal/component"
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
)

// Deposit stores amount units of res across Party rooms, fullest first, one
// new container per room used. Only whole units are placed. Returns the
// units that did not fit.
func (s *State) Deposit(res data.Resource, amount data.RealUnits) data.RealUnits {
	if amount <= 0 {
		return 0
	}
	piece := s.catalog.PieceSize(res)
	remaining := amount
	for _, slot := range s.storageSlots() {
		if remaining == 0 {
			break
		}
		fit := data.RealUnits(slot.free / piece)
		if fit <= 0 {
			continue
		}
		n := min(fit, remaining)
		s.newContainer(res, slot.room, s.catalog.UnitsToVolume(res, n))
		remaining -= n
	}
	return remaining
}

func (s *State) newContainer(res data.Resource, room ecs.EntityID, volume data.Area) ecs.EntityID {
	id := s.ecs.CreateEntity()
	s.Containers.Set(id, &component.Container{Resource: res})
	s.Belongs.Set(id, &component.BelongsToRoom{Room: room})
	s.Occupied.Set(id, &component.AreaOccupied{Area: volume})
	return id
}

// draw takes area from one container.
type draw struct {
	container ecs.EntityID
	area      data.Area
}

// planWithdraw decides which containers to drain for amount units of res
// without touching them.
func (s *State) planWithdraw(res data.Resource, amount data.RealUnits) ([]draw, data.RealUnits) {
	remaining := amount
	var plan []draw
	ecs.Each2(s.Containers, s.Occupied, func(id ecs.EntityID, c *component.Container, o *component.AreaOccupied) {
		if remaining <= 0 || c.Resource != res {
			return
		}
		units := min(remaining, s.catalog.VolumeToUnits(res, o.Area))
		if units <= 0 {
			return
		}
		plan = append(plan, draw{container: id, area: s.catalog.UnitsToVolume(res, units)})
		remaining -= units
	})
	return plan, remaining
}

// applyWithdraw shrinks the planned containers and deletes the emptied ones.
func (s *State) applyWithdraw(plan []draw) {
	for _, d := range plan {
		o := s.Occupied.MustGet(d.container)
		o.Area -= d.area
		if o.Area <= 0 {
			s.ecs.Destroy(d.container)
		}
	}
}

// Withdraw drains amount units of res from stock. Returns the shortfall when
// stock was insufficient; whatever was there is taken.
func (s *State) Withdraw(res data.Resource, amount data.RealUnits) data.RealUnits {
	if amount <= 0 {
		return 0
	}
	plan, shortfall := s.planWithdraw(res, amount)
	s.applyWithdraw(plan)
	return shortfall
}

// TotalOf sums every container of res. Area that does not form a whole unit
// is not reported.
func (s *State) TotalOf(res data.Resource) data.RealUnits {
	var volume data.Area
	ecs.Each2(s.Containers, s.Occupied, func(_ ecs.EntityID, c *component.Container, o *component.AreaOccupied) {
		if c.Resource == res {
			volume += o.Area
		}
	})
	return s.catalog.VolumeToUnits(res, volume)
}

// Snapshot returns every resource kind present in stock.
func (s *State) Snapshot() map[data.Resource]data.RealUnits {
	var volume [data.ResourceCount]data.Area
	ecs.Each2(s.Containers, s.Occupied, func(_ ecs.EntityID, c *component.Container, o *component.AreaOccupied) {
		volume[c.Resource] += o.Area
	})
	out := make(map[data.Resource]data.RealUnits)
	for _, r := range data.Resources() {
		if units := s.catalog.VolumeToUnits(r, volume[r]); units > 0 {
			out[r] = units
		}
	}
	return out
}

// HasEnough reports whether stock covers every requested amount.
func (s *State) HasEnough(required map[data.Resource]data.RealUnits) bool {
	for res, amount := range required {
		if s.TotalOf(res) < amount {
			return false
		}
	}
	return true
}

// WithdrawBunch takes every requested amount or nothing at all.
func (s *State) WithdrawBunch(required map[data.Resource]data.RealUnits) error {
	var plans [][]draw
	for _, res := range data.Resources() {
		amount, ok := required[res]
		if !ok || amount <= 0 {
			continue
		}
		plan, shortfall := s.planWithdraw(res, amount)
		if shortfall > 0 {
			return fmt.Errorf("withdraw %d %s, short by %d: %w", amount, res, shortfall, ErrNotEnoughResources)
		}
		plans = append(plans, plan)
	}
	for _, plan := range plans {
		s.applyWithdraw(plan)
	}
	return nil
}
