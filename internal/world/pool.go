package world

import "github.com/glavblock/glavblock/internal/data"

// BuildPowerPool is the labor available this turn by profession and tier.
// It is rebuilt from the population every turn; nothing carries over.
type BuildPowerPool struct {
	bp [data.ProfessionCount][data.TierCount]data.BuildPower
}

func (p *BuildPowerPool) Reset() {
	p.bp = [data.ProfessionCount][data.TierCount]data.BuildPower{}
}

func (p *BuildPowerPool) Add(prof data.Profession, tier data.Tier, bp data.BuildPower) {
	p.bp[prof][tier] += bp
}

func (p *BuildPowerPool) Available(prof data.Profession, tier data.Tier) data.BuildPower {
	return p.bp[prof][tier]
}

// Take spends bp; callers never take more than Available.
func (p *BuildPowerPool) Take(prof data.Profession, tier data.Tier, bp data.BuildPower) {
	p.bp[prof][tier] -= bp
}

// Total is the sum of all unspent labor.
func (p *BuildPowerPool) Total() data.BuildPower {
	var total data.BuildPower
	for _, byTier := range p.bp {
		for _, bp := range byTier {
			total += bp
		}
	}
	return total
}

// EquipmentCapacity is the labor each equipment kind can still host this
// turn. Work that needs no equipment is never limited.
type EquipmentCapacity struct {
	bp [data.StationaryCount]data.BuildPower
}

func (e *EquipmentCapacity) Add(kind data.Stationary, bp data.BuildPower) {
	e.bp[kind] += bp
}

func (e *EquipmentCapacity) Available(kind data.Stationary) data.BuildPower {
	return e.bp[kind]
}

// Clamp limits want to what kind can still host.
func (e *EquipmentCapacity) Clamp(kind data.Stationary, want data.BuildPower) data.BuildPower {
	if kind == data.None {
		return want
	}
	return data.MinBP(want, e.bp[kind])
}

func (e *EquipmentCapacity) Take(kind data.Stationary, bp data.BuildPower) {
	if kind == data.None {
		return
	}
	e.bp[kind] -= bp
}

// EquipmentCapacity sums the per-turn output of every Ready stationary.
func (s *State) EquipmentCapacity() *EquipmentCapacity {
	ec := &EquipmentCapacity{}
	for kind, n := range s.ReadyEquipment() {
		ec.Add(kind, s.catalog.StationaryOutput(kind)*data.BuildPower(n))
	}
	return ec
}
