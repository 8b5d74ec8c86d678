package system

import (
	"sort"
)

// Runner executes systems in phase order each turn. Systems sharing a phase
// keep their registration order.
type Runner[C any] struct {
	systems []System[C]
	sorted  bool
}

func NewRunner[C any]() *Runner[C] {
	return &Runner[C]{
		systems: make([]System[C], 0, 8),
	}
}

func (r *Runner[C]) Register(s System[C]) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

func (r *Runner[C]) Tick(ctx C) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(ctx)
	}
}

// Phases lists the phases that have at least one system, in execution order.
func (r *Runner[C]) Phases() []Phase {
	r.ensureSorted()
	var out []Phase
	for _, s := range r.systems {
		if len(out) == 0 || out[len(out)-1] != s.Phase() {
			out = append(out, s.Phase())
		}
	}
	return out
}

func (r *Runner[C]) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
