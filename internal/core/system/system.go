package system

// Phase defines execution ordering within a single turn.
type Phase int

const (
	PhaseLabor   Phase = iota // 0: rebuild the build-power pool
	PhaseTasks                // 1: spend labor on construction tasks
	PhaseHunger               // 2: satiety decay, starvation
	PhaseFeeding              // 3: concentrate consumption
	PhaseReport               // 4: dispatch this turn's events
	PhaseCleanup              // 5: destroy queued entities
)

func (p Phase) String() string {
	switch p {
	case PhaseLabor:
		return "labor"
	case PhaseTasks:
		return "tasks"
	case PhaseHunger:
		return "hunger"
	case PhaseFeeding:
		return "feeding"
	case PhaseReport:
		return "report"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every turn system implements. C is the per-turn
// context shared by all systems of one runner.
type System[C any] interface {
	Phase() Phase
	Update(ctx C)
}
