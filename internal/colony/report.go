package colony

import (
	"github.com/glavblock/glavblock/internal/core/event"
	"github.com/glavblock/glavblock/internal/data"
)

// TurnReport is a value snapshot of one turn's outcome.
type TurnReport struct {
	Turn      int
	Completed []event.TaskCompleted
	Started   []event.BuildStarted // builds ordered since the previous turn
	Starved   []event.ColonistStarved

	Fed      int
	Unfed    int
	Eaten    data.RealUnits
	Invested data.BuildPower

	Population int
	Mood       int
	Satiety    int
	Resources  map[data.Resource]data.RealUnits
	Digest     string
}
