package system

import (
	"github.com/glavblock/glavblock/internal/data"
	"github.com/glavblock/glavblock/internal/world"
)

// Turn is the context every system receives during one turn. It lives only
// for the duration of AdvanceTurn.
type Turn struct {
	Number int
	Pool   world.BuildPowerPool // labor left to spend this turn

	Invested data.BuildPower // labor spent on tasks
	Fed      int
	Unfed    int
	Eaten    data.RealUnits // food withdrawn from stock
}
