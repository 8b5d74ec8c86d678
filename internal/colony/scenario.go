package colony

import (
	"github.com/glavblock/glavblock/internal/scripting"
	"github.com/glavblock/glavblock/internal/world"
)

// LuaScenario seeds the colony from a Lua script.
func LuaScenario(engine *scripting.Engine, name string, src []byte) Scenario {
	return func(s *world.State) error {
		_, err := engine.RunScenario(s, name, src)
		return err
	}
}

// LuaScenarioFile seeds the colony from a Lua script on disk.
func LuaScenarioFile(engine *scripting.Engine, path string) Scenario {
	return func(s *world.State) error {
		_, err := engine.RunScenarioFile(s, path)
		return err
	}
}
