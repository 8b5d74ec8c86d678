package scripting

import (
	_ "embed"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
)

//go:embed scenario/default.lua
var defaultScenario []byte

// DefaultScenario is the built-in starting colony.
func DefaultScenario() []byte { return defaultScenario }

// Colony is what a scenario script may touch. *world.State implements it.
type Colony interface {
	Install(tier data.Tier, purpose data.AreaType) ecs.EntityID
	InstallBuilt(tier data.Tier, purpose data.AreaType) ecs.EntityID
	Spawn(prof data.Profession, tier data.Tier, room ecs.EntityID) (ecs.EntityID, error)
	SpawnAnywhere(prof data.Profession, tier data.Tier) (ecs.EntityID, error)
	Deposit(res data.Resource, amount data.RealUnits) data.RealUnits
}

// Summary counts what a scenario created.
type Summary struct {
	Rooms     int
	Germs     int
	Colonists int
	Deposited map[data.Resource]data.RealUnits
	Overflow  map[data.Resource]data.RealUnits
}

// Engine wraps a single gopher-lua VM for scenario scripts.
// Single-goroutine access only.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger

	colony  Colony
	summary *Summary
}

const roomTypeName = "room"

// NewEngine creates a Lua engine with the scenario API registered.
func NewEngine(log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	mt := vm.NewTypeMetatable(roomTypeName)
	vm.SetField(mt, "__tostring", vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(fmt.Sprintf("room#%d", e.checkRoom(L, 1).Index())))
		return 1
	}))

	for name, fn := range map[string]lua.LGFunction{
		"install": e.luaInstall,
		"germ":    e.luaGerm,
		"spawn":   e.luaSpawn,
		"settle":  e.luaSettle,
		"squad":   e.luaSquad,
		"deposit": e.luaDeposit,
		"log":     e.luaLog,
	} {
		vm.SetGlobal(name, vm.NewFunction(fn))
	}
	return e
}

// RunScenario executes src against colony. name labels errors and logs.
func (e *Engine) RunScenario(colony Colony, name string, src []byte) (*Summary, error) {
	e.colony = colony
	e.summary = &Summary{
		Deposited: make(map[data.Resource]data.RealUnits),
		Overflow:  make(map[data.Resource]data.RealUnits),
	}
	defer func() { e.colony = nil }()

	if err := e.vm.DoString(string(src)); err != nil {
		return nil, fmt.Errorf("run scenario %s: %w", name, err)
	}
	e.log.Debug("scenario finished",
		zap.String("scenario", name),
		zap.Int("rooms", e.summary.Rooms),
		zap.Int("germs", e.summary.Germs),
		zap.Int("colonists", e.summary.Colonists),
	)
	return e.summary, nil
}

// RunScenarioFile loads a script from disk and runs it.
func (e *Engine) RunScenarioFile(colony Colony, path string) (*Summary, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return e.RunScenario(colony, path, src)
}

func (e *Engine) pushRoom(L *lua.LState, id ecs.EntityID) {
	ud := L.NewUserData()
	ud.Value = id
	L.SetMetatable(ud, L.GetTypeMetatable(roomTypeName))
	L.Push(ud)
}

func (e *Engine) checkRoom(L *lua.LState, n int) ecs.EntityID {
	ud := L.CheckUserData(n)
	id, ok := ud.Value.(ecs.EntityID)
	if !ok {
		L.ArgError(n, "room expected")
	}
	return id
}

func checkEnum[T any](L *lua.LState, n int, parse func(string) (T, error)) T {
	v, err := parse(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return v
}

func (e *Engine) luaInstall(L *lua.LState) int {
	tier := checkEnum(L, 1, data.ParseTier)
	purpose := checkEnum(L, 2, data.ParseAreaType)
	if tier == data.NoTier {
		L.ArgError(1, "rooms need a tier")
	}
	e.pushRoom(L, e.colony.InstallBuilt(tier, purpose))
	e.summary.Rooms++
	return 1
}

func (e *Engine) luaGerm(L *lua.LState) int {
	tier := checkEnum(L, 1, data.ParseTier)
	purpose := checkEnum(L, 2, data.ParseAreaType)
	if tier == data.NoTier {
		L.ArgError(1, "rooms need a tier")
	}
	e.pushRoom(L, e.colony.Install(tier, purpose))
	e.summary.Germs++
	return 1
}

func (e *Engine) luaSpawn(L *lua.LState) int {
	room := e.checkRoom(L, 1)
	prof := checkEnum(L, 2, data.ParseProfession)
	tier := checkEnum(L, 3, data.ParseTier)
	n := L.OptInt(4, 1)
	for i := 0; i < n; i++ {
		if _, err := e.colony.Spawn(prof, tier, room); err != nil {
			L.RaiseError("spawn: %v", err)
		}
		e.summary.Colonists++
	}
	return 0
}

func (e *Engine) luaSettle(L *lua.LState) int {
	prof := checkEnum(L, 1, data.ParseProfession)
	tier := checkEnum(L, 2, data.ParseTier)
	n := L.OptInt(3, 1)
	for i := 0; i < n; i++ {
		if _, err := e.colony.SpawnAnywhere(prof, tier); err != nil {
			L.RaiseError("settle: %v", err)
		}
		e.summary.Colonists++
	}
	return 0
}

// luaSquad settles a unit: a T2 leader and T1 rank and file.
func (e *Engine) luaSquad(L *lua.LState) int {
	room := e.checkRoom(L, 1)
	prof := checkEnum(L, 2, data.ParseProfession)
	size := L.OptInt(3, 14)
	if size < 1 {
		L.ArgError(3, "squad needs at least a leader")
	}
	for i := 0; i < size; i++ {
		tier := data.T1
		if i == 0 {
			tier = data.T2
		}
		if _, err := e.colony.Spawn(prof, tier, room); err != nil {
			L.RaiseError("squad: %v", err)
		}
		e.summary.Colonists++
	}
	return 0
}

func (e *Engine) luaDeposit(L *lua.LState) int {
	res := checkEnum(L, 1, data.ParseResource)
	amount := data.RealUnits(L.CheckInt(2))
	if amount < 0 {
		L.ArgError(2, "amount must not be negative")
	}
	left := e.colony.Deposit(res, amount)
	e.summary.Deposited[res] += amount - left
	if left > 0 {
		e.summary.Overflow[res] += left
	}
	L.Push(lua.LNumber(left))
	return 1
}

func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info("scenario", zap.String("msg", L.CheckString(1)))
	return 0
}

func (e *Engine) Close() {
	e.vm.Close()
}
