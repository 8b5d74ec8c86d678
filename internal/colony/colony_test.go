package colony

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/glavblock/glavblock/internal/config"
	"github.com/glavblock/glavblock/internal/data"
	"github.com/glavblock/glavblock/internal/scripting"
	"github.com/glavblock/glavblock/internal/world"
)

func newColony(t *testing.T) *Colony {
	t.Helper()
	return New("test", data.DefaultCatalog(), config.DefaultRules(), zap.NewNop())
}

func founded(t *testing.T) *Colony {
	t.Helper()
	return foundedWith(t, data.DefaultCatalog())
}

func foundedWith(t *testing.T, catalog *data.Catalog) *Colony {
	t.Helper()
	c := New("test", catalog, config.DefaultRules(), zap.NewNop())
	engine := scripting.NewEngine(zap.NewNop())
	t.Cleanup(engine.Close)
	require.NoError(t, c.Bootstrap(LuaScenario(engine, "default", scripting.DefaultScenario())))
	return c
}

func TestBootstrapDefaultColony(t *testing.T) {
	c := founded(t)

	assert.Equal(t, 0, c.Turn())
	assert.Equal(t, 114*5, c.Mood())
	assert.Equal(t, 114*100, c.Satiety())
	assert.Equal(t, data.RealUnits(1000), c.Resources()[data.Concentrate])
	assert.Len(t, c.Rooms(), 38)
	assert.Empty(t, c.InProgress())
}

func TestBootstrapFailure(t *testing.T) {
	c := newColony(t)
	boom := errors.New("boom")
	err := c.Bootstrap(func(*world.State) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestFirstTurnFeedsEveryone(t *testing.T) {
	c := founded(t)
	r := c.AdvanceTurn()

	assert.Equal(t, 1, r.Turn)
	assert.Equal(t, 114, r.Fed)
	assert.Equal(t, 0, r.Unfed)
	assert.Equal(t, data.RealUnits(114), r.Eaten)
	assert.Equal(t, 114, r.Population)
	assert.Equal(t, 114*6, r.Mood)
	assert.Equal(t, 114*100, r.Satiety)
	assert.Equal(t, data.RealUnits(886), r.Resources[data.Concentrate])
	assert.Equal(t, c.Digest(), r.Digest)
}

func TestBootstrapFromScenarioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outpost.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
		local cell = install("T1", "Living")
		spawn(cell, "Worker", "T1", 2)
		install("T1", "Party")
		deposit("Concentrate", 10)
	`), 0o644))

	c := newColony(t)
	engine := scripting.NewEngine(zap.NewNop())
	t.Cleanup(engine.Close)
	require.NoError(t, c.Bootstrap(LuaScenarioFile(engine, path)))
	assert.Equal(t, 2, c.State().Headcount())
	assert.Equal(t, data.RealUnits(10), c.Resources()[data.Concentrate])

	err := newColony(t).Bootstrap(LuaScenarioFile(engine, filepath.Join(t.TempDir(), "absent.lua")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHungryColonyLosesMood(t *testing.T) {
	c := newColony(t)
	require.NoError(t, c.Bootstrap(func(s *world.State) error {
		room := s.InstallBuilt(data.T1, data.Living)
		for i := 0; i < 3; i++ {
			if _, err := s.Spawn(data.Worker, data.T1, room); err != nil {
				return err
			}
		}
		return nil
	}))

	r := c.AdvanceTurn()
	assert.Equal(t, 3*4, r.Mood)
	assert.Equal(t, 3*90, r.Satiety)
	assert.Equal(t, 3, r.Unfed)
}

func TestBuildIsReportedAndCompleted(t *testing.T) {
	c := founded(t)
	before := c.Resources()[data.ScrapT1]

	id, err := c.Build(data.BenchToolT1, 1)
	require.NoError(t, err)
	assert.Equal(t, before-1, c.Resources()[data.ScrapT1])
	require.Len(t, c.InProgress(), 1)

	r := c.AdvanceTurn()
	require.Len(t, r.Started, 1)
	assert.Equal(t, id, r.Started[0].Task)
	assert.Equal(t, data.BenchToolT1, r.Started[0].Kind)
	require.Len(t, r.Completed, 1)
	assert.Equal(t, id, r.Completed[0].Task)
	assert.Equal(t, data.BuildPower(10), r.Invested)
	assert.Empty(t, c.InProgress())

	// the next turn starts with an empty report
	r = c.AdvanceTurn()
	assert.Empty(t, r.Started)
	assert.Empty(t, r.Completed)
}

// gatedCatalog puts electronics behind a lathe and components.
func gatedCatalog() *data.Catalog {
	catalog := data.DefaultCatalog()
	catalog.SetStationary(data.BenchToolT2, data.StationarySpec{
		Size:   2500,
		Output: 20,
		Cost:   map[data.Resource]data.RealUnits{data.ScrapT1: 10, data.ComponentT1: 2},
		Requirements: []data.TaskMeta{
			{Profession: data.Worker, Tier: data.T1, BP: 20, Equipment: data.BenchToolT1},
		},
	})
	catalog.SetStationary(data.BenchToolT3, data.StationarySpec{
		Size:   5000,
		Output: 40,
		Cost:   map[data.Resource]data.RealUnits{data.ScrapT2: 10, data.ComponentT2: 5},
		Requirements: []data.TaskMeta{
			{Profession: data.Worker, Tier: data.T2, BP: 40, Equipment: data.BenchToolT2},
		},
	})
	catalog.SetStationary(data.NeuroTerminal, data.StationarySpec{
		Size:   500,
		Output: 10,
		Cost:   map[data.Resource]data.RealUnits{data.ScrapT2: 5},
		Requirements: []data.TaskMeta{
			{Profession: data.Worker, Tier: data.T1, BP: 20, Equipment: data.BenchToolT3},
		},
	})
	return catalog
}

func TestStartBuildErrors(t *testing.T) {
	c := foundedWith(t, gatedCatalog())
	barracks := c.Rooms()[0].Room
	workshop, err := c.Buildable(data.BenchToolT1)
	require.NoError(t, err)

	_, err = c.StartBuild(data.BenchToolT1, barracks, 0)
	assert.ErrorIs(t, err, world.ErrNotEnoughArea)

	// no ComponentT2 in the starting stock
	_, err = c.StartBuild(data.BenchToolT3, workshop, 0)
	assert.ErrorIs(t, err, world.ErrNotEnoughResources)
	assert.Equal(t, data.RealUnits(40), c.Resources()[data.ScrapT2])

	_, err = c.Build(data.NeuroTerminal, 0)
	short, ok := world.IsShortfall(err)
	require.True(t, ok)
	assert.Contains(t, short.MissingEquipment, data.BenchToolT3)
	assert.Empty(t, short.MissingResources)
}

func TestBuildOptions(t *testing.T) {
	c := founded(t)
	opts := c.BuildOptions()
	require.Len(t, opts, len(data.Stationaries()))
	for _, o := range opts {
		assert.NoError(t, o.Err, "%s", o.Kind)
		assert.False(t, o.Room.IsZero(), "%s", o.Kind)
	}

	room, err := c.Buildable(data.Rack)
	require.NoError(t, err)
	assert.Equal(t, data.Industrial, c.RoomDetails()[room].Type)
}

func TestBuildOptionsReportGaps(t *testing.T) {
	c := foundedWith(t, gatedCatalog())

	byKind := make(map[data.Stationary]BuildOption)
	for _, o := range c.BuildOptions() {
		byKind[o.Kind] = o
	}
	assert.NoError(t, byKind[data.BenchToolT1].Err)
	assert.NoError(t, byKind[data.LabT1].Err)
	assert.Error(t, byKind[data.BenchToolT2].Err)
	assert.True(t, byKind[data.BenchToolT2].Room.IsZero())
}

func TestDigest(t *testing.T) {
	c := founded(t)
	first := c.Digest()
	assert.Len(t, first, 64)
	assert.Equal(t, first, c.Digest())

	other := founded(t)
	assert.Equal(t, first, other.Digest())

	c.AdvanceTurn()
	assert.NotEqual(t, first, c.Digest())
}

func TestRoomContentsThroughFacade(t *testing.T) {
	c := founded(t)
	var barracks world.RoomSpace
	for _, r := range c.Rooms() {
		if r.Type == data.Military {
			barracks = r
		}
	}
	rc := c.RoomContents(barracks.Room)
	assert.Len(t, rc.People, 14)
	assert.Equal(t, data.Area(1000), barracks.Free)
}
