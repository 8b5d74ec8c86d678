package data_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glavblock/glavblock/internal/data"
)

func TestDefaultCatalogIsExhaustive(t *testing.T) {
	c := data.DefaultCatalog()

	for _, r := range data.Resources() {
		assert.Positive(t, int(c.PieceSize(r)), "piece size of %s", r)
	}
	for _, s := range data.Stationaries() {
		assert.Positive(t, int(c.StationarySize(s)), "size of %s", s)
		assert.NotEmpty(t, c.ResourceCost(s), "cost of %s", s)
		assert.NotEmpty(t, c.Requirements(s), "requirements of %s", s)
	}
	for _, tier := range []data.Tier{data.T1, data.T2, data.T3} {
		assert.Positive(t, int(c.GermCapacity(tier)))
		assert.NotEmpty(t, c.GermRequirements(tier))
	}

	assert.Empty(t, c.Requirements(data.None))
	assert.Empty(t, c.ResourceCost(data.None))
	assert.Equal(t, data.Area(0), c.StationarySize(data.None))
}

func TestDefaultCatalogValues(t *testing.T) {
	c := data.DefaultCatalog()

	assert.Equal(t, data.BuildPower(0), c.ComradeBuildPower(data.NoTier))
	assert.Equal(t, data.BuildPower(10), c.ComradeBuildPower(data.T1))
	assert.Equal(t, data.BuildPower(20), c.ComradeBuildPower(data.T2))
	assert.Equal(t, data.BuildPower(40), c.ComradeBuildPower(data.T3))

	assert.Equal(t, data.Area(3000), c.GermCapacity(data.T1))
	assert.Equal(t, data.Area(15000), c.GermCapacity(data.T2))
	assert.Equal(t, data.Area(50000), c.GermCapacity(data.T3))
	assert.Panics(t, func() { c.GermCapacity(data.NoTier) })

	assert.Equal(t, data.Area(1), c.PieceSize(data.Concentrate))
	assert.Equal(t, data.Area(100), c.PieceSize(data.ScrapT1))
	assert.Equal(t, data.BuildPower(10), c.StationaryOutput(data.BenchToolT1))
}

func TestDefaultCatalogBaseTables(t *testing.T) {
	c := data.DefaultCatalog()
	base := []data.TaskMeta{{Profession: data.Worker, Tier: data.T1, BP: 10, Equipment: data.None}}

	for _, s := range data.Stationaries() {
		assert.Equal(t, map[data.Resource]data.RealUnits{data.ScrapT1: 1}, c.ResourceCost(s), "cost of %s", s)
		assert.Equal(t, base, c.Requirements(s), "requirements of %s", s)
	}
	for _, tier := range []data.Tier{data.T1, data.T2, data.T3} {
		assert.Equal(t, base, c.GermRequirements(tier), "germ %s", tier)
	}

	assert.Equal(t, data.Area(6000), c.StationarySize(data.LabT3))
	assert.Equal(t, data.BuildPower(40), c.StationaryOutput(data.BenchToolT3))
	assert.Equal(t, data.BuildPower(0), c.StationaryOutput(data.Rack))
}

func TestUnitConversionTruncates(t *testing.T) {
	c := data.DefaultCatalog()
	assert.Equal(t, data.RealUnits(2), c.VolumeToUnits(data.Polymer, 149))
	assert.Equal(t, data.Area(150), c.UnitsToVolume(data.Polymer, 3))
}

func TestResourceCostIsACopy(t *testing.T) {
	c := data.DefaultCatalog()
	cost := c.ResourceCost(data.BenchToolT1)
	cost[data.ScrapT1] = 999
	assert.Equal(t, data.RealUnits(1), c.ResourceCost(data.BenchToolT1)[data.ScrapT1])
}

func TestParseCatalogRejectsMissingKinds(t *testing.T) {
	_, err := data.ParseCatalog([]byte(`
comrade_build_power: { T1: 10, T2: 20 }
piece_sizes: { Concentrate: 1 }
stationaries:
  - kind: BenchToolT1
    size: 2000
    requirements:
      - { profession: Worker, tier: T1, bp: 10 }
germs:
  - { tier: T1, capacity: 3000 }
`))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "comrade_build_power: missing T3")
	assert.Contains(t, msg, "piece_sizes: missing ScrapT1")
	assert.Contains(t, msg, "stationaries: missing LabT1")
	assert.Contains(t, msg, "germs: missing capacity for T2")
}

func TestParseCatalogRejectsUnknownNames(t *testing.T) {
	_, err := data.ParseCatalog([]byte(`
piece_sizes: { Unobtainium: 5 }
stationaries:
  - kind: BenchToolT1
    requirements:
      - { profession: Plumber, tier: T1, bp: 10 }
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown resource "Unobtainium"`)
	assert.Contains(t, err.Error(), `unknown profession "Plumber"`)
}

func TestLoadCatalogFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	raw, err := os.ReadFile(filepath.Join("yaml", "catalog.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	c, err := data.LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, data.Area(2000), c.StationarySize(data.BenchToolT1))

	_, err = data.LoadCatalog(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestDowngradeCoefficient(t *testing.T) {
	tests := []struct {
		worker, target data.Tier
		want           data.BuildPower
	}{
		{data.T1, data.T1, 10},
		{data.T2, data.T2, 10},
		{data.T2, data.T1, 20},
		{data.T3, data.T2, 20},
		{data.T3, data.T1, 40},
		{data.T1, data.T2, 0},
		{data.NoTier, data.NoTier, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, data.DowngradeCoefficient(tt.worker, tt.target, 10), "%s on %s", tt.worker, tt.target)
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for _, r := range data.Resources() {
		got, err := data.ParseResource(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	for _, s := range data.Stationaries() {
		got, err := data.ParseStationary(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	p, err := data.ParseProfession("Party")
	require.NoError(t, err)
	assert.Equal(t, data.PartyMember, p)

	a, err := data.ParseAreaType("Party")
	require.NoError(t, err)
	assert.Equal(t, data.Party, a)

	_, err = data.ParseTier("T4")
	assert.Error(t, err)
	assert.Equal(t, "Tier(9)", data.Tier(9).String())
}
