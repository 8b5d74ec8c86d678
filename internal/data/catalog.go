package data

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed yaml/catalog.yaml
var defaultCatalog []byte

// StationarySpec is the balance entry for one equipment kind.
type StationarySpec struct {
	Size         Area                   // area occupied once installed
	Output       BuildPower             // labor it can host per turn when Ready
	Cost         map[Resource]RealUnits // materials withdrawn when construction starts
	Requirements []TaskMeta             // labor needed to build it
}

// GermSpec is the balance entry for room infrastructure of one tier.
type GermSpec struct {
	Capacity     Area
	Requirements []TaskMeta
}

// Catalog holds every static balance table, indexed by enum value. Load
// rejects a file that leaves any kind undefined, so lookups never fall
// through to a zero cost.
type Catalog struct {
	pieceSize    [ResourceCount]Area
	stationaries [StationaryCount]StationarySpec
	germs        [TierCount]GermSpec
	comradePower [TierCount]BuildPower
}

// PieceSize returns the area one unit of r occupies in storage.
func (c *Catalog) PieceSize(r Resource) Area { return c.pieceSize[r] }

// VolumeToUnits converts stored area to whole units, truncating.
func (c *Catalog) VolumeToUnits(r Resource, volume Area) RealUnits {
	return RealUnits(volume / c.pieceSize[r])
}

// UnitsToVolume converts units to the area they occupy.
func (c *Catalog) UnitsToVolume(r Resource, units RealUnits) Area {
	return Area(units) * c.pieceSize[r]
}

func (c *Catalog) StationarySize(s Stationary) Area         { return c.stationaries[s].Size }
func (c *Catalog) StationaryOutput(s Stationary) BuildPower { return c.stationaries[s].Output }

// ResourceCost returns a fresh copy of the material cost of s.
func (c *Catalog) ResourceCost(s Stationary) map[Resource]RealUnits {
	out := make(map[Resource]RealUnits, len(c.stationaries[s].Cost))
	for r, n := range c.stationaries[s].Cost {
		out[r] = n
	}
	return out
}

// Requirements returns the labor obligations for building s.
func (c *Catalog) Requirements(s Stationary) []TaskMeta {
	return append([]TaskMeta(nil), c.stationaries[s].Requirements...)
}

// GermCapacity panics for NoTier: there is no untiered room shell.
func (c *Catalog) GermCapacity(t Tier) Area {
	if t == NoTier {
		panic("data: germ of NoTier has no capacity")
	}
	return c.germs[t].Capacity
}

func (c *Catalog) GermRequirements(t Tier) []TaskMeta {
	return append([]TaskMeta(nil), c.germs[t].Requirements...)
}

// ComradeBuildPower is the labor one colonist of tier t yields per turn.
func (c *Catalog) ComradeBuildPower(t Tier) BuildPower { return c.comradePower[t] }

// SetStationary replaces the spec of s. Used by tools and tests that need a
// custom balance.
func (c *Catalog) SetStationary(s Stationary, spec StationarySpec) {
	c.stationaries[s] = spec
}

// DowngradeCoefficient tells how much better a higher-tier worker performs
// lower-tier work. The turn engine does not apply it.
func DowngradeCoefficient(workerTier, targetTier Tier, bp BuildPower) BuildPower {
	switch {
	case workerTier == targetTier && workerTier != NoTier:
		return bp
	case workerTier == T2 && targetTier == T1, workerTier == T3 && targetTier == T2:
		return bp * 2
	case workerTier == T3 && targetTier == T1:
		return bp * 4
	}
	return 0
}

type taskMetaYAML struct {
	Profession string `yaml:"profession"`
	Tier       string `yaml:"tier"`
	BP         int    `yaml:"bp"`
	Equipment  string `yaml:"equipment"`
}

type stationaryYAML struct {
	Kind         string         `yaml:"kind"`
	Size         int            `yaml:"size"`
	Output       int            `yaml:"output"`
	Cost         map[string]int `yaml:"cost"`
	Requirements []taskMetaYAML `yaml:"requirements"`
}

type germYAML struct {
	Tier         string         `yaml:"tier"`
	Capacity     int            `yaml:"capacity"`
	Requirements []taskMetaYAML `yaml:"requirements"`
}

type catalogFile struct {
	ComradeBuildPower map[string]int   `yaml:"comrade_build_power"`
	PieceSizes        map[string]int   `yaml:"piece_sizes"`
	Stationaries      []stationaryYAML `yaml:"stationaries"`
	Germs             []germYAML       `yaml:"germs"`
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// DefaultCatalog returns the embedded balance tables.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{}
	var errs []error

	var seenTier [TierCount]bool
	for name, bp := range f.ComradeBuildPower {
		t, err := ParseTier(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("comrade_build_power: %w", err))
			continue
		}
		c.comradePower[t] = BuildPower(bp)
		seenTier[t] = true
	}
	for _, t := range []Tier{T1, T2, T3} {
		if !seenTier[t] {
			errs = append(errs, fmt.Errorf("comrade_build_power: missing %s", t))
		}
	}

	for name, size := range f.PieceSizes {
		r, err := ParseResource(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("piece_sizes: %w", err))
			continue
		}
		if size <= 0 {
			errs = append(errs, fmt.Errorf("piece_sizes: %s must be positive, got %d", r, size))
			continue
		}
		c.pieceSize[r] = Area(size)
	}
	for _, r := range Resources() {
		if c.pieceSize[r] == 0 {
			errs = append(errs, fmt.Errorf("piece_sizes: missing %s", r))
		}
	}

	var seenStationary [StationaryCount]bool
	for _, entry := range f.Stationaries {
		s, err := ParseStationary(entry.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("stationaries: %w", err))
			continue
		}
		spec := StationarySpec{
			Size:   Area(entry.Size),
			Output: BuildPower(entry.Output),
			Cost:   make(map[Resource]RealUnits, len(entry.Cost)),
		}
		for name, n := range entry.Cost {
			r, err := ParseResource(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("stationary %s cost: %w", s, err))
				continue
			}
			spec.Cost[r] = RealUnits(n)
		}
		spec.Requirements, err = parseTaskMetas(entry.Requirements)
		if err != nil {
			errs = append(errs, fmt.Errorf("stationary %s: %w", s, err))
		}
		c.stationaries[s] = spec
		seenStationary[s] = true
	}
	for _, s := range Stationaries() {
		if !seenStationary[s] {
			errs = append(errs, fmt.Errorf("stationaries: missing %s", s))
		}
	}

	for _, entry := range f.Germs {
		t, err := ParseTier(entry.Tier)
		if err != nil || t == NoTier {
			errs = append(errs, fmt.Errorf("germs: bad tier %q", entry.Tier))
			continue
		}
		reqs, err := parseTaskMetas(entry.Requirements)
		if err != nil {
			errs = append(errs, fmt.Errorf("germ %s: %w", t, err))
		}
		c.germs[t] = GermSpec{Capacity: Area(entry.Capacity), Requirements: reqs}
	}
	for _, t := range []Tier{T1, T2, T3} {
		if c.germs[t].Capacity <= 0 {
			errs = append(errs, fmt.Errorf("germs: missing capacity for %s", t))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

func parseTaskMetas(in []taskMetaYAML) ([]TaskMeta, error) {
	out := make([]TaskMeta, 0, len(in))
	for _, m := range in {
		prof, err := ParseProfession(m.Profession)
		if err != nil {
			return nil, err
		}
		tier, err := ParseTier(m.Tier)
		if err != nil {
			return nil, err
		}
		equipment := None
		if m.Equipment != "" {
			if equipment, err = ParseStationary(m.Equipment); err != nil {
				return nil, err
			}
		}
		if m.BP <= 0 {
			return nil, fmt.Errorf("requirement %s/%s needs positive bp", prof, tier)
		}
		out = append(out, TaskMeta{Profession: prof, Tier: tier, BP: BuildPower(m.BP), Equipment: equipment})
	}
	return out, nil
}
