package data

import "fmt"

// Tier is a skill or quality grade. Ordered: higher is better.
type Tier uint8

const (
	NoTier Tier = iota // unique things without a grade
	T1
	T2
	T3

	TierCount = int(T3) + 1
)

var tierNames = [TierCount]string{"NoTier", "T1", "T2", "T3"}

// Profession of a colonist.
type Profession uint8

const (
	NoProf Profession = iota
	Stalker
	Likvidator
	Scientist
	Worker
	PartyMember // administration, storekeepers, teachers

	ProfessionCount = int(PartyMember) + 1
)

var professionNames = [ProfessionCount]string{
	"NoProf", "Stalker", "Likvidator", "Scientist", "Worker", "Party",
}

// AreaType is the purpose of a room.
type AreaType uint8

const (
	Living AreaType = iota
	Science
	Military
	Industrial // terminals, pumps, vats, machine tools
	Party      // stock rooms, schools, party halls

	AreaTypeCount = int(Party) + 1
)

var areaTypeNames = [AreaTypeCount]string{"Living", "Science", "Military", "Industrial", "Party"}

// Resource is a stored material kind.
type Resource uint8

const (
	BioRaw Resource = iota
	ScrapT1
	ScrapT2
	ScrapT3
	Concrete
	Slime
	ComponentT1
	ComponentT2
	ComponentT3
	ReagentT1
	ReagentT2
	ReagentT3
	Polymer
	Concentrate

	ResourceCount = int(Concentrate) + 1
)

var resourceNames = [ResourceCount]string{
	"BioRaw", "ScrapT1", "ScrapT2", "ScrapT3", "Concrete", "Slime",
	"ComponentT1", "ComponentT2", "ComponentT3",
	"ReagentT1", "ReagentT2", "ReagentT3",
	"Polymer", "Concentrate",
}

// Stationary is installable equipment. None marks work that needs no tool.
type Stationary uint8

const (
	None Stationary = iota
	BenchToolT1
	BenchToolT2
	BenchToolT3
	FormatFurnace
	LabT1
	LabT2
	LabT3
	Barrel
	Rack
	NeuroTerminal

	StationaryCount = int(NeuroTerminal) + 1
)

var stationaryNames = [StationaryCount]string{
	"None", "BenchToolT1", "BenchToolT2", "BenchToolT3", "FormatFurnace",
	"LabT1", "LabT2", "LabT3", "Barrel", "Rack", "NeuroTerminal",
}

// TaskStatus of a room or stationary. Constructing -> Ready, never back.
type TaskStatus uint8

const (
	Constructing TaskStatus = iota
	Ready
)

func (t Tier) String() string       { return enumName(tierNames[:], int(t), "Tier") }
func (p Profession) String() string { return enumName(professionNames[:], int(p), "Profession") }
func (a AreaType) String() string   { return enumName(areaTypeNames[:], int(a), "AreaType") }
func (r Resource) String() string   { return enumName(resourceNames[:], int(r), "Resource") }
func (s Stationary) String() string { return enumName(stationaryNames[:], int(s), "Stationary") }
func (s TaskStatus) String() string {
	if s == Ready {
		return "Ready"
	}
	if s == Constructing {
		return "Constructing"
	}
	return fmt.Sprintf("TaskStatus(%d)", uint8(s))
}

func ParseTier(s string) (Tier, error) {
	i, err := parseEnum(tierNames[:], s, "tier")
	return Tier(i), err
}

func ParseProfession(s string) (Profession, error) {
	i, err := parseEnum(professionNames[:], s, "profession")
	return Profession(i), err
}

func ParseAreaType(s string) (AreaType, error) {
	i, err := parseEnum(areaTypeNames[:], s, "area type")
	return AreaType(i), err
}

func ParseResource(s string) (Resource, error) {
	i, err := parseEnum(resourceNames[:], s, "resource")
	return Resource(i), err
}

func ParseStationary(s string) (Stationary, error) {
	i, err := parseEnum(stationaryNames[:], s, "stationary")
	return Stationary(i), err
}

// Resources lists every resource kind in declaration order.
func Resources() []Resource {
	out := make([]Resource, ResourceCount)
	for i := range out {
		out[i] = Resource(i)
	}
	return out
}

// Stationaries lists every stationary kind except None.
func Stationaries() []Stationary {
	out := make([]Stationary, 0, StationaryCount-1)
	for i := 1; i < StationaryCount; i++ {
		out = append(out, Stationary(i))
	}
	return out
}

func enumName(names []string, i int, kind string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return names[i]
}

func parseEnum(names []string, s, kind string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}
