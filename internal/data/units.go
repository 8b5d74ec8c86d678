package data

// Area is measured in square centimetres.
type Area int

// RealUnits counts discrete units of a resource.
type RealUnits int

// BuildPower is labor a colonist or machine contributes per turn.
type BuildPower int

// Priority of a construction task; higher runs first.
type Priority int

// TaskMeta is one labor obligation of a task: bp units of work done by a
// profession of a tier on a piece of equipment.
type TaskMeta struct {
	Profession Profession
	Tier       Tier
	BP         BuildPower
	Equipment  Stationary
}

// Cohort is a (profession, tier) pair.
type Cohort struct {
	Profession Profession
	Tier       Tier
}

func (c Cohort) String() string { return c.Profession.String() + "/" + c.Tier.String() }

func MinBP(a, b BuildPower) BuildPower {
	if a < b {
		return a
	}
	return b
}
