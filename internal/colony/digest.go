package colony

import (
	"encoding/hex"
	"fmt"
	"hash"
	"sort"

	"golang.org/x/crypto/blake2b"

	"github.com/glavblock/glavblock/internal/data"
)

// Digest fingerprints everything a player can observe: turn, people, stock,
// rooms and construction. Two colonies with equal digests report the same.
func (c *Colony) Digest() string {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err) // only fails for an oversized key
	}
	c.writeState(h)
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Colony) writeState(h hash.Hash) {
	fmt.Fprintf(h, "turn %d\n", c.turn)

	pop := c.state.Population()
	cohorts := make([]data.Cohort, 0, len(pop))
	for k := range pop {
		cohorts = append(cohorts, k)
	}
	sort.Slice(cohorts, func(i, j int) bool {
		if cohorts[i].Profession != cohorts[j].Profession {
			return cohorts[i].Profession < cohorts[j].Profession
		}
		return cohorts[i].Tier < cohorts[j].Tier
	})
	for _, k := range cohorts {
		fmt.Fprintf(h, "pop %s %d\n", k, pop[k])
	}
	fmt.Fprintf(h, "mood %d satiety %d\n", c.state.TotalMood(), c.state.TotalSatiety())

	stock := c.state.Snapshot()
	for _, r := range data.Resources() {
		if n, ok := stock[r]; ok {
			fmt.Fprintf(h, "stock %s %d\n", r, n)
		}
	}
	for _, room := range c.state.RoomsWithSpace() {
		fmt.Fprintf(h, "room %d %s %d\n", room.Room.Index(), room.Type, room.Free)
	}
	for _, task := range c.state.InProgress() {
		fmt.Fprintf(h, "task %d %s %d/%d\n", task.ID.Index(), task.Label(), task.Invested, task.Required)
	}
}
