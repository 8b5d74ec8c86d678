package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/glavblock/glavblock/internal/colony"
	"github.com/glavblock/glavblock/internal/core/ecs"
	"github.com/glavblock/glavblock/internal/data"
	"github.com/glavblock/glavblock/internal/locale"
	"github.com/glavblock/glavblock/internal/world"
)

const helpText = `commands:
  turn [n]              advance n turns (default 1)
  status                population, mood, satiety
  stock                 resources in the stores
  rooms                 rooms and free area
  room <id>             who and what is in a room
  buildable             what can be built right now
  build <kind> [prio]   start building in the best workshop
  tasks                 construction in progress
  journal [n]           last n journaled turns
  quit                  leave
`

// console is the line-oriented front end. Every command runs on the caller's
// goroutine between turns.
type console struct {
	col     *colony.Colony
	names   *locale.Names
	out     io.Writer
	journal *journal
}

func newConsole(col *colony.Colony, names *locale.Names, out io.Writer, j *journal) *console {
	return &console{col: col, names: names, out: out, journal: j}
}

func (c *console) prompt() {
	fmt.Fprintf(c.out, "[%s · turn %d]> ", c.col.Name(), c.col.Turn())
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// exec runs one command line and reports whether the console should exit.
func (c *console) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		c.printf("%s", helpText)
	case "turn", "t":
		c.cmdTurn(ctx, args)
	case "status":
		c.cmdStatus()
	case "stock":
		c.cmdStock()
	case "rooms":
		c.cmdRooms()
	case "room":
		c.cmdRoom(args)
	case "buildable":
		c.cmdBuildable()
	case "build":
		c.cmdBuild(args)
	case "tasks":
		c.cmdTasks()
	case "journal":
		c.cmdJournal(ctx, args)
	case "quit", "exit", "q":
		return true
	default:
		c.printf("unknown command %q, try 'help'\n", cmd)
	}
	return false
}

func (c *console) cmdTurn(ctx context.Context, args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			c.printf("turn count must be a positive number\n")
			return
		}
		n = v
	}
	for i := 0; i < n; i++ {
		r := c.col.AdvanceTurn()
		c.journal.record(ctx, r)
		c.printReport(r)
	}
}

func (c *console) printReport(r colony.TurnReport) {
	c.printf("turn %d: population %s, mood %s, satiety %s, fed %d",
		r.Turn, c.names.Number(r.Population), c.names.Number(r.Mood), c.names.Number(r.Satiety), r.Fed)
	if r.Unfed > 0 {
		c.printf(", UNFED %d", r.Unfed)
	}
	c.printf("\n")
	for _, s := range r.Started {
		c.printf("  started   %s (#%d)\n", c.names.Stationary(s.Kind), s.Task.Index())
	}
	for _, done := range r.Completed {
		c.printf("  completed %s (#%d)\n", done.Label, done.Task.Index())
	}
	for _, s := range r.Starved {
		c.printf("  starved   %s (#%d)\n",
			c.names.Cohort(data.Cohort{Profession: s.Profession, Tier: s.Tier}), s.Colonist.Index())
	}
}

func (c *console) cmdStatus() {
	pop := c.col.Population()
	cohorts := make([]data.Cohort, 0, len(pop))
	total := 0
	for k, n := range pop {
		cohorts = append(cohorts, k)
		total += n
	}
	sort.Slice(cohorts, func(i, j int) bool {
		if cohorts[i].Profession != cohorts[j].Profession {
			return cohorts[i].Profession < cohorts[j].Profession
		}
		return cohorts[i].Tier < cohorts[j].Tier
	})

	c.printf("turn %d, population %s\n", c.col.Turn(), c.names.Number(total))
	for _, k := range cohorts {
		c.printf("  %-24s %5d\n", c.names.Cohort(k), pop[k])
	}
	c.printf("mood %s, satiety %s\n", c.names.Number(c.col.Mood()), c.names.Number(c.col.Satiety()))
	c.printf("digest %s\n", c.col.Digest())
}

func (c *console) cmdStock() {
	stock := c.col.Resources()
	if len(stock) == 0 {
		c.printf("the stores are empty\n")
		return
	}
	for _, r := range data.Resources() {
		if n, ok := stock[r]; ok {
			c.printf("  %-24s %8s\n", c.names.Resource(r), c.names.Number(int(n)))
		}
	}
}

func (c *console) cmdRooms() {
	details := c.col.RoomDetails()
	for _, r := range c.col.Rooms() {
		u := details[r.Room]
		c.printf("  #%-4d %-18s %8s / %-8s free\n",
			r.Room.Index(), c.names.AreaType(r.Type), c.names.Number(int(u.Free)), c.names.Number(int(u.Capacity)))
	}
}

// findRoom resolves a room by its index as shown in the room listing.
func (c *console) findRoom(arg string) (ecs.EntityID, bool) {
	idx, err := strconv.ParseUint(strings.TrimPrefix(arg, "#"), 10, 32)
	if err != nil {
		return 0, false
	}
	for id := range c.col.RoomDetails() {
		if id.Index() == uint32(idx) {
			return id, true
		}
	}
	return 0, false
}

func (c *console) cmdRoom(args []string) {
	if len(args) != 1 {
		c.printf("usage: room <id>\n")
		return
	}
	id, ok := c.findRoom(args[0])
	if !ok {
		c.printf("no ready room %s\n", args[0])
		return
	}
	u := c.col.RoomDetails()[id]
	c.printf("room #%d, %s, %s of %s free\n",
		id.Index(), c.names.AreaType(u.Type), c.names.Number(int(u.Free)), c.names.Number(int(u.Capacity)))

	rc := c.col.RoomContents(id)
	for _, p := range rc.People {
		c.printf("  #%-5d %-24s satiety %3d mood %2d\n",
			p.ID.Index(), c.names.Cohort(data.Cohort{Profession: p.Profession, Tier: p.Tier}), p.Satiety, p.Mood)
	}
	for _, e := range rc.Equipment {
		c.printf("  #%-5d %-24s %s\n", e.ID.Index(), c.names.Stationary(e.Kind), c.names.Status(e.Status))
	}
	for _, r := range data.Resources() {
		if n, ok := rc.Stock[r]; ok {
			c.printf("  %-31s %s\n", c.names.Resource(r), c.names.Number(int(n)))
		}
	}
}

func (c *console) cmdBuildable() {
	for _, opt := range c.col.BuildOptions() {
		if opt.Err == nil {
			c.printf("  %-24s yes, room #%d\n", c.names.Stationary(opt.Kind), opt.Room.Index())
			continue
		}
		c.printf("  %-24s no: %s\n", c.names.Stationary(opt.Kind), c.describeShortfall(opt.Err))
	}
}

func (c *console) describeShortfall(err error) string {
	short, ok := world.IsShortfall(err)
	if !ok {
		return err.Error()
	}
	var parts []string
	for _, e := range short.MissingEquipment {
		parts = append(parts, c.names.Stationary(e))
	}
	for _, w := range short.MissingWorkers {
		parts = append(parts, c.names.Cohort(w))
	}
	for _, r := range data.Resources() {
		if n, ok := short.MissingResources[r]; ok {
			parts = append(parts, fmt.Sprintf("%s x%d", c.names.Resource(r), n))
		}
	}
	if short.NoRoom {
		parts = append(parts, "workshop space")
	}
	return strings.Join(parts, ", ")
}

func (c *console) cmdBuild(args []string) {
	if len(args) < 1 || len(args) > 2 {
		c.printf("usage: build <kind> [priority]\n")
		return
	}
	kind, err := data.ParseStationary(args[0])
	if err != nil {
		c.printf("%v\n", err)
		return
	}
	var prio data.Priority
	if len(args) == 2 {
		v, err := strconv.Atoi(args[1])
		if err != nil {
			c.printf("priority must be a number\n")
			return
		}
		prio = data.Priority(v)
	}
	id, err := c.col.Build(kind, prio)
	if err != nil {
		c.printf("cannot build %s: %s\n", c.names.Stationary(kind), c.describeShortfall(err))
		return
	}
	c.printf("construction of %s started (#%d)\n", c.names.Stationary(kind), id.Index())
}

func (c *console) cmdTasks() {
	tasks := c.col.InProgress()
	if len(tasks) == 0 {
		c.printf("nothing under construction\n")
		return
	}
	for _, t := range tasks {
		label := c.names.Stationary(t.Stationary)
		if t.Germ {
			label = c.names.AreaType(t.AreaType) + " " + c.names.Tier(t.GermTier)
		}
		c.printf("  #%-5d %-24s %4d/%-4d prio %d\n", t.ID.Index(), label, t.Invested, t.Required, t.Priority)
	}
}

func (c *console) cmdJournal(ctx context.Context, args []string) {
	if c.journal == nil {
		c.printf("the journal is disabled\n")
		return
	}
	n := 5
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil && v > 0 {
			n = v
		}
	}
	entries, err := c.journal.recent(ctx, n)
	if err != nil {
		c.printf("journal: %v\n", err)
		return
	}
	for _, e := range entries {
		c.printf("  turn %-4d pop %-5d mood %-5d satiety %-6d %s\n",
			e.Turn, e.Population, e.Mood, e.Satiety, e.RecordedAt.Format("15:04:05"))
	}
}
