package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/glavblock/glavblock/internal/colony"
	"github.com/glavblock/glavblock/internal/persist"
)

// journal mirrors every turn report into PostgreSQL. A nil *journal is
// valid and records nothing.
type journal struct {
	db   *persist.DB
	repo *persist.JournalRepo
	run  int64
	log  *zap.Logger
}

func (j *journal) record(ctx context.Context, r colony.TurnReport) {
	if j == nil {
		return
	}
	if err := j.repo.Record(ctx, j.run, turnEntry(r)); err != nil {
		// the simulation goes on without its journal
		j.log.Error("journal write failed", zap.Int("turn", r.Turn), zap.Error(err))
	}
}

func (j *journal) recent(ctx context.Context, n int) ([]persist.TurnEntry, error) {
	return j.repo.Recent(ctx, j.run, n)
}

func (j *journal) Close() {
	j.db.Close()
}

func turnEntry(r colony.TurnReport) persist.TurnEntry {
	e := persist.TurnEntry{
		Turn:       r.Turn,
		Population: r.Population,
		Mood:       r.Mood,
		Satiety:    r.Satiety,
		Unfed:      r.Unfed,
		Digest:     r.Digest,
		Resources:  make(map[string]int, len(r.Resources)),
	}
	for res, n := range r.Resources {
		e.Resources[res.String()] = int(n)
	}
	for _, s := range r.Started {
		e.Events = append(e.Events, persist.EventEntry{Kind: "build", Subject: int64(s.Task.Index()), Detail: s.Kind.String()})
	}
	for _, c := range r.Completed {
		e.Events = append(e.Events, persist.EventEntry{Kind: "completed", Subject: int64(c.Task.Index()), Detail: c.Label})
	}
	for _, s := range r.Starved {
		e.Events = append(e.Events, persist.EventEntry{
			Kind:    "starved",
			Subject: int64(s.Colonist.Index()),
			Detail:  s.Profession.String() + "/" + s.Tier.String(),
		})
	}
	if r.Unfed > 0 {
		e.Events = append(e.Events, persist.EventEntry{Kind: "shortage", Subject: int64(r.Unfed)})
	}
	return e
}
