package persist

import (
	"context"
	"fmt"
	"time"
)

// TurnEntry is one journaled turn.
type TurnEntry struct {
	Turn       int
	Population int
	Mood       int
	Satiety    int
	Unfed      int
	Resources  map[string]int // resource name → units
	Digest     string
	Events     []EventEntry
	RecordedAt time.Time // set by the database
}

// EventEntry is one thing that happened during a turn.
type EventEntry struct {
	Kind    string // "completed", "starved", "shortage", "build"
	Subject int64  // entity index, when the event has one
	Detail  string
}

// JournalRepo appends turn summaries so a run can be replayed or charted.
type JournalRepo struct {
	db      *DB
	timeout time.Duration
}

func NewJournalRepo(db *DB, timeout time.Duration) *JournalRepo {
	return &JournalRepo{db: db, timeout: timeout}
}

func (r *JournalRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// StartRun registers a new colony run and returns its id.
func (r *JournalRepo) StartRun(ctx context.Context, colony, scenario, digest string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err := r.db.Pool.QueryRow(ctx,
		`INSERT INTO colony_runs (colony, scenario, digest) VALUES ($1, $2, $3) RETURNING id`,
		colony, scenario, digest,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("journal start run: %w", err)
	}
	return id, nil
}

// Record writes a turn and its events in a single transaction.
func (r *JournalRepo) Record(ctx context.Context, runID int64, e TurnEntry) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("journal begin: %w", err)
	}
	defer tx.Rollback(ctx)

	resources := e.Resources
	if resources == nil {
		resources = map[string]int{}
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO colony_turns (run_id, turn, population, mood, satiety, unfed, resources, digest)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		runID, e.Turn, e.Population, e.Mood, e.Satiety, e.Unfed, resources, e.Digest,
	); err != nil {
		return fmt.Errorf("journal insert turn %d: %w", e.Turn, err)
	}

	for _, ev := range e.Events {
		if _, err := tx.Exec(ctx,
			`INSERT INTO colony_events (run_id, turn, kind, subject, detail)
			 VALUES ($1, $2, $3, $4, $5)`,
			runID, e.Turn, ev.Kind, ev.Subject, ev.Detail,
		); err != nil {
			return fmt.Errorf("journal insert event: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Recent returns the last n turns of a run, newest first, without events.
func (r *JournalRepo) Recent(ctx context.Context, runID int64, n int) ([]TurnEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx,
		`SELECT turn, population, mood, satiety, unfed, resources, digest, recorded_at
		 FROM colony_turns WHERE run_id = $1 ORDER BY turn DESC LIMIT $2`,
		runID, n)
	if err != nil {
		return nil, fmt.Errorf("journal recent: %w", err)
	}
	defer rows.Close()

	var out []TurnEntry
	for rows.Next() {
		var e TurnEntry
		if err := rows.Scan(
			&e.Turn, &e.Population, &e.Mood, &e.Satiety, &e.Unfed,
			&e.Resources, &e.Digest, &e.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
