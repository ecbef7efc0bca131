package store

// Global event sequencing.
//
// Attempt, session, and regen events each live in their own ent-managed
// table, so per-table auto-increment IDs can't establish cross-type
// ordering. A single shared counter row assigns one increasing sequence
// to every event regardless of type, which gives:
//
//   - Cross-type ordering (did the counter bump before or after the
//     regen dispatch?)
//   - Append-only guarantees (events are never reordered)
//
// The counter is claimed through the caller's ent client with an
// SQL-level add, so a transaction-bound client allocates on its own
// connection instead of waiting on the shared pool while it holds the
// write lock.

import (
	"context"
	"fmt"

	"github.com/memora-labs/memora/ent"
)

// sequenceRowID is the fixed primary key of the single counter row.
const sequenceRowID = 1

// nextSequence atomically claims the next global sequence number. The
// increment happens in SQL (next_val = next_val + 1), so concurrent
// writers never claim the same number.
func nextSequence(ctx context.Context, client *ent.Client) (int64, error) {
	row, err := client.EventSequence.UpdateOneID(sequenceRowID).
		AddNextVal(1).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return row.NextVal - 1, nil
}

// seedSequence creates the counter row on first open. Losing the create
// race to another process just means the row already exists.
func seedSequence(ctx context.Context, client *ent.Client) error {
	err := client.EventSequence.Create().
		SetID(sequenceRowID).
		SetNextVal(1).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return fmt.Errorf("seed sequence: %w", err)
	}
	return nil
}
